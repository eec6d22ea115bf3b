// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcdyer/rawbson"
)

func newInspectCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var recursive bool
	cmd := &cobra.Command{
		Use:   "inspect <path>",
		Short: "List a document's top-level keys and types.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := rawbson.New(data)
			if err != nil {
				return fmt.Errorf("not a well-framed document: %w", err)
			}
			return inspectDoc(cmd.OutOrStdout(), doc, 0, recursive)
		},
	}
	cmd.Flags().BoolVar(&recursive, "recursive", false, "descend into nested documents and arrays")
	return cmd
}

func inspectDoc(w io.Writer, doc *rawbson.Document, depth int, recursive bool) error {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	it := doc.Iter()
	for {
		key, elem, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		fmt.Fprintf(w, "%s%s: %s\n", indent, key, elem.Type())
		if !recursive {
			continue
		}
		if nested, err := elem.AsDocument(); err == nil {
			if err := inspectDoc(w, nested, depth+1, recursive); err != nil {
				return err
			}
		} else if arr, err := elem.AsArray(); err == nil {
			if err := inspectDoc(w, arr.Document(), depth+1, recursive); err != nil {
				return err
			}
		}
	}
}
