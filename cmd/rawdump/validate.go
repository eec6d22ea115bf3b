// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcdyer/rawbson"
)

func newValidateCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <path>",
		Short: "Force full traversal of a document and report the first framing error.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := loggerFor(cmd)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := rawbson.New(data)
			if err != nil {
				return fmt.Errorf("outer frame: %w", err)
			}
			n, err := validateDoc(doc)
			if err != nil {
				return fmt.Errorf("after %d elements: %w", n, err)
			}
			log.Infof("validated %d top-level elements, fully well-formed", n)
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

// validateDoc walks every element recursively, forcing the eager Value
// conversion so nothing in the tree escapes validation the way a lazy
// Get or Iter call normally would.
func validateDoc(doc *rawbson.Document) (int, error) {
	n := 0
	it := doc.Iter()
	for {
		_, elem, ok, err := it.Next()
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		n++
		v, err := elem.Value()
		if err != nil {
			return n, err
		}
		if v.Doc != nil {
			if _, err := validateDoc(v.Doc); err != nil {
				return n, err
			}
		}
		if v.Arr != nil {
			if _, err := validateDoc(v.Arr.Document()); err != nil {
				return n, err
			}
		}
		if v.JavascriptScope != nil {
			if _, err := validateDoc(v.JavascriptScope); err != nil {
				return n, err
			}
		}
	}
}
