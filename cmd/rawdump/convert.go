// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/jcdyer/rawbson"
	"github.com/jcdyer/rawbson/interop"
)

func newConvertCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <path>",
		Short: "Re-encode a document as extended JSON, via the driver's trusted encoder.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := rawbson.New(data)
			if err != nil {
				return fmt.Errorf("outer frame: %w", err)
			}
			d, err := interop.ToBSON(doc)
			if err != nil {
				return fmt.Errorf("converting to bson.D: %w", err)
			}
			out, err := bson.MarshalExtJSON(d, false, false)
			if err != nil {
				return fmt.Errorf("marshaling extended json: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}
