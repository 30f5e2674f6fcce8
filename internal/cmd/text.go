package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func textCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "text <file>",
		Short: "Print the plain text of a document.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), doc.GetText())
			return errors.Wrap(err, "failed to write result")
		},
	}
	return &cmd
}
