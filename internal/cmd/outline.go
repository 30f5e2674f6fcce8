package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func outlineCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "outline <file>",
		Short: "Print the title and the headings of a document.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}

			var b strings.Builder
			if title := doc.GetTitle(); title != nil {
				fmt.Fprintf(&b, "Title: %s\n", title.Text)
			}
			for _, h := range doc.GetHeadings() {
				fmt.Fprintf(&b, "%s- %s\n", strings.Repeat("  ", h.Level-1), h.Text)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
			return errors.Wrap(err, "failed to write result")
		},
	}
	return &cmd
}
