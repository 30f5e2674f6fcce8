package cmd

import (
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/derickschaefer/structuredtext"
	"github.com/derickschaefer/structuredtext/internal/log"
)

func htmlCmd() *cobra.Command {
	var (
		sanitize bool
		strict   bool
	)

	cmd := cobra.Command{
		Use:   "html <file>",
		Short: "Render a document to HTML. Use - to read from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}

			if strict {
				errs := structuredtext.ValidateWithOptions(doc, structuredtext.ValidationOptions{
					CheckNesting:      true,
					RequireResolvable: true,
					Resolver:          resolver(),
				})
				if len(errs) > 0 {
					return errors.Errorf("document has %d problems, first: %v", len(errs), errs[0])
				}
			}

			out := structuredtext.RenderWithOptions(doc, structuredtext.RenderOptions{
				Resolver: resolver(),
				Logger:   log.Get(),
			})
			if sanitize {
				out = bluemonday.UGCPolicy().Sanitize(out)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return errors.Wrap(err, "failed to write result")
		},
	}

	cmd.Flags().BoolVar(&sanitize, "sanitize", false, "Sanitize the output with a user generated content policy.")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the document has spans that would be dropped.")

	return &cmd
}
