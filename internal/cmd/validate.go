package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/derickschaefer/structuredtext"
)

func validateCmd() *cobra.Command {
	var nesting bool

	cmd := cobra.Command{
		Use:   "validate <file>",
		Short: "Report span ranges and links that will not render.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(cmd, args[0])
			if err != nil {
				return err
			}

			errs := structuredtext.ValidateWithOptions(doc, structuredtext.ValidationOptions{
				CheckNesting:      nesting,
				RequireResolvable: true,
				Resolver:          resolver(),
			})
			for _, e := range errs {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			if len(errs) > 0 {
				return errors.Errorf("found %d problems", len(errs))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&nesting, "nesting", true, "Report spans dropped because of their order.")

	return &cmd
}
