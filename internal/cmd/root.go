package cmd

import (
	"github.com/spf13/cobra"

	"github.com/derickschaefer/structuredtext/internal/log"
)

var (
	debug       bool
	linkPattern string
)

func Root() *cobra.Command {
	cmd := cobra.Command{
		Use:           "structuredtext",
		Short:         "Render structured text JSON documents",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Set(debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}

	pflags := cmd.PersistentFlags()

	pflags.BoolVar(&debug, "debug", false, "Log dropped blocks and spans to stderr.")
	pflags.StringVar(&linkPattern, "link-pattern", "/{type}/{id}", "URL pattern for document links. Supports {id}, {type} and {slug}.")

	cmd.AddCommand(htmlCmd())
	cmd.AddCommand(textCmd())
	cmd.AddCommand(outlineCmd())
	cmd.AddCommand(validateCmd())

	return &cmd
}
