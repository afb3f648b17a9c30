package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ezerfernandes/codefence/internal/theme"
)

func cssCmd(opts *options) *cobra.Command {
	var style string

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "css [flags]",
		Short: "Print the stylesheet for rendered code blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flag("style").Changed {
				opts.config.Style = style
			}

			sty, found := theme.Style(opts.config.Style)
			if !found {
				opts.status("warning: unknown style %q, using %s\n", opts.config.Style, theme.DefaultStyle)
			}

			return theme.WriteCSS(cmd.OutOrStdout(), sty, opts.config.labels())
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringVar(&style, "style", theme.DefaultStyle, "syntax highlighting style")

	return cmd
}
