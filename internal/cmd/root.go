// Package cmd implements the codefence command line.
package cmd

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

//go:embed help/root.md
var rootHelp string

const (
	fileMode = 0o644
	stdinArg = "-"
)

// Execute runs the command line with args and exits the process on failure.
func Execute(args []string, stdout, stderr io.Writer) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	root := rootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintf(stderr, "codefence: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := new(options)

	root := &cobra.Command{ //nolint:exhaustruct
		Use:   "codefence",
		Short: "Render annotated Markdown code blocks",
		Long:  rootHelp,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			var err error

			if opts.filter, err = filter(opts.lang); err != nil {
				return err
			}

			opts.config, err = loadConfig(opts.configPath, cmd.Flag("config").Changed)

			return err
		},

		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringSliceVarP(&opts.lang, "lang", "l", nil, "only blocks whose language matches one of these glob patterns")
	root.PersistentFlags().StringVar(&opts.configPath, "config", defaultConfigFile, "configuration file")
	quietFlag(root, opts)

	root.AddCommand(
		renderCmd(opts),
		listCmd(opts),
		syncCmd(opts),
		cssCmd(opts),
	)

	return root
}

func quietFlag(cmd *cobra.Command, opts *options) {
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress warnings and status messages")
}

// source returns the Markdown file named by args, or stdinArg.
func source(args []string) string {
	if len(args) == 0 {
		return stdinArg
	}

	return args[0]
}

func readSource(cmd *cobra.Command, filename string) ([]byte, error) {
	if filename == stdinArg {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(filename)
}
