package cmd

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"braces.dev/errtrace"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ezerfernandes/codefence/internal/mdcode"
	"github.com/ezerfernandes/codefence/internal/render"
	"github.com/ezerfernandes/codefence/internal/theme"
)

//go:embed help/render.md
var renderHelp string

type renderOptions struct {
	output     string
	style      string
	standalone bool
	terminal   bool
	watch      bool
	liveExec   bool
	noClasses  bool
}

func renderCmd(opts *options) *cobra.Command {
	ropts := new(renderOptions)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "render [flags] [filename]",
		Aliases: []string{"r"},
		Short:   "Render Markdown with highlighted code blocks",
		Long:    renderHelp,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flag("style").Changed {
				opts.config.Style = ropts.style
			}

			if cmd.Flag("live-exec").Changed {
				opts.config.Live.Exec = ropts.liveExec
			}

			if ropts.noClasses {
				classes := false
				opts.config.Classes = &classes
			}

			if ropts.watch && source(args) == stdinArg {
				return errWatchStdin
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := source(args)

			run := func() error {
				return renderRun(cmd, filename, opts, ropts)
			}

			if err := run(); err != nil {
				return err
			}

			if !ropts.watch {
				return nil
			}

			return watchFile(cmd.Context(), filename, run, opts.status)
		},

		DisableAutoGenTag: true,
	}

	flags := cmd.Flags()
	flags.StringVarP(&ropts.output, "output", "o", "", "write output to file instead of stdout")
	flags.StringVar(&ropts.style, "style", theme.DefaultStyle, "syntax highlighting style")
	flags.BoolVar(&ropts.standalone, "standalone", false, "wrap the output in an HTML document with its stylesheet")
	flags.BoolVarP(&ropts.terminal, "terminal", "t", false, "print code blocks to the terminal instead of HTML")
	flags.BoolVarP(&ropts.watch, "watch", "w", false, "render again whenever the file changes")
	flags.BoolVar(&ropts.liveExec, "live-exec", false, "run shell live blocks to fill their preview")
	flags.BoolVar(&ropts.noClasses, "inline-styles", false, "use inline styles instead of CSS classes")

	return cmd
}

func renderRun(cmd *cobra.Command, filename string, opts *options, ropts *renderOptions) error {
	src, err := readSource(cmd, filename)
	if err != nil {
		return errtrace.Wrap(err)
	}

	style, found := theme.Style(opts.config.Style)
	if !found {
		opts.status("warning: unknown style %q, using %s\n", opts.config.Style, theme.DefaultStyle)
	}

	runner, err := opts.config.liveRunner()
	if err != nil {
		return err
	}

	var out bytes.Buffer

	if ropts.terminal {
		lg := lipgloss.NewRenderer(cmd.OutOrStdout())
		if len(ropts.output) != 0 {
			lg = lipgloss.NewRenderer(&out)
		}

		err = renderTerminal(&out, src, opts, &render.TerminalRenderer{
			Style:  style,
			Labels: opts.config.labels(),
			Output: lg,
			Runner: runner,
			Status: opts.renderStatus(),
		})
	} else {
		err = renderHTML(&out, src, filename, opts, ropts, &render.HTMLRenderer{
			Style:      style,
			UseClasses: opts.config.useClasses(),
			Runner:     runner,
			Status:     opts.renderStatus(),
		})
	}

	if err != nil {
		return err
	}

	if len(ropts.output) == 0 {
		_, err = out.WriteTo(cmd.OutOrStdout())

		return errtrace.Wrap(err)
	}

	if err := os.WriteFile(ropts.output, out.Bytes(), fileMode); err != nil {
		return errtrace.Wrap(err)
	}

	opts.status("rendered %s\n", ropts.output)

	return nil
}

func renderTerminal(w io.Writer, src []byte, opts *options, r *render.TerminalRenderer) error {
	blocks, err := mdcode.Unfence(src)
	if err != nil {
		return err
	}

	for i, block := range blocks.Filter(opts.filter) {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return errtrace.Wrap(err)
			}
		}

		if err := r.Render(w, render.Classify(block.Info, block.Code)); err != nil {
			return err
		}
	}

	return nil
}

func renderHTML(w io.Writer, src []byte, filename string, opts *options, ropts *renderOptions, r *render.HTMLRenderer) error {
	if !ropts.standalone {
		return render.Convert(src, w, r)
	}

	title := filepath.Base(filename)
	if filename == stdinArg {
		title = "codefence"
	}

	fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n<style>\n", template.HTMLEscapeString(title))

	if err := theme.WriteCSS(w, r.Style, opts.config.labels()); err != nil {
		return errtrace.Wrap(err)
	}

	fmt.Fprint(w, "</style>\n</head>\n<body>\n")

	if err := render.Convert(src, w, r); err != nil {
		return errtrace.Wrap(err)
	}

	_, err := fmt.Fprint(w, "</body>\n</html>\n")

	return errtrace.Wrap(err)
}
