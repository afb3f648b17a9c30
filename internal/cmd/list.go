package cmd

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/ezerfernandes/codefence/internal/annotate"
	"github.com/ezerfernandes/codefence/internal/mdcode"
	"github.com/ezerfernandes/codefence/internal/render"
)

//go:embed help/list.md
var listHelp string

func listCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [flags] [filename]",
		Aliases: []string{"ls"},
		Short:   "List the code blocks of a Markdown document",
		Long:    listHelp,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, source(args))
			if err != nil {
				return errtrace.Wrap(err)
			}

			return listRun(cmd.OutOrStdout(), src, opts)
		},

		DisableAutoGenTag: true,
	}

	return cmd
}

func listRun(w io.Writer, src []byte, opts *options) error {
	tbl := table.New("#", "Lang", "Title", "Highlight", "Numbers", "Live", "Lines").WithWriter(w)

	blocks, err := mdcode.Unfence(src)
	if err != nil {
		return err
	}

	blocks = blocks.Filter(opts.filter)
	if len(blocks) == 0 {
		opts.status("no code blocks found\n")

		return nil
	}

	for index, block := range blocks {
		lang, params := annotate.ParseClassTag(block.Info.ClassTag)

		var numbers, live bool

		switch b := render.Classify(block.Info, block.Code).(type) {
		case *render.StaticBlock:
			numbers = b.LineNumbers
		case *render.LiveBlock:
			live = true
		}

		tbl.AddRow(
			index,
			lang,
			params.Get("title"),
			formatRanges(annotate.ParseRanges(block.Info.Meta)),
			yesNo(numbers),
			yesNo(live),
			fmt.Sprintf("%d-%d", block.StartLine, block.EndLine),
		)
	}

	tbl.Print()

	return nil
}

func formatRanges(ranges []annotate.LineRange) string {
	parts := make([]string, 0, len(ranges))

	for _, r := range ranges {
		if r.Start == r.End {
			parts = append(parts, fmt.Sprint(r.Start))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", r.Start, r.End))
		}
	}

	return strings.Join(parts, ",")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "no"
}
