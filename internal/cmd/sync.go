package cmd

import (
	_ "embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"braces.dev/errtrace"
	"github.com/spf13/cobra"

	"github.com/ezerfernandes/codefence/internal/annotate"
	"github.com/ezerfernandes/codefence/internal/mdcode"
	"github.com/ezerfernandes/codefence/internal/region"
)

//go:embed help/sync.md
var syncHelp string

// Class tag options naming the source of a block.
const (
	optFile   = "file"
	optRegion = "region"
)

func syncCmd(opts *options) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "sync [flags] filename",
		Aliases: []string{"s"},
		Short:   "Refresh code blocks from the files they were taken from",
		Long:    syncHelp,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			src, err := os.ReadFile(filename)
			if err != nil {
				return errtrace.Wrap(err)
			}

			fsys := os.DirFS(filepath.Dir(filename))

			modified, result, err := syncBlocks(src, fsys, opts)
			if err != nil {
				return err
			}

			if !modified {
				opts.status("%s is up to date\n", filename)

				return nil
			}

			if dryRun {
				_, err = cmd.OutOrStdout().Write(result)

				return errtrace.Wrap(err)
			}

			return errtrace.Wrap(os.WriteFile(filename, result, fileMode))
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the updated document instead of writing it")

	return cmd
}

// syncBlocks replaces the body of every block carrying a file option with
// that file, or the named region of it, read from fsys. Blocks whose source
// cannot be read are reported and left alone.
func syncBlocks(src []byte, fsys fs.FS, opts *options) (bool, []byte, error) {
	return walk(src, func(block *mdcode.Block) error {
		_, params := annotate.ParseClassTag(block.Info.ClassTag)

		file := params.Get(optFile)
		if len(file) == 0 {
			return nil
		}

		code, err := includeSource(fsys, file, params.Get(optRegion))
		if err != nil {
			opts.status("warning: block at line %d: %v\n", block.StartLine, err)

			return nil
		}

		if len(code) != 0 && code[len(code)-1] != '\n' {
			code = append(code, '\n')
		}

		block.Code = code

		return nil
	}, opts.filter)
}

func includeSource(fsys fs.FS, file, name string) ([]byte, error) {
	name = strings.TrimSpace(name)
	file = strings.TrimPrefix(path.Clean(file), "./")

	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	if len(name) == 0 {
		return data, nil
	}

	body, found, err := region.Read(data, name)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	if !found {
		return nil, errtrace.Errorf("%s: region %q not found", file, name)
	}

	return body, nil
}
