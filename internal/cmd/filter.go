package cmd

import (
	"github.com/gobwas/glob"

	"github.com/ezerfernandes/codefence/internal/annotate"
	"github.com/ezerfernandes/codefence/internal/mdcode"
)

type filterFunc func(block *mdcode.Block) bool

func acceptAll(*mdcode.Block) bool { return true }

// filter matches a block's language against any of the glob patterns.
// No patterns accept every block.
func filter(patterns []string) (filterFunc, error) {
	if len(patterns) == 0 {
		return acceptAll, nil
	}

	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, err
		}

		globs = append(globs, g)
	}

	return func(block *mdcode.Block) bool {
		lang, _ := annotate.ParseClassTag(block.Info.ClassTag)

		for _, g := range globs {
			if g.Match(lang) {
				return true
			}
		}

		return false
	}, nil
}

func walk(source []byte, walker mdcode.Walker, accept filterFunc) (bool, []byte, error) {
	return mdcode.Walk(source, func(block *mdcode.Block) error {
		if accept(block) {
			return walker(block)
		}

		return nil
	})
}
