package render

import (
	"bytes"
	"context"
	"strings"
	"time"

	"braces.dev/errtrace"
	"github.com/gobwas/glob"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/ezerfernandes/codefence/internal/annotate"
)

// LiveRunner computes the preview of a live block.
type LiveRunner interface {
	// Accepts reports whether the runner can preview b.
	Accepts(b *LiveBlock) bool
	// Run returns the preview output of b.
	Run(ctx context.Context, b *LiveBlock) (string, error)
}

// DefaultShellLangs are the languages run by a [ShellRunner] when none are
// given.
var DefaultShellLangs = []string{"sh", "bash", "shell", "console"}

const defaultShellTimeout = 5 * time.Second

// ShellRunner previews shell live blocks by running them in an embedded
// POSIX shell interpreter. Output interleaves stdout and stderr.
type ShellRunner struct {
	langs   glob.Glob
	timeout time.Duration
	dir     string
}

// NewShellRunner builds a runner for languages matching any of the glob
// patterns. A zero timeout uses a default of five seconds.
func NewShellRunner(patterns []string, timeout time.Duration, dir string) (*ShellRunner, error) {
	if len(patterns) == 0 {
		patterns = DefaultShellLangs
	}

	langs, err := glob.Compile("{" + strings.Join(patterns, ",") + "}")
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	if timeout <= 0 {
		timeout = defaultShellTimeout
	}

	return &ShellRunner{langs: langs, timeout: timeout, dir: dir}, nil
}

// Accepts reports whether the block's language matches the runner's patterns.
func (r *ShellRunner) Accepts(b *LiveBlock) bool {
	lang, _ := annotate.ParseClassTag(b.ClassTag)

	return len(lang) != 0 && r.langs.Match(lang)
}

// Run interprets the block's code. A non-zero exit status is returned as an
// error along with the output produced so far.
func (r *ShellRunner) Run(ctx context.Context, b *LiveBlock) (string, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(b.Code), "")
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	var out bytes.Buffer

	opts := []interp.RunnerOption{interp.StdIO(nil, &out, &out)}
	if len(r.dir) != 0 {
		opts = append(opts, interp.Dir(r.dir))
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return "", errtrace.Wrap(err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	err = runner.Run(ctx, file)
	if status, ok := interp.IsExitStatus(err); ok {
		return out.String(), errtrace.Errorf("exit status %d", status)
	}

	if err != nil {
		return out.String(), errtrace.Wrap(err)
	}

	return out.String(), nil
}
