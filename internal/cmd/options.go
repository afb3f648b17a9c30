package cmd

import (
	"fmt"
	"io"

	"github.com/ezerfernandes/codefence/internal/render"
)

type statusFunc func(format string, args ...interface{})

type options struct {
	lang       []string
	configPath string
	quiet      bool

	filter filterFunc
	status statusFunc
	config *config
}

func (o *options) createStatus(w io.Writer) {
	if o.quiet {
		o.status = func(string, ...interface{}) {}

		return
	}

	o.status = func(format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}
}

func (o *options) renderStatus() render.StatusFunc {
	return render.StatusFunc(o.status)
}
