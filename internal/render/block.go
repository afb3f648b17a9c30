// Package render turns annotated fenced code blocks into highlighted HTML
// or terminal output.
//
// A block is first classified into a [StaticBlock] or a [LiveBlock].
// Static blocks go through the annotation pipeline of package annotate;
// live blocks carry their code untouched to an editor and preview.
package render

import (
	"strings"

	"github.com/ezerfernandes/codefence/internal/annotate"
	"github.com/ezerfernandes/codefence/internal/mdcode"
)

// Meta properties that select how a block renders.
const (
	PropLive          = "live"
	PropReactLive     = "react-live"
	PropNoLineNumbers = "noLineNumbers"
)

// Block is either a *StaticBlock or a *LiveBlock.
type Block interface {
	block()
}

// StaticBlock is a highlighted, read-only code block.
type StaticBlock struct {
	Language    string
	Options     annotate.Options
	Title       string
	LineNumbers bool
	Highlight   annotate.Predicate
	Code        string
}

// LiveBlock is an editable block with a preview pane.
type LiveBlock struct {
	ClassTag string
	Code     string
}

func (*StaticBlock) block() {}
func (*LiveBlock) block()   {}

// Classify decides how the block described by info renders.
func Classify(info mdcode.Info, code []byte) Block {
	props := info.Props()

	if props.Bool(PropReactLive) || props.Bool(PropLive) {
		return &LiveBlock{ClassTag: info.ClassTag, Code: string(code)}
	}

	lang, opts := annotate.ParseClassTag(info.ClassTag)

	return &StaticBlock{
		Language:    lang,
		Options:     opts,
		Title:       opts.Get("title"),
		LineNumbers: !props.Bool(PropNoLineNumbers) && !strings.EqualFold(lang, PropNoLineNumbers),
		Highlight:   annotate.Compile(info.Meta),
		Code:        string(code),
	}
}

func (b *StaticBlock) highlighted(index int) bool {
	if b.Highlight == nil {
		return false
	}

	return b.Highlight(index)
}
