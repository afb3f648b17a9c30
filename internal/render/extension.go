package render

import (
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/ezerfernandes/codefence/internal/mdcode"
)

// fencePriority places the block renderer ahead of goldmark's default
// HTML renderer, which registers at 1000.
const fencePriority = 200

// Extension is a goldmark extension that renders fenced code blocks with an
// [HTMLRenderer].
type Extension struct {
	Renderer *HTMLRenderer
}

var _ goldmark.Extender = (*Extension)(nil)

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&fenceRenderer{html: e.Renderer}, fencePriority),
	))
}

type fenceRenderer struct {
	html *HTMLRenderer
}

func (r *fenceRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *fenceRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	fcb, ok := node.(*ast.FencedCodeBlock)
	if !ok {
		return ast.WalkContinue, nil
	}

	info, code := mdcode.Fence(fcb, source)
	if err := r.html.Render(w, Classify(info, code)); err != nil {
		return ast.WalkStop, err
	}

	return ast.WalkSkipChildren, nil
}

// NewMarkdown returns a GitHub-flavored goldmark converter whose fenced
// code blocks render through r. Raw HTML passes through unchanged.
func NewMarkdown(r *HTMLRenderer) goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM, &Extension{Renderer: r}),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
}

// Convert renders a Markdown document to HTML.
func Convert(source []byte, w io.Writer, r *HTMLRenderer) error {
	return NewMarkdown(r).Convert(source, w)
}
