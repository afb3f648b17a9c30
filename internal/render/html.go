package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"sync"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"

	"github.com/ezerfernandes/codefence/internal/theme"
)

// HTMLRenderer renders blocks as HTML.
type HTMLRenderer struct {
	// Style used for syntax highlighting. Defaults to theme.OceanicNext.
	Style *chroma.Style

	// UseClasses selects class attributes over inline styles,
	// assuming the page includes the output of theme.WriteCSS.
	UseClasses bool

	// Runner produces live block previews. Nil leaves previews empty.
	Runner LiveRunner

	// Status receives warnings. May be nil.
	Status StatusFunc

	once      sync.Once
	formatter *chromahtml.Formatter
}

func (r *HTMLRenderer) init() {
	r.once.Do(func() {
		if r.Style == nil {
			r.Style = theme.OceanicNext
		}

		r.formatter = chromahtml.New(
			chromahtml.PreventSurroundingPre(true),
			chromahtml.WithClasses(r.UseClasses),
		)
	})
}

// Render writes the HTML for b to w.
func (r *HTMLRenderer) Render(w io.Writer, b Block) error {
	r.init()

	var buf bytes.Buffer

	switch b := b.(type) {
	case *StaticBlock:
		if err := r.renderStatic(&buf, b); err != nil {
			return err
		}
	case *LiveBlock:
		r.renderLive(&buf, b)
	default:
		return errtrace.Errorf("unrecognized block type %T", b)
	}

	_, err := buf.WriteTo(w)

	return errtrace.Wrap(err)
}

func (r *HTMLRenderer) renderStatic(buf *bytes.Buffer, b *StaticBlock) error {
	lines, err := tokenLines(b.Language, b.Code, r.Status)
	if err != nil {
		return errtrace.Wrap(err)
	}

	lang := template.HTMLEscapeString(b.Language)

	if len(b.Title) != 0 {
		fmt.Fprintf(buf, `<div class="code-title"><div>%s</div></div>`, template.HTMLEscapeString(b.Title))
	}

	fmt.Fprintf(buf, `<div class="gatsby-highlight" data-language="%s">`, lang)
	fmt.Fprintf(buf, `<pre class="chroma language-%s"%s data-linenumber="%t">`, lang, r.preStyle(), b.LineNumbers)

	for i, line := range lines {
		if b.highlighted(i) {
			fmt.Fprintf(buf, `<span class="token-line highlight-line"%s>`, r.entryStyle(chroma.LineHighlight))
		} else {
			buf.WriteString(`<span class="token-line">`)
		}

		if b.LineNumbers {
			fmt.Fprintf(buf, `<span class="line-number-style"%s>%d</span>`, r.entryStyle(chroma.LineNumbers), i+1)
		}

		if err := r.formatter.Format(buf, r.Style, chroma.Literator(line...)); err != nil {
			return errtrace.Wrap(err)
		}

		buf.WriteString("</span>")
	}

	buf.WriteString("</pre></div>\n")

	return nil
}

func (r *HTMLRenderer) renderLive(buf *bytes.Buffer, b *LiveBlock) {
	buf.WriteString(`<div class="live-block">`)
	buf.WriteString(`<div data-name="live-editor"><textarea spellcheck="false">`)
	template.HTMLEscape(buf, []byte(b.Code))
	buf.WriteString(`</textarea></div>`)
	buf.WriteString(`<div data-name="live-preview">`)

	if r.Runner != nil && r.Runner.Accepts(b) {
		out, err := r.Runner.Run(context.Background(), b)
		if len(out) != 0 {
			buf.WriteString("<pre>")
			template.HTMLEscape(buf, []byte(out))
			buf.WriteString("</pre>")
		}

		if err != nil {
			r.Status.printf("warning: live block %q: %v\n", b.ClassTag, err)
			buf.WriteString(`<pre class="live-error">`)
			template.HTMLEscape(buf, []byte(err.Error()))
			buf.WriteString("</pre>")
		}
	}

	buf.WriteString("</div></div>\n")
}

func (r *HTMLRenderer) preStyle() string {
	return r.entryStyle(chroma.PreWrapper)
}

// entryStyle returns an inline style attribute for tt, or nothing when the
// renderer uses classes.
func (r *HTMLRenderer) entryStyle(tt chroma.TokenType) string {
	if r.UseClasses {
		return ""
	}

	return styleAttr(chromahtml.StyleEntryToCSS(r.Style.Get(tt)))
}

func styleAttr(css string) string {
	if len(css) == 0 {
		return ""
	}

	return ` style="` + template.HTMLEscapeString(css) + `"`
}
