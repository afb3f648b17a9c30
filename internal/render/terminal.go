package render

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/charmbracelet/lipgloss"

	"github.com/ezerfernandes/codefence/internal/theme"
)

const highlightMarker = "▌"

type termStyles struct {
	gutter    lipgloss.Style
	highlight lipgloss.Style
	title     lipgloss.Style
	live      lipgloss.Style
	badge     lipgloss.Style
}

func newTermStyles(lg *lipgloss.Renderer) termStyles {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}

	return termStyles{
		gutter:    lg.NewStyle().Foreground(lipgloss.Color("#65737e")),
		highlight: lg.NewStyle().Foreground(lipgloss.Color("#fac863")).Bold(true),
		title:     lg.NewStyle().Bold(true).Foreground(lipgloss.Color("#d8dee9")),
		live:      lg.NewStyle().Bold(true).Foreground(lipgloss.Color("#99c794")),
		badge:     lg.NewStyle().Padding(0, 1).Bold(true),
	}
}

// TerminalRenderer renders blocks for display in a terminal.
type TerminalRenderer struct {
	// Style used for syntax highlighting. Defaults to theme.OceanicNext.
	Style *chroma.Style

	// Formatter is the name of a Chroma formatter. Defaults to "terminal256".
	Formatter string

	// Labels supplies the language badge. Defaults to theme.DefaultLabels.
	Labels theme.Labels

	// Output decides the color profile of the decorations.
	// Defaults to lipgloss.DefaultRenderer.
	Output *lipgloss.Renderer

	Runner LiveRunner
	Status StatusFunc
}

// Render writes b to w.
func (r *TerminalRenderer) Render(w io.Writer, b Block) error {
	var buf bytes.Buffer

	sty := newTermStyles(r.Output)

	switch b := b.(type) {
	case *StaticBlock:
		if err := r.renderStatic(&buf, b, sty); err != nil {
			return err
		}
	case *LiveBlock:
		r.renderLive(&buf, b, sty)
	default:
		return errtrace.Errorf("unrecognized block type %T", b)
	}

	_, err := buf.WriteTo(w)

	return errtrace.Wrap(err)
}

func (r *TerminalRenderer) renderStatic(buf *bytes.Buffer, b *StaticBlock, sty termStyles) error {
	lines, err := tokenLines(b.Language, b.Code, r.Status)
	if err != nil {
		return errtrace.Wrap(err)
	}

	buf.WriteString(r.header(b, sty))
	buf.WriteByte('\n')

	formatter := r.formatter()
	width := len(fmt.Sprint(len(lines)))

	for i, line := range lines {
		marker := " "
		if b.highlighted(i) {
			marker = sty.highlight.Render(highlightMarker)
		}

		if b.LineNumbers {
			gutter := fmt.Sprintf("%*d", width, i+1)
			if b.highlighted(i) {
				gutter = sty.highlight.Render(gutter)
			} else {
				gutter = sty.gutter.Render(gutter)
			}

			buf.WriteString(gutter)
		}

		buf.WriteString(marker)
		buf.WriteByte(' ')

		if err := formatter.Format(buf, r.style(), chroma.Literator(line...)); err != nil {
			return errtrace.Wrap(err)
		}

		if !endsWithNewline(line) {
			buf.WriteByte('\n')
		}
	}

	return nil
}

func (r *TerminalRenderer) renderLive(buf *bytes.Buffer, b *LiveBlock, sty termStyles) {
	buf.WriteString(sty.live.Render("live " + b.ClassTag))
	buf.WriteByte('\n')
	buf.WriteString(b.Code)

	if !strings.HasSuffix(b.Code, "\n") {
		buf.WriteByte('\n')
	}

	if r.Runner == nil || !r.Runner.Accepts(b) {
		return
	}

	out, err := r.Runner.Run(context.Background(), b)

	buf.WriteString(sty.gutter.Render("preview"))
	buf.WriteByte('\n')
	buf.WriteString(out)

	if err != nil {
		r.Status.printf("warning: live block %q: %v\n", b.ClassTag, err)
		fmt.Fprintf(buf, "error: %v\n", err)
	}
}

func (r *TerminalRenderer) header(b *StaticBlock, sty termStyles) string {
	labels := r.Labels
	if labels == nil {
		labels = theme.DefaultLabels()
	}

	label, _ := labels.Lookup(b.Language)

	badge := sty.badge
	if strings.HasPrefix(label.Background, "#") {
		badge = badge.Background(lipgloss.Color(label.Background))
	}

	if strings.HasPrefix(label.Color, "#") {
		badge = badge.Foreground(lipgloss.Color(label.Color))
	}

	text := label.Text
	if len(text) == 0 {
		text = "text"
	}

	header := badge.Render(text)
	if len(b.Title) != 0 {
		header += " " + sty.title.Render(b.Title)
	}

	return header
}

func (r *TerminalRenderer) style() *chroma.Style {
	if r.Style == nil {
		return theme.OceanicNext
	}

	return r.Style
}

func (r *TerminalRenderer) formatter() chroma.Formatter {
	name := r.Formatter
	if len(name) == 0 {
		name = "terminal256"
	}

	return formatters.Get(name)
}

func endsWithNewline(line []chroma.Token) bool {
	return len(line) != 0 && strings.HasSuffix(line[len(line)-1].Value, "\n")
}
