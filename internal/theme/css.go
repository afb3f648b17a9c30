package theme

import (
	"fmt"
	"io"
	"sort"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
)

const baseCSS = `.code-title {
  background-color: #9ca3af;
  color: black;
  font-family: monospace;
  font-size: 0.75rem;
  padding: 0.5rem 1rem;
}
.gatsby-highlight {
  position: relative;
  overflow: auto;
  border-radius: 2px;
}
.gatsby-highlight pre {
  margin: 0;
  padding: 1rem 0;
  line-height: 1.5;
  tab-size: 4;
}
.gatsby-highlight pre[data-linenumber="false"] .token-line {
  padding-left: 1rem;
}
.token-line {
  display: block;
  padding-right: 1rem;
}
.line-number-style {
  display: inline-block;
  width: 3em;
  user-select: none;
  opacity: 0.3;
  text-align: center;
}
.highlight-line {
  background-color: rgb(64, 64, 64);
}
.highlight-line .line-number-style {
  opacity: 0.5;
}
.gatsby-highlight pre[class*="language-"]::before {
  background: white;
  border-radius: 0 0 0.25rem 0.25rem;
  color: black;
  font-size: 12px;
  letter-spacing: 0.025rem;
  padding: 0.1rem 0.5rem;
  position: absolute;
  left: 1rem;
  top: 0;
  text-transform: uppercase;
}
[data-name="live-editor"] textarea {
  width: 100%;
  min-height: 8rem;
  font-family: monospace;
  padding: 1rem;
}
[data-name="live-preview"] {
  padding: calc(0.5rem + 10px);
  background-color: #e5e7eb;
}
`

// WriteCSS writes the stylesheet for rendered blocks: the structural rules,
// one badge rule per label and the class rules of style.
func WriteCSS(w io.Writer, style *chroma.Style, labels Labels) error {
	if _, err := io.WriteString(w, baseCSS); err != nil {
		return err
	}

	langs := make([]string, 0, len(labels))
	for lang := range labels {
		langs = append(langs, lang)
	}

	sort.Strings(langs)

	for _, lang := range langs {
		if err := writeLabelRule(w, lang, labels[lang]); err != nil {
			return err
		}
	}

	return chromahtml.New(chromahtml.WithClasses(true)).WriteCSS(w, style)
}

func writeLabelRule(w io.Writer, lang string, label Label) error {
	if _, err := fmt.Fprintf(w, ".gatsby-highlight pre[class~=\"language-%s\"]::before {\n  content: %q;\n", lang, label.Text); err != nil {
		return err
	}

	if len(label.Background) != 0 {
		if _, err := fmt.Fprintf(w, "  background: %s;\n", label.Background); err != nil {
			return err
		}
	}

	if len(label.Color) != 0 {
		if _, err := fmt.Fprintf(w, "  color: %s;\n", label.Color); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "}\n")

	return err
}
