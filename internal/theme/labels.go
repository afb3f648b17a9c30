// Package theme holds the static presentation data for rendered code
// blocks: the per-language label table, the default Chroma style and the
// stylesheet tying them together.
package theme

import "strings"

// Label is the badge shown in the corner of a code block.
// Empty colors fall back to the stylesheet defaults.
type Label struct {
	Text       string `yaml:"text"`
	Background string `yaml:"background"`
	Color      string `yaml:"color"`
}

// Labels maps a lower-case language to its badge.
type Labels map[string]Label

// DefaultLabels returns a fresh copy of the built-in label table.
func DefaultLabels() Labels {
	return Labels{
		"javascript": {Text: "js", Background: "#FCD018", Color: "black"},
		"js":         {Text: "js", Background: "#FCD018", Color: "black"},
		"jsx":        {Text: "jsx", Background: "#FCD018", Color: "black"},
		"ts":         {Text: "ts", Background: "#284F80", Color: "white"},
		"tsx":        {Text: "tsx", Background: "#284F80", Color: "white"},
		"html":       {Text: "html", Background: "#005a9c", Color: "white"},
		"xml":        {Text: "xml", Background: "#005a9c", Color: "white"},
		"svg":        {Text: "svg", Background: "#005a9c", Color: "white"},
		"graphql":    {Text: "GraphQL", Background: "#E10098", Color: "white"},
		"css":        {Text: "css", Background: "#ff9800", Color: "black"},
		"mdx":        {Text: "mdx", Background: "#f9ac00", Color: "black"},
		"text":       {Text: "text"},
		"shell":      {Text: "shell"},
		"sh":         {Text: "sh"},
		"bash":       {Text: "bash"},
		"yaml":       {Text: "yaml", Background: "#ffa8df"},
		"yml":        {Text: "yml", Background: "#ffa8df"},
		"markdown":   {Text: "md"},
		"json":       {Text: "json", Background: "linen"},
		"json5":      {Text: "json", Background: "linen"},
		"diff":       {Text: "diff", Background: "#e6ffed"},
	}
}

// Lookup returns the label for lang. Languages missing from the table get
// a plain label showing the language itself.
func (l Labels) Lookup(lang string) (Label, bool) {
	lang = strings.ToLower(lang)

	if label, ok := l[lang]; ok {
		return label, true
	}

	return Label{Text: lang}, false
}

// Merge returns a copy of l with the entries of overrides applied on top.
// Empty fields in an override keep the existing value.
func (l Labels) Merge(overrides Labels) Labels {
	merged := make(Labels, len(l)+len(overrides))

	for lang, label := range l {
		merged[lang] = label
	}

	for lang, over := range overrides {
		lang = strings.ToLower(lang)
		label := merged[lang]

		if len(over.Text) != 0 {
			label.Text = over.Text
		}

		if len(over.Background) != 0 {
			label.Background = over.Background
		}

		if len(over.Color) != 0 {
			label.Color = over.Color
		}

		if len(label.Text) == 0 {
			label.Text = lang
		}

		merged[lang] = label
	}

	return merged
}
