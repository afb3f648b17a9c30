package theme

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabels_Lookup(t *testing.T) {
	t.Parallel()

	labels := DefaultLabels()

	label, ok := labels.Lookup("JS")
	assert.True(t, ok)
	assert.Equal(t, Label{Text: "js", Background: "#FCD018", Color: "black"}, label)

	label, ok = labels.Lookup("rust")
	assert.False(t, ok)
	assert.Equal(t, Label{Text: "rust"}, label)
}

func TestLabels_Merge(t *testing.T) {
	t.Parallel()

	base := DefaultLabels()
	merged := base.Merge(Labels{
		"JS":   {Background: "#000000"},
		"rust": {Background: "#dea584"},
	})

	assert.Equal(t, Label{Text: "js", Background: "#000000", Color: "black"}, merged["js"])
	assert.Equal(t, Label{Text: "rust", Background: "#dea584"}, merged["rust"])
	assert.Equal(t, "#FCD018", base["js"].Background, "base must not change")
}

func TestStyle(t *testing.T) {
	t.Parallel()

	style, ok := Style("")
	assert.True(t, ok)
	assert.Same(t, OceanicNext, style)

	style, ok = Style("OceanicNext")
	assert.True(t, ok)
	assert.Same(t, OceanicNext, style)

	style, ok = Style("monokai")
	assert.True(t, ok)
	assert.Equal(t, "monokai", style.Name)

	style, ok = Style("no-such-style")
	assert.False(t, ok)
	assert.Same(t, OceanicNext, style)
}

func TestWriteCSS(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSS(&buf, OceanicNext, Labels{
		"go":   {Text: "go", Background: "#00ADD8", Color: "white"},
		"text": {Text: "text"},
	}))

	css := buf.String()
	assert.Contains(t, css, ".highlight-line {")
	assert.Contains(t, css, ".line-number-style {")
	assert.Contains(t, css, ".gatsby-highlight pre[class~=\"language-go\"]::before {\n  content: \"go\";\n  background: #00ADD8;\n  color: white;\n}\n")
	assert.Contains(t, css, ".gatsby-highlight pre[class~=\"language-text\"]::before {\n  content: \"text\";\n}\n")
	assert.Contains(t, css, ".chroma")
}
