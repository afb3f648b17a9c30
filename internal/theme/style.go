package theme

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultStyle is the name of the style used when none is configured.
const DefaultStyle = "oceanicnext"

// OceanicNext is a dark Chroma style after the Oceanic Next palette.
var OceanicNext = chroma.MustNewStyle(DefaultStyle, chroma.StyleEntries{
	chroma.Background:        "#d8dee9 bg:#1b2b34",
	chroma.PreWrapper:        "#d8dee9 bg:#1b2b34",
	chroma.LineHighlight:     "bg:#404040",
	chroma.LineNumbers:       "#65737e",
	chroma.Comment:           "italic #999999",
	chroma.CommentPreproc:    "#5fb3b3",
	chroma.Keyword:           "#c594c5",
	chroma.KeywordConstant:   "#f99157",
	chroma.KeywordType:       "#fac863",
	chroma.Name:              "#d8dee9",
	chroma.NameAttribute:     "#c594c5",
	chroma.NameBuiltin:       "#fac863",
	chroma.NameClass:         "#fac863",
	chroma.NameFunction:      "#6699cc",
	chroma.NameTag:           "#ec5f67",
	chroma.NameVariable:      "#d8dee9",
	chroma.LiteralString:     "#99c794",
	chroma.LiteralNumber:     "#f99157",
	chroma.Operator:          "#5fb3b3",
	chroma.Punctuation:       "#5fb3b3",
	chroma.GenericDeleted:    "#ec5f67",
	chroma.GenericInserted:   "#99c794",
	chroma.GenericEmph:       "italic",
	chroma.GenericStrong:     "bold",
	chroma.GenericHeading:    "bold #6699cc",
	chroma.GenericSubheading: "#6699cc",
})

func init() {
	styles.Register(OceanicNext)
}

// Style returns the named Chroma style, falling back to [OceanicNext] when
// name is empty or unknown. The bool reports whether name was found.
func Style(name string) (*chroma.Style, bool) {
	if len(name) == 0 {
		return OceanicNext, true
	}

	if style, ok := styles.Registry[strings.ToLower(name)]; ok {
		return style, true
	}

	return OceanicNext, false
}
