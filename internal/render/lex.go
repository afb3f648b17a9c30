package render

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// StatusFunc reports a non-fatal problem, printf style.
type StatusFunc func(format string, args ...interface{})

func (f StatusFunc) printf(format string, args ...interface{}) {
	if f != nil {
		f(format, args...)
	}
}

// lexer returns the Chroma lexer for lang. Unknown languages get the
// plain-text lexer and known reports false.
func lexer(lang string) (l chroma.Lexer, known bool) {
	known = true

	if len(lang) == 0 || strings.EqualFold(lang, PropNoLineNumbers) {
		l = lexers.Fallback
	} else if l = lexers.Get(lang); l == nil {
		l, known = lexers.Fallback, false
	}

	return chroma.Coalesce(l), known
}

// tokenLines lexes code and splits the tokens into lines. Every line but
// possibly the last ends with a newline token.
func tokenLines(lang, code string, status StatusFunc) ([][]chroma.Token, error) {
	l, known := lexer(lang)
	if !known {
		status.printf("warning: no lexer for language %q, rendering as plain text\n", lang)
	}

	it, err := l.Tokenise(nil, code)
	if err != nil {
		return nil, err
	}

	return chroma.SplitTokensIntoLines(it.Tokens()), nil
}
