// Package annotate parses the annotations attached to a fenced code block:
// the class tag naming its language and render options, and the
// line-highlight directive carried in its meta string.
//
// Every function in this package is total. Malformed input degrades to an
// empty language, empty options or a predicate that never matches.
package annotate

import "strings"

const langPrefix = "language-"

// ParseClassTag splits a class tag of the form language-<lang>:<params> into
// its language and decoded options.
//
// The language is lower-cased and anything from the first '{' onward is
// dropped, so language-js{1,2} yields "js".
func ParseClassTag(classTag string) (string, Options) {
	head, params, _ := strings.Cut(classTag, ":")

	return language(head), DecodeParams(params)
}

func language(head string) string {
	head = strings.TrimSpace(head)
	head = strings.TrimPrefix(head, langPrefix)

	if idx := strings.IndexByte(head, '{'); idx >= 0 {
		head = head[:idx]
	}

	return strings.ToLower(strings.TrimSpace(head))
}
