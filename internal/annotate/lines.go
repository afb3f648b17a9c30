package annotate

import (
	"regexp"
	"strconv"
	"strings"
)

var reDirective = regexp.MustCompile(`\{(\d+(?:-\d+)?(?:,\d+(?:-\d+)?)*)\}`)

// LineRange is a closed range of 1-based line numbers.
// A range with Start > End contains nothing.
type LineRange struct {
	Start int
	End   int
}

// Contains reports whether the 1-based line falls inside the range.
func (r LineRange) Contains(line int) bool {
	return line >= r.Start && line <= r.End
}

// Predicate reports whether the line at a 0-based index is highlighted.
type Predicate func(index int) bool

// Never is the predicate used when no directive is present.
func Never(int) bool { return false }

// ParseRanges extracts the ranges of the first {n,n-m,...} directive in
// meta. It returns nil when meta holds no well-formed directive.
func ParseRanges(meta string) []LineRange {
	subs := reDirective.FindStringSubmatch(meta)
	if subs == nil {
		return nil
	}

	tokens := strings.Split(subs[1], ",")
	ranges := make([]LineRange, 0, len(tokens))

	for _, token := range tokens {
		if r, ok := parseRange(token); ok {
			ranges = append(ranges, r)
		}
	}

	return ranges
}

func parseRange(token string) (LineRange, bool) {
	first, second, isSpan := strings.Cut(token, "-")

	start, err := strconv.Atoi(first)
	if err != nil {
		return LineRange{}, false
	}

	if !isSpan {
		return LineRange{Start: start, End: start}, true
	}

	end, err := strconv.Atoi(second)
	if err != nil {
		return LineRange{}, false
	}

	return LineRange{Start: start, End: end}, true
}

// Compile turns the directive in meta into a highlight predicate.
func Compile(meta string) Predicate {
	ranges := ParseRanges(meta)
	if len(ranges) == 0 {
		return Never
	}

	return func(index int) bool {
		line := index + 1

		for _, r := range ranges {
			if r.Contains(line) {
				return true
			}
		}

		return false
	}
}
