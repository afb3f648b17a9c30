package mdcode

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// Info is the annotation carried by a fence's info string.
//
// For ```jsx:title=App {2-3} live=true the class tag is
// "language-jsx:title=App" and the meta string is "{2-3} live=true".
type Info struct {
	ClassTag string
	Meta     string
}

var reInfo = regexp.MustCompile(`^\s*(\S+)\s*(.*?)\s*$`)

// ParseInfo splits a fence info string into a class tag and a meta string.
func ParseInfo(text []byte) Info {
	all := reInfo.FindSubmatch(text)
	if all == nil {
		return Info{}
	}

	return Info{ClassTag: "language-" + string(all[1]), Meta: string(all[2])}
}

// Props are the shell-style words of a meta string. Words of the form
// key=value map key to value; bare words map to "true".
type Props map[string]string

// Get returns the named property, or an empty string if it is missing or
// the Props is nil.
func (p Props) Get(name string) string {
	if p == nil {
		return ""
	}

	return p[name]
}

// Bool reports whether the named property is present and truthy.
// A property that does not parse as a boolean counts as false.
func (p Props) Bool(name string) bool {
	value, has := p[name]
	if !has {
		return false
	}

	b, err := strconv.ParseBool(value)

	return err == nil && b
}

// Props splits the meta string into properties. A meta string that cannot
// be split, e.g. one with an unterminated quote, has no properties.
func (i Info) Props() Props {
	words, err := shlex.Split(i.Meta)
	if err != nil {
		return Props{}
	}

	props := make(Props, len(words))

	for _, word := range words {
		key, value, found := strings.Cut(word, "=")
		if len(key) == 0 {
			continue
		}

		if !found {
			value = "true"
		}

		props[key] = value
	}

	return props
}
