// Package region extracts named #region/#endregion sections from source
// files so that documentation can include part of a file.
package region

import (
	"errors"
	"fmt"
	"regexp"
)

// A marker line is a comment leader (any run of punctuation), the marker
// keyword and an optional name, e.g. "// #region setup" or "<!-- #endregion -->".
const (
	reSpec          = `[!"#$%%&'()*+,\-./:;<=>?@[\\\]^_{|}~]`
	reLineBegin     = `(?m)^[[:blank:]]*`
	reLineEnd       = `*[[:blank:]]*\r?\n`
	regionFormat    = reLineBegin + reSpec + `+[[:blank:]]*#region[[:blank:]]+%s[[:blank:]]*` + reSpec + reLineEnd
	namedendFormat  = reLineBegin + reSpec + `+[[:blank:]]*#endregion[[:blank:]]+%s[[:blank:]]*` + reSpec + reLineEnd
	endregionFormat = reLineBegin + reSpec + `+[[:blank:]]*#endregion[[:blank:]]*` + reSpec + reLineEnd
)

var reAnyEnd = regexp.MustCompile(fmt.Sprintf(endregionFormat))

// ErrMissingEndregion is returned by [Read] when the named #region has no
// #endregion after it.
var ErrMissingEndregion = errors.New("missing #endregion")

// Read returns the lines between the #region and #endregion markers with
// the given name. The bool return reports whether the region was found.
//
// A matching "#endregion name" is preferred; otherwise the first anonymous
// #endregion after the start marker closes the region.
func Read(source []byte, name string) ([]byte, bool, error) {
	quoted := regexp.QuoteMeta(name)

	reBegin, err := regexp.Compile(fmt.Sprintf(regionFormat, quoted))
	if err != nil {
		return nil, false, err
	}

	begin := reBegin.FindIndex(source)
	if begin == nil {
		return nil, false, nil
	}

	rest := source[begin[1]:]

	reEnd, err := regexp.Compile(fmt.Sprintf(namedendFormat, quoted))
	if err != nil {
		return nil, false, err
	}

	end := reEnd.FindIndex(rest)
	if end == nil {
		end = reAnyEnd.FindIndex(rest)
	}

	if end == nil {
		return nil, false, fmt.Errorf("region %q: %w", name, ErrMissingEndregion)
	}

	return rest[:end[0]], true, nil
}
