package annotate

import "strings"

// Option is a single decoded parameter. Set is false when the parameter was
// given as a bare key with no '='.
type Option struct {
	Value string
	Set   bool
}

// Options holds the parameters decoded from a class tag.
type Options map[string]Option

// Get returns the value of the named option, or an empty string if the
// option is missing or carries no value.
func (o Options) Get(name string) string {
	return o[name].Value
}

// Lookup returns the named option and whether it is present.
func (o Options) Lookup(name string) (Option, bool) {
	opt, has := o[name]

	return opt, has
}

// DecodeParams decodes '&'-separated key=value pairs. Later duplicates
// overwrite earlier ones; empty tokens and empty keys are skipped.
func DecodeParams(params string) Options {
	opts := make(Options)

	for _, token := range strings.Split(params, "&") {
		if len(token) == 0 {
			continue
		}

		key, value, set := strings.Cut(token, "=")
		if len(key) == 0 {
			continue
		}

		opts[key] = Option{Value: value, Set: set}
	}

	return opts
}
