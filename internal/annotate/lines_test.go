package annotate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want []bool // by 0-based index
	}{
		{
			desc: "single and span",
			give: "{1,3-4}",
			want: []bool{true, false, true, true, false},
		},
		{
			desc: "mixed",
			give: "{2,4-6}",
			want: []bool{false, true, false, true, true, true, false},
		},
		{
			desc: "inverted",
			give: "{5-2}",
			want: []bool{false, false, false, false, false, false},
		},
		{
			desc: "zero end",
			give: "{3-0}",
			want: []bool{false, false, false, false},
		},
		{
			desc: "zero line",
			give: "{0}",
			want: []bool{false, false},
		},
		{
			desc: "surrounded by text",
			give: `title="x" {2} live`,
			want: []bool{false, true, false},
		},
		{
			desc: "first directive wins",
			give: "{1} {3}",
			want: []bool{true, false, false},
		},
		{
			desc: "malformed skipped for later directive",
			give: "{1,,2} {a} {3}",
			want: []bool{false, false, true},
		},
		{
			desc: "unmatched brace",
			give: "{1,2",
			want: []bool{false, false, false},
		},
		{
			desc: "dangling dash",
			give: "{1-}",
			want: []bool{false, false},
		},
		{
			desc: "overflow token ignored",
			give: "{99999999999999999999999,2}",
			want: []bool{false, true, false},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			pred := Compile(tt.give)
			for i, want := range tt.want {
				assert.Equal(t, want, pred(i), "index %d", i)
			}
		})
	}
}

func TestCompile_noDirective(t *testing.T) {
	t.Parallel()

	for _, meta := range []string{"", "title=foo", "1,2-3", "}1{", strings.Repeat("x", 64)} {
		pred := Compile(meta)
		for i := 0; i < 10000; i++ {
			if !assert.False(t, pred(i), "meta %q index %d", meta, i) {
				break
			}
		}
	}
}

func TestParseRanges(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]LineRange{{Start: 1, End: 1}, {Start: 3, End: 4}, {Start: 7, End: 2}},
		ParseRanges("{1,3-4,7-2}"))
	assert.Nil(t, ParseRanges("no directive"))
}

func TestLineRange_Contains(t *testing.T) {
	t.Parallel()

	r := LineRange{Start: 2, End: 4}
	assert.False(t, r.Contains(1))
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(5))
	assert.False(t, LineRange{Start: 4, End: 2}.Contains(3))
}
