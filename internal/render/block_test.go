package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezerfernandes/codefence/internal/mdcode"
)

func TestClassify_static(t *testing.T) {
	t.Parallel()

	b := Classify(mdcode.Info{ClassTag: "language-jsx:title=App.jsx", Meta: "{1,3-4}"}, []byte("x\n"))

	static, ok := b.(*StaticBlock)
	require.True(t, ok, "got %T", b)

	assert.Equal(t, "jsx", static.Language)
	assert.Equal(t, "App.jsx", static.Title)
	assert.True(t, static.LineNumbers)
	assert.Equal(t, "x\n", static.Code)

	want := []bool{true, false, true, true, false}
	for i, w := range want {
		assert.Equal(t, w, static.highlighted(i), "index %d", i)
	}
}

func TestClassify_lineNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give mdcode.Info
		want bool
	}{
		{desc: "default", give: mdcode.Info{ClassTag: "language-go"}, want: true},
		{desc: "prop", give: mdcode.Info{ClassTag: "language-go", Meta: "noLineNumbers"}, want: false},
		{desc: "prop false", give: mdcode.Info{ClassTag: "language-go", Meta: "noLineNumbers=false"}, want: true},
		{desc: "language", give: mdcode.Info{ClassTag: "language-noLineNumbers"}, want: false},
		{desc: "empty", give: mdcode.Info{}, want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			static, ok := Classify(tt.give, nil).(*StaticBlock)
			require.True(t, ok)
			assert.Equal(t, tt.want, static.LineNumbers)
		})
	}
}

func TestClassify_live(t *testing.T) {
	t.Parallel()

	for _, meta := range []string{"react-live=true", "live", "{1} live=1"} {
		b := Classify(mdcode.Info{ClassTag: "language-jsx:title=x", Meta: meta}, []byte("<p/>"))
		assert.Equal(t, &LiveBlock{ClassTag: "language-jsx:title=x", Code: "<p/>"}, b, "meta %q", meta)
	}

	_, static := Classify(mdcode.Info{ClassTag: "language-jsx", Meta: "live=false"}, nil).(*StaticBlock)
	assert.True(t, static)
}

func TestStaticBlock_nilHighlight(t *testing.T) {
	t.Parallel()

	b := &StaticBlock{}
	assert.False(t, b.highlighted(0))
}
