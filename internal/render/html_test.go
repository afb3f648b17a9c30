package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezerfernandes/codefence/internal/annotate"
)

type stubRunner struct {
	out string
	err error
}

func (*stubRunner) Accepts(*LiveBlock) bool { return true }

func (s *stubRunner) Run(context.Context, *LiveBlock) (string, error) {
	return s.out, s.err
}

func TestHTMLRenderer_static(t *testing.T) {
	t.Parallel()

	r := HTMLRenderer{UseClasses: true}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, &StaticBlock{
		Language:    "text",
		Title:       "a <b>",
		LineNumbers: true,
		Highlight:   annotate.Compile("{2}"),
		Code:        "one\ntwo\nthree\n",
	}))

	got := buf.String()
	assert.Contains(t, got, `<div class="code-title"><div>a &lt;b&gt;</div></div>`)
	assert.Contains(t, got, `<div class="gatsby-highlight" data-language="text">`)
	assert.Contains(t, got, `<pre class="chroma language-text" data-linenumber="true">`)
	assert.Contains(t, got, `<span class="token-line"><span class="line-number-style">1</span>one`)
	assert.Contains(t, got, `<span class="token-line highlight-line"><span class="line-number-style">2</span>two`)
	assert.Contains(t, got, `<span class="token-line"><span class="line-number-style">3</span>three`)
	assert.Equal(t, 3, strings.Count(got, `class="token-line`))
	assert.True(t, strings.HasSuffix(got, "</pre></div>\n"))
}

func TestHTMLRenderer_noTitleNoNumbers(t *testing.T) {
	t.Parallel()

	r := HTMLRenderer{UseClasses: true}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, &StaticBlock{Code: "a < b\n"}))

	got := buf.String()
	assert.NotContains(t, got, "code-title")
	assert.NotContains(t, got, "line-number-style")
	assert.NotContains(t, got, "highlight-line")
	assert.Contains(t, got, `data-linenumber="false"`)
	assert.Contains(t, got, "a &lt; b")
}

func TestHTMLRenderer_inlineStyles(t *testing.T) {
	t.Parallel()

	r := HTMLRenderer{}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, &StaticBlock{
		Language:  "go",
		Highlight: annotate.Compile("{1}"),
		Code:      "package main\n",
	}))

	got := buf.String()
	assert.Contains(t, got, `<pre class="chroma language-go" style="`)
	assert.Contains(t, got, `<span class="token-line highlight-line" style="color: #d8dee9; background-color: #404040">`)
}

func TestHTMLRenderer_unknownLanguage(t *testing.T) {
	t.Parallel()

	var warnings []string
	r := HTMLRenderer{
		UseClasses: true,
		Status: func(format string, args ...interface{}) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		},
	}

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, &StaticBlock{Language: "no-such-lang", Code: "x\n"}))

	assert.Contains(t, buf.String(), ">x\n</span>")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `"no-such-lang"`)
}

func TestHTMLRenderer_live(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc   string
		runner LiveRunner
		want   string
	}{
		{
			desc: "no runner",
			want: `<div data-name="live-preview"></div>`,
		},
		{
			desc:   "output",
			runner: &stubRunner{out: "hi <3\n"},
			want:   `<div data-name="live-preview"><pre>hi &lt;3` + "\n" + `</pre></div>`,
		},
		{
			desc:   "error",
			runner: &stubRunner{err: errors.New("exit status 2")},
			want:   `<div data-name="live-preview"><pre class="live-error">exit status 2</pre></div>`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			r := HTMLRenderer{Runner: tt.runner}

			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, &LiveBlock{ClassTag: "language-sh", Code: "echo '<hi>'"}))

			got := buf.String()
			assert.Contains(t, got, `<div data-name="live-editor"><textarea spellcheck="false">echo &#39;&lt;hi&gt;&#39;</textarea></div>`)
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestHTMLRenderer_unknownBlock(t *testing.T) {
	t.Parallel()

	var r HTMLRenderer
	assert.Error(t, r.Render(&bytes.Buffer{}, nil))
}

func TestStyleAttr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want string
	}{
		{desc: "empty", give: "", want: ""},
		{desc: "plain", give: "color: #fff", want: ` style="color: #fff"`},
		{
			desc: "quotes",
			give: `font-family: "Fira Code", 'Mono'`,
			want: ` style="font-family: &#34;Fira Code&#34;, &#39;Mono&#39;"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, styleAttr(tt.give))
		})
	}
}
