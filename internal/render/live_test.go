package render

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellRunner_Accepts(t *testing.T) {
	t.Parallel()

	r, err := NewShellRunner(nil, 0, "")
	require.NoError(t, err)

	assert.True(t, r.Accepts(&LiveBlock{ClassTag: "language-sh"}))
	assert.True(t, r.Accepts(&LiveBlock{ClassTag: "language-bash:title=x"}))
	assert.False(t, r.Accepts(&LiveBlock{ClassTag: "language-jsx"}))
	assert.False(t, r.Accepts(&LiveBlock{}))

	r, err = NewShellRunner([]string{"z*"}, time.Second, "")
	require.NoError(t, err)
	assert.True(t, r.Accepts(&LiveBlock{ClassTag: "language-zsh"}))
	assert.False(t, r.Accepts(&LiveBlock{ClassTag: "language-sh"}))
}

func TestShellRunner_Run(t *testing.T) {
	t.Parallel()

	r, err := NewShellRunner(nil, 0, t.TempDir())
	require.NoError(t, err)

	out, err := r.Run(context.Background(), &LiveBlock{Code: "x=world\necho \"hello $x\"\n"})
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out)

	out, err = r.Run(context.Background(), &LiveBlock{Code: "echo partial; exit 3"})
	assert.EqualError(t, err, "exit status 3")
	assert.Equal(t, "partial\n", out)

	_, err = r.Run(context.Background(), &LiveBlock{Code: "if then"})
	assert.Error(t, err)
}
