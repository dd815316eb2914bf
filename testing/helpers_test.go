package testing

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitFor(t *testing.T) {
	t.Run("condition met immediately", func(t *testing.T) {
		assert.True(t, WaitFor(t, 100*time.Millisecond, func() bool { return true }))
	})

	t.Run("condition never met", func(t *testing.T) {
		assert.False(t, WaitFor(t, 50*time.Millisecond, func() bool { return false }))
	})

	t.Run("condition met after delay", func(t *testing.T) {
		start := time.Now()
		ok := WaitFor(t, time.Second, func() bool {
			return time.Since(start) > 30*time.Millisecond
		})
		assert.True(t, ok)
	})
}

func TestWriteAtomic_ReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bean.json")
	WriteFile(t, path, []byte("old"))

	WriteAtomic(t, path, []byte("new"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be renamed away")
}

func TestRecorder(t *testing.T) {
	r := NewRecorder[string]()

	_, ok := r.Last()
	assert.False(t, ok)

	r.OnChanged("a")
	r.OnChanged("b")

	assert.Equal(t, 2, r.Count())
	assert.Equal(t, []string{"a", "b"}, r.Values())
	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, "b", last)

	r.Reset()
	assert.Zero(t, r.Count())
	assert.True(t, r.WaitForCount(t, 0, 10*time.Millisecond))
}
