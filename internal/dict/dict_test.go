package dict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLookup(t *testing.T) {
	m := NewMemory()
	m.Add("en", "silk", "Worm", "  mist ")

	assert.True(t, m.IsRealWord("silk", "en"))
	assert.True(t, m.IsRealWord("SILK", "en"))
	assert.True(t, m.IsRealWord("worm", "en"))
	assert.True(t, m.IsRealWord("mist", "en"))

	assert.False(t, m.IsRealWord("wool", "en"))
	assert.False(t, m.IsRealWord("silk", "de"))
	assert.False(t, m.IsRealWord("", "en"))

	assert.Equal(t, 3, m.Stats("en"))
	assert.Zero(t, m.Stats("de"))
}

func TestMemoryLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "# comment\nsilk\n WORM \n\nmist\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m := NewMemory()
	require.NoError(t, m.LoadFile("en", path))
	assert.True(t, m.IsRealWord("silk", "en"))
	assert.True(t, m.IsRealWord("worm", "en"))
	assert.Equal(t, 3, m.Stats("en"))
}

func TestMemoryLoadFileMissing(t *testing.T) {
	m := NewMemory()
	assert.Error(t, m.LoadFile("en", filepath.Join(t.TempDir(), "nope.txt")))
}

func TestEmbedded(t *testing.T) {
	m, err := Embedded()
	require.NoError(t, err)
	assert.Greater(t, m.Stats("en"), 100)
	assert.True(t, m.IsRealWord("silk", "en"))
	assert.False(t, m.IsRealWord("xyzzy", "en"))
}
