package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoadsEmbeddedPool(t *testing.T) {
	require.NoError(t, Init())
	assert.Greater(t, Stats(), 0)

	// Init is once-only; calling again is a no-op with the same result.
	require.NoError(t, Init())
}

func TestRandomRootComesFromPool(t *testing.T) {
	require.NoError(t, Init())

	pool := make(map[string]struct{}, len(Roots()))
	for _, w := range Roots() {
		pool[w] = struct{}{}
	}
	for i := 0; i < 20; i++ {
		_, ok := pool[RandomRoot()]
		assert.True(t, ok)
	}
}

func TestReadWordFileFiltersInvalidLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roots.txt")
	content := "SILKWORM\n  notebook  \nab\nthisrootwordistoolong\nwith space\nnum3ral\n\nclangers\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := readWordFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"silkworm", "notebook", "clangers"}, got)
}

func TestReadWordFileMissing(t *testing.T) {
	_, err := readWordFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestValidRoot(t *testing.T) {
	assert.True(t, validRoot("silkworm"))
	assert.True(t, validRoot("mist")) // 4 letters, lower bound
	assert.False(t, validRoot("cat"))
	assert.False(t, validRoot(""))
	assert.False(t, validRoot("Mist"))
	assert.False(t, validRoot("sea-board"))
}
