package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLowerASCII(t *testing.T) {
	assert.True(t, IsLowerASCII("hello"))
	for _, word := range []string{"", "Hello", "résumé", "don’t", "co-op", "a b"} {
		assert.False(t, IsLowerASCII(word), "expected %q to be rejected", word)
	}
}

func TestReadFiltersAndDedupes(t *testing.T) {
	input := "# common words\nthe\n\n  and \nThe\nco-op\nthe\nbe\n"
	words, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "and", "be"}, words)
}

func TestReadEmpty(t *testing.T) {
	_, err := Read(strings.NewReader("# nothing\nÜber\n"))
	require.ErrorIs(t, err, ErrEmpty)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\n"), 0o644))

	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, words)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
