package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
	}
	return root
}

func TestFindFilesByExtension(t *testing.T) {
	root := writeTree(t, "b.hcl", "a.hcl", "nested/c.hcl", "nested/readme.md")

	files, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested", "c.hcl"),
	}, files)
}

func TestFindFiles_SingleFile(t *testing.T) {
	root := writeTree(t, "CMakeCache.txt", "other.txt")
	isCache := func(name string) bool { return name == "CMakeCache.txt" }

	files, err := FindFiles(filepath.Join(root, "CMakeCache.txt"), isCache)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "CMakeCache.txt")}, files)

	files, err = FindFiles(filepath.Join(root, "other.txt"), isCache)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindFiles_MissingPath(t *testing.T) {
	_, err := FindFiles(filepath.Join(t.TempDir(), "nope"), func(string) bool { return true })
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = FindFilesByExtension(".", "") })
}
