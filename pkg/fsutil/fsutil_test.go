package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDir(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Creating an existing directory is a no-op.
	require.NoError(t, EnsureDir(path))
}

func TestEnsureFileDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a", "b", "file.nc")
	require.NoError(t, EnsureFileDir(file))

	info, err := os.Stat(filepath.Dir(file))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.nc")
	dst := filepath.Join(dir, "dst.nc")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	require.NoError(t, Move(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)

	_, err = os.Stat(src)
	assert.True(t, os.IsNotExist(err))
}

func TestMove_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := Move(filepath.Join(dir, "nope"), filepath.Join(dir, "dst"))
	assert.Error(t, err)
}
