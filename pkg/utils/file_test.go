package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePrivateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	require.NoError(t, WritePrivateFile(path, []byte("{}")))
	require.NoError(t, WritePrivateFile(path, []byte(`{"a":1}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestWriteFileIfMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")

	created, err := WriteFileIfMissing(path, []byte("first"), 0o644)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = WriteFileIfMissing(path, []byte("second"), 0o644)
	require.NoError(t, err)
	assert.False(t, created)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestWriteFileIfMissing_MissingDir(t *testing.T) {
	_, err := WriteFileIfMissing(filepath.Join(t.TempDir(), "no", "such", "file"), nil, 0o644)
	assert.Error(t, err)
}
