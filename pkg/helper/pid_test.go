package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPIDPath(t *testing.T) {
	abs := "/tmp/xx.pid"
	assert.Equal(t, abs, GetPIDPath(abs))
	assert.Equal(t, defaultPIDPath, GetPIDPath(""))

	old, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(old) })
	tmp, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmp))

	got := GetPIDPath("proc.pid")
	realDir, err := filepath.EvalSymlinks(filepath.Dir(got))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "proc.pid"), filepath.Join(realDir, filepath.Base(got)))

	// parent directory missing falls back to the default
	assert.Equal(t, defaultPIDPath, GetPIDPath(filepath.Join("missing", "proc.pid")))
}

func TestWriteReadRemovePID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "api.pid")

	require.NoError(t, WritePID(path))
	pid, err := ReadPID(path)
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), pid)

	require.NoError(t, RemovePID(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// removing twice is fine
	assert.NoError(t, RemovePID(path))
}
