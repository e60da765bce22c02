package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comchemkit/internal/config"
)

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.log", "a.LOG", "skip.txt", "c.out"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.log"), 0755))

	cfg = config.Config{Extension: "log"}
	got, err := collectFiles([]string{dir})
	require.NoError(t, err)
	// extension matching is case-insensitive, directories are skipped,
	// results sorted
	assert.Equal(t, []string{
		filepath.Join(dir, "a.LOG"),
		filepath.Join(dir, "b.log"),
	}, got)
}

func TestCollectFilesExplicit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "single.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	cfg = config.Config{Extension: "log"}
	// a file named directly bypasses the extension filter
	got, err := collectFiles([]string{path})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, got)
}

func TestCollectFilesNone(t *testing.T) {
	cfg = config.Config{Extension: "log"}
	_, err := collectFiles([]string{t.TempDir()})
	assert.Error(t, err)
}

func TestCollectFilesMissingArg(t *testing.T) {
	cfg = config.Config{Extension: "log"}
	_, err := collectFiles([]string{filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}

func TestNewProgram(t *testing.T) {
	cfg = config.Config{Program: "Gaussian"}
	prog, err := newProgram()
	require.NoError(t, err)
	assert.Equal(t, "Gaussian", prog.Name())

	cfg = config.Config{Program: "nonexistent"}
	_, err = newProgram()
	assert.Error(t, err)
}
