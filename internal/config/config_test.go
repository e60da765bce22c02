package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	conf, err := Load("testdata/cck.toml")
	require.NoError(t, err)
	assert.Equal(t, "orca", conf.Program)
	assert.Equal(t, "out", conf.Extension)
	assert.Equal(t, 310.0, conf.Temperature)
	assert.Equal(t, 8, conf.Workers)
	assert.True(t, conf.Quiet)
	// unset keys keep their defaults
	assert.Equal(t, 1.0, conf.Concentration)
	assert.Equal(t, int64(100), conf.MaxFileSizeMB)
}

func TestLoadMissing(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, defaults(), conf)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("Workers = = 3\n"), 0644))
	conf, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, defaults(), conf)
}
