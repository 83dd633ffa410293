package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestInitLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ttt.yaml")
	require.NoError(t, Init(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialFileBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ttt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\nmaxVariables: 8\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 8, cfg.MaxVariables)
	assert.Equal(t, 10, cfg.MaxDifferences)
	assert.Equal(t, 50, cfg.MaxNameLength)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ttt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
