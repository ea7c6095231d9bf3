package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, uint64(65536), cfg.Emit.MaxInstructions)
	assert.Equal(t, uint8(90), cfg.Emit.WarnNearLimitPct)
	assert.True(t, cfg.Diagnostics.WarnUnusedLabels)
	assert.Equal(t, "hex", cfg.Output.Format)
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Emit.MaxInstructions = 1024
	cfg.Output.Format = "c_array"
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(1024), loaded.Emit.MaxInstructions)
	assert.Equal(t, "c_array", loaded.Output.Format)
}
