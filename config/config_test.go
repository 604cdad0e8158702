package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailtheme/model"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def.ListenAddr, cfg.ListenAddr)
	assert.Equal(t, def.Seed, cfg.Seed)
	assert.Equal(t, def.Presets, cfg.Presets)
}

func TestSaveThenLoad(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		DataDir:    dir,
		ListenAddr: "127.0.0.1:9000",
		Seed:       "#2E7D32",
		Contrast:   0.5,
		Output:     "theme.css",
		Presets:    []model.Preset{{Name: "forest", Seed: "#2E7D32", Contrast: 0.25}},
	}
	require.NoError(t, Save(cfg))

	_, err := os.Stat(filepath.Join(dir, FileName+".tmp"))
	assert.True(t, os.IsNotExist(err))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFillsEmptyFields(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"seed": "", "contrast": -0.5}`), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "#1976D2", cfg.Seed)
	assert.InDelta(t, -0.5, cfg.Contrast, 1e-9)
	assert.Equal(t, Default().Presets, cfg.Presets)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TAILTHEME_SEED", "#D84315")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "#D84315", cfg.Seed)
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{not json`), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
