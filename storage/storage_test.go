package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailtheme/model"
	"tailtheme/theme"
)

func themeCSS(at time.Time, seed string, contrast float64) string {
	e := &theme.Emitter{Now: func() time.Time { return at }}
	variants := []theme.ThemeVariant{{
		Brightness: theme.Light,
		Colors:     []theme.ColorToken{{Name: "primary", Value: seed}},
	}}
	return e.GenerateThemeCSS(variants, seed, contrast)
}

func TestSaveAndListThemes(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, zerolog.Nop())
	require.NoError(t, store.EnsureDirs())

	first := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)
	second := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

	rec2, err := store.SaveTheme(model.ThemeRecord{Seed: "#2E7D32", Contrast: 0.5, GeneratedAt: second}, themeCSS(second, "#2E7D32", 0.5))
	require.NoError(t, err)
	rec1, err := store.SaveTheme(model.ThemeRecord{Seed: "#1976D2", GeneratedAt: first}, themeCSS(first, "#1976D2", 0))
	require.NoError(t, err)

	assert.NotEmpty(t, rec1.ID)
	assert.NotEqual(t, rec1.ID, rec2.ID)
	assert.Equal(t, filepath.Join(dir, "themes", "2026", "10", "01"), filepath.Dir(rec1.Path))
	assert.True(t, strings.Contains(filepath.Base(rec1.Path), "_1976d2_"))
	assert.True(t, strings.HasSuffix(filepath.Base(rec1.Path), "_"+rec1.ID+".css"))

	content, err := os.ReadFile(rec1.Path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "--color-light-primary: #1976D2;")

	records, err := store.ListThemes(first.Add(-time.Hour), second.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, rec1.ID, records[0].ID)
	assert.Equal(t, "#1976D2", records[0].Seed)
	assert.Equal(t, rec2.ID, records[1].ID)
	assert.InDelta(t, 0.5, records[1].Contrast, 1e-9)
	assert.True(t, second.Equal(records[1].GeneratedAt))

	records, err = store.ListThemes(second.Add(-time.Minute), second.Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "#2E7D32", records[0].Seed)
}

func TestSaveThemeRejectsEmptyCSS(t *testing.T) {
	store := New(t.TempDir(), zerolog.Nop())
	_, err := store.SaveTheme(model.ThemeRecord{Seed: "#000000"}, "")
	assert.Error(t, err)
}

func TestListThemesMissingDir(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "nope"), zerolog.Nop())
	records, err := store.ListThemes(time.Time{}, time.Now())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestListThemesSkipsFilesWithoutHeader(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, zerolog.Nop())
	require.NoError(t, store.EnsureDirs())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "themes", "stray.css"), []byte("@theme {}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "themes", "notes.txt"), []byte("hello"), 0o644))

	records, err := store.ListThemes(time.Time{}, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, records)
}
