package storage

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tailtheme/model"
	"tailtheme/theme"
)

// Store provides persistent storage for generated theme CSS.
type Store struct {
	baseDir string
	logger  zerolog.Logger
	mu      sync.Mutex
}

// New creates a new Store instance with the given base directory.
func New(baseDir string, logger zerolog.Logger) *Store {
	return &Store{baseDir: baseDir, logger: logger}
}

// EnsureDirs creates the necessary directory structure for storing themes.
func (s *Store) EnsureDirs() error {
	return os.MkdirAll(filepath.Join(s.baseDir, "themes"), 0o755)
}

// SaveTheme writes css to disk, organizing files by generation date, and
// returns the record with its ID and path filled in.
func (s *Store) SaveTheme(rec model.ThemeRecord, css string) (model.ThemeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if css == "" {
		return rec, fmt.Errorf("empty theme css")
	}
	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.GeneratedAt.IsZero() {
		rec.GeneratedAt = time.Now()
	}

	t := rec.GeneratedAt.UTC()
	dir := filepath.Join(
		s.baseDir,
		"themes",
		fmt.Sprintf("%04d", t.Year()),
		fmt.Sprintf("%02d", t.Month()),
		fmt.Sprintf("%02d", t.Day()),
	)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return rec, err
	}

	seed := strings.ToLower(strings.TrimPrefix(rec.Seed, "#"))
	filename := fmt.Sprintf("%s_%s_%s.css", t.Format("2006-01-02T15-04-05Z07-00"), seed, rec.ID)
	path := filepath.Join(dir, filename)

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(css), 0o644); err != nil {
		os.Remove(tmp)
		return rec, err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return rec, err
	}

	rec.Path = path
	s.logger.Debug().Str("id", rec.ID).Str("path", path).Msg("theme saved")
	return rec, nil
}

// ListThemes retrieves all saved themes generated within the time range.
// Records are read back from the CSS headers and sorted by generation time.
func (s *Store) ListThemes(from, to time.Time) ([]model.ThemeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from = from.UTC()
	to = to.UTC()

	base := filepath.Join(s.baseDir, "themes")
	var records []model.ThemeRecord

	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".css" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		header := theme.ParseHeader(string(content))
		if header.GeneratedAt.IsZero() {
			s.logger.Warn().Str("path", path).Msg("skipping theme without header")
			return nil
		}

		t := header.GeneratedAt.UTC()
		if t.Before(from) || t.After(to) {
			return nil
		}

		records = append(records, model.ThemeRecord{
			ID:          idFromFilename(filepath.Base(path)),
			Seed:        header.Seed,
			Contrast:    header.Contrast,
			GeneratedAt: header.GeneratedAt,
			Path:        path,
		})
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].GeneratedAt.Before(records[j].GeneratedAt)
	})

	return records, nil
}

// idFromFilename returns the record ID suffix of a saved theme file name.
func idFromFilename(name string) string {
	name = strings.TrimSuffix(name, ".css")
	if i := strings.LastIndex(name, "_"); i != -1 {
		return name[i+1:]
	}
	return name
}
