package theme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"tailtheme/model"
)

// VariantSource generates the light and dark variants for a seed.
type VariantSource interface {
	Generate(seedHex string, contrast float64) ([]ThemeVariant, error)
}

// Manager manages named theme presets.
type Manager struct {
	source      VariantSource
	emitter     *Emitter
	logger      zerolog.Logger
	presetsMap  map[string]model.Preset
	presetsList []string
}

// NewManager creates a new preset manager. Presets with an empty name or
// a duplicate name are skipped.
func NewManager(source VariantSource, presets []model.Preset, logger zerolog.Logger) *Manager {
	m := &Manager{
		source:      source,
		emitter:     NewEmitter(),
		logger:      logger,
		presetsMap:  make(map[string]model.Preset),
		presetsList: []string{},
	}

	for _, preset := range presets {
		if preset.Name == "" {
			logger.Warn().Str("seed", preset.Seed).Msg("skipping preset without name")
			continue
		}
		if _, exists := m.presetsMap[preset.Name]; exists {
			logger.Warn().Str("preset", preset.Name).Msg("skipping duplicate preset")
			continue
		}
		m.presetsMap[preset.Name] = preset
		m.presetsList = append(m.presetsList, preset.Name)
	}

	m.presetsList = sortPresets(m.presetsList)

	logger.Info().
		Int("count", len(m.presetsList)).
		Str("presets", strings.Join(m.presetsList, ", ")).
		Msg("loaded theme presets")

	return m
}

// SetEmitter replaces the CSS emitter, mainly to pin the clock.
func (m *Manager) SetEmitter(e *Emitter) {
	m.emitter = e
}

// sortPresets orders names with "default" first, then alphabetically.
func sortPresets(names []string) []string {
	sorted := append([]string(nil), names...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i] == "default" || sorted[j] == "default" {
			return sorted[i] == "default" && sorted[j] != "default"
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

// GetPreset returns a preset by name.
func (m *Manager) GetPreset(name string) (model.Preset, bool) {
	preset, ok := m.presetsMap[name]
	return preset, ok
}

// ListPresets returns all presets in display order.
func (m *Manager) ListPresets() []model.Preset {
	presets := make([]model.Preset, 0, len(m.presetsList))
	for _, name := range m.presetsList {
		presets = append(presets, m.presetsMap[name])
	}
	return presets
}

// Variants generates the variants for seed and contrast.
func (m *Manager) Variants(seed string, contrast float64) ([]ThemeVariant, error) {
	variants, err := m.source.Generate(seed, contrast)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", seed, err)
	}
	return variants, nil
}

// ThemeCSS generates the @theme CSS for seed and contrast.
func (m *Manager) ThemeCSS(seed string, contrast float64) (string, error) {
	variants, err := m.Variants(seed, contrast)
	if err != nil {
		return "", err
	}
	return m.emitter.GenerateThemeCSS(variants, seed, contrast), nil
}

// PresetCSS generates the @theme CSS for a named preset, falling back to
// the "default" preset when name is unknown.
func (m *Manager) PresetCSS(name string) (string, error) {
	preset, ok := m.presetsMap[name]
	if !ok {
		defaultPreset, hasDefault := m.presetsMap["default"]
		if !hasDefault {
			return "", fmt.Errorf("%w %q", ErrUnknownPreset, name)
		}
		preset = defaultPreset
	}
	return m.ThemeCSS(preset.Seed, preset.Contrast)
}
