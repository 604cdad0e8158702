package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"tailtheme/model"
)

// Handler handles theme-related HTTP requests.
type Handler struct {
	manager *Manager
}

// NewHandler creates a new theme handler.
func NewHandler(manager *Manager) *Handler {
	return &Handler{
		manager: manager,
	}
}

// HandleTheme serves the @theme CSS for a preset or an explicit seed.
func (h *Handler) HandleTheme(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		css string
		err error
	)
	if q.Get("seed") == "" {
		css, err = h.manager.PresetCSS(q.Get("preset"))
	} else {
		var contrast float64
		contrast, err = parseContrast(q.Get("contrast"))
		if err == nil {
			css, err = h.manager.ThemeCSS(q.Get("seed"), contrast)
		}
	}
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(css))
}

// HandleTokens returns the flattened variables as an ordered JSON array.
func (h *Handler) HandleTokens(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	seed, contrast := q.Get("seed"), 0.0
	if seed == "" {
		preset, ok := h.manager.GetPreset(q.Get("preset"))
		if !ok {
			preset, ok = h.manager.GetPreset("default")
		}
		if !ok {
			writeError(w, fmt.Errorf("%w %q", ErrUnknownPreset, q.Get("preset")))
			return
		}
		seed, contrast = preset.Seed, preset.Contrast
	} else {
		var err error
		if contrast, err = parseContrast(q.Get("contrast")); err != nil {
			writeError(w, err)
			return
		}
	}

	variants, err := h.manager.Variants(seed, contrast)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(ConvertToVariables(variants)); err != nil {
		http.Error(w, "failed to encode tokens", http.StatusInternalServerError)
		return
	}
}

// HandlePresets returns the available presets.
func (h *Handler) HandlePresets(w http.ResponseWriter, r *http.Request) {
	presets := h.manager.ListPresets()

	type PresetResponse struct {
		Name     string  `json:"name"`
		Display  string  `json:"display"`
		Seed     string  `json:"seed"`
		Contrast float64 `json:"contrast"`
	}

	presetsResp := make([]PresetResponse, 0, len(presets))
	for _, preset := range presets {
		presetsResp = append(presetsResp, PresetResponse{
			Name:     preset.Name,
			Display:  DisplayName(preset),
			Seed:     preset.Seed,
			Contrast: preset.Contrast,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if err := json.NewEncoder(w).Encode(presetsResp); err != nil {
		http.Error(w, "failed to encode presets", http.StatusInternalServerError)
		return
	}
}

// GeneratePresetMenuHTML generates HTML for the preset selection menu.
func (h *Handler) GeneratePresetMenuHTML(currentPreset string) string {
	var builder strings.Builder

	for _, preset := range h.manager.ListPresets() {
		builder.WriteString(`<button data-preset="`)
		builder.WriteString(preset.Name)
		builder.WriteString(`" data-seed="`)
		builder.WriteString(preset.Seed)
		builder.WriteString(`" data-contrast="`)
		builder.WriteString(FormatContrast(preset.Contrast))
		builder.WriteString(`"`)
		if preset.Name == currentPreset {
			builder.WriteString(` class="active"`)
		}
		builder.WriteString(`><i class="swatch" style="background:`)
		builder.WriteString(preset.Seed)
		builder.WriteString(`;"></i> `)
		builder.WriteString(DisplayName(preset))
		builder.WriteString(`</button>`)
	}

	return builder.String()
}

// DisplayName returns the preset's display name, deriving one from the
// hyphenated name when none is configured.
func DisplayName(preset model.Preset) string {
	if preset.Display != "" {
		return preset.Display
	}
	parts := strings.Split(preset.Name, "-")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}

// parseContrast parses a contrast query value; empty means 0.
func parseContrast(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	contrast, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrInvalidContrast
	}
	return contrast, nil
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrUnknownPreset) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if errors.Is(err, ErrInvalidSeed) || errors.Is(err, ErrInvalidContrast) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "failed to generate theme", http.StatusInternalServerError)
}
