package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"tailtheme/model"
	"tailtheme/storage"
	"tailtheme/theme"
)

type Server struct {
	manager  *theme.Manager
	store    *storage.Store
	ws       *WSConnectionManager
	live     *LiveStyle
	logger   zerolog.Logger
	upgrader websocket.Upgrader
}

func NewServer(manager *theme.Manager, store *storage.Store, logger zerolog.Logger) *Server {
	ws := NewWSConnectionManager(logger)
	return &Server{
		manager: manager,
		store:   store,
		ws:      ws,
		live:    NewLiveStyle(ws),
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/apply", s.handleApply)
	mux.HandleFunc("/api/live", s.handleLive)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/save", s.handleSave)
}

// Live returns the style context shared by all preview clients.
func (s *Server) Live() *LiveStyle {
	return s.live
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{"status": "ok", "clients": s.ws.Count()}
	writeJSON(w, http.StatusOK, resp)
}

// ---------- live apply ----------

type themeRequest struct {
	Preset   string   `json:"preset,omitempty"`
	Seed     string   `json:"seed,omitempty"`
	Contrast *float64 `json:"contrast,omitempty"`
}

// resolve fills seed and contrast from the named preset when no seed is given.
func (s *Server) resolve(req themeRequest) (string, float64, error) {
	contrast := 0.0
	if req.Contrast != nil {
		contrast = *req.Contrast
	}
	if req.Seed != "" {
		return req.Seed, contrast, nil
	}

	name := req.Preset
	if name == "" {
		name = "default"
	}
	preset, ok := s.manager.GetPreset(name)
	if !ok {
		return "", 0, fmt.Errorf("%w %q", theme.ErrUnknownPreset, name)
	}
	if req.Contrast != nil {
		return preset.Seed, contrast, nil
	}
	return preset.Seed, preset.Contrast, nil
}

type applyResponse struct {
	Seed       string  `json:"seed"`
	Contrast   float64 `json:"contrast"`
	Properties int     `json:"properties"`
	Clients    int     `json:"clients"`
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	seed, contrast, err := s.resolve(req)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	variants, err := s.manager.Variants(seed, contrast)
	if err != nil {
		writeGenerateError(w, err)
		s.logger.Warn().Err(err).Str("seed", seed).Msg("apply failed")
		return
	}

	theme.ApplyColorScheme(s.live, variants)
	properties := len(theme.ConvertToVariables(variants))
	s.ws.Broadcast(PropertyMessage{Type: MessageApplied, Count: properties})

	s.logger.Info().
		Str("seed", seed).
		Float64("contrast", contrast).
		Int("properties", properties).
		Int("clients", s.ws.Count()).
		Msg("theme applied")

	writeJSON(w, http.StatusOK, applyResponse{
		Seed:       seed,
		Contrast:   contrast,
		Properties: properties,
		Clients:    s.ws.Count(),
	})
}

// handleLive upgrades to a WebSocket and streams set-property messages.
// New clients first receive the properties already applied.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	sent, err := s.live.Attach(conn)
	if err != nil {
		s.logger.Debug().Err(err).Msg("sending snapshot failed")
		_ = conn.Close()
		return
	}
	s.logger.Debug().Str("remote", conn.RemoteAddr().String()).Int("properties", sent).Msg("preview client connected")

	// Clients only listen; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			s.ws.Remove(conn)
			s.logger.Debug().Err(err).Msg("preview client disconnected")
			return
		}
	}
}

// ---------- saved themes ----------

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			http.Error(w, "invalid from", http.StatusBadRequest)
			return
		}
		from = t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			http.Error(w, "invalid to", http.StatusBadRequest)
			return
		}
		to = t
	}

	records, err := s.store.ListThemes(from, to)
	if err != nil {
		s.logger.Error().Err(err).Msg("list themes")
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []model.ThemeRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	seed, contrast, err := s.resolve(req)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	css, err := s.manager.ThemeCSS(seed, contrast)
	if err != nil {
		writeGenerateError(w, err)
		return
	}

	header := theme.ParseHeader(css)
	rec, err := s.store.SaveTheme(model.ThemeRecord{
		Seed:        seed,
		Contrast:    contrast,
		GeneratedAt: header.GeneratedAt,
	}, css)
	if err != nil {
		s.logger.Error().Err(err).Msg("save theme")
		http.Error(w, "failed to save theme", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, rec)
}

func writeGenerateError(w http.ResponseWriter, err error) {
	if errors.Is(err, theme.ErrUnknownPreset) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if errors.Is(err, theme.ErrInvalidSeed) || errors.Is(err, theme.ErrInvalidContrast) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "failed to generate theme", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
