package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/FocuswithJustin/Latinize/core/cache"
	"github.com/FocuswithJustin/Latinize/core/romanize"
	"github.com/FocuswithJustin/Latinize/core/translit"
)

var startTime = time.Now()

// APIResponse is the envelope for all REST responses.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
	Meta    *APIMeta  `json:"meta,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIMeta contains response metadata.
type APIMeta struct {
	Timestamp string `json:"timestamp"`
}

// RomanizeRequest is the body of POST /romanize.
type RomanizeRequest struct {
	Text    string `json:"text"`
	Lcode   string `json:"lcode,omitempty"`
	Format  string `json:"format,omitempty"`  // str (default) or edges
	Escaped bool   `json:"escaped,omitempty"` // decode \uXXXX escapes first
}

// RomanizeResponse is the payload of POST /romanize.
type RomanizeResponse struct {
	Text   string            `json:"text,omitempty"`
	Edges  [][]translit.Edge `json:"edges,omitempty"`
	Lcode  string            `json:"lcode,omitempty"`
	Cached bool              `json:"cached,omitempty"`
}

// HealthInfo is the payload of GET /health.
type HealthInfo struct {
	Status      string `json:"status"`
	Uptime      string `json:"uptime"`
	DataVersion string `json:"data_version"`
	Rules       int    `json:"rules"`
}

// VersionInfo is the payload of GET /version.
type VersionInfo struct {
	DataVersion string `json:"data_version"`
	Checksum    string `json:"checksum"`
	Rules       int    `json:"rules"`
}

const maxRequestBody = 4 << 20

func (s *Server) handleRomanize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only POST is allowed")
		return
	}

	var req RomanizeRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
		return
	}

	format, err := romanize.ParseFormat(req.Format)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_FORMAT", err.Error())
		return
	}

	text := req.Text
	if req.Escaped {
		if text, err = romanize.DecodeEscapes(req.Text); err != nil {
			respondError(w, http.StatusBadRequest, "INVALID_ESCAPE", err.Error())
			return
		}
	}

	resp := RomanizeResponse{Lcode: req.Lcode}
	switch format {
	case romanize.FormatEdges:
		resp.Edges = s.rom.RomanizeEdges(text, req.Lcode)
	default:
		resp.Text, resp.Cached = s.romanizeCached(text, req.Lcode)
	}
	respond(w, http.StatusOK, resp)
}

// romanizeCached serves whole-text requests through the cache when one is
// configured.
func (s *Server) romanizeCached(text, lcode string) (string, bool) {
	if s.db == nil {
		return s.rom.Romanize(text, lcode), false
	}
	key := cache.Key(text, lcode, s.rom.Checksum())
	if hit, ok, err := s.db.Get(key); err == nil && ok {
		return hit, true
	}
	out := s.rom.Romanize(text, lcode)
	_ = s.db.Put(key, lcode, text, out)
	return out, false
}

func (s *Server) handleScripts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}
	scripts := s.rom.Scripts()
	names := make([]string, len(scripts))
	for i, sc := range scripts {
		names[i] = string(sc)
	}
	respond(w, http.StatusOK, map[string]any{"scripts": names})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}
	respond(w, http.StatusOK, VersionInfo{
		DataVersion: s.rom.Version(),
		Checksum:    s.rom.Checksum(),
		Rules:       s.rom.RuleCount(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Only GET is allowed")
		return
	}
	respond(w, http.StatusOK, HealthInfo{
		Status:      "healthy",
		Uptime:      time.Since(startTime).String(),
		DataVersion: s.rom.Version(),
		Rules:       s.rom.RuleCount(),
	})
}

func respond(w http.ResponseWriter, status int, data any) {
	response := APIResponse{
		Success: true,
		Data:    data,
		Meta:    &APIMeta{Timestamp: time.Now().UTC().Format(time.RFC3339)},
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	response := APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: message},
		Meta:    &APIMeta{Timestamp: time.Now().UTC().Format(time.RFC3339)},
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}
