// Package api provides the romanization REST and WebSocket server.
package api

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/FocuswithJustin/Latinize/core/cache"
	"github.com/FocuswithJustin/Latinize/core/romanize"
	"github.com/FocuswithJustin/Latinize/internal/logging"
)

// Server serves romanization over HTTP. Construct with NewServer.
type Server struct {
	cfg Config
	rom *romanize.Romanizer
	db  *cache.Store

	wsClients atomic.Int64
}

// NewServer wires a server around an existing Romanizer. The cache is
// optional; with an empty CachePath every request romanizes from scratch.
func NewServer(cfg Config, rom *romanize.Romanizer) (*Server, error) {
	s := &Server{cfg: cfg, rom: rom}
	if cfg.CachePath != "" {
		db, err := cache.Open(cfg.CachePath)
		if err != nil {
			return nil, err
		}
		s.db = db
	}
	return s, nil
}

// Handler returns the routed handler wrapped in request-ID and logging
// middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/romanize", s.handleRomanize)
	mux.HandleFunc("/scripts", s.handleScripts)
	mux.HandleFunc("/version", s.handleVersion)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return logging.CombinedMiddleware(mux)
}

// Start runs the server until the listener fails.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	logging.ServerStartup("api", "http", s.cfg.Port,
		"data_version", s.rom.Version(),
		"rules", s.rom.RuleCount(),
		"cache", s.cfg.CachePath != "")
	return http.ListenAndServe(addr, s.Handler())
}

// Close releases the cache database, if one is open.
func (s *Server) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
