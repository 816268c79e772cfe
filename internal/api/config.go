package api

import (
	"os"
	"strconv"
)

// Config holds server configuration.
type Config struct {
	Port           int
	CachePath      string   // Path to the romanization cache database ("" = no cache)
	AllowedOrigins []string // WebSocket allowed origins (empty = same-origin only)
}

// ConfigFromEnv builds a Config from environment variables, with defaults
// suitable for local use.
func ConfigFromEnv() Config {
	cfg := Config{Port: 8737}
	if v := os.Getenv("LATINIZE_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 && p < 65536 {
			cfg.Port = p
		}
	}
	if v := os.Getenv("LATINIZE_CACHE"); v != "" {
		cfg.CachePath = v
	}
	return cfg
}
