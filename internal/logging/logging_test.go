package logging

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// captureLogOutput captures log output for testing by temporarily
// redirecting the logger to write to a buffer
func captureLogOutput(f func()) string {
	var buf bytes.Buffer

	oldLogger := defaultLogger
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	defaultLogger = slog.New(handler)

	f()

	defaultLogger = oldLogger
	return buf.String()
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(string, ...any)
		level   string
	}{
		{"debug", Debug, "DEBUG"},
		{"info", Info, "INFO"},
		{"warn", Warn, "WARN"},
		{"error", Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureLogOutput(func() {
				tt.logFunc("test message", "key", "value")
			})
			if !strings.Contains(out, tt.level) {
				t.Errorf("expected level %s in output, got: %s", tt.level, out)
			}
			if !strings.Contains(out, "test message") {
				t.Errorf("expected message in output, got: %s", out)
			}
			if !strings.Contains(out, `"key":"value"`) {
				t.Errorf("expected key-value pair in output, got: %s", out)
			}
		})
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()

	if got := GetRequestID(ctx); got != "" {
		t.Errorf("GetRequestID on empty context = %q, want empty", got)
	}

	ctx = WithRequestID(ctx, "req-123")
	if got := GetRequestID(ctx); got != "req-123" {
		t.Errorf("GetRequestID = %q, want %q", got, "req-123")
	}

	out := captureLogOutput(func() {
		InfoContext(ctx, "with request id")
	})
	if !strings.Contains(out, "req-123") {
		t.Errorf("expected request_id in output, got: %s", out)
	}
}

func TestDomainHelpers(t *testing.T) {
	out := captureLogOutput(func() {
		RuleLoading("embedded", "2026.1", 1234)
	})
	if !strings.Contains(out, "rule_loading") || !strings.Contains(out, `"rule_count":1234`) {
		t.Errorf("unexpected rule_loading output: %s", out)
	}

	out = captureLogOutput(func() {
		LanguageFallback("xxx", "Arabic")
	})
	if !strings.Contains(out, "language_fallback") || !strings.Contains(out, `"lcode":"xxx"`) {
		t.Errorf("unexpected language_fallback output: %s", out)
	}

	out = captureLogOutput(func() {
		CacheEvent("hit", "/tmp/cache.db")
	})
	if !strings.Contains(out, "cache_event") {
		t.Errorf("unexpected cache_event output: %s", out)
	}

	out = captureLogOutput(func() {
		ServerStartup("api", "http", 8080)
	})
	if !strings.Contains(out, "server_startup") || !strings.Contains(out, `"port":8080`) {
		t.Errorf("unexpected server_startup output: %s", out)
	}
}

func TestHTTPRequest(t *testing.T) {
	out := captureLogOutput(func() {
		HTTPRequest("POST", "/romanize", "127.0.0.1:1234", 200, 5*time.Millisecond)
	})
	for _, want := range []string{"http_request", `"method":"POST"`, `"path":"/romanize"`, `"status_code":200`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output, got: %s", want, out)
		}
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seenID string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("generates id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/scripts", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if seenID == "" {
			t.Error("expected request ID in context")
		}
		if got := rec.Header().Get("X-Request-ID"); got != seenID {
			t.Errorf("response header X-Request-ID = %q, want %q", got, seenID)
		}
	})

	t.Run("honors caller id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/scripts", nil)
		req.Header.Set("X-Request-ID", "caller-supplied")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if seenID != "caller-supplied" {
			t.Errorf("request ID = %q, want caller-supplied", seenID)
		}
	})
}

func TestLoggingMiddleware(t *testing.T) {
	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	out := captureLogOutput(func() {
		req := httptest.NewRequest("GET", "/healthz", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
	})

	if !strings.Contains(out, `"status_code":418`) {
		t.Errorf("expected captured status code in output, got: %s", out)
	}
}
