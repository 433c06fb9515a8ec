package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/osse101/KaleFarm_Go/internal/logger"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	buf := captureLogs(t)

	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-API-Key", "secret-key-123")
	req.Header.Set("Authorization", "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()

	if !strings.Contains(logOutput, LogMsgRequestHeaders) {
		t.Fatalf("Log output missing headers log: %s", logOutput)
	}
	if strings.Contains(logOutput, "secret-key-123") {
		t.Errorf("SECURITY FAIL: Log output contains X-API-Key value: %s", logOutput)
	}
	if strings.Contains(logOutput, "Bearer mytoken") {
		t.Errorf("SECURITY FAIL: Log output contains Authorization value: %s", logOutput)
	}
	if !strings.Contains(logOutput, "TestAgent") {
		t.Errorf("Log output missing non-sensitive header: %s", logOutput)
	}
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	captureLogs(t)

	var seen string
	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.GetRequestID(r.Context())
	}))

	t.Run("Client supplied", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/farm/total-staked", nil)
		req.Header.Set(HeaderRequestID, "trace-abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if seen != "trace-abc" {
			t.Errorf("expected context request id trace-abc, got %q", seen)
		}
		if got := rec.Header().Get(HeaderRequestID); got != "trace-abc" {
			t.Errorf("expected echoed request id, got %q", got)
		}
	})

	t.Run("Generated when unusable", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/farm/total-staked", nil)
		req.Header.Set(HeaderRequestID, "has space")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if seen == "" || seen == "has space" {
			t.Errorf("expected a generated request id, got %q", seen)
		}
		if rec.Header().Get(HeaderRequestID) != seen {
			t.Errorf("response header and context disagree")
		}
	})
}

func TestLoggingMiddleware_SkipsQuietPaths(t *testing.T) {
	buf := captureLogs(t)

	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/healthz", nil))

	if strings.Contains(buf.String(), LogMsgRequestStarted) {
		t.Errorf("health checks should not be logged: %s", buf.String())
	}
}
