package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerLogsMethodAndPath(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	h := RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/pools", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	entries := logs.FilterMessage("http request").All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != http.MethodPost {
		t.Fatalf("method = %v, want %q", fields["method"], http.MethodPost)
	}
	if fields["path"] != "/pools" {
		t.Fatalf("path = %v, want %q", fields["path"], "/pools")
	}
	if fields["status"] != int64(http.StatusNoContent) {
		t.Fatalf("status field = %v, want %d", fields["status"], http.StatusNoContent)
	}
	if fields["request_id"] != "req-123" {
		t.Fatalf("request_id = %v, want %q", fields["request_id"], "req-123")
	}
}

func TestRequestLoggerCapturesImplicitStatusOKAndBytes(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	h := RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(http.StatusOK) {
		t.Fatalf("status field = %v, want %d", fields["status"], http.StatusOK)
	}
	if fields["bytes"] != int64(2) {
		t.Fatalf("bytes field = %v, want 2", fields["bytes"])
	}
	if _, ok := fields["latency"]; !ok {
		t.Fatalf("latency field missing: %v", fields)
	}
	if fields["request_id"] != "-" {
		t.Fatalf("request_id = %v, want %q", fields["request_id"], "-")
	}
}

func TestRequestLoggerToleratesNilLogger(t *testing.T) {
	t.Parallel()

	h := RequestLogger(nil)(nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}
