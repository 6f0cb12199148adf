package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	called := ""
	mw1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "1"
			next.ServeHTTP(w, r)
		})
	}
	mw2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "2"
			next.ServeHTTP(w, r)
		})
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called += "h"
		w.WriteHeader(http.StatusNoContent)
	}), mw1, nil, mw2)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if called != "12h" {
		t.Fatalf("call order = %q, want %q", called, "12h")
	}
}

func TestMethodNotAllowedWritesAllowHeaderAndStatus(t *testing.T) {
	t.Parallel()

	h := MethodNotAllowed(http.MethodPost)
	req := httptest.NewRequest(http.MethodGet, "/pools", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != http.MethodPost {
		t.Fatalf("Allow = %q, want %q", got, http.MethodPost)
	}
}

func TestRequestIDAddsUUIDWhenMissing(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(RequestIDHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rr, req)

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("request id %q is not a uuid: %v", seen, err)
	}
	if got := rr.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("response request id = %q, want %q", got, seen)
	}
}

func TestRequestIDKeepsIncomingHeader(t *testing.T) {
	t.Parallel()

	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get(RequestIDHeader); got != "req-123" {
		t.Fatalf("request id = %q, want %q", got, "req-123")
	}
}

func TestRecoverPanicLogsRequestContext(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	h := RecoverPanic(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	entries := logs.FilterMessage("panic recovered").All()
	if len(entries) != 1 {
		t.Fatalf("panic log entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["path"] != "/panic" || fields["request_id"] != "req-123" {
		t.Fatalf("panic log fields = %v", fields)
	}
}

func TestWantsJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		accept string
		want   bool
	}{
		{accept: "", want: false},
		{accept: "text/html", want: false},
		{accept: "application/json", want: true},
		{accept: "text/html, application/json;q=0.9", want: true},
		{accept: "application/jsonx", want: false},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(http.MethodPost, "/pools", nil)
		if tc.accept != "" {
			req.Header.Set("Accept", tc.accept)
		}
		if got := WantsJSON(req); got != tc.want {
			t.Fatalf("WantsJSON(%q) = %t, want %t", tc.accept, got, tc.want)
		}
	}
	if WantsJSON(nil) {
		t.Fatal("WantsJSON(nil) = true, want false")
	}
}

func TestWriteJSONSetsContentTypeAndBody(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	err := WriteJSON(rr, http.StatusCreated, struct {
		Value string `json:"value"`
	}{Value: "ok"})
	if err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("content-type = %q, want %q", got, "application/json")
	}
	if body := rr.Body.String(); !strings.Contains(body, `"value":"ok"`) {
		t.Fatalf("body = %q, want encoded json", body)
	}
}

func TestWriteJSONErrorWrapsMessage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteJSONError(rr, http.StatusConflict, "busy"); err != nil {
		t.Fatalf("WriteJSONError() error = %v", err)
	}
	if body := rr.Body.String(); !strings.Contains(body, `"error":"busy"`) {
		t.Fatalf("body = %q", body)
	}
}
