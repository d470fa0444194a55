package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/piped-embed/server/internal/logging"
)

func TestRequestLoggerAttachesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = logging.RequestIDFromContext(r.Context())
		if logging.FromContext(r.Context()) == slog.Default() {
			t.Error("expected request scoped logger")
		}
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/watch?v=abc", nil)
	rec := httptest.NewRecorder()
	RequestLogger(logger)(next).ServeHTTP(rec, req)

	if seenID == "" {
		t.Fatal("expected request id on context")
	}
	if got := rec.Header().Get(RequestIDHeader); got != seenID {
		t.Fatalf("expected header %q got %q", seenID, got)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log entry: %v", err)
	}
	if entry["msg"] != "request completed" {
		t.Fatalf("unexpected message: %v", entry["msg"])
	}
	if entry["request_id"] != seenID || entry["path"] != "/watch" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if status, _ := entry["status"].(float64); int(status) != http.StatusTeapot {
		t.Fatalf("unexpected status in log: %v", entry["status"])
	}
	if n, _ := entry["bytes"].(float64); int(n) != len("short and stout") {
		t.Fatalf("unexpected byte count in log: %v", entry["bytes"])
	}
}

func TestRequestLoggerRecoversPanics(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	RequestLogger(logger)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}
