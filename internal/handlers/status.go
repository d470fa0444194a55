package handlers

import (
	"io"
	"net/http"
)

// StatusBody is the liveness response of GET /status.
const StatusBody = "Service up!"

// StatusHandler reports that the process is serving requests.
type StatusHandler struct{}

// Handle implements GET /status.
func (StatusHandler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, StatusBody)
}
