package httpserver

import (
	"net/http"
	"time"
)

// New builds the draft service's HTTP server. A submission fans out to
// external verification providers before it answers, so the write timeout
// has to cover the full provider call budget, not just local handling.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
