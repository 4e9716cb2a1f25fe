// Package server is a small read-only dev server exposing a generated
// city and its summary as JSON for external viewers.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/citykit/citygen/pkg/city"
	"github.com/citykit/citygen/pkg/config"
	"github.com/citykit/citygen/pkg/export"
	"github.com/citykit/citygen/pkg/layout"
)

// Server generates a city once at startup and serves it over HTTP. The
// city is never mutated after generation, so handlers need no locking.
type Server struct {
	cfg  config.Config
	port int
	city *city.City
}

// New creates a server for the given generation config.
func New(cfg config.Config, port int) *Server {
	return &Server{cfg: cfg, port: port}
}

// Start generates the city and launches the HTTP server.
func (s *Server) Start() error {
	s.city = layout.Generate(s.cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/city", s.handleCity)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/config", s.handleConfig)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("citygen server starting on http://localhost%s", addr)
	log.Printf("seed=%d layout=%s grid=%d", s.cfg.Seed, s.cfg.Layout, s.cfg.GridSize)

	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>citygen</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>citygen</h1>
<p>City data at <code>/api/city</code>, statistics at <code>/api/summary</code>.</p>
</div>
</body></html>`)
}

func (s *Server) handleCity(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.city)
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, export.Summarize(s.city))
}

func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.cfg)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
