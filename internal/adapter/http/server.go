// Package http exposes the explorer over a JSON API: sidebar option
// discovery, summary, section views, feedback submission, the banner asset,
// and the operational health/readiness/metrics trio.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ktpham/nuclear-explorer/internal/domain"
	"github.com/ktpham/nuclear-explorer/internal/explorer"
	"github.com/ktpham/nuclear-explorer/internal/view"
)

// Server serves the dashboard API over an Explorer.
type Server struct {
	httpServer *http.Server
	explorer   *explorer.Explorer
	bannerPath string
	logger     *slog.Logger
}

// NewServer wires the routes. The banner's existence is verified at startup
// by main, not here; a vanished file afterwards surfaces as a 404.
func NewServer(addr, bannerPath string, exp *explorer.Explorer, logger *slog.Logger) *Server {
	r := mux.NewRouter()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		explorer:   exp,
		bannerPath: bannerPath,
		logger:     logger,
	}

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/readyz", s.handleReady).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.HandleFunc("/api/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/api/filters", s.handleFilters).Methods(http.MethodGet)
	r.HandleFunc("/api/summary", s.handleSummary).Methods(http.MethodGet)
	r.HandleFunc("/api/views/{section}", s.handleView).Methods(http.MethodGet)
	r.HandleFunc("/api/feedback", s.handleFeedback).Methods(http.MethodPost)
	r.HandleFunc("/banner", s.handleBanner).Methods(http.MethodGet)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.explorer.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.explorer.Status())
}

func (s *Server) handleFilters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.explorer.Options())
}

type summaryResponse struct {
	Summary *domain.Summary `json:"summary,omitempty"`
	Warning string          `json:"warning,omitempty"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	c, err := s.criteriaFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	sum := s.explorer.Summarize(c)
	if sum == nil {
		writeJSON(w, http.StatusOK, summaryResponse{Warning: "No data matches the selected filters."})
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{Summary: sum})
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	c, err := s.criteriaFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	section := view.Section(mux.Vars(r)["section"])
	model, err := s.explorer.RenderSection(section, c)
	if err != nil {
		// The only render failure is a section outside the catalog.
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, model)
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var entry domain.FeedbackEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid feedback body"))
		return
	}

	ack, err := s.explorer.SubmitFeedback(entry)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, ack)
}

func (s *Server) handleBanner(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, s.bannerPath)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response body
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
