// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skillforge/recommender/internal/app"
	"github.com/skillforge/recommender/internal/domain/types"
	"github.com/skillforge/recommender/pkg/metrics"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the orchestrator implementation.
type Dependencies interface {
	// Recommend runs the recommendation pipeline for one project.
	Recommend(ctx context.Context, projectID int, q app.Query) (types.Result, error)

	// DefaultQuery returns the configured per-request defaults.
	DefaultQuery() app.Query
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	candidatesHandler *CandidatesHandler
}

// NewServer creates a new API server with all handlers. maxTopN caps the
// top_n query parameter on the candidates endpoint.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxTopN int) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		candidatesHandler: NewCandidatesHandler(deps, maxTopN),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", RequestIDMiddleware(MetricsMiddleware(s.healthHandler.HandleHealth, "healthz")))
	mux.HandleFunc("/stats", RequestIDMiddleware(MetricsMiddleware(s.statsHandler.HandleStats, "stats")))
	mux.HandleFunc("/projects/", RequestIDMiddleware(MetricsMiddleware(s.candidatesHandler.HandleGetCandidates, "candidates")))
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// notFoundResponse is the contract envelope for an unresolved project.
type notFoundResponse struct {
	Error     string `json:"error"`
	ProjectID int    `json:"project_id"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
