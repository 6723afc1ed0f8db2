// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/skillforge/recommender/internal/adapters/repository"
)

// CandidatesHandler handles candidate-recommendation requests.
type CandidatesHandler struct {
	deps    Dependencies
	maxTopN int
}

// NewCandidatesHandler creates a new candidates handler.
func NewCandidatesHandler(deps Dependencies, maxTopN int) *CandidatesHandler {
	return &CandidatesHandler{deps: deps, maxTopN: maxTopN}
}

// HandleGetCandidates handles GET /projects/{projectId}/candidates requests
// with optional top_n, semi_active_min_similarity and source parameters.
func (h *CandidatesHandler) HandleGetCandidates(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_candidates"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	projectID, ok := parseCandidatesPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if projectID < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrInvalidProjectID))
		return
	}

	q := h.deps.DefaultQuery()
	params := r.URL.Query()

	if v := params.Get("top_n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if n > h.maxTopN {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		q.TopN = n
	}

	if v := params.Get("semi_active_min_similarity"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 || f > 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		q.SemiActiveMinSimilarity = f
	}

	if v := params.Get("source"); v != "" {
		src, err := repository.ParseSource(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unknown_source", err)
			return
		}
		q.Source = src
	}

	result, err := h.deps.Recommend(r.Context(), projectID, q)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProjectNotFound):
			writeJSON(w, http.StatusNotFound, notFoundResponse{
				Error:     "PROJECT_NOT_FOUND",
				ProjectID: projectID,
			})
		case errors.Is(err, repository.ErrSourceUnavailable):
			writeError(w, http.StatusServiceUnavailable, "source_unavailable", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// parseCandidatesPath extracts the project id from
// /projects/{projectId}/candidates. The bool result is false for any other
// path under the /projects/ prefix.
func parseCandidatesPath(path string) (int, bool) {
	rest := strings.TrimPrefix(path, "/projects/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[1] != "candidates" {
		return 0, false
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	return id, true
}
