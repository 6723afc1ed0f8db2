// Package app provides the recommendation orchestrator behind the HTTP API.
// It wires rules, vectorization, similarity scoring, gating and ranking into
// one synchronous request/response cycle. The service holds no mutable
// request state: every call is an independent, deterministic computation
// over whatever the repositories currently return.
package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/skillforge/recommender/internal/adapters/repository"
	"github.com/skillforge/recommender/internal/domain/eligibility"
	"github.com/skillforge/recommender/internal/domain/rank"
	"github.com/skillforge/recommender/internal/domain/rules"
	"github.com/skillforge/recommender/internal/domain/similarity"
	"github.com/skillforge/recommender/internal/domain/types"
	"github.com/skillforge/recommender/internal/domain/vectorize"
	"github.com/skillforge/recommender/pkg/logger"
	"github.com/skillforge/recommender/pkg/metrics"
)

// Product defaults, overridable via options.
const (
	defaultTopN       = 7
	defaultMaxTopN    = 100
	defaultSemiActive = 0.80
)

// Query carries the effective parameters for one recommendation request.
type Query struct {
	// TopN is the maximum number of candidates returned.
	TopN int

	// SemiActiveMinSimilarity is the post-score threshold for semi-active
	// candidates. Values outside [0,1] fall back to the configured default.
	SemiActiveMinSimilarity float64

	// Source selects the repository pair. Empty means the default source.
	Source repository.Source
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTopNDefault sets the candidate list length used when a request does
// not override it.
func WithTopNDefault(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topNDefault = n
		}
	}
}

// WithMaxTopN caps the top_n a request may ask for.
func WithMaxTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxTopN = n
		}
	}
}

// WithSemiActiveMinSimilarityDefault sets the default post-score threshold.
func WithSemiActiveMinSimilarityDefault(v float64) Option {
	return func(s *Service) {
		if v >= 0 && v <= 1 {
			s.semiActiveDefault = v
		}
	}
}

// WithDefaultSource sets the repository pair used when a request carries no
// source parameter.
func WithDefaultSource(src repository.Source) Option {
	return func(s *Service) {
		if src != "" {
			s.defaultSource = src
		}
	}
}

// WithPolicy sets the rules policy shared by gating and vectorization.
func WithPolicy(p *rules.Policy) Option {
	return func(s *Service) {
		if p != nil {
			s.policy = p
		}
	}
}

// WithEncoder sets the feature-vector encoder.
func WithEncoder(e *vectorize.Encoder) Option {
	return func(s *Service) {
		if e != nil {
			s.encoder = e
		}
	}
}

// WithSource wires a repository pair under the given source name.
func WithSource(src repository.Source, pair repository.Pair) Option {
	return func(s *Service) {
		s.sources[src] = pair
	}
}

// Service implements the candidate-recommendation pipeline.
type Service struct {
	topNDefault       int
	maxTopN           int
	semiActiveDefault float64
	defaultSource     repository.Source

	policy  *rules.Policy
	encoder *vectorize.Encoder
	gate    *eligibility.Gate

	sources map[repository.Source]repository.Pair

	logger logger.Logger
}

// New constructs a Service with default configuration, then applies options.
func New(opts ...Option) *Service {
	s := &Service{
		topNDefault:       defaultTopN,
		maxTopN:           defaultMaxTopN,
		semiActiveDefault: defaultSemiActive,
		defaultSource:     repository.SourceDB,
		sources:           make(map[repository.Source]repository.Pair),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.policy == nil {
		s.policy = rules.NewPolicy()
	}
	if s.encoder == nil {
		s.encoder = vectorize.NewEncoder(vectorize.WithPolicy(s.policy))
	}
	s.gate = eligibility.NewGate(s.policy)
	if s.logger == nil {
		s.logger = logger.Get()
	}

	return s
}

// DefaultQuery returns a Query preloaded with the configured defaults.
// Handlers start from this and apply per-request overrides.
func (s *Service) DefaultQuery() Query {
	return Query{
		TopN:                    s.topNDefault,
		SemiActiveMinSimilarity: s.semiActiveDefault,
		Source:                  s.defaultSource,
	}
}

// Recommend runs the full pipeline for one project: load the project and the
// student population, build the shared domain vocabulary, gate, vectorize,
// score, gate again, rank and truncate.
//
// An unknown project id surfaces as repository.ErrProjectNotFound; a source
// that was never wired surfaces as repository.ErrSourceUnavailable. Both are
// expected outcomes for callers to translate, not system failures.
func (s *Service) Recommend(ctx context.Context, projectID int, q Query) (types.Result, error) {
	start := time.Now()

	topN := q.TopN
	if topN <= 0 {
		topN = s.topNDefault
	}
	if topN > s.maxTopN {
		topN = s.maxTopN
	}
	minSim := q.SemiActiveMinSimilarity
	if minSim < 0 || minSim > 1 {
		minSim = s.semiActiveDefault
	}
	src := q.Source
	if src == "" {
		src = s.defaultSource
	}

	pair, ok := s.sources[src]
	if !ok {
		return types.Result{}, fmt.Errorf("%w: %s", repository.ErrSourceUnavailable, src)
	}

	project, err := pair.Projects.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			metrics.RecordProjectNotFound()
			s.logger.Debug(ctx, "project not found", logger.Int("projectID", projectID))
			return types.Result{}, err
		}
		return types.Result{}, fmt.Errorf("failed to load project: %w", err)
	}

	students, err := pair.Students.All(ctx)
	if err != nil {
		return types.Result{}, fmt.Errorf("failed to load students: %w", err)
	}
	projects, err := pair.Projects.All(ctx)
	if err != nil {
		return types.Result{}, fmt.Errorf("failed to load projects: %w", err)
	}

	// The vocabulary is rebuilt per request from the union of both entity
	// sets, so coordinate assignment only depends on the data, never on
	// repository iteration order.
	vocab := vectorize.DomainVocab(projects, students)
	projectVec := s.encoder.ProjectVector(project, vocab)

	candidates := make([]types.Candidate, 0, len(students))
	eligible := 0
	for _, st := range students {
		if !s.gate.Eligible(st, project) {
			continue
		}
		eligible++

		sim := similarity.Cosine(s.encoder.StudentVector(st, vocab), projectVec)
		if !s.gate.PassesActivityThreshold(st.ActivityProfile, sim, minSim) {
			continue
		}

		candidates = append(candidates, types.Candidate{
			StudentID:       st.ID,
			Name:            st.Name,
			Domain:          st.Domain,
			Level:           string(st.Level),
			ActivityProfile: string(st.ActivityProfile),
			Similarity:      similarity.Round4(sim),
		})
	}

	rank.Order(candidates)
	candidates = rank.Truncate(candidates, topN)

	metrics.RecordRecommendation(string(src), time.Since(start), len(candidates), eligible)
	s.logger.Debug(ctx, "recommendation computed",
		logger.Int("projectID", projectID),
		logger.String("source", string(src)),
		logger.Int("eligible", eligible),
		logger.Int("returned", len(candidates)),
	)

	return types.Result{
		ProjectID:               project.ID,
		TopN:                    topN,
		SemiActiveMinSimilarity: minSim,
		Candidates:              candidates,
	}, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	wired := make([]string, 0, len(s.sources))
	for src := range s.sources {
		wired = append(wired, string(src))
	}
	sort.Strings(wired)

	return map[string]interface{}{
		"topNDefault":                    s.topNDefault,
		"maxTopN":                        s.maxTopN,
		"semiActiveMinSimilarityDefault": s.semiActiveDefault,
		"defaultSource":                  string(s.defaultSource),
		"sources":                        wired,
	}
}
