// Package repository defines the data-source contracts for the recommender
// and the source switch between them.
package repository

import (
	"context"
	"fmt"

	"github.com/skillforge/recommender/internal/domain/model"
)

// Source selects which repository pair serves a request.
type Source string

// Known sources. SourceDB is backed by the persistent store, SourceJSON by a
// bundled snapshot file. Both produce identical record shapes; the engine
// never knows which one it is talking to.
const (
	SourceDB   Source = "db"
	SourceJSON Source = "json"
)

// ParseSource maps a request value onto a known source.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceDB:
		return SourceDB, nil
	case SourceJSON:
		return SourceJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSource, s)
	}
}

// ProjectRepository provides read access to normalized projects.
type ProjectRepository interface {
	// FindByID returns the normalized project, or ErrProjectNotFound when the
	// id is unknown. Absence is an expected outcome, not a system failure.
	FindByID(ctx context.Context, id int) (model.Project, error)

	// All returns every currently visible project. Order is unspecified and
	// must not be relied upon.
	All(ctx context.Context) ([]model.Project, error)
}

// StudentRepository provides read access to normalized students.
type StudentRepository interface {
	// All returns every currently visible student. Order is unspecified and
	// must not be relied upon.
	All(ctx context.Context) ([]model.Student, error)
}

// Pair bundles the project and student repositories backed by one source.
type Pair struct {
	Projects ProjectRepository
	Students StudentRepository
}
