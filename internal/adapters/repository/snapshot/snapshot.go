// Package snapshot serves normalized records from a bundled JSON fixture.
// The whole file is parsed at construction time; an unreadable or malformed
// snapshot is a fatal constructor error, the store never serves partial data.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"github.com/skillforge/recommender/internal/adapters/repository"
	"github.com/skillforge/recommender/internal/domain/model"
	"github.com/skillforge/recommender/pkg/metrics"
)

// Sentinel kinds for snapshot errors.
var (
	ErrReadSnapshot   = errors.New("snapshot read failed")
	ErrDecodeSnapshot = errors.New("snapshot decode failed")
	ErrInvalidShape   = errors.New("snapshot missing entities block")
)

// document mirrors the on-disk snapshot shape:
//
//	{"entities": {"projects": [...], "students": [...]}}
type document struct {
	Entities *entities `json:"entities"`
}

type entities struct {
	Projects []model.Project `json:"projects"`
	Students []model.Student `json:"students"`
}

// Store holds a fully parsed, normalized snapshot.
type Store struct {
	projects []model.Project
	students []model.Student
}

// NewStore reads and parses the snapshot at path. All records are normalized
// once, up front, so reads are allocation-cheap copies.
func NewStore(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadSnapshot, path, err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeSnapshot, path, err)
	}
	if doc.Entities == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidShape, path)
	}

	s := &Store{
		projects: make([]model.Project, 0, len(doc.Entities.Projects)),
		students: make([]model.Student, 0, len(doc.Entities.Students)),
	}
	for _, p := range doc.Entities.Projects {
		s.projects = append(s.projects, p.Normalized())
	}
	for _, st := range doc.Entities.Students {
		s.students = append(s.students, st.Normalized())
	}

	metrics.UpdateSnapshotEntities(len(s.projects), len(s.students))

	return s, nil
}

// NewPair builds the repository pair backed by one shared snapshot store.
func NewPair(path string) (repository.Pair, error) {
	store, err := NewStore(path)
	if err != nil {
		return repository.Pair{}, err
	}
	return repository.Pair{
		Projects: &ProjectRepository{store: store},
		Students: &StudentRepository{store: store},
	}, nil
}

// ProjectRepository implements repository.ProjectRepository over a snapshot.
type ProjectRepository struct {
	store *Store
}

// FindByID scans the snapshot for the project id.
func (r *ProjectRepository) FindByID(_ context.Context, id int) (model.Project, error) {
	for _, p := range r.store.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Project{}, fmt.Errorf("%w: %d", repository.ErrProjectNotFound, id)
}

// All returns a copy of every project in the snapshot.
func (r *ProjectRepository) All(_ context.Context) ([]model.Project, error) {
	out := make([]model.Project, len(r.store.projects))
	copy(out, r.store.projects)
	return out, nil
}

// StudentRepository implements repository.StudentRepository over a snapshot.
type StudentRepository struct {
	store *Store
}

// All returns a copy of every student in the snapshot.
func (r *StudentRepository) All(_ context.Context) ([]model.Student, error) {
	out := make([]model.Student, len(r.store.students))
	copy(out, r.store.students)
	return out, nil
}
