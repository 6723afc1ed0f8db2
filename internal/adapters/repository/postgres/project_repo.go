package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/skillforge/recommender/internal/adapters/repository"
	"github.com/skillforge/recommender/internal/domain/model"
)

// COALESCE keeps the normalized shape stable when source columns are NULL:
// complexity defaults to low, required_level to beginner.
const projectSelect = `
	SELECT id,
	       COALESCE(status, ''),
	       COALESCE(domain, ''),
	       COALESCE(required_level, 'beginner'),
	       COALESCE(complexity, 'low')
	FROM projects
`

// ProjectRepository implements repository.ProjectRepository for PostgreSQL.
type ProjectRepository struct {
	store *Store
}

// NewProjectRepository creates a ProjectRepository on the shared store.
func NewProjectRepository(store *Store) *ProjectRepository {
	return &ProjectRepository{store: store}
}

// FindByID returns the normalized project or repository.ErrProjectNotFound.
func (r *ProjectRepository) FindByID(ctx context.Context, id int) (model.Project, error) {
	row := r.store.pool.QueryRow(ctx, projectSelect+` WHERE id = $1`, id)

	p, err := scanProject(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Project{}, fmt.Errorf("%w: %d", repository.ErrProjectNotFound, id)
	}
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to load project %d: %w", id, err)
	}
	return p, nil
}

// All returns every project in the store.
func (r *ProjectRepository) All(ctx context.Context) ([]model.Project, error) {
	rows, err := r.store.pool.Query(ctx, projectSelect)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var out []model.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}
	return out, nil
}

// scanProject maps one row onto the normalized project shape.
func scanProject(row pgx.Row) (model.Project, error) {
	var (
		p             model.Project
		status        string
		domain        string
		requiredLevel string
		complexity    string
	)
	if err := row.Scan(&p.ID, &status, &domain, &requiredLevel, &complexity); err != nil {
		return model.Project{}, err
	}

	p.Status = status
	p.Domain = domain
	p.RequiredLevel = model.Level(requiredLevel)
	p.Complexity = model.Complexity(complexity)
	return p.Normalized(), nil
}
