package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/skillforge/recommender/internal/domain/model"
)

// avg_score_range is stored as jsonb; it is decoded and validated in Go so a
// malformed value degrades to [0,0] instead of failing the whole scan.
const studentSelect = `
	SELECT id,
	       COALESCE(name, ''),
	       COALESCE(domain, ''),
	       COALESCE(level, 'beginner'),
	       COALESCE(activity_profile, 'low-activity'),
	       avg_score_range,
	       COALESCE(weight, 0)
	FROM students
`

// StudentRepository implements repository.StudentRepository for PostgreSQL.
type StudentRepository struct {
	store *Store
}

// NewStudentRepository creates a StudentRepository on the shared store.
func NewStudentRepository(store *Store) *StudentRepository {
	return &StudentRepository{store: store}
}

// All returns every student in the store.
func (r *StudentRepository) All(ctx context.Context) ([]model.Student, error) {
	rows, err := r.store.pool.Query(ctx, studentSelect)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var out []model.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read students: %w", err)
	}
	return out, nil
}

// scanStudent maps one row onto the normalized student shape.
func scanStudent(row pgx.Row) (model.Student, error) {
	var (
		s        model.Student
		level    string
		activity string
		rawRange []byte
	)
	err := row.Scan(&s.ID, &s.Name, &s.Domain, &level, &activity, &rawRange, &s.ProfileSettings.Weight)
	if err != nil {
		return model.Student{}, err
	}

	s.Level = model.Level(level)
	s.ActivityProfile = model.Activity(activity)
	s.ProfileSettings.AvgScoreRange = normalizeAvgScoreRange(rawRange)
	return s.Normalized(), nil
}

// normalizeAvgScoreRange decodes a jsonb [min,max] pair, falling back to
// [0,0] on NULL, malformed JSON, or the wrong arity.
func normalizeAvgScoreRange(raw []byte) []float64 {
	if len(raw) == 0 {
		return []float64{0, 0}
	}
	var rng []float64
	if err := json.Unmarshal(raw, &rng); err != nil || len(rng) != 2 {
		return []float64{0, 0}
	}
	return rng
}
