// Package model contains the normalized domain records consumed by the
// recommendation pipeline. Records are read-only, request-scoped values
// materialized by a repository call; the engine never mutates them in place.
package model

// StatusOpen is the only project status eligible for matching.
const StatusOpen = "open"

// Level is the ordered skill level shared by students and projects.
type Level string

// Known levels, ordered beginner < intermediate < advanced.
const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Ordinal returns the rank of the level. Unknown values rank lowest, so a
// malformed record can only relax its own requirement, never raise it.
func (l Level) Ordinal() int {
	switch l {
	case LevelIntermediate:
		return 1
	case LevelAdvanced:
		return 2
	default:
		return 0
	}
}

// Activity is the ordered engagement tier of a student.
type Activity string

// Known activity tiers, ordered low-activity < semi-active < active.
const (
	ActivityLow        Activity = "low-activity"
	ActivitySemiActive Activity = "semi-active"
	ActivityActive     Activity = "active"
)

// Complexity is the ordered difficulty of a project.
type Complexity string

// Known complexities, ordered low < medium < high.
const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Project is a normalized project record.
type Project struct {
	ID            int        `json:"id"`
	Status        string     `json:"status"`
	Domain        string     `json:"domain"`
	RequiredLevel Level      `json:"required_level"`
	Complexity    Complexity `json:"complexity"`
}

// Open reports whether the project accepts candidates.
func (p Project) Open() bool {
	return p.Status == StatusOpen
}

// Normalized fills conservative defaults for missing scalar fields so every
// served record carries the full attribute set.
func (p Project) Normalized() Project {
	if p.RequiredLevel == "" {
		p.RequiredLevel = LevelBeginner
	}
	if p.Complexity == "" {
		p.Complexity = ComplexityLow
	}
	return p
}

// ProfileSettings carries the precomputed profile numbers used for scoring.
type ProfileSettings struct {
	// AvgScoreRange is a [min,max] interval, each bound conceptually in 0..100.
	AvgScoreRange []float64 `json:"avg_score_range"`

	// Weight is a precomputed reliability score, conceptually in 0..1.
	Weight float64 `json:"weight"`
}

// Student is a normalized student record. Name is display-only and never
// participates in scoring.
type Student struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Domain          string          `json:"domain"`
	Level           Level           `json:"level"`
	ActivityProfile Activity        `json:"activity_profile"`
	ProfileSettings ProfileSettings `json:"profile_settings"`
}

// Normalized fills conservative defaults for missing fields. A malformed
// avg_score_range degrades to [0,0] rather than failing.
func (s Student) Normalized() Student {
	if s.Level == "" {
		s.Level = LevelBeginner
	}
	if s.ActivityProfile == "" {
		s.ActivityProfile = ActivityLow
	}
	if len(s.ProfileSettings.AvgScoreRange) != 2 {
		s.ProfileSettings.AvgScoreRange = []float64{0, 0}
	}
	return s
}
