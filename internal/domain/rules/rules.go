// Package rules computes the effective requirements a project imposes on
// candidates. All tables are injected configuration, not hardcoded literals,
// so tests and deployments can retune them without touching the engine.
package rules

import (
	"github.com/skillforge/recommender/internal/domain/model"
)

// Default expected-skill baseline for levels missing from the table.
const defaultExpectedSkill = 0.55

// Option applies a configuration option to the Policy.
type Option func(*Policy)

// WithComplexityMinLevelsFromConfig sets the complexity -> minimum level
// table from a configuration map keyed by complexity name.
func WithComplexityMinLevelsFromConfig(levels map[string]string) Option {
	return func(p *Policy) {
		if len(levels) == 0 {
			return
		}
		p.complexityMinLevel = make(map[model.Complexity]model.Level, len(levels))
		for complexity, level := range levels {
			p.complexityMinLevel[model.Complexity(complexity)] = model.Level(level)
		}
	}
}

// WithExpectedSkillFromConfig sets the expected-skill baseline per level
// from a configuration map keyed by level name.
func WithExpectedSkillFromConfig(skill map[string]float64) Option {
	return func(p *Policy) {
		if len(skill) == 0 {
			return
		}
		p.expectedSkill = make(map[model.Level]float64, len(skill))
		for level, value := range skill {
			p.expectedSkill[model.Level(level)] = value
		}
	}
}

// Policy holds the tunable rule tables.
type Policy struct {
	complexityMinLevel map[model.Complexity]model.Level
	expectedSkill      map[model.Level]float64
}

// NewPolicy creates a Policy with the product defaults, then applies options.
func NewPolicy(opts ...Option) *Policy {
	p := &Policy{
		complexityMinLevel: map[model.Complexity]model.Level{
			model.ComplexityLow:    model.LevelBeginner,
			model.ComplexityMedium: model.LevelIntermediate,
			model.ComplexityHigh:   model.LevelAdvanced,
		},
		expectedSkill: map[model.Level]float64{
			model.LevelBeginner:     0.55,
			model.LevelIntermediate: 0.75,
			model.LevelAdvanced:     0.90,
		},
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// AdjustedRequiredLevel returns the stricter of the project's stated required
// level and the minimum level implied by its complexity. Complexity can only
// raise the effective bar, never lower a stated requirement.
func (p *Policy) AdjustedRequiredLevel(project model.Project) model.Level {
	required := project.RequiredLevel
	minimum, ok := p.complexityMinLevel[project.Complexity]
	if !ok {
		minimum = model.LevelBeginner
	}
	if required.Ordinal() >= minimum.Ordinal() {
		return required
	}
	return minimum
}

// ExpectedSkill returns the baseline skill coordinate for a project whose
// effective requirement is the given level. It is used only to synthesize the
// project's own skill coordinate.
func (p *Policy) ExpectedSkill(level model.Level) float64 {
	if v, ok := p.expectedSkill[level]; ok {
		return v
	}
	return defaultExpectedSkill
}
