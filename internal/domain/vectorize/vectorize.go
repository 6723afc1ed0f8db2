// Package vectorize builds the shared feature space in which students and
// projects are compared. Both entity kinds are encoded into vectors of
// identical length and coordinate semantics: a one-hot domain block followed
// by level, activity, skill and weight coordinates, each in 0..1.
package vectorize

import (
	"github.com/skillforge/recommender/internal/domain/model"
	"github.com/skillforge/recommender/internal/domain/rules"
)

// skillScaleDivisor maps the 0..100 score range onto the 0..1 coordinate.
const skillScaleDivisor = 100.0

// Option applies a configuration option to the Encoder.
type Option func(*Encoder)

// WithLevelScaleFromConfig sets the numeric encoding per level from a
// configuration map keyed by level name.
func WithLevelScaleFromConfig(scale map[string]float64) Option {
	return func(e *Encoder) {
		if len(scale) == 0 {
			return
		}
		e.levelScale = make(map[model.Level]float64, len(scale))
		for level, value := range scale {
			e.levelScale[model.Level(level)] = value
		}
	}
}

// WithActivityScaleFromConfig sets the numeric encoding per activity tier
// from a configuration map keyed by tier name.
func WithActivityScaleFromConfig(scale map[string]float64) Option {
	return func(e *Encoder) {
		if len(scale) == 0 {
			return
		}
		e.activityScale = make(map[model.Activity]float64, len(scale))
		for activity, value := range scale {
			e.activityScale[model.Activity(activity)] = value
		}
	}
}

// WithPolicy sets the rules policy used to derive a project's effective
// level and expected-skill coordinates.
func WithPolicy(policy *rules.Policy) Option {
	return func(e *Encoder) {
		if policy != nil {
			e.policy = policy
		}
	}
}

// Encoder turns normalized records into feature vectors.
type Encoder struct {
	levelScale    map[model.Level]float64
	activityScale map[model.Activity]float64
	policy        *rules.Policy
}

// NewEncoder creates an Encoder with the product default scales, then
// applies options.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{
		levelScale: map[model.Level]float64{
			model.LevelBeginner:     0.0,
			model.LevelIntermediate: 0.5,
			model.LevelAdvanced:     1.0,
		},
		activityScale: map[model.Activity]float64{
			model.ActivityLow:        0.0,
			model.ActivitySemiActive: 0.5,
			model.ActivityActive:     1.0,
		},
		policy: rules.NewPolicy(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// StudentVector encodes a student. Layout: one-hot domain block, own level,
// own activity, skill (midpoint of avg_score_range scaled to 0..1), weight
// clamped to 0..1. Unknown level or activity values encode to 0.
func (e *Encoder) StudentVector(s model.Student, vocab []string) []float64 {
	vec := oneHot(s.Domain, vocab)
	vec = append(vec, e.levelScale[s.Level])
	vec = append(vec, e.activityScale[s.ActivityProfile])
	mid := avgScoreMidpoint(s.ProfileSettings.AvgScoreRange)
	vec = append(vec, clamp(mid/skillScaleDivisor, 0, 1))
	vec = append(vec, clamp(s.ProfileSettings.Weight, 0, 1))
	return vec
}

// ProjectVector encodes a project into the same layout. The level coordinate
// uses the adjusted required level, the skill coordinate the expected-skill
// baseline for that level. Activity and weight are constant 1.0: a project
// always prefers maximally active, fully reliable candidates.
func (e *Encoder) ProjectVector(p model.Project, vocab []string) []float64 {
	needed := e.policy.AdjustedRequiredLevel(p)
	vec := oneHot(p.Domain, vocab)
	vec = append(vec, e.levelScale[needed])
	vec = append(vec, 1.0)
	vec = append(vec, clamp(e.policy.ExpectedSkill(needed), 0, 1))
	vec = append(vec, 1.0)
	return vec
}

// oneHot emits one coordinate per vocabulary item, 1.0 on exact match.
func oneHot(value string, vocab []string) []float64 {
	out := make([]float64, len(vocab), len(vocab)+4)
	for i, v := range vocab {
		if value != "" && value == v {
			out[i] = 1.0
		}
	}
	return out
}

// avgScoreMidpoint returns the midpoint of a [min,max] interval, or 0 when
// the interval is malformed.
func avgScoreMidpoint(rng []float64) float64 {
	if len(rng) != 2 {
		return 0
	}
	return (rng[0] + rng[1]) / 2
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
