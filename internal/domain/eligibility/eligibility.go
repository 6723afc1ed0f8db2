// Package eligibility implements the two-stage candidate gating: a hard
// pre-score filter deciding who may be scored at all, and a post-score
// threshold applied only to semi-active candidates.
package eligibility

import (
	"github.com/skillforge/recommender/internal/domain/model"
	"github.com/skillforge/recommender/internal/domain/rules"
)

// Gate decides which students may be scored against a project and which
// scored candidates survive the activity threshold.
type Gate struct {
	policy *rules.Policy
}

// NewGate creates a Gate backed by the given rules policy. A nil policy
// falls back to the product defaults.
func NewGate(policy *rules.Policy) *Gate {
	if policy == nil {
		policy = rules.NewPolicy()
	}
	return &Gate{policy: policy}
}

// Eligible reports whether the student may be scored against the project.
// All of the following must hold: the project is open, the domains match
// exactly, the student is not low-activity, and the student's level equals
// the project's adjusted required level.
//
// The exact-level match is a deliberate policy choice: it reserves each
// level's project pool for students at exactly that level instead of letting
// more advanced students crowd out peers. Do not relax it to >= without a
// product decision.
func (g *Gate) Eligible(s model.Student, p model.Project) bool {
	if !p.Open() {
		return false
	}
	if s.Domain != p.Domain {
		return false
	}
	if s.ActivityProfile == model.ActivityLow {
		return false
	}
	return s.Level == g.policy.AdjustedRequiredLevel(p)
}

// PassesActivityThreshold applies the post-score gate: a semi-active
// candidate must reach minSim to stay in the result, any other surviving
// tier always passes.
func (g *Gate) PassesActivityThreshold(activity model.Activity, sim, minSim float64) bool {
	if activity == model.ActivitySemiActive {
		return sim >= minSim
	}
	return true
}
