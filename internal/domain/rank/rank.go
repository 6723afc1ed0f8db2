// Package rank orders scored candidates for presentation.
package rank

import (
	"sort"

	"github.com/skillforge/recommender/internal/domain/model"
	"github.com/skillforge/recommender/internal/domain/types"
)

// Order sorts candidates by similarity descending. At exactly equal
// similarity an active candidate ranks above a semi-active one. The sort is
// stable beyond that tie-break, so deterministic input yields deterministic
// output.
func Order(candidates []types.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Similarity != candidates[j].Similarity {
			return candidates[i].Similarity > candidates[j].Similarity
		}
		return candidates[i].ActivityProfile == string(model.ActivityActive) &&
			candidates[j].ActivityProfile != string(model.ActivityActive)
	})
}

// Truncate returns at most n candidates from the front of the ranked list.
func Truncate(candidates []types.Candidate, n int) []types.Candidate {
	if n < 0 {
		n = 0
	}
	if len(candidates) <= n {
		return candidates
	}
	return candidates[:n]
}
