package vectorize

import (
	"sort"

	"github.com/skillforge/recommender/internal/domain/model"
)

// DomainVocab collects the distinct domain labels across the given projects
// and students, deduplicated and sorted lexicographically. The sorted order
// fixes the one-hot coordinate assignment, so the same underlying data always
// yields the same vectors regardless of source iteration order.
func DomainVocab(projects []model.Project, students []model.Student) []string {
	set := make(map[string]struct{})
	for _, p := range projects {
		if p.Domain != "" {
			set[p.Domain] = struct{}{}
		}
	}
	for _, s := range students {
		if s.Domain != "" {
			set[s.Domain] = struct{}{}
		}
	}

	vocab := make([]string, 0, len(set))
	for d := range set {
		vocab = append(vocab, d)
	}
	sort.Strings(vocab)
	return vocab
}
