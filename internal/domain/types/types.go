// Package types contains response shapes shared across the application
package types

// Candidate is one ranked recommendation entry. Field names mirror the
// public API schema for GET /projects/{projectId}/candidates.
type Candidate struct {
	StudentID       int     `json:"student_id"`
	Name            string  `json:"name"`
	Domain          string  `json:"domain"`
	Level           string  `json:"level"`
	ActivityProfile string  `json:"activity_profile"`
	Similarity      float64 `json:"similarity"`
}

// Result is the success envelope for a recommendation request. It echoes the
// effective parameters used so callers can see what defaults were applied.
type Result struct {
	ProjectID               int         `json:"project_id"`
	TopN                    int         `json:"top_n"`
	SemiActiveMinSimilarity float64     `json:"semi_active_min_similarity"`
	Candidates              []Candidate `json:"candidates"`
}
