// Package similarity provides the numeric scorer for feature vectors.
package similarity

import "math"

// roundPlaces controls the presentation precision of similarity scores.
const roundPlaces = 1e4

// Cosine returns the cosine similarity dot(a,b) / (||a|| * ||b||) of two
// vectors. A zero-magnitude vector yields 0 rather than NaN. Vectors of
// unequal length are compared over the shared prefix; the vectorizer always
// produces equal lengths for one vocabulary.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}

	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Round4 rounds a similarity to 4 decimal places for presentation.
func Round4(x float64) float64 {
	return math.Round(x*roundPlaces) / roundPlaces
}
