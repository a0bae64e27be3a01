package index

import "math"

// cosine returns the cosine similarity of two vectors, clamped to [0,1].
// Differing lengths or zero vectors score 0 rather than erroring; the
// caller treats similarity as a ranking signal, not a hard measurement.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	den := math.Sqrt(normA) * math.Sqrt(normB)
	if den == 0 {
		return 0
	}

	sim := dot / den
	// Dense embeddings can go slightly negative; the contract is [0,1].
	if sim < 0 {
		return 0
	}
	if sim > 1 {
		return 1
	}
	return sim
}

// l2Normalize scales v to unit length in place. Zero vectors are left as-is.
func l2Normalize(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return
	}
	inv := float32(1 / norm)
	for i := range v {
		v[i] *= inv
	}
}
