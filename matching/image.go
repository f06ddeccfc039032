package matching

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrDimensionMismatch is returned when two embeddings cannot be
// compared because their lengths differ.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// CosineSimilarity returns the cosine of the angle between the two
// embedding vectors, in [0,1] for the non-negative vectors produced by
// the embedding service.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}
	if len(a) == 0 {
		return 0, nil
	}

	dot := floats.Dot(a, b)
	normA := math.Sqrt(floats.Dot(a, a))
	normB := math.Sqrt(floats.Dot(b, b))
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (normA * normB), nil
}

// ImageScore scores visual similarity out of weight points. A missing
// embedding on either side zeroes the signal rather than failing the
// pair; embedding extraction is best-effort at submission time.
func ImageScore(lost, found Item, weight int) int {
	if len(lost.Embedding) == 0 || len(found.Embedding) == 0 {
		return 0
	}
	sim, err := CosineSimilarity(lost.Embedding, found.Embedding)
	if err != nil {
		// Vectors from different model versions; no comparable signal.
		return 0
	}

	score := roundScore(sim * float64(weight))
	if score < 0 {
		score = 0
	}
	if score > weight {
		score = weight
	}
	return score
}
