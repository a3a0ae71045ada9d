package llm

import (
	"math"
	"math/rand"
)

// RandomUnitVectors produces n random unit vectors of the given dimension.
// Degradation path for embedding-endpoint failures: merging proceeds with
// meaningless similarity instead of halting the stage. Rows persisted from
// these vectors carry provider "mock" so they can be told apart later.
func RandomUnitVectors(n, dim int) [][]float32 {
	vectors := make([][]float32, n)
	for i := range vectors {
		v := make([]float32, dim)
		var norm float64
		for j := range v {
			v[j] = float32(rand.NormFloat64())
			norm += float64(v[j]) * float64(v[j])
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			v[0] = 1
			norm = 1
		}
		for j := range v {
			v[j] = float32(float64(v[j]) / norm)
		}
		vectors[i] = v
	}
	return vectors
}

// MockProvider marks embeddings produced by RandomUnitVectors.
const MockProvider = "mock"
