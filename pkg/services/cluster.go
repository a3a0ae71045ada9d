package services

import "math"

// cosineSimilarity over float32 vectors. Returns 0 for mismatched or zero
// vectors.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// titleBigramJaccard compares titles by their character-bigram sets. Bodies
// vary wildly across platforms, titles do not, so the gate runs on titles
// only. Titles shorter than one bigram compare by equality.
func titleBigramJaccard(a, b string) float64 {
	ar, br := []rune(a), []rune(b)
	if len(ar) < 2 || len(br) < 2 {
		if a == b {
			return 1.0
		}
		return 0.0
	}

	setA := bigramSet(ar)
	setB := bigramSet(br)

	var intersection int
	for bg := range setA {
		if _, ok := setB[bg]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func bigramSet(runes []rune) map[string]struct{} {
	set := make(map[string]struct{}, len(runes)-1)
	for i := 0; i+1 < len(runes); i++ {
		set[string(runes[i:i+2])] = struct{}{}
	}
	return set
}

// greedyCluster groups item indices in one pass: each unassigned item seeds a
// cluster and pulls in every later unassigned item passing both the vector
// gate and the title gate against the seed.
func greedyCluster(vectors [][]float32, titles []string, simThreshold, jaccardThreshold float64) [][]int {
	n := len(vectors)
	assigned := make([]bool, n)
	var clusters [][]int

	for i := 0; i < n; i++ {
		if assigned[i] {
			continue
		}
		cluster := []int{i}
		assigned[i] = true

		for j := i + 1; j < n; j++ {
			if assigned[j] {
				continue
			}
			if cosineSimilarity(vectors[i], vectors[j]) < simThreshold {
				continue
			}
			if titleBigramJaccard(titles[i], titles[j]) < jaccardThreshold {
				continue
			}
			cluster = append(cluster, j)
			assigned[j] = true
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}
