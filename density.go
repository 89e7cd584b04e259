package dbscan

// computeDensities computes the weighted neighborhood density of every point:
// W_i is the sum of weights of all points within epsilon of point i, itself
// included. A nil weights slice means every weight is 1.0, so W_i degenerates
// to the classic neighbor count (min_samples convention inclusive of self).
func computeDensities(idx NeighborIndex, weights []float64, n int) []float64 {
	densities := make([]float64, n)
	var buf []int
	for i := 0; i < n; i++ {
		buf = idx.Neighbors(i, buf)
		densities[i] = sumWeights(buf, weights)
	}
	return densities
}

// sumWeights sums the weights of the given indices; nil weights count 1.0 each.
func sumWeights(indices []int, weights []float64) float64 {
	if weights == nil {
		return float64(len(indices))
	}
	var sum float64
	for _, j := range indices {
		sum += weights[j]
	}
	return sum
}

// classifyCore flags point i as core iff its density meets the threshold.
// A threshold <= 0 makes every point core; the inequality handles that
// boundary without special-casing.
func classifyCore(densities []float64, minObservations float64) []bool {
	isCore := make([]bool, len(densities))
	for i, w := range densities {
		isCore[i] = w >= minObservations
	}
	return isCore
}
