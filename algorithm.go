package dbscan

// Algorithm selects the neighbor search strategy.
type Algorithm string

const (
	AlgorithmAuto     Algorithm = "auto"
	AlgorithmBrute    Algorithm = "brute"
	AlgorithmKDTree   Algorithm = "kdtree"
	AlgorithmBallTree Algorithm = "balltree"
)

// KDTreeValidMetric reports whether the metric supports KD-tree acceleration.
// KD-trees require metrics that decompose along coordinate axes:
// Euclidean, Manhattan, Chebyshev.
func KDTreeValidMetric(m DistanceMetric) bool {
	switch m.(type) {
	case EuclideanMetric, ManhattanMetric, ChebyshevMetric:
		return true
	default:
		return false
	}
}

// BallTreeValidMetric reports whether the metric supports Ball tree
// acceleration. Ball trees work with any metric that satisfies the triangle
// inequality. Currently accepts the same set as KD-tree; future metrics
// (e.g. Haversine) can be added here without also adding them to
// KDTreeValidMetric.
func BallTreeValidMetric(m DistanceMetric) bool {
	switch m.(type) {
	case EuclideanMetric, ManhattanMetric, ChebyshevMetric:
		return true
	default:
		return false
	}
}

// selectAlgorithm resolves AlgorithmAuto into a concrete strategy choice
// based on the metric and data dimensionality, and validates that
// user-forced choices are compatible with the metric.
func selectAlgorithm(cfg Config, dims int) (Algorithm, error) {
	algo := cfg.Algorithm

	if algo == AlgorithmAuto {
		if !BallTreeValidMetric(cfg.Metric) {
			return AlgorithmBrute, nil
		}
		if KDTreeValidMetric(cfg.Metric) && dims <= 60 {
			return AlgorithmKDTree, nil
		}
		return AlgorithmBallTree, nil
	}

	// Validate user-forced choices.
	switch algo {
	case AlgorithmKDTree:
		if !KDTreeValidMetric(cfg.Metric) {
			return "", configErrorf("metric %T is not supported by the KD-tree algorithm", cfg.Metric)
		}
	case AlgorithmBallTree:
		if !BallTreeValidMetric(cfg.Metric) {
			return "", configErrorf("metric %T is not supported by the Ball tree algorithm", cfg.Metric)
		}
	}

	return algo, nil
}

// buildNeighborIndex constructs the NeighborIndex for the resolved strategy.
// MemSaveMode only affects the brute-force path: the tree indexes already
// use O(n) memory.
func buildNeighborIndex(algo Algorithm, flat []float64, n, dims int, cfg Config) NeighborIndex {
	switch algo {
	case AlgorithmKDTree:
		return newTreeIndex(NewKDTree(flat, n, dims, cfg.Metric, cfg.LeafSize), cfg.Epsilon)
	case AlgorithmBallTree:
		return newTreeIndex(NewBallTree(flat, n, dims, cfg.Metric, cfg.LeafSize), cfg.Epsilon)
	default:
		// AlgorithmBrute.
		if cfg.MemSaveMode {
			return newLinearIndex(flat, n, dims, cfg.Metric, cfg.Epsilon)
		}
		return newBruteIndex(flat, n, dims, cfg.Metric, cfg.Epsilon, cfg.Workers)
	}
}
