package dbscan

import (
	"math"
	"runtime"

	"github.com/cockroachdb/errors"
)

// Config controls DBSCAN clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Epsilon is the neighborhood radius: two points are neighbors when
	// their distance is <= Epsilon (inclusive). Must be >= 0; 0 means only
	// exactly coincident points are neighbors. Default: 0.5.
	Epsilon float64

	// MinObservations is the weighted density threshold: a point is core
	// when the summed weight of its epsilon-neighborhood (itself included)
	// is >= MinObservations. With unit weights this is the classic
	// min_samples convention inclusive of self. A value <= 0 makes every
	// point core. Default: 5.
	MinObservations float64

	// Metric is the distance function used to measure point similarity.
	// Built-in: EuclideanMetric, ManhattanMetric, ChebyshevMetric. Use
	// DistanceFunc to wrap a custom function. A call uses exactly one
	// metric. Default: EuclideanMetric.
	Metric DistanceMetric

	// Algorithm selects the neighbor search strategy.
	// "auto" picks based on metric and dimensionality.
	// "brute" scans all pairs (see MemSaveMode).
	// "kdtree"/"balltree" use a spatial tree with O(n) memory.
	// Every strategy produces identical clustering. Default: "auto".
	Algorithm Algorithm

	// MemSaveMode trades compute for memory on the brute-force path:
	// instead of materializing the full adjacency once, distances are
	// recomputed on every neighborhood query. Has no effect on the tree
	// algorithms. Default: false.
	MemSaveMode bool

	// LeafSize controls the maximum number of points in a spatial tree leaf
	// node. Only used with tree-based algorithms. Default: 40.
	LeafSize int

	// Workers controls the number of goroutines for parallelizable stages
	// (adjacency construction, per-point densities). 0 means use
	// runtime.NumCPU(). Default: 0 (auto).
	Workers int

	// Results selects which output artifacts the call materializes.
	// Accessors for artifacts not requested here fail with an error
	// matching ErrResultNotRequested. Default: ResultLabels.
	Results ResultOptions
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Epsilon:         0.5,
		MinObservations: 5,
		Metric:          EuclideanMetric{},
		Results:         ResultLabels,
	}
}

// ErrInvalidConfig marks every configuration error: invalid epsilon,
// mismatched weight vector, empty observation set, and similar conditions
// detected before computation starts. Use errors.Is to test for it.
var ErrInvalidConfig = errors.New("dbscan: invalid configuration")

func configErrorf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf("dbscan: "+format, args...), ErrInvalidConfig)
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = AlgorithmAuto
	}
	if cfg.LeafSize == 0 {
		cfg.LeafSize = 40
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error if not.
func validateConfig(cfg *Config) error {
	if cfg.Epsilon < 0 || math.IsNaN(cfg.Epsilon) {
		return configErrorf("Epsilon must be >= 0, got %v", cfg.Epsilon)
	}
	if math.IsNaN(cfg.MinObservations) {
		return configErrorf("MinObservations must not be NaN")
	}
	switch cfg.Algorithm {
	case AlgorithmAuto, AlgorithmBrute, AlgorithmKDTree, AlgorithmBallTree:
		// valid
	default:
		return configErrorf("invalid Algorithm %q", cfg.Algorithm)
	}
	if cfg.LeafSize < 1 {
		return configErrorf("LeafSize must be >= 1, got %d", cfg.LeafSize)
	}
	return nil
}

// validateData checks the observation set and weight vector against the
// configuration contract: a non-empty rectangular N×D matrix and, when
// present, N non-negative weights.
func validateData(data [][]float64, weights []float64) (n, dims int, err error) {
	n = len(data)
	if n == 0 {
		return 0, 0, configErrorf("observation set is empty")
	}
	dims = len(data[0])
	if dims == 0 {
		return 0, 0, configErrorf("observations must have at least one feature")
	}
	for i, row := range data {
		if len(row) != dims {
			return 0, 0, configErrorf("observation %d has %d features, want %d", i, len(row), dims)
		}
	}
	if weights != nil {
		if len(weights) != n {
			return 0, 0, configErrorf("weight count %d does not match observation count %d", len(weights), n)
		}
		for i, w := range weights {
			if w < 0 || math.IsNaN(w) {
				return 0, 0, configErrorf("weight %d is %v, must be >= 0", i, w)
			}
		}
	}
	return n, dims, nil
}

// Cluster performs unweighted DBSCAN clustering on the given data.
// Each element is a point (float64 slice); all points must have the same
// dimensionality. Returns an error matching ErrInvalidConfig if the config
// or data is invalid.
func Cluster(data [][]float64, cfg Config) (*Result, error) {
	return ClusterWeighted(data, nil, cfg)
}

// ClusterWeighted performs weighted DBSCAN clustering: each observation
// contributes its weight, rather than a count of 1, to the neighborhood
// densities that decide core points. A nil weights slice behaves as all-ones.
//
// The engine reads data and weights only for the duration of the call and
// retains no references to them.
func ClusterWeighted(data [][]float64, weights []float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n, dims, err := validateData(data, weights)
	if err != nil {
		return nil, err
	}

	flat := make([]float64, n*dims)
	for i, row := range data {
		copy(flat[i*dims:], row)
	}

	algo, err := selectAlgorithm(cfg, dims)
	if err != nil {
		return nil, err
	}

	idx := buildNeighborIndex(algo, flat, n, dims, cfg)
	densities := computeDensitiesParallel(idx, weights, n, cfg.Workers)
	isCore := classifyCore(densities, cfg.MinObservations)
	labels, clusterCount := expandClusters(idx, isCore, n)

	return newResult(cfg.Results, labels, clusterCount, isCore, flat, dims), nil
}
