package dbscan

import "testing"

func TestSelectAlgorithm_AutoLowDimensional(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = AlgorithmAuto

	algo, err := selectAlgorithm(cfg, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if algo != AlgorithmKDTree {
		t.Errorf("auto on 2-D Euclidean = %q, want %q", algo, AlgorithmKDTree)
	}
}

func TestSelectAlgorithm_AutoHighDimensional(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = AlgorithmAuto

	algo, err := selectAlgorithm(cfg, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if algo != AlgorithmBallTree {
		t.Errorf("auto on 100-D Euclidean = %q, want %q", algo, AlgorithmBallTree)
	}
}

func TestSelectAlgorithm_AutoCustomMetricFallsBackToBrute(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = AlgorithmAuto
	cfg.Metric = DistanceFunc(func(a, b []float64) float64 { return 0 })

	algo, err := selectAlgorithm(cfg, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if algo != AlgorithmBrute {
		t.Errorf("auto with custom metric = %q, want %q", algo, AlgorithmBrute)
	}
}

func TestSelectAlgorithm_ForcedTreeWithCustomMetricFails(t *testing.T) {
	custom := DistanceFunc(func(a, b []float64) float64 { return 0 })

	for _, algo := range []Algorithm{AlgorithmKDTree, AlgorithmBallTree} {
		cfg := DefaultConfig()
		cfg.Algorithm = algo
		cfg.Metric = custom
		if _, err := selectAlgorithm(cfg, 2); err == nil {
			t.Errorf("forcing %q with a custom metric should fail", algo)
		}
	}
}

func TestSelectAlgorithm_ForcedBruteAlwaysValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = AlgorithmBrute
	cfg.Metric = DistanceFunc(func(a, b []float64) float64 { return 0 })

	algo, err := selectAlgorithm(cfg, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if algo != AlgorithmBrute {
		t.Errorf("forced brute = %q, want %q", algo, AlgorithmBrute)
	}
}

func TestTreeValidMetrics(t *testing.T) {
	builtins := []DistanceMetric{EuclideanMetric{}, ManhattanMetric{}, ChebyshevMetric{}}
	for _, m := range builtins {
		if !KDTreeValidMetric(m) {
			t.Errorf("KDTreeValidMetric(%T) = false, want true", m)
		}
		if !BallTreeValidMetric(m) {
			t.Errorf("BallTreeValidMetric(%T) = false, want true", m)
		}
	}

	custom := DistanceFunc(func(a, b []float64) float64 { return 0 })
	if KDTreeValidMetric(custom) {
		t.Error("KDTreeValidMetric(DistanceFunc) = true, want false")
	}
	if BallTreeValidMetric(custom) {
		t.Error("BallTreeValidMetric(DistanceFunc) = true, want false")
	}
}
