package dbscan

import "testing"

func TestEdgeCase_SinglePoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Epsilon = 1
	cfg.MinObservations = 1

	result, err := Cluster([][]float64{{1.0, 2.0}}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	labels, err := result.Labels()
	if err != nil {
		t.Fatal(err)
	}
	// A single point with threshold 1 is a singleton cluster.
	if labels[0] != 0 {
		t.Errorf("labels[0] = %d, want 0", labels[0])
	}
	if result.ClusterCount() != 1 {
		t.Errorf("ClusterCount() = %d, want 1", result.ClusterCount())
	}
}

func TestEdgeCase_SinglePointBelowThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Epsilon = 1
	cfg.MinObservations = 2

	result, err := Cluster([][]float64{{1.0, 2.0}}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	labels, err := result.Labels()
	if err != nil {
		t.Fatal(err)
	}
	if labels[0] != NoiseLabel {
		t.Errorf("labels[0] = %d, want %d", labels[0], NoiseLabel)
	}
}

func TestEdgeCase_AllIdenticalPoints(t *testing.T) {
	data := make([][]float64, 10)
	for i := range data {
		data[i] = []float64{5.0, 5.0}
	}
	cfg := DefaultConfig()
	cfg.Epsilon = 0 // only coincident points are neighbors
	cfg.MinObservations = 10

	result, err := Cluster(data, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	labels, err := result.Labels()
	if err != nil {
		t.Fatal(err)
	}
	// All ten coincide, so every density is 10 and one cluster forms.
	for i, l := range labels {
		if l != 0 {
			t.Errorf("labels[%d] = %d, want 0", i, l)
		}
	}
}

func TestEdgeCase_ZeroEpsilonSeparatesNonCoincident(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Epsilon = 0
	cfg.MinObservations = 1

	result, err := Cluster([][]float64{{0}, {0}, {1}}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	labels, err := result.Labels()
	if err != nil {
		t.Fatal(err)
	}
	want := []int{0, 0, 1}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %d, want %d", i, labels[i], want[i])
		}
	}
}

func TestEdgeCase_NonPositiveMinObservations(t *testing.T) {
	// Threshold <= 0 makes every point core by the >= inequality, even
	// zero-weight points.
	data := [][]float64{{0}, {5}, {10}}
	weights := []float64{0, 0, 0}

	cfg := DefaultConfig()
	cfg.Epsilon = 1
	cfg.MinObservations = 0
	cfg.Results = ResultLabels | ResultCoreFlags

	result, err := ClusterWeighted(data, weights, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	flags, err := result.CoreFlags()
	if err != nil {
		t.Fatal(err)
	}
	for i, core := range flags {
		if !core {
			t.Errorf("flags[%d] = false, want core for MinObservations <= 0", i)
		}
	}
	if result.ClusterCount() != 3 {
		t.Errorf("ClusterCount() = %d, want 3", result.ClusterCount())
	}
}

func TestEdgeCase_ZeroWeightPointIsNeverDense(t *testing.T) {
	// A zero-weight point contributes nothing anywhere, including to its
	// own density.
	data := [][]float64{{0}, {1}}
	weights := []float64{0, 1}

	cfg := DefaultConfig()
	cfg.Epsilon = 0.5
	cfg.MinObservations = 1

	result, err := ClusterWeighted(data, weights, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	labels, err := result.Labels()
	if err != nil {
		t.Fatal(err)
	}
	if labels[0] != NoiseLabel {
		t.Errorf("labels[0] = %d, want noise for zero self-weight", labels[0])
	}
	if labels[1] != 0 {
		t.Errorf("labels[1] = %d, want 0", labels[1])
	}
}

func TestEdgeCase_LargeEpsilonSingleCluster(t *testing.T) {
	data := blobData(120, 4)
	cfg := DefaultConfig()
	cfg.Epsilon = 1e6
	cfg.MinObservations = 1

	result, err := Cluster(data, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ClusterCount() != 1 {
		t.Errorf("ClusterCount() = %d, want 1 with epsilon covering everything", result.ClusterCount())
	}
}

func TestEdgeCase_InputBuffersNotRetained(t *testing.T) {
	// Mutating the caller's buffers after the call must not change the
	// materialized core rows.
	data := [][]float64{{1}, {1.2}}
	cfg := DefaultConfig()
	cfg.Epsilon = 1
	cfg.MinObservations = 2
	cfg.Results = ResultCoreObservations

	result, err := Cluster(data, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data[0][0] = 999

	rows, err := result.CoreObservations()
	if err != nil {
		t.Fatal(err)
	}
	if rows[0][0] != 1 {
		t.Errorf("core row mutated through caller buffer: got %v", rows[0][0])
	}
}
