package dbscan

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DistanceMetric provides distance computation with a reduced-distance
// variant for pruning optimizations (e.g., squared Euclidean skips sqrt).
// DistToRdist and RdistToDist convert between the two spaces; for metrics
// without a cheaper reduced form both are the identity.
type DistanceMetric interface {
	Distance(a, b []float64) float64
	ReducedDistance(a, b []float64) float64
	DistToRdist(d float64) float64
	RdistToDist(rd float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
// ReducedDistance delegates to the same function.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64        { return f(a, b) }
func (f DistanceFunc) ReducedDistance(a, b []float64) float64 { return f(a, b) }
func (f DistanceFunc) DistToRdist(d float64) float64          { return d }
func (f DistanceFunc) RdistToDist(rd float64) float64         { return rd }

// EuclideanMetric computes the Euclidean (L2) distance.
// ReducedDistance returns squared Euclidean distance (skips sqrt).
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

func (EuclideanMetric) ReducedDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func (EuclideanMetric) DistToRdist(d float64) float64  { return d * d }
func (EuclideanMetric) RdistToDist(rd float64) float64 { return math.Sqrt(rd) }

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
}

func (m ManhattanMetric) ReducedDistance(a, b []float64) float64 { return m.Distance(a, b) }
func (ManhattanMetric) DistToRdist(d float64) float64            { return d }
func (ManhattanMetric) RdistToDist(rd float64) float64           { return rd }

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

func (m ChebyshevMetric) ReducedDistance(a, b []float64) float64 { return m.Distance(a, b) }
func (ChebyshevMetric) DistToRdist(d float64) float64            { return d }
func (ChebyshevMetric) RdistToDist(rd float64) float64           { return rd }

// metricP returns the Minkowski exponent used for KD-tree box bounds:
// 2 for Euclidean, 1 for Manhattan, +Inf for Chebyshev.
func metricP(m DistanceMetric) float64 {
	switch m.(type) {
	case ManhattanMetric:
		return 1.0
	case ChebyshevMetric:
		return math.Inf(1)
	default:
		return 2.0
	}
}
