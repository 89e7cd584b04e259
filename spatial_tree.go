package dbscan

// NodeData describes a single node in a spatial tree.
type NodeData struct {
	IdxStart, IdxEnd int
	IsLeaf           bool
	Radius           float64 // ball tree radius; 0 for KD-tree
}

// SpatialTree is the read interface for KD-trees and Ball trees, used by
// tree-accelerated epsilon-neighborhood queries.
type SpatialTree interface {
	// QueryRadius appends to out the original indices of every point whose
	// distance to point is <= radius (inclusive), sorted ascending.
	// out is reused as scratch; pass out[:0] of a retained buffer to avoid
	// per-query allocation.
	QueryRadius(point []float64, radius float64, out []int) []int

	// Data returns the flat row-major point data owned by the tree.
	Data() []float64

	// NumPoints returns the number of points in the tree.
	NumPoints() int

	// NumFeatures returns the dimensionality of each point.
	NumFeatures() int
}
