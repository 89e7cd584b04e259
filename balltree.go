package dbscan

import (
	"math"
	"sort"
)

// BallTree is a ball tree spatial index for epsilon-neighborhood queries.
// Each node stores a centroid and radius defining the smallest enclosing
// ball for its points.
//
// The tree is stored as a complete binary tree in array form: node i has
// children at 2*i+1 and 2*i+2.
type BallTree struct {
	data     []float64 // flat row-major point data (n * dims)
	n        int       // number of points
	dims     int       // dimensionality
	leafSize int
	metric   DistanceMetric
	idxArray []int      // permutation: tree-order position → original index
	nodes    []NodeData // one entry per tree node; Radius is used
	// centroids[node*dims .. (node+1)*dims) = centroid of node
	centroids []float64
	numNodes  int
}

// NewBallTree builds a ball tree from flat row-major data with n points
// of dimensionality dims. leafSize controls the max points per leaf node.
func NewBallTree(data []float64, n, dims int, metric DistanceMetric, leafSize int) *BallTree {
	if leafSize < 1 {
		leafSize = 1
	}

	dataCopy := make([]float64, len(data))
	copy(dataCopy, data)
	idxArray := make([]int, n)
	for i := range idxArray {
		idxArray[i] = i
	}

	maxNodes := treeMaxNodes(n, leafSize) // same upper bound as the KD-tree
	t := &BallTree{
		data:      dataCopy,
		n:         n,
		dims:      dims,
		leafSize:  leafSize,
		metric:    metric,
		idxArray:  idxArray,
		nodes:     make([]NodeData, maxNodes),
		centroids: make([]float64, maxNodes*dims),
	}

	if n > 0 {
		t.buildNode(0, 0, n)
		t.numNodes = countTreeNodes(t.nodes, 0, maxNodes)
	}

	return t
}

// buildNode recursively builds the ball tree for points in idxArray[start:end].
func (t *BallTree) buildNode(nodeID, start, end int) {
	for nodeID >= len(t.nodes) {
		t.nodes = append(t.nodes, NodeData{})
		t.centroids = append(t.centroids, make([]float64, t.dims)...)
	}

	// Compute centroid.
	t.computeCentroid(nodeID, start, end)

	// Compute radius: max distance from centroid to any point in this node.
	centroid := t.centroids[nodeID*t.dims : (nodeID+1)*t.dims]
	var radius float64
	for i := start; i < end; i++ {
		ptIdx := t.idxArray[i]
		pt := t.data[ptIdx*t.dims : (ptIdx+1)*t.dims]
		d := t.metric.Distance(centroid, pt)
		if d > radius {
			radius = d
		}
	}

	count := end - start
	if count <= t.leafSize {
		t.nodes[nodeID] = NodeData{IdxStart: start, IdxEnd: end, IsLeaf: true, Radius: radius}
		return
	}

	t.nodes[nodeID] = NodeData{IdxStart: start, IdxEnd: end, IsLeaf: false, Radius: radius}

	// Split along the dimension with greatest spread. Simple, and matches
	// sklearn's approach for moderate dimensionality.
	splitDim := t.findSpreadDim(start, end)
	t.sortByDim(start, end, splitDim)
	mid := start + count/2

	t.buildNode(2*nodeID+1, start, mid)
	t.buildNode(2*nodeID+2, mid, end)
}

// computeCentroid computes the mean of points idxArray[start:end] and stores
// it in the centroids array.
func (t *BallTree) computeCentroid(nodeID, start, end int) {
	base := nodeID * t.dims
	count := float64(end - start)
	for d := 0; d < t.dims; d++ {
		t.centroids[base+d] = 0
	}
	for i := start; i < end; i++ {
		ptIdx := t.idxArray[i]
		for d := 0; d < t.dims; d++ {
			t.centroids[base+d] += t.data[ptIdx*t.dims+d]
		}
	}
	for d := 0; d < t.dims; d++ {
		t.centroids[base+d] /= count
	}
}

// findSpreadDim returns the dimension with the greatest spread among
// points in idxArray[start:end].
func (t *BallTree) findSpreadDim(start, end int) int {
	bestDim := 0
	bestSpread := -1.0
	for d := 0; d < t.dims; d++ {
		minVal := math.Inf(1)
		maxVal := math.Inf(-1)
		for i := start; i < end; i++ {
			v := t.data[t.idxArray[i]*t.dims+d]
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
		spread := maxVal - minVal
		if spread > bestSpread {
			bestSpread = spread
			bestDim = d
		}
	}
	return bestDim
}

// sortByDim sorts idxArray[start:end] by the given dimension.
func (t *BallTree) sortByDim(start, end, dim int) {
	sub := t.idxArray[start:end]
	dims := t.dims
	data := t.data
	sort.Slice(sub, func(i, j int) bool {
		return data[sub[i]*dims+dim] < data[sub[j]*dims+dim]
	})
}

// --- SpatialTree interface ---

func (t *BallTree) Data() []float64  { return t.data }
func (t *BallTree) NumPoints() int   { return t.n }
func (t *BallTree) NumFeatures() int { return t.dims }

// QueryRadius appends to out the original indices of every point within
// radius of point (inclusive), sorted ascending.
func (t *BallTree) QueryRadius(point []float64, radius float64, out []int) []int {
	if t.n == 0 {
		return out
	}
	rdist := t.metric.DistToRdist(radius)
	out = t.radiusSearch(0, point, radius, rdist, out)
	sort.Ints(out)
	return out
}

// radiusSearch collects leaf points within radius of query, pruning subtrees
// whose ball lies entirely beyond the radius (triangle inequality:
// dist(query, centroid) - node radius is a lower bound).
func (t *BallTree) radiusSearch(nodeID int, query []float64, radius, rdist float64, out []int) []int {
	if nodeID >= len(t.nodes) {
		return out
	}
	node := t.nodes[nodeID]
	if node.IdxStart == node.IdxEnd && nodeID != 0 {
		return out
	}

	centroid := t.centroids[nodeID*t.dims : (nodeID+1)*t.dims]
	if t.metric.Distance(query, centroid)-node.Radius > radius {
		return out
	}

	if node.IsLeaf {
		for i := node.IdxStart; i < node.IdxEnd; i++ {
			ptIdx := t.idxArray[i]
			pt := t.data[ptIdx*t.dims : (ptIdx+1)*t.dims]
			if t.metric.ReducedDistance(query, pt) <= rdist {
				out = append(out, ptIdx)
			}
		}
		return out
	}

	out = t.radiusSearch(2*nodeID+1, query, radius, rdist, out)
	out = t.radiusSearch(2*nodeID+2, query, radius, rdist, out)
	return out
}
