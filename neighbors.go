package dbscan

// NeighborIndex answers epsilon-neighborhood queries: the indices of every
// observation within Epsilon of observation i, the point itself included
// (distance 0 always qualifies). The boundary is inclusive (<= Epsilon).
//
// Implementations differ only in their memory/compute trade-off; identical
// inputs must yield identical neighbor sets from every implementation.
type NeighborIndex interface {
	// Neighbors appends the neighbor indices of point i to buf[:0], sorted
	// ascending, and returns the result. buf is reused as scratch between
	// calls; callers that retain the result must copy it.
	Neighbors(i int, buf []int) []int
}

// bruteIndex materializes the full adjacency up front: O(n²) distance
// computations once, O(1) per query afterwards.
type bruteIndex struct {
	adjacency [][]int
}

func (b *bruteIndex) Neighbors(i int, _ []int) []int { return b.adjacency[i] }

// newBruteIndex builds the precomputed adjacency, in parallel when
// workers > 1.
func newBruteIndex(flat []float64, n, dims int, metric DistanceMetric, epsilon float64, workers int) *bruteIndex {
	return &bruteIndex{adjacency: buildAdjacencyParallel(flat, n, dims, metric, epsilon, workers)}
}

// buildAdjacency computes the neighbor lists for every point by a full scan.
// Rows come out sorted ascending because j iterates in index order.
func buildAdjacency(flat []float64, n, dims int, metric DistanceMetric, epsilon float64) [][]int {
	adjacency := make([][]int, n)
	rdist := metric.DistToRdist(epsilon)
	for i := 0; i < n; i++ {
		adjacency[i] = appendNeighborsLinear(adjacency[i], flat, n, dims, metric, rdist, i)
	}
	return adjacency
}

// appendNeighborsLinear appends to out every index j with
// ReducedDistance(i, j) <= rdist, scanning all points in index order.
func appendNeighborsLinear(out []int, flat []float64, n, dims int, metric DistanceMetric, rdist float64, i int) []int {
	pi := flat[i*dims : (i+1)*dims]
	for j := 0; j < n; j++ {
		if j == i {
			out = append(out, j) // self, always within epsilon
			continue
		}
		pj := flat[j*dims : (j+1)*dims]
		if metric.ReducedDistance(pi, pj) <= rdist {
			out = append(out, j)
		}
	}
	return out
}

// linearIndex recomputes distances on every query: O(1) extra space beyond
// the per-query buffer, O(n) compute per query. This is the memory-saving
// mode for large n.
type linearIndex struct {
	flat   []float64
	n      int
	dims   int
	metric DistanceMetric
	rdist  float64 // epsilon in reduced-distance space
}

func newLinearIndex(flat []float64, n, dims int, metric DistanceMetric, epsilon float64) *linearIndex {
	return &linearIndex{
		flat:   flat,
		n:      n,
		dims:   dims,
		metric: metric,
		rdist:  metric.DistToRdist(epsilon),
	}
}

func (l *linearIndex) Neighbors(i int, buf []int) []int {
	return appendNeighborsLinear(buf[:0], l.flat, l.n, l.dims, l.metric, l.rdist, i)
}

// treeIndex answers queries through a spatial tree's radius search.
type treeIndex struct {
	tree    SpatialTree
	epsilon float64
	flat    []float64
	dims    int
}

func newTreeIndex(tree SpatialTree, epsilon float64) *treeIndex {
	return &treeIndex{
		tree:    tree,
		epsilon: epsilon,
		flat:    tree.Data(),
		dims:    tree.NumFeatures(),
	}
}

func (t *treeIndex) Neighbors(i int, buf []int) []int {
	point := t.flat[i*t.dims : (i+1)*t.dims]
	return t.tree.QueryRadius(point, t.epsilon, buf[:0])
}
