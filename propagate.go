package dbscan

// NoiseLabel is the cluster label of points that are neither core nor
// reachable from any core point.
const NoiseLabel = -1

// expandClusters assigns cluster labels by connectivity expansion over core
// points. It scans observations in ascending index order; each unassigned
// core point starts a new cluster and an explicit FIFO worklist expands it:
// every point within epsilon of a core point in the cluster joins it, and
// core points among them keep the expansion going. Border points join but
// never expand. Points are finalized on first assignment and never
// reassigned, so ascending-index processing order is the deterministic
// tie-break for border points reachable from multiple clusters.
//
// Returns the per-observation labels (NoiseLabel for unreached points) and
// the number of clusters. Cluster IDs are dense, starting at 0, in discovery
// order.
func expandClusters(idx NeighborIndex, isCore []bool, n int) (labels []int, clusterCount int) {
	labels = make([]int, n)
	for i := range labels {
		labels[i] = NoiseLabel
	}

	assigned := make([]bool, n)
	var queue []int
	var buf []int

	for i := 0; i < n; i++ {
		if assigned[i] || !isCore[i] {
			continue
		}

		cid := clusterCount
		clusterCount++
		assigned[i] = true
		labels[i] = cid
		queue = append(queue[:0], i)

		// Worklist expansion; head walks the queue in place.
		for head := 0; head < len(queue); head++ {
			q := queue[head]
			buf = idx.Neighbors(q, buf)
			for _, j := range buf {
				if assigned[j] {
					continue
				}
				assigned[j] = true
				labels[j] = cid
				if isCore[j] {
					queue = append(queue, j)
				}
			}
		}
	}

	return labels, clusterCount
}
