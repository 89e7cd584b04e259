package dbscan

import "sync"

// buildAdjacencyParallel computes the precomputed neighbor lists using
// multiple goroutines. Each worker handles a contiguous range of rows;
// since row ranges don't overlap, no synchronization is needed for writes.
// Falls back to the sequential buildAdjacency if numWorkers <= 1.
//
// The result is identical to buildAdjacency: per-row ascending neighbor lists.
func buildAdjacencyParallel(flat []float64, n, dims int, metric DistanceMetric, epsilon float64, numWorkers int) [][]int {
	if numWorkers <= 1 || n <= 1 {
		return buildAdjacency(flat, n, dims, metric, epsilon)
	}

	adjacency := make([][]int, n)
	rdist := metric.DistToRdist(epsilon)

	var wg sync.WaitGroup
	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > n {
			endRow = n
		}
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				adjacency[i] = appendNeighborsLinear(adjacency[i], flat, n, dims, metric, rdist, i)
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return adjacency
}

// computeDensitiesParallel computes weighted densities using multiple
// goroutines. Each worker handles a contiguous range of points with its own
// query buffer. Falls back to sequential computeDensities if numWorkers <= 1.
func computeDensitiesParallel(idx NeighborIndex, weights []float64, n, numWorkers int) []float64 {
	if numWorkers <= 1 || n <= 1 {
		return computeDensities(idx, weights, n)
	}

	densities := make([]float64, n)

	var wg sync.WaitGroup
	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > n {
			endRow = n
		}
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			var buf []int
			for i := start; i < end; i++ {
				buf = idx.Neighbors(i, buf)
				densities[i] = sumWeights(buf, weights)
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return densities
}
