// Package dbscan implements Density-Based Spatial Clustering of Applications
// with Noise (DBSCAN) over a fixed, in-memory set of observations, with
// optional per-observation weights.
//
// A point is a core point when the total weight of its epsilon-neighborhood
// (itself included) reaches MinObservations. Core points within epsilon of
// each other belong to the same cluster; non-core points within epsilon of a
// core point join that core point's cluster as border points; everything else
// is noise (label -1).
//
// Basic usage:
//
//	cfg := dbscan.DefaultConfig()
//	cfg.Epsilon = 1.0
//	cfg.MinObservations = 3
//	result, err := dbscan.Cluster(data, cfg)
//	labels, err := result.Labels() // labels[i] is the cluster ID for point i (-1 = noise)
//
// Weighted clustering sums weights instead of counting points:
//
//	result, err := dbscan.ClusterWeighted(data, weights, cfg)
//
// # Result selection
//
// Config.Results selects which output artifacts the call materializes:
// cluster labels, core flags, core observation rows, and core observation
// indices. Accessors for artifacts that were not requested return an error
// matching [ErrResultNotRequested], so large-scale callers can skip outputs
// they will not consume.
//
// # Neighbor search strategy
//
// By default (Algorithm: "auto"), Cluster picks a neighbor search strategy
// based on the metric and dimensionality: a KD-tree for axis-decomposable
// metrics on low-dimensional data, a ball tree otherwise, falling back to
// brute force for custom metrics. Set Config.Algorithm to force a strategy,
// and Config.MemSaveMode to trade compute for memory on the brute-force path.
// The strategy is a performance knob only: every strategy produces identical
// neighbor sets, and therefore identical clustering.
package dbscan
