package dbscan

import (
	"github.com/cockroachdb/errors"
)

// ResultOptions is a bitmask selecting which output artifacts a compute call
// materializes. Accessors for artifacts whose bit was not set return an error
// matching ErrResultNotRequested.
type ResultOptions uint8

const (
	// ResultLabels requests the per-observation cluster labels.
	ResultLabels ResultOptions = 1 << iota
	// ResultCoreFlags requests the per-observation core/non-core flags.
	ResultCoreFlags
	// ResultCoreObservations requests the rows of the core observations,
	// in ascending index order.
	ResultCoreObservations
	// ResultCoreObservationIndices requests the indices of the core
	// observations, ascending.
	ResultCoreObservationIndices
)

// ResultAll requests every output artifact.
const ResultAll = ResultLabels | ResultCoreFlags | ResultCoreObservations | ResultCoreObservationIndices

// Has reports whether every bit in flag is set in o.
func (o ResultOptions) Has(flag ResultOptions) bool { return o&flag == flag }

// ErrResultNotRequested marks every accessor error caused by reading an
// artifact whose ResultOptions bit was not set. Use errors.Is to test for it.
var ErrResultNotRequested = errors.New("dbscan: result artifact was not requested")

var (
	errLabelsNotRequested = errors.Mark(
		errors.New("dbscan: cluster labels were not requested (set ResultLabels)"),
		ErrResultNotRequested)
	errCoreFlagsNotRequested = errors.Mark(
		errors.New("dbscan: core flags were not requested (set ResultCoreFlags)"),
		ErrResultNotRequested)
	errCoreObservationsNotRequested = errors.Mark(
		errors.New("dbscan: core observations were not requested (set ResultCoreObservations)"),
		ErrResultNotRequested)
	errCoreObservationIndicesNotRequested = errors.Mark(
		errors.New("dbscan: core observation indices were not requested (set ResultCoreObservationIndices)"),
		ErrResultNotRequested)
)

// Result holds the artifacts of one clustering call. Only the artifacts
// requested via Config.Results are materialized; the rest stay nil and their
// accessors fail.
type Result struct {
	requested    ResultOptions
	clusterCount int

	labels      []int
	coreFlags   []bool
	coreRows    [][]float64
	coreIndices []int
}

// newResult materializes the requested artifacts from the propagator's and
// classifier's internal state. labels and isCore are owned by the caller and
// copied or reshaped as needed; flat is the row-major observation data.
func newResult(opts ResultOptions, labels []int, clusterCount int, isCore []bool, flat []float64, dims int) *Result {
	r := &Result{requested: opts, clusterCount: clusterCount}

	if opts.Has(ResultLabels) {
		r.labels = labels
	}
	if opts.Has(ResultCoreFlags) {
		r.coreFlags = isCore
	}
	if opts.Has(ResultCoreObservations) || opts.Has(ResultCoreObservationIndices) {
		var indices []int
		for i, core := range isCore {
			if core {
				indices = append(indices, i)
			}
		}
		if opts.Has(ResultCoreObservationIndices) {
			if indices == nil {
				indices = []int{}
			}
			r.coreIndices = indices
		}
		if opts.Has(ResultCoreObservations) {
			rows := make([][]float64, 0, len(indices))
			for _, i := range indices {
				row := make([]float64, dims)
				copy(row, flat[i*dims:(i+1)*dims])
				rows = append(rows, row)
			}
			r.coreRows = rows
		}
	}

	return r
}

// ClusterCount returns the number of clusters found. Noise does not count
// as a cluster.
func (r *Result) ClusterCount() int { return r.clusterCount }

// Labels returns the per-observation cluster labels: a dense cluster ID
// starting at 0, or -1 for noise. Fails if ResultLabels was not requested.
func (r *Result) Labels() ([]int, error) {
	if !r.requested.Has(ResultLabels) {
		return nil, errLabelsNotRequested
	}
	return r.labels, nil
}

// CoreFlags returns the per-observation core flags. Fails if ResultCoreFlags
// was not requested.
func (r *Result) CoreFlags() ([]bool, error) {
	if !r.requested.Has(ResultCoreFlags) {
		return nil, errCoreFlagsNotRequested
	}
	return r.coreFlags, nil
}

// CoreObservations returns the rows of the core observations in ascending
// index order. Fails if ResultCoreObservations was not requested.
func (r *Result) CoreObservations() ([][]float64, error) {
	if !r.requested.Has(ResultCoreObservations) {
		return nil, errCoreObservationsNotRequested
	}
	return r.coreRows, nil
}

// CoreObservationIndices returns the ascending indices of the core
// observations. Fails if ResultCoreObservationIndices was not requested.
func (r *Result) CoreObservationIndices() ([]int, error) {
	if !r.requested.Has(ResultCoreObservationIndices) {
		return nil, errCoreObservationIndicesNotRequested
	}
	return r.coreIndices, nil
}
