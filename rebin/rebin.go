// SPDX-License-Identifier: MIT

package rebin

import (
	"gonum.org/v1/gonum/mat"

	"github.com/detflow/bintransfer/numeric"
)

// Build populates matrix with the 0/1 rebinning matrix mapping content on
// oldEdges (N+1 edges) onto newEdges (M+1 edges).
//
// Contract:
//   - oldEdges, newEdges — strictly increasing; every new edge must coincide
//     (within Options.Tolerance) with some old edge;
//   - matrix — flat row-major (M×N) buffer; Build zero-fills it before
//     populating, so the result is complete on success.
//
// Preconditions, checked before the merge: newEdges[0] ≥ oldEdges[0] and
// newEdges[M] ≤ oldEdges[N], each up to coincidence (ErrRangeNotCovered
// otherwise).
//
// The merge walks the old cursor forward once per call. For each new bin
// (newEdges[i-1], newEdges[i]], every old edge inside the covered range and
// strictly below newEdges[i] marks its old bin as belonging to row i-1; the
// scan then requires the old cursor to land coincident with newEdges[i]
// (ErrInconsistentEdges otherwise — the partially populated matrix must be
// discarded).
//
// On success every old bin inside [newEdges[0], newEdges[M]] contributes to
// exactly one new bin: column sums are exactly 1 within the covered range,
// and 0 outside it. Complexity: O(N+M) time, O(1) extra memory.
func Build[F numeric.Float](oldEdges, newEdges, matrix []F, opts *Options) error {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Mode != Optimized && o.Mode != Reference {
		return ErrUnknownMode
	}
	if err := o.Tolerance.Validate(); err != nil {
		return err
	}
	if len(oldEdges) < 2 || len(newEdges) < 2 {
		return ErrTooFewEdges
	}
	if matrix == nil {
		return ErrNilMatrix
	}
	nold, nnew := len(oldEdges)-1, len(newEdges)-1
	if len(matrix) != nnew*nold {
		return ErrBadMatrixShape
	}

	// Complete-population semantics: untouched cells must read zero.
	for i := range matrix {
		matrix[i] = 0
	}

	pol := o.Tolerance
	if loNew, loOld := float64(newEdges[0]), float64(oldEdges[0]); loNew < loOld && !pol.Coincident(loNew, loOld) {
		return errRange("lower", loNew, loOld)
	}
	if hiNew, hiOld := float64(newEdges[nnew]), float64(oldEdges[nold]); hiNew > hiOld && !pol.Coincident(hiNew, hiOld) {
		return errRange("upper", hiNew, hiOld)
	}

	if o.Mode == Reference {
		return rebinReference(oldEdges, newEdges, matrix, pol)
	}

	return rebinOptimized(oldEdges, newEdges, matrix, pol)
}

// NewMatrix allocates an (M×N) gonum dense matrix and builds the rebinning
// matrix into it.
func NewMatrix(oldEdges, newEdges []float64, opts *Options) (*mat.Dense, error) {
	if len(oldEdges) < 2 || len(newEdges) < 2 {
		return nil, ErrTooFewEdges
	}
	nold, nnew := len(oldEdges)-1, len(newEdges)-1

	m := mat.NewDense(nnew, nold, nil)
	if err := Build(oldEdges, newEdges, m.RawMatrix().Data, opts); err != nil {
		return nil, err
	}

	return m, nil
}
