// SPDX-License-Identifier: MIT

package distortion

import (
	"gonum.org/v1/gonum/mat"

	"github.com/detflow/bintransfer/numeric"
)

// seekThreshold is the initialization sentinel for the seek phase: the
// running left edge starts below it, and the scan may not begin until a real
// breakpoint has been consumed.
const seekThreshold = -1e10

// Build populates matrix with the axis-distortion transfer matrix.
//
// Contract:
//   - original, modified, backward — parallel edge sequences of length N+1,
//     strictly increasing (not re-validated beyond what termination needs);
//   - matrix — flat row-major (N×N) buffer; Build zero-fills it before
//     populating, so the result is complete on success.
//
// Algorithm outline:
//  1. Seek: advance whichever stream has the smaller next edge until the
//     running left edge is above the initialization threshold and inside
//     both domains. Exhausting a stream here leaves the matrix all-zero and
//     returns nil — the distortion never reaches the destination domain.
//  2. Scan: merge the two streams into fine segments. Ties between the
//     candidate breakpoints go to the backward stream: exact floating order
//     decides, deliberately without tolerance. Each segment contributes
//     (rightX-leftX)/widthCoarse to matrix[idxY, idxA], where idxA is always
//     the source column — widthCoarse is therefore recomputed only when the
//     original stream advances.
//
// Returned errors are shape/config sentinels only (ErrTooFewEdges,
// ErrEdgeLengthMismatch, ErrNilMatrix, ErrBadMatrixShape, ErrUnknownMode);
// domain undershoot is not an error.
//
// Complexity: O(N) time, O(1) extra memory.
func Build[F numeric.Float](original, modified, backward, matrix []F, opts *Options) error {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Mode != Optimized && o.Mode != Reference {
		return ErrUnknownMode
	}
	if len(original) < 2 {
		return ErrTooFewEdges
	}
	if len(modified) != len(original) || len(backward) != len(original) {
		return ErrEdgeLengthMismatch
	}
	if matrix == nil {
		return ErrNilMatrix
	}
	nbins := len(original) - 1
	if len(matrix) != nbins*nbins {
		return ErrBadMatrixShape
	}

	// Complete-population semantics: untouched cells must read zero.
	for i := range matrix {
		matrix[i] = 0
	}

	if o.Mode == Reference {
		buildReference(original, modified, backward, matrix)
	} else {
		buildOptimized(original, modified, backward, matrix)
	}

	return nil
}

// NewMatrix allocates an (N×N) gonum dense matrix and builds the
// axis-distortion transfer matrix into it. Apply it to a content vector with
// (*mat.VecDense).MulVec.
func NewMatrix(original, modified, backward []float64, opts *Options) (*mat.Dense, error) {
	if len(original) < 2 {
		return nil, ErrTooFewEdges
	}
	nbins := len(original) - 1

	m := mat.NewDense(nbins, nbins, nil)
	if err := Build(original, modified, backward, m.RawMatrix().Data, opts); err != nil {
		return nil, err
	}

	return m, nil
}
