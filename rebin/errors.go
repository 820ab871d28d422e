// SPDX-License-Identifier: MIT

// Package rebin: sentinel error set and the contextual wrappers shared by
// both kernels. Tests match sentinels via errors.Is; wrapped messages carry
// the cursor positions for diagnostics.

package rebin

import (
	"errors"
	"fmt"
)

var (
	// ErrTooFewEdges is returned when either edge sequence has fewer than
	// two edges and therefore defines no bins.
	ErrTooFewEdges = errors.New("rebin: need at least two edges")

	// ErrNilMatrix is returned when the caller-supplied output buffer is nil.
	ErrNilMatrix = errors.New("rebin: output matrix is nil")

	// ErrBadMatrixShape is returned when the output buffer does not hold
	// exactly M×N elements for M new bins over N old bins.
	ErrBadMatrixShape = errors.New("rebin: output matrix must be M x N")

	// ErrUnknownMode is returned for a Mode value outside the defined set.
	ErrUnknownMode = errors.New("rebin: unknown execution mode")

	// ErrRangeNotCovered is returned before the merge starts when the new
	// range is not within the old range (tolerance-checked). Rebinning can
	// drop old bins outside the new range, but cannot invent content beyond
	// the old range.
	ErrRangeNotCovered = errors.New("rebin: new edges exceed the old edge range")

	// ErrInconsistentEdges is returned mid-merge when a new edge cannot be
	// matched to an old edge: either the old cursor is exhausted (outer) or
	// the terminating old edge is not coincident with the current new edge
	// (inner). The partially populated matrix must be discarded.
	ErrInconsistentEdges = errors.New("rebin: inconsistent edges")

	// ErrContentLength is returned by Rebinner when a content vector does
	// not match the binning it was built for.
	ErrContentLength = errors.New("rebin: content length does not match binning")
)

// errOuter wraps ErrInconsistentEdges for the exhausted-old-cursor site.
// Both kernels must report through this helper so their failures are
// indistinguishable.
func errOuter(iold int, inew int, edgeNew float64) error {
	return fmt.Errorf("rebin: old edges exhausted at index %d before reaching new[%d]=%g (outer): %w",
		iold, inew, edgeNew, ErrInconsistentEdges)
}

// errInner wraps ErrInconsistentEdges for the unmatched-terminating-edge site.
func errInner(iold int, edgeOld float64, inew int, edgeNew float64) error {
	return fmt.Errorf("rebin: old[%d]=%g not coincident with new[%d]=%g (inner): %w",
		iold, edgeOld, inew, edgeNew, ErrInconsistentEdges)
}

// errRange wraps ErrRangeNotCovered with the offending boundary pair.
func errRange(side string, edgeNew, edgeOld float64) error {
	return fmt.Errorf("rebin: new %s edge %g outside old %s edge %g: %w",
		side, edgeNew, side, edgeOld, ErrRangeNotCovered)
}
