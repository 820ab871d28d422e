// SPDX-License-Identifier: MIT

// Package rebin builds the indicator matrix that re-aggregates histogram
// content from an old binning onto a new one whose boundaries coincide with
// a subset of the old boundaries.
//
// Inputs are two edge sequences: old (N+1 edges) and new (M+1 edges). The
// result is an (M×N) matrix of zeros and ones: column j carries a single 1
// in the row of the new bin that absorbs old bin j. Rebinning never
// interpolates — it only regroups — so a new edge that does not line up with
// an old edge (within the tolerance policy) is rejected, never silently
// approximated:
//
//   - the new range must lie within the old range (ErrRangeNotCovered)
//   - every new edge must coincide with some old edge (ErrInconsistentEdges)
//
// Edge coincidence is decided by numeric.Policy (default atol=1e-14, rtol=0).
// The merge is a single forward scan, O(N+M) time, with the same
// reference/optimized execution-mode duality as package distortion.
//
// Rebinner bundles the built matrix with its application: construct it once
// over a pair of binnings and apply it to any number of content vectors via
// gonum's MulVec.
package rebin
