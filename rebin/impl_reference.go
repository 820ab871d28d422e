// SPDX-License-Identifier: MIT

// Package rebin: reference kernel. The merge is written against
// numeric.Policy directly so each comparison reads as the coincidence test
// it is. Must stay decision-for-decision identical to impl_optimized.go.

package rebin

import "github.com/detflow/bintransfer/numeric"

// rebinReference performs the forward merge of old edges under new edges.
// Inputs are pre-validated, preconditions checked, matrix pre-zeroed.
func rebinReference[F numeric.Float](oldEdges, newEdges, matrix []F, pol numeric.Policy) error {
	ncols := len(oldEdges) - 1

	iold := 0
	edgeOld := float64(oldEdges[0])
	edgeNewPrev := float64(newEdges[0])
	for inew := 1; inew < len(newEdges); inew++ {
		edgeNew := float64(newEdges[inew])

		// Consume old edges strictly below the current new edge. Each old
		// bin whose left edge lies inside the covered range belongs to the
		// new bin ending at edgeNew.
		for edgeOld < edgeNew && !pol.Coincident(edgeNew, edgeOld) {
			if edgeOld >= edgeNewPrev || pol.Coincident(edgeOld, edgeNewPrev) {
				matrix[(inew-1)*ncols+iold] = 1
			}
			if iold++; iold >= len(oldEdges) {
				return errOuter(iold, inew, edgeNew)
			}
			edgeOld = float64(oldEdges[iold])
		}

		// The old cursor must land exactly on the new edge: rebinning
		// regroups bins, it never splits them.
		if !pol.Coincident(edgeNew, edgeOld) {
			return errInner(iold, edgeOld, inew, edgeNew)
		}
		edgeNewPrev = edgeNew
	}

	return nil
}
