// SPDX-License-Identifier: MIT

// Package rebin: optimized kernel. Same merge as impl_reference.go with the
// coincidence tests inlined and the tolerances hoisted out of the loop; all
// comparisons are still evaluated in double precision, so the two kernels
// accept and reject exactly the same inputs.

package rebin

import (
	"math"

	"github.com/detflow/bintransfer/numeric"
)

// rebinOptimized is the default kernel behind Build.
// Inputs are pre-validated, preconditions checked, matrix pre-zeroed.
func rebinOptimized[F numeric.Float](oldEdges, newEdges, matrix []F, pol numeric.Policy) error {
	ncols := len(oldEdges) - 1
	atol, rtol := pol.Atol, pol.Rtol

	iold := 0
	edgeOld := float64(oldEdges[0])
	edgeNewPrev := float64(newEdges[0])
	for inew := 1; inew < len(newEdges); inew++ {
		edgeNew := float64(newEdges[inew])

		for edgeOld < edgeNew && math.Abs(edgeNew-edgeOld) > atol+rtol*math.Abs(edgeOld) {
			if edgeOld >= edgeNewPrev || math.Abs(edgeOld-edgeNewPrev) <= atol+rtol*math.Abs(edgeNewPrev) {
				matrix[(inew-1)*ncols+iold] = 1
			}
			if iold++; iold >= len(oldEdges) {
				return errOuter(iold, inew, edgeNew)
			}
			edgeOld = float64(oldEdges[iold])
		}

		if math.Abs(edgeNew-edgeOld) > atol+rtol*math.Abs(edgeOld) {
			return errInner(iold, edgeOld, inew, edgeNew)
		}
		edgeNewPrev = edgeNew
	}

	return nil
}
