// SPDX-License-Identifier: MIT

// Package distortion: optimized kernel. One flat loop over raw buffers,
// no helper calls. Must stay operation-for-operation identical to the
// reference state machine in impl_reference.go.

package distortion

import "github.com/detflow/bintransfer/numeric"

// buildOptimized is the default kernel behind Build.
// Inputs are pre-validated and matrix is pre-zeroed by Build.
func buildOptimized[F numeric.Float](original, modified, backward, matrix []F) {
	nbins := len(original) - 1
	minOriginal := original[0]
	minTarget := original[0] // destination edges are the original edges
	threshold := F(seekThreshold)

	// Seek: consume the smaller next edge of either stream until the running
	// left breakpoint is real and inside both domains. Running out of a
	// stream here means the distortion never overlaps the destination
	// domain; the matrix stays all-zero.
	idxA, idxB := -1, -1
	leftX, leftY := threshold, threshold
	for leftX <= threshold || leftX < minOriginal || leftY < minTarget {
		if original[idxA+1] < backward[idxB+1] {
			leftX, leftY = original[idxA+1], modified[idxA+1]
			if idxA++; idxA >= nbins {
				return
			}
		} else {
			leftX, leftY = backward[idxB+1], original[idxB+1]
			if idxB++; idxB >= nbins {
				return
			}
		}
	}
	if idxA < 0 {
		// backward[0] coincided exactly with original[0]: the seek ended on
		// the backward stream alone. Consume the zero-width leading segment
		// at original[0] so the column cursor is in range.
		leftX, leftY = original[0], modified[0]
		idxA = 0
	}

	widthCoarse := original[idxA+1] - original[idxA]
	idxY := 0
	for {
		// Next fine breakpoint: strict < with ties to the backward stream.
		// Exact floating order decides which source column is credited at
		// coincident boundaries; no tolerance here.
		var rightX, rightY F
		fromA := original[idxA+1] < backward[idxB+1]
		if fromA {
			rightX, rightY = original[idxA+1], modified[idxA+1]
		} else {
			rightX, rightY = backward[idxB+1], original[idxB+1]
		}

		// Move the destination row under the segment's left y-coordinate.
		for leftY >= original[idxY+1] {
			if idxY++; idxY >= nbins {
				return // segment beyond the last destination bin
			}
		}

		matrix[idxY*nbins+idxA] += (rightX - leftX) / widthCoarse

		if fromA {
			if idxA++; idxA >= nbins {
				return
			}
			widthCoarse = original[idxA+1] - original[idxA]
		} else {
			if idxB++; idxB >= nbins {
				return
			}
		}
		leftX, leftY = rightX, rightY
	}
}
