// SPDX-License-Identifier: MIT

// Package distortion: reference kernel. The merge is written out as a small
// state machine (seek → scan → done) with named cursors and an explicit
// "which stream advanced" enumerator, so every transition of the algorithm
// can be audited in isolation. It must stay operation-for-operation identical
// to impl_optimized.go.

package distortion

import "github.com/detflow/bintransfer/numeric"

// stream identifies which of the two merged breakpoint streams produced an
// edge.
type stream uint8

const (
	// streamOriginal: pairs (original[i], modified[i]) — the source bin
	// boundary and where the distortion maps it. Its cursor is the output
	// column.
	streamOriginal stream = iota

	// streamBackward: pairs (backward[i], original[i]) — the destination
	// boundary in distorted space and its untouched destination coordinate.
	streamBackward
)

// phase is the state of the merge machine.
type phase uint8

const (
	phaseSeek phase = iota // searching for the first overlapping breakpoint
	phaseScan              // accumulating fine segments into the matrix
	phaseDone              // terminal
)

// merger carries the full state of one build: the three edge views, the
// output buffer, the two stream cursors, the destination row, the running
// left breakpoint and the current coarse bin width.
type merger[F numeric.Float] struct {
	original []F
	modified []F
	backward []F
	matrix   []F

	nbins       int
	idxA        int // cursor over original/modified; also the output column
	idxB        int // cursor over backward
	idxY        int // destination row
	leftX       F   // left fine breakpoint, source coordinate
	leftY       F   // left fine breakpoint, destination coordinate
	widthCoarse F   // width of source bin idxA; normalization denominator
	phase       phase
}

// buildReference runs the merge machine to completion.
// Inputs are pre-validated and matrix is pre-zeroed by Build.
func buildReference[F numeric.Float](original, modified, backward, matrix []F) {
	m := merger[F]{
		original: original,
		modified: modified,
		backward: backward,
		matrix:   matrix,
		nbins:    len(original) - 1,
		idxA:     -1,
		idxB:     -1,
		leftX:    F(seekThreshold),
		leftY:    F(seekThreshold),
		phase:    phaseSeek,
	}
	for m.phase != phaseDone {
		if m.phase == phaseSeek {
			m.seekStep()
		} else {
			m.scanStep()
		}
	}
}

// nextBreakpoint returns the smaller upcoming edge of the two streams.
// Strict <, ties to the backward stream, no tolerance: exact floating order
// decides which source column is credited at coincident boundaries.
func (m *merger[F]) nextBreakpoint() (x, y F, from stream) {
	if m.original[m.idxA+1] < m.backward[m.idxB+1] {
		return m.original[m.idxA+1], m.modified[m.idxA+1], streamOriginal
	}

	return m.backward[m.idxB+1], m.original[m.idxB+1], streamBackward
}

// seekStep consumes one breakpoint while searching for the first position
// that is above the initialization threshold and inside both the source and
// the destination domain. Exhausting a stream before that happens terminates
// the machine with the matrix untouched: the distortion has no overlap with
// the destination domain ("undershoot"), which is not an error.
func (m *merger[F]) seekStep() {
	minOriginal := m.original[0]
	minTarget := m.original[0] // destination edges are the original edges
	if m.leftX > F(seekThreshold) && m.leftX >= minOriginal && m.leftY >= minTarget {
		m.beginScan()

		return
	}

	x, y, from := m.nextBreakpoint()
	m.leftX, m.leftY = x, y
	if from == streamOriginal {
		if m.idxA++; m.idxA >= m.nbins {
			m.phase = phaseDone
		}
	} else {
		if m.idxB++; m.idxB >= m.nbins {
			m.phase = phaseDone
		}
	}
}

// beginScan fixes the starting column and coarse width and enters the scan.
func (m *merger[F]) beginScan() {
	if m.idxA < 0 {
		// backward[0] coincided exactly with original[0]: the seek ended on
		// the backward stream alone. Consume the zero-width leading segment
		// at original[0] so the column cursor is in range.
		m.leftX, m.leftY = m.original[0], m.modified[0]
		m.idxA = 0
	}
	m.widthCoarse = m.original[m.idxA+1] - m.original[m.idxA]
	m.phase = phaseScan
}

// scanStep processes one fine segment: pick the next breakpoint, move the
// destination row under the segment's left y-coordinate, credit the
// fractional width to (idxY, idxA), and advance whichever stream produced
// the breakpoint. The machine stops when either stream is exhausted or the
// segment lies beyond the last destination bin.
func (m *merger[F]) scanStep() {
	rightX, rightY, from := m.nextBreakpoint()

	for m.leftY >= m.original[m.idxY+1] {
		if m.idxY++; m.idxY >= m.nbins {
			m.phase = phaseDone

			return
		}
	}

	m.matrix[m.idxY*m.nbins+m.idxA] += (rightX - m.leftX) / m.widthCoarse

	if from == streamOriginal {
		if m.idxA++; m.idxA >= m.nbins {
			m.phase = phaseDone

			return
		}
		// The column changed, so the normalization denominator changes too.
		m.widthCoarse = m.original[m.idxA+1] - m.original[m.idxA]
	} else {
		if m.idxB++; m.idxB >= m.nbins {
			m.phase = phaseDone

			return
		}
	}
	m.leftX, m.leftY = rightX, rightY
}
