// SPDX-License-Identifier: MIT

// Package distortion: sentinel error set.
// All user-triggered failures return these sentinels; tests match them with
// errors.Is. The builder never panics on user input.

package distortion

import "errors"

var (
	// ErrTooFewEdges is returned when an edge sequence has fewer than two
	// edges and therefore defines no bins.
	ErrTooFewEdges = errors.New("distortion: need at least two edges")

	// ErrEdgeLengthMismatch is returned when original, modified and backward
	// do not share one length. The three sequences describe the same
	// breakpoints in three coordinate frames and must stay parallel.
	ErrEdgeLengthMismatch = errors.New("distortion: edge sequences must have equal length")

	// ErrNilMatrix is returned when the caller-supplied output buffer is nil.
	ErrNilMatrix = errors.New("distortion: output matrix is nil")

	// ErrBadMatrixShape is returned when the output buffer does not hold
	// exactly N×N elements for N = len(original)-1.
	ErrBadMatrixShape = errors.New("distortion: output matrix must be N x N")

	// ErrUnknownMode is returned for a Mode value outside the defined set.
	ErrUnknownMode = errors.New("distortion: unknown execution mode")
)
