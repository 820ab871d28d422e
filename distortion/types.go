// SPDX-License-Identifier: MIT

// Package distortion: execution-mode options.
package distortion

// Mode selects which of the two interchangeable kernels performs the build.
//
//   - Optimized — flat tight loop over raw buffers. Default.
//   - Reference — explicit seek→scan state machine with named cursors;
//     slower to read linearly but directly auditable against the algorithm
//     description.
//
// Both modes execute the same floating-point operations in the same order:
// results are bit-identical in double precision.
type Mode int

const (
	// Optimized mode: single flat loop, minimal branching. Default.
	Optimized Mode = iota

	// Reference mode: explicit state machine, used to audit Optimized.
	Reference
)

// Options configures a distortion-matrix build.
//
// Fields:
//   - Mode — Optimized or Reference kernel (functionally indistinguishable).
//
// A nil *Options passed to Build or NewMatrix means DefaultOptions().
type Options struct {
	Mode Mode
}

// DefaultOptions returns the default build configuration: Optimized mode.
func DefaultOptions() Options {
	return Options{Mode: Optimized}
}
