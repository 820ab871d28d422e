// SPDX-License-Identifier: MIT

// Package rebin: execution-mode and tolerance options.
package rebin

import "github.com/detflow/bintransfer/numeric"

// Mode selects which of the two interchangeable kernels performs the build.
// Both apply the same tolerance semantics and produce identical matrices and
// identical failures.
type Mode int

const (
	// Optimized mode: flat merge loop with inlined comparisons. Default.
	Optimized Mode = iota

	// Reference mode: literate merge through numeric.Policy, used to audit
	// Optimized.
	Reference
)

// Options configures a rebin-matrix build.
//
// Fields:
//   - Mode      — Optimized or Reference kernel.
//   - Tolerance — edge-coincidence policy; defaults to numeric.DefaultPolicy()
//     (atol=1e-14, rtol=0). Failures caused by misaligned edges are data
//     errors: do not retry them with loosened tolerances.
//
// A nil *Options passed to Build, NewMatrix or NewRebinner means
// DefaultOptions().
type Options struct {
	Mode      Mode
	Tolerance numeric.Policy
}

// DefaultOptions returns the default build configuration: Optimized mode with
// the default tolerance policy.
func DefaultOptions() Options {
	return Options{Mode: Optimized, Tolerance: numeric.DefaultPolicy()}
}
