// SPDX-License-Identifier: MIT

// Package numeric holds the floating-point comparison policy shared by the
// transfer-matrix builders.
//
// Both builders (distortion, rebin) must decide whether two bin edges are
// "the same" edge. That decision is encapsulated here as a standalone value
// object, Policy, with a single coincidence predicate:
//
//	|a-b| ≤ Atol + Rtol·|b|
//
// so the comparison semantics stay identical across builders and across the
// reference/optimized execution modes, and can be tested on their own.
//
// The package also defines the Float constraint (~float32 | ~float64) used by
// the generic builder kernels: edge buffers may be single or double precision,
// but coincidence is always evaluated in double precision.
package numeric
