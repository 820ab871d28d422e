// SPDX-License-Identifier: MIT

// Package distortion builds the transfer matrix that redistributes histogram
// content under a smooth, possibly asymmetric axis distortion — e.g. an
// energy-scale non-linearity in a calibration pipeline.
//
// Inputs are three edge sequences of equal length N+1:
//
//	original — the source binning
//	modified — the original edges mapped forward through the distortion
//	backward — the destination edges projected backward into distorted space
//
// The builder merges two parallel breakpoint streams — (original[i],
// modified[i]) and (backward[i], original[i]) — into fine segments, and
// credits each segment's fractional width (rightX-leftX)/widthCoarse to the
// current source column of the (N×N) output matrix.
//
// Invariants:
//   - entries lie in [0,1]
//   - a column sums to 1 when its source bin is fully covered by the
//     distortion's image of the destination domain, and to < 1 (down to 0)
//     when truncated at a domain boundary
//   - a distortion whose image never reaches the destination domain yields
//     the all-zero matrix and a nil error ("undershoot" is a legitimate
//     no-overlap configuration, not a failure)
//
// Two interchangeable execution modes are provided (Options.Mode): Reference,
// an explicit seek→scan state machine, and Optimized (the default), a flat
// tight loop. Both perform the same operations in the same order, so results
// are bit-identical in float64 and agree to ≤ 0.5 ulp in float32.
//
// Complexity: O(N) time, O(1) extra memory per call; the builders keep no
// state between calls and are safe to run concurrently on separate buffers.
package distortion
