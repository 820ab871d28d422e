// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"math"
)

// DefaultAtol is the default absolute tolerance for edge coincidence.
// Bin edges produced by the same upstream computation differ, if at all,
// by a few ulps; 1e-14 absorbs that without masking real misalignment.
const DefaultAtol = 1e-14

// DefaultRtol is the default relative tolerance for edge coincidence.
const DefaultRtol = 0.0

// ErrBadTolerance is returned by Policy.Validate when a tolerance is
// negative, NaN or infinite.
var ErrBadTolerance = errors.New("numeric: tolerance must be finite and non-negative")

// Float constrains the element type of edge and matrix buffers.
// All sequences involved in one builder call share a single width.
type Float interface {
	~float32 | ~float64
}

// Policy is an absolute+relative floating-point coincidence test.
// The zero value treats only exactly equal values as coincident.
type Policy struct {
	Atol float64 // absolute tolerance, ≥ 0
	Rtol float64 // relative tolerance, ≥ 0, scaled by |b|
}

// DefaultPolicy returns the policy used by the builders unless overridden:
// Atol = 1e-14, Rtol = 0.
func DefaultPolicy() Policy {
	return Policy{Atol: DefaultAtol, Rtol: DefaultRtol}
}

// Coincident reports whether a and b are the same edge under the policy:
//
//	|a-b| ≤ Atol + Rtol·|b|
//
// The test is asymmetric in b, matching the convention of the rebin merge
// (b is the cursor edge the candidate a is checked against).
// Complexity: O(1).
func (p Policy) Coincident(a, b float64) bool {
	return math.Abs(a-b) <= p.Atol+p.Rtol*math.Abs(b)
}

// Validate rejects policies that cannot serve as a coincidence test.
// Returns ErrBadTolerance for negative, NaN or infinite tolerances.
func (p Policy) Validate() error {
	if math.IsNaN(p.Atol) || math.IsInf(p.Atol, 0) || p.Atol < 0 {
		return ErrBadTolerance
	}
	if math.IsNaN(p.Rtol) || math.IsInf(p.Rtol, 0) || p.Rtol < 0 {
		return ErrBadTolerance
	}

	return nil
}
