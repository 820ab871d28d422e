package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/detflow/bintransfer/numeric"
)

// TestPolicy_DefaultPolicy verifies the documented default tolerances.
func TestPolicy_DefaultPolicy(t *testing.T) {
	p := numeric.DefaultPolicy()
	assert.Equal(t, 1e-14, p.Atol, "default absolute tolerance")
	assert.Equal(t, 0.0, p.Rtol, "default relative tolerance")
	assert.NoError(t, p.Validate())
}

// TestPolicy_Coincident exercises the |a-b| ≤ atol + rtol·|b| predicate on
// both sides of the boundary.
func TestPolicy_Coincident(t *testing.T) {
	tests := []struct {
		name string
		p    numeric.Policy
		a, b float64
		want bool
	}{
		{"exact equality, zero policy", numeric.Policy{}, 1.5, 1.5, true},
		{"any difference, zero policy", numeric.Policy{}, 1.5, 1.5 + 1e-16, false},
		{"within atol", numeric.Policy{Atol: 1e-12}, 2.0, 2.0 + 5e-13, true},
		{"outside atol", numeric.Policy{Atol: 1e-12}, 2.0, 2.0 + 5e-12, false},
		{"rtol scales by |b|", numeric.Policy{Rtol: 1e-3}, 1000.5, 1000.0, true},
		{"rtol uses b, not a", numeric.Policy{Rtol: 1e-3}, 1000.0, 0.0, false},
		{"negative edges", numeric.Policy{Atol: 1e-12}, -3.0, -3.0 - 1e-13, true},
		{"boundary is inclusive", numeric.Policy{Atol: 0.5}, 1.0, 1.5, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.Coincident(tc.a, tc.b))
		})
	}
}

// TestPolicy_Validate rejects NaN, Inf and negative tolerances.
func TestPolicy_Validate(t *testing.T) {
	bad := []numeric.Policy{
		{Atol: -1e-14},
		{Rtol: -1.0},
		{Atol: math.NaN()},
		{Rtol: math.NaN()},
		{Atol: math.Inf(1)},
		{Rtol: math.Inf(1)},
	}
	for _, p := range bad {
		assert.ErrorIs(t, p.Validate(), numeric.ErrBadTolerance, "policy %+v must be rejected", p)
	}

	assert.NoError(t, numeric.Policy{Atol: 1e-9, Rtol: 1e-6}.Validate())
	assert.NoError(t, numeric.Policy{}.Validate(), "zero policy is exact comparison, still valid")
}
