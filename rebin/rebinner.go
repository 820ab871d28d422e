// SPDX-License-Identifier: MIT

package rebin

import "gonum.org/v1/gonum/mat"

// Rebinner bundles a rebinning matrix with its application. Build it once
// over a pair of binnings, then regroup any number of content vectors living
// on the old binning. The upstream pipeline wires one matrix to many content
// streams the same way.
//
// A Rebinner is immutable after construction and safe for concurrent use.
type Rebinner struct {
	m    *mat.Dense // (nnew × nold) indicator matrix
	nold int        // source bins
	nnew int        // destination bins
}

// NewRebinner builds the rebinning matrix for (oldEdges, newEdges) and wraps it.
// It fails exactly where Build fails; a nil *Options means DefaultOptions().
func NewRebinner(oldEdges, newEdges []float64, opts *Options) (*Rebinner, error) {
	m, err := NewMatrix(oldEdges, newEdges, opts)
	if err != nil {
		return nil, err
	}

	return &Rebinner{m: m, nold: len(oldEdges) - 1, nnew: len(newEdges) - 1}, nil
}

// SourceBins returns the number of bins of the old binning.
func (r *Rebinner) SourceBins() int { return r.nold }

// DestinationBins returns the number of bins of the new binning.
func (r *Rebinner) DestinationBins() int { return r.nnew }

// Matrix exposes the underlying (DestinationBins × SourceBins) transfer
// matrix. The returned value shares storage with the Rebinner and must not
// be mutated.
func (r *Rebinner) Matrix() mat.Matrix { return r.m }

// ApplyTo regroups content (length SourceBins) into dst (length
// DestinationBins) via the matrix–vector product dst = M·content.
// Returns ErrContentLength on a size mismatch.
func (r *Rebinner) ApplyTo(dst, content []float64) error {
	if len(content) != r.nold || len(dst) != r.nnew {
		return ErrContentLength
	}

	out := mat.NewVecDense(r.nnew, dst)
	out.MulVec(r.m, mat.NewVecDense(r.nold, content))

	return nil
}

// Apply is ApplyTo with a freshly allocated destination.
func (r *Rebinner) Apply(content []float64) ([]float64, error) {
	dst := make([]float64, r.nnew)
	if err := r.ApplyTo(dst, content); err != nil {
		return nil, err
	}

	return dst, nil
}
