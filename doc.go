// Package bintransfer builds explicit linear transfer matrices that convert
// histogram content between incompatible bin layouts — the core arithmetic of
// detector-calibration pipelines.
//
// 🚀 What is bintransfer?
//
//	A small, focused library that answers one question: given histogram
//	content on one binning, how does it map onto another?
//		• distortion/ — redistribute content across a smooth, possibly
//		  asymmetric axis distortion (e.g. an energy-scale non-linearity)
//		• rebin/      — regroup content across an exact coarsening of the
//		  bin boundaries: never interpolating, only re-aggregating
//		• numeric/    — the shared floating-point coincidence policy both
//		  builders compare edges with
//
// ✨ Why choose bintransfer?
//
//   - Pure functions over immutable edge buffers — no hidden state, safe to
//     run concurrently over independent buffers
//   - Two interchangeable code paths per builder: an auditable reference
//     state machine and an optimized tight loop, numerically identical
//   - Exact column-sum invariants: fractional distortion columns sum to 1
//     inside full coverage; rebin columns are strict 0/1 partitions
//   - gonum-ready — build straight into a *mat.Dense and apply it with MulVec
//
// Quick example:
//
//	m, err := rebin.NewMatrix(edgesOld, edgesNew, nil)
//	if err != nil {
//		// misaligned edges are rejected, never silently accepted
//	}
//	var out mat.VecDense
//	out.MulVec(m, mat.NewVecDense(len(content), content))
//
// The surrounding dataflow-graph engine (node registration, type inference,
// instance replication, output wiring) is intentionally out of scope: it
// supplies validated buffers and consumes matrices, nothing more.
//
//	go get github.com/detflow/bintransfer
package bintransfer
