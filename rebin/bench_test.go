package rebin_test

import (
	"testing"

	"github.com/detflow/bintransfer/rebin"
)

// benchBuild measures one kernel merging nold fine bins into nold/k coarse
// bins, the dominant shape in detector response pipelining.
func benchBuild(b *testing.B, mode rebin.Mode, nold, k int) {
	oldEdges := span(0.0, 1.0, nold+1)
	newEdges := everyK(oldEdges, k)
	matrix := make([]float64, (len(newEdges)-1)*nold)
	opts := &rebin.Options{Mode: mode, Tolerance: rebin.DefaultOptions().Tolerance}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := rebin.Build(oldEdges, newEdges, matrix, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuild_Optimized_Small(b *testing.B) { benchBuild(b, rebin.Optimized, 100, 2) }
func BenchmarkBuild_Optimized_Large(b *testing.B) { benchBuild(b, rebin.Optimized, 2000, 4) }
func BenchmarkBuild_Reference_Small(b *testing.B) { benchBuild(b, rebin.Reference, 100, 2) }
func BenchmarkBuild_Reference_Large(b *testing.B) { benchBuild(b, rebin.Reference, 2000, 4) }

// BenchmarkRebinner_ApplyTo measures the steady-state matrix–vector path once
// the matrix is built.
func BenchmarkRebinner_ApplyTo(b *testing.B) {
	oldEdges := span(0.0, 1.0, 1001)
	r, err := rebin.NewRebinner(oldEdges, everyK(oldEdges, 4), nil)
	if err != nil {
		b.Fatal(err)
	}

	content := make([]float64, r.SourceBins())
	for i := range content {
		content[i] = float64(i)
	}
	dst := make([]float64, r.DestinationBins())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := r.ApplyTo(dst, content); err != nil {
			b.Fatal(err)
		}
	}
}
