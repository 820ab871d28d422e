package distortion_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/detflow/bintransfer/distortion"
)

// benchEdges builds a smooth non-linear distortion over n bins: original
// edges span [0,10], modified edges bow them with a sine term, backward
// edges shift them slightly. All three stay strictly increasing.
func benchEdges(n int) (original, modified, backward []float64) {
	original = floats.Span(make([]float64, n+1), 0, 10)
	modified = make([]float64, n+1)
	backward = make([]float64, n+1)
	for i, x := range original {
		modified[i] = x + 0.2*math.Sin(x)
		backward[i] = x + 0.15*math.Cos(x) - 0.15
	}

	return original, modified, backward
}

// benchmarkBuild runs Build for n bins in the given mode.
func benchmarkBuild(b *testing.B, n int, mode distortion.Mode) {
	original, modified, backward := benchEdges(n)
	matrix := make([]float64, n*n)
	opts := distortion.Options{Mode: mode}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := distortion.Build(original, modified, backward, matrix, &opts); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_OptimizedSmall measures the default kernel on 100 bins.
func BenchmarkBuild_OptimizedSmall(b *testing.B) {
	benchmarkBuild(b, 100, distortion.Optimized)
}

// BenchmarkBuild_ReferenceSmall measures the state-machine kernel on 100 bins.
func BenchmarkBuild_ReferenceSmall(b *testing.B) {
	benchmarkBuild(b, 100, distortion.Reference)
}

// BenchmarkBuild_OptimizedLarge measures the default kernel on 2000 bins.
// The zero-fill of the 2000×2000 output dominates the merge itself.
func BenchmarkBuild_OptimizedLarge(b *testing.B) {
	benchmarkBuild(b, 2000, distortion.Optimized)
}

// BenchmarkBuild_ReferenceLarge measures the state-machine kernel on 2000 bins.
func BenchmarkBuild_ReferenceLarge(b *testing.B) {
	benchmarkBuild(b, 2000, distortion.Reference)
}
