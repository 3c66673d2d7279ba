package polyfit

import (
	"math/rand/v2"
	"os"
	"testing"

	"github.com/pkg/profile"
)

var benchCoefs []float64

func benchData(n int) ([]float64, []float64) {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i) / float64(n) * 10
		y[i] = 2 + 0.5*x[i] - 0.1*x[i]*x[i] + rand.NormFloat64()
	}
	return x, y
}

func BenchmarkComputeCoefficients(b *testing.B) {
	if os.Getenv("POLYFIT_PROFILE") != "" {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	x, y := benchData(1000)
	f, err := NewFromFloats(x, y, nil)
	if err != nil {
		panic(err)
	}

	b.ResetTimer()
	for b.Loop() {
		benchCoefs, err = f.ComputeCoefficients(6)
		if err != nil {
			panic(err)
		}
	}
}

func BenchmarkBestFit(b *testing.B) {
	x, y := benchData(500)
	f, err := NewFromFloats(x, y, nil)
	if err != nil {
		panic(err)
	}

	b.ResetTimer()
	for b.Loop() {
		benchCoefs, err = f.BestFit(10)
		if err != nil {
			panic(err)
		}
	}
}
