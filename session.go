package polyfit

import (
	"fmt"
	"math"

	"github.com/aouyang1/go-polyfit/polynomial"
	"github.com/aouyang1/go-polyfit/sampleset"
)

// engine is the precision-specialized computation core behind a fit
// session. One instantiation exists per sequence representation so every
// arithmetic operation runs in the precision of the samples.
type engine interface {
	coefficients(degree int) []float64
	correlation(terms []float64) float64
	stdError(terms []float64) float64
	residuals(terms []float64) []float64
	sampleLen() int
}

func newEngine(d *sampleset.Dataset) (engine, error) {
	switch x := d.X.(type) {
	case sampleset.Float64Seq:
		return &session[float64]{x: x, y: d.Y.(sampleset.Float64Seq)}, nil
	case sampleset.Float32Seq:
		return &session[float32]{x: x, y: d.Y.(sampleset.Float32Seq)}, nil
	}
	return nil, fmt.Errorf("%s, %w, %w", d.Kind(), sampleset.ErrUnknownKind, ErrConfiguration)
}

type session[F polynomial.Float] struct {
	x []F
	y []F
}

func (s *session[F]) sampleLen() int {
	return len(s.x)
}

func (s *session[F]) coefficients(degree int) []float64 {
	return widen(polynomial.Fit(s.x, s.y, degree))
}

// correlation computes the squared Pearson correlation between the fitted
// values and the observations with the sum-based formula. Despite the
// name the result is r^2 and never negative.
func (s *session[F]) correlation(terms64 []float64) float64 {
	terms := narrow[F](terms64)
	n := F(len(s.x))

	var sumP, sumY, sumPY, sumPP, sumYY F
	for i, xv := range s.x {
		p := polynomial.Regress(xv, terms)
		yv := s.y[i]
		sumP += p
		sumY += yv
		sumPY += p * yv
		sumPP += p * p
		sumYY += yv * yv
	}

	denom := sqrtF((sumPP - sumP*sumP/n) * (sumYY - sumY*sumY/n))
	if denom == 0 {
		return 0
	}
	r := (sumPY - sumP*sumY/n) / denom
	return float64(r * r)
}

// stdError returns the residual standard error with n-2 degrees of
// freedom, or 0 when there are too few samples for a meaningful estimate.
func (s *session[F]) stdError(terms64 []float64) float64 {
	if len(s.x) <= 2 {
		return 0
	}
	terms := narrow[F](terms64)

	var ss F
	for i, xv := range s.x {
		d := polynomial.Regress(xv, terms) - s.y[i]
		ss += d * d
	}
	return float64(sqrtF(ss / F(len(s.x)-2)))
}

func (s *session[F]) residuals(terms64 []float64) []float64 {
	terms := narrow[F](terms64)
	res := make([]float64, len(s.x))
	for i, xv := range s.x {
		res[i] = float64(polynomial.Regress(xv, terms) - s.y[i])
	}
	return res
}

// evaluatorFor returns a closure evaluating the polynomial in the given
// representation. The terms are captured by value so later mutation of the
// input slice cannot change the evaluator.
func evaluatorFor(kind sampleset.Kind, terms []float64) func(float64) float64 {
	if kind == sampleset.Float32Kind {
		t32 := narrow[float32](terms)
		return func(x float64) float64 {
			return float64(polynomial.Regress(float32(x), t32))
		}
	}
	t64 := narrow[float64](terms)
	return func(x float64) float64 {
		return polynomial.Regress(x, t64)
	}
}

func expressionFor(kind sampleset.Kind, terms []float64) string {
	if kind == sampleset.Float32Kind {
		return polynomial.Expression(narrow[float32](terms))
	}
	return polynomial.Expression(terms)
}

func sqrtF[F polynomial.Float](v F) F {
	return F(math.Sqrt(float64(v)))
}

func widen[F polynomial.Float](in []F) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}

func narrow[F polynomial.Float](in []float64) []F {
	out := make([]F, len(in))
	for i, v := range in {
		out[i] = F(v)
	}
	return out
}
