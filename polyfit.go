// Package polyfit fits polynomials of a chosen degree to sample pairs
// using ordinary least squares over the normal equations, solved with
// Gauss-Jordan elimination. A fit session also reports the squared
// correlation coefficient and residual standard error of a candidate
// coefficient set, and can scan increasing degrees for the lowest one
// meeting a target correlation.
package polyfit

import (
	"fmt"
	"slices"

	"github.com/aouyang1/go-polyfit/sampleset"
)

// Fit is a fit session over one immutable sample dataset. Sessions hold no
// mutable scratch state; every computation allocates its own matrix, so
// concurrent calls on one session are safe.
type Fit struct {
	opt  *Options
	kind sampleset.Kind

	data *sampleset.Dataset
	eng  engine

	// set when the session was restored from a serialized model and
	// carries no sample data
	model *Model
}

// New creates a fit session from two sequences of equal length and
// representation. If no options are provided a default is used.
func New(x, y sampleset.Sequence, opt *Options) (*Fit, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}

	ds, err := sampleset.New(x, y)
	if err != nil {
		return nil, fmt.Errorf("unable to create sample dataset, %w, %w", err, ErrConfiguration)
	}

	eng, err := newEngine(ds)
	if err != nil {
		return nil, err
	}

	return &Fit{
		opt:  opt,
		kind: ds.Kind(),
		data: ds,
		eng:  eng,
	}, nil
}

// NewFromFloats creates a double precision fit session from plain slices.
func NewFromFloats(x, y []float64, opt *Options) (*Fit, error) {
	return New(sampleset.Float64Seq(x), sampleset.Float64Seq(y), opt)
}

// Kind returns the floating point representation the session computes in.
func (f *Fit) Kind() sampleset.Kind {
	return f.kind
}

// TrainingData returns a copy of the sample dataset, or nil for a session
// restored from a model.
func (f *Fit) TrainingData() *sampleset.Dataset {
	if f.data == nil {
		return nil
	}
	return f.data.Copy()
}

// ComputeCoefficients fits a polynomial of the given degree and returns
// its degree+1 coefficients ordered lowest power first. Results are
// deterministic; repeated calls yield bit-identical coefficients. On a
// singular normal-equations system the affected entries are meaningless;
// no detection is performed.
func (f *Fit) ComputeCoefficients(degree int) ([]float64, error) {
	if degree < 0 {
		return nil, ErrInvalidDegree
	}
	if f.eng == nil {
		if f.model != nil && degree == f.model.Degree {
			return slices.Clone(f.model.Coefficients), nil
		}
		return nil, ErrNoSamples
	}
	return f.eng.coefficients(degree), nil
}

// CorrelationCoefficient returns the squared Pearson correlation between
// the values predicted by terms and the observations. The result is 0
// when the denominator degenerates, e.g. for constant observations.
func (f *Fit) CorrelationCoefficient(terms []float64) (float64, error) {
	if f.eng == nil {
		return 0, ErrNoSamples
	}
	return f.eng.correlation(terms), nil
}

// StandardError returns sqrt(sum((predicted-y)^2) / (n-2)), or 0 when the
// session has two or fewer samples.
func (f *Fit) StandardError(terms []float64) (float64, error) {
	if f.eng == nil {
		return 0, ErrNoSamples
	}
	return f.eng.stdError(terms), nil
}

// Residuals returns the per-sample difference between the values predicted
// by terms and the observations.
func (f *Fit) Residuals(terms []float64) ([]float64, error) {
	if f.eng == nil {
		return nil, ErrNoSamples
	}
	return f.eng.residuals(terms), nil
}

// BestFit scans degrees 1..maxDegree in order and returns the
// coefficients of the first degree whose correlation strictly exceeds the
// session's target correlation, or nil if no degree in range qualifies.
func (f *Fit) BestFit(maxDegree int) ([]float64, error) {
	res, err := f.BestFitDetail(maxDegree)
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, nil
	}
	return res.Coefficients, nil
}

// BestFitDetail runs the same scan as BestFit and additionally reports the
// chosen degree and the correlation observed at every degree examined.
func (f *Fit) BestFitDetail(maxDegree int) (*BestFitResult, error) {
	if maxDegree < 1 {
		return nil, ErrInvalidMaxDegree
	}
	if f.eng == nil {
		return nil, ErrNoSamples
	}

	res := &BestFitResult{Target: f.opt.TargetCorrelation}
	for d := 1; d <= maxDegree; d++ {
		terms := f.eng.coefficients(d)
		r2 := f.eng.correlation(terms)
		res.Correlations = append(res.Correlations, r2)
		if r2 > res.Target {
			res.Found = true
			res.Degree = d
			res.Coefficients = terms
			break
		}
	}
	return res, nil
}

// Polynomial fits the given degree and returns an evaluator closure over
// the resulting coefficients. The closure is independent of the session
// and safe for concurrent use.
func (f *Fit) Polynomial(degree int) (func(float64) float64, error) {
	terms, err := f.ComputeCoefficients(degree)
	if err != nil {
		return nil, err
	}
	return evaluatorFor(f.kind, terms), nil
}

// Expression fits the given degree and renders the polynomial as
// "c0 + c1x^1 + c2x^2" with each coefficient in its shortest decimal form.
func (f *Fit) Expression(degree int) (string, error) {
	terms, err := f.ComputeCoefficients(degree)
	if err != nil {
		return "", err
	}
	return expressionFor(f.kind, terms), nil
}
