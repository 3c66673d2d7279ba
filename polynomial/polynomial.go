// Package polynomial implements least squares polynomial fitting over the
// normal equations. The square block of the augmented matrix reuses power
// sums of x across its diagonals, so the sums are accumulated once per fit
// rather than per matrix entry.
package polynomial

import (
	"strconv"
	"strings"

	"github.com/aouyang1/go-polyfit/gaussjordan"
)

// Float mirrors the element constraint of the solver.
type Float = gaussjordan.Float

// PowerSums accumulates the sums needed to assemble the normal equations
// for a fit of the requested degree. mpc[k] holds the sum of x_i^k for
// k = 0..2*degree with mpc[0] fixed at the sample count, and rhs[k] holds
// the sum of x_i^k * y_i for k = 0..degree with rhs[0] being the sum of y.
func PowerSums[F Float](x, y []F, degree int) (mpc, rhs []F) {
	mpc = make([]F, 2*degree+1)
	rhs = make([]F, degree+1)

	mpc[0] = F(len(x))
	for i := range x {
		xp := F(1)
		for k := 1; k < len(mpc); k++ {
			xp *= x[i]
			mpc[k] += xp
		}

		rhs[0] += y[i]
		xp = F(1)
		for k := 1; k < len(rhs); k++ {
			xp *= x[i]
			rhs[k] += xp * y[i]
		}
	}
	return mpc, rhs
}

// NormalMatrix assembles the (degree+1)x(degree+2) augmented matrix from
// the accumulated sums. Row r, column c of the square block holds
// mpc[r+c]; the last column holds rhs[r].
func NormalMatrix[F Float](mpc, rhs []F, degree int) [][]F {
	m := make([][]F, degree+1)
	for r := range m {
		row := make([]F, degree+2)
		for c := 0; c <= degree; c++ {
			row[c] = mpc[r+c]
		}
		row[degree+1] = rhs[r]
		m[r] = row
	}
	return m
}

// CoefficientsFrom reads the last column of an echelonized augmented
// matrix as the coefficient vector, lowest power first. The matrix is not
// checked for complete reduction; rows left unreduced by a singular system
// yield meaningless entries.
func CoefficientsFrom[F Float](m [][]F) []F {
	terms := make([]F, len(m))
	for r, row := range m {
		terms[r] = row[len(row)-1]
	}
	return terms
}

// Fit computes the least squares coefficients of the given degree for the
// sample pairs. The result has degree+1 entries where entry k is the
// coefficient of x^k. The augmented matrix is allocated per call so
// concurrent fits over the same samples do not share scratch state.
func Fit[F Float](x, y []F, degree int) []F {
	mpc, rhs := PowerSums(x, y, degree)
	m := NormalMatrix(mpc, rhs, degree)
	gaussjordan.Echelonize(m)
	return CoefficientsFrom(m)
}

// Regress evaluates the polynomial described by terms at x, accumulating
// term by term from the lowest power with a running power of x.
func Regress[F Float](x F, terms []F) F {
	var sum F
	xp := F(1)
	for _, t := range terms {
		sum += t * xp
		xp *= x
	}
	return sum
}

// Expression renders the polynomial as "c0 + c1x^1 + c2x^2" using the
// shortest decimal representation that round-trips in the term precision.
func Expression[F Float](terms []F) string {
	var sb strings.Builder
	for i, t := range terms {
		if i > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(formatTerm(t))
		if i > 0 {
			sb.WriteString("x^")
			sb.WriteString(strconv.Itoa(i))
		}
	}
	return sb.String()
}

func formatTerm[F Float](v F) string {
	if _, ok := any(v).(float32); ok {
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	}
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}
