package polyfit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScores(t *testing.T) {
	predicted := []float64{1, 2, 3, 4}
	actual := []float64{1, 2, 3, 4}

	scores, err := NewScores(predicted, actual)
	require.Nil(t, err)
	assert.Equal(t, 0.0, scores.MSE)
	assert.Equal(t, 0.0, scores.MAPE)
	assert.InDelta(t, 1.0, scores.R2, 1e-12)
}

func TestNewScoresLenMismatch(t *testing.T) {
	_, err := NewScores([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrResLenMismatch)
}

func TestMSE(t *testing.T) {
	mse, err := MSE([]float64{1, 3}, []float64{1, 1})
	require.Nil(t, err)
	assert.Equal(t, 2.0, mse)

	mse, err = MSE([]float64{1, math.NaN()}, []float64{1, 5})
	require.Nil(t, err)
	assert.Equal(t, 0.0, mse)
}

func TestMAPE(t *testing.T) {
	mape, err := MAPE([]float64{1, 1}, []float64{2, 4})
	require.Nil(t, err)
	assert.InDelta(t, (0.5+0.75)/2, mape, 1e-12)

	// zero actual values are skipped
	mape, err = MAPE([]float64{1, 1}, []float64{0, 2})
	require.Nil(t, err)
	assert.InDelta(t, 0.25, mape, 1e-12)
}

func TestFitScores(t *testing.T) {
	f, err := NewFromFloats([]float64{0, 1, 2, 3}, []float64{1, 3, 5, 7}, nil)
	require.Nil(t, err)

	terms, err := f.ComputeCoefficients(1)
	require.Nil(t, err)

	scores, err := f.Scores(terms)
	require.Nil(t, err)
	assert.InDelta(t, 0.0, scores.MSE, 1e-12)
	assert.InDelta(t, 1.0, scores.R2, 1e-9)
}
