package sampleset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testData := map[string]struct {
		x   Sequence
		y   Sequence
		err error
	}{
		"valid float64": {
			x: Float64Seq{1, 2, 3},
			y: Float64Seq{4, 5, 6},
		},
		"valid float32": {
			x: Float32Seq{1, 2},
			y: Float32Seq{3, 4},
		},
		"nil x": {
			x:   nil,
			y:   Float64Seq{1},
			err: ErrNilSequence,
		},
		"mixed representation": {
			x:   Float64Seq{1, 2},
			y:   Float32Seq{1, 2},
			err: ErrKindMismatch,
		},
		"length mismatch": {
			x:   Float64Seq{1, 2, 3},
			y:   Float64Seq{1, 2},
			err: ErrLenMismatch,
		},
		"empty": {
			x:   Float64Seq{},
			y:   Float64Seq{},
			err: ErrNoSampleData,
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			ds, err := New(td.x, td.y)
			if td.err != nil {
				assert.ErrorIs(t, err, td.err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, td.x.Len(), ds.Len())
			assert.Equal(t, td.x.Kind(), ds.Kind())
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	x := Float64Seq{1, 2, 3}
	y := Float64Seq{4, 5, 6}
	ds, err := New(x, y)
	require.Nil(t, err)

	x[0] = 99
	y[0] = 99
	assert.Equal(t, []float64{1, 2, 3}, ds.X.Float64())
	assert.Equal(t, []float64{4, 5, 6}, ds.Y.Float64())
}

func TestDatasetCopy(t *testing.T) {
	ds, err := New(Float32Seq{1, 2}, Float32Seq{3, 4})
	require.Nil(t, err)

	cp := ds.Copy()
	cp.X.(Float32Seq)[0] = 42
	assert.Equal(t, []float64{1, 2}, ds.X.Float64())
	assert.Equal(t, Float32Kind, cp.Kind())
}

func TestFloat32SeqWidens(t *testing.T) {
	s := Float32Seq{0.5, 1.25}
	assert.Equal(t, []float64{0.5, 1.25}, s.Float64())
	assert.Equal(t, 32, s.Kind().BitSize())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("float32")
	require.Nil(t, err)
	assert.Equal(t, Float32Kind, k)

	k, err = ParseKind("")
	require.Nil(t, err)
	assert.Equal(t, Float64Kind, k)

	_, err = ParseKind("float16")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
