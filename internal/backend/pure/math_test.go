package pure

import (
	"math"
	"testing"

	"github.com/born-ml/ndarray/internal/engine"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgMax(t *testing.T) {
	e := New()

	tests := []struct {
		name string
		a    ndarray.Array
		want int
	}{
		{"first occurrence", ndarray.Vector(1.0, 5.0, 3.0, 5.0), 1},
		{"int8 negatives", ndarray.Vector[int8](-3, -1, -2), 1},
		{"int64 beyond float precision", ndarray.Vector[int64](1<<53+1, 1<<53), 0},
		{"matrix element order", ndarray.Matrix([][]float32{{1, 2}, {9, 9}}), 2},
		{"transposed element order", ndarray.Matrix([][]int32{{1, 9}, {2, 9}}).Transpose(), 2},
		{"single", ndarray.Vector[int16](4), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.ArgMax(tt.a)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := e.ArgMax(ndarray.Vector[float64]())
	assert.ErrorIs(t, err, ndarray.ErrEmptyArray)
}

func TestArgMin(t *testing.T) {
	e := New()

	got, err := e.ArgMin(ndarray.Vector(4.0, -1.0, 7.0, -1.0))
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = e.ArgMin(ndarray.Vector[int8](math.MaxInt8, math.MinInt8))
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	_, err = e.ArgMin(ndarray.Vector[int32]())
	assert.ErrorIs(t, err, ndarray.ErrEmptyArray)
}

func TestSum(t *testing.T) {
	e := New()

	got, err := e.Sum(ndarray.Matrix([][]int8{{100, 100}, {100, 100}}))
	require.NoError(t, err)
	assert.Equal(t, 400.0, got, "promoted to float64 without wrapping")

	got, err = e.Sum(ndarray.Vector[float32]())
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCumSum(t *testing.T) {
	e := New()

	m := ndarray.Matrix([][]int32{{1, 2}, {3, 4}})
	got, err := engine.CumSumOf(e, m)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{4}, got.Shape())
	assert.Equal(t, []int32{1, 3, 6, 10}, got.Values())

	tr, err := engine.CumSumOf(e, m.Transpose())
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 4, 6, 10}, tr.Values())

	wrapped, err := engine.CumSumOf(e, ndarray.Vector[int8](127, 1))
	require.NoError(t, err)
	assert.Equal(t, []int8{127, -128}, wrapped.Values())

	empty, err := e.CumSum(ndarray.Vector[float64]())
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Size())
}

func TestExp(t *testing.T) {
	e := New()
	m := ndarray.Matrix([][]int16{{0, 1}, {2, -1}})

	res, err := e.Exp(m)
	require.NoError(t, err)
	got, err := ndarray.As[float64, ndarray.D2](res)
	require.NoError(t, err)

	assert.Equal(t, ndarray.Shape{2, 2}, got.Shape())
	assert.Equal(t, []float64{1, math.Exp(1), math.Exp(2), math.Exp(-1)}, got.Values())
}
