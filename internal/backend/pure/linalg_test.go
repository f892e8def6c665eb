package pure

import (
	"math"
	"testing"

	"github.com/born-ml/ndarray/internal/engine"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot_2x2(t *testing.T) {
	e := New()
	a := ndarray.Matrix([][]float64{{1, 2}, {3, 4}})
	b := ndarray.Matrix([][]float64{{5, 6}, {7, 8}})

	c, err := engine.DotD2(e, a, b)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2, 2}, c.Shape())
	assert.Equal(t, []float64{19, 22, 43, 50}, c.Values())
}

func TestDot_AllKinds(t *testing.T) {
	e := New()

	for _, dt := range ndarray.DataTypes {
		t.Run(dt.String(), func(t *testing.T) {
			a := matrixOf(dt, [][]float64{{1, 2, 3}, {4, 5, 6}})
			b := matrixOf(dt, [][]float64{{1, 0}, {0, 1}, {2, 1}})

			c, err := e.Dot(a, b)
			require.NoError(t, err)
			assert.Equal(t, dt, c.DType())
			assert.Equal(t, ndarray.Shape{2, 2}, c.Shape())

			got, err := ndarray.As[float64, ndarray.D2](toFloat64(t, c))
			require.NoError(t, err)
			assert.Equal(t, []float64{7, 5, 16, 11}, got.Values())
		})
	}
}

func TestDot_Promotion(t *testing.T) {
	e := New()
	a := ndarray.Matrix([][]int32{{1, 2}, {3, 4}})
	b := ndarray.Matrix([][]float32{{0.5, 0}, {0, 0.25}})

	c, err := engine.DotAs[float64](e, a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5, 1.5, 1}, c.Values())

	_, err = engine.DotAs[float32](e, a, b)
	assert.ErrorIs(t, err, ndarray.ErrTypeMismatch)

	i8 := ndarray.Matrix([][]int8{{100}})
	i64 := ndarray.Matrix([][]int64{{math.MaxInt32}})
	wide, err := engine.DotAs[int64](e, i8, i64)
	require.NoError(t, err)
	assert.Equal(t, int64(100)*math.MaxInt32, wide.At(0, 0))
}

func TestDot_IntegerWraps(t *testing.T) {
	e := New()
	a := ndarray.Matrix([][]int8{{100, 100}})
	b := ndarray.Matrix([][]int8{{2}, {1}})

	c, err := engine.DotD2(e, a, b)
	require.NoError(t, err)
	// 300 wraps to 44 in int8
	assert.Equal(t, int8(44), c.At(0, 0))
}

func TestDot_StridedOperands(t *testing.T) {
	e := New()
	a := ndarray.Matrix([][]float64{{1, 3}, {2, 4}}).Transpose() // [[1,2],[3,4]]
	big := ndarray.Matrix([][]float64{{5, 0, 6}, {0, 0, 0}, {7, 0, 8}})
	b, err := big.Slice(0, 0, 3, 2)
	require.NoError(t, err)
	b, err = b.Slice(1, 0, 3, 2) // [[5,6],[7,8]]
	require.NoError(t, err)
	require.False(t, b.IsContiguous())

	c, err := engine.DotD2(e, a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{19, 22, 43, 50}, c.Values())
}

func TestDot_Errors(t *testing.T) {
	e := New()
	a := ndarray.Matrix([][]float64{{1, 2, 3}})

	_, err := e.Dot(a, a)
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	_, err = e.Dot(a, ndarray.Vector(1.0, 2.0, 3.0))
	assert.ErrorIs(t, err, ndarray.ErrDimensionMismatch)
}

func TestDot_Large(t *testing.T) {
	// large enough for the row loop to run in parallel
	e := New()
	n := 130
	a := ndarray.D2Of(n, n, func(i, j int) float64 { return float64(i + j) })
	id := ndarray.D2Of(n, n, func(i, j int) float64 {
		if i == j {
			return 1
		}
		return 0
	})

	c, err := engine.DotD2(e, a, id)
	require.NoError(t, err)
	assert.Equal(t, a.Values(), c.Values())
}

func TestDotMV(t *testing.T) {
	e := New()
	a := ndarray.Matrix([][]int16{{1, 2}, {3, 4}, {5, 6}})

	got, err := e.DotMV(a, ndarray.Vector[int16](10, 1))
	require.NoError(t, err)
	typed, err := ndarray.As[int16, ndarray.D1](got)
	require.NoError(t, err)
	assert.Equal(t, []int16{12, 34, 56}, typed.Values())

	_, err = e.DotMV(a, ndarray.Vector[int16](1, 2, 3))
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

func TestDotVV(t *testing.T) {
	e := New()

	got, err := e.DotVV(ndarray.Vector(1.0, 2.0, 3.0), ndarray.Vector(4.0, 5.0, 6.0))
	require.NoError(t, err)
	assert.Equal(t, 32.0, got)

	got, err = e.DotVV(ndarray.Vector[int64](1<<40, 1), ndarray.Vector[int32](4, 3))
	require.NoError(t, err)
	assert.Equal(t, float64(1<<42+3), got)

	_, err = e.DotVV(ndarray.Vector(1.0), ndarray.Vector(1.0, 2.0))
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

// matrixOf builds a matrix of kind dt from float64 rows.
func matrixOf(dt ndarray.DataType, rows [][]float64) ndarray.Array {
	f := ndarray.Matrix(rows)
	res := f.ZerosLike(dt)
	switch dt {
	case ndarray.Int8:
		scatter(ndarray.Buffer[int8](res), f.Values())
	case ndarray.Int16:
		scatter(ndarray.Buffer[int16](res), f.Values())
	case ndarray.Int32:
		scatter(ndarray.Buffer[int32](res), f.Values())
	case ndarray.Int64:
		scatter(ndarray.Buffer[int64](res), f.Values())
	case ndarray.Float32:
		scatter(ndarray.Buffer[float32](res), f.Values())
	case ndarray.Float64:
		scatter(ndarray.Buffer[float64](res), f.Values())
	}
	return res
}

func toFloat64(t *testing.T, a ndarray.Array) ndarray.Array {
	t.Helper()
	res := a.ZerosLike(ndarray.Float64)
	copy(ndarray.Buffer[float64](res), load[float64](a))
	return res
}
