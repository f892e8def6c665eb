package native

import (
	"bytes"
	"log/slog"
	"math"
	"testing"
	"unsafe"

	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openForTest(t *testing.T) *Library {
	t.Helper()
	if !Available() {
		t.Skip("native kernels not compiled in (cgo disabled)")
	}
	lib, err := Open(Options{})
	require.NoError(t, err)
	return lib
}

func TestOpen_BLASFallback(t *testing.T) {
	if !Available() {
		_, err := Open(Options{})
		assert.ErrorIs(t, err, ErrUnavailable)
		return
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	lib, err := Open(Options{UseBLAS: true, BLASLibrary: "libdoes-not-exist.so", Logger: logger})
	require.NoError(t, err)
	assert.False(t, lib.HasBLAS())
	assert.Equal(t, "builtin kernels", lib.Describe())
	assert.Contains(t, buf.String(), "BLAS unavailable")
}

func TestStatusAndError(t *testing.T) {
	assert.Equal(t, "bad argument", StatusBadArgument.String())
	assert.Equal(t, "status(9)", Status(9).String())
	assert.NoError(t, check("sum", StatusOK))

	err := check("dot", StatusAllocFailed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNativeFailure)
	assert.Equal(t, "native: dot: allocation failed", err.Error())

	var nerr *Error
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, "dot", nerr.Op)
	assert.Equal(t, StatusAllocFailed, nerr.Status)
}

func TestReductions(t *testing.T) {
	lib := openForTest(t)
	m := ndarray.Matrix([][]int32{{3, -1, 2}, {8, 5, -7}})

	sum, err := lib.Sum(m)
	require.NoError(t, err)
	assert.Equal(t, 10.0, sum)

	median, ok, err := lib.Median(m.Transpose())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2.5, median)

	_, ok, err = lib.Median(ndarray.Vector[float32]())
	require.NoError(t, err)
	assert.False(t, ok)

	avg, err := lib.Average(ndarray.Vector(1.0, 2.0, 3.0, 4.0), ndarray.Vector[int8](4, 3, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, 2.0, avg)

	out := make([]float64, 3)
	require.NoError(t, lib.MeanAxis(m, 0, out))
	assert.Equal(t, []float64{5.5, 2, -2.5}, out)

	idx, err := lib.ArgMax(ndarray.Vector(1.0, 5.0, 3.0, 5.0))
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = lib.ArgMin(m)
	require.NoError(t, err)
	assert.Equal(t, 5, idx)
}

func TestKernelRejectsBadArguments(t *testing.T) {
	lib := openForTest(t)
	m := ndarray.Matrix([][]float64{{1, 2}, {3, 4}})

	err := lib.MeanAxis(m, 5, make([]float64, 2))
	var nerr *Error
	require.True(t, errors.As(err, &nerr))
	assert.Equal(t, StatusBadArgument, nerr.Status)

	_, err = lib.ArgMax(ndarray.Vector[int16]())
	assert.ErrorIs(t, err, ErrNativeFailure)
}

func TestElementwise(t *testing.T) {
	lib := openForTest(t)

	abs, err := lib.Abs(ndarray.Vector[int8](math.MinInt8, -3, 4))
	require.NoError(t, err)
	assert.Equal(t, []int8{math.MinInt8, 3, 4}, ndarray.Buffer[int8](abs))

	fabs, err := lib.Abs(ndarray.Matrix([][]float32{{-1.5, 2}, {3, -4}}).Transpose())
	require.NoError(t, err)
	assert.Equal(t, ndarray.Shape{2, 2}, fabs.Shape())
	assert.Equal(t, []float32{1.5, 3, 2, 4}, ndarray.Buffer[float32](fabs))

	cum, err := lib.CumSum(ndarray.Vector[int16](math.MaxInt16, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, []int16{math.MaxInt16, math.MinInt16, math.MinInt16 + 1}, ndarray.Buffer[int16](cum))

	exp, err := lib.Exp(ndarray.Vector[int64](0, 1))
	require.NoError(t, err)
	got := ndarray.Buffer[float64](exp)
	assert.Equal(t, 1.0, got[0])
	assert.InEpsilon(t, math.E, got[1], 1e-15)
}

func TestMatrixDot(t *testing.T) {
	lib := openForTest(t)
	a := ndarray.Matrix([][]float64{{1, 2}, {3, 4}})
	b := ndarray.Matrix([][]float64{{5, 6}, {7, 8}})

	tests := []struct {
		name  string
		a, b  ndarray.Array
		dtype ndarray.DataType
		want  []float64
	}{
		{"contiguous", a, b, ndarray.Float64, []float64{19, 22, 43, 50}},
		{"transposed in place", ndarray.Matrix([][]float64{{1, 3}, {2, 4}}).Transpose(), b, ndarray.Float64, []float64{19, 22, 43, 50}},
		{"staged kind", ndarray.Matrix([][]int8{{1, 2}, {3, 4}}), b, ndarray.Float64, []float64{19, 22, 43, 50}},
		{"integer", ndarray.Matrix([][]int32{{1, 2}, {3, 4}}), ndarray.Matrix([][]int32{{5, 6}, {7, 8}}), ndarray.Int32, []float64{19, 22, 43, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := lib.MatrixDot(tt.a, tt.b, tt.dtype)
			require.NoError(t, err)
			assert.Equal(t, tt.dtype, c.DType())
			got := make([]float64, 0, 4)
			for i := range 4 {
				switch tt.dtype {
				case ndarray.Int32:
					got = append(got, float64(ndarray.Buffer[int32](c)[i]))
				default:
					got = append(got, ndarray.Buffer[float64](c)[i])
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatrixDot_IntegerWraps(t *testing.T) {
	lib := openForTest(t)

	c, err := lib.MatrixDot(ndarray.Matrix([][]int8{{100, 100}}), ndarray.Matrix([][]int8{{2}, {1}}), ndarray.Int8)
	require.NoError(t, err)
	assert.Equal(t, []int8{44}, ndarray.Buffer[int8](c))
}

func TestMatrixDotVectorAndVectorDot(t *testing.T) {
	lib := openForTest(t)
	a := ndarray.Matrix([][]float64{{1, 2}, {3, 4}, {5, 6}})

	y, err := lib.MatrixDotVector(a, ndarray.Vector(10.0, 1.0), ndarray.Float64)
	require.NoError(t, err)
	assert.Equal(t, []float64{12, 34, 56}, ndarray.Buffer[float64](y))

	yt, err := lib.MatrixDotVector(a.Transpose(), ndarray.Vector(1.0, 1.0, 1.0), ndarray.Float64)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 12}, ndarray.Buffer[float64](yt))

	col, err := ndarray.Select[float64, ndarray.D2, ndarray.D1](a, 1, 1)
	require.NoError(t, err)
	dot, err := lib.VectorDot(col, ndarray.Vector[int32](1, 1, 1), ndarray.Float64)
	require.NoError(t, err)
	assert.Equal(t, 12.0, dot)

	idot, err := lib.VectorDot(ndarray.Vector[int64](1<<40, 1), ndarray.Vector[int64](4, 3), ndarray.Int64)
	require.NoError(t, err)
	assert.Equal(t, float64(1<<42+3), idot)
}

func TestStageMatrix(t *testing.T) {
	m := ndarray.Matrix([][]float64{{1, 2, 3}, {4, 5, 6}})

	op, err := stageMatrix("test", m, ndarray.Float64)
	require.NoError(t, err)
	assert.False(t, op.trans)
	assert.Equal(t, int64(3), op.ld)
	assert.Equal(t, m.Storage().Pointer(), op.data)

	op, err = stageMatrix("test", m.Transpose(), ndarray.Float64)
	require.NoError(t, err)
	assert.True(t, op.trans)
	assert.Equal(t, int64(3), op.ld)

	if !Available() {
		return
	}
	sliced, err := m.Slice(1, 0, 3, 2)
	require.NoError(t, err)
	op, err = stageMatrix("test", sliced, ndarray.Float64)
	require.NoError(t, err)
	defer op.release()
	assert.False(t, op.trans)
	assert.Equal(t, int64(2), op.ld, "strided columns are staged")
	assert.NotEqual(t, m.Storage().Pointer(), op.data)
	assert.Equal(t, []float64{1, 3, 4, 6}, unsafe.Slice((*float64)(op.data), 4))
}
