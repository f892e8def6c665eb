package native

import (
	"github.com/born-ml/ndarray/internal/ndarray"
)

// The operations below assume their operands were validated by the caller
// (ranks, shapes, non-empty inputs where required). The kernels re-check what
// they rely on and report StatusBadArgument instead of reading out of bounds.

// Sum returns the element sum promoted to float64.
func (l *Library) Sum(a ndarray.Array) (float64, error) {
	v, err := viewOf("sum", a)
	if err != nil {
		return 0, err
	}
	out, s := kernelSum(v)
	return out, check("sum", s)
}

// Median returns the median of all elements; ok is false when a is empty.
func (l *Library) Median(a ndarray.Array) (median float64, ok bool, err error) {
	v, err := viewOf("median", a)
	if err != nil {
		return 0, false, err
	}
	median, ok, s := kernelMedian(v)
	return median, ok, check("median", s)
}

// Average returns sum(a*w)/sum(w) for a and w of equal shape.
func (l *Library) Average(a, w ndarray.Array) (float64, error) {
	va, err := viewOf("average", a)
	if err != nil {
		return 0, err
	}
	vw, err := viewOf("average", w)
	if err != nil {
		return 0, err
	}
	out, s := kernelAverage(va, vw)
	return out, check("average", s)
}

// MeanAxis writes the mean along axis into out, which holds one element per
// cell of the reduced shape in row-major order.
func (l *Library) MeanAxis(a ndarray.Array, axis int, out []float64) error {
	v, err := viewOf("mean", a)
	if err != nil {
		return err
	}
	return check("mean", kernelMeanAxis(v, axis, out))
}

// Abs returns |a| as a fresh contiguous array with a's kind, shape and tag.
func (l *Library) Abs(a ndarray.Array) (ndarray.Array, error) {
	v, err := viewOf("abs", a)
	if err != nil {
		return nil, err
	}
	res := a.ZerosLike(a.DType())
	if err := check("abs", kernelAbs(v, res.Storage().Pointer())); err != nil {
		return nil, err
	}
	return res, nil
}

// ArgMax returns the element-order index of the first maximum.
func (l *Library) ArgMax(a ndarray.Array) (int, error) {
	v, err := viewOf("argmax", a)
	if err != nil {
		return 0, err
	}
	idx, s := kernelArgBest(v, true)
	return idx, check("argmax", s)
}

// ArgMin returns the element-order index of the first minimum.
func (l *Library) ArgMin(a ndarray.Array) (int, error) {
	v, err := viewOf("argmin", a)
	if err != nil {
		return 0, err
	}
	idx, s := kernelArgBest(v, false)
	return idx, check("argmin", s)
}

// CumSum returns the running sum of the flattened array with a's kind.
func (l *Library) CumSum(a ndarray.Array) (ndarray.Array, error) {
	v, err := viewOf("cumsum", a)
	if err != nil {
		return nil, err
	}
	res, err := ndarray.AllocLike(a.DType(), ndarray.Shape{a.Size()}, ndarray.D1{})
	if err != nil {
		return nil, err
	}
	if err := check("cumsum", kernelCumSum(v, res.Storage().Pointer())); err != nil {
		return nil, err
	}
	return res, nil
}

// Exp returns e**x elementwise as float64 with a's shape and tag.
func (l *Library) Exp(a ndarray.Array) (ndarray.Array, error) {
	v, err := viewOf("exp", a)
	if err != nil {
		return nil, err
	}
	res := a.ZerosLike(ndarray.Float64)
	if err := check("exp", kernelExp(v, ndarray.Buffer[float64](res))); err != nil {
		return nil, err
	}
	return res, nil
}

// MatrixDot returns the (m, n) product of a (m, k) and b (k, n) as kind dtype.
// Operands of another kind, or with no unit-stride axis, are staged first.
func (l *Library) MatrixDot(a, b ndarray.Array, dtype ndarray.DataType) (ndarray.Array, error) {
	m, k, n := a.Shape()[0], a.Shape()[1], b.Shape()[1]
	res, err := ndarray.AllocLike(dtype, ndarray.Shape{m, n}, ndarray.D2{})
	if err != nil {
		return nil, err
	}

	opA, err := stageMatrix("dot", a, dtype)
	if err != nil {
		return nil, err
	}
	defer opA.release()
	opB, err := stageMatrix("dot", b, dtype)
	if err != nil {
		return nil, err
	}
	defer opB.release()

	c := res.Storage().Pointer()
	if l.blas != nil && l.blas.gemm(dtype, opA, m, n, k, opB, c) {
		return res, nil
	}
	if err := check("dot", kernelMatrixDot(dtype, opA, m, n, k, opB, c)); err != nil {
		return nil, err
	}
	return res, nil
}

// MatrixDotVector returns the (m) product of a (m, n) and x (n) as kind dtype.
func (l *Library) MatrixDotVector(a, x ndarray.Array, dtype ndarray.DataType) (ndarray.Array, error) {
	m, n := a.Shape()[0], a.Shape()[1]
	res, err := ndarray.AllocLike(dtype, ndarray.Shape{m}, ndarray.D1{})
	if err != nil {
		return nil, err
	}

	opA, err := stageMatrix("dot", a, dtype)
	if err != nil {
		return nil, err
	}
	defer opA.release()
	opX, err := stageVector("dot", x, dtype)
	if err != nil {
		return nil, err
	}
	defer opX.release()

	y := res.Storage().Pointer()
	if l.blas != nil && l.blas.gemv(dtype, opA, m, n, opX, y) {
		return res, nil
	}
	if err := check("dot", kernelMatrixDotVector(dtype, opA, m, n, opX, y)); err != nil {
		return nil, err
	}
	return res, nil
}

// VectorDot returns the inner product of two equal-length vectors computed in
// kind dtype and reported as float64.
func (l *Library) VectorDot(x, y ndarray.Array, dtype ndarray.DataType) (float64, error) {
	n := x.Shape()[0]
	opX, err := stageVector("dot", x, dtype)
	if err != nil {
		return 0, err
	}
	defer opX.release()
	opY, err := stageVector("dot", y, dtype)
	if err != nil {
		return 0, err
	}
	defer opY.release()

	if l.blas != nil {
		if out, ok := l.blas.dot(dtype, n, opX, opY); ok {
			return out, nil
		}
	}
	out, s := kernelVectorDot(dtype, n, opX, opY)
	return out, check("dot", s)
}
