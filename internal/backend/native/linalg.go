package native

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/engine"
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Dot performs matrix multiplication: (M, K) x (K, N) -> (M, N) in the kind
// engine.Promote picks for the operands.
func (e *Engine) Dot(a, b ndarray.Array) (ndarray.Array, error) {
	m, k, n, dtype, err := engine.CheckDot(a, b)
	if err != nil {
		return nil, err
	}
	if m == 0 || n == 0 || k == 0 {
		return zeroResult(dtype, ndarray.Shape{m, n}, ndarray.D2{})
	}
	return e.lib.MatrixDot(a, b, dtype)
}

// DotMV multiplies a matrix by a vector: (M, N) x (N) -> (M).
func (e *Engine) DotMV(a, b ndarray.Array) (ndarray.Array, error) {
	m, n, dtype, err := engine.CheckDotMV(a, b)
	if err != nil {
		return nil, err
	}
	if m == 0 || n == 0 {
		return zeroResult(dtype, ndarray.Shape{m}, ndarray.D1{})
	}
	return e.lib.MatrixDotVector(a, b, dtype)
}

// DotVV returns the inner product of two vectors as float64.
func (e *Engine) DotVV(a, b ndarray.Array) (float64, error) {
	n, err := engine.CheckDotVV(a, b)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	return e.lib.VectorDot(a, b, engine.Promote(a.DType(), b.DType()))
}

func zeroResult[D ndarray.Dimension](dtype ndarray.DataType, shape ndarray.Shape, dim D) (ndarray.Array, error) {
	res, err := ndarray.AllocLike(dtype, shape, dim)
	if err != nil {
		return nil, fmt.Errorf("dot: %w", err)
	}
	return res, nil
}
