package native

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// ArgMax returns the element-order index of the first maximum.
func (e *Engine) ArgMax(a ndarray.Array) (int, error) {
	if a.Size() == 0 {
		return 0, fmt.Errorf("argmax: %w", ndarray.ErrEmptyArray)
	}
	return e.lib.ArgMax(a)
}

// ArgMin returns the element-order index of the first minimum.
func (e *Engine) ArgMin(a ndarray.Array) (int, error) {
	if a.Size() == 0 {
		return 0, fmt.Errorf("argmin: %w", ndarray.ErrEmptyArray)
	}
	return e.lib.ArgMin(a)
}

// Sum returns the sum of all elements as float64. An empty array sums to 0.
func (e *Engine) Sum(a ndarray.Array) (float64, error) {
	if a.Size() == 0 {
		return 0, nil
	}
	return e.lib.Sum(a)
}

// CumSum returns the running sum of the flattened array as a vector of a's kind.
func (e *Engine) CumSum(a ndarray.Array) (ndarray.Array, error) {
	if a.Size() == 0 {
		res, err := ndarray.AllocLike(a.DType(), ndarray.Shape{0}, ndarray.D1{})
		if err != nil {
			return nil, fmt.Errorf("cumsum: %w", err)
		}
		return res, nil
	}
	return e.lib.CumSum(a)
}

// Exp computes e**x elementwise. The result is float64 with a's shape and tag.
func (e *Engine) Exp(a ndarray.Array) (ndarray.Array, error) {
	if a.Size() == 0 {
		return a.ZerosLike(ndarray.Float64), nil
	}
	return e.lib.Exp(a)
}
