package native

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/engine"
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Mean returns the arithmetic mean of all elements as float64.
func (e *Engine) Mean(a ndarray.Array) (float64, error) {
	if a.Size() == 0 {
		return 0, fmt.Errorf("mean: %w", ndarray.ErrEmptyArray)
	}
	s, err := e.lib.Sum(a)
	if err != nil {
		return 0, err
	}
	return s / float64(a.Size()), nil
}

// Median returns the median of all elements. ok is false for an empty array.
func (e *Engine) Median(a ndarray.Array) (float64, bool, error) {
	if a.Size() == 0 {
		return 0, false, nil
	}
	return e.lib.Median(a)
}

// Average returns the weighted mean sum(a*w)/sum(w), or the plain mean when
// weights is nil.
func (e *Engine) Average(a, weights ndarray.Array) (float64, error) {
	if engine.Absent(weights) {
		return e.Mean(a)
	}
	if err := engine.CheckWeights(a, weights); err != nil {
		return 0, err
	}
	if a.Size() == 0 {
		return 0, fmt.Errorf("average: %w", ndarray.ErrEmptyArray)
	}
	return e.lib.Average(a, weights)
}

// MeanAlong returns the mean along axis as a float64 array of rank a.Rank()-1.
func (e *Engine) MeanAlong(a ndarray.Array, axis int) (*ndarray.Ndarray[float64, ndarray.DN], error) {
	outShape, err := engine.ReducedShape(a, axis)
	if err != nil {
		return nil, err
	}
	if a.Shape()[axis] == 0 {
		return nil, fmt.Errorf("mean: axis %d has no elements: %w", axis, ndarray.ErrEmptyArray)
	}
	out, err := ndarray.Zeros[float64, ndarray.DN](outShape...)
	if err != nil {
		return nil, fmt.Errorf("mean: %w", err)
	}
	if out.Size() == 0 {
		return out, nil
	}
	if err := e.lib.MeanAxis(a, axis, out.Data().Data()); err != nil {
		return nil, err
	}
	return out, nil
}

// MeanD2 reduces a matrix along axis to a vector.
func (e *Engine) MeanD2(a ndarray.MultiArray[ndarray.D2], axis int) (*ndarray.Ndarray[float64, ndarray.D1], error) {
	res, err := e.MeanAlong(a, axis)
	if err != nil {
		return nil, err
	}
	return ndarray.Retag[ndarray.D1](res)
}

// MeanD3 reduces a 3-D array along axis to a matrix.
func (e *Engine) MeanD3(a ndarray.MultiArray[ndarray.D3], axis int) (*ndarray.Ndarray[float64, ndarray.D2], error) {
	res, err := e.MeanAlong(a, axis)
	if err != nil {
		return nil, err
	}
	return ndarray.Retag[ndarray.D2](res)
}

// MeanD4 reduces a 4-D array along axis to a 3-D array.
func (e *Engine) MeanD4(a ndarray.MultiArray[ndarray.D4], axis int) (*ndarray.Ndarray[float64, ndarray.D3], error) {
	res, err := e.MeanAlong(a, axis)
	if err != nil {
		return nil, err
	}
	return ndarray.Retag[ndarray.D3](res)
}

// MeanDN reduces a 5-D array along axis to a 4-D array.
func (e *Engine) MeanDN(a ndarray.MultiArray[ndarray.DN], axis int) (*ndarray.Ndarray[float64, ndarray.D4], error) {
	if err := engine.CheckRank(a, 5); err != nil {
		return nil, fmt.Errorf("mean: %w", err)
	}
	res, err := e.MeanAlong(a, axis)
	if err != nil {
		return nil, err
	}
	return ndarray.Retag[ndarray.D4](res)
}

// Abs returns the elementwise absolute value with a's kind, shape and tag.
func (e *Engine) Abs(a ndarray.Array) (ndarray.Array, error) {
	if a.Size() == 0 {
		return a.ZerosLike(a.DType()), nil
	}
	return e.lib.Abs(a)
}
