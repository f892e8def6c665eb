package engine

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Typed helpers keep static element kinds and ranks on top of the type-erased
// capability interfaces.

// Mean reduces a along axis with any Statistics implementation and returns the
// result under the rank tag O.
//
// Example:
//
//	m := ndarray.Matrix([][]float64{{1, 2}, {3, 4}})
//	cols, err := engine.Mean[float64, ndarray.D2, ndarray.D1](stats, m, 0) // [2, 3]
func Mean[T ndarray.Number, D ndarray.Dimension, O ndarray.Dimension](s Statistics, a *ndarray.Ndarray[T, D], axis int) (*ndarray.Ndarray[float64, O], error) {
	res, err := s.MeanAlong(a, axis)
	if err != nil {
		return nil, err
	}
	return ndarray.Retag[O](res)
}

// AbsOf returns |a| with a's kind and tag.
func AbsOf[T ndarray.Number, D ndarray.Dimension](s Statistics, a *ndarray.Ndarray[T, D]) (*ndarray.Ndarray[T, D], error) {
	res, err := s.Abs(a)
	if err != nil {
		return nil, err
	}
	return ndarray.As[T, D](res)
}

// DotD2 multiplies two matrices of the same kind.
func DotD2[T ndarray.Number](l LinAlg, a, b *ndarray.D2Array[T]) (*ndarray.D2Array[T], error) {
	res, err := l.Dot(a, b)
	if err != nil {
		return nil, err
	}
	return ndarray.As[T, ndarray.D2](res)
}

// DotAs multiplies two matrices of any kinds and recovers the promoted result as R.
// R must equal Promote(a.DType(), b.DType()).
func DotAs[R ndarray.Number](l LinAlg, a, b ndarray.Array) (*ndarray.D2Array[R], error) {
	if want := Promote(a.DType(), b.DType()); want != ndarray.DataTypeOf[R]() {
		return nil, fmt.Errorf("dot: result kind is %s, not %s: %w", want, ndarray.DataTypeOf[R](), ndarray.ErrTypeMismatch)
	}
	res, err := l.Dot(a, b)
	if err != nil {
		return nil, err
	}
	return ndarray.As[R, ndarray.D2](res)
}

// CumSumOf returns the running sum of a as a vector of a's kind.
func CumSumOf[T ndarray.Number, D ndarray.Dimension](m Math, a *ndarray.Ndarray[T, D]) (*ndarray.D1Array[T], error) {
	res, err := m.CumSum(a)
	if err != nil {
		return nil, err
	}
	return ndarray.As[T, ndarray.D1](res)
}
