package engine

import (
	"fmt"
	"reflect"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Validation shared by all backends, so every engine rejects the same inputs with
// the same errors before touching any data.

// CheckDot validates a matrix product and returns its extents and result kind.
func CheckDot(a, b ndarray.Array) (m, k, n int, dtype ndarray.DataType, err error) {
	if a.Rank() != 2 || b.Rank() != 2 {
		return 0, 0, 0, 0, fmt.Errorf("dot: only 2D arrays supported, got %dD and %dD: %w",
			a.Rank(), b.Rank(), ndarray.ErrDimensionMismatch)
	}
	as, bs := a.Shape(), b.Shape()
	if as[1] != bs[0] {
		return 0, 0, 0, 0, fmt.Errorf("dot: shape mismatch %v x %v: %w", as, bs, ndarray.ErrShapeMismatch)
	}
	return as[0], as[1], bs[1], Promote(a.DType(), b.DType()), nil
}

// CheckDotMV validates a matrix-vector product and returns its extents and result kind.
func CheckDotMV(a, b ndarray.Array) (m, n int, dtype ndarray.DataType, err error) {
	if a.Rank() != 2 || b.Rank() != 1 {
		return 0, 0, 0, fmt.Errorf("dot: expected 2D x 1D, got %dD and %dD: %w",
			a.Rank(), b.Rank(), ndarray.ErrDimensionMismatch)
	}
	as, bs := a.Shape(), b.Shape()
	if as[1] != bs[0] {
		return 0, 0, 0, fmt.Errorf("dot: shape mismatch %v x %v: %w", as, bs, ndarray.ErrShapeMismatch)
	}
	return as[0], as[1], Promote(a.DType(), b.DType()), nil
}

// CheckDotVV validates an inner product and returns the vector length.
func CheckDotVV(a, b ndarray.Array) (int, error) {
	if a.Rank() != 1 || b.Rank() != 1 {
		return 0, fmt.Errorf("dot: expected 1D x 1D, got %dD and %dD: %w",
			a.Rank(), b.Rank(), ndarray.ErrDimensionMismatch)
	}
	if a.Shape()[0] != b.Shape()[0] {
		return 0, fmt.Errorf("dot: shape mismatch %v x %v: %w", a.Shape(), b.Shape(), ndarray.ErrShapeMismatch)
	}
	return a.Shape()[0], nil
}

// Absent reports whether a is nil, including a typed nil array.
func Absent(a ndarray.Array) bool {
	if a == nil {
		return true
	}
	v := reflect.ValueOf(a)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// CheckWeights validates the weights of a weighted average.
func CheckWeights(a, weights ndarray.Array) error {
	if !a.Shape().Equal(weights.Shape()) {
		return fmt.Errorf("average: weights shape %v != array shape %v: %w",
			weights.Shape(), a.Shape(), ndarray.ErrShapeMismatch)
	}
	return nil
}

// ReducedShape returns the shape of a reduced along axis.
func ReducedShape(a ndarray.Array, axis int) (ndarray.Shape, error) {
	rank := a.Rank()
	if rank < 2 {
		return nil, fmt.Errorf("mean: cannot reduce the only axis of a %dD array: %w", rank, ndarray.ErrInvalidAxis)
	}
	if axis < 0 || axis >= rank {
		return nil, fmt.Errorf("mean: axis %d out of range for %dD array: %w", axis, rank, ndarray.ErrInvalidAxis)
	}
	shape := a.Shape()
	out := make(ndarray.Shape, 0, rank-1)
	for i := range shape {
		if i != axis {
			out = append(out, shape[i])
		}
	}
	return out, nil
}

// CheckRank validates the rank of a dynamic-rank input.
func CheckRank(a ndarray.Array, rank int) error {
	if a.Rank() != rank {
		return fmt.Errorf("expected %dD array, got %dD: %w", rank, a.Rank(), ndarray.ErrDimensionMismatch)
	}
	return nil
}
