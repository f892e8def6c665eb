package ndarray

import "fmt"

// Shape represents the per-axis extents of an array.
type Shape []int

// NumElements returns the product of all extents.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape is non-empty and every extent is >= 0.
// Zero extents are allowed: they describe empty arrays.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("shape cannot be empty: %w", ErrInvalidShape)
	}
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("invalid dimension at index %d: %d: %w", i, dim, ErrInvalidShape)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides returns the row-major (C-order) strides of shape:
// strides[last] = 1, strides[i] = strides[i+1] * shape[i+1].
func ComputeStrides(shape Shape) ([]int, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("compute strides: shape cannot be empty: %w", ErrInvalidShape)
	}
	strides := make([]int, len(shape))
	strides[len(shape)-1] = 1
	for i := len(shape) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * shape[i+1]
	}
	return strides, nil
}

// ElementOffset maps a multi-index to a linear buffer index:
// base + sum(indices[i] * strides[i]).
// Every element access in the package goes through this function.
func ElementOffset(base int, indices, strides []int) int {
	off := base
	for i, idx := range indices {
		off += idx * strides[i]
	}
	return off
}

// Unravel writes into idx the row-major multi-index of the linear-th element of shape.
func Unravel(linear int, shape Shape, idx []int) {
	for d := len(shape) - 1; d >= 0; d-- {
		s := shape[d]
		if s == 0 {
			idx[d] = 0
			continue
		}
		idx[d] = linear % s
		linear /= s
	}
}

// IsContiguous reports whether strides describe a C-contiguous layout of shape.
// Axes of extent 1 may carry any stride.
func IsContiguous(shape Shape, strides []int) bool {
	expected := 1
	for i := len(shape) - 1; i >= 0; i-- {
		if shape[i] == 1 {
			continue
		}
		if strides[i] != expected {
			return false
		}
		expected *= shape[i]
	}
	return true
}

