package ndarray

import (
	"fmt"
	"iter"
)

// Offsets yields (elementIndex, bufferOffset) for every element of a in row-major
// element order. Contiguous views skip the multi-index bookkeeping; the sequence
// is the same either way.
func Offsets(a Array) iter.Seq2[int, int] {
	shape, strides, base := a.Shape(), a.Strides(), a.Offset()
	n := shape.NumElements()
	if a.IsContiguous() {
		return func(yield func(int, int) bool) {
			for i := 0; i < n; i++ {
				if !yield(i, base+i) {
					return
				}
			}
		}
	}
	return func(yield func(int, int) bool) {
		if n == 0 {
			return
		}
		idx := make([]int, len(shape))
		for i := 0; i < n; i++ {
			if !yield(i, ElementOffset(base, idx, strides)) {
				return
			}
			// odometer increment, last axis fastest
			for d := len(shape) - 1; d >= 0; d-- {
				idx[d]++
				if idx[d] < shape[d] {
					break
				}
				idx[d] = 0
			}
		}
	}
}

// All yields (elementIndex, value) in row-major element order.
func (a *Ndarray[T, D]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, off := range Offsets(a) {
			if !yield(i, a.data.data[off]) {
				return
			}
		}
	}
}

// Values returns the elements in row-major order as a new slice.
func (a *Ndarray[T, D]) Values() []T {
	out := make([]T, a.Size())
	for i, off := range Offsets(a) {
		out[i] = a.data.data[off]
	}
	return out
}

// Buffer returns the backing slice of a type-erased array as []T.
// Panics if T does not match a.DType(); callers switch on DType first.
func Buffer[T Number](a Array) []T {
	mv, ok := a.Storage().(*MemoryView[T])
	if !ok {
		panic(fmt.Sprintf("buffer: %v: array holds %s, requested %s", ErrTypeMismatch, a.DType(), DataTypeOf[T]()))
	}
	return mv.data
}

// As recovers a typed view from a type-erased array. The element kind must match;
// the rank tag is rebuilt for D if the array carries a different tag of the same rank.
func As[T Number, D Dimension](a Array) (*Ndarray[T, D], error) {
	if typed, ok := a.(*Ndarray[T, D]); ok {
		return typed, nil
	}
	mv, ok := a.Storage().(*MemoryView[T])
	if !ok {
		return nil, fmt.Errorf("as: array holds %s, requested %s: %w", a.DType(), DataTypeOf[T](), ErrTypeMismatch)
	}
	dim, err := DimensionOf[D](a.Rank())
	if err != nil {
		return nil, fmt.Errorf("as: %w", err)
	}
	return view(mv, a.Offset(), a.Shape().Clone(), append([]int(nil), a.Strides()...), dim), nil
}
