package ndarray

import "fmt"

// Transpose returns a view with permuted axes. With no arguments the axes are
// reversed. The buffer is shared, not copied.
// Panics on an invalid permutation.
func (a *Ndarray[T, D]) Transpose(axes ...int) *Ndarray[T, D] {
	ndim := len(a.shape)

	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}

	if len(axes) != ndim {
		panic(fmt.Sprintf("transpose: axes length %d != ndim %d", len(axes), ndim))
	}

	seen := make([]bool, ndim)
	for _, ax := range axes {
		if ax < 0 || ax >= ndim {
			panic(fmt.Sprintf("transpose: invalid axis %d for %dD array", ax, ndim))
		}
		if seen[ax] {
			panic(fmt.Sprintf("transpose: duplicate axis %d", ax))
		}
		seen[ax] = true
	}

	shape := make(Shape, ndim)
	strides := make([]int, ndim)
	for i, ax := range axes {
		shape[i] = a.shape[ax]
		strides[i] = a.strides[ax]
	}
	return view(a.data, a.offset, shape, strides, a.dim)
}

// Slice returns a view of the elements start, start+step, ... below stop along axis.
// The rank is preserved and the buffer is shared.
func (a *Ndarray[T, D]) Slice(axis, start, stop, step int) (*Ndarray[T, D], error) {
	if axis < 0 || axis >= len(a.shape) {
		return nil, fmt.Errorf("slice: axis %d for %dD array: %w", axis, len(a.shape), ErrInvalidAxis)
	}
	if step <= 0 {
		return nil, fmt.Errorf("slice: step %d must be positive: %w", step, ErrInvalidStrides)
	}
	if start < 0 || stop > a.shape[axis] || start > stop {
		return nil, fmt.Errorf("slice: range [%d:%d] for axis of size %d: %w", start, stop, a.shape[axis], ErrOutOfBounds)
	}

	shape := a.shape.Clone()
	strides := append([]int(nil), a.strides...)
	shape[axis] = (stop - start + step - 1) / step
	strides[axis] *= step
	offset := a.offset
	if shape[axis] > 0 {
		offset += start * a.strides[axis]
	}
	return view(a.data, offset, shape, strides, a.dim), nil
}

// Select returns the view a[..., index, ...] with axis removed. O must describe
// rank a.Rank()-1; selecting from a vector is rejected because rank-0 arrays are
// not representable.
//
// Example:
//
//	row, _ := ndarray.Select[float64, ndarray.D2, ndarray.D1](m, 0, 1) // second row
func Select[T Number, D Dimension, O Dimension](a *Ndarray[T, D], axis, index int) (*Ndarray[T, O], error) {
	rank := len(a.shape)
	if rank < 2 {
		return nil, fmt.Errorf("select: cannot drop the only axis: %w", ErrInvalidAxis)
	}
	if axis < 0 || axis >= rank {
		return nil, fmt.Errorf("select: axis %d for %dD array: %w", axis, rank, ErrInvalidAxis)
	}
	if index < 0 || index >= a.shape[axis] {
		return nil, fmt.Errorf("select: index %d for axis of size %d: %w", index, a.shape[axis], ErrOutOfBounds)
	}
	dim, err := DimensionOf[O](rank - 1)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}

	shape := make(Shape, 0, rank-1)
	strides := make([]int, 0, rank-1)
	for i := range a.shape {
		if i != axis {
			shape = append(shape, a.shape[i])
			strides = append(strides, a.strides[i])
		}
	}
	return view(a.data, a.offset+index*a.strides[axis], shape, strides, dim), nil
}

// Retag returns the same view under the rank tag O.
//
// Example:
//
//	d2, err := ndarray.Retag[ndarray.D2](dynamic)
func Retag[O Dimension, T Number, D Dimension](a *Ndarray[T, D]) (*Ndarray[T, O], error) {
	dim, err := DimensionOf[O](len(a.shape))
	if err != nil {
		return nil, fmt.Errorf("retag: %w", err)
	}
	return view(a.data, a.offset, a.shape.Clone(), append([]int(nil), a.strides...), dim), nil
}

// Reshape returns the elements of a under a new shape and tag O. Contiguous
// arrays are reshaped as views; others are copied first.
func Reshape[O Dimension, T Number, D Dimension](a *Ndarray[T, D], shape ...int) (*Ndarray[T, O], error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	if s.NumElements() != a.Size() {
		return nil, fmt.Errorf("reshape: incompatible shapes: %v -> %v: %w", a.shape, s, ErrShapeMismatch)
	}
	dim, err := DimensionOf[O](len(s))
	if err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	src := a.Contiguous()
	strides, _ := ComputeStrides(s)
	return view(src.data, src.offset, s.Clone(), strides, dim), nil
}

// Flatten returns the elements as a vector (a view when a is contiguous).
func (a *Ndarray[T, D]) Flatten() *Ndarray[T, D1] {
	f, err := Reshape[D1](a, a.Size())
	if err != nil {
		panic(err)
	}
	return f
}

// Copy returns a contiguous deep copy with its own buffer.
func (a *Ndarray[T, D]) Copy() *Ndarray[T, D] {
	mv := MemoryViewOf(a.Values())
	strides, _ := ComputeStrides(a.shape)
	return view(mv, 0, a.shape.Clone(), strides, a.dim)
}

// Contiguous returns a itself if it is C-contiguous, otherwise a contiguous copy.
func (a *Ndarray[T, D]) Contiguous() *Ndarray[T, D] {
	if a.IsContiguous() {
		return a
	}
	return a.Copy()
}
