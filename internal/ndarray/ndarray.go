package ndarray

import "fmt"

// Array is the type-erased contract compute engines consume. It exposes the
// addressing metadata of a view and its storage; element access goes through
// Buffer[T] after a switch on DType.
type Array interface {
	DType() DataType
	Shape() Shape
	Strides() []int
	Offset() int
	Rank() int
	Size() int
	IsContiguous() bool
	Storage() Storage

	// ZerosLike allocates a zeroed contiguous array of kind dtype with this
	// array's shape and dimension tag.
	ZerosLike(dtype DataType) Array
}

// MultiArray is an Array whose rank is fixed by its dimension tag, so engines can
// demand a rank in their signatures.
type MultiArray[D Dimension] interface {
	Array
	Dim() D
}

// Ndarray is a view over a MemoryView: an element offset, a shape, per-axis
// element strides, the element kind and a rank tag. Several Ndarrays may alias
// one MemoryView; views never copy on slicing or transposition.
//
// Example:
//
//	a := ndarray.Matrix([][]float64{{1, 2}, {3, 4}})
//	t := a.Transpose()       // shares a's buffer
//	t.Set(10, 0, 1)          // a.At(1, 0) == 10
type Ndarray[T Number, D Dimension] struct {
	data    *MemoryView[T]
	offset  int
	shape   Shape
	strides []int
	dtype   DataType
	dim     D
}

// Aliases for the common ranks.
type (
	D1Array[T Number] = Ndarray[T, D1]
	D2Array[T Number] = Ndarray[T, D2]
	D3Array[T Number] = Ndarray[T, D3]
	D4Array[T Number] = Ndarray[T, D4]
	DNArray[T Number] = Ndarray[T, DN]
)

var (
	_ MultiArray[D2] = (*Ndarray[float64, D2])(nil)
	_ MultiArray[DN] = (*Ndarray[int8, DN])(nil)
)

// New creates a view over data. A nil strides slice selects the default C-order
// strides for shape. All construction invariants are checked here:
// non-empty shape, rank agreement between dim, shape and strides, non-negative
// strides, and every addressable element inside the buffer.
func New[T Number, D Dimension](data *MemoryView[T], offset int, shape Shape, strides []int, dim D) (*Ndarray[T, D], error) {
	if data == nil {
		return nil, fmt.Errorf("new: nil memory view: %w", ErrOutOfBounds)
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}
	if err := requireDimension(dim, len(shape)); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	if strides == nil {
		strides, _ = ComputeStrides(shape)
	} else {
		if len(strides) != len(shape) {
			return nil, fmt.Errorf("new: %d strides for %d axes: %w", len(strides), len(shape), ErrDimensionMismatch)
		}
		for i, s := range strides {
			if s < 0 {
				return nil, fmt.Errorf("new: stride %d at axis %d: %w", s, i, ErrInvalidStrides)
			}
		}
		strides = append([]int(nil), strides...)
	}

	if offset < 0 {
		return nil, fmt.Errorf("new: negative offset %d: %w", offset, ErrOutOfBounds)
	}
	n := shape.NumElements()
	if n > data.Size()-offset {
		return nil, fmt.Errorf("new: %d elements at offset %d exceed buffer of %d: %w", n, offset, data.Size(), ErrOutOfBounds)
	}
	if n > 0 {
		last := offset
		for i, s := range shape {
			last += (s - 1) * strides[i]
		}
		if last >= data.Size() {
			return nil, fmt.Errorf("new: element at %d exceeds buffer of %d: %w", last, data.Size(), ErrOutOfBounds)
		}
	}

	return &Ndarray[T, D]{
		data:    data,
		offset:  offset,
		shape:   shape.Clone(),
		strides: strides,
		dtype:   data.DType(),
		dim:     dim,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew[T Number, D Dimension](data *MemoryView[T], offset int, shape Shape, strides []int, dim D) *Ndarray[T, D] {
	a, err := New(data, offset, shape, strides, dim)
	if err != nil {
		panic(err)
	}
	return a
}

// view builds an aliasing view whose metadata the caller derived from a valid array.
func view[T Number, D Dimension](data *MemoryView[T], offset int, shape Shape, strides []int, dim D) *Ndarray[T, D] {
	return &Ndarray[T, D]{
		data:    data,
		offset:  offset,
		shape:   shape,
		strides: strides,
		dtype:   data.DType(),
		dim:     dim,
	}
}

// Data returns the backing MemoryView.
func (a *Ndarray[T, D]) Data() *MemoryView[T] {
	return a.data
}

// Storage returns the backing MemoryView as a type-erased Storage.
func (a *Ndarray[T, D]) Storage() Storage {
	return a.data
}

// Offset returns the element offset of the view into its buffer.
func (a *Ndarray[T, D]) Offset() int {
	return a.offset
}

// Shape returns the per-axis extents. The slice must not be modified.
func (a *Ndarray[T, D]) Shape() Shape {
	return a.shape
}

// Strides returns the per-axis element steps. The slice must not be modified.
func (a *Ndarray[T, D]) Strides() []int {
	return a.strides
}

// DType returns the element kind.
func (a *Ndarray[T, D]) DType() DataType {
	return a.dtype
}

// Dim returns the rank tag.
func (a *Ndarray[T, D]) Dim() D {
	return a.dim
}

// Rank returns the number of axes.
func (a *Ndarray[T, D]) Rank() int {
	return len(a.shape)
}

// Size returns the number of elements addressable through the view.
func (a *Ndarray[T, D]) Size() int {
	return a.shape.NumElements()
}

// IsEmpty reports whether the view has no elements.
func (a *Ndarray[T, D]) IsEmpty() bool {
	return a.Size() == 0
}

// IsContiguous reports whether the view is C-contiguous.
func (a *Ndarray[T, D]) IsContiguous() bool {
	return IsContiguous(a.shape, a.strides)
}

// At returns the element at the given multi-index.
// Panics if the index has the wrong length or is out of bounds.
//
// Example:
//
//	m := ndarray.Matrix([][]int32{{1, 2}, {3, 4}})
//	v := m.At(1, 0) // 3
func (a *Ndarray[T, D]) At(indices ...int) T {
	a.checkIndex(indices)
	return a.data.data[ElementOffset(a.offset, indices, a.strides)]
}

// Set stores value at the given multi-index.
// Panics if the index has the wrong length or is out of bounds.
func (a *Ndarray[T, D]) Set(value T, indices ...int) {
	a.checkIndex(indices)
	a.data.data[ElementOffset(a.offset, indices, a.strides)] = value
}

// Flat returns the i-th element in row-major element order.
func (a *Ndarray[T, D]) Flat(i int) T {
	if i < 0 || i >= a.Size() {
		panic(fmt.Sprintf("flat index %d out of bounds for %d elements", i, a.Size()))
	}
	if a.IsContiguous() {
		return a.data.data[a.offset+i]
	}
	idx := make([]int, len(a.shape))
	Unravel(i, a.shape, idx)
	return a.data.data[ElementOffset(a.offset, idx, a.strides)]
}

func (a *Ndarray[T, D]) checkIndex(indices []int) {
	if len(indices) != len(a.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(a.shape), len(indices)))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, a.shape[i]))
		}
	}
}
