package ndarray

import "fmt"

// Zeros creates a zero-filled array of the given shape.
//
// Example:
//
//	m, _ := ndarray.Zeros[float32, ndarray.D2](3, 4)
func Zeros[T Number, D Dimension](shape ...int) (*Ndarray[T, D], error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("zeros: %w", err)
	}
	dim, err := DimensionOf[D](len(s))
	if err != nil {
		return nil, fmt.Errorf("zeros: %w", err)
	}
	return New(NewMemoryView[T](s.NumElements()), 0, s, nil, dim)
}

// Full creates an array of the given shape filled with value.
func Full[T Number, D Dimension](value T, shape ...int) (*Ndarray[T, D], error) {
	a, err := Zeros[T, D](shape...)
	if err != nil {
		return nil, err
	}
	data := a.data.data
	for i := range data {
		data[i] = value
	}
	return a, nil
}

// Ones creates an array of the given shape filled with ones.
func Ones[T Number, D Dimension](shape ...int) (*Ndarray[T, D], error) {
	return Full[T, D](1, shape...)
}

// FromSlice creates an array of the given shape from a copy of data.
func FromSlice[T Number, D Dimension](data []T, shape ...int) (*Ndarray[T, D], error) {
	s := Shape(shape)
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("from slice: %w", err)
	}
	if s.NumElements() != len(data) {
		return nil, fmt.Errorf("from slice: shape %v requires %d elements, but got %d: %w",
			s, s.NumElements(), len(data), ErrShapeMismatch)
	}
	buf := make([]T, len(data))
	copy(buf, data)
	return Wrap[T, D](buf, shape...)
}

// Wrap creates an array of the given shape that aliases data.
func Wrap[T Number, D Dimension](data []T, shape ...int) (*Ndarray[T, D], error) {
	s := Shape(shape)
	dim, err := DimensionOf[D](len(s))
	if err != nil {
		return nil, fmt.Errorf("wrap: %w", err)
	}
	return New(MemoryViewOf(data), 0, s, nil, dim)
}

// Vector creates a one-dimensional array holding a copy of values.
func Vector[T Number](values ...T) *D1Array[T] {
	buf := make([]T, len(values))
	copy(buf, values)
	return view(MemoryViewOf(buf), 0, Shape{len(buf)}, []int{1}, D1{})
}

// Matrix creates a two-dimensional array from rows.
// Panics if rows is empty or ragged.
func Matrix[T Number](rows [][]T) *D2Array[T] {
	if len(rows) == 0 {
		panic("matrix: no rows")
	}
	cols := len(rows[0])
	buf := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			panic(fmt.Sprintf("matrix: row %d has %d columns, expected %d", i, len(row), cols))
		}
		buf = append(buf, row...)
	}
	return view(MemoryViewOf(buf), 0, Shape{len(rows), cols}, []int{cols, 1}, D2{})
}

// Arange creates the vector [0, 1, ..., n-1].
func Arange[T Number](n int) *D1Array[T] {
	if n < 0 {
		panic(fmt.Sprintf("arange: negative length %d", n))
	}
	buf := make([]T, n)
	for i := range buf {
		buf[i] = T(i)
	}
	return view(MemoryViewOf(buf), 0, Shape{n}, []int{1}, D1{})
}

// D1Of creates a vector of length n with elements init(i).
func D1Of[T Number](n int, init func(i int) T) *D1Array[T] {
	a := mustZeros[T, D1](n)
	for i := range a.data.data {
		a.data.data[i] = init(i)
	}
	return a
}

// D2Of creates a rows×cols matrix with elements init(i, j), filled in row-major order.
//
// Example:
//
//	rnd := rand.New(rand.NewSource(1))
//	m := ndarray.D2Of(100, 100, func(_, _ int) float64 { return rnd.Float64() })
func D2Of[T Number](rows, cols int, init func(i, j int) T) *D2Array[T] {
	a := mustZeros[T, D2](rows, cols)
	p := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			a.data.data[p] = init(i, j)
			p++
		}
	}
	return a
}

// D3Of creates a d0×d1×d2 array with elements init(i, j, k).
func D3Of[T Number](d0, d1, d2 int, init func(i, j, k int) T) *D3Array[T] {
	a := mustZeros[T, D3](d0, d1, d2)
	p := 0
	for i := 0; i < d0; i++ {
		for j := 0; j < d1; j++ {
			for k := 0; k < d2; k++ {
				a.data.data[p] = init(i, j, k)
				p++
			}
		}
	}
	return a
}

// D4Of creates a d0×d1×d2×d3 array with elements init(i, j, k, l).
func D4Of[T Number](d0, d1, d2, d3 int, init func(i, j, k, l int) T) *D4Array[T] {
	a := mustZeros[T, D4](d0, d1, d2, d3)
	p := 0
	for i := 0; i < d0; i++ {
		for j := 0; j < d1; j++ {
			for k := 0; k < d2; k++ {
				for l := 0; l < d3; l++ {
					a.data.data[p] = init(i, j, k, l)
					p++
				}
			}
		}
	}
	return a
}

// DNOf creates an array of any rank with elements init(idx). idx is reused
// between calls and must not be retained.
func DNOf[T Number](shape Shape, init func(idx []int) T) *DNArray[T] {
	a := mustZeros[T, DN](shape...)
	idx := make([]int, len(shape))
	for i := range a.data.data {
		Unravel(i, shape, idx)
		a.data.data[i] = init(idx)
	}
	return a
}

// AllocLike allocates a zeroed contiguous array whose kind is chosen at run time.
// It is the constructor engines use for results.
func AllocLike[D Dimension](dtype DataType, shape Shape, dim D) (Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("alloc: %w", err)
	}
	if err := requireDimension(dim, len(shape)); err != nil {
		return nil, fmt.Errorf("alloc: %w", err)
	}
	strides, _ := ComputeStrides(shape)
	n := shape.NumElements()
	switch dtype {
	case Int8:
		return view(NewMemoryView[int8](n), 0, shape.Clone(), strides, dim), nil
	case Int16:
		return view(NewMemoryView[int16](n), 0, shape.Clone(), strides, dim), nil
	case Int32:
		return view(NewMemoryView[int32](n), 0, shape.Clone(), strides, dim), nil
	case Int64:
		return view(NewMemoryView[int64](n), 0, shape.Clone(), strides, dim), nil
	case Float32:
		return view(NewMemoryView[float32](n), 0, shape.Clone(), strides, dim), nil
	case Float64:
		return view(NewMemoryView[float64](n), 0, shape.Clone(), strides, dim), nil
	default:
		panic(fmt.Sprintf("alloc: %v (code %d)", ErrTypeNotDefined, int(dtype)))
	}
}

// ZerosLike allocates a zeroed contiguous array of kind dtype with a's shape and tag.
func (a *Ndarray[T, D]) ZerosLike(dtype DataType) Array {
	res, err := AllocLike(dtype, a.shape, a.dim)
	if err != nil {
		panic(err)
	}
	return res
}

func mustZeros[T Number, D Dimension](shape ...int) *Ndarray[T, D] {
	a, err := Zeros[T, D](shape...)
	if err != nil {
		panic(err)
	}
	return a
}
