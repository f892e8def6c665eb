package ndarray

import (
	"fmt"
	"unsafe"
)

// Storage is the type-erased view of a MemoryView, used by code that dispatches
// on DataType at run time.
type Storage interface {
	// Size returns the number of elements in the buffer.
	Size() int
	// DType returns the element kind.
	DType() DataType
	// Pointer returns the address of the first element, or nil for an empty buffer.
	// Only valid while the storage is reachable; the native bridge keeps it alive
	// for the duration of a call.
	Pointer() unsafe.Pointer
}

// MemoryView owns a flat, contiguous buffer of one element kind.
// It is the sole unit of storage ownership: any number of Ndarrays may alias it,
// and it is never resized.
type MemoryView[T Number] struct {
	data  []T
	dtype DataType
}

// NewMemoryView allocates a zeroed buffer of size elements.
func NewMemoryView[T Number](size int) *MemoryView[T] {
	if size < 0 {
		panic(fmt.Sprintf("memory view: negative size %d", size))
	}
	return &MemoryView[T]{
		data:  make([]T, size),
		dtype: DataTypeOf[T](),
	}
}

// MemoryViewOf wraps data without copying. The caller must not resize it afterwards.
func MemoryViewOf[T Number](data []T) *MemoryView[T] {
	return &MemoryView[T]{
		data:  data,
		dtype: DataTypeOf[T](),
	}
}

// AllocMemoryView allocates a zeroed buffer for a kind chosen at run time.
func AllocMemoryView(size int, dtype DataType) Storage {
	switch dtype {
	case Int8:
		return NewMemoryView[int8](size)
	case Int16:
		return NewMemoryView[int16](size)
	case Int32:
		return NewMemoryView[int32](size)
	case Int64:
		return NewMemoryView[int64](size)
	case Float32:
		return NewMemoryView[float32](size)
	case Float64:
		return NewMemoryView[float64](size)
	default:
		panic(fmt.Sprintf("alloc: %v (code %d)", ErrTypeNotDefined, int(dtype)))
	}
}

// Get returns the element at linear index i.
func (m *MemoryView[T]) Get(i int) T {
	return m.data[i]
}

// Set stores v at linear index i.
func (m *MemoryView[T]) Set(i int, v T) {
	m.data[i] = v
}

// Size returns the number of elements.
func (m *MemoryView[T]) Size() int {
	return len(m.data)
}

// DType returns the element kind.
func (m *MemoryView[T]) DType() DataType {
	return m.dtype
}

// Data returns the backing slice (zero-copy).
//
// WARNING: writes through the slice are visible to every aliasing Ndarray.
func (m *MemoryView[T]) Data() []T {
	return m.data
}

// Copy returns a new MemoryView with a copy of the buffer.
func (m *MemoryView[T]) Copy() *MemoryView[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return &MemoryView[T]{data: data, dtype: m.dtype}
}

// Pointer returns the address of the first element, or nil if the buffer is empty.
func (m *MemoryView[T]) Pointer() unsafe.Pointer {
	if len(m.data) == 0 {
		return nil
	}
	return unsafe.Pointer(&m.data[0])
}
