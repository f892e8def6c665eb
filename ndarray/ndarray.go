// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"iter"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Number is the closed set of element kinds.
type Number = ndarray.Number

// DataType identifies an element kind by its native code.
type DataType = ndarray.DataType

// Data type constants.
const (
	Int8    DataType = ndarray.Int8
	Int16   DataType = ndarray.Int16
	Int32   DataType = ndarray.Int32
	Int64   DataType = ndarray.Int64
	Float32 DataType = ndarray.Float32
	Float64 DataType = ndarray.Float64
)

// Shape represents the per-axis extents of an array.
type Shape = ndarray.Shape

// Dimension is a rank tag.
type Dimension = ndarray.Dimension

// Rank tags.
type (
	D1 = ndarray.D1
	D2 = ndarray.D2
	D3 = ndarray.D3
	D4 = ndarray.D4
	DN = ndarray.DN
)

// MemoryView owns a flat buffer of one element kind.
type MemoryView[T Number] = ndarray.MemoryView[T]

// Storage is the type-erased view of a MemoryView.
type Storage = ndarray.Storage

// Ndarray is a strided view over a MemoryView.
type Ndarray[T Number, D Dimension] = ndarray.Ndarray[T, D]

// Rank-specific aliases.
type (
	D1Array[T Number] = ndarray.D1Array[T]
	D2Array[T Number] = ndarray.D2Array[T]
	D3Array[T Number] = ndarray.D3Array[T]
	D4Array[T Number] = ndarray.D4Array[T]
	DNArray[T Number] = ndarray.DNArray[T]
)

// Array is the type-erased contract consumed by the engines.
type Array = ndarray.Array

// MultiArray is an Array of a fixed rank.
type MultiArray[D Dimension] = ndarray.MultiArray[D]

// Errors.
var (
	ErrInvalidShape      = ndarray.ErrInvalidShape
	ErrDimensionMismatch = ndarray.ErrDimensionMismatch
	ErrInvalidStrides    = ndarray.ErrInvalidStrides
	ErrOutOfBounds       = ndarray.ErrOutOfBounds
	ErrShapeMismatch     = ndarray.ErrShapeMismatch
	ErrInvalidAxis       = ndarray.ErrInvalidAxis
	ErrEmptyArray        = ndarray.ErrEmptyArray
	ErrTypeMismatch      = ndarray.ErrTypeMismatch
	ErrTypeNotDefined    = ndarray.ErrTypeNotDefined
)

// DataTypeOf returns the DataType of T.
func DataTypeOf[T Number]() DataType {
	return ndarray.DataTypeOf[T]()
}

// DataTypeFromCode returns the DataType for a native code.
func DataTypeFromCode(code int) (DataType, error) {
	return ndarray.DataTypeFromCode(code)
}

// ParseDataType returns the DataType named name, e.g. "float32".
func ParseDataType(name string) (DataType, error) {
	return ndarray.ParseDataType(name)
}

// NewMemoryView allocates a zeroed buffer of size elements.
func NewMemoryView[T Number](size int) *MemoryView[T] {
	return ndarray.NewMemoryView[T](size)
}

// MemoryViewOf wraps data without copying.
func MemoryViewOf[T Number](data []T) *MemoryView[T] {
	return ndarray.MemoryViewOf(data)
}

// NewDN returns the dynamic rank tag for rank.
func NewDN(rank int) DN {
	return ndarray.NewDN(rank)
}

// New creates a view over data. nil strides selects C-order strides.
//
// Example:
//
//	buf := ndarray.MemoryViewOf([]float64{1, 2, 3, 4, 5, 6})
//	cols, _ := ndarray.New(buf, 0, ndarray.Shape{3, 2}, []int{1, 3}, ndarray.D2{})
func New[T Number, D Dimension](data *MemoryView[T], offset int, shape Shape, strides []int, dim D) (*Ndarray[T, D], error) {
	return ndarray.New(data, offset, shape, strides, dim)
}

// Zeros creates a zero-filled array.
func Zeros[T Number, D Dimension](shape ...int) (*Ndarray[T, D], error) {
	return ndarray.Zeros[T, D](shape...)
}

// Ones creates an array filled with ones.
func Ones[T Number, D Dimension](shape ...int) (*Ndarray[T, D], error) {
	return ndarray.Ones[T, D](shape...)
}

// Full creates an array filled with value.
func Full[T Number, D Dimension](value T, shape ...int) (*Ndarray[T, D], error) {
	return ndarray.Full[T, D](value, shape...)
}

// FromSlice copies data into a new array of the given shape.
func FromSlice[T Number, D Dimension](data []T, shape ...int) (*Ndarray[T, D], error) {
	return ndarray.FromSlice[T, D](data, shape...)
}

// Wrap creates an array over data without copying.
func Wrap[T Number, D Dimension](data []T, shape ...int) (*Ndarray[T, D], error) {
	return ndarray.Wrap[T, D](data, shape...)
}

// Vector creates a 1-D array of values.
func Vector[T Number](values ...T) *D1Array[T] {
	return ndarray.Vector(values...)
}

// Matrix creates a 2-D array from equal-length rows.
func Matrix[T Number](rows [][]T) *D2Array[T] {
	return ndarray.Matrix(rows)
}

// Arange returns [0, 1, ..., n-1].
func Arange[T Number](n int) *D1Array[T] {
	return ndarray.Arange[T](n)
}

// D1Of creates a vector with init(i) at i.
func D1Of[T Number](n int, init func(i int) T) *D1Array[T] {
	return ndarray.D1Of(n, init)
}

// D2Of creates a matrix with init(i, j) at (i, j).
func D2Of[T Number](rows, cols int, init func(i, j int) T) *D2Array[T] {
	return ndarray.D2Of(rows, cols, init)
}

// D3Of creates a 3-D array with init(i, j, k) at (i, j, k).
func D3Of[T Number](d0, d1, d2 int, init func(i, j, k int) T) *D3Array[T] {
	return ndarray.D3Of(d0, d1, d2, init)
}

// D4Of creates a 4-D array with init(i, j, k, l) at (i, j, k, l).
func D4Of[T Number](d0, d1, d2, d3 int, init func(i, j, k, l int) T) *D4Array[T] {
	return ndarray.D4Of(d0, d1, d2, d3, init)
}

// DNOf creates an array of any rank with init(idx) at idx.
func DNOf[T Number](shape Shape, init func(idx []int) T) *DNArray[T] {
	return ndarray.DNOf(shape, init)
}

// Select returns the view a[..., index, ...] with axis removed.
func Select[T Number, D Dimension, O Dimension](a *Ndarray[T, D], axis, index int) (*Ndarray[T, O], error) {
	return ndarray.Select[T, D, O](a, axis, index)
}

// Reshape returns the elements of a under a new shape and tag O. Contiguous
// arrays are reshaped as views; others are copied first.
func Reshape[O Dimension, T Number, D Dimension](a *Ndarray[T, D], shape ...int) (*Ndarray[T, O], error) {
	return ndarray.Reshape[O](a, shape...)
}

// Retag returns a under the rank tag O, which must describe a's rank.
func Retag[O Dimension, T Number, D Dimension](a *Ndarray[T, D]) (*Ndarray[T, O], error) {
	return ndarray.Retag[O](a)
}

// As recovers a typed view from a type-erased array.
func As[T Number, D Dimension](a Array) (*Ndarray[T, D], error) {
	return ndarray.As[T, D](a)
}

// Buffer returns the backing slice of a, which must hold elements of kind T.
func Buffer[T Number](a Array) []T {
	return ndarray.Buffer[T](a)
}

// Offsets yields (element index, buffer offset) pairs in element order.
func Offsets(a Array) iter.Seq2[int, int] {
	return ndarray.Offsets(a)
}

// ToPrimitive converts a boxed number to T.
func ToPrimitive[T Number](v any) T {
	return ndarray.ToPrimitive[T](v)
}

// ToPrimitiveType converts a boxed number to the Go type of dtype.
func ToPrimitiveType(v any, dtype DataType) any {
	return ndarray.ToPrimitiveType(v, dtype)
}

// Zero returns the boxed zero of dtype.
func Zero(dtype DataType) any {
	return ndarray.Zero(dtype)
}
