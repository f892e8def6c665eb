package native

import (
	"fmt"
	"unsafe"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// operand is a matrix or vector argument of a product kernel. A matrix element
// (i, j) lives at data[offset + i*ld + j], or data[offset + j*ld + i] when trans
// is set; a vector element i lives at data[offset + i*ld].
type operand struct {
	data    unsafe.Pointer
	offset  int64
	ld      int64
	trans   bool
	keep    ndarray.Storage
	release func()
}

func noRelease() {}

// stageMatrix prepares a 2-D array as an operand of kind dtype. Views of the right
// kind whose rows or columns are unit-stride are passed in place (columns through
// the trans flag); anything else is copied into a C staging buffer. The caller
// must call release on every path.
func stageMatrix(op string, a ndarray.Array, dtype ndarray.DataType) (operand, error) {
	shape, strides := a.Shape(), a.Strides()
	rows, cols := shape[0], shape[1]

	if a.DType() == dtype && a.Size() > 0 {
		if strides[1] == 1 || cols == 1 {
			ld := strides[0]
			if rows == 1 {
				ld = max(ld, cols)
			}
			if ld >= max(1, cols) {
				return inPlace(a, ld, false), nil
			}
		}
		if strides[0] == 1 || rows == 1 {
			ld := strides[1]
			if cols == 1 {
				ld = max(ld, rows)
			}
			if ld >= max(1, rows) {
				return inPlace(a, ld, true), nil
			}
		}
	}
	return staged(op, a, dtype, int64(max(1, cols)))
}

// stageVector prepares a 1-D array as an operand of kind dtype.
func stageVector(op string, a ndarray.Array, dtype ndarray.DataType) (operand, error) {
	n, inc := a.Shape()[0], a.Strides()[0]
	if a.DType() == dtype && n > 0 && (inc >= 1 || n == 1) {
		return inPlace(a, max(1, inc), false), nil
	}
	return staged(op, a, dtype, 1)
}

func inPlace(a ndarray.Array, ld int, trans bool) operand {
	return operand{
		data:    a.Storage().Pointer(),
		offset:  int64(a.Offset()),
		ld:      int64(ld),
		trans:   trans,
		keep:    a.Storage(),
		release: noRelease,
	}
}

func staged(op string, a ndarray.Array, dtype ndarray.DataType, ld int64) (operand, error) {
	n := a.Size()
	if n == 0 {
		return operand{ld: ld, release: noRelease}, nil
	}
	ptr, release, s := allocStaging(n * dtype.Size())
	if err := check(op, s); err != nil {
		return operand{}, err
	}
	fill(ptr, n, dtype, a)
	return operand{data: ptr, ld: ld, release: release}, nil
}

// fill converts the elements of a, in element order, into n elements of kind
// dtype at ptr.
func fill(ptr unsafe.Pointer, n int, dtype ndarray.DataType, a ndarray.Array) {
	switch dtype {
	case ndarray.Int8:
		fillAs(unsafe.Slice((*int8)(ptr), n), a)
	case ndarray.Int16:
		fillAs(unsafe.Slice((*int16)(ptr), n), a)
	case ndarray.Int32:
		fillAs(unsafe.Slice((*int32)(ptr), n), a)
	case ndarray.Int64:
		fillAs(unsafe.Slice((*int64)(ptr), n), a)
	case ndarray.Float32:
		fillAs(unsafe.Slice((*float32)(ptr), n), a)
	case ndarray.Float64:
		fillAs(unsafe.Slice((*float64)(ptr), n), a)
	default:
		panic(fmt.Sprintf("stage: %v (code %d)", ndarray.ErrTypeNotDefined, int(dtype)))
	}
}

func fillAs[D ndarray.Number](dst []D, a ndarray.Array) {
	switch a.DType() {
	case ndarray.Int8:
		convert(dst, ndarray.Buffer[int8](a), a)
	case ndarray.Int16:
		convert(dst, ndarray.Buffer[int16](a), a)
	case ndarray.Int32:
		convert(dst, ndarray.Buffer[int32](a), a)
	case ndarray.Int64:
		convert(dst, ndarray.Buffer[int64](a), a)
	case ndarray.Float32:
		convert(dst, ndarray.Buffer[float32](a), a)
	case ndarray.Float64:
		convert(dst, ndarray.Buffer[float64](a), a)
	default:
		panic(fmt.Sprintf("stage: %v (code %d)", ndarray.ErrTypeNotDefined, int(a.DType())))
	}
}

func convert[D, S ndarray.Number](dst []D, src []S, a ndarray.Array) {
	for i, off := range ndarray.Offsets(a) {
		dst[i] = D(src[off])
	}
}
