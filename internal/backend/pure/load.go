package pure

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// load copies the elements of a, in element order, into a contiguous slice of the
// accumulator kind A. Strided views are walked through the addressing kernel.
func load[A int64 | float64](a ndarray.Array) []A {
	switch a.DType() {
	case ndarray.Int8:
		return gather[int8, A](a)
	case ndarray.Int16:
		return gather[int16, A](a)
	case ndarray.Int32:
		return gather[int32, A](a)
	case ndarray.Int64:
		return gather[int64, A](a)
	case ndarray.Float32:
		return gather[float32, A](a)
	case ndarray.Float64:
		return gather[float64, A](a)
	default:
		panic(fmt.Sprintf("load: %v (code %d)", ndarray.ErrTypeNotDefined, int(a.DType())))
	}
}

func gather[S ndarray.Number, A int64 | float64](a ndarray.Array) []A {
	buf := ndarray.Buffer[S](a)
	out := make([]A, a.Size())
	for i, off := range ndarray.Offsets(a) {
		out[i] = A(buf[off])
	}
	return out
}

// store converts src into the contiguous result array dst, element by element.
func store[A int64 | float64](dst ndarray.Array, src []A) {
	switch dst.DType() {
	case ndarray.Int8:
		scatter(ndarray.Buffer[int8](dst), src)
	case ndarray.Int16:
		scatter(ndarray.Buffer[int16](dst), src)
	case ndarray.Int32:
		scatter(ndarray.Buffer[int32](dst), src)
	case ndarray.Int64:
		scatter(ndarray.Buffer[int64](dst), src)
	case ndarray.Float32:
		scatter(ndarray.Buffer[float32](dst), src)
	case ndarray.Float64:
		scatter(ndarray.Buffer[float64](dst), src)
	default:
		panic(fmt.Sprintf("store: %v (code %d)", ndarray.ErrTypeNotDefined, int(dst.DType())))
	}
}

func scatter[D ndarray.Number, A int64 | float64](dst []D, src []A) {
	for i, v := range src {
		dst[i] = D(v)
	}
}
