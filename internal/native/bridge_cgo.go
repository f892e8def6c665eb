//go:build cgo

package native

/*
#cgo CFLAGS: -O2 -std=c11
#cgo LDFLAGS: -lm
#include "kernels.h"
*/
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/born-ml/ndarray/internal/ndarray"
)

const builtinAvailable = true

func i64s(p []int64) *C.int64_t {
	return (*C.int64_t)(unsafe.Pointer(unsafe.SliceData(p)))
}

func code(v view) C.int {
	return C.int(v.dtype.NativeCode())
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

func allocStaging(bytes int) (unsafe.Pointer, func(), Status) {
	ptr := C.malloc(C.size_t(bytes))
	if ptr == nil {
		return nil, noRelease, StatusAllocFailed
	}
	return ptr, func() { C.free(ptr) }, StatusOK
}

func kernelSum(v view) (float64, Status) {
	var out C.double
	rc := C.nd_sum(v.data, code(v), C.int64_t(v.offset), C.int(len(v.shape)), i64s(v.shape), i64s(v.strides), &out)
	runtime.KeepAlive(v.keep)
	return float64(out), Status(rc)
}

func kernelMedian(v view) (float64, bool, Status) {
	var out C.double
	var ok C.int
	rc := C.nd_median(v.data, code(v), C.int64_t(v.offset), C.int(len(v.shape)), i64s(v.shape), i64s(v.strides), &out, &ok)
	runtime.KeepAlive(v.keep)
	return float64(out), ok != 0, Status(rc)
}

func kernelAverage(a, w view) (float64, Status) {
	var out C.double
	rc := C.nd_average(
		a.data, code(a), C.int64_t(a.offset), i64s(a.strides),
		w.data, code(w), C.int64_t(w.offset), i64s(w.strides),
		C.int(len(a.shape)), i64s(a.shape), &out)
	runtime.KeepAlive(a.keep)
	runtime.KeepAlive(w.keep)
	return float64(out), Status(rc)
}

func kernelMeanAxis(v view, axis int, out []float64) Status {
	rc := C.nd_mean_axis(v.data, code(v), C.int64_t(v.offset), C.int(len(v.shape)), i64s(v.shape), i64s(v.strides),
		C.int(axis), (*C.double)(unsafe.Pointer(unsafe.SliceData(out))))
	runtime.KeepAlive(v.keep)
	runtime.KeepAlive(out)
	return Status(rc)
}

func kernelAbs(v view, out unsafe.Pointer) Status {
	rc := C.nd_abs(v.data, code(v), C.int64_t(v.offset), C.int(len(v.shape)), i64s(v.shape), i64s(v.strides), out)
	runtime.KeepAlive(v.keep)
	return Status(rc)
}

func kernelArgBest(v view, wantMax bool) (int, Status) {
	var out C.int64_t
	rc := C.nd_arg_best(v.data, code(v), C.int64_t(v.offset), C.int(len(v.shape)), i64s(v.shape), i64s(v.strides),
		cbool(wantMax), &out)
	runtime.KeepAlive(v.keep)
	return int(out), Status(rc)
}

func kernelCumSum(v view, out unsafe.Pointer) Status {
	rc := C.nd_cumsum(v.data, code(v), C.int64_t(v.offset), C.int(len(v.shape)), i64s(v.shape), i64s(v.strides), out)
	runtime.KeepAlive(v.keep)
	return Status(rc)
}

func kernelExp(v view, out []float64) Status {
	rc := C.nd_exp(v.data, code(v), C.int64_t(v.offset), C.int(len(v.shape)), i64s(v.shape), i64s(v.strides),
		(*C.double)(unsafe.Pointer(unsafe.SliceData(out))))
	runtime.KeepAlive(v.keep)
	runtime.KeepAlive(out)
	return Status(rc)
}

// kernelMatrixDot takes its arguments in gemm order:
// (dtype, trans_a, offsetA, A, lda, m, n, k, trans_b, offsetB, B, ldb, C).
func kernelMatrixDot(dtype ndarray.DataType, a operand, m, n, k int, b operand, c unsafe.Pointer) Status {
	rc := C.nd_matrix_dot(C.int(dtype.NativeCode()), cbool(a.trans), C.int64_t(a.offset), a.data, C.int64_t(a.ld),
		C.int64_t(m), C.int64_t(n), C.int64_t(k),
		cbool(b.trans), C.int64_t(b.offset), b.data, C.int64_t(b.ld), c)
	runtime.KeepAlive(a.keep)
	runtime.KeepAlive(b.keep)
	return Status(rc)
}

func kernelMatrixDotVector(dtype ndarray.DataType, a operand, m, n int, x operand, y unsafe.Pointer) Status {
	rc := C.nd_matrix_dot_vector(C.int(dtype.NativeCode()), cbool(a.trans), C.int64_t(a.offset), a.data, C.int64_t(a.ld),
		C.int64_t(m), C.int64_t(n), C.int64_t(x.offset), x.data, C.int64_t(x.ld), y)
	runtime.KeepAlive(a.keep)
	runtime.KeepAlive(x.keep)
	return Status(rc)
}

func kernelVectorDot(dtype ndarray.DataType, n int, x, y operand) (float64, Status) {
	var out C.double
	rc := C.nd_vector_dot(C.int(dtype.NativeCode()), C.int64_t(n), C.int64_t(x.offset), x.data, C.int64_t(x.ld),
		C.int64_t(y.offset), y.data, C.int64_t(y.ld), &out)
	runtime.KeepAlive(x.keep)
	runtime.KeepAlive(y.keep)
	return float64(out), Status(rc)
}
