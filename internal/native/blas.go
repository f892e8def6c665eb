package native

import (
	"math"
	"runtime"
	"unsafe"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// CBLAS enums.
const (
	cblasRowMajor int32 = 101
	cblasNoTrans  int32 = 111
	cblasTrans    int32 = 112
)

// blas holds the CBLAS entry points resolved from a shared library.
type blas struct {
	name string

	dgemm func(order, transA, transB, m, n, k int32, alpha float64, a unsafe.Pointer, lda int32,
		b unsafe.Pointer, ldb int32, beta float64, c unsafe.Pointer, ldc int32)
	sgemm func(order, transA, transB, m, n, k int32, alpha float32, a unsafe.Pointer, lda int32,
		b unsafe.Pointer, ldb int32, beta float32, c unsafe.Pointer, ldc int32)
	dgemv func(order, trans, m, n int32, alpha float64, a unsafe.Pointer, lda int32,
		x unsafe.Pointer, incx int32, beta float64, y unsafe.Pointer, incy int32)
	sgemv func(order, trans, m, n int32, alpha float32, a unsafe.Pointer, lda int32,
		x unsafe.Pointer, incx int32, beta float32, y unsafe.Pointer, incy int32)
	ddot func(n int32, x unsafe.Pointer, incx int32, y unsafe.Pointer, incy int32) float64
	sdot func(n int32, x unsafe.Pointer, incx int32, y unsafe.Pointer, incy int32) float32
}

func fitsInt32(vs ...int64) bool {
	for _, v := range vs {
		if v > math.MaxInt32 {
			return false
		}
	}
	return true
}

func trans(t bool) int32 {
	if t {
		return cblasTrans
	}
	return cblasNoTrans
}

// at returns the address of the first addressed element of o.
func (o operand) at(dtype ndarray.DataType) unsafe.Pointer {
	if o.data == nil {
		return nil
	}
	return unsafe.Add(o.data, int(o.offset)*dtype.Size())
}

// gemm computes c = op(a) x op(b) for float kinds. It returns false when the
// call cannot be expressed in CBLAS and the builtin kernel must be used.
func (bl *blas) gemm(dtype ndarray.DataType, a operand, m, n, k int, b operand, c unsafe.Pointer) bool {
	if m == 0 || n == 0 || k == 0 || !fitsInt32(int64(m), int64(n), int64(k), a.ld, b.ld) {
		return false
	}
	switch dtype {
	case ndarray.Float64:
		bl.dgemm(cblasRowMajor, trans(a.trans), trans(b.trans), int32(m), int32(n), int32(k),
			1, a.at(dtype), int32(a.ld), b.at(dtype), int32(b.ld), 0, c, int32(n))
	case ndarray.Float32:
		bl.sgemm(cblasRowMajor, trans(a.trans), trans(b.trans), int32(m), int32(n), int32(k),
			1, a.at(dtype), int32(a.ld), b.at(dtype), int32(b.ld), 0, c, int32(n))
	default:
		return false
	}
	runtime.KeepAlive(a.keep)
	runtime.KeepAlive(b.keep)
	return true
}

// gemv computes y = op(a) x x for float kinds, with op(a) of shape (m, n).
func (bl *blas) gemv(dtype ndarray.DataType, a operand, m, n int, x operand, y unsafe.Pointer) bool {
	if m == 0 || n == 0 || !fitsInt32(int64(m), int64(n), a.ld, x.ld) {
		return false
	}
	// CBLAS takes the stored matrix dimensions, not those of op(a)
	rows, cols := m, n
	if a.trans {
		rows, cols = n, m
	}
	switch dtype {
	case ndarray.Float64:
		bl.dgemv(cblasRowMajor, trans(a.trans), int32(rows), int32(cols), 1, a.at(dtype), int32(a.ld),
			x.at(dtype), int32(x.ld), 0, y, 1)
	case ndarray.Float32:
		bl.sgemv(cblasRowMajor, trans(a.trans), int32(rows), int32(cols), 1, a.at(dtype), int32(a.ld),
			x.at(dtype), int32(x.ld), 0, y, 1)
	default:
		return false
	}
	runtime.KeepAlive(a.keep)
	runtime.KeepAlive(x.keep)
	return true
}

// dot returns the inner product for float kinds.
func (bl *blas) dot(dtype ndarray.DataType, n int, x, y operand) (float64, bool) {
	if n == 0 || !fitsInt32(int64(n), x.ld, y.ld) {
		return 0, false
	}
	var out float64
	switch dtype {
	case ndarray.Float64:
		out = bl.ddot(int32(n), x.at(dtype), int32(x.ld), y.at(dtype), int32(y.ld))
	case ndarray.Float32:
		out = float64(bl.sdot(int32(n), x.at(dtype), int32(x.ld), y.at(dtype), int32(y.ld)))
	default:
		return 0, false
	}
	runtime.KeepAlive(x.keep)
	runtime.KeepAlive(y.keep)
	return out, true
}
