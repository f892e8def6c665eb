//go:build !cgo

package native

import (
	"unsafe"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Without cgo the builtin kernels are not compiled in and Open fails with
// ErrUnavailable, so none of these is ever reached.
const builtinAvailable = false

func allocStaging(int) (unsafe.Pointer, func(), Status) {
	return nil, noRelease, StatusInternal
}

func kernelSum(view) (float64, Status) { return 0, StatusInternal }

func kernelMedian(view) (float64, bool, Status) { return 0, false, StatusInternal }

func kernelAverage(_, _ view) (float64, Status) { return 0, StatusInternal }

func kernelMeanAxis(view, int, []float64) Status { return StatusInternal }

func kernelAbs(view, unsafe.Pointer) Status { return StatusInternal }

func kernelArgBest(view, bool) (int, Status) { return 0, StatusInternal }

func kernelCumSum(view, unsafe.Pointer) Status { return StatusInternal }

func kernelExp(view, []float64) Status { return StatusInternal }

func kernelMatrixDot(ndarray.DataType, operand, int, int, int, operand, unsafe.Pointer) Status {
	return StatusInternal
}

func kernelMatrixDotVector(ndarray.DataType, operand, int, int, operand, unsafe.Pointer) Status {
	return StatusInternal
}

func kernelVectorDot(ndarray.DataType, int, operand, operand) (float64, Status) {
	return 0, StatusInternal
}
