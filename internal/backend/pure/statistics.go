package pure

import (
	"fmt"
	"math"
	"slices"

	"github.com/born-ml/ndarray/internal/engine"
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Mean returns the arithmetic mean of all elements as float64.
func (e *Engine) Mean(a ndarray.Array) (float64, error) {
	if a.Size() == 0 {
		return 0, fmt.Errorf("mean: %w", ndarray.ErrEmptyArray)
	}
	return sum(a) / float64(a.Size()), nil
}

// Median returns the median of all elements. ok is false for an empty array.
//
// Example:
//
//	m, ok, _ := e.Median(ndarray.Vector[int32](1, 2, 3, 4)) // 2.5, true
func (e *Engine) Median(a ndarray.Array) (float64, bool, error) {
	n := a.Size()
	if n == 0 {
		return 0, false, nil
	}
	sorted := load[float64](a)
	slices.Sort(sorted)
	if n%2 == 1 {
		return sorted[n/2], true, nil
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2, true, nil
}

// Average returns the weighted mean sum(a*w)/sum(w). A nil weights array gives the
// plain mean. Both operands are promoted to float64 whatever their kinds.
func (e *Engine) Average(a, weights ndarray.Array) (float64, error) {
	if engine.Absent(weights) {
		return e.Mean(a)
	}
	if err := engine.CheckWeights(a, weights); err != nil {
		return 0, err
	}
	if a.Size() == 0 {
		return 0, fmt.Errorf("average: %w", ndarray.ErrEmptyArray)
	}
	x := load[float64](a)
	w := load[float64](weights)
	var num, den float64
	for i := range x {
		num += float64(x[i] * w[i])
		den += w[i]
	}
	return num / den, nil
}

// MeanAlong returns the mean along axis as a float64 array of rank a.Rank()-1.
//
// Example:
//
//	m := ndarray.Matrix([][]float64{{1, 2}, {3, 4}})
//	cols, _ := e.MeanAlong(m, 0) // [2, 3]
func (e *Engine) MeanAlong(a ndarray.Array, axis int) (*ndarray.Ndarray[float64, ndarray.DN], error) {
	outShape, err := engine.ReducedShape(a, axis)
	if err != nil {
		return nil, err
	}
	if a.Shape()[axis] == 0 {
		return nil, fmt.Errorf("mean: axis %d has no elements: %w", axis, ndarray.ErrEmptyArray)
	}
	out, err := ndarray.Zeros[float64, ndarray.DN](outShape...)
	if err != nil {
		return nil, fmt.Errorf("mean: %w", err)
	}

	dst := out.Data().Data()
	switch a.DType() {
	case ndarray.Int8:
		meanAxis(dst, ndarray.Buffer[int8](a), a, axis, outShape)
	case ndarray.Int16:
		meanAxis(dst, ndarray.Buffer[int16](a), a, axis, outShape)
	case ndarray.Int32:
		meanAxis(dst, ndarray.Buffer[int32](a), a, axis, outShape)
	case ndarray.Int64:
		meanAxis(dst, ndarray.Buffer[int64](a), a, axis, outShape)
	case ndarray.Float32:
		meanAxis(dst, ndarray.Buffer[float32](a), a, axis, outShape)
	case ndarray.Float64:
		meanAxis(dst, ndarray.Buffer[float64](a), a, axis, outShape)
	default:
		panic(fmt.Sprintf("mean: %v (code %d)", ndarray.ErrTypeNotDefined, int(a.DType())))
	}
	return out, nil
}

// MeanD2 reduces a matrix along axis to a vector.
func (e *Engine) MeanD2(a ndarray.MultiArray[ndarray.D2], axis int) (*ndarray.Ndarray[float64, ndarray.D1], error) {
	res, err := e.MeanAlong(a, axis)
	if err != nil {
		return nil, err
	}
	return ndarray.Retag[ndarray.D1](res)
}

// MeanD3 reduces a 3-D array along axis to a matrix.
func (e *Engine) MeanD3(a ndarray.MultiArray[ndarray.D3], axis int) (*ndarray.Ndarray[float64, ndarray.D2], error) {
	res, err := e.MeanAlong(a, axis)
	if err != nil {
		return nil, err
	}
	return ndarray.Retag[ndarray.D2](res)
}

// MeanD4 reduces a 4-D array along axis to a 3-D array.
func (e *Engine) MeanD4(a ndarray.MultiArray[ndarray.D4], axis int) (*ndarray.Ndarray[float64, ndarray.D3], error) {
	res, err := e.MeanAlong(a, axis)
	if err != nil {
		return nil, err
	}
	return ndarray.Retag[ndarray.D3](res)
}

// MeanDN reduces a 5-D array along axis to a 4-D array.
func (e *Engine) MeanDN(a ndarray.MultiArray[ndarray.DN], axis int) (*ndarray.Ndarray[float64, ndarray.D4], error) {
	if err := engine.CheckRank(a, 5); err != nil {
		return nil, fmt.Errorf("mean: %w", err)
	}
	res, err := e.MeanAlong(a, axis)
	if err != nil {
		return nil, err
	}
	return ndarray.Retag[ndarray.D4](res)
}

// Abs returns the elementwise absolute value with a's kind, shape and tag.
// The minimum of an integer kind maps to itself.
func (e *Engine) Abs(a ndarray.Array) (ndarray.Array, error) {
	res := a.ZerosLike(a.DType())
	switch a.DType() {
	case ndarray.Int8:
		absInt8(ndarray.Buffer[int8](res), ndarray.Buffer[int8](a), a)
	case ndarray.Int16:
		absInt16(ndarray.Buffer[int16](res), ndarray.Buffer[int16](a), a)
	case ndarray.Int32:
		absInt32(ndarray.Buffer[int32](res), ndarray.Buffer[int32](a), a)
	case ndarray.Int64:
		absInt64(ndarray.Buffer[int64](res), ndarray.Buffer[int64](a), a)
	case ndarray.Float32:
		absFloat32(ndarray.Buffer[float32](res), ndarray.Buffer[float32](a), a)
	case ndarray.Float64:
		absFloat64(ndarray.Buffer[float64](res), ndarray.Buffer[float64](a), a)
	default:
		panic(fmt.Sprintf("abs: %v (code %d)", ndarray.ErrTypeNotDefined, int(a.DType())))
	}
	return res, nil
}

// meanAxis averages each output cell along axis, accumulating in increasing index
// order along the reduced axis.
func meanAxis[T ndarray.Number](dst []float64, src []T, a ndarray.Array, axis int, outShape ndarray.Shape) {
	strides := a.Strides()
	extent := a.Shape()[axis]
	step := strides[axis]
	idx := make([]int, len(outShape))
	for o := range dst {
		ndarray.Unravel(o, outShape, idx)
		base := a.Offset()
		j := 0
		for d, s := range strides {
			if d == axis {
				continue
			}
			base += idx[j] * s
			j++
		}
		var acc float64
		for k := 0; k < extent; k++ {
			acc += float64(src[base+k*step])
		}
		dst[o] = acc / float64(extent)
	}
}

func absInt8(dst, src []int8, a ndarray.Array) {
	for i, off := range ndarray.Offsets(a) {
		v := src[off]
		if v < 0 {
			v = -v
		}
		dst[i] = v
	}
}

func absInt16(dst, src []int16, a ndarray.Array) {
	for i, off := range ndarray.Offsets(a) {
		v := src[off]
		if v < 0 {
			v = -v
		}
		dst[i] = v
	}
}

func absInt32(dst, src []int32, a ndarray.Array) {
	for i, off := range ndarray.Offsets(a) {
		v := src[off]
		if v < 0 {
			v = -v
		}
		dst[i] = v
	}
}

func absInt64(dst, src []int64, a ndarray.Array) {
	for i, off := range ndarray.Offsets(a) {
		v := src[off]
		if v < 0 {
			v = -v
		}
		dst[i] = v
	}
}

func absFloat32(dst, src []float32, a ndarray.Array) {
	for i, off := range ndarray.Offsets(a) {
		dst[i] = float32(math.Abs(float64(src[off])))
	}
}

func absFloat64(dst, src []float64, a ndarray.Array) {
	for i, off := range ndarray.Offsets(a) {
		dst[i] = math.Abs(src[off])
	}
}
