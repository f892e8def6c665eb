package pure

import (
	"fmt"
	"math"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// ArgMax returns the element-order index of the first maximum.
//
// Example:
//
//	i, _ := e.ArgMax(ndarray.Vector(1.0, 5.0, 3.0, 5.0)) // 1
func (e *Engine) ArgMax(a ndarray.Array) (int, error) {
	if a.Size() == 0 {
		return 0, fmt.Errorf("argmax: %w", ndarray.ErrEmptyArray)
	}
	switch a.DType() {
	case ndarray.Int8:
		return argBest(ndarray.Buffer[int8](a), a, greater[int8]), nil
	case ndarray.Int16:
		return argBest(ndarray.Buffer[int16](a), a, greater[int16]), nil
	case ndarray.Int32:
		return argBest(ndarray.Buffer[int32](a), a, greater[int32]), nil
	case ndarray.Int64:
		return argBest(ndarray.Buffer[int64](a), a, greater[int64]), nil
	case ndarray.Float32:
		return argBest(ndarray.Buffer[float32](a), a, greater[float32]), nil
	case ndarray.Float64:
		return argBest(ndarray.Buffer[float64](a), a, greater[float64]), nil
	default:
		panic(fmt.Sprintf("argmax: %v (code %d)", ndarray.ErrTypeNotDefined, int(a.DType())))
	}
}

// ArgMin returns the element-order index of the first minimum.
func (e *Engine) ArgMin(a ndarray.Array) (int, error) {
	if a.Size() == 0 {
		return 0, fmt.Errorf("argmin: %w", ndarray.ErrEmptyArray)
	}
	switch a.DType() {
	case ndarray.Int8:
		return argBest(ndarray.Buffer[int8](a), a, less[int8]), nil
	case ndarray.Int16:
		return argBest(ndarray.Buffer[int16](a), a, less[int16]), nil
	case ndarray.Int32:
		return argBest(ndarray.Buffer[int32](a), a, less[int32]), nil
	case ndarray.Int64:
		return argBest(ndarray.Buffer[int64](a), a, less[int64]), nil
	case ndarray.Float32:
		return argBest(ndarray.Buffer[float32](a), a, less[float32]), nil
	case ndarray.Float64:
		return argBest(ndarray.Buffer[float64](a), a, less[float64]), nil
	default:
		panic(fmt.Sprintf("argmin: %v (code %d)", ndarray.ErrTypeNotDefined, int(a.DType())))
	}
}

// Sum returns the sum of all elements as float64. An empty array sums to 0.
func (e *Engine) Sum(a ndarray.Array) (float64, error) {
	return sum(a), nil
}

// CumSum returns the running sum of the flattened array as a vector of a's kind.
// Integer sums wrap on overflow.
func (e *Engine) CumSum(a ndarray.Array) (ndarray.Array, error) {
	res, err := ndarray.AllocLike(a.DType(), ndarray.Shape{a.Size()}, ndarray.D1{})
	if err != nil {
		return nil, fmt.Errorf("cumsum: %w", err)
	}
	switch a.DType() {
	case ndarray.Int8:
		cumSum(ndarray.Buffer[int8](res), ndarray.Buffer[int8](a), a)
	case ndarray.Int16:
		cumSum(ndarray.Buffer[int16](res), ndarray.Buffer[int16](a), a)
	case ndarray.Int32:
		cumSum(ndarray.Buffer[int32](res), ndarray.Buffer[int32](a), a)
	case ndarray.Int64:
		cumSum(ndarray.Buffer[int64](res), ndarray.Buffer[int64](a), a)
	case ndarray.Float32:
		cumSum(ndarray.Buffer[float32](res), ndarray.Buffer[float32](a), a)
	case ndarray.Float64:
		cumSum(ndarray.Buffer[float64](res), ndarray.Buffer[float64](a), a)
	default:
		panic(fmt.Sprintf("cumsum: %v (code %d)", ndarray.ErrTypeNotDefined, int(a.DType())))
	}
	return res, nil
}

// Exp computes e**x elementwise. The result is float64 with a's shape and tag.
func (e *Engine) Exp(a ndarray.Array) (ndarray.Array, error) {
	res := a.ZerosLike(ndarray.Float64)
	dst := ndarray.Buffer[float64](res)
	for i, v := range load[float64](a) {
		dst[i] = math.Exp(v)
	}
	return res, nil
}

func greater[T ndarray.Number](v, best T) bool { return v > best }

func less[T ndarray.Number](v, best T) bool { return v < best }

// argBest returns the element index of the first element no other element beats.
func argBest[T ndarray.Number](src []T, a ndarray.Array, beats func(v, best T) bool) int {
	bestIdx := 0
	var best T
	for i, off := range ndarray.Offsets(a) {
		v := src[off]
		if i == 0 || beats(v, best) {
			best, bestIdx = v, i
		}
	}
	return bestIdx
}

func cumSum[T ndarray.Number](dst, src []T, a ndarray.Array) {
	var acc T
	for i, off := range ndarray.Offsets(a) {
		acc += src[off]
		dst[i] = acc
	}
}

// sum adds all elements in element order, promoted to float64.
func sum(a ndarray.Array) float64 {
	switch a.DType() {
	case ndarray.Int8:
		return sumOf(ndarray.Buffer[int8](a), a)
	case ndarray.Int16:
		return sumOf(ndarray.Buffer[int16](a), a)
	case ndarray.Int32:
		return sumOf(ndarray.Buffer[int32](a), a)
	case ndarray.Int64:
		return sumOf(ndarray.Buffer[int64](a), a)
	case ndarray.Float32:
		return sumOf(ndarray.Buffer[float32](a), a)
	case ndarray.Float64:
		return sumOf(ndarray.Buffer[float64](a), a)
	default:
		panic(fmt.Sprintf("sum: %v (code %d)", ndarray.ErrTypeNotDefined, int(a.DType())))
	}
}

func sumOf[T ndarray.Number](src []T, a ndarray.Array) float64 {
	var acc float64
	for _, off := range ndarray.Offsets(a) {
		acc += float64(src[off])
	}
	return acc
}
