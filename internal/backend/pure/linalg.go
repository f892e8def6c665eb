package pure

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/engine"
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Dot performs matrix multiplication: (M, K) x (K, N) -> (M, N).
// The result kind is engine.Promote of the operand kinds. Operands are staged in
// the accumulator kind (int64 for integer results, float64 otherwise), so any
// strided view is accepted.
func (e *Engine) Dot(a, b ndarray.Array) (ndarray.Array, error) {
	m, k, n, dtype, err := engine.CheckDot(a, b)
	if err != nil {
		return nil, err
	}
	result, err := ndarray.AllocLike(dtype, ndarray.Shape{m, n}, ndarray.D2{})
	if err != nil {
		return nil, fmt.Errorf("dot: %w", err)
	}

	if dtype.IsInteger() {
		c := make([]int64, m*n)
		matmul(c, load[int64](a), load[int64](b), m, k, n, e.par)
		store(result, c)
	} else {
		c := make([]float64, m*n)
		matmul(c, load[float64](a), load[float64](b), m, k, n, e.par)
		store(result, c)
	}
	return result, nil
}

// DotMV multiplies a matrix by a vector: (M, N) x (N) -> (M).
func (e *Engine) DotMV(a, b ndarray.Array) (ndarray.Array, error) {
	m, n, dtype, err := engine.CheckDotMV(a, b)
	if err != nil {
		return nil, err
	}
	result, err := ndarray.AllocLike(dtype, ndarray.Shape{m}, ndarray.D1{})
	if err != nil {
		return nil, fmt.Errorf("dot: %w", err)
	}

	// a vector is a (N, 1) matrix
	if dtype.IsInteger() {
		c := make([]int64, m)
		matmul(c, load[int64](a), load[int64](b), m, n, 1, e.par)
		store(result, c)
	} else {
		c := make([]float64, m)
		matmul(c, load[float64](a), load[float64](b), m, n, 1, e.par)
		store(result, c)
	}
	return result, nil
}

// DotVV returns the inner product of two vectors as float64. Integer operands
// accumulate in int64 and convert once at the end.
func (e *Engine) DotVV(a, b ndarray.Array) (float64, error) {
	if _, err := engine.CheckDotVV(a, b); err != nil {
		return 0, err
	}
	if engine.Promote(a.DType(), b.DType()).IsInteger() {
		return float64(inner(load[int64](a), load[int64](b))), nil
	}
	return inner(load[float64](a), load[float64](b)), nil
}

// matmul computes C[i,j] = sum_k A[i,k] * B[k,j] over contiguous row-major
// operands. Rows are independent and may run in parallel; each cell accumulates
// in increasing k.
func matmul[A int64 | float64](c, a, b []A, m, k, n int, cfg parallel.Config) {
	parallel.For(m, func(i int) {
		row := a[i*k : i*k+k]
		for j := 0; j < n; j++ {
			var sum A
			for p, av := range row {
				sum += A(av * b[p*n+j])
			}
			c[i*n+j] = sum
		}
	}, cfg)
}

func inner[A int64 | float64](x, y []A) A {
	var sum A
	for i := range x {
		sum += A(x[i] * y[i])
	}
	return sum
}
