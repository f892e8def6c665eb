// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides n-dimensional arrays of numbers over shared memory.
//
// # Overview
//
// An Ndarray is a view over a MemoryView: an element offset, a shape, per-axis
// strides and a rank tag. This package provides:
//   - Six element kinds (int8, int16, int32, int64, float32, float64) with stable
//     native codes
//   - Static rank tags D1, D2, D3, D4 and the dynamic-rank DN
//   - Zero-copy views: Transpose, Slice, Select, Reshape, Retag
//   - Type-erased access (Array, Buffer, As) for compute engines
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray/ndarray"
//
//	func main() {
//	    m := ndarray.Matrix([][]float64{{1, 2, 3}, {4, 5, 6}})
//	    t := m.Transpose()            // (3, 2), shares m's buffer
//	    row, _ := ndarray.Select[float64, ndarray.D2, ndarray.D1](m, 0, 1)
//	    fmt.Println(t, row)           // row is [4 5 6]
//	}
//
// # Element Order
//
// Reductions, iteration and flattening visit elements in row-major order of the
// view's own shape, whatever its strides.
//
// Math over arrays lives in the engine package and its backends.
package ndarray
