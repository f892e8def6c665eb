// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package engine defines the math capabilities of the ndarray backends.
//
// A backend bundles three capability groups behind the Engine interface:
//   - Statistics: Median, Average, Mean, per-axis Mean, Abs
//   - LinAlg: matrix, matrix-vector and vector products
//   - Math: ArgMax, ArgMin, Sum, CumSum, Exp
//
// Implementations:
//   - backend/pure: Go implementation, always available
//   - backend/native: compiled kernels (requires cgo), optional BLAS
//
// Example:
//
//	reg := engine.NewRegistry()
//	reg.Register(pure.New())
//	e, _ := reg.Default()
//	m := ndarray.Matrix([][]float64{{1, 2}, {3, 4}})
//	cols, _ := engine.Mean[float64, ndarray.D2, ndarray.D1](e.Statistics(), m, 0) // [2 3]
package engine

import (
	"github.com/born-ml/ndarray/internal/engine"
	"github.com/born-ml/ndarray/ndarray"
)

// Statistics is the statistics capability group.
type Statistics = engine.Statistics

// LinAlg is the linear algebra capability group.
type LinAlg = engine.LinAlg

// Math is the generic math capability group.
type Math = engine.Math

// Engine bundles the three capability groups of one backend.
type Engine = engine.Engine

// EngineType identifies a backend implementation.
type EngineType = engine.EngineType

// Known backends.
const (
	Pure   EngineType = engine.Pure
	Native EngineType = engine.Native
)

// Registry holds the available engines and the default selection.
type Registry = engine.Registry

// ErrEngineNotFound is returned when no engine of the requested type is registered.
var ErrEngineNotFound = engine.ErrEngineNotFound

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return engine.NewRegistry()
}

// ParseEngineType parses "pure" or "native".
func ParseEngineType(s string) (EngineType, error) {
	return engine.ParseEngineType(s)
}

// Promote returns the result kind of a binary operation on kinds a and b.
func Promote(a, b ndarray.DataType) ndarray.DataType {
	return engine.Promote(a, b)
}

// Mean reduces a along axis and returns the result under the rank tag O.
func Mean[T ndarray.Number, D ndarray.Dimension, O ndarray.Dimension](s Statistics, a *ndarray.Ndarray[T, D], axis int) (*ndarray.Ndarray[float64, O], error) {
	return engine.Mean[T, D, O](s, a, axis)
}

// AbsOf returns |a| with a's kind and tag.
func AbsOf[T ndarray.Number, D ndarray.Dimension](s Statistics, a *ndarray.Ndarray[T, D]) (*ndarray.Ndarray[T, D], error) {
	return engine.AbsOf(s, a)
}

// DotD2 multiplies two matrices of the same kind.
func DotD2[T ndarray.Number](l LinAlg, a, b *ndarray.D2Array[T]) (*ndarray.D2Array[T], error) {
	return engine.DotD2(l, a, b)
}

// DotAs multiplies two matrices and recovers the result as R, which must be the
// promoted kind of the operands.
func DotAs[R ndarray.Number](l LinAlg, a, b ndarray.Array) (*ndarray.D2Array[R], error) {
	return engine.DotAs[R](l, a, b)
}

// CumSumOf returns the running sum of a as a vector of a's kind.
func CumSumOf[T ndarray.Number, D ndarray.Dimension](m Math, a *ndarray.Ndarray[T, D]) (*ndarray.D1Array[T], error) {
	return engine.CumSumOf(m, a)
}
