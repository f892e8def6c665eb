// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pure provides the Go math engine.
//
// The engine works directly on MemoryView buffers through the stride/offset
// addressing of each view, so transposed and sliced operands are never copied
// up front. It has no failure modes beyond input validation and is always
// available.
//
// Example:
//
//	e := pure.New()
//	a := ndarray.Matrix([][]float64{{1, 2}, {3, 4}})
//	c, _ := engine.DotD2(e, a, a.Transpose())
package pure

import (
	internalpure "github.com/born-ml/ndarray/internal/backend/pure"
	"github.com/born-ml/ndarray/engine"
)

// Engine is the pure Go engine.
type Engine = internalpure.Engine

// Compile-time check that Engine implements engine.Engine.
var _ engine.Engine = (*Engine)(nil)

// New creates a new pure Go engine.
func New() *Engine {
	return internalpure.New()
}
