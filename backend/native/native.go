// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package native provides the math engine backed by compiled kernels.
//
// # Overview
//
// The kernels are C compiled into the binary through cgo. Views cross the
// boundary unchanged (data pointer, kind code, offset, shape, strides); operands
// a kernel cannot address in place are staged into temporary C buffers. Float
// matrix and vector products can optionally be delegated to a CBLAS library
// (OpenBLAS by default) loaded at run time.
//
// Without cgo New fails with ErrUnavailable and IsAvailable reports false;
// programs should fall back to backend/pure.
//
// # Basic Usage
//
//	e, err := native.New(native.Options{})
//	if err != nil {
//	    log.Printf("native engine unavailable: %v", err)
//	    return pure.New()
//	}
//	return e
//
// # Numerics
//
// With the builtin kernels, results match the pure engine bit for bit except
// Exp, which may differ by an ulp. BLAS products are reordered by the library and
// only agree within floating-point tolerance.
package native

import (
	internalnative "github.com/born-ml/ndarray/internal/backend/native"
	bridge "github.com/born-ml/ndarray/internal/native"
	"github.com/born-ml/ndarray/engine"
)

// Engine is the native engine.
type Engine = internalnative.Engine

// Compile-time check that Engine implements engine.Engine.
var _ engine.Engine = (*Engine)(nil)

// Options configures New.
type Options = bridge.Options

// Error is a failed native call; it matches ErrNativeFailure with errors.Is.
type Error = bridge.Error

var (
	// ErrUnavailable is returned by New when the kernels were not compiled in.
	ErrUnavailable = bridge.ErrUnavailable

	// ErrNativeFailure is matched by every native call failure.
	ErrNativeFailure = bridge.ErrNativeFailure
)

// New opens the native library and creates an engine.
func New(opts Options) (*Engine, error) {
	return internalnative.New(opts)
}

// IsAvailable reports whether New can succeed in this build.
func IsAvailable() bool {
	return internalnative.IsAvailable()
}
