// Package native implements the math engine on top of the compiled kernels of
// internal/native. Every operation validates its operands in Go first, with the
// same checks and errors as the pure backend, and then hands the views to the
// foreign-call boundary unchanged.
package native

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/engine"
	bridge "github.com/born-ml/ndarray/internal/native"
)

// Engine implements the Statistics, LinAlg and Math capability groups with
// native kernels. It is safe for concurrent use.
type Engine struct {
	lib *bridge.Library
}

var _ engine.Engine = (*Engine)(nil)

// New opens the native library and creates an engine on it.
// It returns an error wrapping bridge.ErrUnavailable when the kernels were not
// compiled into this binary.
func New(opts bridge.Options) (*Engine, error) {
	lib, err := bridge.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("native engine: %w", err)
	}
	return &Engine{lib: lib}, nil
}

// IsAvailable reports whether New can succeed in this build.
func IsAvailable() bool {
	return bridge.Available()
}

// Name returns the engine name.
func (e *Engine) Name() string {
	return "Native"
}

// Type returns engine.Native.
func (e *Engine) Type() engine.EngineType {
	return engine.Native
}

// Describe names the active native drivers, e.g. "builtin kernels + libopenblas.so.0".
func (e *Engine) Describe() string {
	return e.lib.Describe()
}

// HasBLAS reports whether float products go through CBLAS.
func (e *Engine) HasBLAS() bool {
	return e.lib.HasBLAS()
}

// Statistics returns the statistics capability group.
func (e *Engine) Statistics() engine.Statistics {
	return e
}

// LinAlg returns the linear algebra capability group.
func (e *Engine) LinAlg() engine.LinAlg {
	return e
}

// Math returns the generic math capability group.
func (e *Engine) Math() engine.Math {
	return e
}
