// Package pure implements the math engine in Go, operating directly on
// MemoryView buffers through the stride/offset addressing kernel.
package pure

import (
	"github.com/born-ml/ndarray/internal/engine"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Engine implements the Statistics, LinAlg and Math capability groups in Go.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	par parallel.Config
}

var _ engine.Engine = (*Engine)(nil)

// New creates a new pure Go engine.
func New() *Engine {
	return &Engine{
		par: parallel.DefaultConfig(),
	}
}

// Name returns the engine name.
func (e *Engine) Name() string {
	return "Pure Go"
}

// Type returns engine.Pure.
func (e *Engine) Type() engine.EngineType {
	return engine.Pure
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
