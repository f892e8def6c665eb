package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrEngineNotFound is returned when no engine of the requested type is registered.
var ErrEngineNotFound = errors.New("engine: not found")

// Registry holds the engines available to a program and the default selection.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	engines map[EngineType]Engine
	def     EngineType
	hasDef  bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{engines: make(map[EngineType]Engine)}
}

// Register adds or replaces the engine for e.Type(). The first registered engine
// becomes the default until SetDefault is called.
func (r *Registry) Register(e Engine) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.engines[e.Type()] = e
	if !r.hasDef {
		r.def = e.Type()
		r.hasDef = true
	}
}

// Lookup returns the engine of type t.
func (r *Registry) Lookup(t EngineType) (Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.engines[t]
	if !ok {
		return nil, fmt.Errorf("%s: %w", t, ErrEngineNotFound)
	}
	return e, nil
}

// SetDefault selects the default engine. It must already be registered.
func (r *Registry) SetDefault(t EngineType) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.engines[t]; !ok {
		return fmt.Errorf("set default %s: %w", t, ErrEngineNotFound)
	}
	r.def = t
	r.hasDef = true
	return nil
}

// Default returns the default engine.
func (r *Registry) Default() (Engine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.hasDef {
		return nil, fmt.Errorf("no engines registered: %w", ErrEngineNotFound)
	}
	return r.engines[r.def], nil
}

// Engines returns the registered engines ordered by type.
func (r *Registry) Engines() []Engine {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Engine, 0, len(r.engines))
	for _, e := range r.engines {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type() < out[j].Type() })
	return out
}
