// Package engine defines the math capability contracts shared by every backend.
//
// A backend bundles three capability groups, Statistics, LinAlg and Math, behind
// the Engine interface. Components that need math depend on these interfaces only;
// the concrete backend (pure Go or native) is chosen when the program is composed.
package engine

import (
	"fmt"
	"strings"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Statistics is the statistics capability group.
type Statistics interface {
	// Median returns the median of all elements. ok is false for an empty array.
	Median(a ndarray.Array) (median float64, ok bool, err error)

	// Average returns the weighted mean of a. Nil weights, typed or not, mean equal weights.
	// weights must have the shape of a.
	Average(a, weights ndarray.Array) (float64, error)

	// Mean returns the arithmetic mean of all elements, promoted to float64.
	Mean(a ndarray.Array) (float64, error)

	// MeanAlong returns the mean along axis; the result has rank a.Rank()-1.
	MeanAlong(a ndarray.Array, axis int) (*ndarray.Ndarray[float64, ndarray.DN], error)

	// MeanD2 reduces a matrix along axis to a vector.
	MeanD2(a ndarray.MultiArray[ndarray.D2], axis int) (*ndarray.Ndarray[float64, ndarray.D1], error)

	// MeanD3 reduces a 3-D array along axis to a matrix.
	MeanD3(a ndarray.MultiArray[ndarray.D3], axis int) (*ndarray.Ndarray[float64, ndarray.D2], error)

	// MeanD4 reduces a 4-D array along axis to a 3-D array.
	MeanD4(a ndarray.MultiArray[ndarray.D4], axis int) (*ndarray.Ndarray[float64, ndarray.D3], error)

	// MeanDN reduces a 5-D dynamic-rank array along axis to a 4-D array.
	MeanDN(a ndarray.MultiArray[ndarray.DN], axis int) (*ndarray.Ndarray[float64, ndarray.D4], error)

	// Abs returns the elementwise absolute value with the same kind, shape and tag.
	Abs(a ndarray.Array) (ndarray.Array, error)
}

// LinAlg is the linear algebra capability group.
type LinAlg interface {
	// Dot returns the matrix product of two 2-D arrays.
	Dot(a, b ndarray.Array) (ndarray.Array, error)

	// DotMV returns the product of a 2-D matrix and a 1-D vector.
	DotMV(a, b ndarray.Array) (ndarray.Array, error)

	// DotVV returns the inner product of two vectors, promoted to float64.
	DotVV(a, b ndarray.Array) (float64, error)
}

// Math is the generic math capability group.
type Math interface {
	// ArgMax returns the element-order index of the first maximum.
	ArgMax(a ndarray.Array) (int, error)

	// ArgMin returns the element-order index of the first minimum.
	ArgMin(a ndarray.Array) (int, error)

	// Sum returns the sum of all elements, promoted to float64.
	Sum(a ndarray.Array) (float64, error)

	// CumSum returns the running sum of the flattened array with the same kind.
	CumSum(a ndarray.Array) (ndarray.Array, error)

	// Exp returns e**x elementwise as float64 with the shape and tag of a.
	Exp(a ndarray.Array) (ndarray.Array, error)
}

// Engine bundles the three capability groups of one backend.
type Engine interface {
	Name() string
	Type() EngineType
	Statistics() Statistics
	LinAlg() LinAlg
	Math() Math
}

// EngineType identifies a backend implementation.
type EngineType int

// Known backends.
const (
	Pure EngineType = iota
	Native
)

// String returns the backend name used in configuration and logs.
func (t EngineType) String() string {
	switch t {
	case Pure:
		return "pure"
	case Native:
		return "native"
	default:
		return fmt.Sprintf("engine(%d)", int(t))
	}
}

// ParseEngineType parses "pure" or "native".
func ParseEngineType(s string) (EngineType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pure", "go":
		return Pure, nil
	case "native", "c":
		return Native, nil
	default:
		return 0, fmt.Errorf("unknown engine %q: %w", s, ErrEngineNotFound)
	}
}
