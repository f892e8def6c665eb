package ndarray

import "errors"

// Sentinel errors of the array data model. Callers match them with errors.Is;
// operations add context with fmt.Errorf("op: %w", ErrX).
var (
	// ErrInvalidShape is returned for an empty shape or a negative extent.
	ErrInvalidShape = errors.New("ndarray: invalid shape")

	// ErrDimensionMismatch is returned when a dimension tag, shape and strides disagree on rank.
	ErrDimensionMismatch = errors.New("ndarray: dimension doesn't match the size of the shape")

	// ErrInvalidStrides is returned for negative strides.
	ErrInvalidStrides = errors.New("ndarray: invalid strides")

	// ErrOutOfBounds is returned when a view addresses memory outside its backing buffer.
	ErrOutOfBounds = errors.New("ndarray: view exceeds buffer capacity")

	// ErrShapeMismatch is returned when operand shapes are incompatible for an operation.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrInvalidAxis is returned for an axis outside [0, rank) or an axis reduction
	// that would produce a rank-0 result.
	ErrInvalidAxis = errors.New("ndarray: invalid axis")

	// ErrEmptyArray is returned by operations that need at least one element.
	ErrEmptyArray = errors.New("ndarray: empty array")

	// ErrTypeMismatch is returned when a type-erased array is recovered as the wrong kind.
	ErrTypeMismatch = errors.New("ndarray: element type mismatch")

	// ErrTypeNotDefined signals a DataType outside the closed set. It is a defect,
	// so it is raised with panic rather than returned.
	ErrTypeNotDefined = errors.New("ndarray: type not defined")
)
