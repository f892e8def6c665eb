package ndarray

import "fmt"

// ToPrimitive converts a Go numeric value to the element kind T.
// It panics with ErrTypeNotDefined if v is not numeric.
func ToPrimitive[T Number](v any) T {
	switch x := v.(type) {
	case int:
		return T(x)
	case int8:
		return T(x)
	case int16:
		return T(x)
	case int32:
		return T(x)
	case int64:
		return T(x)
	case uint:
		return T(x)
	case uint8:
		return T(x)
	case uint16:
		return T(x)
	case uint32:
		return T(x)
	case uint64:
		return T(x)
	case float32:
		return T(x)
	case float64:
		return T(x)
	default:
		panic(fmt.Sprintf("to primitive: %v (%T)", ErrTypeNotDefined, v))
	}
}

// ToPrimitiveType converts a Go numeric value to the kind named by dtype.
// The returned value's dynamic type is the Go type of dtype.
func ToPrimitiveType(v any, dtype DataType) any {
	switch dtype {
	case Int8:
		return ToPrimitive[int8](v)
	case Int16:
		return ToPrimitive[int16](v)
	case Int32:
		return ToPrimitive[int32](v)
	case Int64:
		return ToPrimitive[int64](v)
	case Float32:
		return ToPrimitive[float32](v)
	case Float64:
		return ToPrimitive[float64](v)
	default:
		panic(fmt.Sprintf("to primitive: %v (code %d)", ErrTypeNotDefined, int(dtype)))
	}
}

// Zero returns the zero value of dtype.
func Zero(dtype DataType) any {
	switch dtype {
	case Int8:
		return int8(0)
	case Int16:
		return int16(0)
	case Int32:
		return int32(0)
	case Int64:
		return int64(0)
	case Float32:
		return float32(0)
	case Float64:
		return float64(0)
	default:
		panic(fmt.Sprintf("zero: %v (code %d)", ErrTypeNotDefined, int(dtype)))
	}
}

