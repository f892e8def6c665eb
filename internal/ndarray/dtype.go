// Package ndarray provides the n-dimensional array data model: typed memory views,
// the closed element-type registry, rank tags and strided views over shared storage.
package ndarray

import "fmt"

// Number is the closed set of element kinds an Ndarray can hold.
// The constraint is exact (no ~) so every instantiation maps to a DataType.
type Number interface {
	int8 | int16 | int32 | int64 | float32 | float64
}

// DataType identifies an element kind. Its value is the stable native code shared
// with the compiled native library, so the numbering must never change.
type DataType int

// Supported data types, numbered by native code.
const (
	Int8    DataType = 1 // Byte
	Int16   DataType = 2 // Short
	Int32   DataType = 3 // Int
	Int64   DataType = 4 // Long
	Float32 DataType = 5 // Float
	Float64 DataType = 6 // Double
)

// DataTypes lists the closed set in native-code order.
var DataTypes = []DataType{Int8, Int16, Int32, Int64, Float32, Float64}

// DataTypeFromCode returns the DataType for a native code.
func DataTypeFromCode(code int) (DataType, error) {
	dt := DataType(code)
	if !dt.Valid() {
		return 0, fmt.Errorf("native code %d: %w", code, ErrTypeNotDefined)
	}
	return dt, nil
}

// ParseDataType returns the DataType named name ("int8" ... "float64").
func ParseDataType(name string) (DataType, error) {
	for _, dt := range DataTypes {
		if dt.String() == name {
			return dt, nil
		}
	}
	return 0, fmt.Errorf("data type %q: %w", name, ErrTypeNotDefined)
}

// NativeCode returns the code used for runtime dispatch and across the native boundary.
func (dt DataType) NativeCode() int {
	return int(dt)
}

// Valid reports whether dt belongs to the closed set.
func (dt DataType) Valid() bool {
	return dt >= Int8 && dt <= Float64
}

// Size returns the element width in bytes.
func (dt DataType) Size() int {
	switch dt {
	case Int8:
		return 1
	case Int16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	default:
		panic(fmt.Sprintf("size: %v (code %d)", ErrTypeNotDefined, int(dt)))
	}
}

// IsFloat reports whether dt is a floating-point kind.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// IsInteger reports whether dt is a signed integer kind.
func (dt DataType) IsInteger() bool {
	return dt >= Int8 && dt <= Int64
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return fmt.Sprintf("dtype(%d)", int(dt))
	}
}

// DataTypeOf returns the DataType of the element kind T.
func DataTypeOf[T Number]() DataType {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic(ErrTypeNotDefined)
	}
}
