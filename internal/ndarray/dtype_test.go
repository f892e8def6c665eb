package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataType_NativeCodes(t *testing.T) {
	codes := map[DataType]int{Int8: 1, Int16: 2, Int32: 3, Int64: 4, Float32: 5, Float64: 6}
	for dt, code := range codes {
		assert.Equal(t, code, dt.NativeCode(), dt.String())
		got, err := DataTypeFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, dt, got)
	}

	_, err := DataTypeFromCode(0)
	assert.ErrorIs(t, err, ErrTypeNotDefined)
	_, err = DataTypeFromCode(7)
	assert.ErrorIs(t, err, ErrTypeNotDefined)
}

func TestDataType_Size(t *testing.T) {
	assert.Equal(t, 1, Int8.Size())
	assert.Equal(t, 2, Int16.Size())
	assert.Equal(t, 4, Int32.Size())
	assert.Equal(t, 8, Int64.Size())
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Float64.Size())
	assert.Panics(t, func() { DataType(42).Size() })
}

func TestDataTypeOf(t *testing.T) {
	assert.Equal(t, Int8, DataTypeOf[int8]())
	assert.Equal(t, Int16, DataTypeOf[int16]())
	assert.Equal(t, Int32, DataTypeOf[int32]())
	assert.Equal(t, Int64, DataTypeOf[int64]())
	assert.Equal(t, Float32, DataTypeOf[float32]())
	assert.Equal(t, Float64, DataTypeOf[float64]())
}

func TestToPrimitive(t *testing.T) {
	assert.Equal(t, int8(-3), ToPrimitive[int8](-3))
	assert.Equal(t, int16(300), ToPrimitive[int16](int64(300)))
	assert.Equal(t, int32(2), ToPrimitive[int32](2.9))
	assert.Equal(t, int64(7), ToPrimitive[int64](uint8(7)))
	assert.Equal(t, float32(1.5), ToPrimitive[float32](1.5))
	assert.Equal(t, float64(4), ToPrimitive[float64](int32(4)))
	assert.Panics(t, func() { ToPrimitive[float64]("1") })
}

func TestToPrimitiveType(t *testing.T) {
	for _, dt := range DataTypes {
		v := ToPrimitiveType(3, dt)
		assert.NotEqual(t, Zero(dt), v)
		switch dt {
		case Int8:
			assert.IsType(t, int8(0), v)
		case Int16:
			assert.IsType(t, int16(0), v)
		case Int32:
			assert.IsType(t, int32(0), v)
		case Int64:
			assert.IsType(t, int64(0), v)
		case Float32:
			assert.IsType(t, float32(0), v)
		case Float64:
			assert.IsType(t, float64(0), v)
		}
	}
	assert.PanicsWithValue(t, "to primitive: ndarray: type not defined (code 9)", func() {
		ToPrimitiveType(1, DataType(9))
	})
	assert.Panics(t, func() { Zero(DataType(0)) })
}

func TestParseDataType(t *testing.T) {
	for _, dt := range DataTypes {
		got, err := ParseDataType(dt.String())
		require.NoError(t, err)
		assert.Equal(t, dt, got)
	}

	_, err := ParseDataType("complex128")
	assert.ErrorIs(t, err, ErrTypeNotDefined)
}
