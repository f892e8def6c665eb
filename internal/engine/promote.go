package engine

import "github.com/born-ml/ndarray/internal/ndarray"

// Promote returns the result kind of a binary operation on kinds a and b.
//
// Rules:
//   - equal kinds are kept;
//   - float64 with anything gives float64;
//   - float32 with int8, int16 or float32 gives float32;
//   - float32 with int32 or int64 gives float64 (float32 cannot hold them exactly);
//   - two integer kinds give the wider one.
func Promote(a, b ndarray.DataType) ndarray.DataType {
	if a == b {
		return a
	}
	if a == ndarray.Float64 || b == ndarray.Float64 {
		return ndarray.Float64
	}
	if a == ndarray.Float32 || b == ndarray.Float32 {
		other := a
		if a == ndarray.Float32 {
			other = b
		}
		if other == ndarray.Int8 || other == ndarray.Int16 {
			return ndarray.Float32
		}
		return ndarray.Float64
	}
	// native codes of integer kinds grow with width
	if a > b {
		return a
	}
	return b
}
