package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspose_AliasesBuffer(t *testing.T) {
	m := Matrix([][]float64{{1, 2, 3}, {4, 5, 6}})
	tr := m.Transpose()

	assert.Equal(t, Shape{3, 2}, tr.Shape())
	assert.Equal(t, []int{1, 3}, tr.Strides())
	assert.False(t, tr.IsContiguous())
	assert.Same(t, m.Data(), tr.Data())

	tr.Set(-5, 2, 1)
	assert.Equal(t, float64(-5), m.At(1, 2))

	m.Set(42, 0, 1)
	assert.Equal(t, float64(42), tr.At(1, 0))
}

func TestTranspose_Axes(t *testing.T) {
	a := D3Of(2, 3, 4, func(i, j, k int) int32 { return int32(i*100 + j*10 + k) })
	p := a.Transpose(1, 2, 0)
	assert.Equal(t, Shape{3, 4, 2}, p.Shape())
	assert.Equal(t, int32(123), p.At(2, 3, 1))

	assert.Panics(t, func() { a.Transpose(0, 0, 1) })
	assert.Panics(t, func() { a.Transpose(0, 1) })
}

func TestSlice_AliasesBuffer(t *testing.T) {
	m := D2Of(4, 5, func(i, j int) int16 { return int16(i*5 + j) })
	s, err := m.Slice(1, 1, 5, 2)
	require.NoError(t, err)

	assert.Equal(t, Shape{4, 2}, s.Shape())
	assert.Equal(t, []int16{1, 3, 6, 8, 11, 13, 16, 18}, s.Values())

	s.Set(-1, 3, 1)
	assert.Equal(t, int16(-1), m.At(3, 3))

	rows, err := m.Slice(0, 2, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, rows.Offset())
	assert.Equal(t, int16(10), rows.At(0, 0))

	empty, err := m.Slice(0, 2, 2, 1)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = m.Slice(2, 0, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidAxis)
	_, err = m.Slice(0, 0, 9, 1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = m.Slice(0, 0, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidStrides)
}

func TestSelect(t *testing.T) {
	m := Matrix([][]float32{{1, 2, 3}, {4, 5, 6}})

	row, err := Select[float32, D2, D1](m, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{4, 5, 6}, row.Values())

	col, err := Select[float32, D2, D1](m, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{3, 6}, col.Values())

	col.Set(60, 1)
	assert.Equal(t, float32(60), m.At(1, 2))

	_, err = Select[float32, D2, D2](m, 0, 0)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = Select[float32, D1, D1](Vector[float32](1), 0, 0)
	assert.ErrorIs(t, err, ErrInvalidAxis)
	_, err = Select[float32, D2, D1](m, 0, 2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestReshape(t *testing.T) {
	v := Arange[int64](6)
	m, err := Reshape[D2](v, 2, 3)
	require.NoError(t, err)
	assert.Same(t, v.Data(), m.Data(), "contiguous reshape is a view")
	assert.Equal(t, int64(5), m.At(1, 2))

	tr := m.Transpose()
	flat, err := Reshape[D1](tr, 6)
	require.NoError(t, err)
	assert.NotSame(t, v.Data(), flat.Data(), "strided reshape copies")
	assert.Equal(t, []int64{0, 3, 1, 4, 2, 5}, flat.Values())

	_, err = Reshape[D2](v, 4, 2)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = Reshape[D3](v, 2, 3)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestFlatten(t *testing.T) {
	m := Matrix([][]float32{{1, 2, 3}, {4, 5, 6}})

	var flat *D1Array[float32] = m.Flatten()
	assert.Same(t, m.Data(), flat.Data())
	assert.Equal(t, Shape{6}, flat.Shape())

	assert.Equal(t, []float32{1, 4, 2, 5, 3, 6}, m.Transpose().Flatten().Values())
}

func TestRetagAndAs(t *testing.T) {
	m := Matrix([][]int8{{1, 2}, {3, 4}})

	dn, err := Retag[DN](m)
	require.NoError(t, err)
	assert.Equal(t, 2, dn.Dim().Rank())
	assert.Same(t, m.Data(), dn.Data())

	back, err := As[int8, D2](dn)
	require.NoError(t, err)
	assert.Equal(t, m.Values(), back.Values())

	same, err := As[int8, D2](m)
	require.NoError(t, err)
	assert.Same(t, m, same)

	_, err = As[int16, D2](m)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	_, err = As[int8, D3](m)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCopyAndContiguous(t *testing.T) {
	m := Matrix([][]float64{{1, 2}, {3, 4}})
	assert.Same(t, m, m.Contiguous())

	tr := m.Transpose()
	c := tr.Contiguous()
	assert.True(t, c.IsContiguous())
	assert.NotSame(t, m.Data(), c.Data())
	assert.Equal(t, []float64{1, 3, 2, 4}, c.Values())

	c.Set(100, 0, 0)
	assert.Equal(t, float64(1), m.At(0, 0))
}

func TestOffsets_ElementOrder(t *testing.T) {
	m := Matrix([][]int32{{1, 2, 3}, {4, 5, 6}})
	var offs []int
	for i, off := range Offsets(m.Transpose()) {
		assert.Equal(t, len(offs), i)
		offs = append(offs, off)
	}
	assert.Equal(t, []int{0, 3, 1, 4, 2, 5}, offs)

	var vals []int32
	for _, v := range m.All() {
		vals = append(vals, v)
		if len(vals) == 2 {
			break
		}
	}
	assert.Equal(t, []int32{1, 2}, vals)
}

func TestBuffer(t *testing.T) {
	var a Array = Vector[float32](1, 2)
	assert.Equal(t, []float32{1, 2}, Buffer[float32](a))
	assert.Panics(t, func() { Buffer[float64](a) })
}
