package pack

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTupleComposite(t *testing.T) {
	c := Tuple3Of(U8, U8, Array(U16, 2))
	v := NewTuple3(uint8(1), uint8(2), []uint16{3, 4})

	var buf bytes.Buffer
	require.NoError(t, PackBE(&buf, c, v))
	assert.Equal(t, []byte{0x01, 0x02, 0x00, 0x03, 0x00, 0x04}, buf.Bytes())

	got, err := UnpackBE(&buf, c)
	require.NoError(t, err)
	assert.Equal(t, v, got)
	assert.Zero(t, buf.Len())

	buf.Reset()
	require.NoError(t, PackLE(&buf, c, v))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x00, 0x04, 0x00}, buf.Bytes())

	got, err = UnpackLE(&buf, c)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestTupleString(t *testing.T) {
	c := Tuple3Of(U8, Bool, Array(U16, 2))
	assert.Equal(t, "(u8, bool, [2]u16)", c.String())
	assert.Equal(t, "[1](i8)", Array(Tuple1Of(I8), 1).String())
	assert.Equal(t, "()", nameOf(Unit))
}

func TestTupleWidthAdditivity(t *testing.T) {
	tests := []struct {
		arity int
		size  int
		got   int
	}{
		{1, 1, Tuple1Of(U8).Size()},
		{2, 3, Tuple2Of(U8, U16).Size()},
		{3, 7, Tuple3Of(U8, U16, U32).Size()},
		{4, 15, Tuple4Of(U8, U16, U32, U64).Size()},
		{5, 31, Tuple5Of(U8, U16, U32, U64, U128).Size()},
		{6, 32, Tuple6Of(U8, U16, U32, U64, U128, I8).Size()},
		{7, 34, Tuple7Of(U8, U16, U32, U64, U128, I8, I16).Size()},
		{8, 38, Tuple8Of(U8, U16, U32, U64, U128, I8, I16, I32).Size()},
		{9, 46, Tuple9Of(U8, U16, U32, U64, U128, I8, I16, I32, I64).Size()},
		{10, 62, Tuple10Of(U8, U16, U32, U64, U128, I8, I16, I32, I64, I128).Size()},
		{11, 66, Tuple11Of(U8, U16, U32, U64, U128, I8, I16, I32, I64, I128, F32).Size()},
		{12, 74, Tuple12Of(U8, U16, U32, U64, U128, I8, I16, I32, I64, I128, F32, F64).Size()},
	}

	for _, test := range tests {
		assert.Equal(t, test.size, test.got, "arity %v", test.arity)
	}

	assert.Equal(t, 0, Unit.Size())
	assert.Equal(t, 2+4*3, Tuple2Of(Array(U8, 2), Array(Tuple2Of(U16, U16), 3)).Size())
}

func TestTupleRoundTripAllArities(t *testing.T) {
	roundTrip(t, Tuple1Of(U8), NewTuple1(uint8(1)))
	roundTrip(t, Tuple2Of(U8, I16), NewTuple2(uint8(1), int16(-2)))
	roundTrip(t, Tuple3Of(U8, I16, U32), NewTuple3(uint8(1), int16(-2), uint32(3)))
	roundTrip(t, Tuple4Of(U8, I16, U32, I64),
		NewTuple4(uint8(1), int16(-2), uint32(3), int64(-4)))
	roundTrip(t, Tuple5Of(U8, I16, U32, I64, Bool),
		NewTuple5(uint8(1), int16(-2), uint32(3), int64(-4), true))
	roundTrip(t, Tuple6Of(U8, I16, U32, I64, Bool, F32),
		NewTuple6(uint8(1), int16(-2), uint32(3), int64(-4), true, float32(6.5)))
	roundTrip(t, Tuple7Of(U8, I16, U32, I64, Bool, F32, F64),
		NewTuple7(uint8(1), int16(-2), uint32(3), int64(-4), true, float32(6.5), 7.25))
	roundTrip(t, Tuple8Of(U8, I16, U32, I64, Bool, F32, F64, U128),
		NewTuple8(uint8(1), int16(-2), uint32(3), int64(-4), true, float32(6.5), 7.25, MaxUint128))
	roundTrip(t, Tuple9Of(U8, I16, U32, I64, Bool, F32, F64, U128, I128),
		NewTuple9(uint8(1), int16(-2), uint32(3), int64(-4), true, float32(6.5), 7.25, MaxUint128, MinInt128))
	roundTrip(t, Tuple10Of(U8, I16, U32, I64, Bool, F32, F64, U128, I128, I8),
		NewTuple10(uint8(1), int16(-2), uint32(3), int64(-4), true, float32(6.5), 7.25, MaxUint128, MinInt128, int8(-10)))
	roundTrip(t, Tuple11Of(U8, I16, U32, I64, Bool, F32, F64, U128, I128, I8, U16),
		NewTuple11(uint8(1), int16(-2), uint32(3), int64(-4), true, float32(6.5), 7.25, MaxUint128, MinInt128, int8(-10), uint16(11)))
	roundTrip(t, Tuple12Of(U8, I16, U32, I64, Bool, F32, F64, U128, I128, I8, U16, Array(U8, 2)),
		NewTuple12(uint8(1), int16(-2), uint32(3), int64(-4), true, float32(6.5), 7.25, MaxUint128, MinInt128, int8(-10), uint16(11), []uint8{12, 12}))
}

func TestTupleFieldOrder(t *testing.T) {
	c := Tuple4Of(U8, U16, U32, Bool)
	v := NewTuple4(uint8(0xAA), uint16(0x0102), uint32(0x03040506), true)

	be, err := MarshalBE(c, v)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x01}, be)

	le, err := MarshalLE(c, v)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0x02, 0x01, 0x06, 0x05, 0x04, 0x03, 0x01}, le)
}

func TestTupleFailFast(t *testing.T) {
	c := Tuple3Of(U16, Bool, U32)

	r := &failingReader{data: []byte{0x00, 0x01, 0x02, 0xFF}, err: errBoom}
	v, err := UnpackBE(r, c)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "V2: ")
	assert.Zero(t, v)
	// V3 never read its bytes.
	assert.Equal(t, []byte{0xFF}, r.data)

	v, err = UnpackBE(bytes.NewReader([]byte{0x00, 0x01, 0x01, 0x00}), c)
	assert.ErrorIs(t, err, ErrShortRead)
	assert.ErrorContains(t, err, "V3: ")
	assert.Zero(t, v)
}

func TestTupleWriteFailure(t *testing.T) {
	c := Tuple3Of(U16, U16, U16)
	w := &failingWriter{limit: 2}
	err := PackBE(w, c, NewTuple3[uint16, uint16, uint16](1, 2, 3))
	assert.ErrorIs(t, err, ErrWrite)
	assert.ErrorContains(t, err, "V2: ")
	assert.Equal(t, 2, w.writes)
	assert.Equal(t, []byte{0x00, 0x01}, w.buf.Bytes())
}

func TestTupleNilCodecPanics(t *testing.T) {
	assert.Panics(t, func() { Tuple2Of[uint8, uint8](U8, nil) })
}

func TestUnit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PackBE(&buf, Unit, struct{}{}))
	assert.Zero(t, buf.Len())

	_, err := UnpackLE(&failingReader{err: errBoom}, Unit)
	require.NoError(t, err)

	c := Tuple3Of(U8, Unit, U8)
	data, err := MarshalBE(c, NewTuple3(uint8(1), struct{}{}, uint8(2)))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, data)
}
