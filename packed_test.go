package pack

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

type envelope struct {
	Name   string                       `msgpack:"name" cbor:"name"`
	Header Packed[header]               `msgpack:"header" cbor:"header"`
	Point  Packed[Tuple2[int16, int16]] `msgpack:"point" cbor:"point"`
}

func newEnvelope() envelope {
	return envelope{
		Header: Bind(Self[header](), BigEndian, header{}),
		Point:  Bind(Tuple2Of(I16, I16), LittleEndian, Tuple2[int16, int16]{}),
	}
}

func TestPackedMsgpack(t *testing.T) {
	in := newEnvelope()
	in.Name = "test"
	in.Header.Value = header{ID: 1, Seq: 2, End: true}
	in.Point.Value = NewTuple2[int16, int16](-1, 2)

	data, err := msgpack.Marshal(in)
	require.NoError(t, err)

	out := newEnvelope()
	require.NoError(t, msgpack.Unmarshal(data, &out))
	assert.Equal(t, "test", out.Name)
	assert.Equal(t, in.Header.Value, out.Header.Value)
	assert.Equal(t, in.Point.Value, out.Point.Value)
}

func TestPackedMsgpackBytes(t *testing.T) {
	data, err := msgpack.Marshal(Bind(U16, BigEndian, 0x0102))
	require.NoError(t, err)

	var raw []byte
	require.NoError(t, msgpack.Unmarshal(data, &raw))
	assert.Equal(t, []byte{0x01, 0x02}, raw)
}

func TestPackedCBOR(t *testing.T) {
	in := newEnvelope()
	in.Name = "test"
	in.Header.Value = header{ID: 3, Seq: 4}
	in.Point.Value = NewTuple2[int16, int16](5, -6)

	data, err := cbor.Marshal(in)
	require.NoError(t, err)

	out := newEnvelope()
	require.NoError(t, cbor.Unmarshal(data, &out))
	assert.Equal(t, "test", out.Name)
	assert.Equal(t, in.Header.Value, out.Header.Value)
	assert.Equal(t, in.Point.Value, out.Point.Value)

	data, err = cbor.Marshal(Bind(U32, LittleEndian, 1))
	require.NoError(t, err)
	var raw []byte
	require.NoError(t, cbor.Unmarshal(data, &raw))
	assert.Equal(t, []byte{1, 0, 0, 0}, raw)
}

func TestPackedUnbound(t *testing.T) {
	_, err := msgpack.Marshal(Packed[uint8]{})
	assert.ErrorContains(t, err, errUnbound.Error())

	data, err := msgpack.Marshal([]byte{1})
	require.NoError(t, err)
	var p Packed[uint8]
	assert.ErrorContains(t, msgpack.Unmarshal(data, &p), errUnbound.Error())

	_, err = cbor.Marshal(Packed[uint8]{})
	assert.ErrorContains(t, err, errUnbound.Error())
}

func TestPackedWrongLength(t *testing.T) {
	data, err := cbor.Marshal([]byte{1, 2, 3})
	require.NoError(t, err)

	p := Bind(U16, BigEndian, 0)
	assert.ErrorContains(t, cbor.Unmarshal(data, &p), ErrTrailingData.Error())
}
