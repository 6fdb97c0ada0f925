package pack

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Packed[uint8]{}
	_ msgpack.CustomDecoder = (*Packed[uint8])(nil)
	_ cbor.Marshaler        = Packed[uint8]{}
	_ cbor.Unmarshaler      = (*Packed[uint8])(nil)
)

var errUnbound = errors.New("packed value has no codec")

// Packed binds a value to its codec and byte order so that it can be
// embedded in MessagePack or CBOR documents as a byte string holding its
// canonical representation. Decoding requires Codec and Order to be set
// beforehand, e.g. with Bind.
type Packed[T any] struct {
	Codec Codec[T]
	Order Order
	Value T
}

func Bind[T any](c Codec[T], order Order, v T) Packed[T] {
	return Packed[T]{Codec: c, Order: order, Value: v}
}

func (p Packed[T]) bytes() ([]byte, error) {
	if p.Codec == nil {
		return nil, errUnbound
	}
	return Marshal(p.Codec, p.Order, p.Value)
}

func (p *Packed[T]) set(data []byte) error {
	if p.Codec == nil {
		return errUnbound
	}
	v, err := Unmarshal(p.Codec, p.Order, data)
	if err != nil {
		return err
	}
	p.Value = v
	return nil
}

func (p Packed[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	data, err := p.bytes()
	if err != nil {
		return fmt.Errorf("encode msgpack: %w", err)
	}
	return enc.EncodeBytes(data)
}

func (p *Packed[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	data, err := dec.DecodeBytes()
	if err != nil {
		return fmt.Errorf("decode msgpack: %w", err)
	}
	return p.set(data)
}

func (p Packed[T]) MarshalCBOR() ([]byte, error) {
	data, err := p.bytes()
	if err != nil {
		return nil, fmt.Errorf("marshal cbor: %w", err)
	}
	return cbor.Marshal(data)
}

func (p *Packed[T]) UnmarshalCBOR(data []byte) error {
	var raw []byte
	err := cbor.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("unmarshal cbor: %w", err)
	}
	return p.set(raw)
}
