package pack

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

type Marshaler interface {
	Marshal(v interface{}) ([]byte, error)
}

type Unmarshaler interface {
	Unmarshal([]byte, interface{}) error
}

type Encoder interface {
	Encode(interface{}) error
}

type Decoder interface {
	Decode(interface{}) error
}

type CreateEncoder interface {
	CreateEncoder(io.Writer) Encoder
}

type CreateDecoder interface {
	CreateDecoder(io.Reader) Decoder
}

type Serializer interface {
	CreateEncoder
	Marshaler
}

type Deserializer interface {
	CreateDecoder
	Unmarshaler
}

type SerDe interface {
	Serializer
	Deserializer
}

var _ SerDe = (*Serde[uint8])(nil)

// Serde adapts a codec and a byte order to the SerDe interfaces. Values
// passed to Marshal and Encode must be a T or a *T; values passed to
// Unmarshal and Decode must be a *T.
type Serde[T any] struct {
	name  string
	codec Codec[T]
	order Order
}

func NewSerde[T any](name string, codec Codec[T], order Order) *Serde[T] {
	order.validate()
	return &Serde[T]{
		name:  name,
		codec: codec,
		order: order,
	}
}

func (s *Serde[T]) value(v interface{}) (T, error) {
	switch v := v.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("[%v]: cannot pack %T with %v", s.name, v, nameOf(s.codec))
}

func (s *Serde[T]) target(v interface{}) (*T, error) {
	p, ok := v.(*T)
	if !ok || (p == nil) {
		return nil, fmt.Errorf("[%v]: cannot unpack %v into %T", s.name, nameOf(s.codec), v)
	}
	return p, nil
}

func (s *Serde[T]) Marshal(v interface{}) ([]byte, error) {
	val, err := s.value(v)
	if err != nil {
		return nil, err
	}
	return Marshal(s.codec, s.order, val)
}

func (s *Serde[T]) Unmarshal(data []byte, v interface{}) error {
	p, err := s.target(v)
	if err != nil {
		return err
	}
	val, err := Unmarshal(s.codec, s.order, data)
	if err != nil {
		return err
	}
	*p = val
	return nil
}

func (s *Serde[T]) CreateEncoder(w io.Writer) Encoder {
	return &streamEncoder[T]{serde: s, w: w}
}

func (s *Serde[T]) CreateDecoder(r io.Reader) Decoder {
	return &streamDecoder[T]{serde: s, r: r}
}

// streamEncoder packs one value per Encode call onto a writer owned by
// the caller.
type streamEncoder[T any] struct {
	serde *Serde[T]
	w     io.Writer
}

func (e *streamEncoder[T]) Encode(v interface{}) error {
	val, err := e.serde.value(v)
	if err != nil {
		return err
	}

	// Stage the value so that a failing element never leaves a partial
	// value on the stream.
	var buf bytes.Buffer
	buf.Grow(e.serde.codec.Size())
	err = e.serde.codec.Pack(&buf, e.serde.order, val)
	if err != nil {
		return err
	}
	return writeFull(e.w, nameOf(e.serde.codec), buf.Bytes())
}

// streamDecoder unpacks one value per Decode call from a reader owned by
// the caller. io.EOF is returned only if the stream ends exactly on a
// value boundary.
type streamDecoder[T any] struct {
	serde *Serde[T]
	r     io.Reader
}

func (d *streamDecoder[T]) Decode(v interface{}) error {
	p, err := d.serde.target(v)
	if err != nil {
		return err
	}

	val, err := d.serde.codec.Unpack(d.r, d.serde.order)
	if err != nil {
		if errors.Is(err, io.EOF) {
			log.Debugf("[%v]: end of stream", d.serde.name)
			return io.EOF
		}
		log.Debugf("[%v]: Error: %v", d.serde.name, err)
		return err
	}
	*p = val
	return nil
}
