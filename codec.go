// Package pack converts fixed-layout values to and from flat byte
// sequences under an explicitly chosen byte order.
//
// A Codec describes the layout of one Go type. Scalar codecs (U8 through
// F64, Bool) are the leaves; Array and the TupleN constructors compose
// them into larger layouts by encoding their elements one after the other
// in declaration order with no padding, alignment or length prefix. The
// layout of a value is fully determined by its codec, so its width is
// known before any byte is read or written.
//
//	c := pack.Tuple3Of(pack.U8, pack.U8, pack.Array(pack.U16, 2))
//	err := pack.PackBE(w, c, pack.NewTuple3(uint8(1), uint8(2), []uint16{3, 4}))
//	// w now holds 01 02 00 03 00 04
//
// Codecs hold no state between calls. Calls on distinct readers or
// writers may run concurrently; calls sharing a reader or writer must be
// serialized by the caller.
package pack

import (
	"bytes"
	"fmt"
	"io"
)

// Codec packs and unpacks values of type T with a fixed byte width.
type Codec[T any] interface {
	// Size is the number of bytes Pack writes and Unpack reads.
	Size() int

	// Pack writes the canonical representation of v to w.
	Pack(w io.Writer, order Order, v T) error

	// Unpack reads exactly Size bytes from r and decodes them. If it
	// fails, the returned value is the zero value of T.
	Unpack(r io.Reader, order Order) (T, error)
}

// bulkCodec is implemented by codecs that can handle a run of values with
// a single read or write.
type bulkCodec[T any] interface {
	packAll(w io.Writer, order Order, vs []T) error
	unpackInto(r io.Reader, order Order, dst []T) error
}

// Pack writes v to w using c and the given byte order.
func Pack[T any](w io.Writer, order Order, c Codec[T], v T) error {
	order.validate()
	return c.Pack(w, order, v)
}

// Unpack reads a value from r using c and the given byte order.
func Unpack[T any](r io.Reader, order Order, c Codec[T]) (T, error) {
	order.validate()
	return c.Unpack(r, order)
}

func PackBE[T any](w io.Writer, c Codec[T], v T) error {
	return Pack(w, BigEndian, c, v)
}

func PackLE[T any](w io.Writer, c Codec[T], v T) error {
	return Pack(w, LittleEndian, c, v)
}

func UnpackBE[T any](r io.Reader, c Codec[T]) (T, error) {
	return Unpack(r, BigEndian, c)
}

func UnpackLE[T any](r io.Reader, c Codec[T]) (T, error) {
	return Unpack(r, LittleEndian, c)
}

// PackAll writes every element of vs in index order, without a length
// prefix. It stops at the first failure.
func PackAll[T any](w io.Writer, order Order, c Codec[T], vs []T) error {
	order.validate()
	if b, ok := c.(bulkCodec[T]); ok {
		return b.packAll(w, order, vs)
	}
	for i, v := range vs {
		err := c.Pack(w, order, v)
		if err != nil {
			return fmt.Errorf("[%v]: %w", i, err)
		}
	}
	return nil
}

// UnpackInto fills dst in index order with values read from r. It stops
// at the first failure, in which case the contents of dst are undefined.
func UnpackInto[T any](r io.Reader, order Order, c Codec[T], dst []T) error {
	order.validate()
	if b, ok := c.(bulkCodec[T]); ok {
		return b.unpackInto(r, order, dst)
	}
	for i := range dst {
		v, err := c.Unpack(r, order)
		if err != nil {
			if i > 0 {
				err = truncated(err)
			}
			return fmt.Errorf("[%v]: %w", i, err)
		}
		dst[i] = v
	}
	return nil
}

// Marshal returns the canonical representation of v.
func Marshal[T any](c Codec[T], order Order, v T) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(c.Size())
	err := Pack(&buf, order, c, v)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes data, which must be exactly c.Size() bytes long.
func Unmarshal[T any](c Codec[T], order Order, data []byte) (v T, err error) {
	r := bytes.NewReader(data)
	v, err = Unpack(r, order, c)
	if err != nil {
		return v, err
	}
	if r.Len() != 0 {
		var zero T
		return zero, fmt.Errorf("unmarshal %v: %w: %v bytes", nameOf(c), ErrTrailingData, r.Len())
	}
	return v, nil
}

func MarshalBE[T any](c Codec[T], v T) ([]byte, error) {
	return Marshal(c, BigEndian, v)
}

func MarshalLE[T any](c Codec[T], v T) ([]byte, error) {
	return Marshal(c, LittleEndian, v)
}

func UnmarshalBE[T any](c Codec[T], data []byte) (T, error) {
	return Unmarshal(c, BigEndian, data)
}

func UnmarshalLE[T any](c Codec[T], data []byte) (T, error) {
	return Unmarshal(c, LittleEndian, data)
}
