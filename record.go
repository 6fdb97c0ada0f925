package pack

import (
	"fmt"
	"io"
)

// Packer is implemented by types that write their own fixed-layout
// representation.
type Packer interface {
	PackTo(w io.Writer, order Order) error
}

// Unpacker is implemented by types that fill themselves from their
// fixed-layout representation. UnpackFrom must consume exactly
// PackedSize bytes on success.
type Unpacker interface {
	UnpackFrom(r io.Reader, order Order) error
}

// Sizer reports the fixed width of a type's representation.
type Sizer interface {
	PackedSize() int
}

// Record constrains *T to types that can pack, unpack and size
// themselves.
type Record[T any] interface {
	*T
	Packer
	Unpacker
	Sizer
}

type selfCodec[T any, PT Record[T]] struct{}

// Self returns a codec that delegates to the methods of *T. It lets
// user-defined record types take part in arrays and tuples.
func Self[T any, PT Record[T]]() Codec[T] {
	return selfCodec[T, PT]{}
}

func (selfCodec[T, PT]) String() string {
	var v T
	return fmt.Sprintf("%T", v)
}

func (selfCodec[T, PT]) Size() int {
	var v T
	return PT(&v).PackedSize()
}

func (selfCodec[T, PT]) Pack(w io.Writer, order Order, v T) error {
	return PT(&v).PackTo(w, order)
}

func (selfCodec[T, PT]) Unpack(r io.Reader, order Order) (T, error) {
	var v T
	err := PT(&v).UnpackFrom(r, order)
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
