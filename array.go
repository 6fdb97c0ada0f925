package pack

import (
	"fmt"
	"io"
)

// ArrayCodec packs exactly n elements of one type back to back. Values
// are represented as slices whose length must equal n.
type ArrayCodec[T any] struct {
	elem Codec[T]
	n    int
}

// Array returns a codec for n consecutive elements encoded by elem. It
// panics if elem is nil or n is negative.
func Array[T any](elem Codec[T], n int) *ArrayCodec[T] {
	if elem == nil {
		panic("pack: nil array element codec")
	}
	if n < 0 {
		panic(fmt.Sprintf("pack: negative array length %v", n))
	}

	return &ArrayCodec[T]{elem: elem, n: n}
}

func (c *ArrayCodec[T]) Len() int {
	return c.n
}

func (c *ArrayCodec[T]) Elem() Codec[T] {
	return c.elem
}

func (c *ArrayCodec[T]) String() string {
	return fmt.Sprintf("[%v]%v", c.n, nameOf(c.elem))
}

func (c *ArrayCodec[T]) Size() int {
	return c.n * c.elem.Size()
}

func (c *ArrayCodec[T]) Pack(w io.Writer, order Order, v []T) error {
	if len(v) != c.n {
		return &Error{
			Op:   "pack",
			Type: c.String(),
			Kind: ErrLength,
			Err:  fmt.Errorf("got %v elements", len(v)),
		}
	}
	return PackAll(w, order, c.elem, v)
}

// Unpack decodes all n elements in index order. On failure no slice is
// returned.
func (c *ArrayCodec[T]) Unpack(r io.Reader, order Order) ([]T, error) {
	v := make([]T, c.n)
	err := UnpackInto(r, order, c.elem, v)
	if err != nil {
		return nil, err
	}
	return v, nil
}
