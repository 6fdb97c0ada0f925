package pack

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/constraints"
)

// maxScalarSize is the width of the widest scalar, the 128-bit integers.
const maxScalarSize = 16

// Scalar is the codec for a single primitive value of fixed width.
type Scalar[T any] struct {
	name string
	size int
	put  func(b []byte, order Order, v T)
	get  func(b []byte, order Order) (T, error)
}

var (
	U8   = integer[uint8]("u8", 1)
	U16  = integer[uint16]("u16", 2)
	U32  = integer[uint32]("u32", 4)
	U64  = integer[uint64]("u64", 8)
	U128 = &Scalar[Uint128]{name: "u128", size: 16, put: putUint128, get: getUint128}

	I8   = integer[int8]("i8", 1)
	I16  = integer[int16]("i16", 2)
	I32  = integer[int32]("i32", 4)
	I64  = integer[int64]("i64", 8)
	I128 = &Scalar[Int128]{name: "i128", size: 16, put: putInt128, get: getInt128}

	F32 = &Scalar[float32]{
		name: "f32",
		size: 4,
		put: func(b []byte, order Order, v float32) {
			order.byteOrder().PutUint32(b, math.Float32bits(v))
		},
		get: func(b []byte, order Order) (float32, error) {
			return math.Float32frombits(order.byteOrder().Uint32(b)), nil
		},
	}
	F64 = &Scalar[float64]{
		name: "f64",
		size: 8,
		put: func(b []byte, order Order, v float64) {
			order.byteOrder().PutUint64(b, math.Float64bits(v))
		},
		get: func(b []byte, order Order) (float64, error) {
			return math.Float64frombits(order.byteOrder().Uint64(b)), nil
		},
	}

	// Bool encodes false as 0x00 and true as 0x01. Decoding any other
	// byte fails with ErrInvalid.
	Bool = &Scalar[bool]{name: "bool", size: 1, put: putBool, get: getBool}

	// LenientBool encodes like Bool but decodes every non-zero byte as
	// true.
	LenientBool = &Scalar[bool]{
		name: "bool",
		size: 1,
		put:  putBool,
		get: func(b []byte, _ Order) (bool, error) {
			return b[0] != 0, nil
		},
	}
)

func integer[T constraints.Integer](name string, size int) *Scalar[T] {
	return &Scalar[T]{
		name: name,
		size: size,
		put: func(b []byte, order Order, v T) {
			putUint(b[:size], order, uint64(v))
		},
		get: func(b []byte, order Order) (T, error) {
			return T(getUint(b[:size], order)), nil
		},
	}
}

func putUint(b []byte, order Order, v uint64) {
	bo := order.byteOrder()
	switch len(b) {
	case 1:
		b[0] = byte(v)
	case 2:
		bo.PutUint16(b, uint16(v))
	case 4:
		bo.PutUint32(b, uint32(v))
	case 8:
		bo.PutUint64(b, v)
	default:
		panic(fmt.Sprintf("pack: unsupported integer width %v", len(b)))
	}
}

func getUint(b []byte, order Order) uint64 {
	bo := order.byteOrder()
	switch len(b) {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(bo.Uint16(b))
	case 4:
		return uint64(bo.Uint32(b))
	case 8:
		return bo.Uint64(b)
	default:
		panic(fmt.Sprintf("pack: unsupported integer width %v", len(b)))
	}
}

func putBool(b []byte, _ Order, v bool) {
	b[0] = 0
	if v {
		b[0] = 1
	}
}

func getBool(b []byte, _ Order) (bool, error) {
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, invalidError("bool", "byte %#02x is neither 0x00 nor 0x01", b[0])
	}
}

func (s *Scalar[T]) String() string {
	return s.name
}

func (s *Scalar[T]) Size() int {
	return s.size
}

// Put encodes v into the first Size bytes of dst. It panics if dst is
// too short.
func (s *Scalar[T]) Put(dst []byte, order Order, v T) {
	if len(dst) < s.size {
		panic(fmt.Sprintf("pack: %v needs %v bytes, got %v", s.name, s.size, len(dst)))
	}
	s.put(dst[:s.size], order, v)
}

// Get decodes a value from the first Size bytes of src.
func (s *Scalar[T]) Get(src []byte, order Order) (T, error) {
	if len(src) < s.size {
		var zero T
		return zero, readError(s.name, io.ErrUnexpectedEOF)
	}
	return s.get(src[:s.size], order)
}

func (s *Scalar[T]) Pack(w io.Writer, order Order, v T) error {
	var buf [maxScalarSize]byte
	b := buf[:s.size]
	s.put(b, order, v)
	return writeFull(w, s.name, b)
}

func (s *Scalar[T]) Unpack(r io.Reader, order Order) (v T, err error) {
	var buf [maxScalarSize]byte
	b := buf[:s.size]
	err = readFull(r, s.name, b)
	if err != nil {
		return v, err
	}
	return s.get(b, order)
}

func (s *Scalar[T]) packAll(w io.Writer, order Order, vs []T) error {
	if len(vs) == 0 {
		return nil
	}

	buf := make([]byte, len(vs)*s.size)
	for i, v := range vs {
		s.put(buf[i*s.size:(i+1)*s.size], order, v)
	}
	return writeFull(w, s.name, buf)
}

func (s *Scalar[T]) unpackInto(r io.Reader, order Order, dst []T) error {
	if len(dst) == 0 {
		return nil
	}

	buf := make([]byte, len(dst)*s.size)
	err := readFull(r, s.name, buf)
	if err != nil {
		return err
	}
	for i := range dst {
		v, err := s.get(buf[i*s.size:(i+1)*s.size], order)
		if err != nil {
			return fmt.Errorf("[%v]: %w", i, err)
		}
		dst[i] = v
	}
	return nil
}
