package pack

import (
	"encoding/binary"
	"fmt"
)

// Order selects the byte order used for multi-byte values. It must be
// passed explicitly to every pack and unpack call. The zero value is not
// a valid order.
type Order uint8

const (
	BigEndian Order = iota + 1
	LittleEndian
)

func (o Order) byteOrder() binary.ByteOrder {
	switch o {
	case BigEndian:
		return binary.BigEndian
	case LittleEndian:
		return binary.LittleEndian
	default:
		panic(fmt.Sprintf("pack: invalid byte order %d", uint8(o)))
	}
}

// validate panics if o is not BigEndian or LittleEndian.
func (o Order) validate() {
	o.byteOrder()
}

func (o Order) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	default:
		return fmt.Sprintf("Order(%d)", uint8(o))
	}
}
