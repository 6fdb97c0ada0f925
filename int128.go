package pack

import (
	"math"
	"math/big"
)

// Uint128 is an unsigned 128-bit integer split into two 64-bit words.
type Uint128 struct {
	Hi, Lo uint64
}

// Int128 is a signed 128-bit two's-complement integer. Hi carries the
// sign.
type Int128 struct {
	Hi int64
	Lo uint64
}

var (
	MaxUint128 = Uint128{Hi: math.MaxUint64, Lo: math.MaxUint64}
	MaxInt128  = Int128{Hi: math.MaxInt64, Lo: math.MaxUint64}
	MinInt128  = Int128{Hi: math.MinInt64, Lo: 0}
)

func Uint128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Int128From64 sign-extends v to 128 bits.
func Int128From64(v int64) Int128 {
	return Int128{Hi: v >> 63, Lo: uint64(v)}
}

func (u Uint128) Big() *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.Lo))
}

func (u Uint128) String() string {
	return u.Big().String()
}

func (i Int128) Big() *big.Int {
	v := big.NewInt(i.Hi)
	v.Lsh(v, 64)
	return v.Add(v, new(big.Int).SetUint64(i.Lo))
}

func (i Int128) String() string {
	return i.Big().String()
}

func putUint128(b []byte, order Order, v Uint128) {
	bo := order.byteOrder()
	if order == BigEndian {
		bo.PutUint64(b[:8], v.Hi)
		bo.PutUint64(b[8:16], v.Lo)
		return
	}
	bo.PutUint64(b[:8], v.Lo)
	bo.PutUint64(b[8:16], v.Hi)
}

func getUint128(b []byte, order Order) (Uint128, error) {
	bo := order.byteOrder()
	if order == BigEndian {
		return Uint128{Hi: bo.Uint64(b[:8]), Lo: bo.Uint64(b[8:16])}, nil
	}
	return Uint128{Hi: bo.Uint64(b[8:16]), Lo: bo.Uint64(b[:8])}, nil
}

func putInt128(b []byte, order Order, v Int128) {
	putUint128(b, order, Uint128{Hi: uint64(v.Hi), Lo: v.Lo})
}

func getInt128(b []byte, order Order) (Int128, error) {
	u, err := getUint128(b, order)
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}, err
}
