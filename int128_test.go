package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt128Conversions(t *testing.T) {
	assert.Equal(t, "0", Uint128{}.String())
	assert.Equal(t, "340282366920938463463374607431768211455", MaxUint128.String())
	assert.Equal(t, "18446744073709551616", Uint128{Hi: 1}.String())

	assert.Equal(t, "-1", Int128From64(-1).String())
	assert.Equal(t, Int128{Hi: -1, Lo: 0xFFFFFFFFFFFFFFFF}, Int128From64(-1))
	assert.Equal(t, Int128{Hi: 0, Lo: 5}, Int128From64(5))
	assert.Equal(t, "-170141183460469231731687303715884105728", MinInt128.String())
	assert.Equal(t, "170141183460469231731687303715884105727", MaxInt128.String())
	assert.Equal(t, Uint128{Lo: 7}, Uint128From64(7))
}
