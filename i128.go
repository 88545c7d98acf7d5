package radix

import (
	"fmt"
	"math/big"

	"github.com/gravitational/trace"
)

// I128 is a two's complement signed 128-bit integer, sortable with SortI128.
type I128 struct {
	hi uint64
	lo uint64
}

var (
	minI128AsAbsU128 = U128{hi: 0x8000000000000000, lo: 0}
	maxI128AsU128    = U128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
)

// I128FromString creates a I128 from a decimal string. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'.
func I128FromString(s string) (out I128, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, trace.BadParameter("radix: i128 string %q invalid", s)
	}
	out, accurate = I128FromBigInt(b)
	return out, accurate, nil
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0

	var u U128
	accurate = true
	if hi, lo, ok := bigWords128(v); ok {
		u = U128{hi: hi, lo: lo}
	} else {
		u, accurate = MaxU128, false
	}

	if !neg {
		if cmp := u.Cmp(maxI128AsU128); cmp == 0 {
			out = MaxI128
		} else if cmp > 0 {
			out, accurate = MaxI128, false
		} else {
			out = u.AsI128()
		}

	} else {
		if cmp := u.Cmp(minI128AsAbsU128); cmp == 0 {
			out = MinI128
		} else if cmp > 0 {
			out, accurate = MinI128, false
		} else {
			out = u.AsI128().Neg()
		}
	}

	return out, accurate
}

// RandI128 generates a signed 128-bit random integer from an external source.
// Unlike a general purpose generator, the full range including negatives is
// covered.
func RandI128(source RandSource) (out I128) {
	return I128{hi: source.Uint64(), lo: source.Uint64()}
}

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

// Byte returns the byte of the two's complement bit pattern of i found at
// the bit offset shift, which must be a multiple of 8 less than 128.
func (i I128) Byte(shift uint) uint8 {
	return i.AsU128().Byte(shift)
}

func (i I128) String() string {
	return i.AsBigInt().String()
}

func (i I128) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	neg := i.hi&signBit != 0
	if i.hi > 0 {
		b.SetUint64(i.hi)
		b.Lsh(b, 64)
	}
	var lo big.Int
	lo.SetUint64(i.lo)
	b.Add(b, &lo)

	if neg {
		b.Xor(b, maxBigU128).Add(b, big1).Neg(b)
	}

	return b
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > MaxI128.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Neg() (v I128) {
	if i.hi == 0 && i.lo == 0 {
		return v
	}
	v.hi = ^i.hi
	v.lo = ^i.lo + 1
	if v.lo == 0 {
		v.hi++
	}
	return v
}

func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.LessThan(n) {
		return -1
	}
	return 1
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I128) LessThan(n I128) bool {
	if int64(i.hi) < int64(n.hi) {
		return true
	} else if i.hi == n.hi && i.lo < n.lo {
		return true
	}
	return false
}

func (i I128) LessOrEqualTo(n I128) bool {
	return !n.LessThan(i)
}
