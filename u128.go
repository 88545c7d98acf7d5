package radix

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/gravitational/trace"
)

// U128 is an unsigned 128-bit integer, sortable with SortU128.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }

// U128FromString creates a U128 from a decimal string. Overflow truncates to
// MaxU128 and sets accurate to 'false'.
func U128FromString(s string) (out U128, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, trace.BadParameter("radix: u128 string %q invalid", s)
	}
	out, accurate = U128FromBigInt(b)
	return out, accurate, nil
}

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'. Negative numbers return 0 and 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	hi, lo, ok := bigWords128(v)
	if !ok {
		return MaxU128, false
	}
	return U128{hi: hi, lo: lo}, true
}

// bigWords128 splits the magnitude of v into two uint64s. ok is false if the
// magnitude needs more than 128 bits.
func bigWords128(v *big.Int) (hi, lo uint64, ok bool) {
	words := v.Bits()

	switch intSize {
	case 64:
		switch len(words) {
		case 0:
			return 0, 0, true
		case 1:
			return 0, uint64(words[0]), true
		case 2:
			return uint64(words[1]), uint64(words[0]), true
		}

	case 32:
		var w [4]uint64
		if len(words) > 4 {
			return 0, 0, false
		}
		for i, word := range words {
			w[i] = uint64(word)
		}
		return (w[3] << 32) | w[2], (w[1] << 32) | w[0], true

	default:
		panic("radix: unsupported bit size")
	}

	return 0, 0, false
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// Byte returns the byte of u found at the bit offset shift, which must be a
// multiple of 8 less than 128.
func (u U128) Byte(shift uint) uint8 {
	if shift < 64 {
		return uint8(u.lo >> shift)
	}
	return uint8(u.hi >> (shift - 64))
}

func (u U128) String() string {
	if u == zeroU128 {
		return "0"
	}
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}
	return u.AsBigInt().String()
}

func (u U128) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

// IntoBigInt copies this U128 into a big.Int, allowing you to retain and
// recycle memory.
func (u U128) IntoBigInt(b *big.Int) {
	b.SetUint64(u.hi)
	b.Lsh(b, 64)
	var lo big.Int
	lo.SetUint64(u.lo)
	b.Add(b, &lo)
}

// AsBigInt allocates a new big.Int and copies this U128 into it.
func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret it
// as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{lo: u.lo, hi: u.hi}
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return !n.LessThan(u)
}
