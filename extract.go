package radix

import (
	"math"
	"unsafe"
)

// extractor exposes a fixed-width type to the sorting engine as a sequence
// of bytes. Byte must reinterpret v's bits, never convert its value.
type extractor[T any] interface {
	// Width is the size of T in bytes, which is also the number of passes.
	Width() int

	// Byte returns the byte of v at bit offset shift (0, 8, 16, ...).
	Byte(v T, shift uint) uint8
}

// IntByte returns the byte found at bit offset shift in the two's complement
// representation of v.
//
// shift must be a multiple of 8 smaller than the bit width of T.
func IntByte[T Integer](v T, shift uint) uint8 {
	// Converting to uint64 keeps the low bits of a signed value as they are;
	// a narrower negative value is sign extended, but only above its own
	// width, which no valid shift can reach.
	return uint8(uint64(v) >> shift)
}

// FloatBits returns the IEEE-754 bit pattern of v, zero-extended to 64 bits
// for 32-bit floats.
func FloatBits[T Float](v T) uint64 {
	if unsafe.Sizeof(v) == 4 {
		// T is float32-shaped, so this conversion is exact.
		return uint64(math.Float32bits(float32(v)))
	}
	return math.Float64bits(float64(v))
}

// FloatByte returns the byte found at bit offset shift in the IEEE-754
// representation of v. It is defined for every bit pattern, including NaNs
// and infinities.
//
// shift must be a multiple of 8 smaller than the bit width of T.
func FloatByte[T Float](v T, shift uint) uint8 {
	return uint8(FloatBits(v) >> shift)
}

type intBytes[T Integer] struct{}

func (intBytes[T]) Width() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func (intBytes[T]) Byte(v T, shift uint) uint8 { return IntByte(v, shift) }

type floatBytes[T Float] struct{}

func (floatBytes[T]) Width() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func (floatBytes[T]) Byte(v T, shift uint) uint8 { return FloatByte(v, shift) }

type u128Bytes struct{}

func (u128Bytes) Width() int                    { return 16 }
func (u128Bytes) Byte(v U128, shift uint) uint8 { return v.Byte(shift) }

type i128Bytes struct{}

func (i128Bytes) Width() int                    { return 16 }
func (i128Bytes) Byte(v I128, shift uint) uint8 { return v.Byte(shift) }

// isSigned reports whether T can hold negative values.
func isSigned[T Integer]() bool {
	var zero T
	return ^zero < zero
}
