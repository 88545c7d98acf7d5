package radix

// Integer is the set of fixed-width integers SortInts accepts. 128-bit
// integers are sorted with SortU128 and SortI128.
type Integer interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// Float is the set of IEEE-754 types SortFloats accepts.
type Float interface {
	~float32 | ~float64
}

// RandSource supplies the random bits for RandU128 and RandI128. *rand.Rand
// satisfies it.
type RandSource interface {
	Uint64() uint64
}

// signOrder selects how the final pass arranges the buckets of the most
// significant byte.
type signOrder int

const (
	// orderUnsigned uses plain ascending buckets on every pass.
	orderUnsigned signOrder = iota

	// orderSigned places buckets 128-255 (two's complement negatives)
	// ahead of buckets 0-127.
	orderSigned

	// orderFloat places buckets 128-255 ahead of 0-127 like orderSigned, but
	// also reverses them, as a larger IEEE-754 bit pattern with the sign bit
	// set is a smaller number.
	orderFloat
)

func (o signOrder) String() string {
	switch o {
	case orderUnsigned:
		return "unsigned"
	case orderSigned:
		return "signed"
	case orderFloat:
		return "float"
	default:
		return "unknown"
	}
}
