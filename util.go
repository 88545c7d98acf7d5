package radix

// IsSortedInts reports whether vals is in ascending numeric order.
func IsSortedInts[T Integer](vals []T) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i] < vals[i-1] {
			return false
		}
	}
	return true
}

// IsSortedFloats reports whether vals is in the order SortFloats produces,
// including the placement of NaNs and signed zeros.
func IsSortedFloats[T Float](vals []T) bool {
	for i := 1; i < len(vals); i++ {
		if floatKey(vals[i]) < floatKey(vals[i-1]) {
			return false
		}
	}
	return true
}

// IsSortedU128 reports whether vals is in ascending order.
func IsSortedU128(vals []U128) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i].LessThan(vals[i-1]) {
			return false
		}
	}
	return true
}

// IsSortedI128 reports whether vals is in ascending signed order.
func IsSortedI128(vals []I128) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i].LessThan(vals[i-1]) {
			return false
		}
	}
	return true
}

// floatKey maps the bit pattern of v onto an unsigned integer that compares
// in the same order SortFloats sorts: positive values have the sign bit
// flipped, negative values have every bit flipped.
func floatKey[T Float](v T) uint64 {
	bits := FloatBits(v)
	sign := uint64(1) << (8*floatBytes[T]{}.Width() - 1)
	if bits&sign != 0 {
		return ^bits & (sign<<1 - 1)
	}
	return bits | sign
}
