package radix

// SortInts sorts vals into ascending numeric order in place.
//
// The sort makes one stable counting pass per byte of T, least significant
// byte first, regardless of the input. Signed types are handled on the final
// pass by placing every value with the sign bit set ahead of the rest.
//
// A scratch slice the same length as vals is allocated for the duration of
// the call.
func SortInts[T Integer](vals []T) {
	order := orderUnsigned
	if isSigned[T]() {
		order = orderSigned
	}
	sortBytes[T](vals, intBytes[T]{}, order)
}

// SortFloats sorts vals into ascending order in place by bit pattern, with
// the final pass corrected so that negative numbers sort in numeric order.
//
// There is no special handling of NaN: values are ordered as
//
//	-NaN < -Inf < ... < -0 < +0 < ... < +Inf < +NaN
//
// where NaNs with the same sign are ordered as though their bit patterns were
// finite numbers. Negative zero always sorts before positive zero.
func SortFloats[T Float](vals []T) {
	sortBytes[T](vals, floatBytes[T]{}, orderFloat)
}

// SortU128 sorts vals into ascending order in place. See SortInts.
func SortU128(vals []U128) {
	sortBytes[U128](vals, u128Bytes{}, orderUnsigned)
}

// SortI128 sorts vals into ascending order in place. See SortInts.
func SortI128(vals []I128) {
	sortBytes[I128](vals, i128Bytes{}, orderSigned)
}

func sortBytes[T any, X extractor[T]](vals []T, x X, order signOrder) {
	n := len(vals)
	if n <= 1 {
		return
	}

	width := x.Width()
	src, dst := vals, make([]T, n)

	for pass := 0; pass < width; pass++ {
		shift := uint(pass * radixBits)
		counts := countBytes[T](src, x, shift)

		var offsets [radixBuckets]int
		if pass < width-1 {
			offsets = offsetsAscending(&counts)
			scatter[T](src, dst, x, shift, &offsets)

		} else {
			switch order {
			case orderUnsigned:
				offsets = offsetsAscending(&counts)
				scatter[T](src, dst, x, shift, &offsets)
			case orderSigned:
				offsets = offsetsSigned(&counts)
				scatter[T](src, dst, x, shift, &offsets)
			case orderFloat:
				offsets = offsetsFloat(&counts)
				scatterFloat[T](src, dst, x, shift, &offsets)
			default:
				panic("radix: unknown sign order")
			}
		}

		src, dst = dst, src
	}

	// Every supported width has an even number of passes, which leaves the
	// result back in vals.
	if &src[0] != &vals[0] {
		copy(vals, src)
	}
}

func countBytes[T any, X extractor[T]](src []T, x X, shift uint) (counts [radixBuckets]int) {
	for _, v := range src {
		counts[x.Byte(v, shift)]++
	}
	return counts
}

// offsetsAscending is the exclusive prefix sum of counts: bucket 0 starts at
// 0, and every other bucket starts where the one before it ends.
func offsetsAscending(counts *[radixBuckets]int) (offsets [radixBuckets]int) {
	offset := 0
	for b := 0; b < radixBuckets; b++ {
		offsets[b] = offset
		offset += counts[b]
	}
	return offsets
}

// offsetsSigned lays out the most significant byte of a two's complement
// integer. Buckets 128-255 (negative) come before 0-127 (positive).
func offsetsSigned(counts *[radixBuckets]int) (offsets [radixBuckets]int) {
	offset := 0
	for b := signBucket; b < radixBuckets; b++ {
		offsets[b] = offset
		offset += counts[b]
	}
	for b := 0; b < signBucket; b++ {
		offsets[b] = offset
		offset += counts[b]
	}
	return offsets
}

// offsetsFloat lays out the most significant byte of an IEEE-754 float.
// Negative buckets come first in descending order, starting from 255, and
// their offsets point one past the end of each bucket, as scatterFloat fills
// them back to front. Positive buckets follow in ascending order.
func offsetsFloat(counts *[radixBuckets]int) (offsets [radixBuckets]int) {
	offset := 0
	for b := radixBuckets - 1; b >= signBucket; b-- {
		offset += counts[b]
		offsets[b] = offset
	}
	for b := 0; b < signBucket; b++ {
		offsets[b] = offset
		offset += counts[b]
	}
	return offsets
}

func scatter[T any, X extractor[T]](src, dst []T, x X, shift uint, offsets *[radixBuckets]int) {
	for _, v := range src {
		b := x.Byte(v, shift)
		dst[offsets[b]] = v
		offsets[b]++
	}
}

// scatterFloat is the final pass for floats. Within a negative bucket the
// earlier passes left values in ascending magnitude, so they are written in
// reverse to end up in ascending numeric order.
func scatterFloat[T any, X extractor[T]](src, dst []T, x X, shift uint, offsets *[radixBuckets]int) {
	for _, v := range src {
		b := x.Byte(v, shift)
		if b >= signBucket {
			offsets[b]--
			dst[offsets[b]] = v
		} else {
			dst[offsets[b]] = v
			offsets[b]++
		}
	}
}
