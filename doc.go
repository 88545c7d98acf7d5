/*
Package radix provides least-significant-byte-first radix sorts for
fixed-width numbers: 32 and 64-bit integers, 128-bit integers (U128 and
I128) and IEEE-754 floats.

Each sort makes one stable counting pass per byte of the type, using 256
buckets per pass. The final pass is arranged so that negative values come
out in numeric order, which their raw bit patterns do not give you:

	ints := []int64{4, -1, 3, math.MinInt64, 0}
	radix.SortInts(ints)
	// [-9223372036854775808 -1 0 3 4]

	floats := []float64{1.5, -2, math.Inf(-1), 0}
	radix.SortFloats(floats)
	// [-Inf -2 0 1.5]

	wide := []radix.I128{radix.I128From64(1), radix.MinI128, radix.MaxI128}
	radix.SortI128(wide)

Floats are ordered by bit pattern once the sign is corrected for. There is no
special treatment of NaN; see SortFloats for the resulting order.

SortBits is a separate, minimal one-bit-per-pass sort for uint32 that stops
at the highest bit of a caller supplied maximum:

	vals := []uint32{4, 3, 2, 1}
	radix.SortBits(4, vals)

All sorts allocate a scratch slice the same length as their input and are
not safe for concurrent use on the same slice.
*/
package radix
