package radix

import (
	"github.com/gravitational/trace"
)

// SortBits sorts vals into ascending order in place, one bit at a time from
// the least significant bit. It is a minimal reference implementation and
// shares nothing with the byte-bucket sorts.
//
// max must be greater than or equal to every element of vals: bit positions
// above the highest bit of max are never examined, so larger elements leave
// vals in an unspecified order. Use SortBitsChecked to validate max first.
func SortBits(max uint32, vals []uint32) {
	n := len(vals)
	if n <= 1 {
		return
	}

	scratch := make([]uint32, n)

	// The loop ends once the mask is shifted out of the top of the word.
	for mask := uint32(1); mask != 0 && mask <= max; mask <<= 1 {
		copy(scratch, vals)

		// Only the number of zero bits is needed: ones start where the zeros
		// end.
		zeros := 0
		for _, v := range scratch {
			if v&mask == 0 {
				zeros++
			}
		}

		var off0, off1 int
		for _, v := range scratch {
			// b is 1 if the bit is set, 0 otherwise; the index is computed
			// without branching on it.
			b := int((v & mask) / mask)
			vals[b*(zeros+off1)+(1-b)*off0] = v
			off1 += b
			off0 += 1 - b
		}
	}
}

// SortBitsChecked is SortBits, but it first verifies that no element of vals
// exceeds max. If one does, vals is left untouched and a trace.BadParameter
// error is returned.
func SortBitsChecked(max uint32, vals []uint32) error {
	for i, v := range vals {
		if v > max {
			return trace.BadParameter("radix: value %d at index %d exceeds max %d", v, i, max)
		}
	}
	SortBits(max, vals)
	return nil
}
