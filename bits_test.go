package radix

import (
	"fmt"
	"math"
	"testing"

	"github.com/gravitational/trace"
	"github.com/shabbyrobe/golib/assert"
)

func TestSortBits(t *testing.T) {
	for idx, tc := range []struct {
		max     uint32
		in, out []uint32
	}{
		{math.MaxUint32, []uint32{4, 3, 2, 1}, []uint32{1, 2, 3, 4}},
		{4, []uint32{4, 3, 2, 1}, []uint32{1, 2, 3, 4}},
		{7, []uint32{4, 3, 2, 1}, []uint32{1, 2, 3, 4}},
		{0, []uint32{0, 0, 0}, []uint32{0, 0, 0}},
		{math.MaxUint32, []uint32{math.MaxUint32, 0, 1 << 31, 1}, []uint32{0, 1, 1 << 31, math.MaxUint32}},
		{math.MaxUint32, []uint32{5, 5, 1, 5, 1}, []uint32{1, 1, 5, 5, 5}},
		{math.MaxUint32, []uint32{}, []uint32{}},
		{math.MaxUint32, []uint32{9}, []uint32{9}},
	} {
		t.Run(fmt.Sprintf("%d/max=%d/%v", idx, tc.max, tc.in), func(t *testing.T) {
			tt := assert.WrapTB(t)
			vals := append([]uint32{}, tc.in...)
			SortBits(tc.max, vals)
			tt.MustEqual(tc.out, vals)
		})
	}
}

func TestSortBitsSkipsHighBits(t *testing.T) {
	tt := assert.WrapTB(t)

	// With max=3 only the two lowest bits are examined, so 4 is treated as
	// though it were 0 and keeps its place ahead of 1.
	vals := []uint32{4, 1, 0}
	SortBits(3, vals)
	tt.MustEqual([]uint32{4, 0, 1}, vals)
}

func TestSortBitsReversed(t *testing.T) {
	tt := assert.WrapTB(t)

	const n = 1024
	vals := make([]uint32, n)
	for i := range vals {
		vals[i] = uint32(n - 1 - i)
	}
	SortBits(n-1, vals)
	for i, v := range vals {
		tt.MustEqual(uint32(i), v, "index %d", i)
	}
}

func TestSortBitsChecked(t *testing.T) {
	tt := assert.WrapTB(t)

	vals := []uint32{4, 3, 2, 1}
	tt.MustOK(SortBitsChecked(4, vals))
	tt.MustEqual([]uint32{1, 2, 3, 4}, vals)

	vals = []uint32{4, 9, 2, 1}
	err := SortBitsChecked(4, vals)
	tt.MustAssert(err != nil)
	tt.MustAssert(trace.IsBadParameter(err), "%v", err)
	tt.MustEqual([]uint32{4, 9, 2, 1}, vals)
}
