package radix

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

type fuzzType string

// This is the equivalent of passing -radix.fuzziter=200 to 'go test':
const fuzzDefaultIterations = 200

// These types are all enabled by default. You can instead pass them
// explicitly on the command line like so: '-radix.fuzztype=i32,f64'
const (
	fuzzTypeU32  fuzzType = "u32"
	fuzzTypeI32  fuzzType = "i32"
	fuzzTypeU64  fuzzType = "u64"
	fuzzTypeI64  fuzzType = "i64"
	fuzzTypeU128 fuzzType = "u128"
	fuzzTypeI128 fuzzType = "i128"
	fuzzTypeF32  fuzzType = "f32"
	fuzzTypeF64  fuzzType = "f64"
	fuzzTypeBits fuzzType = "bits"
)

var allFuzzTypes = []fuzzType{
	fuzzTypeU32, fuzzTypeI32, fuzzTypeU64, fuzzTypeI64,
	fuzzTypeU128, fuzzTypeI128, fuzzTypeF32, fuzzTypeF64,
	fuzzTypeBits,
}

func (f fuzzType) enabled() bool {
	for _, t := range fuzzTypesActive {
		if t == f {
			return true
		}
	}
	return false
}

// fuzzLen picks a slice length. Most are small so the iteration count can
// stay high; some cross the sizes where every bucket fills up.
func fuzzLen(rng *rand.Rand) int {
	switch rng.Intn(4) {
	case 0:
		return rng.Intn(8)
	case 1, 2:
		return rng.Intn(300)
	default:
		return rng.Intn(5000)
	}
}

// fuzzBits returns random bits for one element. A narrow range is chosen
// for about half of the slices so that duplicates and shared high bytes are
// common.
func fuzzBits(rng *rand.Rand, narrow bool) uint64 {
	if narrow {
		return uint64(rng.Intn(512)) - 256
	}
	return rng.Uint64()
}

func TestFuzz(t *testing.T) {
	for _, ft := range allFuzzTypes {
		ft := ft
		t.Run(string(ft), func(t *testing.T) {
			if !ft.enabled() {
				t.Skip()
			}
			tt := assert.WrapTB(t)
			rng := rand.New(rand.NewSource(globalRNG.Int63()))
			for i := 0; i < fuzzIterations; i++ {
				fuzzOne(tt, ft, rng, fuzzLen(rng), rng.Intn(2) == 0)
			}
		})
	}
}

func fuzzOne(tt assert.T, ft fuzzType, rng *rand.Rand, n int, narrow bool) {
	tt.Helper()

	switch ft {
	case fuzzTypeU32:
		fuzzInts(tt, n, func() uint32 { return uint32(fuzzBits(rng, narrow)) })
	case fuzzTypeI32:
		fuzzInts(tt, n, func() int32 { return int32(fuzzBits(rng, narrow)) })
	case fuzzTypeU64:
		fuzzInts(tt, n, func() uint64 { return fuzzBits(rng, narrow) })
	case fuzzTypeI64:
		fuzzInts(tt, n, func() int64 { return int64(fuzzBits(rng, narrow)) })

	case fuzzTypeF32:
		fuzzFloats(tt, n, func() float32 {
			if narrow {
				return float32(rng.NormFloat64())
			}
			return math.Float32frombits(uint32(rng.Uint64()))
		})
	case fuzzTypeF64:
		fuzzFloats(tt, n, func() float64 {
			if narrow {
				return rng.NormFloat64() * 1000
			}
			return math.Float64frombits(rng.Uint64())
		})

	case fuzzTypeU128:
		vals := make([]U128, n)
		for i := range vals {
			if narrow {
				vals[i] = U128FromRaw(fuzzBits(rng, true)&3, fuzzBits(rng, true))
			} else {
				vals[i] = RandU128(rng)
			}
		}
		exp := make([]U128, len(vals))
		copy(exp, vals)
		sort.Slice(exp, func(i, j int) bool { return exp[i].LessThan(exp[j]) })
		SortU128(vals)
		tt.MustAssert(IsSortedU128(vals))
		tt.MustEqual(exp, vals)

	case fuzzTypeI128:
		vals := make([]I128, n)
		for i := range vals {
			if narrow {
				vals[i] = I128From64(int64(fuzzBits(rng, true)))
			} else {
				vals[i] = RandI128(rng)
			}
		}
		exp := make([]I128, len(vals))
		copy(exp, vals)
		sort.Slice(exp, func(i, j int) bool { return exp[i].LessThan(exp[j]) })
		SortI128(vals)
		tt.MustAssert(IsSortedI128(vals))
		tt.MustEqual(exp, vals)

	case fuzzTypeBits:
		vals := make([]uint32, n)
		var max uint32
		for i := range vals {
			vals[i] = uint32(fuzzBits(rng, narrow))
			if vals[i] > max {
				max = vals[i]
			}
		}
		if rng.Intn(2) == 0 {
			max = math.MaxUint32
		}
		exp := make([]uint32, len(vals))
		copy(exp, vals)
		sort.Slice(exp, func(i, j int) bool { return exp[i] < exp[j] })
		tt.MustOK(SortBitsChecked(max, vals))
		tt.MustEqual(exp, vals)

	default:
		panic(ft)
	}
}

func fuzzInts[T Integer](tt assert.T, n int, next func() T) {
	tt.Helper()
	vals := make([]T, n)
	for i := range vals {
		vals[i] = next()
	}
	exp := make([]T, len(vals))
	copy(exp, vals)
	sort.Slice(exp, func(i, j int) bool { return exp[i] < exp[j] })

	SortInts(vals)
	tt.MustAssert(IsSortedInts(vals))
	tt.MustEqual(exp, vals)
}

// fuzzFloats checks the result against a comparison sort on the same key
// IsSortedFloats uses. Values are compared by bit pattern, as NaN != NaN.
func fuzzFloats[T Float](tt assert.T, n int, next func() T) {
	tt.Helper()
	vals := make([]T, n)
	for i := range vals {
		vals[i] = next()
	}
	exp := make([]T, len(vals))
	copy(exp, vals)
	sort.SliceStable(exp, func(i, j int) bool { return floatKey(exp[i]) < floatKey(exp[j]) })

	SortFloats(vals)
	tt.MustAssert(IsSortedFloats(vals))
	for i := range exp {
		tt.MustEqual(FloatBits(exp[i]), FloatBits(vals[i]), "index %d", i)
	}
}
