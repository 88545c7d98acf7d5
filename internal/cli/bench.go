package cli

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"time"
	"unsafe"

	radix "github.com/shabbyrobe/go-radix"

	"github.com/dustin/go-humanize"
	"github.com/gravitational/trace"
	"github.com/olekukonko/tablewriter"
)

type benchConfig struct {
	// Types lists the element types to benchmark, all of them if empty
	Types []string
	// Count is the number of values sorted per round
	Count int
	// Seed seeds the value generator
	Seed int64
	// Rounds is the number of times each sort runs; the best time is kept
	Rounds int
}

func (c *benchConfig) checkAndSetDefaults() error {
	if c.Count < 0 {
		return trace.BadParameter("count must not be negative, got %d", c.Count)
	}
	if c.Rounds <= 0 {
		return trace.BadParameter("rounds must be positive, got %d", c.Rounds)
	}
	if len(c.Types) == 0 {
		c.Types = valueTypes
	}
	return nil
}

type benchResult struct {
	Type      string
	Algorithm string
	Count     int
	Best      time.Duration
	// Scratch is the number of bytes allocated for the working buffer
	Scratch int
}

func (r benchResult) row() []string {
	rate := "-"
	if r.Best > 0 {
		rate = humanize.Comma(int64(float64(r.Count) / r.Best.Seconds()))
	}
	return []string{
		r.Type,
		r.Algorithm,
		humanize.Comma(int64(r.Count)),
		r.Best.String(),
		rate,
		humanize.Bytes(uint64(r.Scratch)),
	}
}

func bench(out io.Writer, config benchConfig) error {
	if err := config.checkAndSetDefaults(); err != nil {
		return trace.Wrap(err)
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Type", "Algorithm", "Count", "Best", "Values/sec", "Scratch"})

	for _, typ := range config.Types {
		log.Debugf("Benchmarking %v with %d values.", typ, config.Count)
		results, err := benchType(typ, config)
		if err != nil {
			return trace.Wrap(err)
		}
		for _, r := range results {
			table.Append(r.row())
		}
	}

	table.Render()
	return nil
}

func benchType(typ string, config benchConfig) ([]benchResult, error) {
	switch typ {
	case typeU32:
		return timeSorts(typ, config, func(rng *rand.Rand) uint32 { return rng.Uint32() },
			radix.SortInts[uint32], func(a, b uint32) bool { return a < b })
	case typeI32:
		return timeSorts(typ, config, func(rng *rand.Rand) int32 { return int32(rng.Uint32()) },
			radix.SortInts[int32], func(a, b int32) bool { return a < b })
	case typeU64:
		return timeSorts(typ, config, func(rng *rand.Rand) uint64 { return rng.Uint64() },
			radix.SortInts[uint64], func(a, b uint64) bool { return a < b })
	case typeI64:
		return timeSorts(typ, config, func(rng *rand.Rand) int64 { return int64(rng.Uint64()) },
			radix.SortInts[int64], func(a, b int64) bool { return a < b })
	case typeF32:
		return timeSorts(typ, config, func(rng *rand.Rand) float32 { return rng.Float32()*2 - 1 },
			radix.SortFloats[float32], func(a, b float32) bool { return a < b })
	case typeF64:
		return timeSorts(typ, config, func(rng *rand.Rand) float64 { return rng.Float64()*2 - 1 },
			radix.SortFloats[float64], func(a, b float64) bool { return a < b })
	case typeU128:
		return timeSorts(typ, config, func(rng *rand.Rand) radix.U128 { return radix.RandU128(rng) },
			radix.SortU128, radix.U128.LessThan)
	case typeI128:
		return timeSorts(typ, config, func(rng *rand.Rand) radix.I128 { return radix.RandI128(rng) },
			radix.SortI128, radix.I128.LessThan)
	case typeBits:
		return timeSorts(typ, config, func(rng *rand.Rand) uint32 { return rng.Uint32() },
			func(vals []uint32) { radix.SortBits(^uint32(0), vals) }, func(a, b uint32) bool { return a < b })
	}
	return nil, trace.BadParameter("unsupported type %q, expected one of %v", typ, valueTypes)
}

// timeSorts sorts the same random input with the radix sort and with
// sort.Slice, and checks that they agree.
func timeSorts[T any](typ string, config benchConfig, gen func(*rand.Rand) T, radixSort func([]T), less func(a, b T) bool) ([]benchResult, error) {
	rng := rand.New(rand.NewSource(config.Seed))
	in := make([]T, config.Count)
	for i := range in {
		in[i] = gen(rng)
	}

	var zero T
	scratch := config.Count * int(unsafe.Sizeof(zero))

	radixOut := make([]T, len(in))
	radixBest := bestOf(config.Rounds, func() {
		copy(radixOut, in)
		radixSort(radixOut)
	})

	stdOut := make([]T, len(in))
	stdBest := bestOf(config.Rounds, func() {
		copy(stdOut, in)
		sort.Slice(stdOut, func(i, j int) bool { return less(stdOut[i], stdOut[j]) })
	})

	for i := range stdOut {
		if less(radixOut[i], stdOut[i]) || less(stdOut[i], radixOut[i]) {
			return nil, trace.CompareFailed("%s: radix sort disagrees with sort.Slice at index %d: %v != %v",
				typ, i, fmt.Sprint(radixOut[i]), fmt.Sprint(stdOut[i]))
		}
	}

	return []benchResult{
		{Type: typ, Algorithm: "radix", Count: config.Count, Best: radixBest, Scratch: scratch},
		{Type: typ, Algorithm: "sort.Slice", Count: config.Count, Best: stdBest},
	}, nil
}

func bestOf(rounds int, fn func()) (best time.Duration) {
	for i := 0; i < rounds; i++ {
		start := time.Now()
		fn()
		if took := time.Since(start); i == 0 || took < best {
			best = took
		}
	}
	return best
}
