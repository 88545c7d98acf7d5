package cli

import (
	"fmt"
	"io"
	"strconv"

	radix "github.com/shabbyrobe/go-radix"

	"github.com/gravitational/trace"
)

const (
	typeU32  = "u32"
	typeI32  = "i32"
	typeU64  = "u64"
	typeI64  = "i64"
	typeU128 = "u128"
	typeI128 = "i128"
	typeF32  = "f32"
	typeF64  = "f64"
	typeBits = "bits"
)

var valueTypes = []string{
	typeU32, typeI32, typeU64, typeI64, typeU128, typeI128, typeF32, typeF64, typeBits,
}

// sortCommand parses args as values of type typ, sorts them and writes them
// to out one per line. max is only used by the bits type; if it is empty the
// largest value is used.
func sortCommand(out io.Writer, typ string, max string, args []string) error {
	sorted, err := sortStrings(typ, max, args)
	if err != nil {
		return trace.Wrap(err)
	}
	for _, s := range sorted {
		if _, err := fmt.Fprintln(out, s); err != nil {
			return trace.ConvertSystemError(err)
		}
	}
	return nil
}

// sortStrings parses args as values of type typ, sorts them and returns them
// formatted in their sorted order.
func sortStrings(typ string, max string, args []string) ([]string, error) {
	switch typ {
	case typeU32:
		return sortParsed(args, parseUint[uint32](32), radix.SortInts[uint32], formatUint[uint32])
	case typeI32:
		return sortParsed(args, parseInt[int32](32), radix.SortInts[int32], formatInt[int32])
	case typeU64:
		return sortParsed(args, parseUint[uint64](64), radix.SortInts[uint64], formatUint[uint64])
	case typeI64:
		return sortParsed(args, parseInt[int64](64), radix.SortInts[int64], formatInt[int64])
	case typeF32:
		return sortParsed(args, parseFloat[float32](32), radix.SortFloats[float32], formatFloat[float32](32))
	case typeF64:
		return sortParsed(args, parseFloat[float64](64), radix.SortFloats[float64], formatFloat[float64](64))
	case typeU128:
		return sortParsed(args, parseU128, radix.SortU128, radix.U128.String)
	case typeI128:
		return sortParsed(args, parseI128, radix.SortI128, radix.I128.String)
	case typeBits:
		return sortBits(max, args)
	}
	return nil, trace.BadParameter("unsupported type %q, expected one of %v", typ, valueTypes)
}

func sortParsed[T any](args []string, parse func(string) (T, error), sort func([]T), format func(T) string) ([]string, error) {
	vals, err := parseAll(args, parse)
	if err != nil {
		return nil, trace.Wrap(err)
	}
	sort(vals)

	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = format(v)
	}
	return out, nil
}

func sortBits(max string, args []string) ([]string, error) {
	vals, err := parseAll(args, parseUint[uint32](32))
	if err != nil {
		return nil, trace.Wrap(err)
	}

	var bound uint32
	if max != "" {
		parsed, err := parseUint[uint32](32)(max)
		if err != nil {
			return nil, trace.BadParameter("invalid --max: %v", err)
		}
		bound = parsed
	} else {
		for _, v := range vals {
			if v > bound {
				bound = v
			}
		}
	}

	log.Debugf("Sorting %d values with bit sort, max %d.", len(vals), bound)
	if err := radix.SortBitsChecked(bound, vals); err != nil {
		return nil, trace.Wrap(err)
	}

	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = formatUint(v)
	}
	return out, nil
}

func parseAll[T any](args []string, parse func(string) (T, error)) ([]T, error) {
	vals := make([]T, len(args))
	for i, arg := range args {
		v, err := parse(arg)
		if err != nil {
			return nil, trace.BadParameter("value %d (%q): %v", i, arg, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func parseUint[T ~uint32 | ~uint64](bitSize int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 0, bitSize)
		return T(v), err
	}
}

func parseInt[T ~int32 | ~int64](bitSize int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 0, bitSize)
		return T(v), err
	}
}

func parseFloat[T radix.Float](bitSize int) func(string) (T, error) {
	return func(s string) (T, error) {
		v, err := strconv.ParseFloat(s, bitSize)
		return T(v), err
	}
}

func parseU128(s string) (radix.U128, error) {
	v, accurate, err := radix.U128FromString(s)
	if err != nil {
		return v, err
	}
	if !accurate {
		return v, trace.BadParameter("out of range for u128")
	}
	return v, nil
}

func parseI128(s string) (radix.I128, error) {
	v, accurate, err := radix.I128FromString(s)
	if err != nil {
		return v, err
	}
	if !accurate {
		return v, trace.BadParameter("out of range for i128")
	}
	return v, nil
}

func formatUint[T ~uint32 | ~uint64](v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

func formatInt[T ~int32 | ~int64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

func formatFloat[T radix.Float](bitSize int) func(T) string {
	return func(v T) string {
		return strconv.FormatFloat(float64(v), 'g', -1, bitSize)
	}
}
