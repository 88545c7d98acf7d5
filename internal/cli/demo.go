package cli

import (
	"fmt"
	"io"
	"math"

	radix "github.com/shabbyrobe/go-radix"

	"github.com/davecgh/go-spew/spew"
	"github.com/gravitational/trace"
)

// demoValues is the float fixture with values just outside the float32
// range, in descending order.
func demoValues() (in, exp []float64) {
	in = []float64{
		math.MaxFloat32 + 1, 4, 3, 2, 1, -1, -2, -3, -4, -math.MaxFloat32 - 1,
	}
	exp = []float64{
		-math.MaxFloat32 - 1, -4, -3, -2, -1, 1, 2, 3, 4, math.MaxFloat32 + 1,
	}
	return in, exp
}

func demo(out io.Writer, dump bool) error {
	in, exp := demoValues()
	res := append([]float64(nil), in...)
	radix.SortFloats(res)

	show := func(label string, vals []float64) {
		if dump {
			fmt.Fprintf(out, "%s:", label)
			spew.Fdump(out, vals)
		} else {
			fmt.Fprintf(out, "%s:%v\n", label, vals)
		}
	}

	fmt.Fprintln(out)
	show("ori", in)
	show("res", res)
	show("exp", exp)

	for i := range exp {
		if res[i] != exp[i] {
			return trace.CompareFailed("index %d: expected %v, found %v", i, exp[i], res[i])
		}
	}
	return nil
}
