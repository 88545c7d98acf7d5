package cli

import (
	"fmt"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

// Application is the radix tool: its global flags and every subcommand.
type Application struct {
	*kingpin.Application
	// Debug enables debug logging and trace debug output
	Debug *bool
	// DemoCmd prints the float boundary fixture before and after sorting
	DemoCmd DemoCmd
	// SortCmd sorts values given on the command line
	SortCmd SortCmd
	// BenchCmd times the radix sorts against sort.Slice
	BenchCmd BenchCmd
}

// DemoCmd prints the float boundary fixture before and after sorting
type DemoCmd struct {
	*kingpin.CmdClause
	// Dump prints the slices with go-spew instead of fmt
	Dump *bool
}

// SortCmd sorts values given on the command line
type SortCmd struct {
	*kingpin.CmdClause
	// Type is the element type the values are parsed as
	Type *string
	// Max is the upper bound passed to the bit sort, empty if not set
	Max *string
	// Values are the values to sort
	Values *[]string
}

// BenchCmd times the radix sorts against sort.Slice
type BenchCmd struct {
	*kingpin.CmdClause
	// Types are the element types to benchmark
	Types *[]string
	// Count is the number of random values to sort
	Count *int
	// Seed seeds the random value generator
	Seed *int64
	// Rounds is the number of times each sort is repeated
	Rounds *int
}

// RegisterCommands registers all radix tool flags, arguments and subcommands
func RegisterCommands(app *kingpin.Application) Application {
	radix := Application{
		Application: app,
	}

	typeHelp := fmt.Sprintf("Element type: %v.", strings.Join(valueTypes, ", "))

	radix.Debug = app.Flag("debug", "Enable debug mode.").Bool()

	radix.DemoCmd.CmdClause = app.Command("demo", "Print the float boundary fixture before and after sorting.")
	radix.DemoCmd.Dump = radix.DemoCmd.Flag("dump", "Dump the values with their Go types.").Bool()

	radix.SortCmd.CmdClause = app.Command("sort", "Sort the given values and print them one per line.")
	radix.SortCmd.Type = radix.SortCmd.Flag("type", typeHelp).Short('t').Default(typeI64).Enum(valueTypes...)
	radix.SortCmd.Max = radix.SortCmd.Flag("max", "Upper bound for the 'bits' type. Defaults to the largest value given.").String()
	radix.SortCmd.Values = radix.SortCmd.Arg("values", "Values to sort.").Strings()

	radix.BenchCmd.CmdClause = app.Command("bench", "Time the radix sorts against sort.Slice on random values.")
	radix.BenchCmd.Types = radix.BenchCmd.Flag("type", typeHelp+" Can be specified multiple times. Defaults to all types.").Short('t').Enums(valueTypes...)
	radix.BenchCmd.Count = radix.BenchCmd.Flag("count", "Number of values to sort.").Short('n').Default("1000000").Int()
	radix.BenchCmd.Seed = radix.BenchCmd.Flag("seed", "Random seed.").Default("0").Int64()
	radix.BenchCmd.Rounds = radix.BenchCmd.Flag("rounds", "Number of times to repeat each sort.").Default("3").Int()

	return radix
}
