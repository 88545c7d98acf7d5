package cli

import (
	"io"

	"github.com/gravitational/trace"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField(trace.Component, "cli")

// Run parses args and executes the matching radix command, writing its
// output to out.
func Run(radix Application, args []string, out io.Writer) error {
	cmd, err := radix.Parse(args)
	if err != nil {
		return trace.Wrap(err)
	}

	trace.SetDebug(*radix.Debug)
	if *radix.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	log.Debugf("Executing: %v.", args)

	switch cmd {
	case radix.DemoCmd.FullCommand():
		return demo(out, *radix.DemoCmd.Dump)
	case radix.SortCmd.FullCommand():
		return sortCommand(out, *radix.SortCmd.Type, *radix.SortCmd.Max, *radix.SortCmd.Values)
	case radix.BenchCmd.FullCommand():
		return bench(out, benchConfig{
			Types:  *radix.BenchCmd.Types,
			Count:  *radix.BenchCmd.Count,
			Seed:   *radix.BenchCmd.Seed,
			Rounds: *radix.BenchCmd.Rounds,
		})
	}

	return trace.NotFound("unknown command %v", cmd)
}
