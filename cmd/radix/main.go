package main

import (
	"fmt"
	stdlog "log"
	"os"

	"github.com/gravitational/trace"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/shabbyrobe/go-radix/internal/cli"
)

func main() {
	log.SetLevel(log.WarnLevel)
	stdlog.SetOutput(log.StandardLogger().Writer())

	app := kingpin.New("radix", "Radix sort demonstration and benchmark tool.")
	if err := cli.Run(cli.RegisterCommands(app), os.Args[1:], os.Stdout); err != nil {
		log.WithError(err).Error("Command failed.")
		fmt.Fprintln(os.Stderr, trace.UserMessage(err))
		os.Exit(255)
	}
}
