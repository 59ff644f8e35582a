package main

import (
	"context"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/quantbay/simex/config"
	"github.com/quantbay/simex/logging"
	"github.com/quantbay/simex/matching"
	"github.com/quantbay/simex/reporting"
	"github.com/quantbay/simex/scenario"
)

// RunCmd feeds a scenario of orders through freshly constructed books
// and reports the resulting books, trades and positions.
type RunCmd struct {
	Config   string `short:"c" long:"config" description:"Path to a TOML configuration file"`
	Scenario string `short:"s" long:"scenario" description:"Path to a TOML order scenario, defaults to the built-in demo"`
}

var runCmd RunCmd

func Run(_ context.Context, parser *flags.Parser) error {
	runCmd = RunCmd{}
	_, err := parser.AddCommand("run", "Run an order scenario", "Submit a scenario of orders and report books, trades and positions", &runCmd)
	return err
}

func (opts *RunCmd) Execute(_ []string) error {
	cfg := config.NewDefaultConfig()
	if opts.Config != "" {
		loaded, err := config.Read(opts.Config)
		if err != nil {
			return err
		}
		cfg = *loaded
	}

	log := logging.NewLoggerFromEnv(cfg.Logging.Environment)
	defer log.AtExit()

	file := scenario.Builtin()
	if opts.Scenario != "" {
		loaded, err := scenario.Load(opts.Scenario)
		if err != nil {
			return err
		}
		file = loaded
	}

	registry := matching.NewRegistry()
	if err := scenario.Run(file, registry, log, cfg.Matching); err != nil {
		return err
	}

	reporter := reporting.New(os.Stdout, cfg.Reporting)
	for _, book := range registry.Books() {
		reporter.PrintBook(book)
	}
	reporter.PrintAllTrades(registry)
	reporter.PrintAllPositions(registry)
	return nil
}
