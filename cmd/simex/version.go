package main

import (
	"context"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Set at build time via -ldflags.
var (
	cliVersion     = "dev"
	cliVersionHash = "unknown"
)

type VersionCmd struct{}

var versionCmd VersionCmd

func Version(_ context.Context, parser *flags.Parser) error {
	versionCmd = VersionCmd{}
	_, err := parser.AddCommand("version", "Show version info", "Show the version and commit hash this binary was built from", &versionCmd)
	return err
}

func (opts *VersionCmd) Execute(_ []string) error {
	fmt.Printf("simex %s (%s)\n", cliVersion, cliVersionHash)
	return nil
}
