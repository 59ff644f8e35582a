package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := Execute(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Execute registers every subcommand on a fresh parser and runs it.
func Execute(ctx context.Context) error {
	parser := flags.NewParser(&struct{}{}, flags.Default&^flags.PrintErrors)

	for _, register := range []func(context.Context, *flags.Parser) error{
		Run,
		Version,
	} {
		if err := register(ctx, parser); err != nil {
			return err
		}
	}

	if _, err := parser.Parse(); err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			return nil
		}
		return err
	}
	return nil
}
