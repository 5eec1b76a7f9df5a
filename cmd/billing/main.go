// Package main is the entry point for the billing command.
// Usage: billing -s taps.json -d report.json
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkordes/tap-billing/internal/cli"
	"github.com/pkordes/tap-billing/internal/config"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitFailed)
	}
	os.Exit(cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
