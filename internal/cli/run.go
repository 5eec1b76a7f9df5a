package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pkordes/tap-billing/internal/config"
	"github.com/pkordes/tap-billing/internal/fare"
	"github.com/pkordes/tap-billing/internal/repo"
	"github.com/pkordes/tap-billing/internal/service"
)

// Exit codes returned by Run.
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
)

// Run executes one billing run for args and returns the process exit code.
// Usage and syntax errors go to stderr; progress is logged to stdout.
// The destination file is only written when the whole run succeeds.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := Parse(args)
	if errors.Is(err, ErrHelp) {
		PrintUsage(stdout)
		return ExitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "Syntax error. %v\n", err)
		PrintUsage(stderr)
		return ExitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return ExitFailed
	}
	log := cfg.Logger(stdout)

	table, err := fare.LoadTableFile(cfg.FareTablePath)
	if err != nil {
		log.ErrorContext(ctx, "failed to load fare table", "path", cfg.FareTablePath, "error", err)
		return ExitFailed
	}

	log.InfoContext(ctx, "importing taps", "src", opts.Src)
	taps, err := repo.ReadTapsFile(opts.Src)
	if err != nil {
		log.ErrorContext(ctx, "failed to read taps", "error", err)
		return ExitFailed
	}

	svc := service.NewBillingService(fare.NewResolver(table), log)
	report, _ := svc.Run(ctx, taps)

	if err := repo.WriteReportFile(opts.Dest, report); err != nil {
		log.ErrorContext(ctx, "failed to write report", "error", err)
		return ExitFailed
	}
	log.InfoContext(ctx, "report written", "dest", opts.Dest, "customers", len(report.Summaries))
	return ExitOK
}
