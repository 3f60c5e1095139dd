package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jfellner/depot"
	"github.com/jfellner/depot/renderer"
)

type summaryCmd struct {
	year int
	mode string
}

func (*summaryCmd) Name() string { return "summary" }
func (*summaryCmd) Synopsis() string {
	return "display the portfolio grouped by asset class"
}
func (*summaryCmd) Usage() string {
	return `dpt summary [-y <year>] [-mode <combined|realized|holdings>]

  Computes position metrics for every investment and groups them by asset
  class, with cost basis, market value, realized and unrealized P&L, and
  each class's share of the portfolio.
`
}

func (p *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.year, "y", 0, "Scope realized gains to a calendar year (0 for all time).")
	f.StringVar(&p.mode, "mode", "combined", "Which positions to include (combined, realized, holdings).")
}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	portfolio, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	mode, err := depot.ParseMode(p.mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	summary := depot.Aggregate(portfolio.Ledger, depot.Filter{Year: p.year, Mode: mode})
	return display(renderer.SummaryMarkdown(summary))
}
