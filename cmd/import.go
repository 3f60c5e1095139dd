package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/jfellner/depot"
)

type importCmd struct {
	rates  string
	closes string
}

func (*importCmd) Name() string { return "import" }
func (*importCmd) Synopsis() string {
	return "import price or exchange-rate dumps into the portfolio file"
}
func (*importCmd) Usage() string {
	return `dpt import [-rates <file>] [-closes <file>]

  Reads provider-format JSON dumps and appends the extracted points to the
  portfolio file: -rates expects a frankfurter.app time-series export,
  -closes a {"symbol","currency","prices":[{"date","close"},...]} series.
  Dates are normalized to month end.
`
}

func (p *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.rates, "rates", "", "Exchange-rate dump to import.")
	f.StringVar(&p.closes, "closes", "", "Closing-price dump to import.")
}

func (p *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.rates == "" && p.closes == "" {
		fmt.Fprintln(os.Stderr, "nothing to import, pass -rates or -closes")
		return subcommands.ExitUsageError
	}

	portfolio, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if p.rates != "" {
		if status := importInto(p.rates, portfolio, depot.ImportFrankfurterRates); status != subcommands.ExitSuccess {
			return status
		}
	}
	if p.closes != "" {
		if status := importInto(p.closes, portfolio, depot.ImportCloses); status != subcommands.ExitSuccess {
			return status
		}
	}

	// rewrite the whole file so imports stay idempotent
	out, err := os.Create(*portfolioFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio file %q: %v\n", *portfolioFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := depot.EncodePortfolio(out, portfolio); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func importInto(filename string, portfolio *depot.Portfolio, load func(r io.Reader, m *depot.MarketData) (int, error)) subcommands.ExitStatus {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer f.Close()
	count, err := load(f, portfolio.Market)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "imported %d points from %q\n", count, filename)
	return subcommands.ExitSuccess
}
