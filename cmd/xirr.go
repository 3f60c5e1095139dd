package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/jfellner/depot"
)

type xirrCmd struct {
	guess float64
}

func (*xirrCmd) Name() string { return "xirr" }
func (*xirrCmd) Synopsis() string {
	return "solve the annualized return of a series of dated cashflows"
}
func (*xirrCmd) Usage() string {
	return `dpt xirr [-guess <rate>] <date>:<amount> ...

  Computes the internal rate of return of dated, signed cashflows:
  negative for money paid in, positive for money received.

Usage Examples:
$ dpt xirr 2024-01-01:-1000 2025-01-01:1100
`
}

func (p *xirrCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&p.guess, "guess", 0.10, "Initial rate estimate for the solver.")
}

func (p *xirrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var flows []depot.Cashflow
	for _, arg := range f.Args() {
		day, amount, ok := strings.Cut(arg, ":")
		if !ok {
			fmt.Fprintf(os.Stderr, "invalid cashflow %q, want <date>:<amount>\n", arg)
			return subcommands.ExitUsageError
		}
		on, err := depot.ParseDate(day)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		value, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid amount in %q: %v\n", arg, err)
			return subcommands.ExitUsageError
		}
		flows = append(flows, depot.Cashflow{Date: on, Amount: value})
	}

	rate, ok := depot.XIRRGuess(flows, p.guess)
	if !ok {
		fmt.Fprintln(os.Stderr, "rate is indeterminate for these cashflows")
		return subcommands.ExitFailure
	}
	fmt.Printf("%.6f (%s)\n", rate, depot.Percent(rate*100))
	return subcommands.ExitSuccess
}
