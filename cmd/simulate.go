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

type simulateCmd struct {
	plan    string
	until   string
	monthly bool
}

func (*simulateCmd) Name() string { return "simulate" }
func (*simulateCmd) Synopsis() string {
	return "replay a savings plan month by month and summarize it"
}
func (*simulateCmd) Usage() string {
	return `dpt simulate -plan <id> [-until <date>] [-monthly]

  Steps the plan from its start month through the given month (today by
  default), buying units with each month's contribution, optionally
  steering toward target weights, and reports the yearly summary. With
  -monthly, the full month-by-month valuation table is printed instead.
`
}

func (p *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.plan, "plan", "", "ID of the plan to simulate.")
	f.StringVar(&p.until, "until", "", "Last month to simulate (defaults to today).")
	f.BoolVar(&p.monthly, "monthly", false, "Print every monthly row instead of the yearly summary.")
}

func (p *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	portfolio, err := DecodePortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	plan := portfolio.Plan(p.plan)
	if plan == nil {
		fmt.Fprintf(os.Stderr, "unknown plan %q\n", p.plan)
		return subcommands.ExitUsageError
	}
	until := depot.Today()
	if p.until != "" {
		until, err = depot.ParseDate(p.until)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	rows := depot.Simulate(*plan, portfolio.Market, until)
	if p.monthly {
		return display(renderer.SimulationMarkdown(*plan, rows))
	}
	summary := depot.BuildSummary(rows, plan.StartMonth())
	return display(renderer.SummaryTableMarkdown(*plan, summary))
}
