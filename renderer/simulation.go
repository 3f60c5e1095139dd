package renderer

import (
	"fmt"
	"strings"

	"github.com/jfellner/depot"
)

// SimulationMarkdown renders the monthly simulation rows of a plan to a
// markdown string.
func SimulationMarkdown(plan depot.Plan, rows []depot.SimulationRow) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Simulation %q from %s\n\n", plan.Name, plan.StartMonth())

	fmt.Fprintln(&b, "| Month | Contribution | Fee | Value | Components |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|:---|")
	for _, row := range rows {
		var components []string
		for _, snapshot := range row.Components {
			components = append(components, fmt.Sprintf("%s %.4f @ %s (%s)",
				snapshot.Symbol,
				snapshot.Units.Display(),
				snapshot.SettlementPrice,
				snapshot.Drift.Percent().SignedString(),
			))
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			row.Date,
			row.Contribution,
			row.Fee,
			row.Value,
			strings.Join(components, ", "),
		)
	}
	return b.String()
}

// SummaryTableMarkdown renders the yearly and lifetime reduction of a
// simulation to a markdown string.
func SummaryTableMarkdown(plan depot.Plan, summary *depot.SimulationSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Plan %q yearly summary\n\n", plan.Name)

	fmt.Fprintln(&b, "| Year | Contributions | Fees | End Value | Cumulative | Unrealized | Perf |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
	for _, year := range summary.Years {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s |\n",
			year.Year,
			year.Contributions,
			year.Fees,
			year.EndValue,
			year.CumulativeContributions,
			year.UnrealizedPL.SignedString(),
			year.Performance.SignedString(),
		)
	}

	lifetime := summary.Lifetime
	fmt.Fprintf(&b, "\n## Lifetime since %s\n\n", lifetime.Start)
	fmt.Fprintf(&b, "- Contributions: %s (fees %s)\n", lifetime.Contributions, lifetime.Fees)
	fmt.Fprintf(&b, "- Value on %s: %s\n", lifetime.EndDate, lifetime.EndValue)
	fmt.Fprintf(&b, "- Unrealized P&L: %s (%s)\n", lifetime.UnrealizedPL.SignedString(), lifetime.Performance.SignedString())
	if lifetime.Annualized {
		fmt.Fprintf(&b, "- Annualized return (XIRR): %s\n", lifetime.AnnualizedReturn.SignedString())
	} else {
		fmt.Fprintln(&b, "- Annualized return (XIRR): indeterminate")
	}
	return b.String()
}
