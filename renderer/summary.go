// Package renderer renders depot reports as markdown.
package renderer

import (
	"fmt"
	"strings"

	"github.com/jfellner/depot"
)

// SummaryMarkdown renders the per-asset-class portfolio summary to a
// markdown string.
func SummaryMarkdown(summary *depot.PortfolioSummary) string {
	var b strings.Builder

	if summary.Filter.AllTime() {
		fmt.Fprintf(&b, "# Portfolio Summary (all time, %s)\n\n", summary.Filter.Mode)
	} else {
		fmt.Fprintf(&b, "# Portfolio Summary %d (%s)\n\n", summary.Filter.Year, summary.Filter.Mode)
	}

	fmt.Fprintln(&b, "| Asset Class | Positions | Cost Basis | Market Value | Realized | Unrealized | Total P&L | Perf | Share |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|---:|")
	for _, row := range summary.Rows {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s | %s | %s | %s |\n",
			row.Class,
			row.Positions,
			row.PurchaseCost,
			row.MarketValue,
			row.RealizedPL.SignedString(),
			row.UnrealizedPL.SignedString(),
			row.TotalPL.SignedString(),
			row.Performance.SignedString(),
			row.Share,
		)
	}
	total := summary.Total
	fmt.Fprintf(&b, "| **Total** | %d | **%s** | **%s** | **%s** | **%s** | **%s** | **%s** | %s |\n",
		total.Positions,
		total.PurchaseCost,
		total.MarketValue,
		total.RealizedPL.SignedString(),
		total.UnrealizedPL.SignedString(),
		total.TotalPL.SignedString(),
		total.Performance.SignedString(),
		total.Share,
	)
	return b.String()
}
