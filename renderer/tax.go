package renderer

import (
	"fmt"
	"strings"

	"github.com/jfellner/depot"
	"github.com/jfellner/depot/tax"
	"github.com/shopspring/decimal"
)

// eur formats a tax figure as settlement-currency money.
func eur(d decimal.Decimal) string {
	return depot.M(d, depot.BaseCurrency).String()
}

// CapitalIncomeMarkdown renders a §20 capital-income tax breakdown.
func CapitalIncomeMarkdown(year int, result tax.CapitalIncomeResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Capital Income Tax %d\n\n", year)
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Income | %s |\n", eur(result.Income))
	fmt.Fprintf(&b, "| Allowance (Sparer-Pauschbetrag) | %s |\n", eur(result.Allowance))
	fmt.Fprintf(&b, "| Taxable | %s |\n", eur(result.Taxable))
	fmt.Fprintf(&b, "| Base tax (25%%) | %s |\n", eur(result.BaseTax))
	fmt.Fprintf(&b, "| Solidarity surcharge | %s |\n", eur(result.Solidarity))
	fmt.Fprintf(&b, "| Church tax | %s |\n", eur(result.Church))
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", eur(result.Total))
	return b.String()
}

// CryptoSaleMarkdown renders a §23 crypto short-term sale tax breakdown.
func CryptoSaleMarkdown(year int, result tax.CryptoSaleResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Crypto Private-Sale Tax %d\n\n", year)
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Short-term gains | %s |\n", eur(result.Gains))
	fmt.Fprintf(&b, "| Freigrenze | %s |\n", eur(result.Threshold))
	if result.TaxFree {
		fmt.Fprintln(&b, "| **Total** | **tax-free** |")
		return b.String()
	}
	fmt.Fprintf(&b, "| Income tax | %s |\n", eur(result.IncomeTax))
	fmt.Fprintf(&b, "| Solidarity surcharge | %s |\n", eur(result.Solidarity))
	fmt.Fprintf(&b, "| Church tax | %s |\n", eur(result.Church))
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", eur(result.Total))
	return b.String()
}

// FuturesMarkdown renders a §20(6) futures/derivatives tax breakdown.
func FuturesMarkdown(year int, result tax.FuturesResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Futures & Derivatives Tax %d\n\n", year)
	fmt.Fprintln(&b, "| | |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Gains | %s |\n", eur(result.Gains))
	fmt.Fprintf(&b, "| Losses | %s (cap %s) |\n", eur(result.Losses), eur(result.LossCap))
	fmt.Fprintf(&b, "| Deductible losses | %s |\n", eur(result.DeductibleLosses))
	fmt.Fprintf(&b, "| Loss carry-forward | %s |\n", eur(result.UnusedLosses))
	fmt.Fprintf(&b, "| Profit after losses | %s |\n", eur(result.ProfitAfterLosses))
	fmt.Fprintf(&b, "| Allowance consumed | %s |\n", eur(result.AllowanceUsed))
	fmt.Fprintf(&b, "| Base tax (25%%) | %s |\n", eur(result.BaseTax))
	fmt.Fprintf(&b, "| Solidarity surcharge | %s |\n", eur(result.Solidarity))
	fmt.Fprintf(&b, "| Church tax | %s |\n", eur(result.Church))
	fmt.Fprintf(&b, "| **Total** | **%s** |\n", eur(result.Total))
	return b.String()
}
