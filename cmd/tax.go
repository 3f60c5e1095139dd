package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jfellner/depot"
	"github.com/jfellner/depot/renderer"
	"github.com/jfellner/depot/tax"
	"github.com/shopspring/decimal"
)

type taxCmd struct {
	regime    string
	year      int
	income    float64
	losses    float64
	allowance float64
	filing    string
	church    float64
	marginal  float64
}

func (*taxCmd) Name() string { return "tax" }
func (*taxCmd) Synopsis() string {
	return "compute German capital-gains taxes for one regime and year"
}
func (*taxCmd) Usage() string {
	return `dpt tax -regime <capital|crypto|futures> -y <year> -income <amount> [options]

  Computes the tax due for one regime:
    capital  §20 capital income under the flat Abgeltungsteuer
    crypto   §23 short-term private-sale gains under the Freigrenze
    futures  §20(6) derivatives with the statutory loss cap

Usage Examples:
# Dividends and gains of 2,500 EUR, married, 9% church tax.
$ dpt tax -regime capital -y 2025 -income 2500 -filing married -church 0.09

# Crypto gains just above the Freigrenze at a 42% marginal rate.
$ dpt tax -regime crypto -y 2025 -income 1000.01 -marginal 0.42

# Futures with capped losses.
$ dpt tax -regime futures -y 2025 -income 50000 -losses 30000
`
}

func (p *taxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.regime, "regime", "capital", "Tax regime (capital, crypto, futures).")
	f.IntVar(&p.year, "y", 0, "Tax year (defaults to the current year).")
	f.Float64Var(&p.income, "income", 0, "Total income or gains for the year.")
	f.Float64Var(&p.losses, "losses", 0, "Futures only: total losses as a positive amount.")
	f.Float64Var(&p.allowance, "allowance-left", 0, "Futures only: leftover general allowance.")
	f.StringVar(&p.filing, "filing", "single", "Filing status (single, married).")
	f.Float64Var(&p.church, "church", 0, "Church-tax rate (0, 0.08 or 0.09).")
	f.Float64Var(&p.marginal, "marginal", 0.42, "Crypto only: marginal income-tax rate.")
}

func (p *taxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	regime, err := tax.ParseRegime(p.regime)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	filing, err := tax.ParseFiling(p.filing)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	settings := tax.Settings{
		Filing:       filing,
		ChurchRate:   decimal.NewFromFloat(p.church),
		MarginalRate: decimal.NewFromFloat(p.marginal),
	}
	year := p.year
	if year == 0 {
		year = depot.Today().Year()
	}

	switch regime {
	case tax.CapitalIncome:
		result := tax.CapitalIncomeTax(decimal.NewFromFloat(p.income), settings)
		return display(renderer.CapitalIncomeMarkdown(year, result))
	case tax.CryptoShortTerm:
		result := tax.CryptoSaleTax(decimal.NewFromFloat(p.income), year, settings)
		return display(renderer.CryptoSaleMarkdown(year, result))
	case tax.FuturesDerivative:
		result := tax.FuturesTax(decimal.NewFromFloat(p.income), decimal.NewFromFloat(p.losses), decimal.NewFromFloat(p.allowance), settings)
		return display(renderer.FuturesMarkdown(year, result))
	default:
		fmt.Fprintf(os.Stderr, "unknown regime %q\n", p.regime)
		return subcommands.ExitUsageError
	}
}
