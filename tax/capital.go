package tax

import "github.com/shopspring/decimal"

// CapitalIncomeResult breaks down the §20 capital-income tax of one year.
type CapitalIncomeResult struct {
	Income     decimal.Decimal // total §20 income: dividends, interest, capital gains
	Allowance  decimal.Decimal // Sparer-Pauschbetrag applied
	Taxable    decimal.Decimal // income above the allowance
	BaseTax    decimal.Decimal // Abgeltungsteuer at the flat rate
	Solidarity decimal.Decimal
	Church     decimal.Decimal
	Total      decimal.Decimal
}

// CapitalIncomeTax computes the German flat tax on capital income: the
// allowance is consumed first, the remainder is taxed at the flat 25% rate
// plus solidarity surcharge and church tax.
func CapitalIncomeTax(income decimal.Decimal, s Settings) CapitalIncomeResult {
	income = clamp(income)
	allowance := s.Filing.Allowance()
	taxable := clamp(income.Sub(allowance))
	baseTax := taxable.Mul(FlatRate)
	solidarity, church := surcharges(baseTax, s)
	return CapitalIncomeResult{
		Income:     income,
		Allowance:  allowance,
		Taxable:    taxable,
		BaseTax:    baseTax,
		Solidarity: solidarity,
		Church:     church,
		Total:      baseTax.Add(solidarity).Add(church),
	}
}
