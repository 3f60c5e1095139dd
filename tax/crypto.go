package tax

import "github.com/shopspring/decimal"

// CryptoSaleResult breaks down the §23 tax on short-term crypto sales of
// one year.
//
// Short-term means sold within the one-year holding period, or within ten
// years when the asset was used for staking or lending. Classifying a sale
// as short-term is the caller's job; this calculator taxes whatever total
// it is given.
type CryptoSaleResult struct {
	Gains      decimal.Decimal
	Threshold  decimal.Decimal // the Freigrenze for the year
	TaxFree    bool            // true when gains are at or below the threshold
	IncomeTax  decimal.Decimal // gains at the personal marginal rate
	Solidarity decimal.Decimal
	Church     decimal.Decimal
	Total      decimal.Decimal
}

// CryptoSaleTax computes the tax on a year's short-term private-sale crypto
// gains. The Freigrenze is all-or-nothing: gains at or below the threshold
// are entirely tax-free, gains above it make the entire amount taxable at
// the marginal income-tax rate, not just the excess.
func CryptoSaleTax(gains decimal.Decimal, year int, s Settings) CryptoSaleResult {
	gains = clamp(gains)
	threshold := Freigrenze(year)
	result := CryptoSaleResult{Gains: gains, Threshold: threshold}
	if gains.LessThanOrEqual(threshold) {
		result.TaxFree = true
		return result
	}
	result.IncomeTax = gains.Mul(s.MarginalRate)
	result.Solidarity, result.Church = surcharges(result.IncomeTax, s)
	result.Total = result.IncomeTax.Add(result.Solidarity).Add(result.Church)
	return result
}
