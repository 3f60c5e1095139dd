package tax

import "github.com/shopspring/decimal"

// FuturesResult breaks down the §20(6) tax on futures and derivatives of
// one year.
type FuturesResult struct {
	Gains             decimal.Decimal
	Losses            decimal.Decimal // as a positive magnitude
	LossCap           decimal.Decimal
	DeductibleLosses  decimal.Decimal // losses actually offset against gains this year
	UnusedLosses      decimal.Decimal // excess above the cap, to carry forward
	ProfitAfterLosses decimal.Decimal
	AllowanceUsed     decimal.Decimal // leftover Sparer-Pauschbetrag consumed here
	Taxable           decimal.Decimal
	BaseTax           decimal.Decimal
	Solidarity        decimal.Decimal
	Church            decimal.Decimal
	Total             decimal.Decimal
}

// FuturesTax computes the tax on a year's futures/derivatives trading.
// Losses offset gains only up to the statutory cap; the excess is surfaced
// as UnusedLosses for the caller to carry forward. Any leftover general
// capital-income allowance passed in is consumed after the loss offset,
// and the remainder is taxed at the flat rate plus surcharges.
//
// DeductibleLosses is computed before the allowance is consumed, so the
// reported figure never double-counts allowance usage.
func FuturesTax(gains, losses, allowanceLeft decimal.Decimal, s Settings) FuturesResult {
	gains = clamp(gains)
	losses = clamp(losses)
	allowanceLeft = clamp(allowanceLeft)

	cap := s.Filing.LossCap()
	offset := decimal.Min(losses, cap)
	profitAfterLosses := clamp(gains.Sub(offset))

	result := FuturesResult{
		Gains:             gains,
		Losses:            losses,
		LossCap:           cap,
		DeductibleLosses:  gains.Sub(profitAfterLosses),
		UnusedLosses:      clamp(losses.Sub(offset)),
		ProfitAfterLosses: profitAfterLosses,
	}

	result.AllowanceUsed = decimal.Min(profitAfterLosses, allowanceLeft)
	result.Taxable = profitAfterLosses.Sub(result.AllowanceUsed)
	result.BaseTax = result.Taxable.Mul(FlatRate)
	result.Solidarity, result.Church = surcharges(result.BaseTax, s)
	result.Total = result.BaseTax.Add(result.Solidarity).Add(result.Church)
	return result
}
