package tax

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Regime is the closed set of tax regimes this package models. Selecting a
// calculator goes through an explicit switch on the regime, never through
// string comparison at call sites.
type Regime int

const (
	CapitalIncome Regime = iota
	CryptoShortTerm
	FuturesDerivative
)

func (r Regime) String() string {
	switch r {
	case CapitalIncome:
		return "capital-income"
	case CryptoShortTerm:
		return "crypto-short-term"
	case FuturesDerivative:
		return "futures-derivative"
	default:
		panic(fmt.Sprintf("unknown tax regime %d", r))
	}
}

// ParseRegime parses the string representation of a tax regime.
func ParseRegime(s string) (Regime, error) {
	switch s {
	case "capital-income", "capital":
		return CapitalIncome, nil
	case "crypto-short-term", "crypto":
		return CryptoShortTerm, nil
	case "futures-derivative", "futures":
		return FuturesDerivative, nil
	default:
		return CapitalIncome, fmt.Errorf("unknown tax regime %q", s)
	}
}

// Input carries the yearly figures a regime computation reads. Fields a
// regime does not use are ignored.
type Input struct {
	Year          int
	Income        decimal.Decimal // capital income, crypto gains, or futures gains
	Losses        decimal.Decimal // futures only, as a positive magnitude
	AllowanceLeft decimal.Decimal // futures only: leftover general allowance
}

// Total dispatches to the calculator of the regime and returns the total
// tax due.
func (r Regime) Total(in Input, s Settings) decimal.Decimal {
	switch r {
	case CapitalIncome:
		return CapitalIncomeTax(in.Income, s).Total
	case CryptoShortTerm:
		return CryptoSaleTax(in.Income, in.Year, s).Total
	case FuturesDerivative:
		return FuturesTax(in.Income, in.Losses, in.AllowanceLeft, s).Total
	default:
		panic(fmt.Sprintf("unknown tax regime %d", r))
	}
}
