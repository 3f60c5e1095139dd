// Package tax computes German capital-gains taxes: §20 capital income
// under the Abgeltungsteuer, §23 private-sale crypto gains under the
// Freigrenze, and §20(6) futures/derivatives with the statutory loss cap.
//
// All three calculators are pure functions of their inputs. They never
// return errors for odd numeric input: negative amounts are clamped to
// zero, and rates outside the statutory brackets are accepted as given.
package tax

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Statutory figures, in EUR or as fractions.
var (
	// FlatRate is the Abgeltungsteuer flat rate on capital income.
	FlatRate = decimal.NewFromFloat(0.25)
	// SolidarityRate is the solidarity surcharge applied to the base tax.
	SolidarityRate = decimal.NewFromFloat(0.055)

	// AllowanceSingle and AllowanceMarried are the Sparer-Pauschbetrag
	// amounts: the annual tax-free allowance on capital income.
	AllowanceSingle  = decimal.NewFromInt(1000)
	AllowanceMarried = decimal.NewFromInt(2000)

	// Freigrenze thresholds for §23 private sales. At or below the
	// threshold the whole gain is tax-free; above it the whole gain is
	// taxable.
	FreigrenzeBefore2024 = decimal.NewFromInt(600)
	FreigrenzeFrom2024   = decimal.NewFromInt(1000)

	// LossCapSingle and LossCapMarried cap how much derivative loss may
	// offset derivative gains in one year (§20(6)).
	LossCapSingle  = decimal.NewFromInt(20000)
	LossCapMarried = decimal.NewFromInt(40000)
)

// ChurchRates are the church-tax rates in use (none, Bavaria and
// Baden-Württemberg, everywhere else).
var ChurchRates = []decimal.Decimal{
	decimal.Zero,
	decimal.NewFromFloat(0.08),
	decimal.NewFromFloat(0.09),
}

// MarginalRates is the ladder of personal income-tax rates offered for the
// crypto calculation. A settings rate outside the ladder is still accepted.
var MarginalRates = []decimal.Decimal{
	decimal.NewFromFloat(0.14),
	decimal.NewFromFloat(0.25),
	decimal.NewFromFloat(0.30),
	decimal.NewFromFloat(0.35),
	decimal.NewFromFloat(0.42),
	decimal.NewFromFloat(0.45),
}

// Filing is the filing status; joint filing doubles the allowance and the
// loss cap.
type Filing int

const (
	Single Filing = iota
	Married
)

func (f Filing) String() string {
	switch f {
	case Single:
		return "single"
	case Married:
		return "married"
	default:
		panic(fmt.Sprintf("unknown filing status %d", f))
	}
}

// ParseFiling parses the string representation of a filing status.
func ParseFiling(s string) (Filing, error) {
	switch s {
	case "single", "":
		return Single, nil
	case "married":
		return Married, nil
	default:
		return Single, fmt.Errorf("unknown filing status %q", s)
	}
}

// Allowance returns the Sparer-Pauschbetrag for the filing status.
func (f Filing) Allowance() decimal.Decimal {
	if f == Married {
		return AllowanceMarried
	}
	return AllowanceSingle
}

// LossCap returns the §20(6) derivative loss cap for the filing status.
func (f Filing) LossCap() decimal.Decimal {
	if f == Married {
		return LossCapMarried
	}
	return LossCapSingle
}

// Settings carries the taxpayer profile every calculation depends on.
type Settings struct {
	Filing       Filing
	ChurchRate   decimal.Decimal // 0, 0.08 or 0.09
	MarginalRate decimal.Decimal // personal income-tax rate used for crypto gains
}

// Freigrenze returns the §23 threshold applicable to a tax year.
func Freigrenze(year int) decimal.Decimal {
	if year >= 2024 {
		return FreigrenzeFrom2024
	}
	return FreigrenzeBefore2024
}

// surcharges returns the solidarity surcharge and church tax on a base tax.
func surcharges(baseTax decimal.Decimal, s Settings) (solidarity, church decimal.Decimal) {
	return baseTax.Mul(SolidarityRate), baseTax.Mul(s.ChurchRate)
}

// clamp floors a figure at zero.
func clamp(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
