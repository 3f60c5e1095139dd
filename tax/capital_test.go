package tax

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func TestCapitalIncomeTax_WithinAllowance(t *testing.T) {
	result := CapitalIncomeTax(d(1000), Settings{Filing: Single})
	if !result.Taxable.IsZero() {
		t.Errorf("taxable = %s, want 0 at the allowance boundary", result.Taxable)
	}
	if !result.Total.IsZero() {
		t.Errorf("total = %s, want 0", result.Total)
	}
}

func TestCapitalIncomeTax_JustAboveAllowance(t *testing.T) {
	result := CapitalIncomeTax(d(1000.01), Settings{Filing: Single})
	if !result.Taxable.Equal(d(0.01)) {
		t.Errorf("taxable = %s, want 0.01", result.Taxable)
	}
	if !result.BaseTax.Equal(d(0.0025)) {
		t.Errorf("base tax = %s, want 0.0025", result.BaseTax)
	}
}

func TestCapitalIncomeTax_WithChurchTax(t *testing.T) {
	settings := Settings{Filing: Single, ChurchRate: d(0.09)}
	result := CapitalIncomeTax(d(1500), settings)

	if !result.Taxable.Equal(d(500)) {
		t.Errorf("taxable = %s, want 500", result.Taxable)
	}
	if !result.BaseTax.Equal(d(125)) {
		t.Errorf("base tax = %s, want 125", result.BaseTax)
	}
	if !result.Solidarity.Equal(d(6.875)) {
		t.Errorf("solidarity = %s, want 6.875", result.Solidarity)
	}
	if !result.Church.Equal(d(11.25)) {
		t.Errorf("church = %s, want 11.25", result.Church)
	}
	if !result.Total.Equal(d(143.125)) {
		t.Errorf("total = %s, want 143.125", result.Total)
	}
}

func TestCapitalIncomeTax_MarriedDoublesAllowance(t *testing.T) {
	result := CapitalIncomeTax(d(2000), Settings{Filing: Married})
	if !result.Total.IsZero() {
		t.Errorf("total = %s, want 0 within the joint allowance", result.Total)
	}
	result = CapitalIncomeTax(d(3000), Settings{Filing: Married})
	if !result.Taxable.Equal(d(1000)) {
		t.Errorf("taxable = %s, want 1000", result.Taxable)
	}
}

func TestCapitalIncomeTax_NegativeIncomeClamps(t *testing.T) {
	result := CapitalIncomeTax(d(-500), Settings{Filing: Single})
	if !result.Income.IsZero() || !result.Total.IsZero() {
		t.Errorf("negative income result = %+v, want zeros", result)
	}
}

func TestParseFiling(t *testing.T) {
	if got, err := ParseFiling("married"); err != nil || got != Married {
		t.Errorf("ParseFiling(\"married\") = %v, %v", got, err)
	}
	if got, err := ParseFiling(""); err != nil || got != Single {
		t.Errorf("ParseFiling(\"\") = %v, %v", got, err)
	}
	if _, err := ParseFiling("divorced"); err == nil {
		t.Error("ParseFiling(\"divorced\") did not fail")
	}
}
