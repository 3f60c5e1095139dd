package depot

import (
	"testing"
	"time"
)

// demoLedger has one held equity position and one fund sold off in 2024.
func demoLedger() *Ledger {
	ledger := NewLedger()

	equityPrice := M(110, "EUR")
	ledger.AddInvestment(Investment{
		ID:           "acme",
		Name:         "Acme Corp",
		Class:        Equity,
		Quantity:     Q(10),
		UnitPrice:    M(100, "EUR"),
		PurchaseDate: NewDate(2023, time.February, 1),
		CurrentPrice: &equityPrice,
		Status:       Active,
	})
	ledger.AddInvestment(Investment{
		ID:           "world",
		Name:         "World Fund",
		Class:        Fund,
		Quantity:     Q(100),
		UnitPrice:    M(10, "EUR"),
		PurchaseDate: NewDate(2023, time.March, 1),
		Status:       Sold,
	})
	ledger.Append(NewTransaction("t1", "world", Sell, NewDate(2024, time.June, 1), Q(100), M(11.5, "EUR")))
	return ledger
}

func TestAggregate_ModesSelectPositions(t *testing.T) {
	ledger := demoLedger()

	classes := func(s *PortfolioSummary) []AssetClass {
		var out []AssetClass
		for _, row := range s.Rows {
			out = append(out, row.Class)
		}
		return out
	}

	holdings := Aggregate(ledger, Filter{Mode: Holdings})
	if got := classes(holdings); len(got) != 1 || got[0] != Equity {
		t.Errorf("holdings classes = %v, want [Equity]", got)
	}

	realized := Aggregate(ledger, Filter{Mode: Realized})
	if got := classes(realized); len(got) != 1 || got[0] != Fund {
		t.Errorf("realized classes = %v, want [Fund]", got)
	}

	combined := Aggregate(ledger, Filter{})
	if got := classes(combined); len(got) != 2 {
		t.Errorf("combined classes = %v, want both", got)
	}
}

func TestAggregate_EconomicValueShare(t *testing.T) {
	summary := Aggregate(demoLedger(), Filter{})

	var equityRow, fundRow ClassRow
	for _, row := range summary.Rows {
		switch row.Class {
		case Equity:
			equityRow = row
		case Fund:
			fundRow = row
		}
	}

	// equity: 10 units at 110 market, no sales
	if !equityRow.MarketValue.Equal(M(1100, "EUR")) {
		t.Errorf("equity market value = %s, want €1100.00", equityRow.MarketValue)
	}
	if !equityRow.UnrealizedPL.Equal(M(100, "EUR")) {
		t.Errorf("equity unrealized = %s, want €100.00", equityRow.UnrealizedPL)
	}
	// fund: sold out entirely, realized 150 still counts toward the share
	if !fundRow.MarketValue.IsZero() {
		t.Errorf("fund market value = %s, want 0", fundRow.MarketValue)
	}
	if !fundRow.RealizedPL.Equal(M(150, "EUR")) {
		t.Errorf("fund realized = %s, want €150.00", fundRow.RealizedPL)
	}
	// economic value: 1100 vs 150 out of 1250
	if !equityRow.Share.Equal(Percent(88)) {
		t.Errorf("equity share = %s, want 88%%", equityRow.Share)
	}
	if !fundRow.Share.Equal(Percent(12)) {
		t.Errorf("fund share = %s, want 12%%", fundRow.Share)
	}
	if !summary.Total.Share.Equal(Percent(100)) {
		t.Errorf("total share = %s, want 100%%", summary.Total.Share)
	}
	if summary.Total.Positions != 2 {
		t.Errorf("total positions = %d, want 2", summary.Total.Positions)
	}
	if !summary.Total.TotalPL.Equal(M(250, "EUR")) {
		t.Errorf("total P&L = %s, want €250.00", summary.Total.TotalPL)
	}
}

func TestAggregate_YearWithoutActivity(t *testing.T) {
	summary := Aggregate(demoLedger(), Filter{Year: 2022, Mode: Realized})
	if len(summary.Rows) != 0 {
		t.Errorf("rows = %v, want none for a year without sells", summary.Rows)
	}
	if !summary.Total.Share.Equal(Percent(0)) {
		t.Errorf("total share = %s, want 0%% for an empty summary", summary.Total.Share)
	}
}

func TestAggregate_YearFilterScopesRealized(t *testing.T) {
	summary := Aggregate(demoLedger(), Filter{Year: 2024, Mode: Realized})
	if len(summary.Rows) != 1 {
		t.Fatalf("rows = %v, want the fund only", summary.Rows)
	}
	if !summary.Rows[0].RealizedPL.Equal(M(150, "EUR")) {
		t.Errorf("2024 realized = %s, want €150.00", summary.Rows[0].RealizedPL)
	}
}
