package depot

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

// twoComponentPlan returns a 50/50 plan contributing 100 EUR per month.
func twoComponentPlan(rebalance bool) Plan {
	return Plan{
		ID:        "p1",
		Name:      "Two Components",
		Amount:    M(100, "EUR"),
		Start:     NewDate(2024, time.January, 15),
		Rebalance: rebalance,
		Components: []Component{
			{Symbol: "AAA", Target: Q(0.5)},
			{Symbol: "BBB", Target: Q(0.5)},
		},
	}
}

func price(market *MarketData, symbol string, on Date, value float64) {
	market.AddPrice(symbol, "EUR", on, decimal.NewFromFloat(value))
}

func TestSimulate_RebalancingFavorsLaggingComponent(t *testing.T) {
	// One component's price doubles while the other stays flat: the whole
	// next contribution must go to the lagging one.
	market := NewMarketData()
	jan := NewDate(2024, time.January, 31)
	feb := NewDate(2024, time.February, 29)
	price(market, "AAA", jan, 10)
	price(market, "BBB", jan, 10)
	price(market, "AAA", feb, 20)
	price(market, "BBB", feb, 10)

	rows := Simulate(twoComponentPlan(true), market, feb)
	if len(rows) != 2 {
		t.Fatalf("Simulate() returned %d rows, want 2", len(rows))
	}

	first := rows[0]
	for _, snapshot := range first.Components {
		if !snapshot.Units.Equal(Q(5)) {
			t.Errorf("month 1 %s units = %s, want 5", snapshot.Symbol, snapshot.Units)
		}
	}

	second := rows[1]
	units := map[string]Quantity{}
	for _, snapshot := range second.Components {
		units[snapshot.Symbol] = snapshot.Units
	}
	if !units["AAA"].Equal(Q(5)) {
		t.Errorf("month 2 AAA units = %s, want 5 (no allocation to the overweight component)", units["AAA"])
	}
	if !units["BBB"].Equal(Q(15)) {
		t.Errorf("month 2 BBB units = %s, want 15 (full contribution to the lagging component)", units["BBB"])
	}
	if !second.Value.Equal(M(250, "EUR")) {
		t.Errorf("month 2 value = %s, want €250.00", second.Value)
	}
}

func TestSimulate_DriftSumsToZero(t *testing.T) {
	market := NewMarketData()
	jan := NewDate(2024, time.January, 31)
	feb := NewDate(2024, time.February, 29)
	price(market, "AAA", jan, 10)
	price(market, "BBB", jan, 10)
	price(market, "AAA", feb, 20)
	price(market, "BBB", feb, 10)

	rows := Simulate(twoComponentPlan(true), market, feb)
	second := rows[1]
	var sum Quantity
	for _, snapshot := range second.Components {
		sum = sum.Add(snapshot.Drift)
	}
	// 50/50 targets: drifts are symmetric
	if !sum.IsZero() {
		t.Errorf("drift sum = %s, want 0", sum)
	}
	for _, snapshot := range second.Components {
		want := Q(0.1)
		if snapshot.Symbol == "AAA" {
			want = Q(0.1).Neg()
		}
		if !snapshot.Drift.Equal(want) {
			t.Errorf("%s drift = %s, want %s", snapshot.Symbol, snapshot.Drift, want)
		}
	}
}

func TestSimulate_WithoutRebalancingSplitsByTarget(t *testing.T) {
	market := NewMarketData()
	jan := NewDate(2024, time.January, 31)
	feb := NewDate(2024, time.February, 29)
	price(market, "AAA", jan, 10)
	price(market, "BBB", jan, 10)
	price(market, "AAA", feb, 20)
	price(market, "BBB", feb, 10)

	rows := Simulate(twoComponentPlan(false), market, feb)
	second := rows[1]
	units := map[string]Quantity{}
	for _, snapshot := range second.Components {
		units[snapshot.Symbol] = snapshot.Units
	}
	// 50 EUR each regardless of drift: AAA 5 + 50/20, BBB 5 + 50/10
	if !units["AAA"].Equal(Q(7.5)) {
		t.Errorf("AAA units = %s, want 7.5", units["AAA"])
	}
	if !units["BBB"].Equal(Q(10)) {
		t.Errorf("BBB units = %s, want 10", units["BBB"])
	}
}

func TestSimulate_FeeReducesInvestedCash(t *testing.T) {
	plan := twoComponentPlan(false)
	plan.FeePct = Q(0.015)
	market := NewMarketData()
	jan := NewDate(2024, time.January, 31)
	price(market, "AAA", jan, 10)
	price(market, "BBB", jan, 10)

	rows := Simulate(plan, market, jan)
	if len(rows) != 1 {
		t.Fatalf("Simulate() returned %d rows, want 1", len(rows))
	}
	if !rows[0].Fee.Equal(M(1.5, "EUR")) {
		t.Errorf("fee = %s, want €1.50", rows[0].Fee)
	}
	if !rows[0].Value.Equal(M(98.5, "EUR")) {
		t.Errorf("value = %s, want €98.50", rows[0].Value)
	}
}

func TestSimulate_MissingPriceSkipsComponentButKeepsUnits(t *testing.T) {
	market := NewMarketData()
	jan := NewDate(2024, time.January, 31)
	feb := NewDate(2024, time.February, 29)
	mar := NewDate(2024, time.March, 31)
	price(market, "AAA", jan, 10)
	price(market, "BBB", jan, 10)
	price(market, "AAA", feb, 10)
	// BBB has no February price
	price(market, "AAA", mar, 10)
	price(market, "BBB", mar, 10)

	rows := Simulate(twoComponentPlan(false), market, mar)
	if len(rows) != 3 {
		t.Fatalf("Simulate() returned %d rows, want 3", len(rows))
	}

	second := rows[1]
	if len(second.Components) != 1 || second.Components[0].Symbol != "AAA" {
		t.Fatalf("month 2 components = %v, want only AAA", second.Components)
	}
	// AAA received only its own 50 EUR share in February
	if !second.Components[0].Units.Equal(Q(10)) {
		t.Errorf("month 2 AAA units = %s, want 10", second.Components[0].Units)
	}

	third := rows[2]
	units := map[string]Quantity{}
	for _, snapshot := range third.Components {
		units[snapshot.Symbol] = snapshot.Units
	}
	// BBB kept its January units through the gap and bought again in March
	if !units["BBB"].Equal(Q(10)) {
		t.Errorf("month 3 BBB units = %s, want 10", units["BBB"])
	}
}

func TestSimulate_UnitsAreMonotonicallyNonDecreasing(t *testing.T) {
	market := NewMarketData()
	on := NewDate(2024, time.January, 1)
	for i := range 12 {
		price(market, "AAA", on.AddMonth(i), float64(10+i))
		price(market, "BBB", on.AddMonth(i), float64(20-i))
	}

	rows := Simulate(twoComponentPlan(true), market, on.AddMonth(11))
	previous := map[string]Quantity{}
	for _, row := range rows {
		for _, snapshot := range row.Components {
			if snapshot.Units.LessThan(previous[snapshot.Symbol]) {
				t.Fatalf("%s units decreased on %s: %s < %s",
					snapshot.Symbol, row.Date, snapshot.Units, previous[snapshot.Symbol])
			}
			previous[snapshot.Symbol] = snapshot.Units
		}
	}
}

func TestSimulate_IsDeterministic(t *testing.T) {
	market := NewMarketData()
	on := NewDate(2023, time.March, 1)
	for i := range 24 {
		price(market, "AAA", on.AddMonth(i), 10+0.37*float64(i))
		price(market, "BBB", on.AddMonth(i), 30-0.21*float64(i))
	}
	plan := twoComponentPlan(true)
	plan.Start = NewDate(2023, time.March, 1)

	first := Simulate(plan, market, on.AddMonth(23))
	second := Simulate(plan, market, on.AddMonth(23))
	if !reflect.DeepEqual(first, second) {
		t.Error("two runs over identical inputs produced different rows")
	}
}

func TestSimulate_FxConversion(t *testing.T) {
	plan := Plan{
		ID:         "fx",
		Amount:     M(108, "EUR"),
		Start:      NewDate(2024, time.January, 1),
		Components: []Component{{Symbol: "USTEC", Target: Q(1)}},
	}
	market := NewMarketData()
	jan := NewDate(2024, time.January, 31)
	market.AddPrice("USTEC", "USD", jan, decimal.NewFromInt(54))
	market.AddRate("USD", jan, decimal.NewFromFloat(1.08))

	rows := Simulate(plan, market, jan)
	if len(rows) != 1 {
		t.Fatalf("Simulate() returned %d rows, want 1", len(rows))
	}
	snapshot := rows[0].Components[0]
	// 54 USD / 1.08 = 50 EUR per unit, 108 EUR buys 2.16 units
	if !snapshot.SettlementPrice.Equal(M(50, "EUR")) {
		t.Errorf("settlement price = %s, want €50.00", snapshot.SettlementPrice)
	}
	if !snapshot.Units.Equal(Q(2.16)) {
		t.Errorf("units = %s, want 2.16", snapshot.Units)
	}

	// without the rate the component is skipped entirely
	bare := NewMarketData()
	bare.AddPrice("USTEC", "USD", jan, decimal.NewFromInt(54))
	rows = Simulate(plan, bare, jan)
	if len(rows[0].Components) != 0 {
		t.Errorf("components without FX rate = %v, want none", rows[0].Components)
	}
}

func TestSimulate_SteppedContributions(t *testing.T) {
	plan := twoComponentPlan(false)
	plan.Steps = []ContributionStep{
		{From: NewDate(2024, time.February, 1), Amount: M(200, "EUR")},
	}
	market := NewMarketData()
	jan := NewDate(2024, time.January, 31)
	feb := NewDate(2024, time.February, 29)
	price(market, "AAA", jan, 10)
	price(market, "BBB", jan, 10)
	price(market, "AAA", feb, 10)
	price(market, "BBB", feb, 10)

	rows := Simulate(plan, market, feb)
	if !rows[0].Contribution.Equal(M(100, "EUR")) {
		t.Errorf("January contribution = %s, want €100.00", rows[0].Contribution)
	}
	if !rows[1].Contribution.Equal(M(200, "EUR")) {
		t.Errorf("February contribution = %s, want €200.00", rows[1].Contribution)
	}
}
