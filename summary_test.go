package depot

import (
	"testing"
	"time"
)

func simulationRow(on Date, contribution, value float64) SimulationRow {
	return SimulationRow{
		Date:         on,
		Contribution: M(contribution, "EUR"),
		Value:        M(value, "EUR"),
	}
}

func TestBuildSummary_YearBuckets(t *testing.T) {
	rows := []SimulationRow{
		simulationRow(NewDate(2023, time.November, 30), 100, 101),
		simulationRow(NewDate(2023, time.December, 31), 100, 205),
		simulationRow(NewDate(2024, time.January, 31), 100, 310),
	}
	summary := BuildSummary(rows, NewDate(2023, time.November, 1))

	if len(summary.Years) != 2 {
		t.Fatalf("years = %d, want 2", len(summary.Years))
	}

	first := summary.Years[0]
	if first.Year != 2023 {
		t.Fatalf("first year = %d, want 2023", first.Year)
	}
	if !first.Contributions.Equal(M(200, "EUR")) {
		t.Errorf("2023 contributions = %s, want €200.00", first.Contributions)
	}
	if !first.EndValue.Equal(M(205, "EUR")) {
		t.Errorf("2023 end value = %s, want €205.00", first.EndValue)
	}
	if !first.UnrealizedPL.Equal(M(5, "EUR")) {
		t.Errorf("2023 unrealized = %s, want €5.00", first.UnrealizedPL)
	}
	if !first.Performance.Equal(Percent(2.5)) {
		t.Errorf("2023 performance = %s, want 2.5%%", first.Performance)
	}

	second := summary.Years[1]
	if !second.CumulativeContributions.Equal(M(300, "EUR")) {
		t.Errorf("2024 cumulative = %s, want €300.00", second.CumulativeContributions)
	}
	if !second.UnrealizedPL.Equal(M(10, "EUR")) {
		t.Errorf("2024 unrealized = %s, want €10.00", second.UnrealizedPL)
	}

	lifetime := summary.Lifetime
	if !lifetime.Contributions.Equal(M(300, "EUR")) {
		t.Errorf("lifetime contributions = %s, want €300.00", lifetime.Contributions)
	}
	if !lifetime.EndValue.Equal(M(310, "EUR")) {
		t.Errorf("lifetime end value = %s, want €310.00", lifetime.EndValue)
	}
	if lifetime.EndDate != NewDate(2024, time.January, 31) {
		t.Errorf("lifetime end date = %s, want 2024-01-31", lifetime.EndDate)
	}
	if !lifetime.Annualized {
		t.Error("lifetime rate not annualized, want XIRR to converge")
	}
}

func TestBuildSummary_LastRowByDateWins(t *testing.T) {
	// December delivered out of order must still set the year-end value.
	rows := []SimulationRow{
		simulationRow(NewDate(2023, time.December, 31), 100, 205),
		simulationRow(NewDate(2023, time.November, 30), 100, 101),
	}
	summary := BuildSummary(rows, NewDate(2023, time.November, 1))
	if !summary.Years[0].EndValue.Equal(M(205, "EUR")) {
		t.Errorf("end value = %s, want the December €205.00", summary.Years[0].EndValue)
	}
	if summary.Years[0].EndDate != NewDate(2023, time.December, 31) {
		t.Errorf("end date = %s, want 2023-12-31", summary.Years[0].EndDate)
	}
}

func TestBuildSummary_Empty(t *testing.T) {
	summary := BuildSummary(nil, NewDate(2024, time.January, 1))
	if len(summary.Years) != 0 {
		t.Errorf("years = %v, want none", summary.Years)
	}
	if summary.Lifetime.Annualized {
		t.Error("annualized = true for an empty simulation")
	}
	if !summary.Lifetime.Performance.Equal(Percent(0)) {
		t.Errorf("performance = %s, want 0%% with zero contributions", summary.Lifetime.Performance)
	}
}

func TestBuildSummary_FeesAccumulate(t *testing.T) {
	rows := []SimulationRow{
		simulationRow(NewDate(2024, time.January, 31), 100, 99),
		simulationRow(NewDate(2024, time.February, 29), 100, 198),
	}
	rows[0].Fee = M(1.5, "EUR")
	rows[1].Fee = M(1.5, "EUR")
	summary := BuildSummary(rows, NewDate(2024, time.January, 1))
	if !summary.Years[0].Fees.Equal(M(3, "EUR")) {
		t.Errorf("2024 fees = %s, want €3.00", summary.Years[0].Fees)
	}
	if !summary.Lifetime.Fees.Equal(M(3, "EUR")) {
		t.Errorf("lifetime fees = %s, want €3.00", summary.Lifetime.Fees)
	}
}

func TestAnnualizedReturn_MatchesXIRR(t *testing.T) {
	rows := []SimulationRow{
		simulationRow(NewDate(2023, time.January, 31), 1000, 1000),
		simulationRow(NewDate(2024, time.January, 31), 0, 1100),
	}
	rate, ok := AnnualizedReturn(rows)
	if !ok {
		t.Fatal("AnnualizedReturn() failed to converge")
	}
	if rate < 0.09 || rate > 0.11 {
		t.Errorf("rate = %g, want roughly 0.10", rate)
	}
}
