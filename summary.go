package depot

import "sort"

// YearSummary reduces one calendar year of simulation rows.
type YearSummary struct {
	Year                    int
	Contributions           Money
	Fees                    Money
	EndValue                Money // value of the chronologically last row in the year
	EndDate                 Date
	CumulativeContributions Money // contributions from the plan start through this year
	UnrealizedPL            Money // end value minus cumulative contributions
	Performance             Percent
}

// LifetimeSummary mirrors the yearly reduction over the whole simulation.
type LifetimeSummary struct {
	Start            Date
	Contributions    Money
	Fees             Money
	EndValue         Money
	EndDate          Date
	UnrealizedPL     Money
	Performance      Percent
	AnnualizedReturn Percent // XIRR over contributions and final value
	Annualized       bool    // false when the rate is indeterminate
}

// SimulationSummary holds the yearly and lifetime reductions of a
// simulation run.
type SimulationSummary struct {
	Years    []YearSummary
	Lifetime LifetimeSummary
}

// BuildSummary buckets simulation rows by calendar year and reduces them
// into yearly and lifetime figures. Within a year the chronologically last
// row wins for end value and end date, regardless of insertion order.
func BuildSummary(rows []SimulationRow, start Date) *SimulationSummary {
	summary := &SimulationSummary{Lifetime: LifetimeSummary{Start: start.EndOf(Monthly)}}
	if len(rows) == 0 {
		return summary
	}

	byYear := make(map[int]*YearSummary)
	for _, row := range rows {
		year, ok := byYear[row.Date.Year()]
		if !ok {
			year = &YearSummary{Year: row.Date.Year()}
			byYear[row.Date.Year()] = year
		}
		year.Contributions = year.Contributions.Add(row.Contribution)
		year.Fees = year.Fees.Add(row.Fee)
		if year.EndDate.IsZero() || row.Date.After(year.EndDate) {
			year.EndDate = row.Date
			year.EndValue = row.Value
		}
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	var cumulative Money
	lifetime := &summary.Lifetime
	for _, y := range years {
		year := byYear[y]
		cumulative = cumulative.Add(year.Contributions)
		year.CumulativeContributions = cumulative
		year.UnrealizedPL = year.EndValue.Sub(cumulative)
		year.Performance = year.UnrealizedPL.DivAmount(cumulative).Percent()
		summary.Years = append(summary.Years, *year)

		lifetime.Fees = lifetime.Fees.Add(year.Fees)
		if lifetime.EndDate.IsZero() || year.EndDate.After(lifetime.EndDate) {
			lifetime.EndDate = year.EndDate
			lifetime.EndValue = year.EndValue
		}
	}
	lifetime.Contributions = cumulative
	lifetime.UnrealizedPL = lifetime.EndValue.Sub(cumulative)
	lifetime.Performance = lifetime.UnrealizedPL.DivAmount(cumulative).Percent()

	if rate, ok := AnnualizedReturn(rows); ok {
		lifetime.AnnualizedReturn = Percent(rate * 100)
		lifetime.Annualized = true
	}
	return summary
}

// AnnualizedReturn computes the internal rate of return of a simulation:
// every monthly contribution is money paid in, and the final portfolio
// value is money received on the last simulated month.
func AnnualizedReturn(rows []SimulationRow) (rate float64, ok bool) {
	if len(rows) == 0 {
		return 0, false
	}
	flows := make([]Cashflow, 0, len(rows)+1)
	for _, row := range rows {
		flows = append(flows, Cashflow{Date: row.Date, Amount: -row.Contribution.Display()})
	}
	last := rows[len(rows)-1]
	flows = append(flows, Cashflow{Date: last.Date, Amount: last.Value.Display()})
	return XIRR(flows)
}
