package depot

import "sort"

// ClassRow sums the position metrics of one asset class.
type ClassRow struct {
	Class        AssetClass
	Positions    int
	PurchaseCost Money
	MarketValue  Money
	RealizedPL   Money
	UnrealizedPL Money
	TotalPL      Money
	Performance  Percent
	Share        Percent // share of the portfolio's economic value
}

// PortfolioSummary groups position metrics by asset class with a totals row.
type PortfolioSummary struct {
	Filter Filter
	Rows   []ClassRow
	Total  ClassRow
}

// economicValue is the market value plus realized gains: it keeps fully
// sold positions contributing to the share-of-portfolio denominator.
func (r ClassRow) economicValue() Money {
	return r.MarketValue.Add(r.RealizedPL)
}

// includes decides whether a position belongs to a report, according to the
// filter mode.
func includes(m PositionMetrics, filter Filter) bool {
	held := m.AvailableQuantity.IsPositive()
	soldInScope := m.SoldInYear
	if filter.AllTime() {
		soldInScope = m.SoldQuantity.IsPositive()
	}
	switch filter.Mode {
	case Holdings:
		return held
	case Realized:
		return soldInScope
	default:
		return held || soldInScope
	}
}

// Aggregate computes per-asset-class rows and a totals row for all
// investments in the ledger, scoped by the given filter.
func Aggregate(ledger *Ledger, filter Filter) *PortfolioSummary {
	summary := &PortfolioSummary{Filter: filter}

	byClass := make(map[AssetClass]*ClassRow)
	for v := range ledger.Investments() {
		m := ComputeMetrics(v, ledger.TransactionsOf(v.ID), v.CurrentPrice, filter)
		if !includes(m, filter) {
			continue
		}
		row, ok := byClass[v.Class]
		if !ok {
			row = &ClassRow{Class: v.Class}
			byClass[v.Class] = row
		}
		row.Positions++
		row.PurchaseCost = row.PurchaseCost.Add(m.PurchaseCost)
		row.MarketValue = row.MarketValue.Add(m.MarketValue)
		row.RealizedPL = row.RealizedPL.Add(m.DisplayRealizedPL)
		row.UnrealizedPL = row.UnrealizedPL.Add(m.UnrealizedPL)
		row.TotalPL = row.TotalPL.Add(m.TotalPL)
	}

	classes := make([]AssetClass, 0, len(byClass))
	for class := range byClass {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i] < classes[j] })

	total := ClassRow{}
	for _, class := range classes {
		row := byClass[class]
		row.Performance = row.TotalPL.DivAmount(row.PurchaseCost).Percent()
		total.Positions += row.Positions
		total.PurchaseCost = total.PurchaseCost.Add(row.PurchaseCost)
		total.MarketValue = total.MarketValue.Add(row.MarketValue)
		total.RealizedPL = total.RealizedPL.Add(row.RealizedPL)
		total.UnrealizedPL = total.UnrealizedPL.Add(row.UnrealizedPL)
		total.TotalPL = total.TotalPL.Add(row.TotalPL)
	}
	total.Performance = total.TotalPL.DivAmount(total.PurchaseCost).Percent()

	for _, class := range classes {
		row := byClass[class]
		row.Share = row.economicValue().DivAmount(total.economicValue()).Percent()
		summary.Rows = append(summary.Rows, *row)
	}
	total.Share = Percent(100)
	if total.economicValue().IsZero() {
		total.Share = Percent(0)
	}
	summary.Total = total
	return summary
}
