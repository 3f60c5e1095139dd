package depot

import "fmt"

// Mode selects which side of a position a year-filtered report is about.
type Mode int

const (
	Combined Mode = iota // holdings and realized sales together
	Realized             // positions with sales in the filtered year
	Holdings             // positions still held
)

func (m Mode) String() string {
	switch m {
	case Combined:
		return "combined"
	case Realized:
		return "realized"
	case Holdings:
		return "holdings"
	default:
		panic(fmt.Sprintf("unknown mode %d", m))
	}
}

// ParseMode parses the string representation of a report mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "combined", "":
		return Combined, nil
	case "realized":
		return Realized, nil
	case "holdings":
		return Holdings, nil
	default:
		return Combined, fmt.Errorf("unknown mode %q", s)
	}
}

// Filter scopes a metrics or summary computation to a calendar year.
// The zero Filter means all-time, combined view.
type Filter struct {
	Year int // 0 means all years
	Mode Mode
}

// AllTime reports whether the filter spans all years.
func (f Filter) AllTime() bool { return f.Year == 0 }

// PositionMetrics is the computed state of one investment position.
type PositionMetrics struct {
	Investment Investment

	BoughtQuantity    Quantity // initial purchase plus buy transactions
	WeightedBuyPrice  Money    // average unit cost over all buys
	SoldQuantity      Quantity // all-time total of sell quantities
	AvailableQuantity Quantity // bought minus sold, floored at zero
	PurchaseCost      Money    // total cost of all buys
	MarketValue       Money    // available quantity at current price, zero when price unknown

	RealizedPL     Money // all-time realized gain or loss
	RealizedPLYear Money // realized gain in the filtered year, zero for all-time filters
	SoldInYear     bool  // true when at least one sell falls in the filtered year
	UnrealizedPL   Money

	DisplayRealizedPL Money // the realized figure the filter mode asks for
	TotalPL           Money
	Performance       Percent // total P&L over purchase cost
}

// ComputeMetrics computes the full metrics record for one investment from
// its trade history. currentPrice may be nil when no quote is known; the
// market value is then zero.
//
// Realized gains always cost sells at the weighted buy price, and clamp the
// cost-bearing quantity at the bought quantity: a ledger whose sell totals
// exceed its buys is a data-entry defect, not a reason to crash.
func ComputeMetrics(v Investment, txs []Transaction, currentPrice *Money, filter Filter) PositionMetrics {
	metrics := PositionMetrics{Investment: v}

	bought := v.Quantity
	buyCost := v.PurchaseCost()
	for _, tx := range txs {
		if tx.InvestmentID != v.ID || tx.Kind != Buy {
			continue
		}
		bought = bought.Add(tx.Quantity)
		buyCost = buyCost.Add(tx.Amount())
	}

	// An investment without any purchase has no position to measure.
	if bought.IsZero() || bought.IsNegative() {
		return metrics
	}

	avgPrice := buyCost.Div(bought)

	var sold Quantity
	var proceeds Money
	var yearSold Quantity
	var yearProceeds Money
	for _, tx := range txs {
		if tx.InvestmentID != v.ID || tx.Kind != Sell {
			continue
		}
		sold = sold.Add(tx.Quantity)
		proceeds = proceeds.Add(tx.Amount())
		if !filter.AllTime() && tx.Date.Year() == filter.Year {
			yearSold = yearSold.Add(tx.Quantity)
			yearProceeds = yearProceeds.Add(tx.Amount())
			metrics.SoldInYear = true
		}
	}

	available := bought.Sub(sold).Floor()

	// min(sold, bought) bears the cost, guarding against inconsistent data.
	costBearing := sold.Min(bought)
	realized := proceeds.Sub(avgPrice.Mul(costBearing))

	var realizedYear Money
	if !filter.AllTime() {
		yearCostBearing := yearSold.Min(bought)
		realizedYear = yearProceeds.Sub(avgPrice.Mul(yearCostBearing))
	}

	var marketValue Money
	if currentPrice != nil {
		marketValue = currentPrice.Mul(available)
	}
	unrealized := marketValue.Sub(avgPrice.Mul(available))

	display := realized
	switch {
	case filter.Mode == Holdings:
		display = Money{cur: realized.cur}
	case !filter.AllTime():
		display = realizedYear
	}

	total := display.Add(unrealized)

	metrics.BoughtQuantity = bought
	metrics.WeightedBuyPrice = avgPrice
	metrics.SoldQuantity = sold
	metrics.AvailableQuantity = available
	metrics.PurchaseCost = buyCost
	metrics.MarketValue = marketValue
	metrics.RealizedPL = realized
	metrics.RealizedPLYear = realizedYear
	metrics.UnrealizedPL = unrealized
	metrics.DisplayRealizedPL = display
	metrics.TotalPL = total
	metrics.Performance = total.DivAmount(buyCost).Percent()
	return metrics
}
