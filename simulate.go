package depot

// ComponentSnapshot is the state of one plan component at a month end.
type ComponentSnapshot struct {
	Symbol          string
	Units           Quantity
	Price           Money    // closing price in the component's currency
	SettlementPrice Money    // closing price converted to EUR
	Value           Money    // units at the settlement price
	Target          Quantity // target weight
	Drift           Quantity // actual weight minus target weight
}

// SimulationRow is the full valuation snapshot of one simulated month.
type SimulationRow struct {
	Date         Date
	Contribution Money
	Fee          Money
	Value        Money // portfolio value after this month's purchases
	Components   []ComponentSnapshot
}

// Simulate steps a plan month by month from its start month through the
// month of 'until', buying units with each month's net contribution and
// emitting one row per month.
//
// The walk is inherently sequential: each month starts from the unit counts
// the previous month ended with, threaded through the loop as a local map.
// Unit counts only ever grow; the engine has no sell operation. A component
// without a price or a required exchange rate for a month is left out of
// that month's row and receives no allocation, but its accumulated units
// survive until a price shows up again.
func Simulate(plan Plan, market *MarketData, until Date) []SimulationRow {
	var rows []SimulationRow
	units := make(map[string]Quantity, len(plan.Components))

	for month := range MonthEnds(plan.StartMonth(), until) {
		// Valuation of the previous month's holdings at this month's prices.
		type priced struct {
			component Component
			price     Money // component currency
			settle    Money // EUR
			preValue  Money
		}
		var pricedComponents []priced
		var preValue Money
		for _, component := range plan.Components {
			price, ok := market.PriceOn(component.Symbol, month)
			if !ok {
				continue
			}
			settle, ok := market.Convert(price, month)
			if !ok {
				continue
			}
			value := settle.Mul(units[component.Symbol])
			pricedComponents = append(pricedComponents, priced{component, price, settle, value})
			preValue = preValue.Add(value)
		}

		contribution := plan.ContributionFor(month)
		fee := contribution.Mul(plan.FeePct)
		cash := contribution.Sub(fee)

		// Allocation of the net contribution across priced components.
		allocations := make(map[string]Money, len(pricedComponents))
		if plan.Rebalance && preValue.IsPositive() {
			// Steer toward targets: only components below target receive
			// cash, proportional to how far below they are.
			var needSum Quantity
			needs := make(map[string]Quantity, len(pricedComponents))
			for _, pc := range pricedComponents {
				weight := pc.preValue.DivAmount(preValue)
				need := pc.component.Target.Sub(weight)
				if need.IsPositive() {
					needs[pc.component.Symbol] = need
					needSum = needSum.Add(need)
				}
			}
			if needSum.IsPositive() {
				for symbol, need := range needs {
					allocations[symbol] = cash.Mul(need.Div(needSum))
				}
			} else {
				// Everything at or above target: fall back to raw target
				// weights, even though that can widen an overweight.
				for _, pc := range pricedComponents {
					allocations[pc.component.Symbol] = cash.Mul(pc.component.Target)
				}
			}
		} else {
			for _, pc := range pricedComponents {
				allocations[pc.component.Symbol] = cash.Mul(pc.component.Target)
			}
		}

		for _, pc := range pricedComponents {
			allocation, ok := allocations[pc.component.Symbol]
			if !ok {
				continue
			}
			units[pc.component.Symbol] = units[pc.component.Symbol].Add(allocation.DivPrice(pc.settle))
		}

		// Post-purchase revaluation and drift.
		row := SimulationRow{
			Date:         month,
			Contribution: contribution,
			Fee:          fee,
		}
		var portfolioValue Money
		for _, pc := range pricedComponents {
			value := pc.settle.Mul(units[pc.component.Symbol])
			portfolioValue = portfolioValue.Add(value)
			row.Components = append(row.Components, ComponentSnapshot{
				Symbol:          pc.component.Symbol,
				Units:           units[pc.component.Symbol],
				Price:           pc.price,
				SettlementPrice: pc.settle,
				Value:           value,
				Target:          pc.component.Target,
			})
		}
		for i := range row.Components {
			snapshot := &row.Components[i]
			// zero drift when the portfolio is worth nothing
			snapshot.Drift = snapshot.Value.DivAmount(portfolioValue).Sub(snapshot.Target)
			if portfolioValue.IsZero() {
				snapshot.Drift = Quantity{}
			}
		}
		row.Value = portfolioValue
		rows = append(rows, row)
	}
	return rows
}
