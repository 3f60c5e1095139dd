package depot

import "math"

// Cashflow is one dated, signed money flow: negative for money paid in,
// positive for money received.
type Cashflow struct {
	Date   Date
	Amount float64
}

// Newton-Raphson controls for XIRR. Discounting raises (1+r) to fractional
// day exponents, so this engine works in float space.
const (
	xirrMaxIterations = 50
	xirrConvergence   = 1e-10 // stop once successive rate estimates are this close
	xirrMinDerivative = 1e-12 // below this the NPV curve is flat, abort
	xirrDefaultGuess  = 0.10
)

// XIRR solves the internal rate of return of a series of dated, irregular
// cashflows, ordered by date. It requires at least one inflow and one
// outflow and returns ok=false when the input is degenerate or the
// iteration does not land on a finite rate.
//
// The solver is deterministic for identical input ordering. Global
// convergence for pathological cashflow patterns is not guaranteed.
func XIRR(flows []Cashflow) (rate float64, ok bool) {
	return XIRRGuess(flows, xirrDefaultGuess)
}

// XIRRGuess is XIRR with an explicit initial rate estimate.
func XIRRGuess(flows []Cashflow, guess float64) (rate float64, ok bool) {
	if len(flows) == 0 {
		return 0, false
	}
	var hasPositive, hasNegative bool
	for _, flow := range flows {
		if flow.Amount > 0 {
			hasPositive = true
		}
		if flow.Amount < 0 {
			hasNegative = true
		}
	}
	if !hasPositive || !hasNegative {
		return 0, false
	}

	// Exponents are measured in years from the first cashflow.
	first := flows[0].Date
	years := make([]float64, len(flows))
	for i, flow := range flows {
		years[i] = float64(flow.Date.DaysSince(first)) / 365.0
	}

	rate = guess
	for range xirrMaxIterations {
		var npv, derivative float64
		for i, flow := range flows {
			factor := math.Pow(1+rate, years[i])
			npv += flow.Amount / factor
			derivative -= years[i] * flow.Amount / (factor * (1 + rate))
		}
		if math.IsNaN(npv) || math.IsInf(npv, 0) {
			return 0, false
		}
		if math.Abs(derivative) < xirrMinDerivative {
			return 0, false
		}
		next := rate - npv/derivative
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, false
		}
		if math.Abs(next-rate) < xirrConvergence {
			return next, true
		}
		rate = next
	}
	return rate, true
}
