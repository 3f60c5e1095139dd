package depot

// Component is one instrument of a savings plan with its target weight.
// Weights are fractions (0–1); the set of a plan's weights is expected to
// sum to one, but the engine never enforces it: drift is simply measured
// against whatever targets are given.
type Component struct {
	Symbol string
	Target Quantity
}

// ContributionStep changes the monthly contribution from a given month on.
type ContributionStep struct {
	From   Date
	Amount Money
}

// Plan is a monthly contribution plan into a set of weighted components.
// All valuations settle in EUR.
type Plan struct {
	ID         string
	Name       string
	Amount     Money              // fixed monthly contribution
	Steps      []ContributionStep // optional stepped amounts, latest step at or before the month wins
	FeePct     Quantity           // fee fraction charged on each contribution, zero when unset
	Start      Date
	Rebalance  bool // steer contributions toward target weights
	Components []Component
}

// StartMonth returns the canonical first simulated month: the end of the
// month of the plan's start date.
func (p Plan) StartMonth() Date { return p.Start.EndOf(Monthly) }

// ContributionFor returns the gross contribution for a given month. With
// steps defined, the latest step starting at or before the month applies;
// before the first step, or without steps, the fixed amount does.
func (p Plan) ContributionFor(month Date) Money {
	amount := p.Amount
	var latest Date
	for _, step := range p.Steps {
		from := step.From.EndOf(Monthly)
		if from.After(month.EndOf(Monthly)) {
			continue
		}
		if latest.IsZero() || from.After(latest) {
			latest = from
			amount = step.Amount
		}
	}
	return amount
}

// Component returns the plan component for a symbol, or nil.
func (p Plan) Component(symbol string) *Component {
	for i := range p.Components {
		if p.Components[i].Symbol == symbol {
			return &p.Components[i]
		}
	}
	return nil
}
