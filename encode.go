package depot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"
)

// Portfolio bundles everything a depot file describes: the trade ledger,
// the savings plans, and the market data both engines read.
type Portfolio struct {
	Ledger *Ledger
	Plans  []Plan
	Market *MarketData
}

// NewPortfolio returns an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{Ledger: NewLedger(), Market: NewMarketData()}
}

// Plan returns the plan with the given ID, or nil.
func (p *Portfolio) Plan(id string) *Plan {
	for i := range p.Plans {
		if p.Plans[i].ID == id {
			return &p.Plans[i]
		}
	}
	return nil
}

// CommandType is a typed string identifying the record kind of a JSONL line.
type CommandType string

const (
	CmdDeclare   CommandType = "declare"
	CmdBuy       CommandType = "buy"
	CmdSell      CommandType = "sell"
	CmdDividend  CommandType = "dividend"
	CmdInterest  CommandType = "interest"
	CmdPlan      CommandType = "plan"
	CmdStep      CommandType = "step"
	CmdComponent CommandType = "component"
	CmdPrice     CommandType = "price"
	CmdFx        CommandType = "fx"
)

// kind maps a transaction command to its TxKind.
func (c CommandType) kind() (TxKind, bool) {
	switch c {
	case CmdBuy:
		return Buy, true
	case CmdSell:
		return Sell, true
	case CmdDividend:
		return Dividend, true
	case CmdInterest:
		return Interest, true
	default:
		return Buy, false
	}
}

// Wire records. Field order is the canonical JSONL field order.

type declareRecord struct {
	Command      CommandType      `json:"command"`
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Class        AssetClass       `json:"class"`
	Ticker       string           `json:"ticker,omitempty"`
	Quantity     decimal.Decimal  `json:"quantity"`
	UnitPrice    decimal.Decimal  `json:"unitPrice"`
	Currency     string           `json:"currency"`
	Date         Date             `json:"date"`
	CurrentPrice *decimal.Decimal `json:"currentPrice,omitempty"`
	Status       Status           `json:"status"`
	Staking      bool             `json:"staking,omitempty"`
}

type txRecord struct {
	Command    CommandType     `json:"command"`
	ID         string          `json:"id"`
	Investment string          `json:"investment"`
	Date       Date            `json:"date"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Currency   string          `json:"currency"`
	Amount     decimal.Decimal `json:"amount,omitempty"`
}

type planRecord struct {
	Command   CommandType     `json:"command"`
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	FeePct    decimal.Decimal `json:"feePct"`
	Start     Date            `json:"start"`
	Rebalance bool            `json:"rebalance"`
}

type stepRecord struct {
	Command CommandType     `json:"command"`
	Plan    string          `json:"plan"`
	From    Date            `json:"from"`
	Amount  decimal.Decimal `json:"amount"`
}

type componentRecord struct {
	Command CommandType     `json:"command"`
	Plan    string          `json:"plan"`
	Symbol  string          `json:"symbol"`
	Target  decimal.Decimal `json:"target"`
}

type priceRecord struct {
	Command  CommandType     `json:"command"`
	Symbol   string          `json:"symbol"`
	Currency string          `json:"currency"`
	Date     Date            `json:"date"`
	Close    decimal.Decimal `json:"close"`
}

type fxRecord struct {
	Command  CommandType     `json:"command"`
	Currency string          `json:"currency"`
	Date     Date            `json:"date"`
	Rate     decimal.Decimal `json:"rate"`
}

// DecodePortfolio reads a stream of JSONL records, identifies each line by
// its command field, and assembles the complete portfolio.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	p := NewPortfolio()
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // skip empty lines
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command in line %d %q: %w", line, string(lineBytes), err)
		}

		switch identifier.Command {
		case CmdDeclare:
			var rec declareRecord
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			v := Investment{
				ID:           rec.ID,
				Name:         rec.Name,
				Class:        rec.Class,
				Ticker:       rec.Ticker,
				Quantity:     Q(rec.Quantity),
				UnitPrice:    M(rec.UnitPrice, rec.Currency),
				PurchaseDate: rec.Date,
				Status:       rec.Status,
				Staking:      rec.Staking,
			}
			if rec.CurrentPrice != nil {
				current := M(*rec.CurrentPrice, rec.Currency)
				v.CurrentPrice = &current
			}
			p.Ledger.AddInvestment(v)

		case CmdBuy, CmdSell, CmdDividend, CmdInterest:
			var rec txRecord
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			kind, _ := identifier.Command.kind()
			tx := NewTransaction(rec.ID, rec.Investment, kind, rec.Date, Q(rec.Quantity), M(rec.UnitPrice, rec.Currency))
			if !rec.Amount.IsZero() {
				tx = tx.WithAmount(M(rec.Amount, rec.Currency))
			}
			p.Ledger.Append(tx)

		case CmdPlan:
			var rec planRecord
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			p.Plans = append(p.Plans, Plan{
				ID:        rec.ID,
				Name:      rec.Name,
				Amount:    M(rec.Amount, BaseCurrency),
				FeePct:    Q(rec.FeePct),
				Start:     rec.Start,
				Rebalance: rec.Rebalance,
			})

		case CmdStep:
			var rec stepRecord
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			plan := p.Plan(rec.Plan)
			if plan == nil {
				return nil, fmt.Errorf("line %d: step for unknown plan %q", line, rec.Plan)
			}
			plan.Steps = append(plan.Steps, ContributionStep{From: rec.From, Amount: M(rec.Amount, BaseCurrency)})

		case CmdComponent:
			var rec componentRecord
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			plan := p.Plan(rec.Plan)
			if plan == nil {
				return nil, fmt.Errorf("line %d: component for unknown plan %q", line, rec.Plan)
			}
			plan.Components = append(plan.Components, Component{Symbol: rec.Symbol, Target: Q(rec.Target)})

		case CmdPrice:
			var rec priceRecord
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			p.Market.AddPrice(rec.Symbol, rec.Currency, rec.Date, rec.Close)

		case CmdFx:
			var rec fxRecord
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			p.Market.AddRate(rec.Currency, rec.Date, rec.Rate)

		default:
			return nil, fmt.Errorf("line %d: unknown command %q", line, identifier.Command)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading portfolio: %w", err)
	}
	return p, nil
}

// EncodeTransaction writes one transaction as a JSONL line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	rec := txRecord{
		Command:    CommandType(tx.Kind.String()),
		ID:         tx.ID,
		Investment: tx.InvestmentID,
		Date:       tx.Date,
		Quantity:   tx.Quantity.Decimal(),
		UnitPrice:  tx.UnitPrice.Decimal(),
		Currency:   tx.UnitPrice.Currency(),
		Amount:     tx.amount.Decimal(),
	}
	return writeLine(w, rec)
}

// EncodePortfolio writes the whole portfolio in canonical JSONL form:
// declarations, transactions, plans with their steps and components, then
// market data.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	for v := range p.Ledger.Investments() {
		rec := declareRecord{
			Command:   CmdDeclare,
			ID:        v.ID,
			Name:      v.Name,
			Class:     v.Class,
			Ticker:    v.Ticker,
			Quantity:  v.Quantity.Decimal(),
			UnitPrice: v.UnitPrice.Decimal(),
			Currency:  v.UnitPrice.Currency(),
			Date:      v.PurchaseDate,
			Status:    v.Status,
			Staking:   v.Staking,
		}
		if v.CurrentPrice != nil {
			current := v.CurrentPrice.Decimal()
			rec.CurrentPrice = &current
		}
		if err := writeLine(w, rec); err != nil {
			return err
		}
	}
	for tx := range p.Ledger.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	for _, plan := range p.Plans {
		rec := planRecord{
			Command:   CmdPlan,
			ID:        plan.ID,
			Name:      plan.Name,
			Amount:    plan.Amount.Decimal(),
			FeePct:    plan.FeePct.Decimal(),
			Start:     plan.Start,
			Rebalance: plan.Rebalance,
		}
		if err := writeLine(w, rec); err != nil {
			return err
		}
		for _, step := range plan.Steps {
			if err := writeLine(w, stepRecord{Command: CmdStep, Plan: plan.ID, From: step.From, Amount: step.Amount.Decimal()}); err != nil {
				return err
			}
		}
		for _, component := range plan.Components {
			if err := writeLine(w, componentRecord{Command: CmdComponent, Plan: plan.ID, Symbol: component.Symbol, Target: component.Target.Decimal()}); err != nil {
				return err
			}
		}
	}
	for _, symbol := range sortedKeys(p.Market.prices) {
		series := p.Market.prices[symbol]
		for on, close := range series.closes.Values() {
			if err := writeLine(w, priceRecord{Command: CmdPrice, Symbol: symbol, Currency: series.currency, Date: on, Close: close}); err != nil {
				return err
			}
		}
	}
	for _, currency := range sortedKeys(p.Market.rates) {
		for on, rate := range p.Market.rates[currency].Values() {
			if err := writeLine(w, fxRecord{Command: CmdFx, Currency: currency, Date: on, Rate: rate}); err != nil {
				return err
			}
		}
	}
	return nil
}

// sortedKeys keeps the encoded form canonical.
func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func writeLine(w io.Writer, record any) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
