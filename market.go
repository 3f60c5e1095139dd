package depot

import "github.com/shopspring/decimal"

// BaseCurrency is the settlement currency every valuation is expressed in.
const BaseCurrency = "EUR"

// priceSeries is one symbol's monthly closing prices in its trading currency.
type priceSeries struct {
	currency string
	closes   History[decimal.Decimal]
}

// MarketData holds monthly closing prices per symbol and EUR-based exchange
// rates per quote currency. All dates are normalized to month end on entry,
// so lookups by month end are exact.
type MarketData struct {
	prices map[string]*priceSeries
	rates  map[string]*History[decimal.Decimal] // quote currency -> EUR-based rate (quote per EUR)
}

// NewMarketData returns a new empty market data collection.
func NewMarketData() *MarketData {
	return &MarketData{
		prices: make(map[string]*priceSeries),
		rates:  make(map[string]*History[decimal.Decimal]),
	}
}

// AddPrice records a closing price for a symbol in its trading currency.
// A second price in the same month overwrites the first.
func (m *MarketData) AddPrice(symbol, currency string, on Date, close decimal.Decimal) {
	series, ok := m.prices[symbol]
	if !ok {
		series = &priceSeries{currency: currency}
		m.prices[symbol] = series
	}
	series.currency = currency
	series.closes.Append(on.EndOf(Monthly), close)
}

// AddRate records the exchange rate of a quote currency against EUR
// (quote units per euro) for a month.
func (m *MarketData) AddRate(quote string, on Date, rate decimal.Decimal) {
	history, ok := m.rates[quote]
	if !ok {
		history = &History[decimal.Decimal]{}
		m.rates[quote] = history
	}
	history.Append(on.EndOf(Monthly), rate)
}

// Currency returns the trading currency of a symbol, or "" when unknown.
func (m *MarketData) Currency(symbol string) string {
	series, ok := m.prices[symbol]
	if !ok {
		return ""
	}
	return series.currency
}

// PriceOn returns the closing price of a symbol for the month of 'on', in
// the symbol's trading currency. ok is false when no price exists for that
// month.
func (m *MarketData) PriceOn(symbol string, on Date) (Money, bool) {
	series, ok := m.prices[symbol]
	if !ok {
		return Money{}, false
	}
	close, ok := series.closes.Get(on.EndOf(Monthly))
	if !ok {
		return Money{}, false
	}
	return M(close, series.currency), true
}

// Convert expresses an amount in the settlement currency using the rate
// table for the month of 'on'. Amounts already in EUR pass through; for any
// other currency the conversion is amount / rate, and ok is false when the
// month has no rate.
func (m *MarketData) Convert(amount Money, on Date) (Money, bool) {
	if amount.Currency() == BaseCurrency || amount.Currency() == "" {
		return M(amount.value, BaseCurrency), true
	}
	history, ok := m.rates[amount.Currency()]
	if !ok {
		return Money{}, false
	}
	rate, ok := history.Get(on.EndOf(Monthly))
	if !ok {
		return Money{}, false
	}
	if rate.IsZero() {
		return M(decimal.Zero, BaseCurrency), true
	}
	return M(amount.value.Div(rate), BaseCurrency), true
}

// SettlementPrice returns the closing price of a symbol for the month of
// 'on', converted to the settlement currency. ok is false when either the
// price or a required exchange rate is missing.
func (m *MarketData) SettlementPrice(symbol string, on Date) (Money, bool) {
	price, ok := m.PriceOn(symbol, on)
	if !ok {
		return Money{}, false
	}
	return m.Convert(price, on)
}
