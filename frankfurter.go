package depot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Offline import of market-data dumps. Fetching them is the job of the
// surrounding application; this file only parses files it is handed.

// ImportFrankfurterRates reads a frankfurter.app time-series export
//
//	{"base":"EUR","rates":{"2024-01-31":{"USD":1.0871,"CHF":0.9341},...}}
//
// and records every rate in the market data, keyed by month end. It
// returns the number of rate points imported.
func ImportFrankfurterRates(r io.Reader, market *MarketData) (int, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return 0, fmt.Errorf("error decoding rates dump: %w", err)
	}

	if base, err := jsonpath.Get("$.base", jobj); err == nil {
		if s, ok := base.(string); ok && s != BaseCurrency {
			return 0, fmt.Errorf("rates dump has base %q, want %q", s, BaseCurrency)
		}
	}

	jval, err := jsonpath.Get("$.rates", jobj)
	if err != nil {
		return 0, fmt.Errorf("error reading rates: %w", err)
	}
	days, ok := jval.(map[string]any)
	if !ok {
		return 0, fmt.Errorf("rates dump: $.rates is not an object")
	}

	count := 0
	for day, jrates := range days {
		on, err := ParseDate(day)
		if err != nil {
			return count, fmt.Errorf("rates dump: %w", err)
		}
		rates, ok := jrates.(map[string]any)
		if !ok {
			return count, fmt.Errorf("rates dump: rates for %s is not an object", day)
		}
		for currency, jrate := range rates {
			rate, err := toDecimal(jrate)
			if err != nil {
				return count, fmt.Errorf("rates dump: %s %s: %w", day, currency, err)
			}
			market.AddRate(currency, on, rate)
			count++
		}
	}
	return count, nil
}

// ImportCloses reads a generic closing-price export
//
//	{"symbol":"VWCE.DE","currency":"EUR","prices":[{"date":"2024-01-31","close":105.2},...]}
//
// and records every close in the market data, keyed by month end. It
// returns the number of price points imported.
func ImportCloses(r io.Reader, market *MarketData) (int, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return 0, fmt.Errorf("error decoding price dump: %w", err)
	}

	symbol, err := stringAt(jobj, "$.symbol")
	if err != nil {
		return 0, fmt.Errorf("price dump: %w", err)
	}
	currency, err := stringAt(jobj, "$.currency")
	if err != nil {
		return 0, fmt.Errorf("price dump: %w", err)
	}

	jval, err := jsonpath.Get("$.prices[*]", jobj)
	if err != nil {
		return 0, fmt.Errorf("error reading prices: %w", err)
	}
	points, ok := jval.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a
		// single answer: normalize to a list.
		points = []any{jval}
	}

	count := 0
	for _, jpoint := range points {
		day, err := stringAt(jpoint, "$.date")
		if err != nil {
			return count, fmt.Errorf("price dump: %w", err)
		}
		on, err := ParseDate(day)
		if err != nil {
			return count, fmt.Errorf("price dump: %w", err)
		}
		jclose, err := jsonpath.Get("$.close", jpoint)
		if err != nil {
			return count, fmt.Errorf("price dump %s: %w", day, err)
		}
		close, err := toDecimal(jclose)
		if err != nil {
			return count, fmt.Errorf("price dump %s: %w", day, err)
		}
		market.AddPrice(symbol, currency, on, close)
		count++
	}
	return count, nil
}

// stringAt extracts a string value at a jsonpath.
func stringAt(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing %q: %w", path, err)
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string", path)
	}
	return s, nil
}

// toDecimal converts a decoded JSON value into a decimal. Some provider
// APIs return numbers as strings, so both shapes are accepted.
func toDecimal(jval any) (decimal.Decimal, error) {
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		return decimal.NewFromString(v)
	default:
		return decimal.Zero, fmt.Errorf("neither a number nor a string: %v", jval)
	}
}
