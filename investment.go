package depot

import "fmt"

// AssetClass identifies the kind of asset an investment belongs to.
type AssetClass int

const (
	Equity AssetClass = iota
	Bond
	Crypto
	RealEstate
	Fund
	Savings
)

func (c AssetClass) String() string {
	switch c {
	case Equity:
		return "equity"
	case Bond:
		return "bond"
	case Crypto:
		return "crypto"
	case RealEstate:
		return "real-estate"
	case Fund:
		return "fund"
	case Savings:
		return "savings"
	default:
		panic(fmt.Sprintf("unknown asset class %d", c))
	}
}

// ParseAssetClass parses the string representation of an asset class.
func ParseAssetClass(s string) (AssetClass, error) {
	switch s {
	case "equity", "stock":
		return Equity, nil
	case "bond":
		return Bond, nil
	case "crypto":
		return Crypto, nil
	case "real-estate", "realestate":
		return RealEstate, nil
	case "fund", "etf":
		return Fund, nil
	case "savings", "interest-account":
		return Savings, nil
	default:
		return Equity, fmt.Errorf("unknown asset class %q", s)
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (c AssetClass) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (c *AssetClass) UnmarshalText(b []byte) error {
	parsed, err := ParseAssetClass(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Status is the lifecycle state of an investment.
type Status int

const (
	Active Status = iota
	Sold
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Sold:
		return "sold"
	default:
		panic(fmt.Sprintf("unknown status %d", s))
	}
}

// ParseStatus parses the string representation of a lifecycle status.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "active", "":
		return Active, nil
	case "sold":
		return Sold, nil
	default:
		return Active, fmt.Errorf("unknown status %q", s)
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (s *Status) UnmarshalText(b []byte) error {
	parsed, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Investment represents one asset held in the portfolio: its original
// purchase and whatever identity the market needs to price it.
type Investment struct {
	ID           string     // unique identifier
	Name         string     // human-friendly name
	Class        AssetClass // asset class for grouping
	Ticker       string     // optional market ticker
	Quantity     Quantity   // quantity of the original purchase
	UnitPrice    Money      // unit price of the original purchase
	PurchaseDate Date
	CurrentPrice *Money // latest known unit price, nil when unknown
	Status       Status
	Staking      bool // crypto only: staking or lending extends the tax-free holding period
}

// PurchaseCost returns the total cost of the original purchase.
func (v Investment) PurchaseCost() Money {
	return v.UnitPrice.Mul(v.Quantity)
}
