package depot

import "fmt"

// TxKind is a typed identifier for the kind of a transaction.
type TxKind int

const (
	Buy TxKind = iota
	Sell
	Dividend
	Interest
)

func (k TxKind) String() string {
	switch k {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	case Dividend:
		return "dividend"
	case Interest:
		return "interest"
	default:
		panic(fmt.Sprintf("unknown transaction kind %d", k))
	}
}

// ParseTxKind parses the string representation of a transaction kind.
func ParseTxKind(s string) (TxKind, error) {
	switch s {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	case "dividend":
		return Dividend, nil
	case "interest":
		return Interest, nil
	default:
		return Buy, fmt.Errorf("unknown transaction kind %q", s)
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (k TxKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (k *TxKind) UnmarshalText(b []byte) error {
	parsed, err := ParseTxKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Transaction is one immutable trade record belonging to exactly one
// investment. Records are never modified once appended to the ledger.
type Transaction struct {
	ID           string
	InvestmentID string
	Kind         TxKind
	Date         Date
	Quantity     Quantity
	UnitPrice    Money
	amount       Money // optional explicit total, overrides quantity×price
}

// NewTransaction returns a transaction whose total amount derives from
// quantity and unit price.
func NewTransaction(id, investmentID string, kind TxKind, on Date, quantity Quantity, unitPrice Money) Transaction {
	return Transaction{
		ID:           id,
		InvestmentID: investmentID,
		Kind:         kind,
		Date:         on,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
	}
}

// WithAmount returns a copy of the transaction carrying an explicit total
// amount (e.g. a dividend payment with no quantity).
func (t Transaction) WithAmount(amount Money) Transaction {
	t.amount = amount
	return t
}

// Amount returns the total amount of the transaction: the explicit amount
// when one was recorded, otherwise quantity × unit price.
func (t Transaction) Amount() Money {
	if !t.amount.IsZero() {
		return t.amount
	}
	return t.UnitPrice.Mul(t.Quantity)
}
