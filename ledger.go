package depot

import (
	"iter"
	"sort"
)

// Ledger holds the investments and their trade history.
//
// Transactions are kept stable-sorted by date: same-date records remain in
// insertion order so that decoding and re-encoding a ledger is idempotent.
type Ledger struct {
	investments  []Investment
	index        map[string]int // investment ID -> position in investments
	transactions []Transaction
}

// NewLedger creates a new empty ledger.
func NewLedger() *Ledger {
	return &Ledger{index: make(map[string]int)}
}

// AddInvestment declares an investment in the ledger. Re-declaring an
// existing ID overwrites the previous declaration.
func (l *Ledger) AddInvestment(v Investment) {
	if i, ok := l.index[v.ID]; ok {
		l.investments[i] = v
		return
	}
	l.index[v.ID] = len(l.investments)
	l.investments = append(l.investments, v)
}

// Investment returns the investment with the given ID, or nil.
func (l *Ledger) Investment(id string) *Investment {
	i, ok := l.index[id]
	if !ok {
		return nil
	}
	return &l.investments[i]
}

// Append adds transactions to the ledger, keeping the chronological order.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// Investments returns an iterator over all declared investments.
func (l *Ledger) Investments() iter.Seq[Investment] {
	return func(yield func(Investment) bool) {
		for _, v := range l.investments {
			if !yield(v) {
				return
			}
		}
	}
}

// Transactions returns an iterator over transactions matching all filters,
// in chronological order.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
	next:
		for _, tx := range l.transactions {
			for _, filter := range filters {
				if !filter(tx) {
					continue next
				}
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// TransactionsOf returns the full trade history of one investment.
func (l *Ledger) TransactionsOf(investmentID string) []Transaction {
	var txs []Transaction
	for tx := range l.Transactions(ByInvestment(investmentID)) {
		txs = append(txs, tx)
	}
	return txs
}

// ByInvestment filters transactions belonging to the given investment.
func ByInvestment(investmentID string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.InvestmentID == investmentID }
}

// ByKind filters transactions of the given kind.
func ByKind(kind TxKind) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Kind == kind }
}

// AvailableQuantity returns the quantity of an investment still held:
// everything bought (initial purchase plus buy transactions) minus
// everything sold, floored at zero so that corrupted sell records can
// never produce a negative position.
func (l *Ledger) AvailableQuantity(investmentID string) Quantity {
	v := l.Investment(investmentID)
	if v == nil {
		return Quantity{}
	}
	bought := v.Quantity
	for tx := range l.Transactions(ByInvestment(investmentID), ByKind(Buy)) {
		bought = bought.Add(tx.Quantity)
	}
	sold := Quantity{}
	for tx := range l.Transactions(ByInvestment(investmentID), ByKind(Sell)) {
		sold = sold.Add(tx.Quantity)
	}
	return bought.Sub(sold).Floor()
}

// OldestTransactionDate returns the date of the oldest transaction, or the
// zero date for an empty ledger.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].Date
}
