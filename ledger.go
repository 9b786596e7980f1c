package budget

import (
	"fmt"
	"iter"
	"sort"
)

// Ledger represents the user's transaction log.
//
// In a Ledger transactions are always in chronological order; transactions
// on the same day keep their insertion order. The log is append-only in this
// application: there is no edit or delete operation.
type Ledger struct {
	transactions []Transaction
	ids          map[string]bool // index of ids, to enforce uniqueness
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		ids:          make(map[string]bool),
	}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append adds transactions to the ledger, keeping it sorted. It rejects a
// transaction whose id is already present in the log.
func (l *Ledger) Append(txs ...Transaction) error {
	for _, tx := range txs {
		if tx.ID() != "" && l.ids[tx.ID()] {
			return fmt.Errorf("duplicate transaction id %q", tx.ID())
		}
		l.ids[tx.ID()] = true
		l.transactions = append(l.transactions, tx)
	}
	l.stableSort()
	return nil
}

// stableSort sorts transactions by date, keeping the relative order of
// transactions on the same day.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].When().Before(l.transactions[j].When())
	})
}

// AcceptAll is a filter that accepts all transactions.
func AcceptAll(Transaction) bool { return true }

// OfKind returns a filter accepting only transactions of the given kind.
func OfKind(k Kind) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.What() == k }
}

// InRange returns a filter accepting only transactions dated within r.
func InRange(r Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.Contains(tx.When()) }
}

// Transactions returns an iterator over transactions matching the filter,
// in chronological order.
func (l *Ledger) Transactions(filter func(Transaction) bool) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if filter(tx) && !yield(tx) {
				return
			}
		}
	}
}

// Sum adds up the amounts of all transactions matching the filter.
func (l *Ledger) Sum(filter func(Transaction) bool) Money {
	var total Money
	for tx := range l.Transactions(filter) {
		total = total.Add(tx.Value())
	}
	return total
}

// OldestTransactionDate returns the date of the oldest transaction, or the
// zero date for an empty ledger.
func (l *Ledger) OldestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].When()
}

// NewestTransactionDate returns the date of the newest transaction, or the
// zero date for an empty ledger.
func (l *Ledger) NewestTransactionDate() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[len(l.transactions)-1].When()
}
