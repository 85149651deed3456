package stockunlock

import (
	"iter"
	"slices"
)

// Ledger represents the transaction history of a single instrument.
//
// Transactions are kept in the order they were appended. Same-date
// transactions therefore keep their relative order, which is the order the
// valuation applies them in.
type Ledger struct {
	symbol       string
	transactions []Transaction
}

// NewLedger creates an empty ledger for the given instrument symbol.
func NewLedger(symbol string) *Ledger {
	return &Ledger{
		symbol:       symbol,
		transactions: make([]Transaction, 0),
	}
}

// Symbol returns the instrument symbol this ledger tracks.
func (l *Ledger) Symbol() string { return l.symbol }

// SetSymbol renames the instrument this ledger tracks.
func (l *Ledger) SetSymbol(symbol string) { l.symbol = symbol }

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append validates and appends transactions to the ledger.
// On the first invalid transaction it stops and returns the error.
func (l *Ledger) Append(txs ...Transaction) error {
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return err
		}
		l.transactions = append(l.transactions, tx)
	}
	return nil
}

// Transactions returns an iterator over the ledger transactions in
// append order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// All returns a copy of the ledger transactions in append order.
func (l *Ledger) All() []Transaction {
	return slices.Clone(l.transactions)
}
