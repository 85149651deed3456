package stockunlock

// ValueReport is the portfolio value series of one instrument, ready to be
// rendered as a chart or a table.
type ValueReport struct {
	Symbol   string
	Currency string
	Points   []ValuePoint
}

// NewValueReport derives the value series of the ledger's instrument against
// the given price history.
func NewValueReport(ledger *Ledger, prices *PriceHistory, currency string) *ValueReport {
	return &ValueReport{
		Symbol:   ledger.Symbol(),
		Currency: currency,
		Points:   PortfolioValues(ledger.All(), prices),
	}
}
