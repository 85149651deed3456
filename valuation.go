package stockunlock

import (
	"slices"
	"sort"

	"github.com/harryiam/stockunlock/date"
	"github.com/shopspring/decimal"
)

// ValuePoint is the market value of the holdings on one calendar day.
type ValuePoint struct {
	Date  date.Date       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// PortfolioValues derives the market value of a position over time.
//
// It walks the union of all days with a transaction or a closing price,
// keeping a running signed share count, and emits one point per priced day
// on which the position is strictly positive: value = shares held × close.
//
// Days with a price but no trade still emit a point while the position is
// open (the position marks to market without trading). Days where the
// position is zero or negative emit nothing, so no value is charted before
// the first buy or after a full sell. Over-selling is accepted input and
// simply drives the share count negative; it is not an error.
//
// The input slice is not modified. Same-date transactions are applied in
// their original relative order.
func PortfolioValues(transactions []Transaction, prices *PriceHistory) []ValuePoint {
	txs := slices.Clone(transactions)
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.Before(txs[j].Date) })

	days := mergeDays(txs, prices)

	points := make([]ValuePoint, 0, prices.Len())
	var shares int64
	i := 0
	for _, on := range days {
		for i < len(txs) && txs[i].Date == on {
			shares += txs[i].Action.Signed(txs[i].Quantity)
			i++
		}
		close, ok := prices.Get(on)
		if !ok || shares <= 0 {
			continue
		}
		points = append(points, ValuePoint{
			Date:  on,
			Value: close.Mul(decimal.NewFromInt(shares)),
		})
	}
	return points
}

// mergeDays returns the sorted set of distinct days appearing in the sorted
// transaction list or the price history.
func mergeDays(sortedTxs []Transaction, prices *PriceHistory) []date.Date {
	days := prices.Days()
	for _, tx := range sortedTxs {
		days = append(days, tx.Date)
	}
	slices.SortFunc(days, date.Date.Compare)
	return slices.Compact(days)
}
