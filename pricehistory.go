package stockunlock

import (
	"iter"
	"slices"

	"github.com/harryiam/stockunlock/date"
	"github.com/shopspring/decimal"
)

// PriceObservation is one raw point from the price feed: a closing price at
// an observation instant in epoch seconds. The feed may carry several
// observations for the same calendar day.
type PriceObservation struct {
	Close     decimal.Decimal `json:"close"`
	Timestamp int64           `json:"timestamp"`
}

// PriceHistory is a day-keyed series of closing prices. Days are unique and
// the series is always sorted chronologically.
//
// When several observations collapse onto the same calendar day, the one
// with the largest epoch timestamp wins; two observations at the exact same
// instant keep the greater close. The resulting series therefore never
// depends on the order observations are appended in.
type PriceHistory struct {
	days   []date.Date
	closes []decimal.Decimal
	epochs []int64 // epoch second of the winning observation per day
}

// NewPriceHistory returns an empty price history.
func NewPriceHistory() *PriceHistory {
	return &PriceHistory{}
}

// BuildPriceHistory collapses raw feed observations into a day-keyed price
// history. Map keys are the feed's epoch-second strings and are ignored; the
// calendar day comes from each observation's own timestamp.
func BuildPriceHistory(observations map[string]PriceObservation) *PriceHistory {
	h := NewPriceHistory()
	for _, obs := range observations {
		h.Append(obs.Timestamp, obs.Close)
	}
	return h
}

// Append records a closing price observed at the given instant in epoch
// seconds. An observation for an already known day replaces the stored one
// only if it is strictly more recent, or carries a greater close at the
// exact same instant.
func (h *PriceHistory) Append(epoch int64, close decimal.Decimal) *PriceHistory {
	day := date.FromUnix(epoch)
	i, found := slices.BinarySearchFunc(h.days, day, date.Date.Compare)
	if found {
		switch {
		case epoch > h.epochs[i]:
			h.closes[i] = close
			h.epochs[i] = epoch
		case epoch == h.epochs[i] && close.GreaterThan(h.closes[i]):
			h.closes[i] = close
		}
		return h
	}
	h.days = slices.Insert(h.days, i, day)
	h.closes = slices.Insert(h.closes, i, close)
	h.epochs = slices.Insert(h.epochs, i, epoch)
	return h
}

// Len returns the number of days in the history.
func (h *PriceHistory) Len() int { return len(h.days) }

// Get returns the closing price for a day and whether one exists.
func (h *PriceHistory) Get(day date.Date) (decimal.Decimal, bool) {
	i, found := slices.BinarySearchFunc(h.days, day, date.Date.Compare)
	if !found {
		return decimal.Decimal{}, false
	}
	return h.closes[i], true
}

// Days returns a copy of the priced days in chronological order.
func (h *PriceHistory) Days() []date.Date {
	return slices.Clone(h.days)
}

// Values returns an iterator over all day/close pairs in chronological order.
func (h *PriceHistory) Values() iter.Seq2[date.Date, decimal.Decimal] {
	return func(yield func(date.Date, decimal.Decimal) bool) {
		for i, on := range h.days {
			if !yield(on, h.closes[i]) {
				return
			}
		}
	}
}
