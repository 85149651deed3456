package stockunlock

import (
	"fmt"

	"github.com/harryiam/stockunlock/date"
	"github.com/shopspring/decimal"
)

// TradeAction is a typed string identifying the economic direction of a transaction.
type TradeAction string

// Trade actions recorded in the ledger.
const (
	Buy  TradeAction = "buy"
	Sell TradeAction = "sell"
)

// ParseTradeAction parses a string into a TradeAction.
func ParseTradeAction(s string) (TradeAction, error) {
	switch TradeAction(s) {
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown trade action: %q", s)
	}
}

func (a TradeAction) String() string { return string(a) }

// Signed returns the share count signed by the action: positive for a buy,
// negative for a sell.
func (a TradeAction) Signed(quantity int64) int64 {
	if a == Sell {
		return -quantity
	}
	return quantity
}

// Transaction records a single buy or sell of the tracked instrument.
//
// Price is the trade price and is informational only: valuation always marks
// to market with the closing price of the day, never with the trade price.
type Transaction struct {
	Action   TradeAction     `json:"action"`
	Date     date.Date       `json:"date"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// Validate checks a transaction for correctness. It sets the date to today
// if it is zero.
func (t *Transaction) Validate() error {
	if _, err := ParseTradeAction(string(t.Action)); err != nil {
		return err
	}
	if t.Date.IsZero() {
		t.Date = date.Today()
	}
	if t.Quantity <= 0 {
		return fmt.Errorf("quantity must be a positive share count, got %d", t.Quantity)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("price cannot be negative, got %s", t.Price)
	}
	return nil
}
