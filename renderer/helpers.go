package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// formatValue renders a value as a currency string with the currency's
// usual fraction digits (two decimals for USD or EUR).
func formatValue(v decimal.Decimal, code string) string {
	// to get a never nil currency we call the Money constructor
	cur := *money.New(0, code).Currency()
	shifted := v.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(shifted.IntPart())
}
