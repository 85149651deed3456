package stockunlock

import (
	"testing"
	"time"

	"github.com/harryiam/stockunlock/date"
	"github.com/shopspring/decimal"
)

// dec is a helper for tests to create a decimal from a const.
func dec[T int | float64](v T) decimal.Decimal {
	switch x := any(v).(type) {
	case int:
		return decimal.NewFromInt(int64(x))
	default:
		return decimal.NewFromFloat(any(v).(float64))
	}
}

// epoch returns the epoch second of midnight UTC on the given day.
func epoch(day string) int64 {
	t, err := time.Parse(date.DateFormat, day)
	if err != nil {
		panic(err.Error())
	}
	return t.UTC().Unix()
}

// assertPoints compares two value point series entry by entry.
func assertPoints(t *testing.T, got, want []ValuePoint) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Date != want[i].Date {
			t.Errorf("point[%d].Date = %v want %v", i, got[i].Date, want[i].Date)
		}
		if !got[i].Value.Equal(want[i].Value) {
			t.Errorf("point[%d].Value = %s want %s", i, got[i].Value, want[i].Value)
		}
	}
}
