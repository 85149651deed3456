package stockunlock

import (
	"testing"

	"github.com/harryiam/stockunlock/date"
)

func TestPriceHistory_AppendSorts(t *testing.T) {
	h := NewPriceHistory().
		Append(epoch("2021-01-06"), dec(120)).
		Append(epoch("2021-01-04"), dec(100)).
		Append(epoch("2021-01-05"), dec(110))

	if h.Len() != 3 {
		t.Fatalf("Len() = %d want 3", h.Len())
	}
	days := h.Days()
	for i := 1; i < len(days); i++ {
		if !days[i-1].Before(days[i]) {
			t.Errorf("days not sorted: %v then %v", days[i-1], days[i])
		}
	}
	if v, ok := h.Get(date.MustParse("2021-01-05")); !ok || !v.Equal(dec(110)) {
		t.Errorf("Get(2021-01-05) = %s, %v want 110, true", v, ok)
	}
	if _, ok := h.Get(date.MustParse("2021-01-07")); ok {
		t.Error("Get(2021-01-07) = true want false")
	}
}

func TestPriceHistory_SameDayLatestObservationWins(t *testing.T) {
	// Two observations on day D: the one with the larger epoch timestamp
	// must win whatever the append order is.
	d := date.MustParse("2021-01-04")
	t1 := epoch("2021-01-04") + 10*3600 // 10:00 UTC
	t2 := epoch("2021-01-04") + 16*3600 // 16:00 UTC

	forward := NewPriceHistory().Append(t1, dec(100)).Append(t2, dec(105))
	if v, _ := forward.Get(d); !v.Equal(dec(105)) {
		t.Errorf("forward order: Get(%v) = %s want 105", d, v)
	}

	backward := NewPriceHistory().Append(t2, dec(105)).Append(t1, dec(100))
	if v, _ := backward.Get(d); !v.Equal(dec(105)) {
		t.Errorf("backward order: Get(%v) = %s want 105", d, v)
	}

	if forward.Len() != 1 || backward.Len() != 1 {
		t.Errorf("Len() = %d, %d want one entry per day", forward.Len(), backward.Len())
	}
}

func TestPriceHistory_ExactInstantTieKeepsGreaterClose(t *testing.T) {
	// Two observations at the exact same instant with different closes:
	// the greater close wins whatever the append order is.
	d := date.MustParse("2021-01-04")
	at := epoch("2021-01-04") + 10*3600

	forward := NewPriceHistory().Append(at, dec(100)).Append(at, dec(105))
	backward := NewPriceHistory().Append(at, dec(105)).Append(at, dec(100))

	if v, _ := forward.Get(d); !v.Equal(dec(105)) {
		t.Errorf("forward order: Get(%v) = %s want 105", d, v)
	}
	if v, _ := backward.Get(d); !v.Equal(dec(105)) {
		t.Errorf("backward order: Get(%v) = %s want 105", d, v)
	}
}

func TestBuildPriceHistory(t *testing.T) {
	// Feed keys are epoch-second strings; the day comes from the
	// observation's own timestamp.
	observations := map[string]PriceObservation{
		"1609754400": {Close: dec(100), Timestamp: epoch("2021-01-04") + 10*3600},
		"1609776000": {Close: dec(105), Timestamp: epoch("2021-01-04") + 16*3600},
		"1609837200": {Close: dec(110), Timestamp: epoch("2021-01-05") + 9*3600},
	}

	h := BuildPriceHistory(observations)
	if h.Len() != 2 {
		t.Fatalf("Len() = %d want 2", h.Len())
	}
	if v, _ := h.Get(date.MustParse("2021-01-04")); !v.Equal(dec(105)) {
		t.Errorf("Get(2021-01-04) = %s want 105 (latest observation of the day)", v)
	}
	if v, _ := h.Get(date.MustParse("2021-01-05")); !v.Equal(dec(110)) {
		t.Errorf("Get(2021-01-05) = %s want 110", v)
	}
}

func TestPriceHistory_Values(t *testing.T) {
	h := NewPriceHistory().
		Append(epoch("2021-01-05"), dec(110)).
		Append(epoch("2021-01-04"), dec(100))

	var got []string
	for on, close := range h.Values() {
		got = append(got, on.String()+"="+close.String())
	}
	want := []string{"2021-01-04=100", "2021-01-05=110"}
	if len(got) != len(want) {
		t.Fatalf("Values() yielded %d pairs want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %q want %q", i, got[i], want[i])
		}
	}
}
