package cmd

import (
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
	"github.com/harryiam/stockunlock"
	"github.com/harryiam/stockunlock/date"
	"github.com/shopspring/decimal"
)

// useTempLedger points the global ledger flag at a file in a temp dir for
// the duration of a test.
func useTempLedger(t *testing.T) {
	t.Helper()
	old := *ledgerFile
	*ledgerFile = filepath.Join(t.TempDir(), "transactions.jsonl")
	t.Cleanup(func() { *ledgerFile = old })
}

func TestEncodeTransactionThenDecodeLedgerFile(t *testing.T) {
	useTempLedger(t)

	tx := stockunlock.Transaction{
		Action:   stockunlock.Buy,
		Date:     date.MustParse("2021-01-04"),
		Price:    decimal.NewFromInt(100),
		Quantity: 5,
	}
	if status := EncodeTransaction(tx); status != subcommands.ExitSuccess {
		t.Fatalf("EncodeTransaction() = %v want success", status)
	}

	ledger, err := DecodeLedgerFile("ACME")
	if err != nil {
		t.Fatalf("DecodeLedgerFile() error = %v", err)
	}
	if ledger.Symbol() != "ACME" {
		t.Errorf("ledger.Symbol() = %q want %q", ledger.Symbol(), "ACME")
	}
	if ledger.Len() != 1 {
		t.Fatalf("ledger.Len() = %d want 1", ledger.Len())
	}
	got := ledger.All()[0]
	if got.Action != stockunlock.Buy || got.Quantity != 5 || got.Date != tx.Date {
		t.Errorf("decoded transaction = %+v want %+v", got, tx)
	}
}

func TestDecodeLedgerFile_Missing(t *testing.T) {
	useTempLedger(t)

	// A missing ledger file degrades to an empty ledger, not an error.
	ledger, err := DecodeLedgerFile("ACME")
	if err != nil {
		t.Fatalf("DecodeLedgerFile() error = %v", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("ledger.Len() = %d want 0", ledger.Len())
	}
}

func TestNewTransactionRejectsBadFlags(t *testing.T) {
	if _, status := newTransaction(stockunlock.Buy, "someday", 5, "100"); status == subcommands.ExitSuccess {
		t.Error("newTransaction() with a bad date expected a usage error")
	}
	if _, status := newTransaction(stockunlock.Buy, "2021-01-04", 5, "not-a-price"); status == subcommands.ExitSuccess {
		t.Error("newTransaction() with a bad price expected a usage error")
	}
	if _, status := newTransaction(stockunlock.Buy, "2021-01-04", 0, "100"); status == subcommands.ExitSuccess {
		t.Error("newTransaction() with a zero quantity expected a usage error")
	}
}
