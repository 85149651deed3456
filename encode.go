package stockunlock

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger decodes transactions from a stream of JSONL data, one
// transaction per line, and returns the resulting ledger.
//
// The symbol is not part of the wire format: a ledger file holds the history
// of exactly one instrument and is named after it by the caller.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger("")
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var tx Transaction
		if err := json.Unmarshal(lineBytes, &tx); err != nil {
			return nil, fmt.Errorf("could not decode transaction on line %d %q: %w", line, string(lineBytes), err)
		}
		if err := ledger.Append(tx); err != nil {
			return nil, fmt.Errorf("invalid transaction on line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger: %w", err)
	}
	return ledger, nil
}

// EncodeTransaction writes a single transaction as one JSONL line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	raw, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("could not encode transaction: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// EncodeLedger writes all ledger transactions in JSONL, one per line,
// in append order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
