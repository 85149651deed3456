// Package cmd implements the CLI application to chart a position's value.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/harryiam/stockunlock"
	"github.com/harryiam/stockunlock/pricefeed"
)

// Commands lists the subcommands of the sul tool. A main package registers
// them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&buyCmd{},
	&sellCmd{},
	&txCmd{},
	&chartCmd{},
	&historyCmd{},
	&quoteCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file containing transactions (JSONL format)")
var feedURL = flag.String("feed-url", "https://api.stockunlock.dev", "Base URL of the price-history service")

// DecodeLedgerFile loads the app ledger file for the given symbol.
func DecodeLedgerFile(symbol string) (*stockunlock.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, using an empty ledger instead")
		ledger := stockunlock.NewLedger(symbol)
		return ledger, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	ledger, err := stockunlock.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", *ledgerFile, err)
	}
	ledger.SetSymbol(symbol)
	return ledger, nil
}

// EncodeTransaction appends a single transaction into the app ledger file.
func EncodeTransaction(tx stockunlock.Transaction) subcommands.ExitStatus {
	filename := *ledgerFile
	// Open the file in append mode, creating it if it doesn't exist.
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := stockunlock.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", filename)
	return subcommands.ExitSuccess
}

// feedClient returns a price feed client for the configured service.
func feedClient() *pricefeed.Client {
	return pricefeed.New(*feedURL)
}
