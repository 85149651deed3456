package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/harryiam/stockunlock"
	"github.com/harryiam/stockunlock/date"
	"github.com/shopspring/decimal"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	date     string
	quantity int64
	price    string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase of shares in the ledger" }
func (*buyCmd) Usage() string {
	return `sul buy [-d <date>] -q <quantity> [-p <price>]

  Appends a buy transaction to the ledger file. The price is the trade
  price and is informational only: charting always values the position
  at the day's closing price.

Usage Examples:
$ sul buy -d 2021-01-04 -q 5 -p 135.20
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the trade (YYYY-MM-DD)")
	f.Int64Var(&c.quantity, "q", 0, "Number of shares bought")
	f.StringVar(&c.price, "p", "0", "Trade price per share")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := newTransaction(stockunlock.Buy, c.date, c.quantity, c.price)
	if status != subcommands.ExitSuccess {
		return status
	}
	return EncodeTransaction(tx)
}

// newTransaction parses the shared buy/sell flags into a validated transaction.
func newTransaction(action stockunlock.TradeAction, day string, quantity int64, price string) (stockunlock.Transaction, subcommands.ExitStatus) {
	on, err := date.Parse(day)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return stockunlock.Transaction{}, subcommands.ExitUsageError
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return stockunlock.Transaction{}, subcommands.ExitUsageError
	}

	tx := stockunlock.Transaction{Action: action, Date: on, Price: p, Quantity: quantity}
	if err := tx.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid transaction: %v\n", err)
		return stockunlock.Transaction{}, subcommands.ExitUsageError
	}
	return tx, subcommands.ExitSuccess
}
