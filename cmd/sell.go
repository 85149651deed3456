package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/harryiam/stockunlock"
	"github.com/harryiam/stockunlock/date"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	date     string
	quantity int64
	price    string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale of shares in the ledger" }
func (*sellCmd) Usage() string {
	return `sul sell [-d <date>] -q <quantity> [-p <price>]

  Appends a sell transaction to the ledger file. Selling more shares than
  held is accepted: the running position goes negative and no value is
  charted until it is positive again.

Usage Examples:
$ sul sell -d 2021-02-10 -q 2 -p 140
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the trade (YYYY-MM-DD)")
	f.Int64Var(&c.quantity, "q", 0, "Number of shares sold")
	f.StringVar(&c.price, "p", "0", "Trade price per share")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, status := newTransaction(stockunlock.Sell, c.date, c.quantity, c.price)
	if status != subcommands.ExitSuccess {
		return status
	}
	return EncodeTransaction(tx)
}
