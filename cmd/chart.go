package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/harryiam/stockunlock"
	"github.com/harryiam/stockunlock/renderer"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	symbol   string
	currency string
	width    int
	height   int
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the portfolio value over time as a line chart" }
func (*chartCmd) Usage() string {
	return `sul chart -s <symbol> [-c <currency>] [-W <width>] [-H <height>]

  Fetches the closing price history for the symbol, derives the portfolio
  value from the ledger transactions, and draws it as a terminal line chart.
  If the fetch fails the failure is logged and the chart is rendered empty.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Instrument symbol to chart")
	f.StringVar(&c.currency, "c", "USD", "Currency the closing prices are quoted in")
	f.IntVar(&c.width, "W", 70, "Chart width in terminal cells")
	f.IntVar(&c.height, "H", 12, "Chart height in terminal cells")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "a symbol must be provided with -s")
		return subcommands.ExitUsageError
	}

	report, status := valueReport(c.symbol, c.currency)
	if status != subcommands.ExitSuccess {
		return status
	}

	fmt.Print(renderer.ValuesChart(report, c.width, c.height))
	return subcommands.ExitSuccess
}

// valueReport loads the ledger, fetches prices and derives the value series.
// A fetch failure is logged and degrades to an empty series.
func valueReport(symbol, currency string) (*stockunlock.ValueReport, subcommands.ExitStatus) {
	ledger, err := DecodeLedgerFile(symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	observations, err := feedClient().History(symbol)
	if err != nil {
		log.Printf("price history unavailable, rendering an empty series: %v", err)
		observations = nil
	}

	prices := stockunlock.BuildPriceHistory(observations)
	return stockunlock.NewValueReport(ledger, prices, currency), subcommands.ExitSuccess
}
