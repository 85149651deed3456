package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/harryiam/stockunlock/renderer"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	symbol   string
	currency string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the portfolio value over time as a table" }
func (*historyCmd) Usage() string {
	return `sul history -s <symbol> [-c <currency>]

  Displays the derived portfolio value series, one row per priced day on
  which the position is open.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Instrument symbol to report on")
	f.StringVar(&c.currency, "c", "USD", "Currency the closing prices are quoted in")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "a symbol must be provided with -s")
		return subcommands.ExitUsageError
	}

	report, status := valueReport(c.symbol, c.currency)
	if status != subcommands.ExitSuccess {
		return status
	}

	printMarkdown(renderer.ValuesMarkdown(report))
	return subcommands.ExitSuccess
}
