package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// quoteCmd holds the flags for the 'quote' subcommand.
type quoteCmd struct {
	symbol string
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "display the latest intraday price for a symbol" }
func (*quoteCmd) Usage() string {
	return `sul quote -s <symbol>

  Fetches the latest intraday price from the price-history service.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Instrument symbol to quote")
}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "a symbol must be provided with -s")
		return subcommands.ExitUsageError
	}

	val, err := feedClient().Quote(c.symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quote: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s: %.2f\n", c.symbol, val)
	return subcommands.ExitSuccess
}
