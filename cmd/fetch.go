package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/checklist"
	"github.com/etnz/checklist/eodhd"
	"github.com/google/subcommands"
)

// fetchCmd implements the "fetch" command.
type fetchCmd struct {
	eodhdApiFlag string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetches company fundamentals from EODHD" }
func (*fetchCmd) Usage() string {
	return `vic fetch <TICKER> [<TICKER>...]

  Fetches the fundamentals of one or more companies from eodhd.com and saves
  one snapshot per company in the fundamentals folder. Tickers use EODHD's
  SYMBOL.EXCHANGE format, e.g. AAPL.US.

  Requires the EODHD_API_TOKEN environment variable to be set or passed as a flag.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	apiKeyFlag(f, &c.eodhdApiFlag)
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one ticker is required.")
		return subcommands.ExitUsageError
	}

	key, err := eodhdAPIKey(c.eodhdApiFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, ticker := range f.Args() {
		b, err := eodhd.Fundamentals(key, ticker)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not fetch %q from eodhd.com: %v\n", ticker, err)
			return subcommands.ExitFailure
		}
		if err := checklist.SaveBundle(FundamentalsDir(), b); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not save fundamentals for %q: %v\n", ticker, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("✅ Fetched %s (%s), data as of %s.\n", b.Name(), b.Ticker(), b.Fetched())
	}

	return subcommands.ExitSuccess
}
