package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/checklist/eodhd"
	"github.com/google/subcommands"
)

// searchCmd implements the "search" command.
type searchCmd struct {
	eodhdApiFlag string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "searches for companies on EODHD" }
func (*searchCmd) Usage() string {
	return `vic search <search term>

  Searches for companies via EOD Historical Data API and prints
  ready-to-use 'vic fetch' commands for the results.

  Requires the EODHD_API_TOKEN environment variable to be set or passed as a flag.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	apiKeyFlag(f, &c.eodhdApiFlag)
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	searchTerm := strings.Join(f.Args(), " ")

	key, err := eodhdAPIKey(c.eodhdApiFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	results, err := eodhd.Search(key, searchTerm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching companies: %v\n", err)
		return subcommands.ExitFailure
	}

	if len(results) == 0 {
		fmt.Printf("No results found for '%s'.\n", searchTerm)
		return subcommands.ExitSuccess
	}

	fmt.Printf("Found %d results for '%s':\n\n", len(results), searchTerm)

	for _, item := range results {
		fmt.Printf("➡️   Name       : %s (%s)\n", item.Name, item.Code)
		fmt.Printf("    Type        : %s, Country: %s, Currency: %s\n", item.Type, item.Country, item.Currency)
		fmt.Printf("    Prev. Close : %.2f on %s\n", item.PreviousClose, item.PreviousCloseDate)
		fmt.Printf("    $ vic fetch %s\n\n", item.Ticker())
	}

	return subcommands.ExitSuccess
}
