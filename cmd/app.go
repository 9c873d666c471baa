// Package cmd implements the CLI application to grade companies against the
// value-investing checklist.
package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

// Commands lists the subcommands in the order they show up in help.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&searchCmd{},
	&fetchCmd{},
	&checkCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var fundamentalsDir = flag.String("fundamentals-dir", ".fundamentals", "Path to the folder holding fetched fundamentals snapshots")

const eodhdAPIKeyEnv = "EODHD_API_TOKEN"

// FundamentalsDir returns the app folder for fundamentals snapshots.
func FundamentalsDir() string { return *fundamentalsDir }

// apiKeyFlag declares the shared -eodhd-api-key flag on commands that talk to
// the EODHD API.
func apiKeyFlag(f *flag.FlagSet, dst *string) {
	f.StringVar(dst, "eodhd-api-key", "", "EODHD API key to use for consuming EODHD.com API. This flag takes precedence over the "+eodhdAPIKeyEnv+" environment variable. You can get one at https://eodhd.com/")
}

// eodhdAPIKey resolves the EODHD API key, flag first, then environment.
func eodhdAPIKey(flagValue string) (string, error) {
	if flagValue == "" {
		flagValue = os.Getenv(eodhdAPIKeyEnv)
	}
	if flagValue == "" {
		return "", fmt.Errorf("EODHD API key is not set. Use -eodhd-api-key flag or %s environment variable", eodhdAPIKeyEnv)
	}
	return flagValue, nil
}

// printJSON writes v as indented JSON, for scripting consumers.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
