// Command vic grades public companies against a value-investing checklist.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/checklist/cmd"
	"github.com/etnz/checklist/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion. It is a no-op outside of a shell
// completion request.
func completion() {
	topics, _ := docs.GetAllTopics()

	keyFlags := map[string]complete.Predictor{
		"eodhd-api-key": predict.Nothing,
	}
	checkFlags := map[string]complete.Predictor{
		"eodhd-api-key": predict.Nothing,
		"offline":       predict.Nothing,
		"json":          predict.Nothing,
		"override":      predict.Set{"pricing-power=", "economic-moat="},
	}

	vic := &complete.Command{
		Flags: map[string]complete.Predictor{
			"fundamentals-dir": predict.Dirs("*"),
		},
		Sub: map[string]*complete.Command{
			"search": {Flags: keyFlags},
			"fetch":  {Flags: keyFlags},
			"check":  {Flags: checkFlags},
			"topic":  {Args: predict.Set(append(topics, "readme", "*"))},
			"assist": {},
		},
	}
	vic.Complete("vic")
}
