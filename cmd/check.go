package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/etnz/checklist"
	"github.com/etnz/checklist/eodhd"
	"github.com/etnz/checklist/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// overrideFlag collects repeated -override rule=score flags for the manual
// rules, e.g. -override pricing-power=0.8.
type overrideFlag map[checklist.Metric]decimal.Decimal

func (o overrideFlag) String() string {
	parts := make([]string, 0, len(o))
	for m, v := range o {
		parts = append(parts, fmt.Sprintf("%s=%s", m, v))
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (o overrideFlag) Set(value string) error {
	id, score, found := strings.Cut(value, "=")
	if !found {
		return fmt.Errorf("override %q is not of the form rule=score", value)
	}
	rule, ok := checklist.RuleByID(id)
	if !ok {
		return fmt.Errorf("unknown rule %q", id)
	}
	if !rule.Manual {
		return fmt.Errorf("rule %q is computed from fundamentals and cannot be overridden", id)
	}
	v, err := decimal.NewFromString(score)
	if err != nil {
		return fmt.Errorf("override score %q is not a number: %w", score, err)
	}
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("override score %s is out of the 0..1 range", v)
	}
	o[rule.Metric] = v
	return nil
}

// checkCmd implements the "check" command.
type checkCmd struct {
	eodhdApiFlag string
	offline      bool
	jsonOut      bool
	overrides    overrideFlag
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "runs the value-investing checklist on a company" }
func (*checkCmd) Usage() string {
	return `vic check [-offline] [-json] [-override rule=score]... <TICKER>

  Runs the eleven-point value-investing checklist on a company and prints the
  scored report with its green, yellow or red tier.

  By default the fundamentals are fetched from eodhd.com and snapshotted in
  the fundamentals folder. With -offline the snapshot from a previous fetch
  is used instead, and no network access happens.

  The two qualitative rules, pricing-power and economic-moat, stay at
  'review manually' until you score your own conviction:

  $ vic check -override pricing-power=0.8 -override economic-moat=0.5 AAPL.US
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	apiKeyFlag(f, &c.eodhdApiFlag)
	f.BoolVar(&c.offline, "offline", false, "use the saved fundamentals snapshot, do not call eodhd.com")
	f.BoolVar(&c.jsonOut, "json", false, "print the report as JSON instead of markdown")
	c.overrides = make(overrideFlag)
	f.Var(c.overrides, "override", "score a manual rule, e.g. pricing-power=0.8 (repeatable)")
}

func (c *checkCmd) bundle(ticker string) (*checklist.MetricBundle, error) {
	if c.offline {
		b, err := checklist.LoadBundle(FundamentalsDir(), ticker)
		if err != nil {
			return nil, fmt.Errorf("no saved fundamentals for %q, run 'vic fetch %s' first: %w", ticker, ticker, err)
		}
		return b, nil
	}

	key, err := eodhdAPIKey(c.eodhdApiFlag)
	if err != nil {
		return nil, err
	}
	b, err := eodhd.Fundamentals(key, ticker)
	if err != nil {
		return nil, fmt.Errorf("could not fetch %q from eodhd.com: %w", ticker, err)
	}
	if err := checklist.SaveBundle(FundamentalsDir(), b); err != nil {
		return nil, fmt.Errorf("could not save fundamentals for %q: %w", ticker, err)
	}
	return b, nil
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one ticker is required.")
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)

	b, err := c.bundle(ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for m, score := range c.overrides {
		b.Set(m, score)
	}

	report := checklist.Evaluate(b)

	if c.jsonOut {
		if err := printJSON(os.Stdout, report); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ChecklistMarkdown(renderer.NewChecklist(report)))
	return subcommands.ExitSuccess
}
