package renderer

import (
	"fmt"

	"github.com/etnz/checklist"
)

// Checklist is the view model for a rendered checklist report: everything is
// pre-formatted so the templates stay free of logic.
type Checklist struct {
	Ticker string
	Name   string
	On     string // data date, empty when unknown

	Rows []ChecklistRow

	Pass, Fail, Warn int
	Score            string // e.g. "8/11"
	TierIcon         string
	TierLabel        string
	Policy           string
}

// ChecklistRow is one rule line of the report table.
type ChecklistRow struct {
	Icon        string
	Label       string
	Value       string
	Explanation string
}

// NewChecklist builds the view model for a report.
func NewChecklist(r *checklist.Report) *Checklist {
	c := &Checklist{
		Ticker:    r.Ticker,
		Name:      r.Name,
		Pass:      r.Passes(),
		Fail:      r.Fails(),
		Warn:      r.Warns(),
		TierIcon:  r.Tier().Icon(),
		TierLabel: r.Tier().Label(),
		Policy:    "green: no fail and at most 2 warn · yellow: at most 2 fail · red: otherwise",
	}
	if !r.On.IsZero() {
		c.On = r.On.String()
	}
	c.Score = fmt.Sprintf("%d/%d", c.Pass, len(r.Results))

	rules := checklist.Rules()
	for i, res := range r.Results {
		label := res.ID
		if i < len(rules) && rules[i].ID == res.ID {
			label = rules[i].Label
		}
		c.Rows = append(c.Rows, ChecklistRow{
			Icon:        res.Verdict.Icon(),
			Label:       label,
			Value:       res.Value,
			Explanation: res.Explanation,
		})
	}
	return c
}
