package checklist

import "encoding/json"

// Tier policy: a report is Green when nothing failed and at most two rules
// are left to manual review, Yellow as long as at most two rules failed, and
// Red beyond that. The cutoffs are fixed so verdicts are comparable across
// companies and across time.
const (
	maxGreenWarns  = 2
	maxYellowFails = 2
)

// Report is the outcome of one checklist evaluation: exactly eleven
// RuleResults in the fixed rule order, plus the identity of the company they
// were computed for. It is derived purely from the bundle and has no
// identity beyond the evaluation call.
type Report struct {
	Ticker   string       `json:"ticker"`
	Name     string       `json:"name"`
	Currency string       `json:"currency,omitempty"`
	On       Date         `json:"on"`
	Results  []RuleResult `json:"results"`
}

// Evaluate runs the eleven checklist rules against a bundle.
//
// It is a pure function: it reads only the bundle, mutates nothing, and
// always returns a complete report, whatever the bundle's gaps. Evaluating
// the same bundle twice yields identical reports.
func Evaluate(b *MetricBundle) *Report {
	r := &Report{
		Ticker:   b.Ticker(),
		Name:     b.Name(),
		Currency: b.Currency(),
		On:       b.Fetched(),
		Results:  make([]RuleResult, 0, len(checks)),
	}
	for _, rule := range checks {
		r.Results = append(r.Results, rule.Eval(b))
	}
	return r
}

// count returns the number of results with the given verdict.
func (r *Report) count(v Verdict) int {
	n := 0
	for _, res := range r.Results {
		if res.Verdict == v {
			n++
		}
	}
	return n
}

// Passes returns the number of rules that passed.
func (r *Report) Passes() int { return r.count(Pass) }

// Fails returns the number of rules that failed.
func (r *Report) Fails() int { return r.count(Fail) }

// Warns returns the number of rules left to manual review.
func (r *Report) Warns() int { return r.count(Warn) }

// Tier derives the overall traffic-light grade from the verdict counts.
func (r *Report) Tier() Tier {
	switch {
	case r.Fails() == 0 && r.Warns() <= maxGreenWarns:
		return Green
	case r.Fails() <= maxYellowFails:
		return Yellow
	default:
		return Red
	}
}

// MarshalJSON implements json.Marshaler, adding the derived counts and tier
// so a serialized report is self-contained.
func (r *Report) MarshalJSON() ([]byte, error) {
	type alias Report
	return json.Marshal(struct {
		*alias
		Pass int  `json:"pass"`
		Fail int  `json:"fail"`
		Warn int  `json:"warn"`
		Tier Tier `json:"tier"`
	}{(*alias)(r), r.Passes(), r.Fails(), r.Warns(), r.Tier()})
}
