package checklist

// Rule is a single checklist rule: a pure function of a MetricBundle.
type Rule struct {
	// ID is the stable identifier of the rule, also used in reports and for
	// CLI overrides.
	ID string
	// Label is the human-readable statement of the check, thresholds included.
	Label string
	// Manual marks the qualitative rules that need a human override to score.
	Manual bool
	// Metric is the bundle metric a manual override writes to. Empty on
	// quantitative rules.
	Metric Metric

	eval func(b *MetricBundle) RuleResult
}

// Eval runs the rule against a bundle. The result always carries the rule ID.
func (r Rule) Eval(b *MetricBundle) RuleResult {
	res := r.eval(b)
	res.ID = r.ID
	return res
}

// RuleResult is the outcome of one rule for one company. It is created by
// Evaluate and never mutated.
type RuleResult struct {
	ID          string  `json:"id"`
	Verdict     Verdict `json:"verdict"`
	Value       string  `json:"value,omitempty"` // observed value, for display
	Explanation string  `json:"explanation"`
}

// Rules returns the fixed, ordered list of the eleven checklist rules.
// The order is stable across calls and releases: reports list results in
// this order, and diffing two reports line by line is meaningful.
func Rules() []Rule {
	rules := make([]Rule, len(checks))
	copy(rules, checks)
	return rules
}

// RuleByID returns the rule with the given identifier.
func RuleByID(id string) (Rule, bool) {
	for _, r := range checks {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}
