package checklist

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// The thresholds of the quantitative rules. They are deliberate defaults in
// the value-investing tradition, fixed here once so every report is
// comparable; `vic topic checklist` documents them for users.
var (
	minReturnOnEquity = decimal.NewFromFloat(0.15)
	minReturnOnAssets = decimal.NewFromFloat(0.12)
	minNetMargin      = decimal.NewFromFloat(0.20)
	minGrossMargin    = decimal.NewFromFloat(0.40)
	maxDebtToEquity   = decimal.NewFromFloat(1.0)
	minCoverage       = decimal.NewFromFloat(5.0)
	minConviction     = decimal.NewFromFloat(0.5) // manual override passes at 0.5
)

// checks is the fixed, ordered checklist. Exactly eleven rules, quantitative
// first, the two qualitative reminders last.
var checks = []Rule{
	atLeast("return-on-equity", "Return on equity ≥ 15%", ReturnOnEquity, minReturnOnEquity),
	atLeast("return-on-assets", "Return on assets ≥ 12%", ReturnOnAssets, minReturnOnAssets),
	atLeast("net-margin", "Net margin ≥ 20%", NetMargin, minNetMargin),
	atLeast("gross-margin", "Gross margin ≥ 40%", GrossMargin, minGrossMargin),
	nonDecreasing("eps-trend", "EPS non-decreasing", EPSHistory, "EPS"),
	nonDecreasing("revenue-trend", "Revenue non-decreasing", RevenueHistory, "revenue"),
	atMost("debt-to-equity", "Debt to equity ≤ 1.0", DebtToEquity),
	coverage("interest-coverage", "Interest coverage ≥ 5×", InterestCoverage),
	positiveCash("free-cash-flow", "Free cash flow > 0", FreeCashFlow),
	manual("pricing-power", "Pricing power keeps up with inflation", PricingPower),
	manual("economic-moat", "Durable barriers to entry", EconomicMoat),
}

// warnResult builds the Warn result shared by every rule whose metric cannot
// be read: absence and malformed data are reminders, never failures.
func warnResult(b *MetricBundle, m Metric, absent string) (RuleResult, bool) {
	if raw, ok := b.Malformed(m); ok {
		return RuleResult{
			Verdict:     Warn,
			Value:       "—",
			Explanation: fmt.Sprintf("unreadable %s value %q, review manually", m, raw),
		}, true
	}
	if _, ok := b.Value(m); !ok {
		return RuleResult{Verdict: Warn, Value: "—", Explanation: absent}, true
	}
	return RuleResult{}, false
}

// atLeast builds a rule that passes when a ratio metric clears a floor.
func atLeast(id, label string, m Metric, floor decimal.Decimal) Rule {
	return Rule{ID: id, Label: label, eval: func(b *MetricBundle) RuleResult {
		if res, done := warnResult(b, m, fmt.Sprintf("no %s data, review manually", m)); done {
			return res
		}
		v, _ := b.Value(m)
		value := Percent(v.InexactFloat64()).String()
		want := Percent(floor.InexactFloat64()).String()
		if v.GreaterThanOrEqual(floor) {
			return RuleResult{Verdict: Pass, Value: value,
				Explanation: fmt.Sprintf("%s clears the %s minimum", value, want)}
		}
		return RuleResult{Verdict: Fail, Value: value,
			Explanation: fmt.Sprintf("%s is below the %s minimum", value, want)}
	}}
}

// atMost builds the leverage rule: pass when debt to equity stays under the cap.
func atMost(id, label string, m Metric) Rule {
	return Rule{ID: id, Label: label, eval: func(b *MetricBundle) RuleResult {
		if res, done := warnResult(b, m, fmt.Sprintf("no %s data, review manually", m)); done {
			return res
		}
		v, _ := b.Value(m)
		value := v.StringFixed(2)
		if v.LessThanOrEqual(maxDebtToEquity) {
			return RuleResult{Verdict: Pass, Value: value,
				Explanation: fmt.Sprintf("leverage %s is within the %s cap", value, maxDebtToEquity)}
		}
		return RuleResult{Verdict: Fail, Value: value,
			Explanation: fmt.Sprintf("leverage %s exceeds the %s cap", value, maxDebtToEquity)}
	}}
}

// coverage builds the interest-coverage rule: EBIT over interest expense.
func coverage(id, label string, m Metric) Rule {
	return Rule{ID: id, Label: label, eval: func(b *MetricBundle) RuleResult {
		if res, done := warnResult(b, m, "no interest coverage data, review manually"); done {
			return res
		}
		v, _ := b.Value(m)
		value := v.StringFixed(1) + "×"
		if v.GreaterThanOrEqual(minCoverage) {
			return RuleResult{Verdict: Pass, Value: value,
				Explanation: fmt.Sprintf("earnings cover interest %s, above the %s× minimum", value, minCoverage)}
		}
		return RuleResult{Verdict: Fail, Value: value,
			Explanation: fmt.Sprintf("earnings cover interest only %s, below the %s× minimum", value, minCoverage)}
	}}
}

// positiveCash builds the free-cash-flow rule: any positive amount passes.
func positiveCash(id, label string, m Metric) Rule {
	return Rule{ID: id, Label: label, eval: func(b *MetricBundle) RuleResult {
		if res, done := warnResult(b, m, "no free cash flow data, review manually"); done {
			return res
		}
		amount, _ := b.MoneyOf(m)
		if amount.IsPositive() {
			return RuleResult{Verdict: Pass, Value: amount.String(),
				Explanation: fmt.Sprintf("free cash flow %s is positive", amount)}
		}
		return RuleResult{Verdict: Fail, Value: amount.String(),
			Explanation: fmt.Sprintf("free cash flow %s is not positive", amount)}
	}}
}

// nonDecreasing builds a trend rule over a per-period history: a single
// step-down in the window fails, fewer than two periods cannot be judged.
func nonDecreasing(id, label string, m Metric, what string) Rule {
	return Rule{ID: id, Label: label, eval: func(b *MetricBundle) RuleResult {
		h := b.Series(m)
		if h.Len() < 2 {
			return RuleResult{Verdict: Warn, Value: "—",
				Explanation: fmt.Sprintf("%d period(s) of %s data is not enough for a trend, review manually", h.Len(), what)}
		}
		var prev float64
		var prevOn Date
		first := true
		for on, v := range h.Values() {
			if !first && v < prev {
				return RuleResult{Verdict: Fail,
					Value:       fmt.Sprintf("%d periods", h.Len()),
					Explanation: fmt.Sprintf("%s fell from %g to %g between %s and %s", what, prev, v, prevOn, on)}
			}
			prev, prevOn, first = v, on, false
		}
		return RuleResult{Verdict: Pass,
			Value:       fmt.Sprintf("%d periods", h.Len()),
			Explanation: fmt.Sprintf("%s never declined over the last %d periods", what, h.Len())}
	}}
}

// manual builds a qualitative rule. Without an override it reminds the
// analyst to judge for themselves; with one, the conviction score decides.
func manual(id, label string, m Metric) Rule {
	return Rule{ID: id, Label: label, Manual: true, Metric: m, eval: func(b *MetricBundle) RuleResult {
		if res, done := warnResult(b, m, fmt.Sprintf("qualitative check, set a conviction score with -override %s=0..1", id)); done {
			return res
		}
		v, _ := b.Value(m)
		value := v.StringFixed(1)
		if v.GreaterThanOrEqual(minConviction) {
			return RuleResult{Verdict: Pass, Value: value,
				Explanation: fmt.Sprintf("conviction %s meets the %s bar", value, minConviction.StringFixed(1))}
		}
		return RuleResult{Verdict: Fail, Value: value,
			Explanation: fmt.Sprintf("conviction %s is under the %s bar", value, minConviction.StringFixed(1))}
	}}
}
