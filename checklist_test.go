package checklist

import (
	"testing"
	"time"
)

// newTestBundle creates a bundle with every quantitative metric at a passing
// value, so tests can degrade one metric at a time.
func newTestBundle(t *testing.T) *MetricBundle {
	t.Helper()
	b := NewMetricBundle("ACME")
	b.SetName("Acme Corp")
	b.SetCurrency("USD")
	b.SetFetched(NewDate(2025, time.June, 30))

	b.SetFloat(ReturnOnEquity, 0.22)
	b.SetFloat(ReturnOnAssets, 0.14)
	b.SetFloat(NetMargin, 0.25)
	b.SetFloat(GrossMargin, 0.48)
	b.SetFloat(DebtToEquity, 0.6)
	b.SetFloat(InterestCoverage, 9.5)
	b.SetFloat(FreeCashFlow, 1_250_000_000)

	for i, eps := range []float64{3.1, 3.4, 3.9, 4.2} {
		b.Append(EPSHistory, NewDate(2021+i, time.December, 31), eps)
	}
	for i, rev := range []float64{10e9, 11e9, 12e9, 13e9} {
		b.Append(RevenueHistory, NewDate(2021+i, time.December, 31), rev)
	}
	return b
}

func TestEvaluate_AlwaysElevenResults(t *testing.T) {
	bundles := map[string]*MetricBundle{
		"empty":    NewMetricBundle("EMPTY"),
		"complete": newTestBundle(t),
	}
	for name, b := range bundles {
		t.Run(name, func(t *testing.T) {
			report := Evaluate(b)
			if got := len(report.Results); got != 11 {
				t.Fatalf("Evaluate() returned %d results, want 11", got)
			}
			rules := Rules()
			for i, res := range report.Results {
				if res.ID != rules[i].ID {
					t.Errorf("result[%d] = %q, want %q (stable order)", i, res.ID, rules[i].ID)
				}
				if res.Explanation == "" {
					t.Errorf("result[%d] %q has no explanation", i, res.ID)
				}
			}
		})
	}
}

func TestEvaluate_AbsentMetricsWarn(t *testing.T) {
	report := Evaluate(NewMetricBundle("EMPTY"))
	for _, res := range report.Results {
		if res.Verdict != Warn {
			t.Errorf("rule %q = %v on an empty bundle, want warn", res.ID, res.Verdict)
		}
	}
	if got := report.Warns(); got != 11 {
		t.Errorf("Warns() = %d, want 11", got)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	b := newTestBundle(t)
	first := Evaluate(b)
	second := Evaluate(b)
	if len(first.Results) != len(second.Results) {
		t.Fatalf("result counts differ: %d vs %d", len(first.Results), len(second.Results))
	}
	for i := range first.Results {
		if first.Results[i] != second.Results[i] {
			t.Errorf("result[%d] differs between evaluations: %+v vs %+v",
				i, first.Results[i], second.Results[i])
		}
	}
	if first.Tier() != second.Tier() {
		t.Errorf("tiers differ: %v vs %v", first.Tier(), second.Tier())
	}
}

func TestReport_Tier(t *testing.T) {
	testCases := []struct {
		name     string
		degrade  func(b *MetricBundle)
		wantPass int
		wantFail int
		wantWarn int
		wantTier Tier
	}{
		{
			name: "two passes rest absent is yellow",
			degrade: func(b *MetricBundle) {
				// Rebuild down to two known metrics.
				*b = *NewMetricBundle("ACME")
				b.SetFloat(ReturnOnEquity, 0.20)
				b.SetFloat(DebtToEquity, 0.5)
			},
			wantPass: 2, wantFail: 0, wantWarn: 9,
			wantTier: Yellow, // warns above the green allowance
		},
		{
			name: "single fail rest absent is yellow",
			degrade: func(b *MetricBundle) {
				*b = *NewMetricBundle("ACME")
				b.SetFloat(ReturnOnEquity, 0.05)
			},
			wantPass: 0, wantFail: 1, wantWarn: 10,
			wantTier: Yellow,
		},
		{
			name:     "nine passes two manual warns is green",
			degrade:  func(b *MetricBundle) {},
			wantPass: 9, wantFail: 0, wantWarn: 2,
			wantTier: Green,
		},
		{
			name: "three fails is red",
			degrade: func(b *MetricBundle) {
				b.SetFloat(ReturnOnEquity, 0.02)
				b.SetFloat(NetMargin, 0.01)
				b.SetFloat(DebtToEquity, 3.5)
			},
			wantPass: 6, wantFail: 3, wantWarn: 2,
			wantTier: Red,
		},
		{
			name: "two fails stays yellow",
			degrade: func(b *MetricBundle) {
				b.SetFloat(ReturnOnEquity, 0.02)
				b.SetFloat(NetMargin, 0.01)
			},
			wantPass: 7, wantFail: 2, wantWarn: 2,
			wantTier: Yellow,
		},
		{
			name: "manual overrides can reach green",
			degrade: func(b *MetricBundle) {
				b.SetFloat(PricingPower, 0.8)
				b.SetFloat(EconomicMoat, 0.6)
			},
			wantPass: 11, wantFail: 0, wantWarn: 0,
			wantTier: Green,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newTestBundle(t)
			tc.degrade(b)
			report := Evaluate(b)
			if got := report.Passes(); got != tc.wantPass {
				t.Errorf("Passes() = %d, want %d", got, tc.wantPass)
			}
			if got := report.Fails(); got != tc.wantFail {
				t.Errorf("Fails() = %d, want %d", got, tc.wantFail)
			}
			if got := report.Warns(); got != tc.wantWarn {
				t.Errorf("Warns() = %d, want %d", got, tc.wantWarn)
			}
			if got := report.Tier(); got != tc.wantTier {
				t.Errorf("Tier() = %v, want %v", got, tc.wantTier)
			}
		})
	}
}
