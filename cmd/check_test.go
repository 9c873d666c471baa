package cmd

import (
	"testing"

	"github.com/etnz/checklist"
)

func TestOverrideFlag_Set(t *testing.T) {
	cases := []struct {
		value   string
		wantErr bool
	}{
		{"pricing-power=0.8", false},
		{"economic-moat=0", false},
		{"pricing-power=1", false},
		{"pricing-power", true},        // missing score
		{"no-such-rule=0.5", true},     // unknown rule
		{"net-margin=0.5", true},       // quantitative rule
		{"pricing-power=high", true},   // not a number
		{"pricing-power=1.2", true},    // above range
		{"economic-moat=-0.1", true},   // below range
	}
	for _, tc := range cases {
		o := make(overrideFlag)
		err := o.Set(tc.value)
		if tc.wantErr && err == nil {
			t.Errorf("Set(%q) should have failed", tc.value)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("Set(%q) failed: %v", tc.value, err)
		}
	}
}

func TestOverrideFlag_RoutesToMetric(t *testing.T) {
	o := make(overrideFlag)
	if err := o.Set("pricing-power=0.8"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := o.Set("economic-moat=0.2"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	b := checklist.NewMetricBundle("TEST.US")
	for m, score := range o {
		b.Set(m, score)
	}
	report := checklist.Evaluate(b)

	verdicts := make(map[string]checklist.Verdict)
	for _, r := range report.Results {
		verdicts[r.ID] = r.Verdict
	}
	if got := verdicts["pricing-power"]; got != checklist.Pass {
		t.Errorf("pricing-power verdict = %v, want Pass", got)
	}
	if got := verdicts["economic-moat"]; got != checklist.Fail {
		t.Errorf("economic-moat verdict = %v, want Fail", got)
	}
}

func TestOverrideFlag_String(t *testing.T) {
	o := make(overrideFlag)
	if err := o.Set("pricing-power=0.8"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if got, want := o.String(), "pricing_power=0.8"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
