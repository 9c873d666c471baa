package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/checklist"
)

func testReport(t *testing.T) *checklist.Report {
	t.Helper()
	b := checklist.NewMetricBundle("ACME")
	b.SetName("Acme Corp")
	b.SetCurrency("USD")
	b.SetFetched(checklist.NewDate(2025, time.June, 30))
	b.SetFloat(checklist.ReturnOnEquity, 0.20)
	b.SetFloat(checklist.DebtToEquity, 2.5)
	return checklist.Evaluate(b)
}

func TestChecklistMarkdown(t *testing.T) {
	md := ChecklistMarkdown(NewChecklist(testReport(t)))

	wants := []string{
		"# Value Checklist — Acme Corp (ACME)",
		"*Data as of 2025-06-30*",
		"| ✅ | Return on equity ≥ 15% |",
		"| ❌ | Debt to equity ≤ 1.0 |",
		"**Score: 1/11**",
		"1 pass, 1 fail, 9 to review",
		"🟡 Watchlist",
	}
	for _, want := range wants {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\nfull output:\n%s", want, md)
		}
	}

	// One table row per rule.
	if got := strings.Count(md, "| ✅ |")+strings.Count(md, "| ❌ |")+strings.Count(md, "| ⚠️ |"); got != 11 {
		t.Errorf("markdown has %d rule rows, want 11\nfull output:\n%s", got, md)
	}
}

func TestChecklistMarkdown_NoDate(t *testing.T) {
	b := checklist.NewMetricBundle("X")
	md := ChecklistMarkdown(NewChecklist(checklist.Evaluate(b)))
	if strings.Contains(md, "Data as of") {
		t.Errorf("markdown should omit the date line when unknown:\n%s", md)
	}
}
