package checklist

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-06-30", NewDate(2025, time.June, 30), false},
		{"2025-6-3", NewDate(2025, time.June, 3), false}, // lenient single digits
		{" 2025-06-30 ", NewDate(2025, time.June, 30), false},
		{"30/06/2025", Date{}, true},
		{"", Date{}, true},
	}
	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_Normalization(t *testing.T) {
	// Day overflow normalizes like time.Date does.
	if got := NewDate(2025, time.January, 32); got != NewDate(2025, time.February, 1) {
		t.Errorf("NewDate(2025, jan, 32) = %s, want 2025-02-01", got)
	}
	if got := NewDate(2024, time.February, 29).Add(1); got != NewDate(2024, time.March, 1) {
		t.Errorf("leap day + 1 = %s, want 2024-03-01", got)
	}
}

func TestDate_JSON(t *testing.T) {
	on := NewDate(2025, time.June, 30)
	data, err := json.Marshal(on)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `"2025-06-30"` {
		t.Errorf("Marshal = %s, want \"2025-06-30\"", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != on {
		t.Errorf("roundtrip = %s, want %s", back, on)
	}
}

func TestHistory_SortedAndOverwrite(t *testing.T) {
	h := &History{}
	h.Append(NewDate(2024, time.December, 31), 2.0)
	h.Append(NewDate(2022, time.December, 31), 1.0)
	h.Append(NewDate(2023, time.December, 31), 1.5)
	h.Append(NewDate(2023, time.December, 31), 1.6) // last data wins

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	var got []float64
	var last Date
	for on, v := range h.Values() {
		if !last.IsZero() && !last.Before(on) {
			t.Errorf("history out of order: %s then %s", last, on)
		}
		last = on
		got = append(got, v)
	}
	want := []float64{1.0, 1.6, 2.0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("values = %v, want %v", got, want)
			break
		}
	}

	day, v := h.Latest()
	if day != NewDate(2024, time.December, 31) || v != 2.0 {
		t.Errorf("Latest() = %s %v, want 2024-12-31 2", day, v)
	}
}
