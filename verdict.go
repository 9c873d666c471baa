package checklist

import "fmt"

// Verdict is the outcome of a single checklist rule.
type Verdict int

const (
	// Warn means the rule could not be decided automatically: the metric is
	// absent, unreadable, or the rule is qualitative. It is a reminder to
	// review manually, never a business failure.
	Warn Verdict = iota
	// Pass means the metric clears the rule's threshold.
	Pass
	// Fail means the metric is present and does not clear the threshold.
	Fail
)

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Warn:
		return "warn"
	default:
		return "unknown"
	}
}

// Icon returns the badge used when rendering this verdict.
func (v Verdict) Icon() string {
	switch v {
	case Pass:
		return "✅"
	case Fail:
		return "❌"
	default:
		return "⚠️"
	}
}

// ParseVerdict parses a string into a Verdict.
func ParseVerdict(s string) (Verdict, error) {
	switch s {
	case "pass":
		return Pass, nil
	case "fail":
		return Fail, nil
	case "warn":
		return Warn, nil
	default:
		return 0, fmt.Errorf("unknown verdict: %q", s)
	}
}

// MarshalJSON implements json.Marshaler.
func (v Verdict) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Verdict) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid verdict: %s", s)
	}
	parsed, err := ParseVerdict(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Tier is the overall grade of a checklist report.
type Tier int

const (
	// Red marks a company to avoid: more than two failed rules.
	Red Tier = iota
	// Yellow marks a watchlist candidate: at most two failed rules.
	Yellow
	// Green marks a strong candidate: no failed rule and at most two warnings.
	Green
)

func (t Tier) String() string {
	switch t {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// Icon returns the traffic-light badge for the tier.
func (t Tier) Icon() string {
	switch t {
	case Green:
		return "🟢"
	case Yellow:
		return "🟡"
	default:
		return "🔴"
	}
}

// Label returns the human-readable meaning of the tier.
func (t Tier) Label() string {
	switch t {
	case Green:
		return "Strong Candidate"
	case Yellow:
		return "Watchlist"
	default:
		return "Avoid"
	}
}

// MarshalJSON implements json.Marshaler.
func (t Tier) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}
