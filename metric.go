package checklist

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Metric identifies one named financial metric of a MetricBundle.
type Metric string

// The metrics a bundle can carry. Scalar metrics hold one value for the
// trailing twelve months (or latest fiscal year); history metrics hold one
// value per fiscal period. The two qualitative metrics are only ever set by
// an explicit human override.
const (
	ReturnOnEquity   Metric = "return_on_equity"  // ratio, e.g. 0.15 for 15%
	ReturnOnAssets   Metric = "return_on_assets"  // ratio
	NetMargin        Metric = "net_margin"        // ratio
	GrossMargin      Metric = "gross_margin"      // ratio
	DebtToEquity     Metric = "debt_to_equity"    // ratio
	InterestCoverage Metric = "interest_coverage" // multiple, EBIT over interest expense
	FreeCashFlow     Metric = "free_cash_flow"    // monetary amount in the bundle currency
	EPSHistory       Metric = "eps_history"       // per-period earnings per share
	RevenueHistory   Metric = "revenue_history"   // per-period total revenue
	PricingPower     Metric = "pricing_power"     // qualitative override, 0..1
	EconomicMoat     Metric = "economic_moat"     // qualitative override, 0..1
)

// Scalars lists the scalar metrics a provider is expected to fill.
// Histories and qualitative overrides are handled separately.
var Scalars = []Metric{
	ReturnOnEquity, ReturnOnAssets, NetMargin, GrossMargin,
	DebtToEquity, InterestCoverage, FreeCashFlow,
}

// Percent formats a ratio as a percentage for display.
type Percent float64

func (p Percent) String() string { return fmt.Sprintf("%.1f%%", 100*p) }

// Money represents a monetary value in a given currency.
type Money struct {
	value decimal.Decimal // in major units
	cur   string
}

// NewMoney creates a monetary value from a decimal amount in major units.
func NewMoney(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// Currency returns the money's currency code.
func (m Money) Currency() string { return m.cur }

// IsPositive reports whether the amount is strictly positive.
func (m Money) IsPositive() bool { return m.value.IsPositive() }

// IsNegative reports whether the amount is strictly negative.
func (m Money) IsNegative() bool { return m.value.IsNegative() }

// String formats the amount with its currency symbol.
func (m Money) String() string {
	// The go-money constructor is the only way to get a never-nil currency.
	cur := *money.New(0, m.cur).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
