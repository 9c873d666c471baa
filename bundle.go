package checklist

import (
	"github.com/shopspring/decimal"
)

// MetricBundle holds the normalized financial metrics of one company, as
// assembled by a data provider (or decoded from a saved snapshot).
//
// A bundle distinguishes three states per metric: present (a numeric value),
// absent (the provider had nothing), and malformed (the provider had
// something that is not a number; the raw text is kept for the report).
//
// Assembly is the provider's business; once handed to Evaluate, the bundle
// is treated as read-only. Evaluate never mutates it, so one bundle may be
// evaluated concurrently from several goroutines.
type MetricBundle struct {
	ticker   string
	name     string
	currency string
	fetched  Date

	values    map[Metric]decimal.Decimal
	malformed map[Metric]string
	series    map[Metric]*History
}

// NewMetricBundle creates an empty bundle for a ticker.
func NewMetricBundle(ticker string) *MetricBundle {
	return &MetricBundle{
		ticker:    ticker,
		values:    make(map[Metric]decimal.Decimal),
		malformed: make(map[Metric]string),
		series:    make(map[Metric]*History),
	}
}

// Ticker returns the exchange symbol this bundle describes.
func (b *MetricBundle) Ticker() string { return b.ticker }

// Name returns the company name, or the ticker when unknown.
func (b *MetricBundle) Name() string {
	if b.name == "" {
		return b.ticker
	}
	return b.name
}

// Currency returns the reporting currency of the monetary metrics.
func (b *MetricBundle) Currency() string { return b.currency }

// Fetched returns the date the underlying data was obtained.
func (b *MetricBundle) Fetched() Date { return b.fetched }

// SetName records the company name.
func (b *MetricBundle) SetName(name string) { b.name = name }

// SetCurrency records the reporting currency.
func (b *MetricBundle) SetCurrency(cur string) { b.currency = cur }

// SetFetched records the date the data was obtained.
func (b *MetricBundle) SetFetched(on Date) { b.fetched = on }

// Set records a numeric value for a scalar metric. It clears any malformed
// record for that metric.
func (b *MetricBundle) Set(m Metric, value decimal.Decimal) {
	b.values[m] = value
	delete(b.malformed, m)
}

// SetFloat records a numeric value given as a float64.
func (b *MetricBundle) SetFloat(m Metric, value float64) {
	b.Set(m, decimal.NewFromFloat(value))
}

// SetRaw records a value received as text. A parseable number is stored as a
// value; anything else is kept as a malformed record so the evaluator can
// explain it instead of failing.
func (b *MetricBundle) SetRaw(m Metric, raw string) {
	if value, err := decimal.NewFromString(raw); err == nil {
		b.Set(m, value)
		return
	}
	b.SetMalformed(m, raw)
}

// SetMalformed records that the provider returned unusable data for a metric.
func (b *MetricBundle) SetMalformed(m Metric, raw string) {
	b.malformed[m] = raw
	delete(b.values, m)
}

// Value returns the numeric value of a scalar metric, if present.
func (b *MetricBundle) Value(m Metric) (decimal.Decimal, bool) {
	v, ok := b.values[m]
	return v, ok
}

// Malformed returns the raw unusable text recorded for a metric, if any.
func (b *MetricBundle) Malformed(m Metric) (string, bool) {
	raw, ok := b.malformed[m]
	return raw, ok
}

// Append adds a dated point to a history metric.
func (b *MetricBundle) Append(m Metric, on Date, value float64) {
	h, ok := b.series[m]
	if !ok {
		h = &History{}
		b.series[m] = h
	}
	h.Append(on, value)
}

// Series returns the history recorded for a metric. The returned history may
// be empty, never nil.
func (b *MetricBundle) Series(m Metric) *History {
	if h, ok := b.series[m]; ok {
		return h
	}
	return &History{}
}

// MoneyOf returns a monetary metric in the bundle's currency, for display.
func (b *MetricBundle) MoneyOf(m Metric) (Money, bool) {
	v, ok := b.values[m]
	if !ok {
		return Money{}, false
	}
	return NewMoney(v, b.currency), true
}
