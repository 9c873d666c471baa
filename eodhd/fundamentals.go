// Package eodhd assembles checklist metric bundles from the EOD Historical
// Data API (https://eodhd.com). Tickers use EODHD's "SYMBOL.EXCHANGE" format,
// e.g. "AAPL.US".
package eodhd

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/checklist"
	"github.com/shopspring/decimal"
)

// Fundamentals fetches the fundamentals document for a ticker and normalizes
// it into a MetricBundle.
//
// Extraction is forgiving on purpose: a field missing from the document
// leaves the metric absent, a field present but unreadable is recorded as
// malformed. Either way the bundle stays usable and the evaluator turns the
// gap into a Warn.
func Fundamentals(apiKey, ticker string) (*checklist.MetricBundle, error) {
	// https://eodhd.com/api/fundamentals/AAPL.US?api_token=demo&fmt=json
	// The response is one large JSON document:
	// {
	//   "General": { "Name": "Apple Inc", "CurrencyCode": "USD", ... },
	//   "Highlights": { "ReturnOnEquityTTM": 1.4725, "ProfitMargin": 0.2430, ... },
	//   "Earnings": { "Annual": { "2024-09-30": {"date": "2024-09-30", "epsActual": 6.08}, ... } },
	//   "Financials": {
	//     "Balance_Sheet": { "yearly": { "2024-09-30": { ... }, ... } },
	//     "Income_Statement": { "yearly": { ... } },
	//     "Cash_Flow": { "yearly": { ... } }
	//   }
	// }
	addr := fmt.Sprintf("https://eodhd.com/api/fundamentals/%s?fmt=json&api_token=%s",
		url.PathEscape(ticker), url.QueryEscape(apiKey))

	var doc any
	if err := jwget(newDailyCachingClient(), addr, &doc); err != nil {
		return nil, fmt.Errorf("fetching fundamentals for %q: %w", ticker, err)
	}

	b := buildBundle(ticker, doc)
	b.SetFetched(checklist.Today())
	return b, nil
}

// buildBundle normalizes a fundamentals document into a MetricBundle.
func buildBundle(ticker string, doc any) *checklist.MetricBundle {
	b := checklist.NewMetricBundle(ticker)

	if name, ok := jstring(doc, "$.General.Name"); ok {
		b.SetName(name)
	}
	if cur, ok := jstring(doc, "$.General.CurrencyCode"); ok {
		b.SetCurrency(cur)
	}

	// Ratios reported directly by the provider.
	setScalar(b, doc, checklist.ReturnOnEquity, "$.Highlights.ReturnOnEquityTTM")
	setScalar(b, doc, checklist.ReturnOnAssets, "$.Highlights.ReturnOnAssetsTTM")
	setScalar(b, doc, checklist.NetMargin, "$.Highlights.ProfitMargin")

	// Gross margin is not reported as a ratio; derive it from the trailing
	// twelve months gross profit and revenue.
	setRatio(b, doc, checklist.GrossMargin,
		"$.Highlights.GrossProfitTTM", "$.Highlights.RevenueTTM")

	// Leverage and coverage from the latest yearly statements.
	balance := latestStatement(doc, "$.Financials.Balance_Sheet.yearly.*")
	setStatementRatio(b, balance, checklist.DebtToEquity,
		"shortLongTermDebtTotal", "totalStockholderEquity")

	income := latestStatement(doc, "$.Financials.Income_Statement.yearly.*")
	setStatementRatio(b, income, checklist.InterestCoverage,
		"ebit", "interestExpense")

	cashflow := latestStatement(doc, "$.Financials.Cash_Flow.yearly.*")
	setStatementScalar(b, cashflow, checklist.FreeCashFlow, "freeCashFlow")

	// Per-period histories. Map iteration order does not matter: the
	// bundle's histories sort by date.
	appendSeries(b, doc, checklist.EPSHistory, "$.Earnings.Annual.*", "epsActual")
	appendSeries(b, doc, checklist.RevenueHistory, "$.Financials.Income_Statement.yearly.*", "totalRevenue")

	return b
}

// jget returns the value at a jsonpath, unwrapping single-element answers
// (jsonpath is never clear whether it returns a list of one or the value).
func jget(doc any, path string) (any, bool) {
	v, err := jsonpath.Get(path, doc)
	if err != nil || v == nil {
		return nil, false
	}
	if list, ok := v.([]any); ok && len(list) == 1 {
		v = list[0]
	}
	return v, true
}

// jstring returns the string at a jsonpath.
func jstring(doc any, path string) (string, bool) {
	v, ok := jget(doc, path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// toDecimal converts a loosely typed JSON value to a decimal. The API mixes
// numbers and numeric strings freely. It returns the display form of the raw
// value when conversion fails.
func toDecimal(v any) (decimal.Decimal, string, bool) {
	switch x := v.(type) {
	case float64:
		return decimal.NewFromFloat(x), "", true
	case string:
		if d, err := decimal.NewFromString(x); err == nil {
			return d, "", true
		}
		return decimal.Decimal{}, x, false
	default:
		return decimal.Decimal{}, fmt.Sprint(v), false
	}
}

// setScalar extracts one value into a scalar metric: absent fields are
// skipped, unreadable ones recorded as malformed.
func setScalar(b *checklist.MetricBundle, doc any, m checklist.Metric, path string) {
	v, ok := jget(doc, path)
	if !ok {
		return
	}
	d, raw, ok := toDecimal(v)
	if !ok {
		b.SetMalformed(m, raw)
		return
	}
	b.Set(m, d)
}

// setRatio extracts a numerator and denominator and stores their quotient.
func setRatio(b *checklist.MetricBundle, doc any, m checklist.Metric, numPath, denPath string) {
	num, okNum := jget(doc, numPath)
	den, okDen := jget(doc, denPath)
	if !okNum || !okDen {
		return
	}
	dnum, raw, ok := toDecimal(num)
	if !ok {
		b.SetMalformed(m, raw)
		return
	}
	dden, raw, ok := toDecimal(den)
	if !ok {
		b.SetMalformed(m, raw)
		return
	}
	if dden.IsZero() {
		return
	}
	b.Set(m, dnum.DivRound(dden, 6))
}

// latestStatement returns the most recent entry of a yearly statement map,
// using each entry's "date" field.
func latestStatement(doc any, path string) map[string]any {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil
	}
	entries, ok := v.([]any)
	if !ok {
		return nil
	}
	var latest map[string]any
	var latestOn checklist.Date
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		ds, _ := entry["date"].(string)
		on, err := checklist.ParseDate(ds)
		if err != nil {
			continue
		}
		if latest == nil || on.After(latestOn) {
			latest, latestOn = entry, on
		}
	}
	return latest
}

// setStatementScalar stores one field of a statement entry as a metric.
func setStatementScalar(b *checklist.MetricBundle, entry map[string]any, m checklist.Metric, field string) {
	if entry == nil {
		return
	}
	v, ok := entry[field]
	if !ok || v == nil {
		return
	}
	d, raw, ok := toDecimal(v)
	if !ok {
		b.SetMalformed(m, raw)
		return
	}
	b.Set(m, d)
}

// setStatementRatio stores the quotient of two fields of a statement entry.
func setStatementRatio(b *checklist.MetricBundle, entry map[string]any, m checklist.Metric, numField, denField string) {
	if entry == nil {
		return
	}
	num, okNum := entry[numField]
	den, okDen := entry[denField]
	if !okNum || num == nil || !okDen || den == nil {
		return
	}
	dnum, raw, ok := toDecimal(num)
	if !ok {
		b.SetMalformed(m, raw)
		return
	}
	dden, raw, ok := toDecimal(den)
	if !ok {
		b.SetMalformed(m, raw)
		return
	}
	if dden.IsZero() {
		return
	}
	b.Set(m, dnum.DivRound(dden, 6))
}

// appendSeries collects one dated field from every entry of a per-period map
// into a history metric. Entries without a usable date or value are skipped:
// a sparse history is still a history.
func appendSeries(b *checklist.MetricBundle, doc any, m checklist.Metric, path, field string) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return
	}
	entries, ok := v.([]any)
	if !ok {
		return
	}
	for _, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			continue
		}
		ds, _ := entry["date"].(string)
		on, err := checklist.ParseDate(ds)
		if err != nil {
			continue
		}
		value, ok := entry[field]
		if !ok || value == nil {
			continue
		}
		switch x := value.(type) {
		case float64:
			b.Append(m, on, x)
		case string:
			if f, err := strconv.ParseFloat(x, 64); err == nil {
				b.Append(m, on, f)
			}
		}
	}
}
