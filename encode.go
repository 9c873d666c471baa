package checklist

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/shopspring/decimal"
)

// This file contains code to persist metric bundles in a folder, one
// human-readable JSON document per ticker, so that checklists can be
// re-evaluated offline and snapshots can live in a git repo.

// jpoint is the JSON proxy for one dated value of a history metric.
type jpoint struct {
	On    Date    `json:"on"`
	Value float64 `json:"value"`
}

// jbundle is the JSON proxy for a MetricBundle.
type jbundle struct {
	Ticker    string                     `json:"ticker"`
	Name      string                     `json:"name,omitempty"`
	Currency  string                     `json:"currency,omitempty"`
	Fetched   *Date                      `json:"fetched,omitempty"`
	Metrics   map[Metric]decimal.Decimal `json:"metrics,omitempty"`
	Malformed map[Metric]string          `json:"malformed,omitempty"`
	Series    map[Metric][]jpoint        `json:"series,omitempty"`
}

// EncodeBundle writes a bundle as an indented JSON document.
func EncodeBundle(w io.Writer, b *MetricBundle) error {
	jb := jbundle{
		Ticker:   b.ticker,
		Name:     b.name,
		Currency: b.currency,
	}
	if !b.fetched.IsZero() {
		on := b.fetched
		jb.Fetched = &on
	}
	if len(b.values) > 0 {
		jb.Metrics = b.values
	}
	if len(b.malformed) > 0 {
		jb.Malformed = b.malformed
	}
	if len(b.series) > 0 {
		jb.Series = make(map[Metric][]jpoint, len(b.series))
		for m, h := range b.series {
			points := make([]jpoint, 0, h.Len())
			for on, v := range h.Values() {
				points = append(points, jpoint{On: on, Value: v})
			}
			jb.Series[m] = points
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jb); err != nil {
		return fmt.Errorf("encoding bundle %q: %w", b.ticker, err)
	}
	return nil
}

// DecodeBundle reads a bundle from its JSON document.
func DecodeBundle(r io.Reader) (*MetricBundle, error) {
	var jb jbundle
	if err := json.NewDecoder(r).Decode(&jb); err != nil {
		return nil, fmt.Errorf("decoding bundle: %w", err)
	}
	if jb.Ticker == "" {
		return nil, fmt.Errorf("decoding bundle: missing ticker")
	}

	b := NewMetricBundle(jb.Ticker)
	b.name = jb.Name
	b.currency = jb.Currency
	if jb.Fetched != nil {
		b.fetched = *jb.Fetched
	}
	for m, v := range jb.Metrics {
		b.Set(m, v)
	}
	for m, raw := range jb.Malformed {
		b.SetMalformed(m, raw)
	}
	for m, points := range jb.Series {
		for _, p := range points {
			b.Append(m, p.On, p.Value)
		}
	}
	return b, nil
}

// bundleFilename returns the snapshot file for a ticker inside dir.
func bundleFilename(dir, ticker string) string {
	return filepath.Join(dir, ticker+".json")
}

// SaveBundle persists a bundle under dir, creating the folder if needed.
func SaveBundle(dir string, b *MetricBundle) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating fundamentals folder %q: %w", dir, err)
	}
	f, err := os.Create(bundleFilename(dir, b.ticker))
	if err != nil {
		return fmt.Errorf("creating bundle file: %w", err)
	}
	defer f.Close()
	return EncodeBundle(f, b)
}

// LoadBundle reads the saved bundle of a ticker from dir.
func LoadBundle(dir, ticker string) (*MetricBundle, error) {
	f, err := os.Open(bundleFilename(dir, ticker))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeBundle(f)
}

// ListBundles returns the tickers that have a saved snapshot under dir,
// in alphabetical order.
func ListBundles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	tickers := make([]string, 0, len(matches))
	for _, m := range matches {
		base := filepath.Base(m)
		tickers = append(tickers, base[:len(base)-len(".json")])
	}
	sort.Strings(tickers)
	return tickers, nil
}
