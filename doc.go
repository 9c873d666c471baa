// Package checklist evaluates a public company against a fixed eleven-point
// value-investing checklist.
//
// The core is a single pure function: Evaluate takes a MetricBundle (the
// normalized financial metrics of one company, however they were obtained)
// and returns a Report holding exactly eleven RuleResults, one per rule, in
// a stable order, plus an aggregate tier (Green, Yellow, Red).
//
// The evaluator never fetches data, never mutates its input, and never
// fails: a metric that is absent or unreadable yields a Warn verdict with an
// explanation, so the caller always receives a complete report. Two of the
// eleven rules are qualitative by design (pricing power, economic moat) and
// stay at Warn until a human supplies an override score.
//
// Assembling bundles from a data provider lives in the eodhd subpackage,
// rendering in renderer, and the `vic` command-line tool in cmd. This
// package serves as the single source of truth for thresholds and the tier
// policy, so every surface reports the same verdicts.
package checklist
