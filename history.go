package checklist

import (
	"iter"
	"slices"
)

// History stores a chronological series of per-period values, each associated
// with the closing date of its fiscal period. Dates are unique and the series
// is always sorted.
type History struct {
	days   []Date
	values []float64
}

// Len returns the number of periods in the history.
func (h *History) Len() int { return len(h.days) }

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History) Latest() (day Date, value float64) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, 0
	}
	return h.days[last], h.values[last]
}

// Append adds a point to the history, keeping it sorted.
//
// An existing value at that date is overwritten: the last data wins.
func (h *History) Append(on Date, v float64) *History {
	if i := slices.Index(h.days, on); i >= 0 {
		h.values[i] = v
		return h
	}
	h.days, h.values = append(h.days, on), append(h.values, v)
	h.sort()
	return h
}

func (h *History) sort() {
	idx := make([]int, len(h.days))
	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) int { return h.days[a].Compare(h.days[b]) })
	days := make([]Date, len(h.days))
	values := make([]float64, len(h.values))
	for to, from := range idx {
		days[to], values[to] = h.days[from], h.values[from]
	}
	h.days, h.values = days, values
}

// Values returns an iterator over all date/value pairs, in chronological order.
func (h *History) Values() iter.Seq2[Date, float64] {
	return func(yield func(Date, float64) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at 'day' and true, or zero and false.
func (h *History) Get(day Date) (float64, bool) {
	if i := slices.Index(h.days, day); i >= 0 {
		return h.values[i], true
	}
	return 0, false
}
