package homesim

import "iter"

// Range represents a bounded range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Dates returns an iterator over the occurrences of period p within the
// range, starting at From.
func (r Range) Dates(p Period) iter.Seq[Date] { return Schedule(r.From, p, r.To) }

// Schedule expands a recurring event into its finite sequence of dates:
// starting at first, stepping by the period's duration, inclusive while the
// current position is not past last. The iterator is restartable.
func Schedule(first Date, p Period, last Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		end := last.time()
		// The cursor walks in time space so that fractional steps (a month
		// is 30.44 days) accumulate instead of being truncated every step.
		for cur := first.time(); !cur.After(end); cur = cur.Add(p.Step()) {
			if !yield(NewDate(cur.Date())) {
				return
			}
		}
	}
}
