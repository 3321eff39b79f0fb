package calendar

import "iter"

// Period is a closed run of consecutive days beginning at Start.
type Period struct {
	Start Date
	Days  int
}

// WeekPeriod returns the 7 day period beginning at start.
func WeekPeriod(start Date) Period {
	return Period{Start: start, Days: 7}
}

// End returns the last day of the period.
func (p Period) End() Date {
	return p.Start.AddDays(p.Days - 1)
}

// Contains reports whether d falls within the period.
func (p Period) Contains(d Date) bool {
	if p.Days <= 0 {
		return false
	}
	return !d.Before(p.Start) && !d.After(p.End())
}

// Dates iterates the days of the period in order.
func (p Period) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for i := 0; i < p.Days; i++ {
			if !yield(p.Start.AddDays(i)) {
				return
			}
		}
	}
}
