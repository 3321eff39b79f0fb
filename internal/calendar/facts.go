package calendar

import (
	"fmt"

	"cloudeng.io/errors"
)

// Fact identifies a single value derived from a reference date.
type Fact int

const (
	DayOfMonth Fact = iota + 1
	ISOWeekday
	FirstWeekdayOfMonth
	FirstISOWeekOfMonth
	CurrentISOWeek
	CurrentYear
	WeekStartDate
	LastISOWeekOfMonth
	DaysInMonth
	DaysInPreviousMonth
	MonthWeekCount
)

var factNames = [...]string{
	DayOfMonth:          "day",
	ISOWeekday:          "weekday",
	FirstWeekdayOfMonth: "first-weekday",
	FirstISOWeekOfMonth: "first-week",
	CurrentISOWeek:      "current-week",
	CurrentYear:         "year",
	WeekStartDate:       "week-start",
	LastISOWeekOfMonth:  "last-week",
	DaysInMonth:         "days-in-month",
	DaysInPreviousMonth: "days-in-previous-month",
	MonthWeekCount:      "week-count",
}

// WeekStartDate is a date, so it has no entry here.
var factValues = [...]func(Facts) int{
	DayOfMonth:          Facts.Day,
	ISOWeekday:          Facts.Weekday,
	FirstWeekdayOfMonth: Facts.FirstWeekday,
	FirstISOWeekOfMonth: Facts.FirstWeek,
	CurrentISOWeek:      Facts.CurrentWeek,
	CurrentYear:         Facts.Year,
	LastISOWeekOfMonth:  Facts.LastWeek,
	DaysInMonth:         Facts.DaysInMonth,
	DaysInPreviousMonth: Facts.DaysInPreviousMonth,
	MonthWeekCount:      Facts.WeekCount,
}

// AllFacts lists every Fact in declaration order.
func AllFacts() []Fact {
	all := make([]Fact, 0, len(factNames)-1)
	for f := DayOfMonth; f <= MonthWeekCount; f++ {
		all = append(all, f)
	}
	return all
}

func (f Fact) valid() bool {
	return f >= DayOfMonth && f <= MonthWeekCount
}

func (f Fact) String() string {
	if !f.valid() {
		return fmt.Sprintf("Fact(%d)", int(f))
	}
	return factNames[f]
}

// ParseFact returns the Fact with the given name, as produced by String.
func ParseFact(name string) (Fact, error) {
	for _, f := range AllFacts() {
		if factNames[f] == name {
			return f, nil
		}
	}
	return 0, errors.Caller(fmt.Errorf("%q: %w", name, ErrInvalidDateKind))
}

// Facts derives month and ISO week values from a reference date. Every
// accessor recomputes from the date, so a Facts value may be freely copied
// and shared.
type Facts struct {
	date   Date
	legacy bool
}

// NewFacts returns the Facts for d. Of the grid options only
// WithLegacyWeekCapacity has an effect here.
func NewFacts(d Date, opts ...Option) Facts {
	o := newOptions(opts)
	return Facts{date: d, legacy: o.legacy}
}

// Date returns the reference date.
func (f Facts) Date() Date { return f.date }

// Value returns the numeric value of the requested fact. Unknown facts and
// WeekStartDate fail with ErrInvalidDateKind.
func (f Facts) Value(kind Fact) (int, error) {
	if !kind.valid() || factValues[kind] == nil {
		return 0, errors.Caller(fmt.Errorf("%v: %w", kind, ErrInvalidDateKind))
	}
	return factValues[kind](f), nil
}

// Day returns the day of the month, 1..31.
func (f Facts) Day() int { return f.date.Day() }

// Weekday returns the ISO weekday, Monday=1..Sunday=7.
func (f Facts) Weekday() int { return f.date.ISOWeekday() }

// FirstWeekday returns the ISO weekday of the first of the month.
func (f Facts) FirstWeekday() int { return f.date.FirstOfMonth().ISOWeekday() }

// FirstWeek returns the ISO week containing the first of the month.
func (f Facts) FirstWeek() int {
	_, w := f.date.FirstOfMonth().ISOWeek()
	return w
}

// CurrentWeek returns the ISO week of the reference date.
func (f Facts) CurrentWeek() int {
	_, w := f.date.ISOWeek()
	return w
}

// Year returns the calendar year of the reference date.
func (f Facts) Year() int { return f.date.Year() }

// WeekStart returns the Monday of the ISO week containing the first of the
// month. It falls in the previous month unless the month starts on a Monday.
func (f Facts) WeekStart() Date {
	first := f.date.FirstOfMonth()
	return first.AddDays(1 - first.ISOWeekday())
}

// LastWeek returns the ISO week containing the last day of the month.
func (f Facts) LastWeek() int {
	_, w := f.date.LastOfMonth().ISOWeek()
	return w
}

func (f Facts) DaysInMonth() int { return f.date.DaysInMonth() }

// DaysInPreviousMonth returns the length of the month before the reference
// month; for January that is December of the previous year.
func (f Facts) DaysInPreviousMonth() int { return f.date.AddMonths(-1).DaysInMonth() }

// WeekCount returns the number of ISO weeks the month spans.
func (f Facts) WeekCount() int {
	first, last := f.FirstWeek(), f.LastWeek()
	if first > last {
		return (f.WeekCapacity() - first) + last + 1
	}
	return (last - first) + 1
}

// WeekCapacity returns the number of weeks in the ISO year that owns the
// month's first week. In legacy mode it is 53 for calendar years divisible
// by 4 and 52 otherwise.
func (f Facts) WeekCapacity() int {
	if f.legacy {
		if f.Year()%4 == 0 {
			return 53
		}
		return 52
	}
	isoYear, _ := f.date.FirstOfMonth().ISOWeek()
	return WeeksInISOYear(isoYear)
}

// lastWeekNumber is where week numbering wraps back to 1 inside the grid.
func (f Facts) lastWeekNumber() int {
	if f.legacy {
		return 53
	}
	return f.WeekCapacity()
}

// previousWeek returns the ISO week preceding the reference date's week.
func (f Facts) previousWeek() int {
	if w := f.CurrentWeek() - 1; w > 0 {
		return w
	}
	if f.legacy {
		return 53
	}
	isoYear, _ := f.date.ISOWeek()
	return WeeksInISOYear(isoYear - 1)
}
