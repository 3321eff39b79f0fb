package calendar

// Option configures a Grid or Facts.
type Option func(*options)

type options struct {
	legacy           bool
	highlightCurrent bool
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLegacyWeekCapacity approximates the number of weeks in a year as 53
// for years divisible by 4 and 52 otherwise, and wraps week numbers at 53.
// This reproduces the layout of earlier releases. The approximation
// disagrees with ISO 8601 in years such as 2024 (52 weeks) and 2026
// (53 weeks).
func WithLegacyWeekCapacity() Option {
	return func(o *options) {
		o.legacy = true
	}
}

// WithHighlightCurrent highlights the reference date's own ISO week rather
// than the week before it.
func WithHighlightCurrent() Option {
	return func(o *options) {
		o.highlightCurrent = true
	}
}

// Day is a single cell of the grid.
type Day struct {
	Date       Date
	DayOfMonth int
	InMonth    bool
	Highlight  bool
}

// Week is one ISO week row of the grid, Monday first.
type Week struct {
	Number  int
	ISOYear int
	Start   Date
	Days    []Day
}

// Highlighted reports whether this is the highlighted week.
func (w Week) Highlighted() bool {
	return len(w.Days) > 0 && w.Days[0].Highlight
}

// Highlights maps each day of month in the week to the week's highlight
// flag. Seven consecutive days never repeat a day of month, so the map
// always has an entry per day.
func (w Week) Highlights() map[int]bool {
	m := make(map[int]bool, len(w.Days))
	for _, d := range w.Days {
		m[d.DayOfMonth] = d.Highlight
	}
	return m
}

// Period returns the days covered by the week.
func (w Week) Period() Period {
	return WeekPeriod(w.Start)
}

// Grid lays out the month containing a reference date as ISO weeks.
type Grid struct {
	facts            Facts
	highlightCurrent bool
}

// NewGrid returns the Grid for the month containing d.
func NewGrid(d Date, opts ...Option) *Grid {
	o := newOptions(opts)
	return &Grid{
		facts:            Facts{date: d, legacy: o.legacy},
		highlightCurrent: o.highlightCurrent,
	}
}

// Facts returns the facts the grid is computed from.
func (g *Grid) Facts() Facts { return g.facts }

// Date returns the reference date.
func (g *Grid) Date() Date { return g.facts.date }

func (g *Grid) Day() int { return g.facts.Day() }
func (g *Grid) Weekday() int { return g.facts.Weekday() }
func (g *Grid) FirstWeekday() int { return g.facts.FirstWeekday() }
func (g *Grid) FirstWeek() int { return g.facts.FirstWeek() }
func (g *Grid) DaysInThisMonth() int { return g.facts.DaysInMonth() }
func (g *Grid) DaysInPreviousMonth() int { return g.facts.DaysInPreviousMonth() }

// HighlightedWeek returns the week number that Weeks marks as highlighted.
func (g *Grid) HighlightedWeek() int {
	if g.highlightCurrent {
		return g.facts.CurrentWeek()
	}
	return g.facts.previousWeek()
}

// Weeks returns the month's ISO weeks in chronological order, starting with
// the week containing the first of the month. Each week has seven days; days
// of the neighbouring months are included with InMonth unset.
func (g *Grid) Weeks() ([]Week, error) {
	first := g.facts.date.FirstOfMonth()
	number := g.facts.FirstWeek()
	isoYear, _ := first.ISOWeek()
	monday, err := ISOWeekStart(isoYear, number)
	if err != nil {
		return nil, err
	}
	total := g.facts.WeekCount()
	wrap := g.facts.lastWeekNumber()
	highlighted := g.HighlightedWeek()

	weeks := make([]Week, 0, total)
	for i := 0; i < total; i++ {
		start := monday.AddDays(7 * i)
		weeks = append(weeks, buildWeek(number, start, first, number == highlighted))
		if number++; number > wrap {
			number = 1
		}
	}
	return weeks, nil
}

func buildWeek(number int, start, first Date, highlight bool) Week {
	isoYear, _ := start.ISOWeek()
	week := Week{
		Number:  number,
		ISOYear: isoYear,
		Start:   start,
		Days:    make([]Day, 0, 7),
	}
	for d := range week.Period().Dates() {
		week.Days = append(week.Days, Day{
			Date:       d,
			DayOfMonth: d.Day(),
			InMonth:    d.Year() == first.Year() && d.Month() == first.Month(),
			Highlight:  highlight,
		})
	}
	return week
}
