package calendar

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/errors"
)

var (
	// ErrInvalidDateInput indicates a date could not be built from its components.
	ErrInvalidDateInput = errors.New("invalid date input")
	// ErrInvalidDateKind indicates an unknown or non-numeric Fact was requested.
	ErrInvalidDateKind = errors.New("invalid date kind")
)

// Date is an immutable Gregorian calendar date. Time of day and location
// are not represented.
type Date struct {
	t time.Time
}

// NewDate validates the components and returns the corresponding Date.
func NewDate(year, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, errors.Caller(fmt.Errorf("month %d: %w", month, ErrInvalidDateInput))
	}
	if dim := datetime.DaysInMonth(year, datetime.Month(month)); day < 1 || day > dim {
		return Date{}, errors.Caller(fmt.Errorf("day %d of %04d-%02d (1..%d): %w", day, year, month, dim, ErrInvalidDateInput))
	}
	return dateOf(year, time.Month(month), day), nil
}

// DateOf returns the calendar date of t as seen in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return dateOf(y, m, d)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(val string) (Date, error) {
	t, err := time.Parse(time.DateOnly, val)
	if err != nil {
		return Date{}, errors.Caller(fmt.Errorf("%q: %w", val, ErrInvalidDateInput))
	}
	return DateOf(t), nil
}

func dateOf(y int, m time.Month, d int) Date {
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ISOWeekStart returns the Monday of the given ISO week of isoYear.
func ISOWeekStart(isoYear, week int) (Date, error) {
	if n := WeeksInISOYear(isoYear); week < 1 || week > n {
		return Date{}, errors.Caller(fmt.Errorf("week %d of ISO year %d (1..%d): %w", week, isoYear, n, ErrInvalidDateInput))
	}
	// 4 January is always in week 1.
	jan4 := dateOf(isoYear, time.January, 4)
	return jan4.AddDays(1 - jan4.ISOWeekday() + 7*(week-1)), nil
}

// WeeksInISOYear returns 52 or 53, the number of ISO weeks in isoYear.
func WeeksInISOYear(isoYear int) int {
	// 28 December is always in the last week of its ISO year.
	_, w := time.Date(isoYear, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

func (d Date) Year() int { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int { return d.t.Day() }

// ISOWeekday returns 1 for Monday through 7 for Sunday.
func (d Date) ISOWeekday() int {
	if wd := d.t.Weekday(); wd != time.Sunday {
		return int(wd)
	}
	return 7
}

// ISOWeek returns the ISO year and week number that d falls in.
func (d Date) ISOWeek() (year, week int) {
	return d.t.ISOWeek()
}

// DaysInMonth returns the length of d's month.
func (d Date) DaysInMonth() int {
	return datetime.DaysInMonth(d.Year(), datetime.Month(d.Month()))
}

// FirstOfMonth returns day 1 of d's month.
func (d Date) FirstOfMonth() Date {
	return dateOf(d.Year(), d.Month(), 1)
}

// LastOfMonth returns the last day of d's month.
func (d Date) LastOfMonth() Date {
	return dateOf(d.Year(), d.Month(), d.DaysInMonth())
}

// AddDays returns a new Date n days after d; n may be negative.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// AddMonths returns day 1 of the month n months after d's month.
func (d Date) AddMonths(n int) Date {
	return Date{t: d.FirstOfMonth().t.AddDate(0, n, 0)}
}

func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool { return d.t.After(o.t) }

func (d Date) String() string {
	return d.t.Format(time.DateOnly)
}
