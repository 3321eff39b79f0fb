package calendar

import (
	"fmt"
	"time"

	"cloudeng.io/errors"
)

// Request captures the reference date a caller wants laid out. Day may be
// zero, in which case the first of the month is used.
type Request struct {
	Year  int
	Month int
	Day   int
}

// RequestFor returns the Request for d.
func RequestFor(d Date) Request {
	return Request{Year: d.Year(), Month: int(d.Month()), Day: d.Day()}
}

// Normalize keeps the month within 1..12 by rolling the year value.
func (r Request) Normalize() Request {
	for r.Month > 12 {
		r.Month -= 12
		r.Year++
	}
	for r.Month < 1 {
		r.Month += 12
		r.Year--
	}
	return r
}

// NextMonth moves the request to the following month.
func (r Request) NextMonth() Request {
	r.Month++
	return r.Normalize()
}

// PreviousMonth moves the request to the preceding month.
func (r Request) PreviousMonth() Request {
	r.Month--
	return r.Normalize()
}

// NextYear moves to the following year.
func (r Request) NextYear() Request {
	r.Year++
	return r
}

// PreviousYear moves to the preceding year.
func (r Request) PreviousYear() Request {
	r.Year--
	return r
}

// Date returns the requested date. A day past the end of the month, as
// left behind by month navigation, is clamped to the month's last day.
func (r Request) Date() (Date, error) {
	if r.Month < 1 || r.Month > 12 {
		return Date{}, errors.Caller(fmt.Errorf("month %d: %w", r.Month, ErrInvalidDateInput))
	}
	day := r.Day
	if day == 0 {
		day = 1
	}
	if last := dateOf(r.Year, time.Month(r.Month), 1).DaysInMonth(); day > last {
		day = last
	}
	return NewDate(r.Year, r.Month, day)
}

// MonthView is a month laid out into ISO weeks, ready for rendering.
type MonthView struct {
	Year      int
	Month     time.Month
	Title     string
	Reference Date
	Today     Date
	Highlight int
	Facts     Facts
	Weeks     []Week
}

// Service builds MonthViews with a fixed set of grid options.
type Service struct {
	now     func() time.Time
	options []Option
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithNow overrides the clock, which is useful for tests.
func WithNow(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// WithGridOptions sets the options applied to every Grid the service builds.
func WithGridOptions(opts ...Option) ServiceOption {
	return func(s *Service) {
		s.options = append(s.options, opts...)
	}
}

// NewService constructs a Service.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the current date according to the service's clock.
func (s *Service) Today() Date {
	return DateOf(s.now())
}

// Month builds the MonthView for the month containing the requested date.
func (s *Service) Month(req Request) (MonthView, error) {
	ref, err := req.Normalize().Date()
	if err != nil {
		return MonthView{}, err
	}
	grid := NewGrid(ref, s.options...)
	weeks, err := grid.Weeks()
	if err != nil {
		return MonthView{}, err
	}
	return MonthView{
		Year:      ref.Year(),
		Month:     ref.Month(),
		Title:     fmt.Sprintf("%s %d", ref.Month(), ref.Year()),
		Reference: ref,
		Today:     s.Today(),
		Highlight: grid.HighlightedWeek(),
		Facts:     grid.Facts(),
		Weeks:     weeks,
	}, nil
}
