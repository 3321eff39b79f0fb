package render

import (
	"encoding/json"
	"io"

	"github.com/lululau/weekcal/internal/calendar"
)

type jsonMonth struct {
	Reference string         `json:"reference"`
	Facts     map[string]any `json:"facts"`
	Highlight int            `json:"highlight_week"`
	Weeks     []jsonWeek     `json:"weeks"`
}

type jsonWeek struct {
	Week      int       `json:"week"`
	ISOYear   int       `json:"iso_year"`
	Start     string    `json:"start"`
	Highlight bool      `json:"highlight"`
	Days      []jsonDay `json:"days"`
}

type jsonDay struct {
	Date    string `json:"date"`
	Day     int    `json:"day"`
	InMonth bool   `json:"in_month"`
}

// WriteJSON writes the month view as an indented JSON document.
func WriteJSON(w io.Writer, view calendar.MonthView) error {
	facts, err := factMap(view.Facts)
	if err != nil {
		return err
	}
	out := jsonMonth{
		Reference: view.Reference.String(),
		Facts:     facts,
		Highlight: view.Highlight,
		Weeks:     make([]jsonWeek, 0, len(view.Weeks)),
	}
	for _, week := range view.Weeks {
		jw := jsonWeek{
			Week:      week.Number,
			ISOYear:   week.ISOYear,
			Start:     week.Start.String(),
			Highlight: week.Highlighted(),
			Days:      make([]jsonDay, 0, len(week.Days)),
		}
		for _, day := range week.Days {
			jw.Days = append(jw.Days, jsonDay{
				Date:    day.Date.String(),
				Day:     day.DayOfMonth,
				InMonth: day.InMonth,
			})
		}
		out.Weeks = append(out.Weeks, jw)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func factMap(f calendar.Facts) (map[string]any, error) {
	m := make(map[string]any, len(calendar.AllFacts()))
	for _, kind := range calendar.AllFacts() {
		if kind == calendar.WeekStartDate {
			m[kind.String()] = f.WeekStart().String()
			continue
		}
		v, err := f.Value(kind)
		if err != nil {
			return nil, err
		}
		m[kind.String()] = v
	}
	return m, nil
}
