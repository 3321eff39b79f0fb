package calendar

import (
	"testing"
)

func weekNumbers(weeks []Week) []int {
	out := make([]int, len(weeks))
	for i, w := range weeks {
		out[i] = w.Number
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestGridGettersMidMarch2024(t *testing.T) {
	g := NewGrid(mustDate(t, 2024, 3, 15))
	got := []int{g.Day(), g.Weekday(), g.FirstWeekday(), g.FirstWeek(), g.DaysInThisMonth(), g.DaysInPreviousMonth()}
	want := []int{15, 5, 5, 9, 31, 29}
	if !equalInts(got, want) {
		t.Fatalf("getters=%v want %v", got, want)
	}

	weeks, err := g.Weeks()
	if err != nil {
		t.Fatalf("Weeks: %v", err)
	}
	if nums := weekNumbers(weeks); !equalInts(nums, []int{9, 10, 11, 12, 13}) {
		t.Fatalf("week numbers=%v", nums)
	}
	if got := weeks[0].Start.String(); got != "2024-02-26" {
		t.Fatalf("first week starts %s want 2024-02-26", got)
	}
	for _, w := range weeks {
		if want := w.Number == 10; w.Highlighted() != want {
			t.Fatalf("week %d highlighted=%v want %v", w.Number, w.Highlighted(), want)
		}
	}
	hl := weeks[1].Highlights()
	for day := 4; day <= 10; day++ {
		if !hl[day] {
			t.Fatalf("day %d of week 10 should be highlighted: %v", day, hl)
		}
	}
	first := weeks[0].Days
	if first[0].InMonth || first[3].InMonth || !first[4].InMonth {
		t.Fatalf("unexpected in-month flags for week 9: %+v", first)
	}
}

func TestGridNewYearsDay2024(t *testing.T) {
	g := NewGrid(mustDate(t, 2024, 1, 1))
	weeks, err := g.Weeks()
	if err != nil {
		t.Fatalf("Weeks: %v", err)
	}
	if nums := weekNumbers(weeks); !equalInts(nums, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("week numbers=%v", nums)
	}
	if got := weeks[0].Start.String(); got != "2024-01-01" {
		t.Fatalf("first week starts %s want 2024-01-01", got)
	}
	// The preceding week is 2023-W52, which is not part of January.
	for _, w := range weeks {
		if w.Highlighted() {
			t.Fatalf("week %d unexpectedly highlighted", w.Number)
		}
	}
	if g.HighlightedWeek() != 52 {
		t.Fatalf("HighlightedWeek=%d want 52", g.HighlightedWeek())
	}
}

func TestGridStartsInPreviousYear(t *testing.T) {
	weeks, err := NewGrid(mustDate(t, 2023, 1, 15)).Weeks()
	if err != nil {
		t.Fatalf("Weeks: %v", err)
	}
	if nums := weekNumbers(weeks); !equalInts(nums, []int{52, 1, 2, 3, 4, 5}) {
		t.Fatalf("week numbers=%v", nums)
	}
	first := weeks[0]
	if first.Start.String() != "2022-12-26" || first.ISOYear != 2022 {
		t.Fatalf("first week %v of %d, want 2022-12-26 of 2022", first.Start, first.ISOYear)
	}
	var highlighted []int
	for _, w := range weeks {
		if w.Highlighted() {
			highlighted = append(highlighted, w.Number)
		}
	}
	if !equalInts(highlighted, []int{1}) {
		t.Fatalf("highlighted=%v want [1]", highlighted)
	}
}

func TestGridWrapsAfterWeek53(t *testing.T) {
	weeks, err := NewGrid(mustDate(t, 2021, 1, 5)).Weeks()
	if err != nil {
		t.Fatalf("Weeks: %v", err)
	}
	if nums := weekNumbers(weeks); !equalInts(nums, []int{53, 1, 2, 3, 4}) {
		t.Fatalf("week numbers=%v", nums)
	}
	if !weeks[0].Highlighted() {
		t.Fatalf("week 53 of 2020 precedes 2021-W01 and should be highlighted")
	}
}

func TestGridDecemberIntoNextYear(t *testing.T) {
	ref := mustDate(t, 2024, 12, 10)
	weeks, err := NewGrid(ref).Weeks()
	if err != nil {
		t.Fatalf("Weeks: %v", err)
	}
	if nums := weekNumbers(weeks); !equalInts(nums, []int{48, 49, 50, 51, 52, 1}) {
		t.Fatalf("week numbers=%v", nums)
	}
	if last := weeks[len(weeks)-1]; last.ISOYear != 2025 || last.Start.String() != "2024-12-30" {
		t.Fatalf("last week %v of %d", last.Start, last.ISOYear)
	}

	legacy, err := NewGrid(ref, WithLegacyWeekCapacity()).Weeks()
	if err != nil {
		t.Fatalf("legacy Weeks: %v", err)
	}
	if nums := weekNumbers(legacy); !equalInts(nums, []int{48, 49, 50, 51, 52, 53, 1}) {
		t.Fatalf("legacy week numbers=%v", nums)
	}
	if got := legacy[6].Start.String(); got != "2025-01-06" {
		t.Fatalf("legacy seventh week starts %s want 2025-01-06", got)
	}
}

func TestGridHighlightCurrent(t *testing.T) {
	weeks, err := NewGrid(mustDate(t, 2024, 3, 15), WithHighlightCurrent()).Weeks()
	if err != nil {
		t.Fatalf("Weeks: %v", err)
	}
	for _, w := range weeks {
		if want := w.Number == 11; w.Highlighted() != want {
			t.Fatalf("week %d highlighted=%v want %v", w.Number, w.Highlighted(), want)
		}
	}
}

func TestGridInvariants(t *testing.T) {
	for year := 2000; year <= 2030; year++ {
		for month := 1; month <= 12; month++ {
			for _, day := range []int{1, 15, 28} {
				ref := mustDate(t, year, month, day)
				g := NewGrid(ref)
				weeks, err := g.Weeks()
				if err != nil {
					t.Fatalf("%v: %v", ref, err)
				}
				if len(weeks) != g.Facts().WeekCount() {
					t.Fatalf("%v: %d weeks want %d", ref, len(weeks), g.Facts().WeekCount())
				}
				if !weeks[0].Period().Contains(ref.FirstOfMonth()) {
					t.Fatalf("%v: first week does not contain the first of the month", ref)
				}
				if !weeks[len(weeks)-1].Period().Contains(ref.LastOfMonth()) {
					t.Fatalf("%v: last week does not contain the last of the month", ref)
				}
				highlighted := 0
				for i, w := range weeks {
					if len(w.Days) != 7 || len(w.Highlights()) != 7 {
						t.Fatalf("%v: week %d has %d days, %d keys", ref, w.Number, len(w.Days), len(w.Highlights()))
					}
					if _, n := w.Start.ISOWeek(); n != w.Number {
						t.Fatalf("%v: week keyed %d starts in ISO week %d", ref, w.Number, n)
					}
					if w.Start.ISOWeekday() != 1 {
						t.Fatalf("%v: week %d starts on weekday %d", ref, w.Number, w.Start.ISOWeekday())
					}
					if i > 0 && !weeks[i-1].Start.AddDays(7).Equal(w.Start) {
						t.Fatalf("%v: weeks %d and %d are not consecutive", ref, weeks[i-1].Number, w.Number)
					}
					if w.Highlighted() {
						highlighted++
						if w.Number != g.HighlightedWeek() {
							t.Fatalf("%v: week %d highlighted, want %d", ref, w.Number, g.HighlightedWeek())
						}
					}
				}
				if highlighted > 1 {
					t.Fatalf("%v: %d weeks highlighted", ref, highlighted)
				}
			}
		}
	}
}

func TestGridWeeksIdempotent(t *testing.T) {
	g := NewGrid(mustDate(t, 2024, 1, 1))
	a, errA := g.Weeks()
	b, errB := g.Weeks()
	if errA != nil || errB != nil {
		t.Fatalf("Weeks: %v %v", errA, errB)
	}
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Number != b[i].Number || !a[i].Start.Equal(b[i].Start) || a[i].Highlighted() != b[i].Highlighted() {
			t.Fatalf("week %d differs between calls", i)
		}
	}
	if g.Day() != 1 || g.Day() != g.Day() {
		t.Fatalf("Day changed between calls")
	}
}

func TestGridLegacyWeekCapacity(t *testing.T) {
	tests := []struct {
		ref         Date
		numbers     []int
		starts      []string
		highlighted int
	}{
		{
			// 2021 is not divisible by 4, yet January opens with week 53
			// and the week before week 1 wraps to 53.
			ref:         mustDate(t, 2021, 1, 5),
			numbers:     []int{53, 1, 2, 3},
			starts:      []string{"2020-12-28", "2021-01-04", "2021-01-11", "2021-01-18"},
			highlighted: 0,
		},
		{
			ref:         mustDate(t, 2022, 1, 10),
			numbers:     []int{52, 53, 1, 2, 3, 4},
			starts:      []string{"2021-12-27", "2022-01-03", "2022-01-10", "2022-01-17", "2022-01-24", "2022-01-31"},
			highlighted: 2,
		},
		{
			ref:         mustDate(t, 2024, 12, 10),
			numbers:     []int{48, 49, 50, 51, 52, 53, 1},
			starts:      []string{"2024-11-25", "2024-12-02", "2024-12-09", "2024-12-16", "2024-12-23", "2024-12-30", "2025-01-06"},
			highlighted: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.ref.String(), func(t *testing.T) {
			weeks, err := NewGrid(tt.ref, WithLegacyWeekCapacity()).Weeks()
			if err != nil {
				t.Fatalf("Weeks: %v", err)
			}
			if nums := weekNumbers(weeks); !equalInts(nums, tt.numbers) {
				t.Fatalf("week numbers=%v want %v", nums, tt.numbers)
			}
			for i, w := range weeks {
				if got := w.Start.String(); got != tt.starts[i] {
					t.Fatalf("week %d starts %s want %s", w.Number, got, tt.starts[i])
				}
				if want := i == tt.highlighted; w.Highlighted() != want {
					t.Fatalf("week %d (index %d) highlighted=%v want %v", w.Number, i, w.Highlighted(), want)
				}
			}
		})
	}
}

func TestLegacyPreviousWeekWrapsTo53(t *testing.T) {
	for _, ref := range []Date{mustDate(t, 2021, 1, 5), mustDate(t, 2023, 1, 2), mustDate(t, 2024, 1, 3)} {
		g := NewGrid(ref, WithLegacyWeekCapacity())
		if got := g.HighlightedWeek(); got != 53 {
			t.Fatalf("%v: legacy HighlightedWeek=%d want 53", ref, got)
		}
	}
	// Without the legacy option the previous ISO year's real length is used.
	if got := NewGrid(mustDate(t, 2024, 1, 3)).HighlightedWeek(); got != 52 {
		t.Fatalf("HighlightedWeek=%d want 52", got)
	}
}
