package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/lululau/weekcal/internal/calendar"
	"github.com/lululau/weekcal/internal/textwidth"
)

const cellPadding = 1

var (
	noColorMode bool // Global flag to disable all color output
)

// SetNoColor sets the global no-color flag
func SetNoColor(disable bool) {
	noColorMode = disable
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FEC260"))
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A5B4FC"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	footerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	tableWrapperStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#475569")).
				Padding(0, 1)
)

// Raw escape codes are applied after the table is laid out so that
// bubbles/table measures plain text.
const (
	highlightStart = "\x1b[38;2;254;194;96m" // Amber for the highlighted week
	todayStart     = "\x1b[38;2;52;211;153m" // Green for today
	colorEnd       = "\x1b[0m"
)

var columnTitles = []string{"Wk", "Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// MonthBlock packages rendered lines with their visual width/height. Every
// line is padded to Width.
type MonthBlock struct {
	Lines  []string
	Width  int
	Height int
}

// String joins the block's lines.
func (b MonthBlock) String() string {
	return strings.Join(b.Lines, "\n")
}

// BuildBlock renders a month view as a bordered table with one row per ISO
// week.
func BuildBlock(view calendar.MonthView) (MonthBlock, error) {
	return buildMonthBlock(view, true)
}

// BuildCompactBlock renders a month view without the surrounding border.
func BuildCompactBlock(view calendar.MonthView) (MonthBlock, error) {
	return buildMonthBlock(view, false)
}

func buildMonthBlock(view calendar.MonthView, bordered bool) (MonthBlock, error) {
	if len(view.Weeks) == 0 {
		return MonthBlock{}, fmt.Errorf("%s: no weeks to render", view.Title)
	}
	colWidth := determineColumnWidth(view) + cellPadding*2
	columns := make([]table.Column, len(columnTitles))
	for i, title := range columnTitles {
		columns[i] = table.Column{
			Title: title,
			Width: colWidth,
		}
	}

	rows := make([]table.Row, 0, len(view.Weeks))
	for _, week := range view.Weeks {
		row := make(table.Row, 0, len(columnTitles))
		row = append(row, weekLabel(week))
		for _, day := range week.Days {
			row = append(row, renderDayCell(day))
		}
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)
	t.SetStyles(tableStyles())
	t.Blur()

	tableView := strings.TrimRight(t.View(), "\n")
	if bordered && !noColorMode {
		tableView = tableWrapperStyle.Render(tableView)
	}

	// Apply colors after rendering to avoid width calculation issues
	tableView = applyColors(tableView, view)

	title := view.Title
	footer := summary(view)
	if !noColorMode {
		title = titleStyle.Render(title)
		footer = footerStyle.Render(footer)
	}
	lines := append([]string{title, ""}, strings.Split(tableView, "\n")...)
	lines = append(lines, footer)

	width := 0
	for _, line := range lines {
		if w := textwidth.StringWidth(line); w > width {
			width = w
		}
	}
	for i, line := range lines {
		lines[i] = textwidth.PadRight(line, width)
	}

	return MonthBlock{
		Lines:  lines,
		Width:  width,
		Height: len(lines),
	}, nil
}

func weekLabel(week calendar.Week) string {
	return fmt.Sprintf("W%02d", week.Number)
}

func determineColumnWidth(view calendar.MonthView) int {
	width := 2
	for _, week := range view.Weeks {
		width = max(width, textwidth.StringWidth(weekLabel(week)))
	}
	return width
}

func renderDayCell(day calendar.Day) string {
	if !day.InMonth {
		return ""
	}
	return textwidth.PadLeft(strconv.Itoa(day.DayOfMonth), 2)
}

func summary(view calendar.MonthView) string {
	f := view.Facts
	return fmt.Sprintf("ISO weeks %d-%d (%d) · %d days, previous month %d",
		f.FirstWeek(), f.LastWeek(), len(view.Weeks), f.DaysInMonth(), f.DaysInPreviousMonth())
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	if noColorMode {
		styles.Header = lipgloss.NewStyle().Padding(0, 1)
	} else {
		styles.Header = headerStyle.Copy().Padding(0, 1)
	}
	styles.Selected = lipgloss.NewStyle()
	styles.Cell = lipgloss.NewStyle().Padding(0, cellPadding)
	return styles
}

// cellRe matches a week label or a one or two digit day number standing in
// its own table cell.
var cellRe = regexp.MustCompile(`(\s|│)(W\d{2}|\d{1,2})(\s|│|$)`)

// applyColors colours the highlighted week's row and today's date. Rows
// are found by their unique week label, so equal day numbers in other
// rows are never touched.
func applyColors(output string, view calendar.MonthView) string {
	if noColorMode {
		return output
	}
	lines := strings.Split(output, "\n")
	for _, week := range view.Weeks {
		label := weekLabel(week)
		for i, line := range lines {
			if !strings.Contains(line, label) {
				continue
			}
			if today, ok := todayIn(week, view.Today); ok {
				line = colorToken(line, fmt.Sprintf("%d", today), todayStart)
			}
			if week.Highlighted() {
				line = colorAllTokens(line, highlightStart)
			}
			lines[i] = line
			break
		}
	}
	return strings.Join(lines, "\n")
}

func todayIn(week calendar.Week, today calendar.Date) (int, bool) {
	if !week.Period().Contains(today) {
		return 0, false
	}
	for _, day := range week.Days {
		if day.InMonth && day.Date.Equal(today) {
			return day.DayOfMonth, true
		}
	}
	return 0, false
}

func colorToken(line, token, colorStart string) string {
	pattern := fmt.Sprintf(`(\s|│)%s(\s|│|$)`, regexp.QuoteMeta(token))
	re := regexp.MustCompile(pattern)
	replacement := fmt.Sprintf("${1}%s%s%s${2}", colorStart, token, colorEnd)
	return re.ReplaceAllString(line, replacement)
}

func colorAllTokens(line, colorStart string) string {
	return cellRe.ReplaceAllString(line, fmt.Sprintf("${1}%s${2}%s${3}", colorStart, colorEnd))
}

// HelpLine describes the interactive key bindings.
func HelpLine() string {
	helpText := "j/] next month  k/[ previous month  J/} next year  K/{ previous year  . today  y enter year  m enter month  d enter date  q quit"
	if noColorMode {
		return helpText
	}
	return helpStyle.Render(helpText)
}

// ColorLegend explains the colours used for the highlighted week and today.
func ColorLegend() string {
	legend := "amber = highlighted ISO week  green = today"
	if noColorMode {
		return legend
	}
	return footerStyle.Render(legend)
}
