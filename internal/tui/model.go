package tui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"cloudeng.io/logging/ctxlog"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lululau/weekcal/internal/calendar"
	"github.com/lululau/weekcal/internal/render"
)

var (
	noColorMode bool // Global flag to disable all color output
)

// SetNoColor sets the global no-color flag
func SetNoColor(disable bool) {
	noColorMode = disable
}

type inputMode int

const (
	inputNone inputMode = iota
	inputYear
	inputMonth
	inputDate
)

// Run starts the interactive Bubble Tea UI.
func Run(ctx context.Context, svc *calendar.Service, req calendar.Request) error {
	if svc == nil {
		svc = calendar.NewService()
	}
	m := newModel(svc, req.Normalize(), ctxlog.Logger(ctx))
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := prog.Run()
	return err
}

type model struct {
	svc       *calendar.Service
	logger    *slog.Logger
	request   calendar.Request
	width     int
	inputMode inputMode
	input     textinput.Model
	statusMsg string
}

func newModel(svc *calendar.Service, req calendar.Request, logger *slog.Logger) model {
	ti := textinput.New()
	ti.Placeholder = "number"
	ti.CharLimit = 16
	ti.Prompt = "> "
	return model{
		svc:     svc,
		logger:  logger,
		request: req,
		input:   ti,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if m.inputMode != inputNone {
			return m.handleInputKey(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "k", "[":
			m.request = m.request.PreviousMonth()
			m.statusMsg = ""
		case "j", "]":
			m.request = m.request.NextMonth()
			m.statusMsg = ""
		case "K", "{":
			m.request = m.request.PreviousYear()
			m.statusMsg = ""
		case "J", "}":
			m.request = m.request.NextYear()
			m.statusMsg = ""
		case "y":
			m.activateInput(inputYear, "")
		case "m":
			m.activateInput(inputMonth, "")
		case "d":
			m.activateInput(inputDate, "YYYY-MM-DD")
		case ".":
			m.request = calendar.RequestFor(m.svc.Today())
			m.statusMsg = ""
		}
		m.logger.Debug("navigate", "key", msg.String(), "year", m.request.Year, "month", m.request.Month, "day", m.request.Day)
	}
	return m, nil
}

func (m model) View() string {
	if m.inputMode != inputNone {
		return m.inputView()
	}

	body, err := m.renderCalendar()
	status := m.statusMsg
	if err != nil {
		status = err.Error()
	}

	sb := strings.Builder{}
	sb.WriteString(body)
	sb.WriteString("\n\n")
	sb.WriteString(render.ColorLegend())
	sb.WriteString("\n")
	sb.WriteString(render.HelpLine())
	if status != "" {
		sb.WriteString("\n")
		if noColorMode {
			sb.WriteString(status)
		} else {
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316")).Render(status))
		}
	}
	return sb.String()
}

func (m model) renderCalendar() (string, error) {
	view, err := m.svc.Month(m.request)
	if err != nil {
		return "", err
	}
	block, err := render.BuildBlock(view)
	if err != nil {
		return "", err
	}
	if m.width > 0 && block.Width > m.width {
		if block, err = render.BuildCompactBlock(view); err != nil {
			return "", err
		}
	}
	return block.String(), nil
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputMode = inputNone
		m.statusMsg = ""
		return m, nil
	case tea.KeyEnter:
		m.applyInput()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) activateInput(mode inputMode, placeholder string) {
	m.inputMode = mode
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	m.input.CursorEnd()
	m.input.Focus()
	m.statusMsg = ""
}

func (m *model) applyInput() {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		m.statusMsg = "please enter a value"
		return
	}
	switch m.inputMode {
	case inputYear:
		fields := strings.Fields(value)
		if len(fields) == 0 || len(fields) > 2 {
			m.statusMsg = "expected: year or year month"
			return
		}
		year, err := strconv.Atoi(fields[0])
		if err != nil {
			m.statusMsg = "invalid year"
			return
		}
		month := m.request.Month
		if len(fields) == 2 {
			month, err = strconv.Atoi(fields[1])
			if err != nil || month < 1 || month > 12 {
				m.statusMsg = "month must be between 1 and 12"
				return
			}
		}
		m.request.Year = year
		m.request.Month = month
	case inputMonth:
		num, err := strconv.Atoi(value)
		if err != nil {
			m.statusMsg = "invalid month"
			return
		}
		if num < 1 || num > 12 {
			m.statusMsg = "month must be between 1 and 12"
			return
		}
		m.request.Month = num
	case inputDate:
		d, err := calendar.ParseDate(value)
		if err != nil {
			m.statusMsg = "invalid date, expected YYYY-MM-DD"
			return
		}
		m.request = calendar.RequestFor(d)
	}
	m.request = m.request.Normalize()
	m.statusMsg = ""
	m.inputMode = inputNone
	m.input.Blur()
}

func (m model) inputView() string {
	var label string
	switch m.inputMode {
	case inputYear:
		label = "Enter a year (Enter to confirm / Esc to cancel)"
	case inputMonth:
		label = "Enter a month 1-12 (Enter to confirm / Esc to cancel)"
	case inputDate:
		label = "Enter a date YYYY-MM-DD (Enter to confirm / Esc to cancel)"
	default:
		return ""
	}
	if noColorMode {
		return label + "\n\n" + m.input.View()
	}
	return lipgloss.NewStyle().
		Bold(true).
		Render(label) + "\n\n" + m.input.View()
}
