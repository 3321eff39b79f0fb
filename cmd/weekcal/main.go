package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"cloudeng.io/logging/ctxlog"
	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"github.com/lululau/weekcal/internal/calendar"
	"github.com/lululau/weekcal/internal/render"
	"github.com/lululau/weekcal/internal/tui"
)

// CLI defines the command-line interface structure
type CLI struct {
	Globals

	Show  ShowCmd  `cmd:"" default:"withargs" help:"Show the ISO week grid of a month (default)"`
	Facts FactsCmd `cmd:"" help:"Print the values derived from a date"`
}

// Globals are flags shared by every command.
type Globals struct {
	NoColor     bool   `short:"N" env:"WEEKCAL_NO_COLOR" help:"Disable all color output"`
	LogLevel    string `default:"warn" enum:"debug,info,warn,error" env:"WEEKCAL_LOG_LEVEL" help:"Log level (${enum})"`
	LegacyWeeks bool   `name:"legacy-weeks" help:"Treat years divisible by 4 as having 53 ISO weeks, as earlier releases did"`
	Current     bool   `name:"highlight-current" help:"Highlight the reference date's own week instead of the week before it"`
}

func (g *Globals) gridOptions() []calendar.Option {
	var opts []calendar.Option
	if g.LegacyWeeks {
		opts = append(opts, calendar.WithLegacyWeekCapacity())
	}
	if g.Current {
		opts = append(opts, calendar.WithHighlightCurrent())
	}
	return opts
}

func (g *Globals) service() *calendar.Service {
	return calendar.NewService(calendar.WithGridOptions(g.gridOptions()...))
}

// ShowCmd renders a month.
type ShowCmd struct {
	Date  []string `arg:"" optional:"" help:"[month] | [year] | [year month] | [year month day] | [YYYY-MM-DD]"`
	Plain bool     `short:"n" help:"Render once and exit (non-interactive)"`
	JSON  bool     `name:"json" help:"Write the month as JSON and exit"`
}

func (c *ShowCmd) Run(ctx context.Context, g *Globals) error {
	svc := g.service()
	req, err := parseRequest(c.Date, svc.Today())
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	interactive := !c.Plain && !c.JSON && isatty.IsTerminal(os.Stdout.Fd())
	logger.Debug("show", "request", fmt.Sprintf("%+v", req), "interactive", interactive)
	if !interactive {
		return render.RunPlain(ctx, render.PlainOptions{
			Service: svc,
			Request: req,
			JSON:    c.JSON,
		})
	}
	return tui.Run(ctx, svc, req)
}

// FactsCmd prints derived date facts.
type FactsCmd struct {
	Date []string `arg:"" optional:"" help:"Reference date, as for show"`
	Only []string `short:"o" help:"Print only the named facts"`
}

func (c *FactsCmd) Run(ctx context.Context, g *Globals) error {
	svc := g.service()
	req, err := parseRequest(c.Date, svc.Today())
	if err != nil {
		return err
	}
	ref, err := req.Date()
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("facts", "reference", ref.String(), "only", c.Only)
	return writeFacts(os.Stdout, calendar.NewFacts(ref, g.gridOptions()...), c.Only)
}

func writeFacts(w io.Writer, f calendar.Facts, only []string) error {
	kinds := calendar.AllFacts()
	if len(only) > 0 {
		kinds = nil
		for _, name := range only {
			kind, err := calendar.ParseFact(name)
			if err != nil {
				return err
			}
			kinds = append(kinds, kind)
		}
	}
	for _, kind := range kinds {
		if kind == calendar.WeekStartDate {
			if _, err := fmt.Fprintf(w, "%s: %s\n", kind, f.WeekStart()); err != nil {
				return err
			}
			continue
		}
		v, err := f.Value(kind)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s: %d\n", kind, v); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("weekcal"),
		kong.Description("Lay out a month as ISO 8601 weeks."),
		kong.UsageOnError(),
	)

	if cli.NoColor {
		render.SetNoColor(true)
		tui.SetNoColor(true)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	kctx.BindTo(ctxlog.Context(context.Background(), logger), (*context.Context)(nil))

	if err := kctx.Run(&cli.Globals); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// parseRequest interprets the positional date arguments relative to today.
func parseRequest(args []string, today calendar.Date) (calendar.Request, error) {
	req := calendar.RequestFor(today)

	switch len(args) {
	case 0:
		// defaults
	case 1:
		if strings.Contains(args[0], "-") {
			d, err := calendar.ParseDate(args[0])
			if err != nil {
				return calendar.Request{}, err
			}
			return calendar.RequestFor(d), nil
		}
		val, err := parseNumber(args[0], "month/year")
		if err != nil {
			return calendar.Request{}, err
		}
		if val >= 1 && val <= 12 {
			req.Month = val
		} else {
			req.Year = val
		}
		req.Day = 1
	case 2, 3:
		y, err := parseNumber(args[0], "year")
		if err != nil {
			return calendar.Request{}, err
		}
		m, err := parseNumber(args[1], "month")
		if err != nil {
			return calendar.Request{}, err
		}
		if m < 1 || m > 12 {
			return calendar.Request{}, fmt.Errorf("month must be between 1 and 12 (got %d)", m)
		}
		req = calendar.Request{Year: y, Month: m, Day: 1}
		if len(args) == 3 {
			d, err := parseNumber(args[2], "day")
			if err != nil {
				return calendar.Request{}, err
			}
			if _, err := calendar.NewDate(y, m, d); err != nil {
				return calendar.Request{}, err
			}
			req.Day = d
		}
	default:
		return calendar.Request{}, fmt.Errorf("too many arguments, see --help")
	}
	return req.Normalize(), nil
}

func parseNumber(value string, field string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as %s", value, field)
	}
	return n, nil
}
