package render

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/logging/ctxlog"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/lululau/weekcal/internal/calendar"
)

// PlainOptions controls how the non-interactive renderer behaves.
type PlainOptions struct {
	Writer  io.Writer
	Service *calendar.Service
	Request calendar.Request
	Width   int
	JSON    bool
}

// RunPlain renders the requested month exactly once.
func RunPlain(ctx context.Context, opts PlainOptions) error {
	logger := ctxlog.Logger(ctx)
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Service == nil {
		opts.Service = calendar.NewService()
	}

	view, err := opts.Service.Month(opts.Request)
	if err != nil {
		return err
	}
	logger.Debug("month laid out", "reference", view.Reference.String(), "weeks", len(view.Weeks), "highlight", view.Highlight)

	if opts.JSON {
		return WriteJSON(opts.Writer, view)
	}

	block, err := BuildBlock(view)
	if err != nil {
		return err
	}
	width := opts.Width
	if width == 0 {
		width = DetectWidth()
	}
	if block.Width > width {
		logger.Debug("terminal too narrow, dropping border", "width", width, "block", block.Width)
		if block, err = BuildCompactBlock(view); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(opts.Writer, block.String()); err != nil {
		return err
	}
	_, err = fmt.Fprintln(opts.Writer, "\n"+ColorLegend())
	return err
}

// DetectWidth tries to determine the terminal width, falling back to 100 cols.
func DetectWidth() int {
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) {
		if w, _, err := term.GetSize(int(fd)); err == nil {
			return w
		}
	}
	return 100
}
