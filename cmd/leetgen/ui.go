package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"
)

var (
	styleOK    = lipgloss.NewStyle().Foreground(lipgloss.Green)
	styleInfo  = lipgloss.NewStyle().Foreground(lipgloss.Cyan)
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Yellow)
	styleError = lipgloss.NewStyle().Foreground(lipgloss.Red).Bold(true)
)

// printer writes status lines. Labels are colorized only when the stream
// they go to is a terminal.
type printer struct {
	out      io.Writer
	err      io.Writer
	mu       sync.Mutex
	colorOut bool
	colorErr bool
}

func newPrinter(out, err io.Writer) *printer {
	return &printer{
		out:      out,
		err:      err,
		colorOut: isTerminal(out),
		colorErr: isTerminal(err),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in an int.
}

// paint styles text, leaving leading line breaks unstyled.
func paint(enabled bool, style lipgloss.Style, text string) string {
	if !enabled {
		return text
	}

	label := strings.TrimLeft(text, "\n")

	return text[:len(text)-len(label)] + style.Render(label)
}

func (p *printer) stdout(style lipgloss.Style, label, format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.out, "%s %s\n", paint(p.colorOut, style, label), fmt.Sprintf(format, args...))
}

func (p *printer) stderr(style lipgloss.Style, label, format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.err, "%s %s\n", paint(p.colorErr, style, label), fmt.Sprintf(format, args...))
}

func (p *printer) ok(format string, args ...any) {
	p.stdout(styleOK, "✔", format, args...)
}

func (p *printer) info(format string, args ...any) {
	p.stdout(styleInfo, "ℹ", format, args...)
}

func (p *printer) warn(format string, args ...any) {
	p.stderr(styleWarn, "⚠", format, args...)
}

func (p *printer) hint(format string, args ...any) {
	p.stderr(styleInfo, "ℹ", format, args...)
}

func (p *printer) fail(err error) {
	p.stderr(styleError, "✖", "%v", err)
}
