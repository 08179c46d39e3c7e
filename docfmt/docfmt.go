// Package docfmt wraps text to a fixed column width and renders it as a block
// comment.
package docfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// DefaultWidth is the default total column width of a rendered comment.
	DefaultWidth = 120
	// PrefixWidth is the allowance for the " * " comment prefix.
	PrefixWidth = 3
)

// Formatter renders documentation comments. The zero value is not usable;
// create instances with [New].
type Formatter struct {
	width int
}

// Option configures a [Formatter].
type Option func(*Formatter)

// WithWidth sets the total column width, prefix included. Widths too narrow
// to hold any text are ignored.
func WithWidth(width int) Option {
	return func(f *Formatter) {
		if width > PrefixWidth {
			f.width = width
		}
	}
}

// New creates a [Formatter] with the given options.
func New(opts ...Option) Formatter {
	f := Formatter{width: DefaultWidth}
	for _, opt := range opts {
		opt(&f)
	}

	return f
}

// TextWidth is the width available to text after the comment prefix.
func (f Formatter) TextWidth() int {
	return f.width - PrefixWidth
}

// Wrap breaks each line at word boundaries so it fits [Formatter.TextWidth].
// A line's leading indentation is repeated on its continuation lines. Lines
// that already fit, and words wider than the limit, are left intact.
func (f Formatter) Wrap(lines []string) []string {
	width := f.TextWidth()
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		out = append(out, wrapLine(line, width)...)
	}

	return out
}

// Comment wraps lines and renders them as a block comment. Blank lines get a
// bare " *" marker and any "*/" in the text is written as "*\/".
func (f Formatter) Comment(lines []string) string {
	var b strings.Builder

	b.WriteString("/**\n")

	for _, line := range f.Wrap(lines) {
		if strings.TrimSpace(line) == "" {
			b.WriteString(" *\n")
			continue
		}

		b.WriteString(" * ")
		b.WriteString(strings.ReplaceAll(line, "*/", `*\/`))
		b.WriteByte('\n')
	}

	b.WriteString(" */")

	return b.String()
}

func wrapLine(line string, width int) []string {
	line = strings.TrimRight(line, " \t")
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}

	rest := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(rest)]
	indentWidth := runewidth.StringWidth(indent)

	var (
		out     []string
		current strings.Builder
	)

	lineLen := 0

	for _, word := range strings.Fields(rest) {
		wordLen := runewidth.StringWidth(word)

		switch {
		case lineLen == 0:
			current.WriteString(indent)
			current.WriteString(word)

			lineLen = indentWidth + wordLen

		case lineLen+1+wordLen > width:
			out = append(out, current.String())
			current.Reset()
			current.WriteString(indent)
			current.WriteString(word)

			lineLen = indentWidth + wordLen

		default:
			current.WriteByte(' ')
			current.WriteString(word)

			lineLen += 1 + wordLen
		}
	}

	return append(out, current.String())
}
