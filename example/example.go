package example

import (
	"log/slog"
	"regexp"
	"strings"

	"go.jacobcolvin.com/leetgen/htmltext"
)

// Strategy names reported in [Result.Strategy].
const (
	StrategyMarkers = "markers"
	StrategyPlain   = "plain"
)

// Block is the text of one worked example. Empty fields were not found.
type Block struct {
	Input       string
	Output      string
	Explanation string
}

// IsEmpty reports whether no field was captured.
func (b Block) IsEmpty() bool {
	return b.Input == "" && b.Output == "" && b.Explanation == ""
}

// Result is the outcome of [Extract].
type Result struct {
	// Strategy names the strategy that produced Blocks, or "" if none did.
	Strategy string
	// Remaining is the markup with extracted example regions removed.
	Remaining string
	Blocks    []Block
}

// Outputs returns the Output of every block, aligned with Blocks.
func (r Result) Outputs() []string {
	out := make([]string, len(r.Blocks))
	for i, b := range r.Blocks {
		out[i] = b.Output
	}

	return out
}

type strategy struct {
	run  func(markup string) (Result, bool)
	name string
}

var strategies = []strategy{
	{name: StrategyMarkers, run: fromMarkers},
	{name: StrategyPlain, run: fromPlainText},
}

// Extract finds the worked examples in markup.
func Extract(markup string) Result {
	for _, s := range strategies {
		res, ok := s.run(markup)
		if !ok {
			continue
		}

		res.Strategy = s.name

		slog.Debug("extracted examples",
			slog.String("strategy", s.name),
			slog.Int("count", len(res.Blocks)),
		)

		return res
	}

	slog.Debug("no examples found")

	return Result{Remaining: markup}
}

var (
	exampleMarker     = regexp.MustCompile(`(?is)<(?:strong|b)(?:\s[^>]*)?>\s*Example\s*\d+\s*:?\s*</(?:strong|b)\s*>`)
	constraintsMarker = regexp.MustCompile(`(?is)<(?:strong|b)(?:\s[^>]*)?>\s*Constraints\s*:?\s*</(?:strong|b)\s*>`)
	followUpMarker    = regexp.MustCompile(`(?is)<(?:strong|b|em)(?:\s[^>]*)?>\s*Follow[- ]?up\s*:?`)
	regionLabel       = regexp.MustCompile(`\b(Input|Output|Explanation)\s*:`)
	plainLabel        = regexp.MustCompile(`\b(Input|Output|Explanation|Example\s*\d+|Constraints|Follow[- ]?up)\s*:`)
)

// terminators end an example region before the next example marker.
var terminators = []*regexp.Regexp{constraintsMarker, followUpMarker}

func fromMarkers(markup string) (Result, bool) {
	markers := exampleMarker.FindAllStringIndex(markup, -1)
	if len(markers) == 0 {
		return Result{}, false
	}

	type region struct{ start, end int }

	regions := make([]region, 0, len(markers))
	blocks := make([]Block, 0, len(markers))
	found := false

	for i, m := range markers {
		end := len(markup)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}

		for _, term := range terminators {
			if c := term.FindStringIndex(markup[m[1]:end]); c != nil {
				end = m[1] + c[0]
			}
		}

		block := parseRegion(htmltext.Plain(markup[m[1]:end]))
		if !block.IsEmpty() {
			found = true
		}

		regions = append(regions, region{start: m[0], end: end})
		blocks = append(blocks, block)
	}

	if !found {
		return Result{}, false
	}

	var remaining strings.Builder

	prev := 0
	for _, r := range regions {
		remaining.WriteString(markup[prev:r.start])

		prev = r.end
	}

	remaining.WriteString(markup[prev:])

	return Result{Blocks: blocks, Remaining: remaining.String()}, true
}

// parseRegion captures labelled fields from the plain text of one example.
// Each label's text runs to the next label or the end of the region.
func parseRegion(text string) Block {
	var b Block

	labels := regionLabel.FindAllStringSubmatchIndex(text, -1)
	for i, l := range labels {
		end := len(text)
		if i+1 < len(labels) {
			end = labels[i+1][0]
		}

		setField(&b, text[l[2]:l[3]], text[l[1]:end])
	}

	return b
}

func fromPlainText(markup string) (Result, bool) {
	text := htmltext.Plain(markup)

	var blocks []Block

	current := -1

	labels := plainLabel.FindAllStringSubmatchIndex(text, -1)
	for i, l := range labels {
		end := len(text)
		if i+1 < len(labels) {
			end = labels[i+1][0]
		}

		span := text[l[1]:end]

		switch name := text[l[2]:l[3]]; name {
		case "Input":
			blocks = append(blocks, Block{})
			current = len(blocks) - 1
			setField(&blocks[current], name, span)

		case "Output":
			if current < 0 || blocks[current].Output != "" {
				blocks = append(blocks, Block{})
				current = len(blocks) - 1
			}

			setField(&blocks[current], name, span)

		case "Explanation":
			if current >= 0 {
				setField(&blocks[current], name, span)
			}

		default:
			current = -1
		}
	}

	if len(blocks) == 0 {
		return Result{}, false
	}

	return Result{Blocks: blocks, Remaining: markup}, true
}

// setField stores span in the field named by label unless it is already set.
// Output keeps only its first line since it must parse as a single value.
func setField(b *Block, label, span string) {
	text := reflow(span)

	switch label {
	case "Input":
		if b.Input == "" {
			b.Input = text
		}

	case "Output":
		if b.Output == "" {
			b.Output, _, _ = strings.Cut(text, "\n")
		}

	case "Explanation":
		if b.Explanation == "" {
			b.Explanation = text
		}
	}
}

// reflow keeps one trimmed line per non-blank source line.
func reflow(s string) string {
	var lines []string

	for line := range strings.SplitSeq(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n")
}
