package htmltext

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var (
	codeSpan      = regexp.MustCompile(`(?is)<code(?:\s[^>]*)?>(.*?)</code\s*>`)
	supTag        = regexp.MustCompile(`(?is)<sup(?:\s[^>]*)?>(.*?)</sup\s*>`)
	subTag        = regexp.MustCompile(`(?is)<sub(?:\s[^>]*)?>(.*?)</sub\s*>`)
	headingTag    = regexp.MustCompile(`(?is)<h([1-6])(?:\s[^>]*)?>(.*?)</h[1-6]\s*>`)
	strongTag     = regexp.MustCompile(`(?is)<(?:strong|b)(?:\s[^>]*)?>(.*?)</(?:strong|b)\s*>`)
	emTag         = regexp.MustCompile(`(?is)<(?:em|i)(?:\s[^>]*)?>(.*?)</(?:em|i)\s*>`)
	paraOpen      = regexp.MustCompile(`(?i)<p(?:\s[^>]*)?>`)
	paraClose     = regexp.MustCompile(`(?i)</p\s*>[ \t\r\n]*`)
	lineBreak     = regexp.MustCompile(`(?i)<br\s*/?>`)
	listItemOpen  = regexp.MustCompile(`(?i)<li(?:\s[^>]*)?>[ \t\r\n]*`)
	listItemClose = regexp.MustCompile(`(?i)</li\s*>[ \t\r\n]*`)
	listWrap      = regexp.MustCompile(`(?i)</?(?:ul|ol)(?:\s[^>]*)?>`)
	preBlock      = regexp.MustCompile(`(?is)<pre(?:\s[^>]*)?>.*?</pre\s*>`)
	preTag        = regexp.MustCompile(`(?i)</?pre(?:\s[^>]*)?>`)
	markupIndent  = regexp.MustCompile(`(?m)^[ \t]+<`)
	exampleLine   = regexp.MustCompile(`^\**Example\s+\d+:\**$`)
	blankRuns     = regexp.MustCompile(`\n{3,}`)
	placeholder   = regexp.MustCompile(`\x{E000}(\d+)\x{E001}`)
)

// Inline code spans are swapped for private-use placeholders while the other
// passes run.
const (
	placeholderOpen  = "\ue000"
	placeholderClose = "\ue001"
)

// Doc renders markup as documentation text.
func Doc(markup string) string {
	return render(markup, false)
}

// Plain renders markup as unformatted text for heuristic parsing.
func Plain(markup string) string {
	return render(markup, true)
}

// Decode strips all tags from a markup fragment and decodes its entities.
func Decode(fragment string) string {
	return decodeEntities(stripTags(fragment))
}

func render(markup string, plain bool) string {
	text := strings.ReplaceAll(markup, "\r", "")
	text = markupIndent.ReplaceAllString(text, "<")

	var spans []string

	text = codeSpan.ReplaceAllStringFunc(text, func(m string) string {
		inner := codeSpan.FindStringSubmatch(m)[1]
		inner = rewriteScripts(inner)
		spans = append(spans, Decode(inner))

		return placeholderOpen + strconv.Itoa(len(spans)-1) + placeholderClose
	})

	text = rewriteScripts(text)

	text = headingTag.ReplaceAllStringFunc(text, func(m string) string {
		sm := headingTag.FindStringSubmatch(m)
		inner := strings.TrimSpace(sm[2])

		if plain {
			return "\n" + inner + "\n"
		}

		level, _ := strconv.Atoi(sm[1])

		return "\n\n" + strings.Repeat("#", level) + " " + inner + "\n\n"
	})

	strongMarker, emMarker := "**", "*"
	if plain {
		strongMarker, emMarker = "", ""
	}

	text = strongTag.ReplaceAllStringFunc(text, emphasize(strongTag, strongMarker))
	text = emTag.ReplaceAllStringFunc(text, emphasize(emTag, emMarker))

	if plain {
		text = paraClose.ReplaceAllString(text, "\n")
		text = listItemOpen.ReplaceAllString(text, "")
		text = preTag.ReplaceAllString(text, "\n")
	} else {
		text = paraClose.ReplaceAllString(text, "\n\n")
		text = listItemOpen.ReplaceAllString(text, "- ")
		text = preBlock.ReplaceAllString(text, "")
	}

	text = paraOpen.ReplaceAllString(text, "")
	text = lineBreak.ReplaceAllString(text, "\n")
	text = listItemClose.ReplaceAllString(text, "\n")
	text = listWrap.ReplaceAllString(text, "\n")

	text = stripTags(text)
	text = decodeEntities(text)
	text = tidyLines(text, !plain)
	text = blankRuns.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)

	return placeholder.ReplaceAllStringFunc(text, func(m string) string {
		idx, err := strconv.Atoi(placeholder.FindStringSubmatch(m)[1])
		if err != nil || idx >= len(spans) {
			return ""
		}

		if plain {
			return spans[idx]
		}

		return "`" + spans[idx] + "`"
	})
}

func rewriteScripts(text string) string {
	text = supTag.ReplaceAllString(text, "^$1")
	return subTag.ReplaceAllString(text, "_$1")
}

// emphasize wraps the inner text of an emphasis tag in marker. A label such
// as "Follow-up: " keeps exactly one trailing space so the text after it does
// not fuse with the label.
func emphasize(re *regexp.Regexp, marker string) func(string) string {
	return func(m string) string {
		inner := re.FindStringSubmatch(m)[1]

		trailing := hasTrailingSpace(inner)
		core := strings.TrimSpace(strings.TrimRight(inner, " \t\n\u00a0"))

		for strings.HasSuffix(core, "&nbsp;") {
			core = strings.TrimSpace(strings.TrimSuffix(core, "&nbsp;"))
		}

		if core == "" {
			if trailing {
				return " "
			}

			return ""
		}

		out := marker + core + marker
		if trailing {
			out += " "
		}

		return out
	}
}

func hasTrailingSpace(s string) bool {
	if strings.HasSuffix(s, "&nbsp;") {
		return true
	}

	trimmed := strings.TrimRight(s, " \t\n\u00a0")

	return len(trimmed) != len(s)
}

// stripTags drops every tag, comment and doctype, keeping raw text so that
// entities are still encoded afterwards.
func stripTags(s string) string {
	z := html.NewTokenizer(strings.NewReader(s))

	var b strings.Builder

	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Raw())
		default:
		}
	}
}

func decodeEntities(s string) string {
	s = html.UnescapeString(s)
	return strings.ReplaceAll(s, "\u00a0", " ")
}

func tidyLines(text string, dropExampleLabels bool) string {
	lines := strings.Split(text, "\n")
	out := lines[:0]

	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if dropExampleLabels && exampleLine.MatchString(strings.TrimSpace(line)) {
			continue
		}

		out = append(out, line)
	}

	return strings.Join(out, "\n")
}
