package question

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
)

// Snippet is the reference code for one language.
type Snippet struct {
	LangSlug string `json:"langSlug"`
	Code     string `json:"code"`
}

// Record is a problem as returned by the question bank.
type Record struct {
	ID               string    `json:"questionId"       validate:"required,numeric"`
	Title            string    `json:"title"            validate:"required"`
	Slug             string    `json:"titleSlug"        validate:"required"`
	Content          string    `json:"content"          validate:"required"`
	MetaData         string    `json:"metaData"`
	ExampleTestcases string    `json:"exampleTestcases"`
	CodeSnippets     []Snippet `json:"codeSnippets"`
}

// Param is one declared parameter of the reference function.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Return is the declared return shape of the reference function.
type Return struct {
	Type string `json:"type"`
}

// Meta is the decoded parameter and return metadata of a [Record].
type Meta struct {
	Return *Return `json:"return,omitempty"`
	Params []Param `json:"params,omitempty"`
}

// ReturnType returns the declared return type, or "" when it is unknown.
func (m Meta) ReturnType() string {
	if m.Return == nil {
		return ""
	}

	return m.Return.Type
}

// Snippet returns the code snippet for the given language slug.
func (r *Record) Snippet(lang string) (string, bool) {
	for _, s := range r.CodeSnippets {
		if s.LangSlug == lang {
			return s.Code, true
		}
	}

	return "", false
}

// Meta decodes the record's metadata. Missing or malformed metadata yields
// an empty [Meta].
func (r *Record) Meta() Meta {
	var m Meta
	if r.MetaData == "" {
		return m
	}

	err := json.Unmarshal([]byte(r.MetaData), &m)
	if err != nil {
		return Meta{}
	}

	return m
}

// Testcases returns the non-blank raw test-case tokens, one per line of
// ExampleTestcases, in order.
func (r *Record) Testcases() []string {
	var tokens []string

	for line := range strings.SplitSeq(r.ExampleTestcases, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			tokens = append(tokens, line)
		}
	}

	return tokens
}

var problemPath = regexp.MustCompile(`/problems/([^/]+)(?:/|$)`)

// ParseSlug extracts a problem slug from a problem URL or returns the trimmed
// input when it is not a URL. It returns "" when nothing usable remains.
func ParseSlug(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err == nil && u.Scheme != "" && u.Host != "" {
		m := problemPath.FindStringSubmatch(u.Path)
		if m == nil {
			return ""
		}

		return m[1]
	}

	return raw
}
