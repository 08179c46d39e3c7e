package scaffold

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.jacobcolvin.com/leetgen/assertgen"
	"go.jacobcolvin.com/leetgen/docfmt"
	"go.jacobcolvin.com/leetgen/example"
	"go.jacobcolvin.com/leetgen/htmltext"
	"go.jacobcolvin.com/leetgen/question"
	"go.jacobcolvin.com/leetgen/signature"
)

// Sentinel errors returned by the generator.
var (
	ErrMissingSnippet = errors.New("snippet not found")
	ErrInvalidOption  = errors.New("invalid option")
	ErrFileExists     = errors.New("file already exists")
	ErrWriteOutput    = errors.New("write output")
)

// Defaults used when no option overrides them.
const (
	DefaultHelperImport = "@/tools/leetcode-helpers"
	DefaultURLBase      = "https://leetcode.com/problems/"
)

// Language selects the snippet and the flavour of the generated file.
type Language string

// Supported languages.
const (
	TypeScript Language = "typescript"
	JavaScript Language = "javascript"
)

// Languages lists every supported [Language] as strings.
func Languages() []string {
	return []string{string(TypeScript), string(JavaScript)}
}

// ParseLanguage parses s into a [Language].
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case TypeScript:
		return TypeScript, nil
	case JavaScript:
		return JavaScript, nil
	}

	return "", fmt.Errorf("%w: unknown language %q", ErrInvalidOption, s)
}

// Ext returns the source file extension without the dot.
func (l Language) Ext() string {
	if l == JavaScript {
		return "js"
	}

	return "ts"
}

// Generator produces solution [File]s.
type Generator struct {
	formatter    docfmt.Formatter
	language     Language
	helperImport string
	urlBase      string
}

// Option configures a Generator.
type Option func(*Generator)

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		formatter:    docfmt.New(),
		language:     TypeScript,
		helperImport: DefaultHelperImport,
		urlBase:      DefaultURLBase,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WithLanguage sets the output language.
func WithLanguage(lang Language) Option {
	return func(g *Generator) {
		g.language = lang
	}
}

// WithHelperImport sets the module specifier helpers are imported from.
func WithHelperImport(path string) Option {
	return func(g *Generator) {
		g.helperImport = path
	}
}

// WithURLBase sets the prefix of the problem URL in the file header.
func WithURLBase(base string) Option {
	return func(g *Generator) {
		g.urlBase = base
	}
}

// WithFormatter sets the documentation formatter.
func WithFormatter(f docfmt.Formatter) Option {
	return func(g *Generator) {
		g.formatter = f
	}
}

// File is a generated solution file.
type File struct {
	Slug    string
	Ext     string
	Content string
}

// Path returns the file's location inside dir.
func (f *File) Path(dir string) string {
	return filepath.Join(dir, f.Slug+"."+f.Ext)
}

// Write writes the file into dir, creating dir as needed. An existing file
// is only replaced when force is set.
func (f *File) Write(dir string, force bool) (string, error) {
	path := f.Path(dir)

	err := writeFile(path, []byte(f.Content), force)
	if err != nil {
		return "", err
	}

	return path, nil
}

// Generate renders the solution file for rec.
func (g *Generator) Generate(rec *question.Record) (*File, error) {
	code, ok := rec.Snippet(string(g.language))
	if !ok {
		return nil, fmt.Errorf("%w: %s for %q", ErrMissingSnippet, g.language, rec.Slug)
	}

	meta := rec.Meta()
	tokens := rec.Testcases()
	extracted := example.Extract(rec.Content)
	sig := signature.Inspect(code, meta, len(tokens), countOutputs(extracted.Blocks))

	slog.Debug("inspected signature",
		slog.String("slug", rec.Slug),
		slog.String("function", sig.Name),
		slog.Int("arity", sig.Arity),
		slog.Bool("cycle_pair", sig.CyclePair),
		slog.Int("examples", len(extracted.Blocks)),
		slog.Int("tokens", len(tokens)),
	)

	asserts := assertgen.Generate(assertgen.Input{
		Signature:  sig,
		Params:     meta.Params,
		ReturnType: meta.ReturnType(),
		Examples:   sig.Group(tokens, len(extracted.Blocks)),
		Blocks:     extracted.Blocks,
		Formatter:  g.formatter,
	})

	parts := []string{
		strings.Join(g.imports(sig, asserts.Helpers), "\n"),
		"",
		g.header(rec, extracted.Remaining),
		"",
		strings.TrimSpace(code),
		"",
		asserts.Code,
		"",
	}

	return &File{
		Slug:    rec.Slug,
		Ext:     g.language.Ext(),
		Content: strings.Join(parts, "\n"),
	}, nil
}

func countOutputs(blocks []example.Block) int {
	n := 0

	for _, b := range blocks {
		if b.Output != "" {
			n++
		}
	}

	return n
}

func (g *Generator) imports(sig signature.Signature, helpers []string) []string {
	lines := []string{`import assert from "node:assert";`}

	values := slices.Clone(helpers)
	if sig.ConstructsListNode {
		values = append(values, "ListNode")
	}

	if sig.ConstructsTreeNode {
		values = append(values, "TreeNode")
	}

	if len(values) > 0 {
		lines = append(lines, fmt.Sprintf("import { %s } from %q;", strings.Join(values, ", "), g.helperImport))
	}

	if g.language != TypeScript {
		return lines
	}

	var types []string

	if sig.UsesListNode && !sig.ConstructsListNode {
		types = append(types, "ListNode")
	}

	if sig.UsesTreeNode && !sig.ConstructsTreeNode {
		types = append(types, "TreeNode")
	}

	if len(types) > 0 {
		lines = append(lines, fmt.Sprintf("import type { %s } from %q;", strings.Join(types, ", "), g.helperImport))
	}

	return lines
}

func (g *Generator) header(rec *question.Record, markup string) string {
	lines := []string{
		fmt.Sprintf("%s (#%s)", rec.Title, rec.ID),
		g.urlBase + rec.Slug + "/",
	}

	if desc := htmltext.Doc(markup); desc != "" {
		lines = append(lines, "")
		lines = append(lines, strings.Split(desc, "\n")...)
	}

	return g.formatter.Comment(lines)
}

func writeFile(path string, data []byte, force bool) error {
	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
	}

	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	err = os.WriteFile(path, data, 0o644) //nolint:gosec // Source files are meant to be world-readable.
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
