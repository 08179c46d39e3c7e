package signature

import (
	"regexp"
	"strings"

	"go.jacobcolvin.com/leetgen/question"
)

const (
	listNodeType = "ListNode"
	treeNodeType = "TreeNode"
)

var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`function\s+([A-Za-z0-9_$]+)\s*\(`),
	regexp.MustCompile(`(?:const|let|var)\s+([A-Za-z0-9_$]+)\s*=\s*function\s*\(`),
	regexp.MustCompile(`(?:const|let|var)\s+([A-Za-z0-9_$]+)\s*=\s*\(`),
}

// Signature is what [Inspect] learns about the reference function.
type Signature struct {
	// Name is the function name, or "" for class-based snippets.
	Name string
	// Arity is the parameter count used to chunk test-case tokens.
	Arity int
	// UsesListNode and UsesTreeNode report whether the problem involves the
	// structure at all, from declared types or the snippet text.
	UsesListNode bool
	UsesTreeNode bool
	// ConstructsListNode and ConstructsTreeNode report whether the snippet
	// itself instantiates the structure.
	ConstructsListNode bool
	ConstructsTreeNode bool
	// CyclePair is set when tokens come in list/position pairs.
	CyclePair bool
}

// ChunkSize returns the number of tokens that make up one example's inputs.
func (s Signature) ChunkSize() int {
	if s.CyclePair {
		return 2
	}

	return s.Arity
}

// Group splits tokens into one argument list per example. A function without
// parameters gets an empty list for each of the examples.
func (s Signature) Group(tokens []string, examples int) [][]string {
	size := s.ChunkSize()
	if size > 0 {
		return Chunk(tokens, size)
	}

	if s.Name == "" {
		return nil
	}

	return make([][]string, examples)
}

// Inspect analyses code against the declared metadata. tokens is the number
// of raw test-case tokens and outputs the number of examples with an Output.
func Inspect(code string, meta question.Meta, tokens, outputs int) Signature {
	sig := Signature{Name: FuncName(code)}

	arity, ok := ParamCount(code, sig.Name)
	switch {
	case ok:
		sig.Arity = arity
	case len(meta.Params) > 0:
		sig.Arity = len(meta.Params)
	default:
		sig.Arity = 1
	}

	sig.UsesListNode = IsListNode(meta.ReturnType()) || Mentions(code, listNodeType)
	sig.UsesTreeNode = IsTreeNode(meta.ReturnType()) || Mentions(code, treeNodeType)

	for _, p := range meta.Params {
		sig.UsesListNode = sig.UsesListNode || IsListNode(p.Type)
		sig.UsesTreeNode = sig.UsesTreeNode || IsTreeNode(p.Type)
	}

	sig.ConstructsListNode = constructs(code, listNodeType)
	sig.ConstructsTreeNode = constructs(code, treeNodeType)
	sig.CyclePair = IsCyclePair(meta.Params, sig.Arity, outputs, tokens)

	return sig
}

// FuncName returns the name of the first function declared in code, trying a
// named function, a variable bound to a function expression and a variable
// bound to an arrow function in that order. It returns "" when none match.
func FuncName(code string) string {
	for _, re := range namePatterns {
		if m := re.FindStringSubmatch(code); m != nil {
			return m[1]
		}
	}

	return ""
}

// ParamCount counts the declared parameters of the function called name. The
// second result is false when no parameter list could be found.
func ParamCount(code, name string) (int, bool) {
	if name == "" {
		return 0, false
	}

	quoted := regexp.QuoteMeta(name)
	patterns := []*regexp.Regexp{
		regexp.MustCompile(`function\s+` + quoted + `\s*\(([^)]*)\)`),
		regexp.MustCompile(`(?:const|let|var)\s+` + quoted + `\s*=\s*\(([^)]*)\)\s*(?::[^=]*)?=>`),
		regexp.MustCompile(`(?:const|let|var)\s+` + quoted + `\s*=\s*function\s*\(([^)]*)\)`),
	}

	for _, re := range patterns {
		m := re.FindStringSubmatch(code)
		if m == nil {
			continue
		}

		n := 0

		for part := range strings.SplitSeq(m[1], ",") {
			if strings.TrimSpace(part) != "" {
				n++
			}
		}

		return n, true
	}

	return 0, false
}

// IsListNode reports whether a declared type is a linked-list node.
func IsListNode(typ string) bool {
	return strings.Contains(typ, listNodeType)
}

// IsTreeNode reports whether a declared type is a binary-tree node.
func IsTreeNode(typ string) bool {
	return strings.Contains(typ, treeNodeType)
}

// Mentions reports whether ident occurs in code as a whole identifier.
func Mentions(code, ident string) bool {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(ident) + `\b`).MatchString(code)
}

func constructs(code, ident string) bool {
	return regexp.MustCompile(`\bnew\s+` + regexp.QuoteMeta(ident) + `\b`).MatchString(code)
}

// IsCyclePair reports whether test-case tokens come in list/position pairs.
func IsCyclePair(params []question.Param, arity, outputs, tokens int) bool {
	if len(params) == 0 || !IsListNode(params[0].Type) {
		return false
	}

	return arity == 1 && outputs > 0 && tokens == outputs*2
}

// Chunk splits tokens into consecutive groups of size. A trailing group that
// is not full is dropped. A size below 1 yields no groups.
func Chunk(tokens []string, size int) [][]string {
	if size < 1 {
		return nil
	}

	var chunks [][]string
	for i := 0; i+size <= len(tokens); i += size {
		chunks = append(chunks, tokens[i:i+size])
	}

	return chunks
}
