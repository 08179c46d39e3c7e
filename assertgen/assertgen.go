package assertgen

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"go.jacobcolvin.com/leetgen/docfmt"
	"go.jacobcolvin.com/leetgen/example"
	"go.jacobcolvin.com/leetgen/literal"
	"go.jacobcolvin.com/leetgen/question"
	"go.jacobcolvin.com/leetgen/signature"
)

// Names of the construction and inverse helpers referenced by generated code.
const (
	BuildLinkedList          = "buildLinkedList"
	BuildLinkedListWithCycle = "buildLinkedListWithCycle"
	LinkedListToArray        = "linkedListToArray"
	BuildTree                = "buildTree"
	TreeToArray              = "treeToArray"
)

// TODO markers emitted in place of assertions.
const (
	todoNoExamples = "// TODO: Add asserts for examples."
	todoNoFunction = "// TODO: Add asserts for class-based or custom API problems."
)

var helperOrder = []string{
	BuildLinkedList,
	BuildLinkedListWithCycle,
	LinkedListToArray,
	BuildTree,
	TreeToArray,
}

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Input is everything [Generate] needs. Examples holds the raw tokens of
// each example and Blocks the extracted text aligned with them.
type Input struct {
	ReturnType string
	Formatter  docfmt.Formatter
	Params     []question.Param
	Examples   [][]string
	Blocks     []example.Block
	Signature  signature.Signature
}

// Result is the generated assertion block.
type Result struct {
	// Code is the assertion block without a trailing newline.
	Code string
	// Helpers lists the helpers Code references, in a fixed order.
	Helpers []string
}

// item is the outcome for one example: its documentation and either an
// assertion or a TODO marker.
type item struct {
	doc   string
	lines []string
}

type generator struct {
	helpers map[string]bool
	in      Input
}

// Generate builds the assertion block for in.
func Generate(in Input) Result {
	if in.Signature.Name == "" {
		return Result{Code: todoNoFunction}
	}

	g := &generator{in: in, helpers: map[string]bool{}}

	count := min(len(in.Examples), len(in.Blocks))
	items := make([]item, 0, count)

	for i := range count {
		items = append(items, g.example(i))
	}

	if len(items) == 0 {
		return Result{Code: todoNoExamples}
	}

	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.doc+"\n"+strings.Join(it.lines, "\n"))
	}

	var helpers []string

	for _, name := range helperOrder {
		if g.helpers[name] {
			helpers = append(helpers, name)
		}
	}

	return Result{Code: strings.Join(parts, "\n\n"), Helpers: helpers}
}

func (g *generator) example(i int) item {
	n := i + 1
	it := item{doc: g.in.Formatter.Comment(docLines(n, g.in.Blocks[i]))}

	args, ok := g.args(g.in.Examples[i])
	if !ok {
		slog.Debug("skipping example", slog.Int("example", n), slog.String("reason", "input"))

		it.lines = []string{fmt.Sprintf("// TODO: Unable to parse example input %d.", n)}

		return it
	}

	want := literal.Parse(g.in.Blocks[i].Output, g.in.ReturnType)
	if !want.OK {
		slog.Debug("skipping example", slog.Int("example", n), slog.String("reason", "output"))

		it.lines = []string{fmt.Sprintf("// TODO: Unable to parse example output %d.", n)}

		return it
	}

	fn := g.in.Signature.Name
	ret := g.in.ReturnType

	switch {
	case isVoid(ret):
		it.lines = g.inPlace(n, args, want.V)

	case signature.IsListNode(ret):
		g.use(LinkedListToArray)
		it.lines = []string{fmt.Sprintf("assert.deepStrictEqual(%s(%s(%s)), %s);",
			LinkedListToArray, fn, strings.Join(args, ", "), literal.Serialize(orEmpty(want.V)))}

	case signature.IsTreeNode(ret):
		g.use(TreeToArray)
		it.lines = []string{fmt.Sprintf("assert.deepStrictEqual(%s(%s(%s)), %s);",
			TreeToArray, fn, strings.Join(args, ", "), literal.Serialize(orEmpty(want.V)))}

	default:
		it.lines = []string{fmt.Sprintf("assert.%s(%s(%s), %s);",
			equality(want.V), fn, strings.Join(args, ", "), literal.Serialize(want.V))}
	}

	return it
}

// args renders the call arguments for one example's tokens.
func (g *generator) args(tokens []string) ([]string, bool) {
	if g.in.Signature.CyclePair && len(g.in.Params) > 0 && signature.IsListNode(g.in.Params[0].Type) {
		return g.cycleArgs(tokens)
	}

	out := make([]string, 0, len(tokens))

	for idx, raw := range tokens {
		typ := g.paramType(idx)

		v := literal.Parse(raw, typ)
		if !v.OK {
			return nil, false
		}

		switch {
		case signature.IsListNode(typ):
			out = append(out, g.construct(BuildLinkedList, v.V))
		case signature.IsTreeNode(typ):
			out = append(out, g.construct(BuildTree, v.V))
		default:
			out = append(out, literal.Serialize(v.V))
		}
	}

	return out, true
}

func (g *generator) cycleArgs(tokens []string) ([]string, bool) {
	if len(tokens) < 2 {
		return nil, false
	}

	list := literal.Parse(tokens[0], g.in.Params[0].Type)
	pos := literal.Parse(tokens[1], "integer")

	values, isList := list.V.([]any)
	_, isNumber := pos.V.(float64)

	if !list.OK || !pos.OK || !isList || !isNumber {
		return nil, false
	}

	g.use(BuildLinkedListWithCycle)

	return []string{fmt.Sprintf("%s(%s, %s)",
		BuildLinkedListWithCycle, literal.Serialize(values), literal.Serialize(pos.V))}, true
}

// construct routes an array value through a construction helper. Any other
// value, null included, is passed as null.
func (g *generator) construct(helper string, v any) string {
	values, ok := v.([]any)
	if !ok {
		return "null"
	}

	g.use(helper)

	return fmt.Sprintf("%s(%s)", helper, literal.Serialize(values))
}

// inPlace binds the first argument to a local so its state after the call
// can be asserted.
func (g *generator) inPlace(n int, args []string, want any) []string {
	fn := g.in.Signature.Name

	if len(args) == 0 {
		return []string{
			fn + "();",
			fmt.Sprintf("// TODO: Verify the in-place result of example %d.", n),
		}
	}

	local := g.localName(n)
	call := append([]string{local}, args[1:]...)

	lines := []string{
		fmt.Sprintf("const %s = %s;", local, args[0]),
		fmt.Sprintf("%s(%s);", fn, strings.Join(call, ", ")),
	}

	first := g.paramType(0)

	switch {
	case signature.IsListNode(first):
		g.use(LinkedListToArray)

		return append(lines, fmt.Sprintf("assert.deepStrictEqual(%s(%s), %s);",
			LinkedListToArray, local, literal.Serialize(orEmpty(want))))

	case signature.IsTreeNode(first):
		g.use(TreeToArray)

		return append(lines, fmt.Sprintf("assert.deepStrictEqual(%s(%s), %s);",
			TreeToArray, local, literal.Serialize(orEmpty(want))))
	}

	return append(lines, fmt.Sprintf("assert.%s(%s, %s);",
		equality(want), local, literal.Serialize(want)))
}

// localName is the first parameter's name suffixed with the example number,
// so every example can declare its own local at module scope.
func (g *generator) localName(n int) string {
	name := "input"
	if len(g.in.Params) > 0 && identifier.MatchString(g.in.Params[0].Name) {
		name = g.in.Params[0].Name
	}

	return name + strconv.Itoa(n)
}

func (g *generator) paramType(idx int) string {
	if idx < len(g.in.Params) {
		return g.in.Params[idx].Type
	}

	return ""
}

func (g *generator) use(helper string) {
	g.helpers[helper] = true
}

func docLines(n int, b example.Block) []string {
	lines := []string{fmt.Sprintf("Example %d", n)}
	lines = appendField(lines, "Input", b.Input)
	lines = appendField(lines, "Output", b.Output)

	return appendField(lines, "Explanation", b.Explanation)
}

// appendField adds a labelled field, one comment line per source line.
func appendField(lines []string, label, text string) []string {
	first := true

	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if first {
			lines = append(lines, label+": "+line)
			first = false

			continue
		}

		lines = append(lines, "  "+line)
	}

	return lines
}

func isVoid(typ string) bool {
	return strings.EqualFold(strings.TrimSpace(typ), "void")
}

func equality(v any) string {
	if literal.IsCompound(v) {
		return "deepStrictEqual"
	}

	return "strictEqual"
}

func orEmpty(v any) any {
	if v == nil {
		return []any{}
	}

	return v
}
