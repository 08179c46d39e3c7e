package signature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/leetgen/question"
	"go.jacobcolvin.com/leetgen/signature"
)

func TestFuncName(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		code string
		want string
	}{
		"named function": {
			code: "function twoSum(nums: number[], target: number): number[] {\n\n};",
			want: "twoSum",
		},
		"function expression": {
			code: "const isValid = function (s) {\n};",
			want: "isValid",
		},
		"var function expression": {
			code: "var maxDepth = function(root) {\n};",
			want: "maxDepth",
		},
		"arrow function": {
			code: "const climbStairs = (n: number): number => {\n};",
			want: "climbStairs",
		},
		"named function wins over arrow": {
			code: "const helper = (x) => x;\nfunction main(a) {}",
			want: "main",
		},
		"class based": {
			code: "class LRUCache {\n    constructor(capacity: number) {\n\n    }\n}",
			want: "",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, signature.FuncName(tc.code))
		})
	}
}

func TestParamCount(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		code   string
		name   string
		want   int
		wantOK bool
	}{
		"two params": {
			code:   "function twoSum(nums: number[], target: number): number[] {}",
			name:   "twoSum",
			want:   2,
			wantOK: true,
		},
		"no params": {
			code:   "function noop(): void {}",
			name:   "noop",
			want:   0,
			wantOK: true,
		},
		"arrow with return type": {
			code:   "const add = (a: number, b: number): number => a + b;",
			name:   "add",
			want:   2,
			wantOK: true,
		},
		"function expression": {
			code:   "const f = function (head) {};",
			name:   "f",
			want:   1,
			wantOK: true,
		},
		"trailing comma": {
			code:   "function f(\n  a: number,\n  b: number,\n) {}",
			name:   "f",
			want:   2,
			wantOK: true,
		},
		"unknown name": {
			code: "function f(a) {}",
			name: "g",
		},
		"empty name": {
			code: "function f(a) {}",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := signature.ParamCount(tc.code, tc.name)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassification(t *testing.T) {
	t.Parallel()

	assert.True(t, signature.IsListNode("ListNode"))
	assert.True(t, signature.IsListNode("ListNode[]"))
	assert.False(t, signature.IsListNode("TreeNode"))
	assert.True(t, signature.IsTreeNode("TreeNode"))
	assert.False(t, signature.IsTreeNode("integer[]"))

	assert.True(t, signature.Mentions("function f(head: ListNode | null) {}", "ListNode"))
	assert.False(t, signature.Mentions("function f(head: MyListNode) {}", "ListNode"))
}

func TestIsCyclePair(t *testing.T) {
	t.Parallel()

	list := []question.Param{{Name: "head", Type: "ListNode"}}

	tcs := map[string]struct {
		params  []question.Param
		arity   int
		outputs int
		tokens  int
		want    bool
	}{
		"all conditions": {
			params: list, arity: 1, outputs: 3, tokens: 6, want: true,
		},
		"first param not a list": {
			params: []question.Param{{Name: "nums", Type: "integer[]"}}, arity: 1, outputs: 3, tokens: 6,
		},
		"no params": {
			arity: 1, outputs: 3, tokens: 6,
		},
		"arity two": {
			params: list, arity: 2, outputs: 3, tokens: 6,
		},
		"no outputs": {
			params: list, arity: 1, outputs: 0, tokens: 0,
		},
		"token count not doubled": {
			params: list, arity: 1, outputs: 3, tokens: 5,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, signature.IsCyclePair(tc.params, tc.arity, tc.outputs, tc.tokens))
		})
	}
}

func TestChunk(t *testing.T) {
	t.Parallel()

	tokens := []string{"a", "b", "c", "d", "e"}

	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, signature.Chunk(tokens, 2))
	assert.Equal(t, [][]string{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}}, signature.Chunk(tokens, 1))
	assert.Nil(t, signature.Chunk(tokens, 0))
	assert.Nil(t, signature.Chunk(nil, 2))
}

func TestInspect(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		meta    question.Meta
		code    string
		tokens  int
		outputs int
		want    signature.Signature
	}{
		"plain function": {
			code: "function twoSum(nums: number[], target: number): number[] {}",
			meta: question.Meta{
				Params: []question.Param{{Name: "nums", Type: "integer[]"}, {Name: "target", Type: "integer"}},
				Return: &question.Return{Type: "integer[]"},
			},
			tokens:  4,
			outputs: 2,
			want:    signature.Signature{Name: "twoSum", Arity: 2},
		},
		"cycle detection": {
			code: hasCycleSnippet,
			meta: question.Meta{
				Params: []question.Param{{Name: "head", Type: "ListNode"}},
				Return: &question.Return{Type: "boolean"},
			},
			tokens:  6,
			outputs: 3,
			want: signature.Signature{
				Name:         "hasCycle",
				Arity:        1,
				UsesListNode: true,
				CyclePair:    true,
			},
		},
		"tree from snippet text only": {
			code:    "function maxDepth(root: TreeNode | null): number {}",
			tokens:  2,
			outputs: 2,
			want:    signature.Signature{Name: "maxDepth", Arity: 1, UsesTreeNode: true},
		},
		"arity falls back to metadata": {
			code: "class Solution {}",
			meta: question.Meta{
				Params: []question.Param{{Name: "a", Type: "integer"}, {Name: "b", Type: "integer"}},
			},
			want: signature.Signature{Arity: 2},
		},
		"arity falls back to one": {
			code: "class Solution {}",
			want: signature.Signature{Arity: 1},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := signature.Inspect(tc.code, tc.meta, tc.tokens, tc.outputs)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSignature_ChunkSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, signature.Signature{Arity: 3}.ChunkSize())
	assert.Equal(t, 2, signature.Signature{Arity: 1, CyclePair: true}.ChunkSize())
}

func TestSignature_Group(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		sig      signature.Signature
		tokens   []string
		examples int
		want     [][]string
	}{
		"chunked by arity": {
			sig:      signature.Signature{Name: "twoSum", Arity: 2},
			tokens:   []string{"[2,7]", "9", "[3,2]", "6"},
			examples: 2,
			want:     [][]string{{"[2,7]", "9"}, {"[3,2]", "6"}},
		},
		"cycle pairs": {
			sig:      signature.Signature{Name: "hasCycle", Arity: 1, CyclePair: true},
			tokens:   []string{"[3,2]", "1", "[1]", "-1"},
			examples: 2,
			want:     [][]string{{"[3,2]", "1"}, {"[1]", "-1"}},
		},
		"no parameters": {
			sig:      signature.Signature{Name: "reset"},
			examples: 2,
			want:     [][]string{nil, nil},
		},
		"no function": {
			examples: 2,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.sig.Group(tc.tokens, tc.examples))
		})
	}
}

const hasCycleSnippet = `/**
 * Definition for singly-linked list.
 * class ListNode {
 *     val: number
 *     next: ListNode | null
 *     constructor(val?: number, next?: ListNode | null) {
 *         this.val = (val===undefined ? 0 : val)
 *         this.next = (next===undefined ? null : next)
 *     }
 * }
 */

function hasCycle(head: ListNode | null): boolean {

};`

func TestInspect_Constructs(t *testing.T) {
	t.Parallel()

	code := "function f(): ListNode | null { return new ListNode(1); }"
	got := signature.Inspect(code, question.Meta{}, 0, 0)

	assert.True(t, got.UsesListNode)
	assert.True(t, got.ConstructsListNode)
	assert.False(t, got.ConstructsTreeNode)
}
