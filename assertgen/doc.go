// Package assertgen turns extracted examples and parsed test-case tokens into
// assertion statements for a generated solution file.
//
// For each example [Generate] builds the call arguments, parses the expected
// output and picks an assertion shape from the declared return type:
//
//   - void: the first argument is bound to a local before the call and the
//     local is compared afterwards, flattened through the inverse helper when
//     it is a list or tree.
//   - linked-list node: the result is flattened with linkedListToArray and
//     deep-compared; a null expectation becomes an empty array.
//   - binary-tree node: the same with treeToArray.
//   - anything else: strictEqual for primitives, deepStrictEqual for arrays
//     and objects.
//
// An example whose input or output cannot be parsed produces a TODO comment
// instead of an assertion. It never stops the remaining examples.
package assertgen
