// Package signature inspects a reference code snippet and the declared
// parameter metadata to decide how test-case tokens map onto call arguments.
//
// Declared type strings are free-form text, so linked-list and binary-tree
// shapes are recognized by substring rather than a closed set of types (see
// [IsListNode] and [IsTreeNode]).
//
// # Cycle pairs
//
// Cycle-detection problems declare a single linked-list parameter but their
// test cases carry two tokens per example: the list and the position the tail
// links back to. [IsCyclePair] detects this shape when the first parameter is
// a list, the inferred arity is 1, there is at least one output, and the token
// count is exactly twice the output count. A genuine two-parameter function
// whose tokens happen to double the outputs would also match; the heuristic
// does not try to tell them apart.
package signature
