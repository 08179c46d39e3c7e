// Package literal converts raw test-case tokens into typed values and typed
// values back into source literals.
//
// [Parse] accepts the loosely typed token format of the question bank: null,
// booleans, single-quoted strings, decimal numbers, JSON compounds and, when
// the declared type is a string, bare text. [Serialize] produces source text
// that reads back as the same value.
package literal
