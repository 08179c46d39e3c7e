// Package question models a problem fetched from the question bank and the
// client that fetches it.
//
// A [Record] is fetched once per invocation with [Client.Fetch] and never
// mutated afterwards. Its JSON-encoded parameter metadata decodes into a
// [Meta] whose [Param] order is the call order of the reference function.
package question
