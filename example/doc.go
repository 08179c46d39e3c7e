// Package example recovers worked examples from problem description markup.
//
// [Extract] tries an ordered list of strategies and keeps the first that
// succeeds:
//
//  1. markers: explicit emphasized "Example N:" markers in the markup. Each
//     marker's region runs to the next marker, an emphasized "Constraints:" or
//     "Follow-up" label, or the end of the markup. When this strategy
//     succeeds the regions are removed from [Result.Remaining] so the
//     examples are not repeated in the description.
//  2. plain: a permissive scan of the [htmltext.Plain] rendering for
//     "Input: ... Output: ... [Explanation: ...]" runs with no markers at all.
//
// Extraction never fails. When no strategy matches, the result has no blocks
// and the original markup.
package example
