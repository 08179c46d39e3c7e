// Package htmltext converts hand-authored problem description markup into
// text.
//
// It is not a general HTML parser. It applies a fixed sequence of rewrite
// passes tuned to one markup dialect and produces two renderings:
//
//   - [Doc] keeps headings, emphasis, lists and inline code in a
//     markdown-like form and drops preformatted blocks. It is used for
//     generated documentation comments.
//   - [Plain] drops all formatting but keeps preformatted content. It is only
//     used as input to heuristic parsers.
//
// Entities are decoded after tags are stripped, so an escaped "&lt;" in the
// source is never mistaken for a tag.
package htmltext
