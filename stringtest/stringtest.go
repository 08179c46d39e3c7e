// Package stringtest provides helpers for writing multi-line string
// expectations in tests.
package stringtest

import "strings"

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected generator output line by line.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"/**",
//		" * Two Sum (#1)",
//		" */",
//	) // -> "/**\n * Two Sum (#1)\n */"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// Input prepares an indented raw string literal for use as test input.
//
// One leading and one trailing newline are removed, the indentation shared by
// every non-blank line is stripped, and whitespace-only lines become empty.
// This keeps HTML and YAML fixtures readable inside test tables.
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")

	prefix := ""
	found := false

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			prefix = indent
			found = true

			continue
		}

		prefix = commonPrefix(prefix, indent)
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}

		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.Join(lines, "\n")
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return a[:i]
		}
	}

	return a[:n]
}
