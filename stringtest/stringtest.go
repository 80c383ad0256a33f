// Package stringtest builds multi-line string fixtures for tests.
// TOON documents are indentation-significant, so expected encoder
// output and decoder input read much better as one argument per line
// than as a single constant full of escaped newlines.
package stringtest

import "strings"

// JoinLF joins lines with LF separators:
//
//	want := stringtest.JoinLF(
//		"users[2]{id,name}:",
//		"  1,Ada",
//		"  2,Bob",
//	) // -> "users[2]{id,name}:\n  1,Ada\n  2,Bob"
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}

// JoinCRLF joins lines with CRLF separators, for inputs that carry
// Windows line endings through the decoder as literal content.
func JoinCRLF(lines ...string) string {
	return strings.Join(lines, "\r\n")
}

// Input dedents a raw string literal for use as test input: one leading
// and one trailing newline are removed, the common leading whitespace
// of the non-blank lines is stripped from every line, and
// whitespace-only lines become empty. This lets fixtures be written
// indented to match the surrounding test code:
//
//	in := stringtest.Input(`
//		user:
//		  id: 1`)
//	// -> "user:\n  id: 1"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")

	common := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if common == -1 || indent < common {
			common = indent
		}
	}

	if common <= 0 {
		common = 0
	}

	out := make([]string, len(lines))

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = ""

			continue
		}

		out[i] = line[common:]
	}

	return strings.Join(out, "\n")
}
