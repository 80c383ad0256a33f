// Package scan implements the line scanner: splitting decoder
// input into indentation-aware lines ahead of the recursive-descent
// decoder in package decode.
package scan

import "strings"

// Line is a single non-blank input line, with its indentation already
// resolved to a depth.
type Line struct {
	Raw        string // the full original line, unmodified
	Content    string // raw with the leading indent stripped
	Indent     int    // count of leading space characters
	Depth      int    // Indent / indentSize
	LineNumber int    // 1-based
}

// Blank records a whitespace-only line, kept separately from [Line] so
// strict-mode blank-line-inside-array validation can consult it without
// the decoder ever seeing blank lines as content.
type Blank struct {
	LineNumber int
	Indent     int
	Depth      int
}

// Result is the output of [Scan]: the non-blank lines in order, plus the
// blank-line records in line-number order. Strict-mode indentation
// violations are returned by [Scan] separately, not held here.
type Result struct {
	Lines  []Line
	Blanks []Blank
}

// Violation describes a single strict-mode indentation problem detected
// while scanning, reported with its originating line number.
type Violation struct {
	LineNumber int
	Kind       ViolationKind
}

// ViolationKind enumerates the two strict-mode scanning checks.
type ViolationKind int

const (
	// TabInIndent: a tab character appeared in the leading whitespace
	// region of a non-blank line.
	TabInIndent ViolationKind = iota
	// IndentNotMultiple: a non-blank line's indent is > 0 and not an
	// exact multiple of indentSize.
	IndentNotMultiple
)

// Scan splits text on '\n' into [Line] and [Blank] records. indentSize
// is the grid unit used to compute Depth. strict additionally collects
// [Violation]s for tabs in indentation and indents that aren't exact
// multiples of indentSize; when strict is false those two checks are
// skipped entirely (depth is still computed by floor division, and tabs
// are simply not counted as indentation width).
func Scan(text string, indentSize int, strict bool) (Result, []Violation) {
	var (
		result     Result
		violations []Violation
	)

	rawLines := strings.Split(text, "\n")

	for i, raw := range rawLines {
		lineNumber := i + 1

		indent, start, tabSeen := leadingIndent(raw)
		content := raw[start:]

		if strings.TrimSpace(content) == "" {
			result.Blanks = append(result.Blanks, Blank{
				LineNumber: lineNumber,
				Indent:     indent,
				Depth:      indent / indentSize,
			})

			continue
		}

		if strict {
			if tabSeen {
				violations = append(violations, Violation{LineNumber: lineNumber, Kind: TabInIndent})
			} else if indent > 0 && indent%indentSize != 0 {
				violations = append(violations, Violation{LineNumber: lineNumber, Kind: IndentNotMultiple})
			}
		}

		result.Lines = append(result.Lines, Line{
			Raw:        raw,
			Content:    content,
			Indent:     indent,
			Depth:      indent / indentSize,
			LineNumber: lineNumber,
		})
	}

	return result, violations
}

// leadingIndent measures the leading whitespace region: indent is the
// count of space characters (tabs do not add width), start is the byte
// offset where content begins, and tabSeen reports whether any tab
// appeared so strict mode can flag it. A line of " \t  x" has indent=3,
// start=4, tabSeen=true.
func leadingIndent(raw string) (indent, start int, tabSeen bool) {
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case ' ':
			indent++
		case '\t':
			tabSeen = true
		default:
			return indent, i, tabSeen
		}
	}

	return indent, len(raw), tabSeen
}
