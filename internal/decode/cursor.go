// Package decode implements the recursive-descent decoder:
// reconstructing a Value tree from the indentation-aware lines produced
// by package scan, enforcing length markers, row counts, and (in strict
// mode) the absence of surplus items and blank lines inside arrays.
package decode

import "github.com/macropower/toon/internal/scan"

// Cursor advances over a slice of [scan.Line]s: a simple index into the
// line slice with peek/next/at-end and depth-gated peeking, shared by
// every recursive decoding routine.
type Cursor struct {
	lines []scan.Line
	pos   int
}

// NewCursor wraps lines for sequential, depth-aware consumption.
func NewCursor(lines []scan.Line) *Cursor {
	return &Cursor{lines: lines}
}

// AtEnd reports whether every line has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.lines)
}

// Peek returns the next line without consuming it, and whether one
// exists.
func (c *Cursor) Peek() (scan.Line, bool) {
	if c.AtEnd() {
		return scan.Line{}, false
	}

	return c.lines[c.pos], true
}

// Next consumes and returns the next line.
func (c *Cursor) Next() (scan.Line, bool) {
	line, ok := c.Peek()
	if ok {
		c.pos++
	}

	return line, ok
}

// PeekAtDepth returns the next line only if it exists and its depth is
// exactly d; otherwise it reports false without consuming anything.
func (c *Cursor) PeekAtDepth(d int) (scan.Line, bool) {
	line, ok := c.Peek()
	if !ok || line.Depth != d {
		return scan.Line{}, false
	}

	return line, true
}

// LastLineNumber returns the line number of the most recently consumed
// line, or 0 if nothing has been consumed yet -- used to anchor error
// messages when a routine runs off the end of input.
func (c *Cursor) LastLineNumber() int {
	if c.pos == 0 {
		return 0
	}

	return c.lines[c.pos-1].LineNumber
}
