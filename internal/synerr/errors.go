// Package synerr defines the decode-time error taxonomy used by
// package decode (which also converts package scan's strict-mode
// violations into it), and re-exported by the root toon
// package so callers never need to import an internal path to use
// errors.Is/errors.As against it.
package synerr

import "fmt"

// Kind enumerates the decode failure kinds.
// Encode never raises runtime errors for well-formed values (non-finite
// numbers normalize to null before the encoder ever sees them), so Kind
// only covers decode-time failures.
type Kind int

const (
	// EmptyInput: input has no non-blank content.
	EmptyInput Kind = iota
	// UnterminatedString: a quoted run never closes.
	UnterminatedString
	// InvalidEscape: `\X` where X is outside the escape alphabet.
	InvalidEscape
	// MissingColon: a key was parsed without a trailing ':'.
	MissingColon
	// InvalidHeader: bracket contents don't parse as a length.
	InvalidHeader
	// LengthMismatch: declared N != actual item/row/value count.
	LengthMismatch
	// TabularWidthMismatch: a row's value count != the field count.
	TabularWidthMismatch
	// StrictIndentNotMultiple: indent > 0 not a multiple of indentSize
	// (strict mode only).
	StrictIndentNotMultiple
	// StrictTabInIndent: a tab appeared in leading whitespace (strict
	// mode only).
	StrictTabInIndent
	// StrictBlankInArray: a blank line appeared between the first and
	// last item/row of an array (strict mode only).
	StrictBlankInArray
	// DelimiterMismatch: a header declared one delimiter but the body's
	// row width disagrees with the declared field count.
	DelimiterMismatch
)

// String names the error kind, used in [Error]'s message.
func (k Kind) String() string {
	switch k {
	case EmptyInput:
		return "empty input"
	case UnterminatedString:
		return "unterminated string"
	case InvalidEscape:
		return "invalid escape sequence"
	case MissingColon:
		return "missing colon"
	case InvalidHeader:
		return "invalid array header"
	case LengthMismatch:
		return "length mismatch"
	case TabularWidthMismatch:
		return "tabular width mismatch"
	case StrictIndentNotMultiple:
		return "indent is not a multiple of the indent size"
	case StrictTabInIndent:
		return "tab character in indentation"
	case StrictBlankInArray:
		return "blank line inside array"
	case DelimiterMismatch:
		return "delimiter mismatch"
	default:
		return "unknown error"
	}
}

// Error is the concrete syntax error type raised by the decoder, including
// for the line scanner's violations. Line is 1-based and refers to the input text; it is zero when
// no specific line applies (e.g. [EmptyInput]).
type Error struct {
	Kind Kind
	Line int
	Msg  string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("toon: line %d: %s: %s", e.Line, e.Kind, e.Msg)
	}

	return fmt.Sprintf("toon: %s: %s", e.Kind, e.Msg)
}

// Is reports whether target is the sentinel for e's Kind, so callers can
// use errors.Is(err, toon.ErrLengthMismatch) without type-asserting
// *Error first.
func (e *Error) Is(target error) bool {
	sentinel, ok := target.(*sentinelError)

	return ok && sentinel.kind == e.Kind
}

// sentinelError is the unexported type behind each exported Err* value;
// it never carries a line number and exists purely as an errors.Is
// target.
type sentinelError struct {
	kind Kind
}

func (s *sentinelError) Error() string {
	return fmt.Sprintf("toon: %s", s.kind)
}

// Sentinel returns the errors.Is target for kind.
func Sentinel(kind Kind) error {
	return &sentinelError{kind: kind}
}

// At constructs an [Error] with a line number and formatted message.
func At(line int, kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// New constructs an [Error] with no associated line.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
