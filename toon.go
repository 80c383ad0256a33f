// Package toon implements TOON (Token-Oriented Object Notation), an
// indentation-significant, JSON-equivalent serialization format tuned
// for LLM prompt token efficiency. It normalizes arbitrary Go values
// into a small closed value model, encodes that model to TOON text, and
// decodes TOON text back into it.
package toon

import (
	"errors"
	"fmt"

	"github.com/macropower/toon/internal/decode"
	"github.com/macropower/toon/internal/encode"
	"github.com/macropower/toon/internal/synerr"
	"github.com/macropower/toon/internal/value"
)

// ErrInvalidDelimiter is returned by [ParseDelimiter] for an unrecognized
// delimiter string.
var ErrInvalidDelimiter = errors.New("toon: invalid delimiter")

// Encode renders v as TOON text. v may be any Go value reachable from
// package toon/internal/value's normalization rules: structs, maps,
// slices, pointers, and the usual scalar kinds, in addition to values
// already shaped as nil/bool/float64/string/[]any/*value.Object.
func Encode(v any, opts ...EncodeOption) (string, error) {
	cfg := defaultEncodeOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	normalized, err := value.From(v)
	if err != nil {
		return "", fmt.Errorf("toon: %w", err)
	}

	return encode.Encode(normalized, encode.Options{
		IndentSize:   cfg.indentSize,
		Delimiter:    cfg.delimiter.rune(),
		LengthMarker: cfg.lengthMarker,
	})
}

// Decode parses TOON text into a Go value built from nil, bool,
// float64, string, []any, and *map-like [*Object] values. Objects
// decode to *Object rather than map[string]any so that the source's key
// order survives the round trip.
func Decode(text string, opts ...DecodeOption) (any, error) {
	cfg := defaultDecodeOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return decode.Decode(text, decode.Options{
		IndentSize: cfg.indentSize,
		Strict:     cfg.strict,
	})
}

// Marshal is an alias for [Encode], named to match the encoding/json
// convention for callers migrating existing code.
func Marshal(v any, opts ...EncodeOption) (string, error) {
	return Encode(v, opts...)
}

// Unmarshal is an alias for [Decode], named to match the encoding/json
// convention for callers migrating existing code.
func Unmarshal(text string, opts ...DecodeOption) (any, error) {
	return Decode(text, opts...)
}

// Object is the ordered key/value mapping TOON objects decode into.
type Object = value.Object

// Field is a single key/value pair of an [Object].
type Field = value.Field

// NewObject constructs an ordered Object from the given fields, in order.
func NewObject(fields ...Field) *Object {
	return value.NewObject(fields...)
}

// ErrorKind identifies the failure condition a [SyntaxError]
// represents.
type ErrorKind = synerr.Kind

// Error kind constants, re-exported from the internal taxonomy so
// callers never need an internal import path to match on them.
const (
	ErrKindEmptyInput              = synerr.EmptyInput
	ErrKindUnterminatedString      = synerr.UnterminatedString
	ErrKindInvalidEscape           = synerr.InvalidEscape
	ErrKindMissingColon            = synerr.MissingColon
	ErrKindInvalidHeader           = synerr.InvalidHeader
	ErrKindLengthMismatch          = synerr.LengthMismatch
	ErrKindTabularWidthMismatch    = synerr.TabularWidthMismatch
	ErrKindStrictIndentNotMultiple = synerr.StrictIndentNotMultiple
	ErrKindStrictTabInIndent       = synerr.StrictTabInIndent
	ErrKindStrictBlankInArray      = synerr.StrictBlankInArray
	ErrKindDelimiterMismatch       = synerr.DelimiterMismatch
)

// SyntaxError is the concrete error type [Decode] returns for malformed
// input. Line is 1-based and zero when no specific line applies.
type SyntaxError = synerr.Error

// Sentinel errors usable with errors.Is against any [SyntaxError],
// regardless of its line number or message.
var (
	ErrEmptyInput              = synerr.Sentinel(synerr.EmptyInput)
	ErrUnterminatedString      = synerr.Sentinel(synerr.UnterminatedString)
	ErrInvalidEscape           = synerr.Sentinel(synerr.InvalidEscape)
	ErrMissingColon            = synerr.Sentinel(synerr.MissingColon)
	ErrInvalidHeader           = synerr.Sentinel(synerr.InvalidHeader)
	ErrLengthMismatch          = synerr.Sentinel(synerr.LengthMismatch)
	ErrTabularWidthMismatch    = synerr.Sentinel(synerr.TabularWidthMismatch)
	ErrStrictIndentNotMultiple = synerr.Sentinel(synerr.StrictIndentNotMultiple)
	ErrStrictTabInIndent       = synerr.Sentinel(synerr.StrictTabInIndent)
	ErrStrictBlankInArray      = synerr.Sentinel(synerr.StrictBlankInArray)
	ErrDelimiterMismatch       = synerr.Sentinel(synerr.DelimiterMismatch)
)
