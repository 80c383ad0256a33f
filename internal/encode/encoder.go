// Package encode implements the TOON encoder: a recursive walk
// over a Value tree that picks, for each array, between inline
// primitive, tabular, and list surface shapes, and emits indentation-
// significant lines through a small line writer.
package encode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/macropower/toon/internal/lexical"
	"github.com/macropower/toon/internal/value"
)

// Options configures the encoder's output. Delimiter is one of ',',
// '\t', '|'. LengthMarker, when true, prefixes every array length with
// '#'.
type Options struct {
	IndentSize   int
	Delimiter    rune
	LengthMarker bool
}

// Encode renders v (already normalized into the closed Value model -- nil,
// bool, float64, string, []any, *value.Object) as TOON text.
func Encode(v any, opts Options) (string, error) {
	w := &lineWriter{indentSize: opts.IndentSize}

	switch x := v.(type) {
	case *value.Object:
		if x.IsEmpty() {
			return "", nil
		}

		if err := emitObjectFields(w, 0, x, opts); err != nil {
			return "", err
		}
	case []any:
		if err := emitArray(w, 0, "", x, opts.Delimiter, opts); err != nil {
			return "", err
		}
	default:
		w.writeLine(0, primitiveToken(x, opts.Delimiter))
	}

	return w.String(), nil
}

// lineWriter accumulates output lines, each prefixed by depth*indentSize
// spaces, with no trailing newline on the final line.
type lineWriter struct {
	b          strings.Builder
	indentSize int
	wrote      bool
}

func (w *lineWriter) writeLine(depth int, content string) {
	if w.wrote {
		w.b.WriteByte('\n')
	}

	w.wrote = true

	for range depth * w.indentSize {
		w.b.WriteByte(' ')
	}

	w.b.WriteString(content)
}

func (w *lineWriter) String() string {
	return w.b.String()
}

// emitObjectFields writes each key:value line of obj at the given depth.
func emitObjectFields(w *lineWriter, depth int, obj *value.Object, opts Options) error {
	for _, field := range obj.Fields {
		if err := emitField(w, depth, field.Key, field.Value, opts); err != nil {
			return fmt.Errorf("field %q: %w", field.Key, err)
		}
	}

	return nil
}

// emitField writes one object field: a key line, plus whatever
// continuation lines its value requires.
func emitField(w *lineWriter, depth int, key string, v any, opts Options) error {
	quotedKey := lexical.QuoteKey(key)

	switch x := v.(type) {
	case []any:
		return emitArray(w, depth, quotedKey, x, opts.Delimiter, opts)

	case *value.Object:
		if x.IsEmpty() {
			w.writeLine(depth, quotedKey+":")

			return nil
		}

		w.writeLine(depth, quotedKey+":")

		return emitObjectFields(w, depth+1, x, opts)

	default:
		w.writeLine(depth, quotedKey+": "+primitiveToken(x, opts.Delimiter))

		return nil
	}
}

// primitiveToken renders a scalar Value as its TOON token: quoted where
// the lexical rules require it, bare otherwise.
func primitiveToken(v any, delimiter rune) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case bool:
		if x {
			return "true"
		}

		return "false"
	case float64:
		return formatNumber(x)
	case string:
		return lexical.QuoteString(x, delimiter)
	default:
		return lexical.QuoteString(fmt.Sprint(x), delimiter)
	}
}

// formatNumber renders a float64 in strconv's shortest 'g' form: the
// shortest decimal that round-trips, with no trailing ".0" noise the
// TOON grammar doesn't require. Large and small magnitudes come out in
// exponent form (1000000 prints as "1e+06", 0.00001 as "1e-05").
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func delimiterSuffix(d rune) string {
	switch d {
	case '\t':
		return "\t"
	case '|':
		return "|"
	default:
		return ""
	}
}

func lengthBracket(n int, delimiter rune, lengthMarker bool) string {
	marker := ""
	if lengthMarker {
		marker = "#"
	}

	return "[" + marker + strconv.Itoa(n) + delimiterSuffix(delimiter) + "]"
}
