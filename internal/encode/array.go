package encode

import (
	"fmt"
	"strings"

	"github.com/macropower/toon/internal/lexical"
	"github.com/macropower/toon/internal/value"
)

// emitArray writes key's array value at depth, choosing among the inline,
// tabular, and list shapes in that priority order. key is already
// quote-rendered (or "" for a root array or
// a bare list-item array).
func emitArray(w *lineWriter, depth int, key string, arr []any, delimiter rune, opts Options) error {
	header := func(fieldList string) string {
		h := key + lengthBracket(len(arr), delimiter, opts.LengthMarker)
		if fieldList != "" {
			h += "{" + fieldList + "}"
		}

		return h + ":"
	}

	if len(arr) == 0 {
		w.writeLine(depth, header(""))

		return nil
	}

	if allPrimitives(arr) {
		tokens := make([]string, len(arr))
		for i, v := range arr {
			tokens[i] = primitiveToken(v, delimiter)
		}

		w.writeLine(depth, header("")+" "+strings.Join(tokens, string(delimiter)))

		return nil
	}

	if fields, ok := tabularFields(arr); ok {
		fieldTokens := make([]string, len(fields))
		for i, f := range fields {
			fieldTokens[i] = lexical.QuoteKey(f)
		}

		w.writeLine(depth, header(strings.Join(fieldTokens, string(delimiter))))

		for _, elem := range arr {
			obj, _ := elem.(*value.Object)

			row := make([]string, len(fields))
			for i, f := range fields {
				cell, _ := obj.Get(f)
				row[i] = primitiveToken(cell, delimiter)
			}

			w.writeLine(depth+1, strings.Join(row, string(delimiter)))
		}

		return nil
	}

	w.writeLine(depth, header(""))

	for i, elem := range arr {
		if err := emitListItem(w, depth+1, elem, opts); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}

	return nil
}

// allPrimitives reports whether every element of arr is a Value
// primitive (null, bool, number, or string) -- the eligibility test for
// the inline array form.
func allPrimitives(arr []any) bool {
	for _, v := range arr {
		switch v.(type) {
		case nil, bool, float64, string:
			continue
		default:
			return false
		}
	}

	return true
}

// tabularFields reports whether arr is eligible for the tabular form:
// non-empty, every element an object, every object sharing the same
// ordered key set as the first element, and every cell a primitive. On
// success it returns that shared field list.
func tabularFields(arr []any) ([]string, bool) {
	first, ok := arr[0].(*value.Object)
	if !ok || first.IsEmpty() {
		return nil, false
	}

	fields := first.Keys()

	for _, elem := range arr {
		obj, ok := elem.(*value.Object)
		if !ok || !obj.SameKeysInOrder(first) {
			return nil, false
		}

		for _, f := range fields {
			cell, _ := obj.Get(f)
			if !allPrimitives([]any{cell}) {
				return nil, false
			}
		}
	}

	return fields, true
}

// emitListItem writes one hyphen-prefixed list element at itemDepth. A
// primitive element is "- token"; an array element is a nested header
// glued onto the hyphen line, with its counted body at itemDepth+1; an
// object element places its first field on the hyphen line and its
// remaining sibling fields at itemDepth+1.
func emitListItem(w *lineWriter, itemDepth int, elem any, opts Options) error {
	switch x := elem.(type) {
	case []any:
		return emitHyphenArray(w, itemDepth, x, opts)

	case *value.Object:
		return emitHyphenObject(w, itemDepth, x, opts)

	default:
		w.writeLine(itemDepth, "- "+primitiveToken(x, opts.Delimiter))

		return nil
	}
}

// emitHyphenArray emits a list item that is itself an array: the header
// glued onto the "- " line, body (if any) at itemDepth+1. Nested arrays
// reset to the comma delimiter regardless of the document delimiter.
func emitHyphenArray(w *lineWriter, itemDepth int, arr []any, opts Options) error {
	nested := opts
	nested.Delimiter = ','

	return emitArrayWithLinePrefix(w, itemDepth, "- ", "", arr, nested)
}

// emitHyphenObject emits a list item that is an object. The first field
// rides the "- " line; if that field's value needs its own body (a
// non-empty nested object, or an array), the body is placed one level
// deeper than an ordinary sibling field would be -- at itemDepth+2
// rather than itemDepth+1 -- specifically when the body has no
// self-terminating count (a nested object has none; an array does,
// because its header declares the length), so that the decoder can
// tell "child of field one" apart from "next sibling field of the item"
// by depth alone.
func emitHyphenObject(w *lineWriter, itemDepth int, obj *value.Object, opts Options) error {
	if obj.IsEmpty() {
		w.writeLine(itemDepth, "-")

		return nil
	}

	first := obj.Fields[0]
	quotedKey := lexical.QuoteKey(first.Key)

	switch fv := first.Value.(type) {
	case []any:
		nested := opts
		nested.Delimiter = ','

		if err := emitArrayWithLinePrefix(w, itemDepth, "- ", quotedKey, fv, nested); err != nil {
			return fmt.Errorf("field %q: %w", first.Key, err)
		}

	case *value.Object:
		if fv.IsEmpty() {
			w.writeLine(itemDepth, "- "+quotedKey+":")
		} else {
			w.writeLine(itemDepth, "- "+quotedKey+":")

			if err := emitObjectFields(w, itemDepth+2, fv, opts); err != nil {
				return fmt.Errorf("field %q: %w", first.Key, err)
			}
		}

	default:
		w.writeLine(itemDepth, "- "+quotedKey+": "+primitiveToken(fv, opts.Delimiter))
	}

	if len(obj.Fields) > 1 {
		rest := &value.Object{Fields: obj.Fields[1:]}
		if err := emitObjectFields(w, itemDepth+1, rest, opts); err != nil {
			return err
		}
	}

	return nil
}

// emitArrayWithLinePrefix behaves like emitArray, except its header line
// is prefixed with linePrefix (e.g. "- ") instead of plain indentation.
func emitArrayWithLinePrefix(w *lineWriter, depth int, linePrefix, key string, arr []any, opts Options) error {
	sub := &lineWriter{indentSize: w.indentSize}
	if err := emitArray(sub, 0, key, arr, opts.Delimiter, opts); err != nil {
		return err
	}

	spliceFirstLine(w, depth, sub, linePrefix)

	return nil
}

// spliceFirstLine re-bases lines written to sub at relative depth 0 onto
// w starting at depth: sub's line at relative depth r lands at absolute
// depth depth+r, and the very first line additionally gets prefix glued
// on immediately after its indentation.
func spliceFirstLine(w *lineWriter, depth int, sub *lineWriter, prefix string) {
	lines := strings.Split(sub.String(), "\n")
	base := strings.Repeat(" ", depth*w.indentSize)

	for i, line := range lines {
		if w.wrote {
			w.b.WriteByte('\n')
		}

		w.wrote = true

		if i == 0 {
			w.b.WriteString(base + prefix + line)
		} else {
			w.b.WriteString(base + line)
		}
	}
}
