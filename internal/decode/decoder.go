package decode

import (
	"errors"
	"strings"

	"github.com/macropower/toon/internal/lexical"
	"github.com/macropower/toon/internal/scan"
	"github.com/macropower/toon/internal/synerr"
	"github.com/macropower/toon/internal/value"
)

// Options configures the decoder. IndentSize is the grid unit used to
// resolve each line's depth; Strict enables the strict-mode
// checks (tabs in indentation, indents that aren't exact multiples of
// IndentSize, blank lines inside an array body, and surplus items beyond
// a declared length).
type Options struct {
	IndentSize int
	Strict     bool
}

// Decode parses text into a Value tree (nil, bool, float64, string,
// []any, or *value.Object).
func Decode(text string, opts Options) (any, error) {
	if strings.TrimSpace(text) == "" {
		return nil, synerr.New(synerr.EmptyInput, "input has no non-blank content")
	}

	result, violations := scan.Scan(text, opts.IndentSize, opts.Strict)
	if len(violations) > 0 {
		return nil, violationError(violations[0])
	}

	if len(result.Lines) == 0 {
		return nil, synerr.New(synerr.EmptyInput, "input has no non-blank content")
	}

	d := &decoder{cur: NewCursor(result.Lines), blanks: result.Blanks, strict: opts.Strict}

	first, _ := d.cur.Peek()

	// A header on line one settles the dispatch outright: a bare
	// "[N]..." header means the document is that array, while a keyed
	// one ("items[2]: ...") opens an object whose first field it is.
	h, _, matched, err := TryParseHeader(first.Content, first.LineNumber)
	if err != nil {
		return nil, err
	}

	if matched {
		if !h.HasKey {
			return d.decodeRootArray()
		}

		return d.decodeObjectFields(0)
	}

	if len(result.Lines) == 1 && !isKeyValueLine(first.Content) {
		v, perr := lexical.ParsePrimitiveToken(first.Content)
		if perr != nil {
			return nil, tokenError(first.LineNumber, first.Content, perr)
		}

		return v, nil
	}

	return d.decodeObjectFields(0)
}

func violationError(v scan.Violation) error {
	switch v.Kind {
	case scan.TabInIndent:
		return synerr.At(v.LineNumber, synerr.StrictTabInIndent, "tab character in leading indentation")
	default:
		return synerr.At(v.LineNumber, synerr.StrictIndentNotMultiple, "indent is not a multiple of the indent size")
	}
}

type decoder struct {
	cur    *Cursor
	blanks []scan.Blank
	strict bool
}

// decodeRootArray handles the top-level-array entry path: a document
// whose first (and only top-level) construct is an array header at
// depth 0, with no enclosing object.
func (d *decoder) decodeRootArray() (any, error) {
	line, _ := d.cur.Next()

	h, inline, _, err := TryParseHeader(line.Content, line.LineNumber)
	if err != nil {
		return nil, err
	}

	return d.decodeArrayBody(0, line.LineNumber, h, inline)
}

// decodeObjectFields reads consecutive lines at depth as object fields
// until the depth changes or input ends.
func (d *decoder) decodeObjectFields(depth int) (*value.Object, error) {
	obj := value.NewObject()

	for {
		line, ok := d.cur.PeekAtDepth(depth)
		if !ok {
			break
		}

		h, inline, matched, err := TryParseHeader(line.Content, line.LineNumber)
		if err != nil {
			return nil, err
		}

		if matched {
			d.cur.Next()

			arr, err := d.decodeArrayBody(depth, line.LineNumber, h, inline)
			if err != nil {
				return nil, err
			}

			obj.Set(h.Key, arr)

			continue
		}

		key, rest, ok := ParseKey(line.Content)
		if !ok || rest == "" || rest[0] != ':' {
			return nil, synerr.At(line.LineNumber, synerr.MissingColon, "expected %q in %q", ":", line.Content)
		}

		d.cur.Next()

		valuePart := strings.TrimSpace(rest[1:])

		if valuePart != "" {
			v, perr := lexical.ParsePrimitiveToken(valuePart)
			if perr != nil {
				return nil, tokenError(line.LineNumber, valuePart, perr)
			}

			obj.Set(key, v)

			continue
		}

		if _, hasChild := d.cur.PeekAtDepth(depth + 1); !hasChild {
			obj.Set(key, value.NewObject())

			continue
		}

		nested, err := d.decodeObjectFields(depth + 1)
		if err != nil {
			return nil, err
		}

		obj.Set(key, nested)
	}

	return obj, nil
}

// decodeArrayBody consumes an array's body immediately following its
// already-parsed header. headerLine is the line number the header
// itself was read from, and headerDepth is that line's depth: body
// content (tabular rows or list items) sits at headerDepth+1, per the
// uniform "body is one level deeper than its own header" rule that
// holds everywhere a header appears, whether at the document's own
// depth or glued onto a list item's hyphen line.
func (d *decoder) decodeArrayBody(headerDepth, headerLine int, h Header, inline string) (any, error) {
	switch {
	case h.Fields != nil:
		return d.decodeTabularBody(headerDepth, headerLine, h)
	case inline != "":
		return d.decodeInlineBody(headerLine, h, inline)
	case h.Length == 0:
		return []any{}, nil
	default:
		return d.decodeListBody(headerDepth, headerLine, h)
	}
}

func (d *decoder) decodeInlineBody(headerLine int, h Header, inline string) (any, error) {
	tokens := lexical.ParseDelimitedValues(inline, byte(h.Delimiter))
	if len(tokens) != h.Length {
		return nil, synerr.At(headerLine, synerr.LengthMismatch,
			"array declares length %d but inline body has %d value(s)", h.Length, len(tokens))
	}

	values := make([]any, len(tokens))

	for i, t := range tokens {
		v, perr := lexical.ParsePrimitiveToken(t)
		if perr != nil {
			return nil, tokenError(headerLine, t, perr)
		}

		values[i] = v
	}

	return values, nil
}

func (d *decoder) decodeTabularBody(headerDepth, headerLine int, h Header) (any, error) {
	rowDepth := headerDepth + 1

	values := make([]any, 0, h.Length)

	var firstLine, lastLine int

	for i := 0; i < h.Length; i++ {
		line, ok := d.cur.PeekAtDepth(rowDepth)
		if !ok || isKeyValueLine(line.Content) {
			// A line with an unquoted ':' at row depth is a sibling
			// field of the enclosing list item, not a row.
			return nil, synerr.At(d.cur.LastLineNumber(), synerr.LengthMismatch,
				"array declares length %d but only %d row(s) present", h.Length, i)
		}

		d.cur.Next()

		if i == 0 {
			firstLine = line.LineNumber
		}

		lastLine = line.LineNumber

		cells := lexical.ParseDelimitedValues(line.Content, byte(h.Delimiter))
		if len(cells) != len(h.Fields) {
			return nil, rowWidthError(line.LineNumber, line.Content, h, len(cells))
		}

		obj := value.NewObject()

		for j, f := range h.Fields {
			v, perr := lexical.ParsePrimitiveToken(cells[j])
			if perr != nil {
				return nil, tokenError(line.LineNumber, cells[j], perr)
			}

			obj.Set(f, v)
		}

		values = append(values, obj)
	}

	if d.strict {
		if next, ok := d.cur.PeekAtDepth(rowDepth); ok && !isKeyValueLine(next.Content) {
			return nil, synerr.At(next.LineNumber, synerr.LengthMismatch,
				"surplus row beyond declared length %d", h.Length)
		}

		if blank, ok := d.blankBetween(firstLine, lastLine); ok {
			return nil, synerr.At(blank.LineNumber, synerr.StrictBlankInArray,
				"blank line inside tabular array body")
		}
	}

	return values, nil
}

// tokenError maps a lexical token-parse failure onto the decode error
// taxonomy with line context.
func tokenError(line int, token string, err error) error {
	kind := synerr.UnterminatedString
	if errors.Is(err, lexical.ErrInvalidEscape) {
		kind = synerr.InvalidEscape
	}

	return synerr.At(line, kind, "%s in %q", err, token)
}

// isKeyValueLine reports whether content carries an unquoted ':' --
// the shared test for "does this line open a field", used to separate
// single-line primitives from one-field objects at the document root
// and key-value lines from tabular rows (whose cells only ever contain
// colons inside quotes).
func isKeyValueLine(content string) bool {
	return lexical.FindUnquotedChar(content, ':') != -1
}

func (d *decoder) decodeListBody(headerDepth, headerLine int, h Header) (any, error) {
	itemDepth := headerDepth + 1

	values := make([]any, 0, h.Length)

	var firstLine, lastLine int

	for i := 0; i < h.Length; i++ {
		line, ok := d.cur.PeekAtDepth(itemDepth)
		if !ok || !strings.HasPrefix(line.Content, "-") {
			return nil, synerr.At(d.cur.LastLineNumber(), synerr.LengthMismatch,
				"array declares length %d but only %d item(s) present", h.Length, i)
		}

		if i == 0 {
			firstLine = line.LineNumber
		}

		item, err := d.decodeListItem(itemDepth)
		if err != nil {
			return nil, err
		}

		lastLine = d.cur.LastLineNumber()

		values = append(values, item)
	}

	if d.strict {
		if next, ok := d.cur.PeekAtDepth(itemDepth); ok && strings.HasPrefix(next.Content, "-") {
			return nil, synerr.At(next.LineNumber, synerr.LengthMismatch,
				"surplus item beyond declared length %d", h.Length)
		}

		if blank, ok := d.blankBetween(firstLine, lastLine); ok {
			return nil, synerr.At(blank.LineNumber, synerr.StrictBlankInArray,
				"blank line inside list array body")
		}
	}

	return values, nil
}

// rowWidthError classifies a tabular row whose cell count disagrees
// with the header's field count. When splitting the row by one of the
// other delimiters would have produced the declared width, the header
// and body disagree about the delimiter; otherwise the row is simply
// the wrong width.
func rowWidthError(lineNumber int, content string, h Header, got int) error {
	for _, d := range []byte{',', '\t', '|'} {
		if rune(d) == h.Delimiter {
			continue
		}

		if len(lexical.ParseDelimitedValues(content, d)) == len(h.Fields) {
			return synerr.At(lineNumber, synerr.DelimiterMismatch,
				"row splits to %d value(s) with the declared delimiter but %d with %q", got, len(h.Fields), d)
		}
	}

	return synerr.At(lineNumber, synerr.TabularWidthMismatch,
		"row has %d value(s) but header declares %d field(s)", got, len(h.Fields))
}

// blankBetween reports the first recorded blank line strictly between
// first and last, if any -- the strict blank-line check, which
// applies only between an array's first and last item/row, not to
// blank lines elsewhere in the document.
func (d *decoder) blankBetween(first, last int) (scan.Blank, bool) {
	for _, b := range d.blanks {
		if b.LineNumber > first && b.LineNumber < last {
			return b, true
		}
	}

	return scan.Blank{}, false
}

// decodeListItem reads one "- "-prefixed item at itemDepth: a nested
// array, an object (first field glued to the hyphen line, remaining
// fields read at itemDepth+1), or a bare primitive.
func (d *decoder) decodeListItem(itemDepth int) (any, error) {
	line, _ := d.cur.Next()

	content := strings.TrimPrefix(line.Content, "-")
	content = strings.TrimPrefix(content, " ")

	if content == "" {
		return value.NewObject(), nil
	}

	if h, inline, matched, err := TryParseHeader(content, line.LineNumber); matched {
		if err != nil {
			return nil, err
		}

		arr, err := d.decodeArrayBody(itemDepth, line.LineNumber, h, inline)
		if err != nil {
			return nil, err
		}

		if !h.HasKey {
			return arr, nil
		}

		// A keyed header opens the item's field list; the remaining
		// sibling fields follow at the same depth its body occupied.
		obj := value.NewObject(value.Field{Key: h.Key, Value: arr})

		siblings, err := d.decodeObjectFields(itemDepth + 1)
		if err != nil {
			return nil, err
		}

		for _, f := range siblings.Fields {
			obj.Set(f.Key, f.Value)
		}

		return obj, nil
	}

	key, rest, ok := ParseKey(content)
	if !ok || rest == "" || rest[0] != ':' {
		v, perr := lexical.ParsePrimitiveToken(content)
		if perr != nil {
			return nil, tokenError(line.LineNumber, content, perr)
		}

		return v, nil
	}

	obj := value.NewObject()

	valuePart := strings.TrimSpace(rest[1:])

	if valuePart == "" {
		// The first field's value is a nested object with no inline
		// content. Its own fields are placed two depth levels below the
		// item (itemDepth+2) rather than one, because unlike a tabular
		// or list array body it carries no declared length: the extra
		// level is what lets the decoder tell "child of the first
		// field" apart from "next sibling field of the item" by depth
		// alone, since both would otherwise sit at itemDepth+1.
		if _, hasChild := d.cur.PeekAtDepth(itemDepth + 2); !hasChild {
			obj.Set(key, value.NewObject())
		} else {
			nested, err := d.decodeObjectFields(itemDepth + 2)
			if err != nil {
				return nil, err
			}

			obj.Set(key, nested)
		}
	} else {
		v, perr := lexical.ParsePrimitiveToken(valuePart)
		if perr != nil {
			return nil, tokenError(line.LineNumber, valuePart, perr)
		}

		obj.Set(key, v)
	}

	siblings, err := d.decodeObjectFields(itemDepth + 1)
	if err != nil {
		return nil, err
	}

	for _, f := range siblings.Fields {
		obj.Set(f.Key, f.Value)
	}

	return obj, nil
}
