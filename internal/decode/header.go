package decode

import (
	"strconv"
	"strings"

	"github.com/macropower/toon/internal/lexical"
	"github.com/macropower/toon/internal/synerr"
)

// Header is a parsed array header: the bracketed length/delimiter/marker
// declaration, optional tabular field list, and optional key that
// precedes it.
type Header struct {
	Key          string
	HasKey       bool
	Length       int
	LengthMarker bool
	Delimiter    rune
	Fields       []string // nil when no "{...}" field list was declared
}

// ParseKey consumes a key token (a quoted string, or a bare run of
// identifier characters) from the front of s and returns it along with
// whatever follows. ok is false when s does not begin with a valid key
// at all (e.g. it starts with '[' or ':').
func ParseKey(s string) (key string, rest string, ok bool) {
	if s == "" {
		return "", s, false
	}

	if s[0] == '"' {
		end := lexical.FindClosingQuote(s, 0)
		if end == -1 {
			return "", s, false
		}

		k, uerr := lexical.Unquote(s[:end+1])
		if uerr != nil {
			return "", s, false
		}

		return k, s[end+1:], true
	}

	i := 0
	for i < len(s) && isKeyChar(s[i]) {
		i++
	}

	if i == 0 {
		return "", s, false
	}

	return s[:i], s[i:], true
}

func isKeyChar(b byte) bool {
	return b == '_' || b == '.' ||
		(b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

// TryParseHeader attempts to parse s (a line's content, with any leading
// "- " already stripped) as an array header. matched is false, with a
// nil error, when s simply isn't shaped like a header (it neither starts
// with '[' nor is a key immediately followed by '['); a keyless "[N]..."
// matches as a root header with an empty Key. No match is the normal "this line is a
// plain key:value" case, not a failure. A non-nil error means s looked
// like a header but was malformed.
func TryParseHeader(s string, lineNumber int) (h Header, inline string, matched bool, err error) {
	key, rest, hasKey := ParseKey(s)
	if !hasKey {
		rest = s
		key = ""
	}

	if rest == "" || rest[0] != '[' {
		return Header{}, "", false, nil
	}

	closeIdx := strings.IndexByte(rest, ']')
	if closeIdx == -1 {
		return Header{}, "", true, synerr.At(lineNumber, synerr.InvalidHeader, "missing closing ']' in %q", s)
	}

	inner := rest[1:closeIdx]

	pos := 0

	lengthMarker := false
	if pos < len(inner) && inner[pos] == '#' {
		lengthMarker = true
		pos++
	}

	digitsStart := pos
	for pos < len(inner) && inner[pos] >= '0' && inner[pos] <= '9' {
		pos++
	}

	if pos == digitsStart {
		return Header{}, "", true, synerr.At(lineNumber, synerr.InvalidHeader, "expected array length in %q", s)
	}

	length, convErr := strconv.Atoi(inner[digitsStart:pos])
	if convErr != nil {
		return Header{}, "", true, synerr.At(lineNumber, synerr.InvalidHeader, "invalid array length in %q", s)
	}

	delimiter := ','

	if pos < len(inner) {
		switch inner[pos] {
		case '\t':
			delimiter = '\t'
			pos++
		case '|':
			delimiter = '|'
			pos++
		default:
			return Header{}, "", true, synerr.At(lineNumber, synerr.InvalidHeader,
				"unexpected character %q in array header", inner[pos])
		}
	}

	if pos != len(inner) {
		return Header{}, "", true, synerr.At(lineNumber, synerr.InvalidHeader,
			"unexpected trailing content in array header brackets %q", inner)
	}

	after := rest[closeIdx+1:]

	var fields []string

	if strings.HasPrefix(after, "{") {
		fieldEnd := strings.IndexByte(after, '}')
		if fieldEnd == -1 {
			return Header{}, "", true, synerr.At(lineNumber, synerr.InvalidHeader, "missing closing '}' in %q", s)
		}

		rawFields := lexical.ParseDelimitedValues(after[1:fieldEnd], byte(delimiter))
		fields = make([]string, len(rawFields))

		for i, f := range rawFields {
			if len(f) >= 2 && f[0] == '"' {
				uq, uerr := lexical.Unquote(f)
				if uerr != nil {
					return Header{}, "", true, synerr.At(lineNumber, synerr.InvalidHeader, "invalid quoted field name %q", f)
				}

				fields[i] = uq
			} else {
				fields[i] = f
			}
		}

		after = after[fieldEnd+1:]
	}

	if !strings.HasPrefix(after, ":") {
		return Header{}, "", true, synerr.At(lineNumber, synerr.MissingColon, "array header missing ':' in %q", s)
	}

	h = Header{
		Key:          key,
		HasKey:       hasKey,
		Length:       length,
		LengthMarker: lengthMarker,
		Delimiter:    rune(delimiter),
		Fields:       fields,
	}

	return h, strings.TrimSpace(after[1:]), true, nil
}
