package lexical

// FindClosingQuote scans s starting at openIdx+1 (which must index the
// opening '"') for the next unescaped '"', skipping `\X` pairs as a
// single atomic unit. It returns -1 if no closing quote is found.
func FindClosingQuote(s string, openIdx int) int {
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++ // consume the escaped character atomically, valid or not
		case '"':
			return i
		}
	}

	return -1
}

// FindUnquotedChar returns the index of the first occurrence of c in s
// that lies outside a double-quoted run, or -1 if none exists. An
// unterminated quoted run consumes the rest of s.
func FindUnquotedChar(s string, c byte) int {
	inQuotes := false

	for i := 0; i < len(s); i++ {
		switch {
		case inQuotes && s[i] == '\\':
			i++
		case s[i] == '"':
			inQuotes = !inQuotes
		case !inQuotes && s[i] == c:
			return i
		}
	}

	return -1
}

// ParseDelimitedValues splits s on the byte delimiter d, respecting a
// single level of double-quoted runs (a `\X` pair inside quotes is never
// treated as containing d or a quote character). Each resulting value is
// trimmed of surrounding whitespace. A leading or trailing empty value is
// preserved when adjacent to a delimiter; an entirely empty input yields
// an empty slice, matching the empty-array encoding (`key[0]:` with no
// body).
func ParseDelimitedValues(s string, d byte) []string {
	if s == "" {
		return nil
	}

	var (
		values   []string
		inQuotes bool
		start    int
	)

	for i := 0; i < len(s); i++ {
		switch {
		case inQuotes && s[i] == '\\':
			i++
		case s[i] == '"':
			inQuotes = !inQuotes
		case !inQuotes && s[i] == d:
			values = append(values, trimSpace(s[start:i]))
			start = i + 1
		}
	}

	values = append(values, trimSpace(s[start:]))

	return values
}

// trimSpace trims ASCII spaces, tabs, CRs and LFs from both ends without pulling in
// strings.TrimSpace's full Unicode-whitespace table; TOON trims only the
// whitespace it itself treats as insignificant around delimiters.
func trimSpace(s string) string {
	start := 0
	for start < len(s) && isSpace(s[start]) {
		start++
	}

	end := len(s)
	for end > start && isSpace(s[end-1]) {
		end--
	}

	return s[start:end]
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
