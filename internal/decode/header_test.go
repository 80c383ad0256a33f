package decode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/toon/internal/decode"
)

func TestParseKey(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    string
		wantKey  string
		wantRest string
		wantOK   bool
	}{
		"bare key":        {input: "name: 1", wantKey: "name", wantRest: ": 1", wantOK: true},
		"dotted key":      {input: "a.b: x", wantKey: "a.b", wantRest: ": x", wantOK: true},
		"quoted key":      {input: `"first name": x`, wantKey: "first name", wantRest: ": x", wantOK: true},
		"quoted escapes":  {input: `"a\"b": x`, wantKey: `a"b`, wantRest: ": x", wantOK: true},
		"empty input":     {input: "", wantOK: false},
		"starts with [":   {input: "[2]:", wantOK: false},
		"starts with :":   {input: ": x", wantOK: false},
		"unclosed quote":  {input: `"abc`, wantOK: false},
		"key before [":    {input: "items[2]:", wantKey: "items", wantRest: "[2]:", wantOK: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			key, rest, ok := decode.ParseKey(tc.input)
			require.Equal(t, tc.wantOK, ok)

			if ok {
				assert.Equal(t, tc.wantKey, key)
				assert.Equal(t, tc.wantRest, rest)
			}
		})
	}
}

func TestTryParseHeader(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input       string
		want        decode.Header
		wantInline  string
		wantMatched bool
		wantErr     bool
	}{
		"keyed inline header": {
			input:       "tags[2]: a,b",
			want:        decode.Header{Key: "tags", HasKey: true, Length: 2, Delimiter: ','},
			wantInline:  "a,b",
			wantMatched: true,
		},
		"root header": {
			input:       "[3]: 1,2,3",
			want:        decode.Header{Length: 3, Delimiter: ','},
			wantInline:  "1,2,3",
			wantMatched: true,
		},
		"tabular header": {
			input:       "items[2]{sku,qty}:",
			want:        decode.Header{Key: "items", HasKey: true, Length: 2, Delimiter: ',', Fields: []string{"sku", "qty"}},
			wantMatched: true,
		},
		"tab delimiter": {
			input:       "items[2\t]{id\tname}:",
			want:        decode.Header{Key: "items", HasKey: true, Length: 2, Delimiter: '\t', Fields: []string{"id", "name"}},
			wantMatched: true,
		},
		"pipe delimiter": {
			input:       "nums[3|]: 1|2|3",
			want:        decode.Header{Key: "nums", HasKey: true, Length: 3, Delimiter: '|'},
			wantInline:  "1|2|3",
			wantMatched: true,
		},
		"length marker": {
			input:       "xs[#2]: a,b",
			want:        decode.Header{Key: "xs", HasKey: true, Length: 2, LengthMarker: true, Delimiter: ','},
			wantInline:  "a,b",
			wantMatched: true,
		},
		"quoted field names": {
			input:       `rows[1]{"a b",c}:`,
			want:        decode.Header{Key: "rows", HasKey: true, Length: 1, Delimiter: ',', Fields: []string{"a b", "c"}},
			wantMatched: true,
		},
		"quoted key header": {
			input:       `"my list"[1]: x`,
			want:        decode.Header{Key: "my list", HasKey: true, Length: 1, Delimiter: ','},
			wantInline:  "x",
			wantMatched: true,
		},
		"empty array": {
			input:       "xs[0]:",
			want:        decode.Header{Key: "xs", HasKey: true, Length: 0, Delimiter: ','},
			wantMatched: true,
		},
		"plain key value is not a header": {
			input:       "name: x",
			wantMatched: false,
		},
		"no brackets at all": {
			input:       "hello world",
			wantMatched: false,
		},
		"missing close bracket": {
			input:       "xs[2: a",
			wantMatched: true,
			wantErr:     true,
		},
		"no length digits": {
			input:       "xs[]:",
			wantMatched: true,
			wantErr:     true,
		},
		"garbage in brackets": {
			input:       "xs[2x]:",
			wantMatched: true,
			wantErr:     true,
		},
		"missing colon": {
			input:       "xs[2] a,b",
			wantMatched: true,
			wantErr:     true,
		},
		"unclosed field list": {
			input:       "xs[2]{a,b: 1",
			wantMatched: true,
			wantErr:     true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h, inline, matched, err := decode.TryParseHeader(tc.input, 1)
			require.Equal(t, tc.wantMatched, matched)

			if !matched {
				return
			}

			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, h)
			assert.Equal(t, tc.wantInline, inline)
		})
	}
}
