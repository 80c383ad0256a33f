package lexical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/toon/internal/lexical"
)

func TestQuote(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"plain":           {input: "abc", want: `"abc"`},
		"empty":           {input: "", want: `""`},
		"backslash":       {input: `a\b`, want: `"a\\b"`},
		"double quote":    {input: `say "hi"`, want: `"say \"hi\""`},
		"newline":         {input: "a\nb", want: `"a\nb"`},
		"carriage return": {input: "a\rb", want: `"a\rb"`},
		"tab":             {input: "a\tb", want: `"a\tb"`},
		"emoji passes":    {input: "ok 👍", want: `"ok 👍"`},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, lexical.Quote(tc.input))
		})
	}
}

func TestUnquote(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		want    string
		wantErr bool
	}{
		"plain":            {input: `"abc"`, want: "abc"},
		"empty":            {input: `""`, want: ""},
		"all escapes":      {input: `"\\\"\n\r\t"`, want: "\\\"\n\r\t"},
		"unicode":          {input: `"héllo"`, want: "héllo"},
		"invalid escape":   {input: `"\q"`, wantErr: true},
		"dangling escape":  {input: `"a\"`, wantErr: true},
		"missing quotes":   {input: `abc`, wantErr: true},
		"too short":        {input: `"`, wantErr: true},
		"unicode escape":   {input: `"\u0041"`, wantErr: true},
		"zero escape":      {input: `"\0"`, wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := lexical.Unquote(tc.input)
			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		"with \"quotes\" and \\slashes\\",
		"tabs\tand\nnewlines\r",
		"delimiters ,|\t inside",
		"unicode héllo 👍",
	}

	for _, in := range inputs {
		got, err := lexical.Unquote(lexical.Quote(in))
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, in, got)
	}
}

func TestQuoteKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "name", lexical.QuoteKey("name"))
	assert.Equal(t, `"first name"`, lexical.QuoteKey("first name"))
	assert.Equal(t, `"42"`, lexical.QuoteKey("42"))
	assert.Equal(t, `""`, lexical.QuoteKey(""))
}

func TestQuoteString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", lexical.QuoteString("hello", ','))
	assert.Equal(t, `"true"`, lexical.QuoteString("true", ','))
	assert.Equal(t, `"a,b"`, lexical.QuoteString("a,b", ','))
	assert.Equal(t, "a,b", lexical.QuoteString("a,b", '|'))
	assert.Equal(t, `"05"`, lexical.QuoteString("05", ','))
}
