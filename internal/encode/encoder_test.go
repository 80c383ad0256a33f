package encode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/toon/internal/encode"
	"github.com/macropower/toon/internal/value"
	"github.com/macropower/toon/stringtest"
)

func defaultOpts() encode.Options {
	return encode.Options{IndentSize: 2, Delimiter: ','}
}

func mustEncode(t *testing.T, v any, opts encode.Options) string {
	t.Helper()

	got, err := encode.Encode(v, opts)
	require.NoError(t, err)

	return got
}

func TestEncodePrimitiveRoots(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input any
		want  string
	}{
		"nil":                  {input: nil, want: "null"},
		"true":                 {input: true, want: "true"},
		"false":                {input: false, want: "false"},
		"integer-valued float": {input: float64(42), want: "42"},
		"decimal":              {input: float64(-3.14), want: "-3.14"},
		"plain string":         {input: "hello", want: "hello"},
		"string with spaces":   {input: "hello world", want: "hello world"},
		"boolean-like string":  {input: "true", want: `"true"`},
		"numeric-like string":  {input: "42", want: `"42"`},
		"leading zero string":  {input: "05", want: `"05"`},
		"colon string":         {input: "a: b", want: `"a: b"`},
		"empty string":         {input: "", want: `""`},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, mustEncode(t, tc.input, defaultOpts()))
		})
	}
}

func TestEncodeArrayShapes(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input any
		want  string
	}{
		"inline primitives": {
			input: value.NewObject(value.Field{Key: "xs", Value: []any{float64(1), float64(2)}}),
			want:  "xs[2]: 1,2",
		},
		"empty array": {
			input: value.NewObject(value.Field{Key: "xs", Value: []any{}}),
			want:  "xs[0]:",
		},
		"root array": {
			input: []any{"a", "b"},
			want:  "[2]: a,b",
		},
		"root empty array": {
			input: []any{},
			want:  "[0]:",
		},
		"inline with null and bool": {
			input: value.NewObject(value.Field{Key: "xs", Value: []any{nil, true, "x"}}),
			want:  "xs[3]: null,true,x",
		},
		"tabular from uniform objects": {
			input: value.NewObject(value.Field{Key: "rows", Value: []any{
				value.NewObject(
					value.Field{Key: "id", Value: float64(1)},
					value.Field{Key: "name", Value: "Ada"},
				),
				value.NewObject(
					value.Field{Key: "id", Value: float64(2)},
					value.Field{Key: "name", Value: "Bob"},
				),
			}}),
			want: stringtest.JoinLF(
				"rows[2]{id,name}:",
				"  1,Ada",
				"  2,Bob",
			),
		},
		"list when keys reordered": {
			input: value.NewObject(value.Field{Key: "rows", Value: []any{
				value.NewObject(
					value.Field{Key: "a", Value: float64(1)},
					value.Field{Key: "b", Value: float64(2)},
				),
				value.NewObject(
					value.Field{Key: "b", Value: float64(3)},
					value.Field{Key: "a", Value: float64(4)},
				),
			}}),
			want: stringtest.JoinLF(
				"rows[2]:",
				"  - a: 1",
				"    b: 2",
				"  - b: 3",
				"    a: 4",
			),
		},
		"list when cell is not primitive": {
			input: value.NewObject(value.Field{Key: "rows", Value: []any{
				value.NewObject(value.Field{Key: "a", Value: []any{float64(1)}}),
				value.NewObject(value.Field{Key: "a", Value: []any{float64(2)}}),
			}}),
			want: stringtest.JoinLF(
				"rows[2]:",
				"  - a[1]: 1",
				"  - a[1]: 2",
			),
		},
		"list of mixed primitives and objects": {
			input: value.NewObject(value.Field{Key: "xs", Value: []any{
				"a",
				value.NewObject(value.Field{Key: "k", Value: "v"}),
			}}),
			want: stringtest.JoinLF(
				"xs[2]:",
				"  - a",
				"  - k: v",
			),
		},
		"nested array items": {
			input: value.NewObject(value.Field{Key: "grid", Value: []any{
				[]any{float64(1), float64(2)},
				[]any{float64(3)},
			}}),
			want: stringtest.JoinLF(
				"grid[2]:",
				"  - [2]: 1,2",
				"  - [1]: 3",
			),
		},
		"empty object list item": {
			input: value.NewObject(value.Field{Key: "xs", Value: []any{
				value.NewObject(),
				"a",
			}}),
			want: stringtest.JoinLF(
				"xs[2]:",
				"  -",
				"  - a",
			),
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, mustEncode(t, tc.input, defaultOpts()))
		})
	}
}

func TestEncodeListItemFieldLayout(t *testing.T) {
	t.Parallel()

	t.Run("array first field keeps siblings one level down", func(t *testing.T) {
		t.Parallel()

		v := value.NewObject(value.Field{Key: "items", Value: []any{
			value.NewObject(
				value.Field{Key: "nums", Value: []any{float64(1), float64(2)}},
				value.Field{Key: "name", Value: "First"},
			),
			"x",
		}})

		assert.Equal(t, stringtest.JoinLF(
			"items[2]:",
			"  - nums[2]: 1,2",
			"    name: First",
			"  - x",
		), mustEncode(t, v, defaultOpts()))
	})

	t.Run("nested object first field indents two levels", func(t *testing.T) {
		t.Parallel()

		v := value.NewObject(value.Field{Key: "items", Value: []any{
			value.NewObject(
				value.Field{Key: "meta", Value: value.NewObject(
					value.Field{Key: "author", Value: "Ada"},
				)},
				value.Field{Key: "name", Value: "First"},
			),
		}})

		assert.Equal(t, stringtest.JoinLF(
			"items[1]:",
			"  - meta:",
			"      author: Ada",
			"    name: First",
		), mustEncode(t, v, defaultOpts()))
	})

	t.Run("tabular first field rows align with siblings", func(t *testing.T) {
		t.Parallel()

		v := value.NewObject(value.Field{Key: "orders", Value: []any{
			value.NewObject(
				value.Field{Key: "lines", Value: []any{
					value.NewObject(
						value.Field{Key: "sku", Value: "A"},
						value.Field{Key: "qty", Value: float64(1)},
					),
					value.NewObject(
						value.Field{Key: "sku", Value: "B"},
						value.Field{Key: "qty", Value: float64(2)},
					),
				}},
				value.Field{Key: "status", Value: "open"},
			),
		}})

		assert.Equal(t, stringtest.JoinLF(
			"orders[1]:",
			"  - lines[2]{sku,qty}:",
			"    A,1",
			"    B,2",
			"    status: open",
		), mustEncode(t, v, defaultOpts()))
	})
}

func TestEncodeDelimiterScope(t *testing.T) {
	t.Parallel()

	t.Run("pipe delimiter suffixes headers and joins values", func(t *testing.T) {
		t.Parallel()

		v := value.NewObject(value.Field{Key: "xs", Value: []any{"a", "b"}})
		got := mustEncode(t, v, encode.Options{IndentSize: 2, Delimiter: '|'})
		assert.Equal(t, "xs[2|]: a|b", got)
	})

	t.Run("values containing only inactive delimiters stay bare", func(t *testing.T) {
		t.Parallel()

		v := value.NewObject(value.Field{Key: "xs", Value: []any{"a,b"}})
		got := mustEncode(t, v, encode.Options{IndentSize: 2, Delimiter: '\t'})
		assert.Equal(t, "xs[1\t]: a,b", got)
	})

	t.Run("nested arrays in list items reset to comma", func(t *testing.T) {
		t.Parallel()

		v := value.NewObject(value.Field{Key: "grid", Value: []any{
			[]any{float64(1), float64(2)},
			"x|y",
		}})

		got := mustEncode(t, v, encode.Options{IndentSize: 2, Delimiter: '|'})

		// The nested array's header carries no pipe suffix and joins
		// with commas; the primitive item still quotes against the
		// document delimiter.
		assert.Equal(t, stringtest.JoinLF(
			"grid[2|]:",
			"  - [2]: 1,2",
			`  - "x|y"`,
		), got)
	})
}

func TestEncodeLengthMarker(t *testing.T) {
	t.Parallel()

	v := value.NewObject(
		value.Field{Key: "xs", Value: []any{float64(1)}},
		value.Field{Key: "rows", Value: []any{
			value.NewObject(value.Field{Key: "a", Value: float64(1)}),
			value.NewObject(value.Field{Key: "a", Value: float64(2)}),
		}},
	)

	got := mustEncode(t, v, encode.Options{IndentSize: 2, Delimiter: ',', LengthMarker: true})
	assert.Equal(t, stringtest.JoinLF(
		"xs[#1]: 1",
		"rows[#2]{a}:",
		"  1",
		"  2",
	), got)
}

func TestEncodeKeysAndIndent(t *testing.T) {
	t.Parallel()

	t.Run("non-identifier keys quoted", func(t *testing.T) {
		t.Parallel()

		v := value.NewObject(
			value.Field{Key: "first name", Value: "Ada"},
			value.Field{Key: "42", Value: "x"},
		)

		assert.Equal(t, stringtest.JoinLF(
			`"first name": Ada`,
			`"42": x`,
		), mustEncode(t, v, defaultOpts()))
	})

	t.Run("custom indent width", func(t *testing.T) {
		t.Parallel()

		v := value.NewObject(value.Field{Key: "a", Value: value.NewObject(
			value.Field{Key: "b", Value: float64(1)},
		)})

		got := mustEncode(t, v, encode.Options{IndentSize: 4, Delimiter: ','})
		assert.Equal(t, stringtest.JoinLF(
			"a:",
			"    b: 1",
		), got)
	})

	t.Run("empty object root is empty output", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, mustEncode(t, value.NewObject(), defaultOpts()))
	})

	t.Run("empty object field has no body", func(t *testing.T) {
		t.Parallel()

		v := value.NewObject(
			value.Field{Key: "empty", Value: value.NewObject()},
			value.Field{Key: "next", Value: float64(1)},
		)

		assert.Equal(t, stringtest.JoinLF(
			"empty:",
			"next: 1",
		), mustEncode(t, v, defaultOpts()))
	})
}

func TestEncodeNumberFormatting(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input float64
		want  string
	}{
		"integer":       {input: 3, want: "3"},
		"negative":      {input: -7, want: "-7"},
		"decimal":       {input: 9.99, want: "9.99"},
		"small decimal": {input: 0.5, want: "0.5"},
		"zero":          {input: 0, want: "0"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := mustEncode(t, value.NewObject(value.Field{Key: "n", Value: tc.input}), defaultOpts())
			assert.Equal(t, "n: "+tc.want, got)
		})
	}
}
