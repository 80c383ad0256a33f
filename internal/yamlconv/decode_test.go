package yamlconv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/toon/internal/value"
	"github.com/macropower/toon/internal/yamlconv"
	"github.com/macropower/toon/stringtest"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("mapping keeps source key order", func(t *testing.T) {
		t.Parallel()

		got, err := yamlconv.Decode([]byte(stringtest.JoinLF(
			"zebra: 1",
			"apple: 2",
			"mango: 3",
		)))
		require.NoError(t, err)

		obj, ok := got.(*value.Object)
		require.True(t, ok)
		assert.Equal(t, []string{"zebra", "apple", "mango"}, obj.Keys())
	})

	t.Run("scalars map into the value model", func(t *testing.T) {
		t.Parallel()

		got, err := yamlconv.Decode([]byte(stringtest.JoinLF(
			"str: hello",
			"int: 42",
			"float: 2.5",
			"yes: true",
			"nothing: null",
			"quoted: \"05\"",
		)))
		require.NoError(t, err)

		obj := got.(*value.Object)

		for key, want := range map[string]any{
			"str":     "hello",
			"int":     float64(42),
			"float":   2.5,
			"yes":     true,
			"nothing": nil,
			"quoted":  "05",
		} {
			v, found := obj.Get(key)
			require.Truef(t, found, "key %s", key)
			assert.Equalf(t, want, v, "key %s", key)
		}
	})

	t.Run("sequences and nesting", func(t *testing.T) {
		t.Parallel()

		got, err := yamlconv.Decode([]byte(stringtest.JoinLF(
			"items:",
			"  - name: a",
			"    qty: 1",
			"  - name: b",
			"    qty: 2",
			"tags: [x, y]",
		)))
		require.NoError(t, err)

		obj := got.(*value.Object)

		items, _ := obj.Get("items")
		arr := items.([]any)
		require.Len(t, arr, 2)
		assert.Equal(t, []string{"name", "qty"}, arr[0].(*value.Object).Keys())

		tags, _ := obj.Get("tags")
		assert.Equal(t, []any{"x", "y"}, tags)
	})

	t.Run("anchors and aliases resolve", func(t *testing.T) {
		t.Parallel()

		got, err := yamlconv.Decode([]byte(stringtest.JoinLF(
			"base: &b",
			"  host: localhost",
			"copy: *b",
		)))
		require.NoError(t, err)

		obj := got.(*value.Object)

		c, _ := obj.Get("copy")
		host, _ := c.(*value.Object).Get("host")
		assert.Equal(t, "localhost", host)
	})

	t.Run("merge keys fill missing fields only", func(t *testing.T) {
		t.Parallel()

		got, err := yamlconv.Decode([]byte(stringtest.JoinLF(
			"defaults: &d",
			"  retries: 3",
			"  timeout: 10",
			"svc:",
			"  <<: *d",
			"  timeout: 30",
		)))
		require.NoError(t, err)

		obj := got.(*value.Object)
		svc, _ := obj.Get("svc")
		svcObj := svc.(*value.Object)

		timeout, _ := svcObj.Get("timeout")
		assert.Equal(t, float64(30), timeout)

		retries, _ := svcObj.Get("retries")
		assert.Equal(t, float64(3), retries)
	})

	t.Run("empty document errors", func(t *testing.T) {
		t.Parallel()

		_, err := yamlconv.Decode([]byte(""))
		require.ErrorIs(t, err, yamlconv.ErrEmptyDocument)
	})

	t.Run("invalid yaml errors", func(t *testing.T) {
		t.Parallel()

		_, err := yamlconv.Decode([]byte("a: [unclosed"))
		require.Error(t, err)
	})
}

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("objects keep field order", func(t *testing.T) {
		t.Parallel()

		out, err := yamlconv.Encode(value.NewObject(
			value.Field{Key: "zebra", Value: float64(1)},
			value.Field{Key: "apple", Value: value.NewObject(
				value.Field{Key: "nested", Value: "x"},
			)},
			value.Field{Key: "list", Value: []any{"a", float64(2)}},
		))
		require.NoError(t, err)

		assert.Equal(t, stringtest.JoinLF(
			"zebra: 1",
			"apple:",
			"  nested: x",
			"list:",
			"- a",
			"- 2",
			"",
		), string(out))
	})

	t.Run("round trip through decode", func(t *testing.T) {
		t.Parallel()

		src := value.NewObject(
			value.Field{Key: "name", Value: "demo"},
			value.Field{Key: "count", Value: float64(2)},
			value.Field{Key: "nested", Value: value.NewObject(
				value.Field{Key: "ok", Value: true},
			)},
		)

		out, err := yamlconv.Encode(src)
		require.NoError(t, err)

		back, err := yamlconv.Decode(out)
		require.NoError(t, err)
		assert.Equal(t, src, back)
	})
}
