package yamlconv

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/macropower/toon/internal/value"
)

// Encode renders a TOON value (nil, bool, float64, string, []any,
// *value.Object) as YAML text, preserving object key order via
// [yaml.MapSlice] rather than letting the encoder re-sort a plain
// map[string]any.
func Encode(v any) ([]byte, error) {
	out, err := yaml.Marshal(toOrdered(v))
	if err != nil {
		return nil, fmt.Errorf("yamlconv: %w", err)
	}

	return out, nil
}

// toOrdered recursively rewrites *value.Object into yaml.MapSlice so the
// YAML emitter walks fields in their original order.
func toOrdered(v any) any {
	switch x := v.(type) {
	case *value.Object:
		items := make(yaml.MapSlice, len(x.Fields))
		for i, f := range x.Fields {
			items[i] = yaml.MapItem{Key: f.Key, Value: toOrdered(f.Value)}
		}

		return items
	case []any:
		out := make([]any, len(x))
		for i, elem := range x {
			out[i] = toOrdered(elem)
		}

		return out
	case float64:
		// Whole numbers go out as integers so YAML prints "1", not "1.0".
		if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
			return int64(x)
		}

		return x
	default:
		return x
	}
}
