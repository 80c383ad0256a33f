package value

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"slices"
	"time"
)

// ErrUnsupportedType is returned by [From] when a host Go value has no
// representation in the TOON data model (e.g. a channel, function, or
// unsafe pointer). JSON-equivalent hosts such as JavaScript have an
// "undefined"/"function" value that silently normalizes to null; Go has
// no such catch-all, so From reports these as errors instead of
// guessing.
var ErrUnsupportedType = errors.New("value: unsupported type")

// From normalizes an arbitrary host Go value into the closed TOON value
// model: nil, bool, float64, string, []any, or *Object.
//
// Supported inputs, beyond values already in the model: any integer or
// unsigned integer kind, any float kind, [*big.Int]/[big.Int]
// (-> decimal string, since TOON numbers round-trip through float64 and
// would lose precision on large integers), [time.Time] (-> RFC3339Nano
// string), slices and arrays of any element type, maps with string keys
// (a Go map's iteration order carries no meaning, so From sorts map
// keys for determinism), structs (field order follows declaration
// order, honoring `toon:"..."` tags), and pointers (dereferenced; nil
// pointers normalize to nil).
func From(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch x := v.(type) {
	case bool, string, *Object:
		return x, nil
	case float64:
		return normalizeFloat(x), nil
	case []any:
		return normalizeSlice(x)
	}

	return normalizeReflect(reflect.ValueOf(v))
}

// normalizeSpecial handles the fixed set of concrete types with
// non-structural normalization rules (big integers and times). The bool
// return reports whether v matched one of them.
func normalizeSpecial(v any) (any, bool, error) {
	switch x := v.(type) {
	case *big.Int:
		if x == nil {
			return nil, true, nil
		}

		return x.String(), true, nil
	case big.Int:
		return x.String(), true, nil
	case time.Time:
		return x.UTC().Format(time.RFC3339Nano), true, nil
	}

	return nil, false, nil
}

// normalizeFloat maps non-finite IEEE-754 doubles to null; TOON has no
// token for NaN or infinity.
func normalizeFloat(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	return f
}

func normalizeSlice(in []any) (any, error) {
	out := make([]any, len(in))

	for i, elem := range in {
		n, err := From(elem)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}

		out[i] = n
	}

	return out, nil
}

// normalizeReflect handles the kinds that aren't already concrete cases
// above: other slice/array/map/struct/pointer/integer/float types. The
// special cases run again here so that big integers and times nested
// inside maps, slices, and structs normalize the same way they do at
// the top level.
func normalizeReflect(rv reflect.Value) (any, error) {
	if rv.IsValid() && rv.CanInterface() {
		if n, ok, err := normalizeSpecial(rv.Interface()); ok {
			return n, err
		}
	}

	switch rv.Kind() {
	case reflect.Invalid:
		return nil, nil

	case reflect.Bool:
		return rv.Bool(), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil

	case reflect.Float32, reflect.Float64:
		return normalizeFloat(rv.Float()), nil

	case reflect.String:
		return rv.String(), nil

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}

		return normalizeReflect(rv.Elem())

	case reflect.Slice, reflect.Array:
		return normalizeSeq(rv)

	case reflect.Map:
		return normalizeMap(rv)

	case reflect.Struct:
		return normalizeStruct(rv)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Kind())
	}
}

func normalizeSeq(rv reflect.Value) (any, error) {
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil, nil
	}

	out := make([]any, rv.Len())

	for i := range rv.Len() {
		n, err := normalizeReflect(rv.Index(i))
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}

		out[i] = n
	}

	return out, nil
}

func normalizeMap(rv reflect.Value) (any, error) {
	if rv.IsNil() {
		return nil, nil
	}

	if rv.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: map key %s", ErrUnsupportedType, rv.Type().Key())
	}

	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}

	slices.Sort(keys)

	obj := &Object{Fields: make([]Field, 0, len(keys))}

	for _, k := range keys {
		n, err := normalizeReflect(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())))
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}

		obj.Fields = append(obj.Fields, Field{Key: k, Value: n})
	}

	return obj, nil
}

func normalizeStruct(rv reflect.Value) (any, error) {
	t := rv.Type()
	obj := &Object{Fields: make([]Field, 0, t.NumField())}

	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name, omitempty, skip := structFieldName(field)
		if skip {
			continue
		}

		fv := rv.Field(i)
		if omitempty && fv.IsZero() {
			continue
		}

		n, err := normalizeReflect(fv)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}

		obj.Fields = append(obj.Fields, Field{Key: name, Value: n})
	}

	return obj, nil
}

