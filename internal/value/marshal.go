package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MarshalJSON renders o as a JSON object with its fields in insertion
// order -- encoding/json's map[string]any round-trip would otherwise
// sort keys alphabetically, which loses the ordering invariant the CLI's
// "toon decode --format=json" output must preserve.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, f := range o.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, fmt.Errorf("value: marshal key %q: %w", f.Key, err)
		}

		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("value: marshal field %q: %w", f.Key, err)
		}

		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into o, preserving the source's
// key order at every nesting level via [json.Decoder]'s token stream
// rather than going through map[string]any, which discards order.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	v, err := decodeOrderedValue(dec)
	if err != nil {
		return err
	}

	obj, ok := v.(*Object)
	if !ok {
		return fmt.Errorf("value: expected JSON object, got %T", v)
	}

	*o = *obj

	return nil
}

// DecodeOrderedJSON parses a single JSON value from data into the TOON
// value model, using object key order from the source text rather than
// map[string]any's unordered representation. It is the JSON front end
// for "toon encode --format=json".
func DecodeOrderedJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeOrderedValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("value: unexpected trailing content after JSON value")
	}

	return v, nil
}

func decodeOrderedValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("value: %w", err)
	}

	return decodeOrderedToken(dec, tok)
}

func decodeOrderedToken(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeOrderedObject(dec)
		case '[':
			return decodeOrderedArray(dec)
		default:
			return nil, fmt.Errorf("value: unexpected delimiter %q", t)
		}
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("value: %w", err)
		}

		return f, nil
	default:
		// nil, bool, string, or (without UseNumber) float64 already in
		// their final form.
		return tok, nil
	}
}

func decodeOrderedObject(dec *json.Decoder) (any, error) {
	obj := &Object{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("value: %w", err)
		}

		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("value: expected string key, got %v", keyTok)
		}

		fv, err := decodeOrderedValue(dec)
		if err != nil {
			return nil, fmt.Errorf("value: field %q: %w", key, err)
		}

		obj.Fields = append(obj.Fields, Field{Key: key, Value: fv})
	}

	if _, err := dec.Token(); err != nil { // consume closing '}'
		return nil, fmt.Errorf("value: %w", err)
	}

	return obj, nil
}

func decodeOrderedArray(dec *json.Decoder) (any, error) {
	arr := []any{}

	for dec.More() {
		elem, err := decodeOrderedValue(dec)
		if err != nil {
			return nil, err
		}

		arr = append(arr, elem)
	}

	if _, err := dec.Token(); err != nil { // consume closing ']'
		return nil, fmt.Errorf("value: %w", err)
	}

	return arr, nil
}
