// Package value implements the TOON data model: the closed set of Go
// representations (nil, bool, float64, string, []any, *Object) that the
// encoder and decoder operate on, plus normalization of arbitrary host Go
// values into that model.
package value

// Field is a single key/value pair in an [Object].
type Field struct {
	Key   string
	Value any
}

// Object is an ordered mapping from string keys to Values. Go's built-in
// map type does not preserve iteration order, and TOON's key-order
// invariant (every round-trip must preserve insertion order) is load
// bearing, so objects are modeled as a field slice rather than a map.
type Object struct {
	Fields []Field
}

// NewObject constructs an ordered Object from the given fields, in order.
func NewObject(fields ...Field) *Object {
	return &Object{Fields: append([]Field(nil), fields...)}
}

// Len reports the number of fields.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.Fields)
}

// IsEmpty reports whether the object has no fields.
func (o *Object) IsEmpty() bool {
	return o.Len() == 0
}

// Get returns the value for key and whether it was present. Lookup is
// linear; objects in TOON documents are small field lists, not hash maps.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}

	for _, f := range o.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}

	return nil, false
}

// Set appends a new field, or overwrites the value of an existing one in
// place (preserving its original position).
func (o *Object) Set(key string, v any) {
	for i, f := range o.Fields {
		if f.Key == key {
			o.Fields[i].Value = v

			return
		}
	}

	o.Fields = append(o.Fields, Field{Key: key, Value: v})
}

// Keys returns the field keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	for _, f := range o.Fields {
		keys = append(keys, f.Key)
	}

	return keys
}

// SameKeysInOrder reports whether o and other declare exactly the same
// keys in exactly the same order -- the tabular-form eligibility test
// from the encoder's array shape selection.
func (o *Object) SameKeysInOrder(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}

	for i, f := range o.Fields {
		if other.Fields[i].Key != f.Key {
			return false
		}
	}

	return true
}
