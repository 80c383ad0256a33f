package schema

import (
	"cmp"
	"maps"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"
)

// mergeSchemas combines two inferred schemas with union semantics: the
// result accepts everything either input accepts. Properties from both
// sides are kept, conflicting scalar types widen, and constraints that
// only one side carries survive.
func mergeSchemas(a, b *jsonschema.Schema) *jsonschema.Schema {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}

	merged := &jsonschema.Schema{
		Type:        widenType(schemaType(a), schemaType(b)),
		Title:       cmp.Or(a.Title, b.Title),
		Description: cmp.Or(a.Description, b.Description),
		Required:    intersectRequired(a.Required, b.Required),
		Items:       mergeItems(a.Items, b.Items),
	}

	if a.Properties != nil || b.Properties != nil {
		merged.Properties, merged.PropertyOrder = mergeProperties(a, b)
	}

	merged.AdditionalProperties = mergeAdditionalProperties(a.AdditionalProperties, b.AdditionalProperties)

	return merged
}

// widenType unifies two scalar type names. Integer and number widen to
// number; an empty side defers to the other; anything else incompatible
// drops the type constraint entirely.
func widenType(a, b string) string {
	switch {
	case a == b:
		return a
	case a == "":
		return b
	case b == "":
		return a
	case (a == typeInteger && b == typeNumber) || (a == typeNumber && b == typeInteger):
		return typeNumber
	default:
		return ""
	}
}

func schemaType(s *jsonschema.Schema) string {
	if s.Type != "" {
		return s.Type
	}

	if len(s.Types) == 1 {
		return s.Types[0]
	}

	return ""
}

func mergeItems(a, b *jsonschema.Schema) *jsonschema.Schema {
	if a == nil {
		return b
	}

	if b == nil {
		return a
	}

	return mergeSchemas(a, b)
}

// mergeProperties unions both property maps, merging schemas for keys
// present on both sides. Order follows a's declaration order with b's
// novel keys appended.
func mergeProperties(a, b *jsonschema.Schema) (map[string]*jsonschema.Schema, []string) {
	props := make(map[string]*jsonschema.Schema, len(a.Properties)+len(b.Properties))

	var order []string

	for _, k := range propertyKeys(a) {
		props[k] = a.Properties[k]
		order = append(order, k)
	}

	for _, k := range propertyKeys(b) {
		if existing, ok := props[k]; ok {
			props[k] = mergeSchemas(existing, b.Properties[k])
		} else {
			props[k] = b.Properties[k]
			order = append(order, k)
		}
	}

	return props, order
}

// propertyKeys lists a schema's property names, honoring PropertyOrder
// where present and falling back to sorted order so merges stay
// deterministic.
func propertyKeys(s *jsonschema.Schema) []string {
	if s.Properties == nil {
		return nil
	}

	if len(s.PropertyOrder) == 0 {
		return slices.Sorted(maps.Keys(s.Properties))
	}

	keys := make([]string, 0, len(s.Properties))

	for _, k := range s.PropertyOrder {
		if _, ok := s.Properties[k]; ok {
			keys = append(keys, k)
		}
	}

	for _, k := range slices.Sorted(maps.Keys(s.Properties)) {
		if !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}

	return keys
}

// intersectRequired keeps only the required keys both sides agree on; a
// key one document omits cannot be required by the union.
func intersectRequired(a, b []string) []string {
	if a == nil || b == nil {
		return nil
	}

	var result []string

	for _, k := range b {
		if slices.Contains(a, k) {
			result = append(result, k)
		}
	}

	return result
}

// mergeAdditionalProperties is fail-open: if either side allows
// additional properties (explicitly or by omission), so does the union.
func mergeAdditionalProperties(a, b *jsonschema.Schema) *jsonschema.Schema {
	if a == nil && b == nil {
		return nil
	}

	if a == nil || b == nil || allowsAnything(a) || allowsAnything(b) {
		return TrueSchema()
	}

	return a
}

// allowsAnything reports whether s is an unconstrained schema (the
// "true" boolean schema).
func allowsAnything(s *jsonschema.Schema) bool {
	return s != nil &&
		s.Not == nil &&
		s.Type == "" &&
		len(s.Types) == 0 &&
		s.Properties == nil &&
		s.Items == nil &&
		len(s.AllOf) == 0 &&
		len(s.AnyOf) == 0 &&
		len(s.OneOf) == 0
}
