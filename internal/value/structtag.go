package value

import (
	"reflect"
	"strings"
)

// structFieldName resolves the TOON field name for a struct field from
// its `toon:"name,omitempty"` tag, falling back to the Go field name.
// skip reports a `toon:"-"` tag.
func structFieldName(field reflect.StructField) (name string, omitempty bool, skip bool) {
	tag, ok := field.Tag.Lookup("toon")
	if !ok {
		return field.Name, false, false
	}

	if tag == "-" {
		return "", false, true
	}

	parts := strings.Split(tag, ",")

	name = parts[0]
	if name == "" {
		name = field.Name
	}

	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}

	return name, omitempty, false
}
