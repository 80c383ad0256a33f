package schema

import (
	"math"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/macropower/toon/internal/value"
)

// JSON Schema type constants.
const (
	typeBoolean = "boolean"
	typeInteger = "integer"
	typeNumber  = "number"
	typeString  = "string"
	typeArray   = "array"
	typeObject  = "object"
)

// Generator infers JSON Schema from decoded TOON values.
type Generator struct {
	title       string
	description string
	id          string
	strict      bool
}

// Option configures a Generator.
type Option func(*Generator)

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WithTitle sets the schema title.
func WithTitle(title string) Option {
	return func(g *Generator) {
		g.title = title
	}
}

// WithDescription sets the schema description.
func WithDescription(desc string) Option {
	return func(g *Generator) {
		g.description = desc
	}
}

// WithID sets the schema $id.
func WithID(id string) Option {
	return func(g *Generator) {
		g.id = id
	}
}

// WithStrict sets additionalProperties to false on inferred objects.
func WithStrict(strict bool) Option {
	return func(g *Generator) {
		g.strict = strict
	}
}

// Infer infers a JSON Schema from one or more already-normalized TOON
// values (nil, bool, float64, string, []any, *value.Object). Multiple
// values are merged with union semantics, as if they were documents
// sharing one schema.
func (g *Generator) Infer(values ...any) *jsonschema.Schema {
	var result *jsonschema.Schema

	if len(values) == 0 {
		result = g.emptySchema()
	} else {
		result = g.walk(values[0])

		for _, v := range values[1:] {
			result = mergeSchemas(result, g.walk(v))
		}
	}

	result.Schema = "http://json-schema.org/draft-07/schema#"

	if g.title != "" {
		result.Title = g.title
	}

	if g.description != "" {
		result.Description = g.description
	}

	if g.id != "" {
		result.ID = g.id
	}

	if (result.Type == typeObject || result.Properties != nil) && result.AdditionalProperties == nil {
		if g.strict {
			result.AdditionalProperties = FalseSchema()
		} else {
			result.AdditionalProperties = TrueSchema()
		}
	}

	return result
}

// Infer is the package-level convenience entry point: it builds a
// default Generator, applies opts, and infers a schema from values.
func Infer(values []any, opts ...Option) *jsonschema.Schema {
	return NewGenerator(opts...).Infer(values...)
}

func (g *Generator) walk(v any) *jsonschema.Schema {
	switch x := v.(type) {
	case *value.Object:
		return g.walkObject(x)
	case []any:
		return g.walkArray(x)
	default:
		return g.walkScalar(x)
	}
}

func (g *Generator) walkObject(obj *value.Object) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       typeObject,
		Properties: make(map[string]*jsonschema.Schema),
	}

	if g.strict {
		schema.AdditionalProperties = FalseSchema()
	} else {
		schema.AdditionalProperties = TrueSchema()
	}

	order := make([]string, 0, obj.Len())

	for _, field := range obj.Fields {
		schema.Properties[field.Key] = g.walk(field.Value)
		order = append(order, field.Key)
	}

	if len(schema.Properties) == 0 {
		schema.Properties = nil
	} else {
		schema.PropertyOrder = order
	}

	return schema
}

func (g *Generator) walkArray(arr []any) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:  typeArray,
		Items: g.inferItems(arr),
	}
}

// inferItems merges the schemas of every array element. Object elements
// merge their properties (so a tabular-shaped array yields one coherent
// item schema); scalar elements merge to a widened scalar type.
func (g *Generator) inferItems(arr []any) *jsonschema.Schema {
	if len(arr) == 0 {
		return nil
	}

	result := g.walk(arr[0])

	for _, elem := range arr[1:] {
		result = mergeSchemas(result, g.walk(elem))
	}

	return result
}

func (g *Generator) walkScalar(v any) *jsonschema.Schema {
	switch x := v.(type) {
	case nil:
		return &jsonschema.Schema{}
	case bool:
		return &jsonschema.Schema{Type: typeBoolean}
	case string:
		return &jsonschema.Schema{Type: typeString}
	case float64:
		if x == math.Trunc(x) {
			return &jsonschema.Schema{Type: typeInteger}
		}

		return &jsonschema.Schema{Type: typeNumber}
	default:
		return &jsonschema.Schema{}
	}
}

func (g *Generator) emptySchema() *jsonschema.Schema {
	return &jsonschema.Schema{}
}
