// Package yamlconv converts between YAML source text and the TOON value
// model (nil, bool, float64, string, []any, *value.Object), for the
// cmd/toon CLI's "--format=yaml" front/back end. It walks the
// goccy/go-yaml AST directly rather than going through yaml.Unmarshal
// into map[string]any: a plain map loses YAML's source key order, which
// TOON preserves end to end.
package yamlconv

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/macropower/toon/internal/value"
)

// ErrEmptyDocument is returned by [Decode] when the input contains no
// YAML document.
var ErrEmptyDocument = errors.New("yamlconv: empty document")

// Decode parses a single YAML document from data into the TOON value
// model.
func Decode(data []byte) (any, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("yamlconv: %w", err)
	}

	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return nil, ErrEmptyDocument
	}

	anchors := buildAnchorMap(file.Docs[0].Body)

	return walkNode(file.Docs[0].Body, anchors)
}

// buildAnchorMap walks the document collecting every anchor definition,
// so aliases elsewhere in the document can resolve to the node they
// name.
func buildAnchorMap(node ast.Node) map[string]ast.Node {
	anchors := make(map[string]ast.Node)
	ast.Walk(anchorVisitor{anchors: anchors}, node)

	return anchors
}

type anchorVisitor struct {
	anchors map[string]ast.Node
}

func (v anchorVisitor) Visit(node ast.Node) ast.Visitor {
	if anchor, ok := node.(*ast.AnchorNode); ok {
		v.anchors[anchor.Name.String()] = anchor.Value
	}

	return v
}

func resolveAliases(node ast.Node, anchors map[string]ast.Node) ast.Node {
	alias, ok := node.(*ast.AliasNode)
	if !ok {
		return node
	}

	resolved, found := anchors[alias.Value.String()]
	if !found {
		return nil
	}

	return resolved
}

func unwrapNode(node ast.Node) ast.Node {
	for {
		switch n := node.(type) {
		case *ast.TagNode:
			node = n.Value
		case *ast.AnchorNode:
			node = n.Value
		default:
			return node
		}
	}
}

// walkNode converts a single AST node into a Value.
func walkNode(node ast.Node, anchors map[string]ast.Node) (any, error) {
	node = resolveAliases(node, anchors)
	if node == nil {
		return nil, nil
	}

	node = unwrapNode(node)

	switch n := node.(type) {
	case *ast.MappingNode:
		return walkMapping(n.Values, anchors)
	case *ast.MappingValueNode:
		return walkMapping([]*ast.MappingValueNode{n}, anchors)
	case *ast.SequenceNode:
		return walkSequence(n, anchors)
	case *ast.NullNode:
		return nil, nil
	case *ast.BoolNode:
		return n.Value, nil
	case *ast.IntegerNode:
		return toFloat64(n.Value), nil
	case *ast.FloatNode:
		return n.Value, nil
	case *ast.StringNode:
		return n.Value, nil
	case *ast.LiteralNode:
		return n.Value.Value, nil
	case *ast.InfinityNode, *ast.NanNode:
		return nil, nil
	default:
		return nil, fmt.Errorf("yamlconv: unsupported YAML node %T", node)
	}
}

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	default:
		return 0
	}
}

// walkMapping converts a flattened list of key/value pairs -- including
// ones contributed by "<<" merge keys -- into an ordered [*value.Object],
// the first-write-wins semantics YAML merge keys require (an explicit
// key always takes priority over one merged in from "<<").
func walkMapping(values []*ast.MappingValueNode, anchors map[string]ast.Node) (*value.Object, error) {
	obj := value.NewObject()

	var merges []*ast.MappingValueNode

	for _, mvn := range values {
		if _, ok := mvn.Key.(*ast.MergeKeyNode); ok {
			merges = append(merges, mvn)

			continue
		}

		key := mvn.Key.String()
		if _, exists := obj.Get(key); exists {
			continue
		}

		v, err := walkNode(mvn.Value, anchors)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		obj.Set(key, v)
	}

	for _, mvn := range merges {
		if err := mergeInto(obj, mvn.Value, anchors); err != nil {
			return nil, err
		}
	}

	return obj, nil
}

// mergeInto applies a "<<" merge key's value -- a single mapping, or a
// sequence of mappings -- onto obj, without overwriting keys obj
// already has (explicit keys win over merged ones).
func mergeInto(obj *value.Object, node ast.Node, anchors map[string]ast.Node) error {
	node = resolveAliases(node, anchors)
	node = unwrapNode(node)

	switch n := node.(type) {
	case *ast.MappingNode:
		merged, err := walkMapping(n.Values, anchors)
		if err != nil {
			return err
		}

		addMissing(obj, merged)
	case *ast.SequenceNode:
		for _, elem := range n.Values {
			if err := mergeInto(obj, elem, anchors); err != nil {
				return err
			}
		}
	}

	return nil
}

func addMissing(dst, src *value.Object) {
	for _, f := range src.Fields {
		if _, exists := dst.Get(f.Key); !exists {
			dst.Set(f.Key, f.Value)
		}
	}
}

func walkSequence(seq *ast.SequenceNode, anchors map[string]ast.Node) (any, error) {
	out := make([]any, len(seq.Values))

	for i, elem := range seq.Values {
		v, err := walkNode(elem, anchors)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}

		out[i] = v
	}

	return out, nil
}
