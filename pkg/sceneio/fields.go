package sceneio

import (
	"fmt"

	"github.com/asvard/gotrace/pkg/vec"
)

// asNode coerces a generically-decoded YAML value into a node (a string-keyed
// mapping), the representation every World/Textures/Materials entry uses.
func asNode(v interface{}) (node, error) {
	switch m := v.(type) {
	case map[string]interface{}:
		return node(m), nil
	case map[interface{}]interface{}:
		n := make(node, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key %v in mapping", k)
			}
			n[key] = val
		}
		return n, nil
	default:
		return nil, fmt.Errorf("expected a mapping, got %T", v)
	}
}

// nodeField resolves a field expected to itself be a nested mapping (e.g. a
// Translate's "object" or a ConstantMedium's "boundary").
func nodeField(n node, field string) (node, error) {
	raw, ok := n[field]
	if !ok {
		return nil, fmt.Errorf("missing field %q", field)
	}
	return asNode(raw)
}

// stringField resolves a required string-valued field.
func stringField(n node, field string) (string, error) {
	raw, ok := n[field]
	if !ok {
		return "", fmt.Errorf("missing field %q", field)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("field %q must be a string, got %T", field, raw)
	}
	return s, nil
}

// floatField resolves a required numeric field.
func floatField(n node, field string) (float64, error) {
	raw, ok := n[field]
	if !ok {
		return 0, fmt.Errorf("missing field %q", field)
	}
	return toFloat(raw, field)
}

// floatFieldOr resolves an optional numeric field, returning def if absent.
func floatFieldOr(n node, field string, def float64) float64 {
	raw, ok := n[field]
	if !ok {
		return def
	}
	f, err := toFloat(raw, field)
	if err != nil {
		return def
	}
	return f
}

// intFieldOr resolves an optional integer field, returning def if absent.
func intFieldOr(n node, field string, def int) int {
	raw, ok := n[field]
	if !ok {
		return def
	}
	f, err := toFloat(raw, field)
	if err != nil {
		return def
	}
	return int(f)
}

// vecField resolves a required 3-element numeric list field as a vec.Vec3.
func vecField(n node, field string) (vec.Vec3, error) {
	raw, ok := n[field]
	if !ok {
		return vec.Vec3{}, fmt.Errorf("missing field %q", field)
	}
	items, ok := raw.([]interface{})
	if !ok {
		return vec.Vec3{}, fmt.Errorf("field %q must be a 3-element list", field)
	}
	comps := make([]float64, len(items))
	for i, item := range items {
		f, err := toFloat(item, field)
		if err != nil {
			return vec.Vec3{}, err
		}
		comps[i] = f
	}
	return vec3From(comps, field)
}

// vec3From decodes a 3-element numeric list into a vec.Vec3.
func vec3From(items []float64, field string) (vec.Vec3, error) {
	if len(items) != 3 {
		return vec.Vec3{}, fmt.Errorf("%s must have exactly 3 components, got %d", field, len(items))
	}
	return vec.New(items[0], items[1], items[2]), nil
}

func toFloat(raw interface{}, field string) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("field %q must be a number, got %T", field, raw)
	}
}
