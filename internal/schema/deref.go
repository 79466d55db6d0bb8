package schema

import (
	"github.com/go-openapi/spec"

	"github.com/griffnb/ts-swag/internal/domain"
)

// DereferenceArrays rewrites every node that is a bare reference to a name
// ending in the array marker into a proper array-of-reference node, recursing
// through object properties and array items. The input map is not mutated; a
// new structure is returned.
func DereferenceArrays(schemas map[string]spec.Schema) map[string]spec.Schema {
	out := make(map[string]spec.Schema, len(schemas))
	for name, s := range schemas {
		out[name] = *dereferenceNode(&s)
	}
	return out
}

// dereferenceNode returns a rewritten copy of one schema node. Non-matching
// nodes are copied unchanged.
func dereferenceNode(s *spec.Schema) *spec.Schema {
	if s == nil {
		return nil
	}

	if name := RefName(s); name != "" && domain.IsArrayExpr(name) {
		item := RefSchema(domain.ElementExpr(name))
		return spec.ArrayProperty(dereferenceNode(item))
	}

	out := *s

	if len(s.Properties) > 0 {
		props := make(map[string]spec.Schema, len(s.Properties))
		for key, prop := range s.Properties {
			prop := prop
			props[key] = *dereferenceNode(&prop)
		}
		out.Properties = props
	}

	if s.Items != nil {
		items := &spec.SchemaOrArray{}
		if s.Items.Schema != nil {
			items.Schema = dereferenceNode(s.Items.Schema)
		}
		if len(s.Items.Schemas) > 0 {
			items.Schemas = make([]spec.Schema, 0, len(s.Items.Schemas))
			for i := range s.Items.Schemas {
				items.Schemas = append(items.Schemas, *dereferenceNode(&s.Items.Schemas[i]))
			}
		}
		out.Items = items
	}

	if s.AdditionalProperties != nil && s.AdditionalProperties.Schema != nil {
		out.AdditionalProperties = &spec.SchemaOrBool{
			Allows: s.AdditionalProperties.Allows,
			Schema: dereferenceNode(s.AdditionalProperties.Schema),
		}
	}

	return &out
}
