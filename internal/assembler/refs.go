package assembler

import (
	"github.com/go-openapi/spec"

	"github.com/griffnb/ts-swag/internal/domain"
	"github.com/griffnb/ts-swag/internal/schema"
)

// RewriteRefs rewrites every #/definitions/... pointer in the document to the
// OpenAPI 3 #/components/schemas/... form, in place on the document but
// producing new schema nodes rather than mutating shared ones.
func RewriteRefs(doc *Document) {
	for name, node := range doc.Components.Schemas {
		doc.Components.Schemas[name] = *rewriteNode(&node)
	}
	for _, item := range doc.Paths {
		for _, op := range item.operations() {
			rewriteOperation(op)
		}
	}
}

func rewriteOperation(op *Operation) {
	if op.RequestBody != nil {
		rewriteContent(op.RequestBody.Content)
	}
	for code, resp := range op.Responses {
		rewriteContent(resp.Content)
		op.Responses[code] = resp
	}
}

func rewriteContent(content map[string]MediaType) {
	for ct, mt := range content {
		if mt.Schema != nil {
			mt.Schema = rewriteNode(mt.Schema)
			content[ct] = mt
		}
	}
}

// rewriteNode returns a copy of the schema with its reference prefix, and the
// prefixes of all nested nodes, rewritten.
func rewriteNode(s *spec.Schema) *spec.Schema {
	if s == nil {
		return nil
	}

	out := *s

	if name := schema.RefName(s); name != "" {
		out.Ref = spec.MustCreateRef(schema.ComponentsPrefix + name)
		return &out
	}

	if len(s.Properties) > 0 {
		props := make(map[string]spec.Schema, len(s.Properties))
		for key, prop := range s.Properties {
			prop := prop
			props[key] = *rewriteNode(&prop)
		}
		out.Properties = props
	}

	if s.Items != nil {
		items := &spec.SchemaOrArray{}
		if s.Items.Schema != nil {
			items.Schema = rewriteNode(s.Items.Schema)
		}
		if len(s.Items.Schemas) > 0 {
			items.Schemas = make([]spec.Schema, 0, len(s.Items.Schemas))
			for i := range s.Items.Schemas {
				items.Schemas = append(items.Schemas, *rewriteNode(&s.Items.Schemas[i]))
			}
		}
		out.Items = items
	}

	if s.AdditionalProperties != nil && s.AdditionalProperties.Schema != nil {
		out.AdditionalProperties = &spec.SchemaOrBool{
			Allows: s.AdditionalProperties.Allows,
			Schema: rewriteNode(s.AdditionalProperties.Schema),
		}
	}

	return &out
}

// RemoveUnusedSchemas drops component schemas not reachable from any path
// operation, directly or through other kept schemas.
func RemoveUnusedSchemas(doc *Document) {
	used := make(map[string]struct{})

	for _, item := range doc.Paths {
		for _, op := range item.operations() {
			if op.RequestBody != nil {
				collectContentRefs(op.RequestBody.Content, doc, used)
			}
			for _, resp := range op.Responses {
				collectContentRefs(resp.Content, doc, used)
			}
		}
	}

	for name := range doc.Components.Schemas {
		if _, ok := used[name]; !ok {
			delete(doc.Components.Schemas, name)
		}
	}
}

func collectContentRefs(content map[string]MediaType, doc *Document, used map[string]struct{}) {
	for _, mt := range content {
		collectSchemaRefs(mt.Schema, doc, used)
	}
}

// collectSchemaRefs records every schema name referenced from s, following
// references into the component set transitively. The used set doubles as the
// cycle guard.
func collectSchemaRefs(s *spec.Schema, doc *Document, used map[string]struct{}) {
	if s == nil {
		return
	}

	if name := schema.RefName(s); name != "" {
		// A bare Name[] reference resolves through its element schema.
		base := name
		for domain.IsArrayExpr(base) {
			base = domain.ElementExpr(base)
		}
		if _, seen := used[base]; seen {
			return
		}
		used[base] = struct{}{}
		if next, ok := doc.Components.Schemas[base]; ok {
			collectSchemaRefs(&next, doc, used)
		}
		return
	}

	for _, prop := range s.Properties {
		prop := prop
		collectSchemaRefs(&prop, doc, used)
	}
	if s.Items != nil {
		collectSchemaRefs(s.Items.Schema, doc, used)
		for i := range s.Items.Schemas {
			collectSchemaRefs(&s.Items.Schemas[i], doc, used)
		}
	}
	if s.AdditionalProperties != nil {
		collectSchemaRefs(s.AdditionalProperties.Schema, doc, used)
	}
	for i := range s.AllOf {
		collectSchemaRefs(&s.AllOf[i], doc, used)
	}
}
