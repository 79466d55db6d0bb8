// Package schema converts extracted definitions into go-openapi schema nodes.
package schema

import (
	"strconv"
	"strings"

	"github.com/go-openapi/spec"

	"github.com/griffnb/ts-swag/internal/domain"
)

// BuilderService converts one Definition at a time into its draft schema
// node. It carries no state between calls.
type BuilderService struct{}

// NewBuilder creates a new BuilderService instance.
func NewBuilder() *BuilderService {
	return &BuilderService{}
}

// Build produces the draft schema node for a definition. Every result is one
// of exactly four shapes: object with properties, array with items, enum with
// an inferred primitive type, or a reference.
func (b *BuilderService) Build(def *domain.Definition) spec.Schema {
	switch def.Kind {
	case domain.KindEnumerated:
		return enumSchema(def.Values)
	case domain.KindAlias:
		return b.aliasSchema(def.Target)
	default:
		return b.structuredSchema(def)
	}
}

// structuredSchema builds an object node from a structured definition. A
// member carrying a literal-value list short-circuits the whole definition
// into an enum node.
func (b *BuilderService) structuredSchema(def *domain.Definition) spec.Schema {
	for _, field := range def.Fields {
		if field.IsLiteralList() {
			return enumSchema(field.Values)
		}
	}

	properties := make(map[string]spec.Schema, len(def.Fields))
	var required []string

	for _, field := range def.Fields {
		name := field.Name
		optional := strings.HasSuffix(name, domain.OptionalSuffix)
		if optional {
			name = strings.TrimSuffix(name, domain.OptionalSuffix)
		}

		expr := domain.NormalizeUnion(field.Type)
		if expr == "" {
			// A field that yields no property must not be required either.
			continue
		}

		if !optional {
			required = append(required, name)
		}
		properties[name] = *FieldSchema(expr)
	}

	schema := spec.Schema{
		SchemaProps: spec.SchemaProps{
			Type:       []string{OBJECT},
			Properties: properties,
		},
	}
	if len(required) > 0 {
		schema.Required = required
	}
	return schema
}

// aliasSchema resolves a type alias target. Primitive targets collapse to
// their primitive node; everything else is kept as a bare reference so the
// dereferencing pass can rewrite array-of-reference encodings.
func (b *BuilderService) aliasSchema(target string) spec.Schema {
	expr := domain.NormalizeUnion(target)

	base := expr
	for domain.IsArrayExpr(base) {
		base = domain.ElementExpr(base)
	}
	if domain.IsBuiltinType(base) {
		return *FieldSchema(expr)
	}
	return *RefSchema(expr)
}

// FieldSchema maps a single normalized type expression to a field schema
// node. There is no failure mode: unrecognized expressions become references
// and validity is deferred to the resolution stage.
func FieldSchema(expr string) *spec.Schema {
	if domain.IsArrayExpr(expr) {
		return spec.ArrayProperty(FieldSchema(domain.ElementExpr(expr)))
	}

	switch expr {
	case "string":
		return PrimitiveSchema(STRING)
	case "number":
		return PrimitiveSchema(NUMBER)
	case "boolean":
		return PrimitiveSchema(BOOLEAN)
	}

	return RefSchema(expr)
}

// enumSchema builds an enum node with the primitive type inferred from the
// literal values.
func enumSchema(values []string) spec.Schema {
	inferred := inferEnumType(values)

	enum := make([]interface{}, 0, len(values))
	for _, v := range values {
		switch inferred {
		case BOOLEAN:
			parsed, _ := strconv.ParseBool(v)
			enum = append(enum, parsed)
		case NUMBER:
			parsed, _ := strconv.ParseFloat(v, 64)
			enum = append(enum, parsed)
		default:
			enum = append(enum, v)
		}
	}

	return spec.Schema{
		SchemaProps: spec.SchemaProps{
			Type: []string{inferred},
			Enum: enum,
		},
	}
}

// inferEnumType picks boolean when every value is boolean, number when every
// value is numeric, and string otherwise.
func inferEnumType(values []string) string {
	if len(values) == 0 {
		return STRING
	}

	allBool := true
	allNumber := true
	for _, v := range values {
		if v != "true" && v != "false" {
			allBool = false
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			allNumber = false
		}
	}

	if allBool {
		return BOOLEAN
	}
	if allNumber {
		return NUMBER
	}
	return STRING
}
