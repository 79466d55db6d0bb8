package schema

import (
	"github.com/go-openapi/spec"
)

// DefinitionsPrefix is the JSON-schema pointer prefix used while schemas are
// assembled. The document assembler rewrites it to the OpenAPI 3 components
// prefix as a final pass.
const DefinitionsPrefix = "#/definitions/"

// ComponentsPrefix is the OpenAPI 3 pointer prefix for component schemas.
const ComponentsPrefix = "#/components/schemas/"

// RefSchema builds a reference schema.
func RefSchema(refType string) *spec.Schema {
	return spec.RefSchema(DefinitionsPrefix + refType)
}

// IsRefSchema determines whether a schema carries a $ref pointer.
func IsRefSchema(schema *spec.Schema) bool {
	if schema == nil {
		return false
	}
	return schema.Ref.Ref.GetURL() != nil
}

// RefName extracts the definition name from a schema's $ref pointer,
// tolerating either pointer prefix. Returns "" for non-reference schemas.
func RefName(schema *spec.Schema) string {
	if !IsRefSchema(schema) {
		return ""
	}
	return refNameFromString(schema.Ref.String())
}

func refNameFromString(ref string) string {
	for _, prefix := range []string{DefinitionsPrefix, ComponentsPrefix} {
		if len(ref) > len(prefix) && ref[:len(prefix)] == prefix {
			return ref[len(prefix):]
		}
	}
	return ""
}
