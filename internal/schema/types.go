package schema

import "github.com/go-openapi/spec"

const (
	// ARRAY represent a array value.
	ARRAY = "array"
	// OBJECT represent a object value.
	OBJECT = "object"
	// BOOLEAN represent a boolean value.
	BOOLEAN = "boolean"
	// NUMBER represent a number value.
	NUMBER = "number"
	// STRING represent a string value.
	STRING = "string"
)

// IsSimplePrimitiveType determines whether the type name is a simple primitive type.
func IsSimplePrimitiveType(typeName string) bool {
	switch typeName {
	case STRING, NUMBER, BOOLEAN:
		return true
	}
	return false
}

// PrimitiveSchema builds a primitive schema.
func PrimitiveSchema(refType string) *spec.Schema {
	return &spec.Schema{SchemaProps: spec.SchemaProps{Type: []string{refType}}}
}
