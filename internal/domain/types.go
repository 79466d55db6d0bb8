// Package domain holds the shared data model for declaration extraction and
// schema generation.
package domain

import "strings"

// DefinitionKind is the closed set of shapes a Definition can take.
type DefinitionKind int

const (
	// KindStructured is a field-list definition (interface or class).
	KindStructured DefinitionKind = iota
	// KindEnumerated is a literal-value definition (enum, literal union,
	// const object vocabulary).
	KindEnumerated
	// KindAlias is a type alias to another type expression, e.g. `User[]`.
	KindAlias
)

// OptionalSuffix marks an optional member on a recorded field name. The
// builder strips it and leaves the field out of the required list.
const OptionalSuffix = "?"

// Field is one member of a structured definition. Name may carry the
// OptionalSuffix. Exactly one of Type and Values is set: Type holds the raw
// type-expression source text, Values holds literal elements when the member
// was declared as an array of literals.
type Field struct {
	Name   string
	Type   string
	Values []string
}

// IsLiteralList reports whether the field carries literal values instead of a
// type expression.
func (f Field) IsLiteralList() bool {
	return len(f.Values) > 0
}

// Definition is the extracted intermediate representation of one named
// declaration. Fields are kept in declaration order; Values likewise.
type Definition struct {
	Name   string
	Kind   DefinitionKind
	Fields []Field
	Values []string
	// Target is the raw right-hand side of an alias definition.
	Target string
}

// FieldIndex returns the position of a field by recorded name, or -1.
func (d *Definition) FieldIndex(name string) int {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return i
		}
	}
	return -1
}

// Definitions maps declared name to its Definition for one extraction pass.
type Definitions map[string]*Definition

// builtinTypes are type names that never become schema references.
var builtinTypes = map[string]struct{}{
	"string":    {},
	"number":    {},
	"boolean":   {},
	"any":       {},
	"unknown":   {},
	"object":    {},
	"null":      {},
	"undefined": {},
	"void":      {},
	"never":     {},
	"Date":      {},
}

// IsBuiltinType reports whether typeName is a built-in TypeScript type rather
// than a reference to a declared definition.
func IsBuiltinType(typeName string) bool {
	_, ok := builtinTypes[typeName]
	return ok
}

// ArraySuffix is the marker for array type expressions.
const ArraySuffix = "[]"

// IsArrayExpr reports whether the type expression is an array type.
func IsArrayExpr(expr string) bool {
	return strings.HasSuffix(expr, ArraySuffix)
}

// ElementExpr strips one trailing array marker from the expression.
func ElementExpr(expr string) string {
	return strings.TrimSuffix(expr, ArraySuffix)
}

// NormalizeUnion reduces a union type expression to its effective type:
// a trailing `| undefined` alternative is dropped, and any remaining union is
// collapsed to its first alternative. Non-union expressions pass through
// trimmed. Alternatives after the first are discarded, not merged.
func NormalizeUnion(expr string) string {
	expr = strings.TrimSpace(expr)
	expr = strings.TrimSuffix(expr, "| undefined")
	expr = strings.TrimSpace(expr)
	if idx := strings.Index(expr, "|"); idx >= 0 {
		expr = strings.TrimSpace(expr[:idx])
	}
	return expr
}
