package extractor

import (
	"github.com/griffnb/ts-swag/internal/domain"

	sitter "github.com/smacker/go-tree-sitter"
)

// walker threads the source bytes through the recursive declaration walk.
// The definitions map is single-pass, function-local state.
type walker struct {
	content []byte
}

// collectDeclarations dispatches every child of node to the handler for its
// declaration kind. Export statements are unwrapped and their inner
// declaration re-dispatched.
func (w *walker) collectDeclarations(node *sitter.Node, defs domain.Definitions) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "export_statement":
			w.collectDeclarations(child, defs)
		case "enum_declaration":
			w.collectEnum(child, defs)
		case "interface_declaration", "class_declaration", "abstract_class_declaration":
			w.collectStructured(child, defs)
		case "type_alias_declaration":
			w.collectTypeAlias(child, defs)
		case "lexical_declaration", "variable_declaration":
			w.collectConstObject(child, defs)
		case "ambient_declaration", "module", "internal_module", "statement_block":
			w.collectDeclarations(child, defs)
		}
	}
}

// collectEnum records an enum declaration as an Enumerated definition. Each
// member contributes its string initializer when present, else its own
// identifier text.
func (w *walker) collectEnum(node *sitter.Node, defs domain.Definitions) {
	var name string
	var body *sitter.Node

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "identifier":
			name = w.text(child)
		case "enum_body":
			body = child
		}
	}

	if name == "" || body == nil {
		return
	}

	def := &domain.Definition{Name: name, Kind: domain.KindEnumerated}
	for i := 0; i < int(body.ChildCount()); i++ {
		member := body.Child(i)
		switch member.Type() {
		case "enum_assignment":
			var memberName, value string
			for j := 0; j < int(member.ChildCount()); j++ {
				mc := member.Child(j)
				switch mc.Type() {
				case "property_identifier":
					memberName = w.text(mc)
				case "string":
					value = w.stringContent(mc)
				}
			}
			if memberName == "" {
				continue
			}
			if value == "" {
				value = memberName
			}
			def.Values = append(def.Values, value)
		case "property_identifier":
			def.Values = append(def.Values, w.text(member))
		}
	}

	defs[name] = def
}

// collectStructured records an interface or class declaration. Members
// without a type annotation are silently skipped. Heritage clauses naming an
// already-extracted structured definition merge its fields underneath the
// subtype's own.
func (w *walker) collectStructured(node *sitter.Node, defs domain.Definitions) {
	var name string
	var body *sitter.Node
	var bases []string

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "type_identifier":
			name = w.text(child)
		case "interface_body", "object_type", "class_body":
			body = child
		case "extends_type_clause":
			bases = append(bases, w.heritageNames(child)...)
		case "class_heritage":
			for j := 0; j < int(child.ChildCount()); j++ {
				clause := child.Child(j)
				if clause.Type() == "extends_clause" || clause.Type() == "implements_clause" {
					bases = append(bases, w.heritageNames(clause)...)
				}
			}
		}
	}

	if name == "" || body == nil {
		return
	}

	own := w.collectMembers(body)

	def := &domain.Definition{Name: name, Kind: domain.KindStructured}

	// Base fields first, subtype fields overriding on name collision. An
	// unknown heritage name degrades to no merge.
	for _, base := range bases {
		baseDef, ok := defs[base]
		if !ok || baseDef.Kind != domain.KindStructured {
			continue
		}
		for _, f := range baseDef.Fields {
			if fieldDeclared(own, f.Name) {
				continue
			}
			if def.FieldIndex(f.Name) >= 0 {
				continue
			}
			def.Fields = append(def.Fields, f)
		}
	}
	def.Fields = append(def.Fields, own...)

	defs[name] = def
}

// collectMembers gathers typed members from an interface or class body in
// declaration order.
func (w *walker) collectMembers(body *sitter.Node) []domain.Field {
	var fields []domain.Field
	for i := 0; i < int(body.ChildCount()); i++ {
		member := body.Child(i)
		switch member.Type() {
		case "property_signature", "public_field_definition":
			var fieldName, typeExpr string
			optional := false
			for j := 0; j < int(member.ChildCount()); j++ {
				mc := member.Child(j)
				switch mc.Type() {
				case "property_identifier":
					fieldName = w.text(mc)
				case "?":
					optional = true
				case "type_annotation":
					typeExpr = w.typeAnnotation(mc)
				}
			}
			if fieldName == "" || typeExpr == "" {
				continue
			}
			if optional {
				fieldName += domain.OptionalSuffix
			}
			fields = append(fields, domain.Field{Name: fieldName, Type: typeExpr})
		}
	}
	return fields
}

// collectTypeAlias records a type alias. A union of literal types becomes an
// Enumerated definition with quotes stripped; any other right-hand side is
// kept as an Alias carrying the raw target text.
func (w *walker) collectTypeAlias(node *sitter.Node, defs domain.Definitions) {
	var name string
	var value *sitter.Node

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "type_identifier":
			// The first identifier is the alias name; a second one is a
			// bare-identifier right-hand side, e.g. `type Foo = Bar`.
			if name == "" {
				name = w.text(child)
			} else if value == nil {
				value = child
			}
		case "type", "=", ";":
		default:
			if name != "" && value == nil {
				value = child
			}
		}
	}

	if name == "" || value == nil {
		return
	}

	if value.Type() == "union_type" {
		if literals, ok := w.literalUnionValues(value); ok {
			defs[name] = &domain.Definition{
				Name:   name,
				Kind:   domain.KindEnumerated,
				Values: literals,
			}
			return
		}
	}

	defs[name] = &domain.Definition{
		Name:   name,
		Kind:   domain.KindAlias,
		Target: w.text(value),
	}
}

// literalUnionValues flattens a union_type node into literal texts. Returns
// false when any alternative is not a literal type.
func (w *walker) literalUnionValues(node *sitter.Node) ([]string, bool) {
	var values []string
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "|":
		case "union_type":
			nested, ok := w.literalUnionValues(child)
			if !ok {
				return nil, false
			}
			values = append(values, nested...)
		case "literal_type":
			values = append(values, w.literalText(child))
		default:
			return nil, false
		}
	}
	return values, true
}

// literalText extracts the value of a literal_type node with quotes stripped.
func (w *walker) literalText(node *sitter.Node) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "string":
			return w.stringContent(child)
		default:
			return w.text(child)
		}
	}
	return ""
}

// collectConstObject records const declarations whose initializer is an
// object literal (property-name vocabulary) or an array of literals. Other
// const declarations are not definitions and are skipped.
func (w *walker) collectConstObject(node *sitter.Node, defs domain.Definitions) {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "variable_declarator" {
			continue
		}

		var name string
		var value *sitter.Node
		for j := 0; j < int(child.ChildCount()); j++ {
			vc := child.Child(j)
			switch vc.Type() {
			case "identifier":
				name = w.text(vc)
			case "object", "array", "as_expression":
				value = vc
			}
		}
		if name == "" || value == nil {
			continue
		}

		// `{...} as const` wraps the literal in an as_expression.
		if value.Type() == "as_expression" {
			inner := value.Child(0)
			if inner == nil {
				continue
			}
			value = inner
		}

		switch value.Type() {
		case "object":
			defs[name] = &domain.Definition{
				Name:   name,
				Kind:   domain.KindEnumerated,
				Values: w.objectPropertyNames(value),
			}
		case "array":
			if literals, ok := w.arrayLiterals(value); ok {
				defs[name] = &domain.Definition{
					Name: name,
					Kind: domain.KindStructured,
					Fields: []domain.Field{
						{Name: name, Values: literals},
					},
				}
			}
		}
	}
}

// objectPropertyNames returns the property names of an object literal in
// declaration order.
func (w *walker) objectPropertyNames(node *sitter.Node) []string {
	var names []string
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "pair" {
			continue
		}
		key := child.Child(0)
		if key == nil {
			continue
		}
		switch key.Type() {
		case "property_identifier":
			names = append(names, w.text(key))
		case "string":
			names = append(names, w.stringContent(key))
		}
	}
	return names
}

// arrayLiterals returns the elements of an array literal when every element
// is a string, number, or boolean literal.
func (w *walker) arrayLiterals(node *sitter.Node) ([]string, bool) {
	var values []string
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "[", "]", ",":
		case "string":
			values = append(values, w.stringContent(child))
		case "number", "true", "false":
			values = append(values, w.text(child))
		default:
			return nil, false
		}
	}
	return values, len(values) > 0
}

// fieldDeclared reports whether fields contains name, ignoring the
// optionality suffix on either side.
func fieldDeclared(fields []domain.Field, name string) bool {
	stripped := stripOptional(name)
	for _, f := range fields {
		if stripOptional(f.Name) == stripped {
			return true
		}
	}
	return false
}
