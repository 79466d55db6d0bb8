package extractor

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/griffnb/ts-swag/internal/domain"
)

// text returns the raw source text of a node.
func (w *walker) text(node *sitter.Node) string {
	return string(w.content[node.StartByte():node.EndByte()])
}

// stringContent returns the content of a string node without quotes.
func (w *walker) stringContent(node *sitter.Node) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "string_fragment" {
			return w.text(child)
		}
	}
	return strings.Trim(w.text(node), `"'`)
}

// typeAnnotation returns the declared type text of a type_annotation node,
// skipping the leading colon.
func (w *walker) typeAnnotation(node *sitter.Node) string {
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != ":" {
			return strings.TrimSpace(w.text(child))
		}
	}
	return ""
}

// heritageNames extracts base type names from an extends/implements clause.
// Generic bases contribute their unparameterized name.
func (w *walker) heritageNames(node *sitter.Node) []string {
	var names []string
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "type_identifier", "identifier":
			names = append(names, w.text(child))
		case "generic_type":
			for j := 0; j < int(child.ChildCount()); j++ {
				gc := child.Child(j)
				if gc.Type() == "type_identifier" {
					names = append(names, w.text(gc))
					break
				}
			}
		}
	}
	return names
}

// stripOptional removes the optionality suffix from a recorded field name.
func stripOptional(name string) string {
	return strings.TrimSuffix(name, domain.OptionalSuffix)
}
