package orchestrator

import (
	"github.com/griffnb/ts-swag/internal/domain"
)

// Closure computes the set of definition names transitively reachable from
// root via field references. The returned set always contains root itself.
// The visited-set check is the cycle guard: a name referencing itself
// directly or transitively is recorded once and never revisited.
func Closure(root string, defs domain.Definitions) map[string]struct{} {
	visited := map[string]struct{}{root: {}}
	if def, ok := defs[root]; ok {
		collectReferences(def, defs, visited)
	}
	return visited
}

// collectReferences walks one definition's references and recurses into any
// referenced definition not yet visited.
func collectReferences(def *domain.Definition, defs domain.Definitions, visited map[string]struct{}) {
	record := func(expr string) {
		name := referencedName(expr)
		if name == "" {
			return
		}
		if _, seen := visited[name]; seen {
			return
		}
		visited[name] = struct{}{}
		if next, ok := defs[name]; ok {
			collectReferences(next, defs, visited)
		}
	}

	switch def.Kind {
	case domain.KindAlias:
		record(def.Target)
	case domain.KindStructured:
		for _, field := range def.Fields {
			if field.IsLiteralList() {
				continue
			}
			record(field.Type)
		}
	}
}

// referencedName reduces a raw type expression to the definition name it
// references, or "" when it only involves built-in types. Unions collapse to
// their first alternative and array markers are stripped.
func referencedName(expr string) string {
	name := domain.NormalizeUnion(expr)
	for domain.IsArrayExpr(name) {
		name = domain.ElementExpr(name)
	}
	if name == "" || domain.IsBuiltinType(name) {
		return ""
	}
	return name
}
