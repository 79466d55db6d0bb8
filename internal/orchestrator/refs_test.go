package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/griffnb/ts-swag/internal/domain"
)

func structured(name string, fields ...domain.Field) *domain.Definition {
	return &domain.Definition{Name: name, Kind: domain.KindStructured, Fields: fields}
}

func TestClosure_DirectReference(t *testing.T) {
	defs := domain.Definitions{
		"A": structured("A", domain.Field{Name: "prop", Type: "B"}),
		"B": structured("B", domain.Field{Name: "val", Type: "string"}),
		"C": structured("C", domain.Field{Name: "other", Type: "string"}),
	}

	reachable := Closure("A", defs)

	assert.Contains(t, reachable, "A")
	assert.Contains(t, reachable, "B")
	assert.NotContains(t, reachable, "C")
}

func TestClosure_SelfReferenceTerminates(t *testing.T) {
	defs := domain.Definitions{
		"Node": structured("Node",
			domain.Field{Name: "value", Type: "string"},
			domain.Field{Name: "next?", Type: "Node"},
		),
	}

	reachable := Closure("Node", defs)

	assert.Equal(t, map[string]struct{}{"Node": {}}, reachable)
}

func TestClosure_MutualCycleTerminates(t *testing.T) {
	defs := domain.Definitions{
		"A": structured("A", domain.Field{Name: "b", Type: "B"}),
		"B": structured("B", domain.Field{Name: "a", Type: "A"}),
	}

	reachable := Closure("A", defs)

	assert.Len(t, reachable, 2)
}

func TestClosure_ArrayReferencePullsElement(t *testing.T) {
	defs := domain.Definitions{
		"Team": structured("Team", domain.Field{Name: "members", Type: "User[]"}),
		"User": structured("User", domain.Field{Name: "id", Type: "string"}),
	}

	reachable := Closure("Team", defs)

	assert.Contains(t, reachable, "User")
}

func TestClosure_UnionUsesFirstAlternativeOnly(t *testing.T) {
	defs := domain.Definitions{
		"Doc":   structured("Doc", domain.Field{Name: "owner", Type: "Admin | Guest"}),
		"Admin": structured("Admin", domain.Field{Name: "id", Type: "string"}),
		"Guest": structured("Guest", domain.Field{Name: "id", Type: "string"}),
	}

	reachable := Closure("Doc", defs)

	assert.Contains(t, reachable, "Admin")
	assert.NotContains(t, reachable, "Guest")
}

func TestClosure_PrimitivesNeverRecorded(t *testing.T) {
	defs := domain.Definitions{
		"User": structured("User",
			domain.Field{Name: "id", Type: "string"},
			domain.Field{Name: "age", Type: "number"},
			domain.Field{Name: "active", Type: "boolean"},
			domain.Field{Name: "meta", Type: "any"},
		),
	}

	reachable := Closure("User", defs)

	assert.Equal(t, map[string]struct{}{"User": {}}, reachable)
}

func TestClosure_ExternalNameRecordedWithoutDefinition(t *testing.T) {
	defs := domain.Definitions{
		"Order": structured("Order", domain.Field{Name: "buyer", Type: "ExternalUser"}),
	}

	reachable := Closure("Order", defs)

	assert.Contains(t, reachable, "ExternalUser")
}

func TestClosure_AliasTarget(t *testing.T) {
	defs := domain.Definitions{
		"Users": {Name: "Users", Kind: domain.KindAlias, Target: "User[]"},
		"User":  structured("User", domain.Field{Name: "id", Type: "string"}),
	}

	reachable := Closure("Users", defs)

	assert.Contains(t, reachable, "User")
}

func TestClosure_EnumHasNoReferences(t *testing.T) {
	defs := domain.Definitions{
		"Role": {Name: "Role", Kind: domain.KindEnumerated, Values: []string{"admin"}},
	}

	reachable := Closure("Role", defs)

	assert.Equal(t, map[string]struct{}{"Role": {}}, reachable)
}
