package assembler

import (
	"testing"

	"github.com/go-openapi/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griffnb/ts-swag/internal/schema"
)

func docWithSchemas(schemas map[string]spec.Schema) *Document {
	return &Document{
		Paths:      map[string]*PathItem{},
		Components: Components{Schemas: schemas},
	}
}

func TestRewriteRefs_TopLevelAndNested(t *testing.T) {
	user := spec.Schema{}
	user.Type = []string{schema.OBJECT}
	user.Properties = map[string]spec.Schema{
		"role":    *schema.RefSchema("Role"),
		"friends": *spec.ArrayProperty(schema.RefSchema("User")),
	}

	doc := docWithSchemas(map[string]spec.Schema{
		"User":  user,
		"Alias": *schema.RefSchema("User"),
	})

	RewriteRefs(doc)

	rewritten := doc.Components.Schemas["User"]
	role := rewritten.Properties["role"]
	assert.Equal(t, schema.ComponentsPrefix+"Role", role.Ref.String())
	assert.Equal(t, schema.ComponentsPrefix+"User", rewritten.Properties["friends"].Items.Schema.Ref.String())
	alias := doc.Components.Schemas["Alias"]
	assert.Equal(t, schema.ComponentsPrefix+"User", alias.Ref.String())
}

func TestRewriteRefs_OperationContent(t *testing.T) {
	op := &Operation{
		RequestBody: &RequestBody{
			Content: map[string]MediaType{
				"application/json": {Schema: schema.RefSchema("CreateUserRequest")},
			},
		},
		Responses: map[string]Response{
			"200": {Content: map[string]MediaType{
				"application/json": {Schema: schema.RefSchema("User")},
			}},
		},
	}
	doc := docWithSchemas(map[string]spec.Schema{})
	doc.Paths["/users"] = &PathItem{Post: op}

	RewriteRefs(doc)

	reqRef := op.RequestBody.Content["application/json"].Schema.Ref.String()
	assert.Equal(t, schema.ComponentsPrefix+"CreateUserRequest", reqRef)
	respRef := op.Responses["200"].Content["application/json"].Schema.Ref.String()
	assert.Equal(t, schema.ComponentsPrefix+"User", respRef)
}

func TestRewriteRefs_LeavesPlainSchemasAlone(t *testing.T) {
	doc := docWithSchemas(map[string]spec.Schema{
		"Name": *schema.PrimitiveSchema(schema.STRING),
	})

	RewriteRefs(doc)

	assert.Equal(t, spec.StringOrArray{schema.STRING}, doc.Components.Schemas["Name"].Type)
}

func TestRemoveUnusedSchemas_TransitiveReachability(t *testing.T) {
	user := spec.Schema{}
	user.Type = []string{schema.OBJECT}
	user.Properties = map[string]spec.Schema{"role": *schema.RefSchema("Role")}

	doc := docWithSchemas(map[string]spec.Schema{
		"User":   user,
		"Role":   *schema.PrimitiveSchema(schema.STRING),
		"Orphan": *schema.PrimitiveSchema(schema.STRING),
	})
	doc.Paths["/users"] = &PathItem{Get: &Operation{
		Responses: map[string]Response{
			"200": {Content: map[string]MediaType{
				"application/json": {Schema: schema.RefSchema("User")},
			}},
		},
	}}

	RemoveUnusedSchemas(doc)

	assert.Contains(t, doc.Components.Schemas, "User")
	assert.Contains(t, doc.Components.Schemas, "Role")
	assert.NotContains(t, doc.Components.Schemas, "Orphan")
}

func TestRemoveUnusedSchemas_CyclicSchemasTerminate(t *testing.T) {
	node := spec.Schema{}
	node.Type = []string{schema.OBJECT}
	node.Properties = map[string]spec.Schema{"next": *schema.RefSchema("Node")}

	doc := docWithSchemas(map[string]spec.Schema{"Node": node})
	doc.Paths["/nodes"] = &PathItem{Get: &Operation{
		Responses: map[string]Response{
			"200": {Content: map[string]MediaType{
				"application/json": {Schema: schema.RefSchema("Node")},
			}},
		},
	}}

	RemoveUnusedSchemas(doc)

	assert.Contains(t, doc.Components.Schemas, "Node")
}

func TestRemoveUnusedSchemas_ArraySuffixRefResolvesElement(t *testing.T) {
	doc := docWithSchemas(map[string]spec.Schema{
		"User": *schema.PrimitiveSchema(schema.OBJECT),
	})
	doc.Paths["/users"] = &PathItem{Get: &Operation{
		Responses: map[string]Response{
			"200": {Content: map[string]MediaType{
				"application/json": {Schema: schema.RefSchema("User[]")},
			}},
		},
	}}

	RemoveUnusedSchemas(doc)

	require.Contains(t, doc.Components.Schemas, "User")
}
