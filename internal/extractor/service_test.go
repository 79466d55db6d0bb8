package extractor

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griffnb/ts-swag/internal/domain"
)

func extractTestFile(t *testing.T) domain.Definitions {
	t.Helper()

	defs, err := NewService().Extract(filepath.Join("testdata", "models.ts"), "")
	require.NoError(t, err)
	require.NotEmpty(t, defs)

	return defs
}

func fieldNames(def *domain.Definition) []string {
	names := make([]string, 0, len(def.Fields))
	for _, f := range def.Fields {
		names = append(names, f.Name)
	}
	return names
}

func TestExtract_Interface(t *testing.T) {
	defs := extractTestFile(t)

	user, ok := defs["User"]
	require.True(t, ok)
	assert.Equal(t, domain.KindStructured, user.Kind)
	assert.Equal(t, []string{"id", "name", "age?", "tags", "role"}, fieldNames(user))
	assert.Equal(t, "string[]", user.Fields[3].Type)
	assert.Equal(t, "Role", user.Fields[4].Type)
}

func TestExtract_EnumWithStringInitializers(t *testing.T) {
	defs := extractTestFile(t)

	role, ok := defs["Role"]
	require.True(t, ok)
	assert.Equal(t, domain.KindEnumerated, role.Kind)
	assert.Equal(t, []string{"admin", "user"}, role.Values)
}

func TestExtract_EnumWithoutInitializers(t *testing.T) {
	// Members without initializers contribute their own identifier text.
	defs := extractTestFile(t)

	direction, ok := defs["Direction"]
	require.True(t, ok)
	assert.Equal(t, []string{"Up", "Down"}, direction.Values)
}

func TestExtract_InheritanceMergesBaseFields(t *testing.T) {
	defs := extractTestFile(t)

	model, ok := defs["Model19"]
	require.True(t, ok)
	assert.Equal(t, []string{"id", "created", "extra"}, fieldNames(model))

	// The subtype's declaration wins the collision on created.
	idx := model.FieldIndex("created")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, "number", model.Fields[idx].Type)
}

func TestExtract_LiteralUnionAlias(t *testing.T) {
	defs := extractTestFile(t)

	status, ok := defs["Status"]
	require.True(t, ok)
	assert.Equal(t, domain.KindEnumerated, status.Kind)
	assert.Equal(t, []string{"active", "inactive"}, status.Values)
}

func TestExtract_BareIdentifierAlias(t *testing.T) {
	defs := extractTestFile(t)

	person, ok := defs["Person"]
	require.True(t, ok)
	assert.Equal(t, domain.KindAlias, person.Kind)
	assert.Equal(t, "User", person.Target)
}

func TestExtract_EnumNumericInitializersUseMemberNames(t *testing.T) {
	// Only string literals override the member identifier.
	defs := extractTestFile(t)

	level, ok := defs["Level"]
	require.True(t, ok)
	assert.Equal(t, domain.KindEnumerated, level.Kind)
	assert.Equal(t, []string{"LOW", "HIGH"}, level.Values)
}

func TestExtract_ArrayAlias(t *testing.T) {
	defs := extractTestFile(t)

	users, ok := defs["Users"]
	require.True(t, ok)
	assert.Equal(t, domain.KindAlias, users.Kind)
	assert.Equal(t, "User[]", users.Target)
}

func TestExtract_ConstObjectVocabulary(t *testing.T) {
	defs := extractTestFile(t)

	colors, ok := defs["Colors"]
	require.True(t, ok)
	assert.Equal(t, domain.KindEnumerated, colors.Kind)
	assert.Equal(t, []string{"red", "blue"}, colors.Values)
}

func TestExtract_ConstArrayOfLiterals(t *testing.T) {
	defs := extractTestFile(t)

	sizes, ok := defs["Sizes"]
	require.True(t, ok)
	assert.Equal(t, domain.KindStructured, sizes.Kind)
	require.Len(t, sizes.Fields, 1)
	assert.True(t, sizes.Fields[0].IsLiteralList())
	assert.Equal(t, []string{"small", "medium", "large"}, sizes.Fields[0].Values)
}

func TestExtract_ClassMembersWithoutAnnotationsSkipped(t *testing.T) {
	defs := extractTestFile(t)

	widget, ok := defs["Widget"]
	require.True(t, ok)
	// count has no type annotation and describe is a method; both are
	// silently dropped.
	assert.Equal(t, []string{"label", "weight?"}, fieldNames(widget))
}

func TestExtract_SelfReference(t *testing.T) {
	defs := extractTestFile(t)

	node, ok := defs["Node"]
	require.True(t, ok)
	assert.Equal(t, []string{"value", "next?"}, fieldNames(node))
	assert.Equal(t, "Node", node.Fields[1].Type)
}

func TestExtract_FocusNameMissing(t *testing.T) {
	path := filepath.Join("testdata", "models.ts")

	_, err := NewService().Extract(path, "DoesNotExist")
	require.Error(t, err)

	var notFound *domain.DefinitionNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "DoesNotExist", notFound.Name)
	assert.Equal(t, path, notFound.Source)
}

func TestExtract_FocusNamePresent(t *testing.T) {
	defs, err := NewService().Extract(filepath.Join("testdata", "models.ts"), "User")
	require.NoError(t, err)
	assert.Contains(t, defs, "User")
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := NewService().Extract(filepath.Join("testdata", "nope.ts"), "")
	require.Error(t, err)
}
