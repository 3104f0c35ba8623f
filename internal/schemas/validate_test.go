// Package schemas provides JSON Schema validation for variant configuration
// documents.
package schemas

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"}
	}
}`

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(minimalSchema, `{"name": "jonathan"}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequired(t *testing.T) {
	err := ValidateJSONString(minimalSchema, `{}`)
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Len(t, valErr.Errors, 1)
	assert.Contains(t, valErr.Error(), "name")
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateVariantYAML_Valid(t *testing.T) {
	yamlDoc := []byte("name: jonathan\n")
	assert.NoError(t, ValidateVariantYAML(minimalSchema, yamlDoc))
}

func TestValidateVariantYAML_Invalid(t *testing.T) {
	yamlDoc := []byte("name: 42\n")
	err := ValidateVariantYAML(minimalSchema, yamlDoc)
	require.Error(t, err)

	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestValidateVariantYAML_MalformedYAML(t *testing.T) {
	err := ValidateVariantYAML(minimalSchema, []byte("name: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestResolveSchemaPath_Found(t *testing.T) {
	tmpDir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	require.NoError(t, os.MkdirAll("schemas", 0755))
	require.NoError(t, os.WriteFile("schemas/test.schema.json", []byte("{}"), 0644))

	resolved := ResolveSchemaPath("schemas/test.schema.json")
	assert.NotEmpty(t, resolved)
}

func TestResolveSchemaPath_NotFound(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/definitely-missing.schema.json"))
}
