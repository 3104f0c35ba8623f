// Package variant defines the resume variant configuration model, loading,
// and discovery of variant directories.
package variant

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResumeYAML = `name: jonathan
contact:
  address: "123 Main St, Springfield"
  phone: "555-0100"
  email: "jonathan@example.com"
  link: "github.com/jonathan"
style:
  base: default
  override: compact
mission: "Build reliable systems."
experience:
  - company: Acme Corp
    location: Springfield
    title: Senior Engineer
    dates: "2020 - present"
    summary: "Led the platform team."
    highlights:
      - "Cut build times in half"
      - "Mentored four engineers"
education:
  - school: State University
    degree: "B.S. Computer Science"
    dates: "2012 - 2016"
    details:
      - "Graduated with honors"
interests: "Cycling, woodworking."
`

func writeVariantFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidConfiguration(t *testing.T) {
	path := writeVariantFile(t, validResumeYAML)

	v, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "jonathan", v.Name)
	assert.Equal(t, "jonathan@example.com", v.Contact.Email)
	assert.Equal(t, "default", v.Style.Base)
	assert.Equal(t, "compact", v.Style.Override)
	require.Len(t, v.Experience, 1)
	assert.Equal(t, "Acme Corp", v.Experience[0].Company)
	assert.Equal(t, []string{"Cut build times in half", "Mentored four engineers"}, v.Experience[0].Highlights)
	require.Len(t, v.Education, 1)
	assert.Equal(t, "State University", v.Education[0].School)
}

func TestLoad_DefaultsStyleWhenAbsent(t *testing.T) {
	content := `name: jonathan
contact:
  address: "123 Main St"
  phone: "555-0100"
  email: "jonathan@example.com"
mission: "Build things."
experience:
  - company: Acme Corp
    title: Engineer
    dates: "2020 - 2021"
education:
  - school: State University
    degree: "B.S."
    dates: "2012 - 2016"
`
	path := writeVariantFile(t, content)

	v, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultStyleBase, v.Style.Base)
	assert.Empty(t, v.Style.Override)
}

func TestLoad_MissingName(t *testing.T) {
	content := `contact:
  address: "123 Main St"
  phone: "555-0100"
  email: "jonathan@example.com"
mission: "Build things."
experience:
  - company: Acme Corp
    title: Engineer
    dates: "2020 - 2021"
education:
  - school: State University
    degree: "B.S."
    dates: "2012 - 2016"
`
	path := writeVariantFile(t, content)

	_, err := Load(path)
	require.Error(t, err)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "Name")
}

func TestLoad_MissingContactEmail(t *testing.T) {
	content := `name: jonathan
contact:
  address: "123 Main St"
  phone: "555-0100"
mission: "Build things."
experience:
  - company: Acme Corp
    title: Engineer
    dates: "2020 - 2021"
education:
  - school: State University
    degree: "B.S."
    dates: "2012 - 2016"
`
	path := writeVariantFile(t, content)

	_, err := Load(path)
	require.Error(t, err)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "Email")
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	path := writeVariantFile(t, validResumeYAML+"unexpected_key: nope\n")

	_, err := Load(path)
	require.Error(t, err)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "malformed YAML")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeVariantFile(t, "name: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "failed to read")
}
