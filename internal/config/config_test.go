// Package config provides configuration loading and validation for the CLI.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Valid(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")
	content := `{
		"resumes_dir": "my-resumes",
		"compiler": "tectonic",
		"compile_timeout_seconds": 120,
		"continue_on_error": true
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "my-resumes", cfg.ResumesDir)
	assert.Equal(t, "tectonic", cfg.Compiler)
	assert.Equal(t, 120, cfg.CompileTimeoutSeconds)
	assert.True(t, cfg.ContinueOnError)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := Config{CompileTimeoutSeconds: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingResumesDir(t *testing.T) {
	cfg := Config{ResumesDir: filepath.Join(t.TempDir(), "nope")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resumes directory not found")
}

func TestValidate_ExistingDirs(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := Config{ResumesDir: tmpDir, EngineDir: tmpDir, CompileTimeoutSeconds: 30}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Compiler: "tectonic"}
	merged := cfg.MergeWithDefaults(DefaultConfig())

	assert.Equal(t, "tectonic", merged.Compiler) // explicit value wins
	assert.Equal(t, "resumes", merged.ResumesDir)
	assert.Equal(t, "engine", merged.EngineDir)
	assert.Equal(t, "site", merged.SiteDir)
	assert.Equal(t, "audit", merged.AuditDir)
	assert.Equal(t, 60, merged.CompileTimeoutSeconds)
}

func TestBoolFromEnv(t *testing.T) {
	const key = "RESUME_TEST_FLAG"

	for _, truthy := range []string{"1", "true", "Yes", "ON"} {
		t.Setenv(key, truthy)
		assert.True(t, BoolFromEnv(key), "value %q", truthy)
	}
	for _, falsy := range []string{"", "0", "false", "maybe"} {
		t.Setenv(key, falsy)
		assert.False(t, BoolFromEnv(key), "value %q", falsy)
	}
}
