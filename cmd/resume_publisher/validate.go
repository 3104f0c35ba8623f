// Package main provides the entry point for the resume publishing CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-publisher/internal/schemas"
	"github.com/jonathan/resume-publisher/internal/variant"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate variant configurations without building",
	Long:  "Checks every discovered resume.yaml against the variant JSON Schema and the required-field rules. No templates are rendered and no compiler is invoked.",
	RunE:  runValidate,
}

var (
	validateResumesDir string
	validateSchemaFile string
)

func init() {
	validateCmd.Flags().StringVar(&validateResumesDir, "resumes", "resumes", "Root directory scanned for variant subdirectories")
	validateCmd.Flags().StringVar(&validateSchemaFile, "schema", "", "Path to the variant JSON Schema (defaults to the bundled schema)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	schemaPath := validateSchemaFile
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(schemas.VariantSchemaPath)
	}
	if schemaPath == "" {
		return &ExitCodeError{
			Code: ExitConfigError,
			Err:  fmt.Errorf("variant schema not found; pass --schema or run from the repository root"),
		}
	}
	schemaContent, err := os.ReadFile(schemaPath)
	if err != nil {
		return &ExitCodeError{Code: ExitConfigError, Err: fmt.Errorf("failed to read schema: %w", err)}
	}

	dirs, err := variant.Discover(validateResumesDir)
	if err != nil {
		return &ExitCodeError{Code: ExitConfigError, Err: err}
	}
	if len(dirs) == 0 {
		fmt.Printf("Warning: no resume variants found under %s\n", validateResumesDir)
		return nil
	}

	failures := 0
	for _, dir := range dirs {
		name := filepath.Base(dir)
		configPath := filepath.Join(dir, variant.ConfigFileName)

		data, err := os.ReadFile(configPath)
		if err != nil {
			fmt.Printf("✗ %s: %v\n", name, err)
			failures++
			continue
		}
		if err := schemas.ValidateVariantYAML(string(schemaContent), data); err != nil {
			fmt.Printf("✗ %s: %v\n", name, err)
			failures++
			continue
		}
		if _, err := variant.Load(configPath); err != nil {
			fmt.Printf("✗ %s: %v\n", name, err)
			failures++
			continue
		}
		fmt.Printf("✓ %s\n", name)
	}

	if failures > 0 {
		return &ExitCodeError{
			Code: ExitConfigError,
			Err:  fmt.Errorf("%d of %d variant configurations failed validation", failures, len(dirs)),
		}
	}
	return nil
}
