// Package rendering provides stateless template rendering for resume
// documents (LaTeX, HTML, and the structured-data echo).
package rendering

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/jonathan/resume-publisher/internal/variant"
)

// Render substitutes a variant's fields into a template source and returns
// the rendered text. Rendering is stateless: the same (source, variant) pair
// always produces the same output. A template referencing a field the
// configuration does not define fails with a TemplateError; optional fields
// must be guarded with {{if}} in the template itself.
func Render(name, source string, v *variant.Variant) (string, error) {
	tmpl, err := parseTemplate(name, source)
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, v); err != nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to execute template %s", name),
			Cause:   err,
		}
	}

	return result.String(), nil
}

// RenderFile renders a template file into an output file, creating parent
// directories as needed.
func RenderFile(templatePath, outputPath string, v *variant.Variant) error {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	rendered, err := Render(filepath.Base(templatePath), string(content), v)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &RenderError{
				Message: fmt.Sprintf("failed to create output directory: %s", dir),
				Cause:   err,
			}
		}
	}

	if err := os.WriteFile(outputPath, []byte(rendered), 0644); err != nil {
		return &RenderError{
			Message: fmt.Sprintf("failed to write output file: %s", outputPath),
			Cause:   err,
		}
	}

	return nil
}

// parseTemplate parses a template source with the rendering function map.
func parseTemplate(name, source string) (*template.Template, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
		"join":   strings.Join,
	}).Parse(source)
	if err != nil {
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to parse template %s", name),
			Cause:   err,
		}
	}

	return tmpl, nil
}
