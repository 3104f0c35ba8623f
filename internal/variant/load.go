// Package variant defines the resume variant configuration model, loading,
// and discovery of variant directories.
package variant

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is the shared validator instance for required-field checks.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates a variant configuration file.
// Unknown keys and missing required fields are both ConfigurationErrors;
// validation happens here, before any rendering or external invocation.
func Load(path string) (*Variant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{
			Path:    path,
			Message: "failed to read configuration file",
			Cause:   err,
		}
	}

	var v Variant
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil {
		return nil, &ConfigurationError{
			Path:    path,
			Message: "malformed YAML",
			Cause:   err,
		}
	}

	// The original treats the style block as optional with a default base.
	if v.Style.Base == "" {
		v.Style.Base = DefaultStyleBase
	}

	if err := validate.Struct(&v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, &ConfigurationError{
				Path:    path,
				Message: fmt.Sprintf("missing or invalid fields: %s", formatFieldErrors(verrs)),
			}
		}
		return nil, &ConfigurationError{
			Path:    path,
			Message: "validation failed",
			Cause:   err,
		}
	}

	return &v, nil
}

// formatFieldErrors renders validator errors as a compact field list,
// e.g. "Variant.Name (required), Variant.Contact.Email (email)".
func formatFieldErrors(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}
