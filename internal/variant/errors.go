// Package variant defines the resume variant configuration model, loading,
// and discovery of variant directories.
package variant

import "fmt"

// ConfigurationError represents a malformed or incomplete variant
// configuration file.
type ConfigurationError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Path, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// DiscoveryError represents a failure to scan the variant root directory.
// An empty root is not a DiscoveryError; only an unreadable one is.
type DiscoveryError struct {
	Root    string
	Message string
	Cause   error
}

func (e *DiscoveryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("discovery error: %s: %s: %v", e.Root, e.Message, e.Cause)
	}
	return fmt.Sprintf("discovery error: %s: %s", e.Root, e.Message)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Cause
}
