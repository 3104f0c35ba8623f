// Package main provides the entry point for the resume publishing CLI.
package main

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-publisher/internal/latex"
	"github.com/jonathan/resume-publisher/internal/variant"
)

// Exit codes returned by the CLI. The build surfaces the underlying
// compiler's exit code unchanged when one ran and failed.
const (
	// ExitSuccess indicates all discovered variants built.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (render, compile, publish).
	ExitFailure = 1

	// ExitConfigError indicates an invalid or incomplete configuration.
	ExitConfigError = 2
)

// ExitCodeError carries a specific process exit code through cobra's error
// return path to main.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// exitError maps a pipeline error onto the exit-code contract.
func exitError(err error) error {
	if err == nil {
		return nil
	}

	var procErr *latex.ProcessError
	if errors.As(err, &procErr) && procErr.ExitCode > 0 {
		return &ExitCodeError{Code: procErr.ExitCode, Err: err}
	}

	var cfgErr *variant.ConfigurationError
	if errors.As(err, &cfgErr) {
		return &ExitCodeError{Code: ExitConfigError, Err: err}
	}

	return &ExitCodeError{Code: ExitFailure, Err: err}
}
