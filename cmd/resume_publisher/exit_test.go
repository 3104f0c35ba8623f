// Package main provides the entry point for the resume publishing CLI.
package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-publisher/internal/latex"
	"github.com/jonathan/resume-publisher/internal/variant"
)

func TestExitError_Nil(t *testing.T) {
	assert.NoError(t, exitError(nil))
}

func TestExitError_ProcessErrorSurfacesCompilerExitCode(t *testing.T) {
	procErr := &latex.ProcessError{Message: "pdflatex exited with code 12", ExitCode: 12}
	err := exitError(fmt.Errorf("variant consulting: %w", procErr))

	var exitErr *ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 12, exitErr.Code)
}

func TestExitError_ProcessStartFailureFallsBackToFailure(t *testing.T) {
	// ExitCode -1 means the compiler never ran; there is no code to mirror.
	procErr := &latex.ProcessError{Message: "not found in PATH", ExitCode: -1}
	err := exitError(procErr)

	var exitErr *ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitFailure, exitErr.Code)
}

func TestExitError_ConfigurationError(t *testing.T) {
	cfgErr := &variant.ConfigurationError{Path: "resumes/x/resume.yaml", Message: "missing name"}
	err := exitError(fmt.Errorf("variant x: %w", cfgErr))

	var exitErr *ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitConfigError, exitErr.Code)
}

func TestExitError_GenericFailure(t *testing.T) {
	err := exitError(errors.New("boom"))

	var exitErr *ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitFailure, exitErr.Code)
}

func TestExitCodeError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := &ExitCodeError{Code: 3, Err: cause}
	assert.Equal(t, "underlying", err.Error())
	assert.ErrorIs(t, err, cause)

	bare := &ExitCodeError{Code: 3}
	assert.Equal(t, "exit code 3", bare.Error())
}
