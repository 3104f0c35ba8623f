// Package latex invokes an external typesetting binary to compile rendered
// documents into PDFs.
package latex

import (
	"fmt"
	"time"
)

// ProcessError represents a compiler invocation that exited non-zero or
// could not be started. ExitCode is -1 when the process never ran.
type ProcessError struct {
	Message   string
	ExitCode  int
	LogOutput string
	Cause     error
}

func (e *ProcessError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("LaTeX compilation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("LaTeX compilation error: %s", e.Message)
}

func (e *ProcessError) Unwrap() error {
	return e.Cause
}

// PostconditionError represents a zero exit code with no PDF produced.
// It is kept distinct from ProcessError because it indicates a tool-contract
// mismatch rather than a reported failure.
type PostconditionError struct {
	Message   string
	LogOutput string
}

func (e *PostconditionError) Error() string {
	return fmt.Sprintf("LaTeX postcondition violation: %s", e.Message)
}

// TimeoutError represents a compiler invocation that exceeded the bounded
// wait and was killed.
type TimeoutError struct {
	Message string
	Timeout time.Duration
	Cause   error
}

func (e *TimeoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("LaTeX compilation timed out after %s: %s: %v", e.Timeout, e.Message, e.Cause)
	}
	return fmt.Sprintf("LaTeX compilation timed out after %s: %s", e.Timeout, e.Message)
}

func (e *TimeoutError) Unwrap() error {
	return e.Cause
}
