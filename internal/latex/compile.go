// Package latex invokes an external typesetting binary to compile rendered
// documents into PDFs.
package latex

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout bounds a single compiler invocation. A hung compiler kills
// the whole pipeline otherwise.
const DefaultTimeout = 60 * time.Second

// DefaultBinary is the typesetting executable used when none is configured.
const DefaultBinary = "pdflatex"

// Compiler wraps one external typesetting binary. Compile makes exactly one
// attempt; retries are the caller's decision.
type Compiler struct {
	Binary    string
	ExtraArgs []string
	Timeout   time.Duration
}

// NewCompiler returns a Compiler with the default binary and timeout.
func NewCompiler() *Compiler {
	return &Compiler{Binary: DefaultBinary, Timeout: DefaultTimeout}
}

// args builds the argument list for the configured binary. pdflatex needs
// nonstopmode so a document error cannot drop into an interactive prompt;
// tectonic keeps its logs on disk for the audit wrapper to collect.
func (c *Compiler) args(texName string) []string {
	var args []string
	switch filepath.Base(c.Binary) {
	case "tectonic":
		args = append(args, "--keep-logs")
	default:
		args = append(args, "-interaction=nonstopmode")
	}
	args = append(args, c.ExtraArgs...)
	return append(args, texName)
}

// Compile runs the typesetting binary against texName inside workDir and
// returns the produced PDF path plus the combined stdout/stderr. The working
// directory must already contain the rendered document and its style and
// section dependencies.
func (c *Compiler) Compile(ctx context.Context, workDir, texName string) (pdfPath string, logOutput string, err error) {
	binary := c.Binary
	if binary == "" {
		binary = DefaultBinary
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	if _, err := exec.LookPath(binary); err != nil {
		return "", "", &ProcessError{
			Message:  fmt.Sprintf("%s not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, Tectonic)", binary),
			ExitCode: -1,
			Cause:    err,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, c.args(texName)...)
	cmd.Dir = workDir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	logOutput = stdout.String() + stderr.String()

	if ctx.Err() == context.DeadlineExceeded {
		return "", logOutput, &TimeoutError{
			Message: fmt.Sprintf("%s %s in %s", binary, texName, workDir),
			Timeout: timeout,
			Cause:   runErr,
		}
	}

	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", logOutput, &ProcessError{
			Message:   fmt.Sprintf("%s exited with code %d", binary, exitCode),
			ExitCode:  exitCode,
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	pdfPath = filepath.Join(workDir, strings.TrimSuffix(texName, ".tex")+".pdf")
	if _, statErr := os.Stat(pdfPath); statErr != nil {
		return "", logOutput, &PostconditionError{
			Message:   fmt.Sprintf("%s reported success but %s was not generated", binary, filepath.Base(pdfPath)),
			LogOutput: logOutput,
		}
	}

	return pdfPath, logOutput, nil
}
