// Package audit optionally wraps a build invocation, captures its combined
// output plus compiler logs, and classifies failures into a report.
package audit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-publisher/internal/config"
)

const (
	// EnvFlag toggles audit capture. Absent or false means passthrough
	// execution with no extra I/O.
	EnvFlag = "RESUME_AUDIT"

	// envChildMarker is set on the wrapped child so it does not try to wrap
	// itself again.
	envChildMarker = "RESUME_AUDIT_WRAPPED"
)

// Enabled reports whether the current process should wrap its build in the
// audit capture layer.
func Enabled() bool {
	return config.BoolFromEnv(EnvFlag) && os.Getenv(envChildMarker) == ""
}

// Wrapper captures one build invocation into a timestamped pair of audit
// files: the raw combined output and a derived classification report.
// Records accumulate across runs; cleanup is manual.
type Wrapper struct {
	Dir        string // audit output directory
	ResumesDir string // variant root, scanned for compiler logs
	Stdout     io.Writer
	Now        func() time.Time
}

// NewWrapper returns a Wrapper writing records under dir and collecting
// compiler logs from the variant directories beneath resumesDir.
func NewWrapper(dir, resumesDir string) *Wrapper {
	return &Wrapper{
		Dir:        dir,
		ResumesDir: resumesDir,
		Stdout:     os.Stdout,
		Now:        time.Now,
	}
}

// Wrap runs the build command, tees its combined stdout/stderr to the
// parent's stdout while capturing it, appends any compiler logs found under
// the variant build directories, writes the raw capture and the
// classification report, and returns the child's exit code unchanged.
// Report generation is unconditional: it runs for success and failure alike,
// and the audit layer never masks the build's status.
func (w *Wrapper) Wrap(ctx context.Context, name string, args ...string) (int, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return 1, fmt.Errorf("failed to create audit directory: %w", err)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), envChildMarker+"=1")

	var buf bytes.Buffer
	out := io.MultiWriter(&buf, w.stdout())
	cmd.Stdout = out
	cmd.Stderr = out

	runErr := cmd.Run()

	exitCode := 0
	var startErr error
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			// The build never started; there is no child exit code to
			// preserve, but the capture is still written.
			exitCode = 1
			startErr = runErr
			fmt.Fprintf(&buf, "audit: failed to start build process: %v\n", runErr)
		}
	}

	captured := buf.String() + w.collectCompilerLogs()

	timestamp := w.Now().UTC()
	stamp := timestamp.Format("20060102_150405")
	rawName := fmt.Sprintf("build_%s.txt", stamp)
	if err := os.WriteFile(filepath.Join(w.Dir, rawName), []byte(captured), 0644); err != nil {
		return exitCode, fmt.Errorf("failed to write audit capture: %w", err)
	}

	report := renderReport(uuid.New(), timestamp, exitCode, rawName, Classify(captured))
	reportName := fmt.Sprintf("build_%s_report.txt", stamp)
	if err := os.WriteFile(filepath.Join(w.Dir, reportName), []byte(report), 0644); err != nil {
		return exitCode, fmt.Errorf("failed to write audit report: %w", err)
	}

	return exitCode, startErr
}

func (w *Wrapper) stdout() io.Writer {
	if w.Stdout != nil {
		return w.Stdout
	}
	return os.Stdout
}

// collectCompilerLogs appends every *.log the typesetting tool left under
// the variant build directories, each prefixed with a path banner.
func (w *Wrapper) collectCompilerLogs() string {
	if w.ResumesDir == "" {
		return ""
	}

	paths, err := filepath.Glob(filepath.Join(w.ResumesDir, "*", "build", "*.log"))
	if err != nil || len(paths) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fmt.Fprintf(&sb, "\n--- compiler log: %s ---\n", path)
		sb.Write(content)
	}
	return sb.String()
}

// renderReport formats the human-readable classification report.
func renderReport(runID uuid.UUID, captured time.Time, exitCode int, rawName string, cls Classification) string {
	var sb strings.Builder
	sb.WriteString("resume build audit report\n")
	sb.WriteString("=========================\n")
	fmt.Fprintf(&sb, "run id:     %s\n", runID)
	fmt.Fprintf(&sb, "captured:   %s\n", captured.Format(time.RFC3339))
	fmt.Fprintf(&sb, "exit code:  %d\n", exitCode)
	fmt.Fprintf(&sb, "raw output: %s\n", rawName)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "category: %s\n", cls.Category)
	if cls.Matched != "" {
		fmt.Fprintf(&sb, "matched:  %s\n", cls.Matched)
	}
	fmt.Fprintf(&sb, "advice:   %s\n", cls.Advice)
	return sb.String()
}
