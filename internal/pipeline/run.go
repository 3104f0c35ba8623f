// Package pipeline provides the high-level orchestration for the resume
// publishing process: discover variants, render, compile, publish.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-publisher/internal/latex"
	"github.com/jonathan/resume-publisher/internal/observability"
	"github.com/jonathan/resume-publisher/internal/publish"
	"github.com/jonathan/resume-publisher/internal/rendering"
	"github.com/jonathan/resume-publisher/internal/variant"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Variant string `json:"variant"`
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Step names reported through ProgressEvents.
const (
	StepLoad    = "load"
	StepRender  = "render"
	StepCompile = "compile"
	StepPublish = "publish"
)

// sectionNames are the per-section LaTeX templates rendered for every
// variant, in document order.
var sectionNames = []string{"header", "mission", "experience", "education", "interests"}

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	ResumesDir      string
	EngineDir       string
	SiteDir         string
	Compiler        *latex.Compiler
	ContinueOnError bool
	Verbose         bool
	Out             io.Writer
	OnProgress      ProgressCallback
}

// Summary reports the per-variant outcome of one pipeline run. Failed is
// keyed by variant name.
type Summary struct {
	Discovered []string
	Built      []string
	Failed     map[string]error
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, name, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Variant: name,
			Step:    step,
			Message: message,
		})
	}
}

// Run orchestrates the full publishing pipeline. Variants build one at a
// time, in discovery order; each owns a disjoint build/ and output/
// directory, so no state leaks across variants. The default policy is
// fail-fast: the first failing variant halts the run and its error
// propagates. With ContinueOnError the remaining variants still build and
// the failures come back joined.
func Run(ctx context.Context, opts RunOptions) (*Summary, error) {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	printer := observability.NewPrinter(out)

	compiler := opts.Compiler
	if compiler == nil {
		compiler = latex.NewCompiler()
	}

	dirs, err := variant.Discover(opts.ResumesDir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Failed: make(map[string]error)}
	for _, dir := range dirs {
		summary.Discovered = append(summary.Discovered, filepath.Base(dir))
	}

	if len(dirs) == 0 {
		// Zero variants is success-with-warning, not an error. The index is
		// still written so the published site never serves a stale one.
		fmt.Fprintf(out, "Warning: no resume variants found under %s\n", opts.ResumesDir)
		if err := publish.WriteSiteIndex(opts.SiteDir, nil); err != nil {
			return summary, err
		}
		return summary, nil
	}

	for i, dir := range dirs {
		name := filepath.Base(dir)
		fmt.Fprintf(out, "Building variant %d/%d: %s...\n", i+1, len(dirs), name)

		if err := buildVariant(ctx, &opts, compiler, printer, out, dir, name); err != nil {
			summary.Failed[name] = err
			if !opts.ContinueOnError {
				return summary, fmt.Errorf("variant %s: %w", name, err)
			}
			fmt.Fprintf(out, "Warning: variant %s failed: %v\n", name, err)
			continue
		}

		summary.Built = append(summary.Built, name)
	}

	if err := publish.WriteSiteIndex(opts.SiteDir, summary.Built); err != nil {
		return summary, err
	}

	if opts.Verbose {
		printer.PrintBuildSummary(summary.Discovered, summary.Built, summary.Failed)
	}

	if len(summary.Failed) > 0 {
		joined := make([]error, 0, len(summary.Failed))
		for _, name := range summary.Discovered {
			if err, ok := summary.Failed[name]; ok {
				joined = append(joined, fmt.Errorf("variant %s: %w", name, err))
			}
		}
		return summary, errors.Join(joined...)
	}

	fmt.Fprintf(out, "All %d variants built and published.\n", len(summary.Built))
	return summary, nil
}

// buildVariant runs one variant through load, render, compile, publish.
// Rendering always completes (or fails) before the external compiler is
// invoked, so configuration and template errors never cost a process spawn.
func buildVariant(ctx context.Context, opts *RunOptions, compiler *latex.Compiler, printer *observability.Printer, out io.Writer, dir, name string) error {
	v, err := variant.Load(filepath.Join(dir, variant.ConfigFileName))
	if err != nil {
		return err
	}
	emitProgress(opts, name, StepLoad, "loaded configuration")
	if opts.Verbose {
		printer.PrintVariant(v)
	}

	buildDir := filepath.Join(dir, "build")
	outputDir := filepath.Join(dir, "output")
	for _, d := range []string{buildDir, outputDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}

	// The compiler resolves \usepackage and \input paths relative to the
	// build directory, so the engine tree is copied alongside the document.
	if err := copyTree(opts.EngineDir, filepath.Join(buildDir, "engine")); err != nil {
		return fmt.Errorf("failed to copy engine into build directory: %w", err)
	}

	if err := rendering.RenderFile(
		filepath.Join(opts.EngineDir, "latex", "resume.tex.tmpl"),
		filepath.Join(buildDir, "resume.tex"), v); err != nil {
		return err
	}
	for _, section := range sectionNames {
		if err := rendering.RenderFile(
			filepath.Join(opts.EngineDir, "latex", "sections", section+".tex.tmpl"),
			filepath.Join(buildDir, "engine", "latex", "sections", section+".tex"), v); err != nil {
			return err
		}
	}

	if err := rendering.RenderFile(
		filepath.Join(opts.EngineDir, "html", "resume.html.tmpl"),
		filepath.Join(outputDir, publish.HTMLName), v); err != nil {
		return err
	}

	if err := writeEcho(filepath.Join(outputDir, publish.EchoName), v); err != nil {
		return err
	}
	emitProgress(opts, name, StepRender, "rendered LaTeX, HTML, and echo outputs")

	pdfPath, _, err := compiler.Compile(ctx, buildDir, "resume.tex")
	if err != nil {
		return err
	}
	emitProgress(opts, name, StepCompile, "compiled PDF")

	pdfBytes, err := os.ReadFile(pdfPath)
	if err != nil {
		return fmt.Errorf("failed to read compiled PDF: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, publish.PDFName), pdfBytes, 0644); err != nil {
		return fmt.Errorf("failed to copy compiled PDF into output directory: %w", err)
	}

	if err := publish.PublishVariant(outputDir, opts.SiteDir, name); err != nil {
		return err
	}
	emitProgress(opts, name, StepPublish, "published variant to site directory")
	fmt.Fprintf(out, "  ✓ %s published\n", name)

	return nil
}

// writeEcho writes the structured-data echo of the variant configuration.
// Parsing it back yields the original configuration (round-trip property).
func writeEcho(path string, v *variant.Variant) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal variant echo: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write variant echo: %w", err)
	}
	return nil
}

// copyTree copies the src directory tree into dst, overwriting existing
// files from previous runs.
func copyTree(src, dst string) error {
	return fs.WalkDir(os.DirFS(src), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, path)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := os.ReadFile(filepath.Join(src, path))
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0644)
	})
}
