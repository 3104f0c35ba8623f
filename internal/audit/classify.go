// Package audit optionally wraps a build invocation, captures its combined
// output plus compiler logs, and classifies failures into a report.
package audit

import "strings"

// Category is a stable, machine-parseable failure category identifier.
type Category string

const (
	CategoryCompilerMissing    Category = "COMPILER_MISSING"
	CategoryTimeout            Category = "COMPILE_TIMEOUT"
	CategoryArtifactMissing    Category = "ARTIFACT_MISSING"
	CategoryCompilationFailed  Category = "COMPILATION_FAILED"
	CategoryTemplateError      Category = "TEMPLATE_ERROR"
	CategoryConfigurationError Category = "CONFIGURATION_ERROR"
	CategoryDiscoveryError     Category = "DISCOVERY_ERROR"
	CategoryFileNotFound       Category = "FILE_NOT_FOUND"
	CategoryNoVariants         Category = "NO_VARIANTS"
	CategoryBuildSucceeded     Category = "BUILD_SUCCEEDED"
	CategoryUnclassified       Category = "UNCLASSIFIED"
)

// rule pairs a marker substring with the category it indicates.
type rule struct {
	marker   string
	category Category
	advice   string
}

// rules is evaluated top to bottom, first match wins. The ordering is the
// precedence contract, not just a search order: environment problems outrank
// compiler failures, compiler failures outrank rendering and configuration
// problems, and the success marker is only consulted once every failure
// marker has missed. Append new rules at the right precedence, never re-sort.
var rules = []rule{
	{"not found in PATH", CategoryCompilerMissing,
		"Install a LaTeX distribution (TeX Live or Tectonic) or point --compiler at one."},
	{"timed out after", CategoryTimeout,
		"The typesetting binary hung past the bounded wait. Raise --compile-timeout or inspect the document for a pathological input."},
	{"postcondition violation", CategoryArtifactMissing,
		"The compiler reported success but produced no PDF. Check that the compiler and its flags match what the pipeline expects."},
	{"LaTeX compilation error", CategoryCompilationFailed,
		"The typesetting binary exited non-zero. Search the raw output for lines starting with '!' to find the first LaTeX error."},
	{"template error", CategoryTemplateError,
		"A template referenced a field the variant configuration does not define, or has invalid syntax. Compare the template against resume.yaml."},
	{"render error", CategoryTemplateError,
		"Rendering could not write its output. Check permissions on the variant build directory."},
	{"configuration error", CategoryConfigurationError,
		"A resume.yaml is malformed or missing required fields. The message names the offending file and fields."},
	{"discovery error", CategoryDiscoveryError,
		"The variant root directory could not be scanned. Check the --resumes path."},
	{"no such file or directory", CategoryFileNotFound,
		"A referenced file is missing. Check template, style, and engine paths."},
	{"no resume variants found", CategoryNoVariants,
		"No subdirectory under the variant root contains a resume.yaml. This is a warning, not a failure."},
	{"variants built and published", CategoryBuildSucceeded,
		"Nothing to do."},
}

// Classification is the outcome of scanning one captured build output.
type Classification struct {
	Category Category
	Matched  string // the first line that matched the winning rule
	Advice   string
}

// Classify scans the captured output line by line against the ordered rule
// set and returns the first matching category. This is intentionally
// heuristic; anything unrecognized falls through to UNCLASSIFIED.
func Classify(output string) Classification {
	lines := strings.Split(output, "\n")
	for _, r := range rules {
		for _, line := range lines {
			if strings.Contains(line, r.marker) {
				return Classification{
					Category: r.category,
					Matched:  strings.TrimSpace(line),
					Advice:   r.advice,
				}
			}
		}
	}
	return Classification{
		Category: CategoryUnclassified,
		Advice:   "No known marker matched. Inspect the full raw output.",
	}
}
