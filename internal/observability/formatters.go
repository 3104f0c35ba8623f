// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-publisher/internal/variant"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintVariant outputs a human-readable summary of a loaded variant
// configuration.
func (p *Printer) PrintVariant(v *variant.Variant) {
	if v == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Email:  %s\n", v.Contact.Email))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", v.Contact.Phone))
	style := v.Style.Base
	if v.Style.Override != "" {
		style += " + " + v.Style.Override
	}
	sb.WriteString(fmt.Sprintf("Style:  %s\n", style))
	sb.WriteString("\n")

	if len(v.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d entries):\n", len(v.Experience)))
		count := min(len(v.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := v.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s — %s\n", exp.Title, exp.Company))
		}
		if len(v.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(v.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(v.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d entries):\n", len(v.Education)))
		count := min(len(v.Education), maxItemsToShow)
		for i := 0; i < count; i++ {
			edu := v.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", edu.Degree, edu.School))
		}
	}

	p.printBox(fmt.Sprintf("VARIANT: %s", v.Name), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBuildSummary outputs the per-variant outcome of one build run.
func (p *Printer) PrintBuildSummary(discovered, built []string, failed map[string]error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Discovered: %d\n", len(discovered)))
	sb.WriteString(fmt.Sprintf("Built:      %d\n", len(built)))
	sb.WriteString(fmt.Sprintf("Failed:     %d\n", len(failed)))

	if len(built) > 0 {
		sb.WriteString("\n")
		for _, name := range built {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", name))
		}
	}
	if len(failed) > 0 {
		sb.WriteString("\n")
		for _, name := range discovered {
			if err, ok := failed[name]; ok {
				sb.WriteString(fmt.Sprintf("  ✗ %s: %v\n", name, err))
			}
		}
	}

	p.printBox("BUILD SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
