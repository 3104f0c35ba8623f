// Package main provides the entry point for the resume publishing CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-publisher/internal/observability"
	"github.com/jonathan/resume-publisher/internal/variant"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered resume variants",
	RunE:  runList,
}

var (
	listResumesDir string
	listVerbose    bool
)

func init() {
	listCmd.Flags().StringVar(&listResumesDir, "resumes", "resumes", "Root directory scanned for variant subdirectories")
	listCmd.Flags().BoolVarP(&listVerbose, "verbose", "v", false, "Print each variant's configuration summary")

	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	dirs, err := variant.Discover(listResumesDir)
	if err != nil {
		return &ExitCodeError{Code: ExitConfigError, Err: err}
	}
	if len(dirs) == 0 {
		fmt.Printf("Warning: no resume variants found under %s\n", listResumesDir)
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	for _, dir := range dirs {
		name := filepath.Base(dir)
		if !listVerbose {
			fmt.Println(name)
			continue
		}
		v, err := variant.Load(filepath.Join(dir, variant.ConfigFileName))
		if err != nil {
			fmt.Printf("%s (invalid: %v)\n", name, err)
			continue
		}
		printer.PrintVariant(v)
	}
	return nil
}
