// Package main provides the entry point for the resume publishing CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_publisher",
	Short: "Resume variant build and publish pipeline",
	Long:  "resume_publisher renders YAML-described resume variants through LaTeX and HTML templates, compiles PDFs with an external typesetting tool, and publishes the result as a static site with a generated index.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var exitErr *ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(ExitFailure)
	}
}
