// Package main provides the entry point for the resume publishing CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-publisher/internal/audit"
	"github.com/jonathan/resume-publisher/internal/config"
	"github.com/jonathan/resume-publisher/internal/latex"
	"github.com/jonathan/resume-publisher/internal/pipeline"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build and publish all resume variants",
	Long:  "Discovers variant directories under the resumes root, renders each through the shared templates, compiles the PDF with the configured typesetting tool, and publishes the outputs plus a site-wide index. Set RESUME_AUDIT=1 to capture the run into timestamped audit files.",
	RunE:  runBuild,
}

var (
	buildConfigFile      string
	buildResumesDir      string
	buildEngineDir       string
	buildSiteDir         string
	buildAuditDir        string
	buildCompiler        string
	buildTimeoutSeconds  int
	buildContinueOnError bool
	buildVerbose         bool
)

func init() {
	buildCmd.Flags().StringVarP(&buildConfigFile, "config", "c", "", "Path to JSON config file (optional)")
	buildCmd.Flags().StringVar(&buildResumesDir, "resumes", "", "Root directory scanned for variant subdirectories")
	buildCmd.Flags().StringVar(&buildEngineDir, "engine", "", "Directory holding the shared templates and styles")
	buildCmd.Flags().StringVar(&buildSiteDir, "site", "", "Publish directory for the static site")
	buildCmd.Flags().StringVar(&buildAuditDir, "audit-dir", "", "Directory for audit captures and reports")
	buildCmd.Flags().StringVar(&buildCompiler, "compiler", "", "Typesetting binary (pdflatex, tectonic, ...)")
	buildCmd.Flags().IntVar(&buildTimeoutSeconds, "compile-timeout", 0, "Bounded wait per compiler invocation, in seconds")
	buildCmd.Flags().BoolVar(&buildContinueOnError, "continue-on-error", false, "Keep building remaining variants after a failure")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed per-variant information")

	rootCmd.AddCommand(buildCmd)
}

// resolveBuildConfig layers flags over the optional config file over the
// built-in defaults. Flags win where set; bools are or-ed since an unset
// flag is indistinguishable from false.
func resolveBuildConfig() (config.Config, error) {
	cfg := config.Config{
		ResumesDir:            buildResumesDir,
		EngineDir:             buildEngineDir,
		SiteDir:               buildSiteDir,
		AuditDir:              buildAuditDir,
		Compiler:              buildCompiler,
		CompileTimeoutSeconds: buildTimeoutSeconds,
		ContinueOnError:       buildContinueOnError,
		Verbose:               buildVerbose,
	}

	if buildConfigFile != "" {
		fileCfg, err := config.LoadConfig(buildConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		cfg.ContinueOnError = cfg.ContinueOnError || fileCfg.ContinueOnError
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
	}

	return cfg.MergeWithDefaults(config.DefaultConfig()), nil
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveBuildConfig()
	if err != nil {
		return &ExitCodeError{Code: ExitConfigError, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return &ExitCodeError{Code: ExitConfigError, Err: err}
	}

	// Audit mode re-runs this same invocation under the capture wrapper.
	// The wrapper re-emits the child's exit code unchanged; it never masks
	// build failure or success.
	if audit.Enabled() {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to resolve executable for audit wrapper: %w", err)
		}
		wrapper := audit.NewWrapper(cfg.AuditDir, cfg.ResumesDir)
		code, err := wrapper.Wrap(cmd.Context(), exe, os.Args[1:]...)
		if err != nil {
			return err
		}
		if code != 0 {
			return &ExitCodeError{
				Code: code,
				Err:  fmt.Errorf("build failed with exit code %d (see report under %s)", code, cfg.AuditDir),
			}
		}
		return nil
	}

	compiler := &latex.Compiler{
		Binary:  cfg.Compiler,
		Timeout: time.Duration(cfg.CompileTimeoutSeconds) * time.Second,
	}

	summary, err := pipeline.Run(cmd.Context(), pipeline.RunOptions{
		ResumesDir:      cfg.ResumesDir,
		EngineDir:       cfg.EngineDir,
		SiteDir:         cfg.SiteDir,
		Compiler:        compiler,
		ContinueOnError: cfg.ContinueOnError,
		Verbose:         cfg.Verbose,
	})
	if err != nil {
		return exitError(err)
	}

	if len(summary.Built) > 0 {
		fmt.Printf("Published %d variants to %s\n", len(summary.Built), cfg.SiteDir)
	}
	return nil
}
