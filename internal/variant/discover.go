// Package variant defines the resume variant configuration model, loading,
// and discovery of variant directories.
package variant

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the per-variant configuration file that marks a
// subdirectory as a buildable variant.
const ConfigFileName = "resume.yaml"

// Discover scans root for subdirectories containing a variant configuration
// file and returns their paths in lexicographic order. Subdirectories
// without one are skipped silently. An empty result is not an error; the
// caller decides how to report zero variants.
func Discover(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &DiscoveryError{
			Root:    root,
			Message: "failed to scan variant root directory",
			Cause:   err,
		}
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err != nil {
			continue
		}
		dirs = append(dirs, dir)
	}

	return dirs, nil
}
