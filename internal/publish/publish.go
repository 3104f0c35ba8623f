// Package publish copies built variant artifacts into the static-site
// directory tree and generates the site-wide index page.
package publish

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Artifact file names inside a variant's output directory.
const (
	PDFName  = "resume.pdf"
	HTMLName = "resume.html"
	EchoName = "resume.md"
)

// PublishVariant copies a variant's built artifacts from outputDir into
// siteDir/<name>/. The HTML document is published as index.html so each
// variant directory is directly browsable.
func PublishVariant(outputDir, siteDir, name string) error {
	variantDir := filepath.Join(siteDir, name)
	if err := os.MkdirAll(variantDir, 0755); err != nil {
		return fmt.Errorf("failed to create site directory for variant %s: %w", name, err)
	}

	copies := []struct {
		src, dst string
	}{
		{filepath.Join(outputDir, PDFName), filepath.Join(variantDir, PDFName)},
		{filepath.Join(outputDir, HTMLName), filepath.Join(variantDir, "index.html")},
		{filepath.Join(outputDir, EchoName), filepath.Join(variantDir, EchoName)},
	}
	for _, c := range copies {
		if err := copyFile(c.src, c.dst); err != nil {
			return fmt.Errorf("failed to publish %s for variant %s: %w", filepath.Base(c.src), name, err)
		}
	}

	return nil
}

// copyFile copies src to dst, truncating any previous contents.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
