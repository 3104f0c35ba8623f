// Package publish copies built variant artifacts into the static-site
// directory tree and generates the site-wide index page.
package publish

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

// indexTemplate is the embedded site index page. Variant links are plain
// relative paths so the site works from any base URL.
const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Resume Variants</title>
  <style>
    body { font-family: Arial, Helvetica, sans-serif; max-width: 800px; margin: 0 auto; padding: 48px; color: #111; }
    h1 { margin-bottom: 8px; }
    ul { margin-top: 12px; }
    a { color: #004080; text-decoration: none; }
    a:hover { text-decoration: underline; }
  </style>
</head>
<body>
  <h1>Resume Variants</h1>
  <p>Select a resume variant:</p>
  <ul>
{{- range .Names}}
    <li><a href="{{.}}/">{{.}}</a></li>
{{- end}}
  </ul>
</body>
</html>
`

// WriteSiteIndex renders the site index listing the given variant names in
// alphabetical order. It is written even for an empty list so the published
// site never serves a stale index.
func WriteSiteIndex(siteDir string, names []string) error {
	if err := os.MkdirAll(siteDir, 0755); err != nil {
		return fmt.Errorf("failed to create site directory: %w", err)
	}

	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse site index template: %w", err)
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, struct{ Names []string }{Names: sorted}); err != nil {
		return fmt.Errorf("failed to render site index: %w", err)
	}

	indexPath := filepath.Join(siteDir, "index.html")
	if err := os.WriteFile(indexPath, []byte(result.String()), 0644); err != nil {
		return fmt.Errorf("failed to write site index: %w", err)
	}

	return nil
}
