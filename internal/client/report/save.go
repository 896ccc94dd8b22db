package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Save writes the sanitized report for one candidate to dir, creating the
// directory if needed, and returns the written path. The file name is derived
// from the resume filename with an .html extension.
func Save(dir, resumeFilename, fragment string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	base := filepath.Base(resumeFilename)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(SanitizeHTML(fragment)), 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
