package report

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Report bodies arrive from the server as HTML fragments and are never
// rendered raw: saved reports go through the UGC policy, terminal output
// through a plain-text projection.
var (
	ugcPolicy  = bluemonday.UGCPolicy()
	textPolicy = bluemonday.StrictPolicy()
)

// SanitizeHTML strips scripts, event handlers, and other active content from
// a report fragment, keeping the formatting markup.
func SanitizeHTML(fragment string) string {
	return ugcPolicy.Sanitize(fragment)
}

var (
	blockBreak    = regexp.MustCompile(`(?i)</(p|li|ul|ol|div|tr|table|h[1-6])>|<br\s*/?>`)
	excessNewline = regexp.MustCompile(`\n{3,}`)
)

// PlainText projects a report fragment to text suitable for the terminal:
// block-level tags become line breaks, everything else is stripped, and HTML
// entities are decoded.
func PlainText(fragment string) string {
	s := blockBreak.ReplaceAllString(fragment, "\n")
	s = textPolicy.Sanitize(s)
	s = html.UnescapeString(s)
	s = excessNewline.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
