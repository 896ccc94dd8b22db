package analyze

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractScore(t *testing.T) {
	tests := []struct {
		name   string
		report string
		want   float64
	}{
		{"score line", "### Overall Match Score\nSCORE: 75%\nrest", 75},
		{"score line with spaces", "SCORE: 85 %", 85},
		{"lowercase", "score: 60%", 60},
		{"decimal", "SCORE: 82.5%", 82.5},
		{"fallback percent in head", "The candidate matches about 40% of the requirements.", 40},
		{"percent beyond window ignored", strings.Repeat("x", 300) + " 90%", 0},
		{"no score at all", "No numeric assessment was produced.", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractScore(tt.report))
		})
	}
}

func TestMarkdownToHTML(t *testing.T) {
	out := markdownToHTML("### *Overall Match Score*\nSCORE: 75%\n\n- bullet one\n- bullet two")

	assert.Contains(t, out, "<h3>")
	assert.Contains(t, out, "<li>bullet one</li>")
	assert.Contains(t, out, "SCORE: 75%")
}
