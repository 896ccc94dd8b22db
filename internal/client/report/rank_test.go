package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hirepilot/hirepilot/internal/client/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBand(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{100, BandHigh},
		{82.5, BandHigh},
		{70, BandHigh},
		{69.99, BandMedium},
		{55, BandMedium},
		{40, BandMedium},
		{39.99, BandLow},
		{0, BandLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Band(tt.score), "score %v", tt.score)
	}
}

func TestBadge(t *testing.T) {
	assert.Equal(t, BadgeGold, Badge(0))
	assert.Equal(t, BadgeSilver, Badge(1))
	assert.Equal(t, BadgeBronze, Badge(2))
	assert.Equal(t, "", Badge(3))
	assert.Equal(t, "", Badge(42))
}

func TestBarWidth(t *testing.T) {
	assert.Equal(t, 55.0, BarWidth(55))
	assert.Equal(t, 100.0, BarWidth(120))
	assert.Equal(t, 0.0, BarWidth(-3))
}

func TestFormatScore_Unclamped(t *testing.T) {
	assert.Equal(t, "82.5%", FormatScore(82.5))
	assert.Equal(t, "55.0%", FormatScore(55))
	// The label shows the raw value even when the bar clamps.
	assert.Equal(t, "104.2%", FormatScore(104.2))
}

func TestRank_Scenario(t *testing.T) {
	results := []analysis.CandidateResult{
		{Filename: "alice.pdf", Score: 82.5, Report: "<p>a</p>"},
		{Filename: "bob.docx", Score: 55.0, Report: "<p>b</p>"},
	}

	ranked := Rank(results)
	require.Len(t, ranked, 2)

	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, BadgeGold, ranked[0].Badge)
	assert.Equal(t, BandHigh, ranked[0].Band)
	assert.Equal(t, "alice.pdf", ranked[0].Filename)

	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, BadgeSilver, ranked[1].Badge)
	assert.Equal(t, BandMedium, ranked[1].Band)
	assert.Equal(t, "bob.docx", ranked[1].Filename)
}

func TestRank_PreservesServerOrder(t *testing.T) {
	// Even when a later entry scores higher, the server order stands.
	results := []analysis.CandidateResult{
		{Filename: "first.pdf", Score: 10},
		{Filename: "second.pdf", Score: 90},
	}
	ranked := Rank(results)
	assert.Equal(t, "first.pdf", ranked[0].Filename)
	assert.Equal(t, BadgeGold, ranked[0].Badge)
}

func TestSanitizeHTML_StripsActiveContent(t *testing.T) {
	in := `<h3>Summary</h3><script>alert("x")</script><p onclick="no()">fine</p>`
	out := SanitizeHTML(in)

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, "<h3>Summary</h3>")
	assert.Contains(t, out, "fine")
}

func TestPlainText(t *testing.T) {
	in := "<h3>Skill Match</h3><ul><li>Go &amp; SQL</li><li>Kubernetes</li></ul>"
	out := PlainText(in)

	assert.Contains(t, out, "Skill Match")
	assert.Contains(t, out, "Go & SQL")
	assert.NotContains(t, out, "<")
	assert.True(t, strings.Contains(out, "\n"), "block tags should break lines")
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := Save(dir, "alice.pdf", `<p>ok</p><script>bad()</script>`)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "alice.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<p>ok</p>")
	assert.NotContains(t, string(data), "script")
}
