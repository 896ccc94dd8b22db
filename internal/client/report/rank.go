// Package report is the read-side projection of analysis results: rank order,
// score bands, rank badges, and safe rendering of the report bodies. It never
// mutates server data.
package report

import (
	"fmt"

	"github.com/hirepilot/hirepilot/internal/client/analysis"
)

// Score bands, derived from fixed thresholds.
const (
	BandHigh   = "high"   // score >= 70
	BandMedium = "medium" // 40 <= score < 70
	BandLow    = "low"    // score < 40
)

// Rank badges for the first three positions.
const (
	BadgeGold   = "gold"
	BadgeSilver = "silver"
	BadgeBronze = "bronze"
)

// Band classifies a score into its severity band.
func Band(score float64) string {
	switch {
	case score >= 70:
		return BandHigh
	case score >= 40:
		return BandMedium
	default:
		return BandLow
	}
}

// Badge returns the rank badge for a zero-based position, or "" from the
// fourth position on.
func Badge(index int) string {
	switch index {
	case 0:
		return BadgeGold
	case 1:
		return BadgeSilver
	case 2:
		return BadgeBronze
	default:
		return ""
	}
}

// BarWidth clamps a score into [0,100] for visual width purposes. The numeric
// label always shows the unclamped value; see FormatScore.
func BarWidth(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// FormatScore renders the unclamped score to one decimal place.
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f%%", score)
}

// RankedResult decorates a CandidateResult with its display rank (1-based),
// badge, and band.
type RankedResult struct {
	Rank  int
	Badge string
	Band  string
	analysis.CandidateResult
}

// Rank projects the server-ordered results into ranked rows. Index 0 is the
// best match; the server's order is taken as authoritative and preserved.
func Rank(results []analysis.CandidateResult) []RankedResult {
	out := make([]RankedResult, 0, len(results))
	for i, r := range results {
		out = append(out, RankedResult{
			Rank:            i + 1,
			Badge:           Badge(i),
			Band:            Band(r.Score),
			CandidateResult: r,
		})
	}
	return out
}
