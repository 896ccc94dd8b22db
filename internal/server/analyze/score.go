package analyze

import (
	"regexp"
	"strconv"
)

var (
	scoreLineRe    = regexp.MustCompile(`(?i)SCORE:\s*(\d+(?:\.\d+)?)\s*%`)
	anyPercentRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	fallbackWindow = 200
)

// ExtractScore parses the match score out of a generated report. It looks for
// a "SCORE: X%" line first, then falls back to the first percentage in the
// leading part of the text, and finally to zero.
func ExtractScore(report string) float64 {
	if m := scoreLineRe.FindStringSubmatch(report); m != nil {
		if score, err := strconv.ParseFloat(m[1], 64); err == nil {
			return score
		}
	}

	head := report
	if len(head) > fallbackWindow {
		head = head[:fallbackWindow]
	}
	if m := anyPercentRe.FindStringSubmatch(head); m != nil {
		if score, err := strconv.ParseFloat(m[1], 64); err == nil {
			return score
		}
	}
	return 0
}
