package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hirepilot/hirepilot/internal/client/analysis"
	"github.com/hirepilot/hirepilot/internal/client/report"
	"github.com/hirepilot/hirepilot/internal/common"
)

const scoreBarWidth = 20

// Analyze submits the current job description and working set as one batch
// and renders the ranked results. A rejected credential clears the session
// so the next protected command sends the user back to login.
func (a *App) Analyze(ctx context.Context) error {
	fmt.Fprintln(a.out, "Analyzing resumes...")

	state, err := a.orchestrator.Submit(ctx, a.jobDescription, a.intake.List(), a.session.Current())
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			if clearErr := a.session.Clear(); clearErr != nil {
				a.logger.Warn(ctx, "could not remove persisted credential", "error", clearErr)
			}
			fmt.Fprintln(a.out, "Your session was rejected by the server. Please log in again.")
		}
		fmt.Fprintf(a.out, "Error: %s\n", state.Message)
		return err
	}

	a.renderResults(state.Results)
	return nil
}

// Results re-renders the outcome of the last analysis run.
func (a *App) Results(ctx context.Context) error {
	state := a.orchestrator.State()
	switch state.Phase {
	case analysis.PhaseResults:
		a.renderResults(state.Results)
	case analysis.PhaseError:
		fmt.Fprintf(a.out, "Last analysis failed: %s\n", state.Message)
	case analysis.PhaseSubmitting:
		fmt.Fprintln(a.out, "Analysis in progress...")
	default:
		fmt.Fprintln(a.out, "No results yet. Use 'analyze' first.")
	}
	return nil
}

// Report prints the full plain-text report for the result at the given
// 1-based rank and saves the sanitized HTML next to it.
func (a *App) Report(ctx context.Context, rankArg string) error {
	state := a.orchestrator.State()
	if state.Phase != analysis.PhaseResults {
		fmt.Fprintln(a.out, "No results yet. Use 'analyze' first.")
		return nil
	}

	rank, err := strconv.Atoi(rankArg)
	if err != nil || rank < 1 || rank > len(state.Results) {
		fmt.Fprintf(a.out, "Usage: report <rank> (1..%d)\n", len(state.Results))
		return nil
	}

	res := state.Results[rank-1]
	fmt.Fprintf(a.out, "--- #%d %s (%s) ---\n", rank, res.Filename, report.FormatScore(res.Score))
	fmt.Fprintln(a.out, report.PlainText(res.Report))

	path, err := report.Save(a.config.ReportsDir, res.Filename, res.Report)
	if err != nil {
		a.logger.Warn(ctx, "could not save report", "error", err, "filename", res.Filename)
		return err
	}
	fmt.Fprintf(a.out, "Report saved to: %s\n", path)
	return nil
}

func (a *App) renderResults(results []analysis.CandidateResult) {
	if len(results) == 0 {
		fmt.Fprintln(a.out, "The server returned no results.")
		return
	}

	fmt.Fprintf(a.out, "Top candidates (%d analyzed):\n", len(results))
	for _, r := range report.Rank(results) {
		badge := ""
		if r.Badge != "" {
			badge = " [" + r.Badge + "]"
		}
		fmt.Fprintf(a.out, "#%d%s %s  %s  %s  %s\n",
			r.Rank, badge, r.Filename, report.FormatScore(r.Score), r.Band, scoreBar(r.Score))
	}
	fmt.Fprintln(a.out, "Use 'report <rank>' to read a full report.")
}

// scoreBar renders the clamped score as a fixed-width bar; the numeric label
// next to it stays unclamped.
func scoreBar(score float64) string {
	filled := int(report.BarWidth(score) / 100 * scoreBarWidth)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", scoreBarWidth-filled) + "]"
}
