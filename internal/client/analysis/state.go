// Package analysis contains the candidate-analysis session workflow: the
// state machine that validates readiness, submits one batched request, and
// holds the outcome for rendering.
package analysis

// CandidateResult is one per-candidate outcome as produced by the server. The
// sequence order is the server's ranking, best match first; the client never
// re-sorts it.
type CandidateResult struct {
	Filename string  `json:"filename"`
	Score    float64 `json:"score"`
	Report   string  `json:"report"`
}

// Phase enumerates the workflow states. Exactly one is active at a time.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseError
	PhaseResults
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseError:
		return "error"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// State is the workflow state as a tagged value: Message is set only in
// PhaseError, Results only in PhaseResults. Keeping the three fields in one
// value with a single tag rules out the impossible flag combinations the
// workflow would otherwise have to defend against.
type State struct {
	Phase   Phase
	Message string
	Results []CandidateResult
}
