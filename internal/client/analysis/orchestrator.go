package analysis

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/hirepilot/hirepilot/internal/client/intake"
	"github.com/hirepilot/hirepilot/internal/common"
	"github.com/hirepilot/hirepilot/internal/logging"
)

// Validation errors, detected before any network I/O. Only one is surfaced
// per Submit call; the job-description check runs first.
var (
	ErrMissingJobDescription = errors.New("missing job description")
	ErrMissingResumes        = errors.New("missing resumes")

	// ErrSubmissionInFlight rejects a second Submit while one is pending.
	ErrSubmissionInFlight = errors.New("submission already in flight")
)

// User-facing fallback messages for the failure tiers below the
// server-provided detail.
const (
	msgAnalyzeFailed = "failed to analyze resumes"
	msgUnreachable   = "network error or server is unreachable"
)

// Submitter performs the single batched analysis call. Satisfied by the API
// client.
type Submitter interface {
	Analyze(ctx context.Context, credential, jobDescription string, files []intake.File) ([]CandidateResult, error)
}

// Orchestrator drives the submission workflow. It owns the WorkflowState and
// is the only writer of it; at most one submission is in flight at a time.
type Orchestrator struct {
	mu        sync.Mutex
	submitter Submitter
	logger    logging.Logger
	state     State
}

func NewOrchestrator(submitter Submitter, logger logging.Logger) *Orchestrator {
	return &Orchestrator{
		submitter: submitter,
		logger:    logger.With("component", "analysis"),
		state:     State{Phase: PhaseIdle},
	}
}

// State returns a snapshot of the current workflow state. The Results slice
// is shared and must be treated as read-only by callers.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Submit validates readiness, issues exactly one batched request, and applies
// the resulting state transition. Any prior results are cleared as soon as
// the attempt starts. The returned State is the state after the transition;
// the error tells the caller what went wrong (validation errors and transport
// errors are distinguishable with errors.Is / errors.As).
//
// Single-shot semantics: no retry, no partial results, no cancellation beyond
// the passed context. A Submit while another one is pending is rejected with
// ErrSubmissionInFlight and leaves the pending attempt untouched.
func (o *Orchestrator) Submit(ctx context.Context, jobDescription string, files []intake.File, credential string) (State, error) {
	o.mu.Lock()
	if o.state.Phase == PhaseSubmitting {
		st := o.state
		o.mu.Unlock()
		return st, ErrSubmissionInFlight
	}

	// Precondition checks, in order, before any network I/O.
	if strings.TrimSpace(jobDescription) == "" {
		o.state = State{Phase: PhaseError, Message: ErrMissingJobDescription.Error()}
		st := o.state
		o.mu.Unlock()
		return st, ErrMissingJobDescription
	}
	if len(files) == 0 {
		o.state = State{Phase: PhaseError, Message: ErrMissingResumes.Error()}
		st := o.state
		o.mu.Unlock()
		return st, ErrMissingResumes
	}

	o.state = State{Phase: PhaseSubmitting}
	o.mu.Unlock()

	results, err := o.submitter.Analyze(ctx, credential, jobDescription, files)

	o.mu.Lock()
	defer o.mu.Unlock()

	if err != nil {
		o.logger.Error(ctx, "analysis request failed", "error", err, "files", len(files))
		o.state = State{Phase: PhaseError, Message: failureMessage(err)}
		return o.state, err
	}

	o.state = State{Phase: PhaseResults, Results: results}
	return o.state, nil
}

// Reset returns the workflow to Idle, dropping any error or results.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.Phase != PhaseSubmitting {
		o.state = State{Phase: PhaseIdle}
	}
}

// failureMessage maps a submission error to the user-facing message:
// the structured server-provided detail if present, else a generic analyze
// failure for an error status, else the network-unreachable message when no
// response was received at all.
func failureMessage(err error) string {
	var reqErr *common.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.Detail != "" {
			return reqErr.Detail
		}
		return msgAnalyzeFailed
	}
	return msgUnreachable
}
