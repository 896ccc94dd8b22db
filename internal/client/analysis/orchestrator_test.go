package analysis

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hirepilot/hirepilot/internal/client/intake"
	"github.com/hirepilot/hirepilot/internal/common"
	"github.com/hirepilot/hirepilot/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubmitter records Analyze calls and lets tests observe the orchestrator
// mid-flight via the optional during callback.
type fakeSubmitter struct {
	calls      int
	credential string
	jd         string
	files      []intake.File
	out        []CandidateResult
	err        error
	during     func()
}

func (f *fakeSubmitter) Analyze(ctx context.Context, credential, jobDescription string, files []intake.File) ([]CandidateResult, error) {
	f.calls++
	f.credential = credential
	f.jd = jobDescription
	f.files = files
	if f.during != nil {
		f.during()
	}
	return f.out, f.err
}

func newOrchestrator(f *fakeSubmitter) *Orchestrator {
	return NewOrchestrator(f, logging.NewDefault())
}

func someFiles() []intake.File {
	return []intake.File{
		{Name: "alice.pdf", MediaType: common.MediaTypePDF, Data: []byte("a")},
		{Name: "bob.docx", MediaType: common.MediaTypeDocx, Data: []byte("b")},
	}
}

func TestSubmit_EmptyJobDescription_NoNetworkCall(t *testing.T) {
	f := &fakeSubmitter{}
	o := newOrchestrator(f)

	st, err := o.Submit(context.Background(), "   ", someFiles(), "tok")

	require.ErrorIs(t, err, ErrMissingJobDescription)
	assert.Equal(t, 0, f.calls)
	assert.Equal(t, PhaseError, st.Phase)
	assert.Contains(t, st.Message, "job description")
}

func TestSubmit_EmptyFileSet_NoNetworkCall(t *testing.T) {
	f := &fakeSubmitter{}
	o := newOrchestrator(f)

	st, err := o.Submit(context.Background(), "Backend engineer", nil, "tok")

	require.ErrorIs(t, err, ErrMissingResumes)
	assert.Equal(t, 0, f.calls)
	assert.Equal(t, PhaseError, st.Phase)
	assert.Contains(t, st.Message, "resumes")
}

func TestSubmit_JobDescriptionCheckTakesPrecedence(t *testing.T) {
	f := &fakeSubmitter{}
	o := newOrchestrator(f)

	// Both preconditions fail; only the job-description error surfaces.
	_, err := o.Submit(context.Background(), "", nil, "tok")
	require.ErrorIs(t, err, ErrMissingJobDescription)
	assert.Equal(t, 0, f.calls)
}

func TestSubmit_Success(t *testing.T) {
	want := []CandidateResult{
		{Filename: "alice.pdf", Score: 82.5, Report: "<p>ok</p>"},
		{Filename: "bob.docx", Score: 55.0, Report: "<p>ok</p>"},
	}
	f := &fakeSubmitter{out: want}
	o := newOrchestrator(f)

	st, err := o.Submit(context.Background(), "Backend engineer, 3 years Go", someFiles(), "tok")

	require.NoError(t, err)
	assert.Equal(t, 1, f.calls)
	assert.Equal(t, "tok", f.credential)
	assert.Equal(t, PhaseResults, st.Phase)
	assert.Equal(t, want, st.Results)
	// Server order is authoritative: no re-sorting happened.
	assert.Equal(t, "alice.pdf", st.Results[0].Filename)
}

func TestSubmit_EntersSubmittingBeforeResponse(t *testing.T) {
	f := &fakeSubmitter{}
	o := newOrchestrator(f)

	var observed Phase
	f.during = func() { observed = o.State().Phase }

	_, err := o.Submit(context.Background(), "jd", someFiles(), "tok")
	require.NoError(t, err)
	assert.Equal(t, PhaseSubmitting, observed)
}

func TestSubmit_RejectsOverlappingSubmission(t *testing.T) {
	f := &fakeSubmitter{}
	o := newOrchestrator(f)

	var nested error
	f.during = func() {
		_, nested = o.Submit(context.Background(), "jd", someFiles(), "tok")
	}

	_, err := o.Submit(context.Background(), "jd", someFiles(), "tok")
	require.NoError(t, err)
	assert.ErrorIs(t, nested, ErrSubmissionInFlight)
	assert.Equal(t, 1, f.calls)
}

func TestSubmit_FailureMessageTiers(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "server detail wins",
			err:  &common.RequestError{Status: 500, Detail: "model overloaded"},
			want: "model overloaded",
		},
		{
			name: "wrapped detail is still found",
			err:  fmt.Errorf("analyze: %w", &common.RequestError{Status: 502, Detail: "bad gateway"}),
			want: "bad gateway",
		},
		{
			name: "error status without detail",
			err:  &common.RequestError{Status: 500},
			want: "failed to analyze resumes",
		},
		{
			name: "no response at all",
			err:  fmt.Errorf("%w: connection refused", common.ErrUnavailable),
			want: "network error or server is unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeSubmitter{err: tt.err}
			o := newOrchestrator(f)

			st, err := o.Submit(context.Background(), "jd", someFiles(), "tok")
			require.Error(t, err)
			assert.Equal(t, PhaseError, st.Phase)
			assert.Equal(t, tt.want, st.Message)
			assert.Empty(t, st.Results)
		})
	}
}

func TestSubmit_ClearsPriorResults(t *testing.T) {
	f := &fakeSubmitter{out: []CandidateResult{{Filename: "alice.pdf", Score: 80}}}
	o := newOrchestrator(f)

	_, err := o.Submit(context.Background(), "jd", someFiles(), "tok")
	require.NoError(t, err)
	require.Equal(t, PhaseResults, o.State().Phase)

	// Next attempt fails validation: results from the previous run are gone.
	_, err = o.Submit(context.Background(), "", someFiles(), "tok")
	require.ErrorIs(t, err, ErrMissingJobDescription)
	st := o.State()
	assert.Equal(t, PhaseError, st.Phase)
	assert.Empty(t, st.Results)
}

func TestSubmit_UnauthorizedSurfacesAsError(t *testing.T) {
	f := &fakeSubmitter{err: fmt.Errorf("%w: %w", common.ErrorUnauthorized,
		&common.RequestError{Status: 401, Detail: "Could not validate credentials"})}
	o := newOrchestrator(f)

	st, err := o.Submit(context.Background(), "jd", someFiles(), "tok")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorUnauthorized))
	assert.Equal(t, PhaseError, st.Phase)
	assert.Equal(t, "Could not validate credentials", st.Message)
}

func TestReset(t *testing.T) {
	f := &fakeSubmitter{out: []CandidateResult{{Filename: "a.pdf"}}}
	o := newOrchestrator(f)

	_, err := o.Submit(context.Background(), "jd", someFiles(), "tok")
	require.NoError(t, err)

	o.Reset()
	assert.Equal(t, PhaseIdle, o.State().Phase)
}
