// Package api is the HTTP client for the screening backend.
package api

import (
	"context"

	"github.com/hirepilot/hirepilot/internal/client/analysis"
	"github.com/hirepilot/hirepilot/internal/client/intake"
)

// RegistrationForm carries the fields of a registration request.
type RegistrationForm struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// Client is the surface the CLI needs from the backend.
//
// Errors: transport failures wrap common.ErrUnavailable; error statuses come
// back as *common.RequestError carrying the server's detail message, with 401
// additionally wrapping common.ErrorUnauthorized.
type Client interface {
	// Ping checks backend liveness.
	Ping(ctx context.Context) error

	// Register creates a new account. Any 2xx response is success.
	Register(ctx context.Context, form RegistrationForm) error

	// Login exchanges username/password for a bearer credential.
	Login(ctx context.Context, username, password string) (string, error)

	// Analyze submits the job description and every staged file as one
	// multipart request and returns the server-ranked results.
	Analyze(ctx context.Context, credential, jobDescription string, files []intake.File) ([]analysis.CandidateResult, error)
}
