// Package common contains shared constants and sentinel errors used across
// the HirePilot client and server. Callers should match these values with
// errors.Is / errors.As.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrUnavailable means no response was received at all: the server is
	// unreachable or the request could not complete.
	ErrUnavailable = errors.New("server unreachable")
)

// RequestError is returned when the server was reachable but answered with an
// error status. Detail carries the server-provided message, if any.
type RequestError struct {
	Status int
	Detail string
}

func (e *RequestError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}
