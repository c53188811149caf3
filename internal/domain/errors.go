package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrUnauthorized indicates the caller failed credential verification.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionExpired indicates the stored customer token is past its expiry.
	ErrSessionExpired = errors.New("session expired")
)

// RemoteUserError carries a business-rule violation reported by the commerce
// backend (duplicate email, bad credentials, unknown variant). The message is
// safe to surface verbatim.
type RemoteUserError struct {
	Field   string
	Message string
}

func (e *RemoteUserError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// QueryError wraps GraphQL-level errors returned by the commerce backend.
type QueryError struct {
	Messages []string
}

func (e *QueryError) Error() string {
	if len(e.Messages) == 0 {
		return "backend query failed"
	}
	return "backend query failed: " + e.Messages[0]
}

// ValidationError reports a client-side form check failure. Field names the
// offending input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
