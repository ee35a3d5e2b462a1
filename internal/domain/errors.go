package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is returned by service functions when user input fails a
// local check (missing dates, bad email, expired license). Validation
// failures never reach the external API.
var ErrValidation = errors.New("validation error")

// ErrUpstream is returned by repo functions when the external car-rental API
// cannot be reached, answers with a non-2xx status, or returns a payload that
// breaks the expected contract.
var ErrUpstream = errors.New("upstream error")

// ErrBusy is returned when a booking submission is attempted while an earlier
// submission of the same form is still in flight.
var ErrBusy = errors.New("submission in progress")

// ValidationError carries the user-facing title and detail of a failed check.
// It unwraps to ErrValidation so callers can classify it with errors.Is.
type ValidationError struct {
	Title  string
	Detail string
}

// NewValidationError returns a *ValidationError with the given title and detail.
func NewValidationError(title, detail string) *ValidationError {
	return &ValidationError{Title: title, Detail: detail}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Detail)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// APIError describes a failed call to the external API.
// Status is zero for transport failures. Message is the human-readable text
// shown to the user: the server's "message" field when it sent one, otherwise
// the operation's fallback. Err holds the underlying transport or decode
// error, if any.
type APIError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
}

func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUpstream}
	}
	return []error{ErrUpstream, e.Err}
}
