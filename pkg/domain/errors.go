package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is the parent of every "missing document" error.
var ErrNotFound = errors.New("not found")

var (
	// ErrFormNotFound is returned when a form ID cannot be found in the store.
	ErrFormNotFound = fmt.Errorf("form %w", ErrNotFound)
	// ErrProjectNotFound is returned when a project ID cannot be found in the store.
	ErrProjectNotFound = fmt.Errorf("project %w", ErrNotFound)
	// ErrUserNotFound is returned when a user cannot be found by ID or email.
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	// ErrResponseNotFound is returned when a response ID cannot be found in the store.
	ErrResponseNotFound = fmt.Errorf("response %w", ErrNotFound)
	// ErrPageNotFound is returned when a page ID is not part of the form.
	ErrPageNotFound = fmt.Errorf("page %w", ErrNotFound)
)

var (
	// ErrForbidden is returned when the caller lacks access to a resource.
	ErrForbidden = errors.New("access denied")
	// ErrUnauthenticated is returned when an operation requires a signed-in user.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrInvalidCredentials is returned on a failed sign in.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when signing up with an email already in use.
	ErrEmailTaken = errors.New("email already registered")
	// ErrFormNotPublished is returned when filling or submitting a draft form.
	ErrFormNotPublished = errors.New("form is not published")
	// ErrInvalidInput is the parent of every ValidationError.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError reports a rejected field of a request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidInput) hold for every ValidationError.
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid builds a ValidationError.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// MissingAnswersError is returned when leaving a page with unanswered required questions.
type MissingAnswersError struct {
	PageID      string
	QuestionIDs []string
}

func (e *MissingAnswersError) Error() string {
	return fmt.Sprintf("page %q has %d unanswered required question(s)", e.PageID, len(e.QuestionIDs))
}

// Unwrap makes errors.Is(err, ErrInvalidInput) hold.
func (e *MissingAnswersError) Unwrap() error { return ErrInvalidInput }
