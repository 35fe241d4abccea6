package schema

import (
	"errors"
	"fmt"

	"github.com/aretw0/canova/pkg/domain"
)

// ValidationError represents a single answer validation failure.
type ValidationError struct {
	Key    string // Question ID
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("question %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("question %q: %s (got %T)", e.Key, e.Reason, e.Value)
}

// Unwrap makes errors.Is(err, domain.ErrInvalidInput) hold.
func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// ValidationErrors returns all validation errors if err wraps an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
