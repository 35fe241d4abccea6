package schema

import (
	"fmt"

	"github.com/aretw0/canova/pkg/domain"
)

// Validate checks submitted answers against the schema.
// Unanswered questions are skipped, since branching may hide whole pages;
// required questions are enforced page by page while filling.
// Answers to questions the schema does not know are rejected.
// Returns an error with all validation failures found.
func Validate(schema Schema, answers []domain.Answer) error {
	var errs []error

	seen := make(map[string]bool, len(answers))
	for _, a := range answers {
		if seen[a.QuestionID] {
			errs = append(errs, &ValidationError{Key: a.QuestionID, Reason: "answered more than once"})
			continue
		}
		seen[a.QuestionID] = true

		typ, exists := schema[a.QuestionID]
		if !exists {
			errs = append(errs, &ValidationError{Key: a.QuestionID, Reason: "not part of the form"})
			continue
		}

		value := a.Value
		if len(a.FileURLs) > 0 && isBlank(value) {
			value = a.FileURLs
		}
		if isBlank(value) {
			continue
		}

		if err := typ.Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    a.QuestionID,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	// If there are errors, aggregate them
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}

	return nil
}

// ValidateForm validates answers against the schema of form.
func ValidateForm(form *domain.Form, answers []domain.Answer) error {
	if err := Validate(ForForm(form), answers); err != nil {
		return fmt.Errorf("form %s: %w", form.ID, err)
	}
	return nil
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	return false
}
