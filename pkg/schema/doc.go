// Package schema validates submitted answers against the questions of a form.
//
// It defines a small type system (strings, bounded integers, choices, lists,
// dates) and derives a Schema mapping each question ID to the type of answer
// it accepts:
//
//	s := schema.ForForm(form)
//	if err := schema.Validate(s, response.Answers); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        // Handle validation errors
//	    }
//	}
//
// Failures are reported as *ValidationError values collected in an
// *AggregateError; both satisfy errors.Is(err, domain.ErrInvalidInput).
package schema
