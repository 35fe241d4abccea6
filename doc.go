/*
Package canova is the embeddable entry point of the form-flow engine.

A form is an ordered list of pages. Pages may carry a conditional rule that
sends the filler to one page when every condition holds and to another when one
fails. The Engine turns the page list into a navigation graph at edit time and
walks it at fill time, emitting lifecycle events for each build and each step.

# Usage

	pages := dsl.New("Feedback").
		Page("A").Ask("q1", domain.QuestionMultipleChoice, "Happy?").Options("yes", "no").Required().
		When("q1", "yes").Then("C").Else("B").
		Page("B").Ask("why", domain.QuestionLongAnswer, "What went wrong?").
		Page("C").Ask("rate", domain.QuestionRating, "Rate us").
		Pages()

	eng := canova.New(canova.WithLogger(logger))
	result := eng.Build(ctx, "", pages)
	form := &domain.Form{Pages: result.Pages}

	var history flow.History
	step, err := eng.Next(ctx, form, "A", domain.Answers{"q1": "yes"}, &history)

The graph rules live in package flow; the web application built around the
engine lives in pkg/service and pkg/adapters/http.
*/
package canova
