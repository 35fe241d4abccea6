/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing forms.

It allows developers to define multi-page forms with branching rules using a fluent
builder instead of hand-writing JSON documents. This is particularly useful for
seeding data, unit testing and examples.

Example usage:

	b := dsl.New("Onboarding")

	b.Page("welcome").
		Ask("role", domain.QuestionMultipleChoice, "What is your role?").
		Options("developer", "designer").
		Required().
		When("role", "developer").
		Then("stack").
		Else("tools")

	b.Page("tools").
		Ask("tools", domain.QuestionCheckbox, "Which tools do you use?").
		Options("figma", "sketch")

	b.Page("stack").
		Ask("lang", domain.QuestionShortAnswer, "Favorite language?")

	form, err := b.Build()
	// ... result := flow.Build(form.Pages)
*/
package dsl
