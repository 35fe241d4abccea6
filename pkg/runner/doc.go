/*
Package runner fills a form from a terminal or a pipe.

The Runner shows one page at a time through an IOHandler, asks each question,
validates the typed answer against the question's schema type and lets the
engine pick the next page. Typing BackCommand returns to the previous page.
When the filler leaves a terminal page the collected answers become a
domain.Response ready to be stored or submitted.

Two handlers are provided: TextHandler for people, optionally rendering page
headers as Markdown, and JSONHandler for scripts speaking JSON Lines.

# Usage

	r := runner.New(
		runner.WithEngine(engine),
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
	)
	response, err := r.Run(ctx, form)
*/
package runner
