package runner

import (
	"context"

	"github.com/aretw0/canova/pkg/domain"
)

// BackCommand typed as an answer moves the filler to the previous page.
const BackCommand = "<"

// IOHandler defines the strategy for interacting with the filler.
// This allows switching between Text (terminal) and JSON (structured) modes.
type IOHandler interface {
	// ShowPage presents the header of the page about to be filled.
	ShowPage(ctx context.Context, page *domain.Page) error

	// Ask presents a question and reads the raw answer.
	// current is the value already collected for it, if any.
	Ask(ctx context.Context, q domain.Question, current any) (string, error)

	// Notice reports a meta message such as a rejected answer.
	Notice(ctx context.Context, msg string) error
}

// ContentRenderer transforms Markdown before it is printed, e.g. to ANSI.
type ContentRenderer func(string) (string, error)
