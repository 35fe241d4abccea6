package canova

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/canova/internal/logging"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/flow"
)

// Engine is the high-level entry point for the form-flow library.
// It wraps package flow with logging and lifecycle hooks.
type Engine struct {
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	now    func() time.Time
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	return eng
}

// Logger returns the engine logger.
func (e *Engine) Logger() *slog.Logger {
	return e.logger
}

// Build derives the navigation graph of a form's pages.
// formID only labels logs and events and may be empty.
func (e *Engine) Build(ctx context.Context, formID string, pages []domain.Page) *flow.BuildResult {
	logger := e.logger
	if formID != "" {
		logger = logger.With("form_id", formID)
	}

	result := flow.Build(pages, flow.WithLogger(logger))

	if e.hooks.OnFlowBuilt != nil {
		e.hooks.OnFlowBuilt(ctx, &domain.FlowEvent{
			EventBase: domain.EventBase{
				Timestamp: e.now(),
				Type:      domain.EventFlowBuilt,
				FormID:    formID,
			},
			Pages:     len(result.Pages),
			Orphans:   len(result.Orphans),
			Conflicts: len(result.Conflicts),
			Dangling:  len(result.Dangling),
		})
	}
	return result
}

// Lint runs the strict checks of flow.Lint.
func (e *Engine) Lint(pages []domain.Page) *flow.Report {
	return flow.Lint(pages)
}

// Next moves a filler off currentID.
//
// It fails with *domain.MissingAnswersError when a required question of the
// current page is unanswered. On success the current page is pushed onto
// history unless the step is terminal.
func (e *Engine) Next(ctx context.Context, form *domain.Form, currentID string, answers domain.Answers, history *flow.History) (flow.Step, error) {
	current, ok := form.Page(currentID)
	if !ok {
		return flow.Step{}, fmt.Errorf("page %q: %w", currentID, domain.ErrPageNotFound)
	}

	if missing := flow.MissingRequired(current, answers); len(missing) > 0 {
		return flow.Step{}, &domain.MissingAnswersError{PageID: currentID, QuestionIDs: missing}
	}

	step := flow.Next(form.Pages, currentID, answers)
	if !step.Terminal() && history != nil {
		history.Push(currentID)
	}

	e.logger.Debug("Navigated",
		"form_id", form.ID,
		"from", currentID,
		"to", step.PageID,
		"reason", step.Reason,
	)

	if e.hooks.OnNavigate != nil {
		e.hooks.OnNavigate(ctx, &domain.NavigationEvent{
			EventBase: domain.EventBase{
				Timestamp: e.now(),
				Type:      domain.EventPageNavigated,
				FormID:    form.ID,
			},
			FromPageID: currentID,
			ToPageID:   step.PageID,
			Reason:     string(step.Reason),
		})
	}
	return step, nil
}

// Back returns the page to show when the filler goes back, popping it from history.
// With an empty history the filler stays on the first page.
func (e *Engine) Back(form *domain.Form, history *flow.History) (string, bool) {
	if history != nil {
		if id, ok := history.Back(); ok {
			return id, true
		}
	}
	if len(form.Pages) > 0 {
		return form.Pages[0].ID, false
	}
	return "", false
}
