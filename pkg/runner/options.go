package runner

import (
	"log/slog"
	"time"

	"github.com/aretw0/canova"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithEngine configures the engine deciding page transitions.
func WithEngine(engine *canova.Engine) Option {
	return func(r *Runner) {
		r.engine = engine
	}
}

// WithInputHandler configures the IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.handler = handler
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithClock overrides the time source used for TimeTakenSeconds.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		r.now = now
	}
}
