package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/canova"
	"github.com/aretw0/canova/internal/logging"
	"github.com/aretw0/canova/pkg/auth"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/keylock"
	"github.com/aretw0/canova/pkg/ports"
)

// DefaultBackgroundTimeout bounds response wipes and media cleanups started after a request returned.
const DefaultBackgroundTimeout = 2 * time.Minute

// Service implements the use cases of the application on top of a document store.
type Service struct {
	store  ports.Store
	tokens *auth.Tokens
	engine *canova.Engine
	locks  *keylock.Manager

	media       ports.MediaHost
	mediaMarker string
	frontendURL string

	hooks      domain.LifecycleHooks
	logger     *slog.Logger
	now        func() time.Time
	bgTimeout  time.Duration
	background sync.WaitGroup
}

// Option configures the Service.
type Option func(*Service)

// WithEngine sets the flow engine used to build and navigate forms.
func WithEngine(engine *canova.Engine) Option {
	return func(s *Service) {
		if engine != nil {
			s.engine = engine
		}
	}
}

// WithLocks sets the lock manager serializing form updates.
func WithLocks(locks *keylock.Manager) Option {
	return func(s *Service) {
		if locks != nil {
			s.locks = locks
		}
	}
}

// WithMediaHost enables cleanup of media no page references anymore.
// marker is the base URL of the host; media URLs without it are never deleted.
func WithMediaHost(host ports.MediaHost, marker string) Option {
	return func(s *Service) {
		s.media = host
		s.mediaMarker = marker
	}
}

// WithFrontendURL sets the base of published links.
func WithFrontendURL(url string) Option {
	return func(s *Service) {
		s.frontendURL = url
	}
}

// WithLifecycleHooks registers callbacks for publish and submission events.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Service) {
		s.hooks = hooks
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithBackgroundTimeout bounds background jobs.
func WithBackgroundTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.bgTimeout = d
		}
	}
}

// New creates a Service.
func New(store ports.Store, tokens *auth.Tokens, opts ...Option) *Service {
	s := &Service{
		store:     store,
		tokens:    tokens,
		logger:    logging.NewNop(),
		now:       time.Now,
		bgTimeout: DefaultBackgroundTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.engine == nil {
		s.engine = canova.New(canova.WithLogger(s.logger))
	}
	if s.locks == nil {
		s.locks = keylock.New(keylock.WithLogger(s.logger))
	}
	return s
}

// Engine returns the flow engine.
func (s *Service) Engine() *canova.Engine { return s.engine }

// Wait blocks until every background job has finished.
func (s *Service) Wait() {
	s.background.Wait()
}

// spawn runs job detached from the request, bounded by the background timeout.
// Failures are logged.
func (s *Service) spawn(ctx context.Context, name string, job func(ctx context.Context) error) {
	bg, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.bgTimeout)
	s.background.Add(1)
	go func() {
		defer s.background.Done()
		defer cancel()
		if err := job(bg); err != nil {
			s.logger.Error("Background job failed", "job", name, "error", err)
		}
	}()
}

// withForm loads a form under its lock, lets fn modify it and saves it when fn
// returns save=true.
func (s *Service) withForm(ctx context.Context, formID string, fn func(form *domain.Form) (save bool, err error)) (*domain.Form, error) {
	var form *domain.Form
	err := s.locks.WithLock(ctx, "form:"+formID, func(ctx context.Context) error {
		var err error
		form, err = s.store.GetForm(ctx, formID)
		if err != nil {
			return err
		}
		save, err := fn(form)
		if err != nil || !save {
			return err
		}
		// Forms of a deleted project are being purged and must not come back.
		if _, err := s.store.GetProject(ctx, form.ProjectID); err != nil {
			return err
		}
		return s.store.SaveForm(ctx, form)
	})
	if err != nil {
		return nil, err
	}
	return form, nil
}

func (s *Service) event(kind domain.EventType, formID string) domain.EventBase {
	return domain.EventBase{Timestamp: s.now(), Type: kind, FormID: formID}
}
