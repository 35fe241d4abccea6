package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/canova/internal/logging"
	"github.com/aretw0/canova/pkg/observability"
	"github.com/aretw0/canova/pkg/ports"
	"github.com/aretw0/canova/pkg/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// MediaStore is a media host that also serves the files it stores.
type MediaStore interface {
	ports.MediaHost
	// Resolve maps the path under /media/ to a file on disk.
	Resolve(servedPath string) (string, bool)
}

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// Server exposes the CANOVA services as a REST API.
type Server struct {
	svc     *service.Service
	media   MediaStore
	metrics *observability.Metrics
	logger  *slog.Logger
	origins []string
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// Option configures the Server.
type Option func(*Server)

// WithMedia enables uploads and serves stored files under /media/.
// Without it the upload endpoint answers 404.
func WithMedia(store MediaStore) Option {
	return func(s *Server) { s.media = store }
}

// WithMetrics records request metrics and exposes them on /metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithCORSOrigins restricts cross-origin requests to the given origins.
// By default every origin is allowed.
func WithCORSOrigins(origins ...string) Option {
	return func(s *Server) { s.origins = origins }
}

// NewHandler creates the HTTP handler of the API.
func NewHandler(svc *service.Service, opts ...Option) http.Handler {
	s := &Server{
		svc:    svc,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	if s.metrics != nil {
		r.Use(s.observe)
	}

	r.Get("/openapi.yaml", s.GetSpec)
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}
	if s.media != nil {
		r.Get("/media/*", s.ServeMedia)
	}

	HandlerWithOptions(s, ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []MiddlewareFunc{s.authenticate},
		ErrorHandlerFunc: s.paramError,
	})

	return s.newCORS().Handler(r)
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
