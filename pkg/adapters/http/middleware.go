package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/canova/pkg/auth"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func (s *Server) newCORS() *cors.Cors {
	opts := cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         int((2 * time.Hour).Seconds()),
	}
	if len(s.origins) == 0 {
		opts.AllowOriginFunc = func(origin string) bool { return true }
	} else {
		opts.AllowedOrigins = s.origins
	}
	return cors.New(opts)
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// authenticate attaches the caller identity when a valid bearer token is sent.
// Operations declaring bearer security reject a missing or invalid token.
// The others continue anonymously.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, required := r.Context().Value(BearerAuthScopes).([]string)
		token := bearerToken(r)
		if token == "" {
			if required {
				s.fail(w, r, domain.ErrUnauthenticated)
				return
			}
			next.ServeHTTP(w, r)
			return
		}
		id, err := s.svc.Authenticate(r.Context(), token)
		if err != nil {
			if required {
				s.fail(w, r, err)
				return
			}
			s.logger.Debug("Ignoring invalid token on public route", "path", r.URL.Path, "error", err)
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
	})
}

// paramError reports parameters the router could not bind.
func (s *Server) paramError(w http.ResponseWriter, r *http.Request, err error) {
	name := "parameter"
	var required *RequiredParamError
	var invalid *InvalidParamFormatError
	switch {
	case errors.As(err, &required):
		name = required.ParamName
	case errors.As(err, &invalid):
		name = invalid.ParamName
	}
	s.fail(w, r, domain.Invalid(name, "%v", err))
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// observe records request count and latency by route pattern.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.ObserveRequest(route, r.Method, status, time.Since(start))
	})
}
