package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/schema"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 4 << 20

// Envelope is the body of every JSON API response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	// Details lists individual failures of a rejected request.
	Details []string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func ok(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

// statusOf maps service errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated), errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrFormNotPublished):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	body := Envelope{Success: false, Message: err.Error()}

	var missing *domain.MissingAnswersError
	switch {
	case status == http.StatusInternalServerError:
		s.logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		body.Message = "internal server error"
	case errors.As(err, &missing):
		body.Details = missing.QuestionIDs
	default:
		for _, e := range schema.ValidationErrors(err) {
			body.Details = append(body.Details, e.Error())
		}
		if len(body.Details) > 1 {
			body.Message = fmt.Sprintf("%d validation errors", len(body.Details))
		}
	}
	writeJSON(w, status, body)
}

// decode reads a JSON body into dest. An empty body is accepted when optional is set.
func decode(w http.ResponseWriter, r *http.Request, dest any, optional bool) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dest)
	if errors.Is(err, io.EOF) && optional {
		return nil
	}
	if err != nil {
		return domain.Invalid("body", "invalid request body: %v", err)
	}
	return nil
}
