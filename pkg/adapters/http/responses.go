package http

import (
	"net/http"

	"github.com/aretw0/canova/pkg/auth"
	"github.com/aretw0/canova/pkg/service"
)

// SubmitResponse handles the POST /api/responses/{id} request, where id is the form.
func (s *Server) SubmitResponse(w http.ResponseWriter, r *http.Request, id string) {
	var body service.Submission
	if err := decode(w, r, &body, false); err != nil {
		s.fail(w, r, err)
		return
	}
	resp, err := s.svc.SubmitResponse(r.Context(), auth.UserID(r.Context()), id, body)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusCreated, "response submitted", resp)
}

// FormResponses handles the GET /api/responses/form/{formId} request.
func (s *Server) FormResponses(w http.ResponseWriter, r *http.Request, formId string) {
	list, err := s.svc.FormResponses(r.Context(), auth.UserID(r.Context()), formId)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", list)
}

// GetResponse handles the GET /api/responses/{id} request.
func (s *Server) GetResponse(w http.ResponseWriter, r *http.Request, id string) {
	resp, err := s.svc.GetResponse(r.Context(), auth.UserID(r.Context()), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", resp)
}
