package http

import (
	"net/http"

	"github.com/aretw0/canova/internal/presentation/graph"
	"github.com/aretw0/canova/pkg/auth"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/flow"
	"github.com/aretw0/canova/pkg/service"
)

// CreateForm handles the POST /api/forms request.
func (s *Server) CreateForm(w http.ResponseWriter, r *http.Request) {
	var body CreateFormJSONRequestBody
	if err := decode(w, r, &body, false); err != nil {
		s.fail(w, r, err)
		return
	}
	if body.ProjectId == "" {
		s.fail(w, r, domain.Invalid("projectId", "project is required"))
		return
	}
	form, err := s.svc.CreateForm(r.Context(), auth.UserID(r.Context()), body.ProjectId, body.Title)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusCreated, "form created", form)
}

// SharedWithMe handles the GET /api/forms/shared request.
func (s *Server) SharedWithMe(w http.ResponseWriter, r *http.Request) {
	forms, err := s.svc.SharedWithMe(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", forms)
}

// FormsByProject handles the GET /api/forms/project/{projectId} request.
func (s *Server) FormsByProject(w http.ResponseWriter, r *http.Request, projectId string) {
	forms, err := s.svc.FormsByProject(r.Context(), auth.UserID(r.Context()), projectId)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", forms)
}

// GetForm handles the GET /api/forms/{id} request.
func (s *Server) GetForm(w http.ResponseWriter, r *http.Request, id string) {
	form, err := s.svc.GetForm(r.Context(), auth.UserID(r.Context()), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", form)
}

// UpdateForm handles the PUT /api/forms/{id} request.
func (s *Server) UpdateForm(w http.ResponseWriter, r *http.Request, id string) {
	var body service.FormUpdate
	if err := decode(w, r, &body, false); err != nil {
		s.fail(w, r, err)
		return
	}
	form, err := s.svc.UpdateForm(r.Context(), auth.UserID(r.Context()), id, body)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "form updated", form)
}

// DeleteForm handles the DELETE /api/forms/{id} request.
func (s *Server) DeleteForm(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.svc.DeleteForm(r.Context(), auth.UserID(r.Context()), id); err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "form deleted", nil)
}

// PublishForm handles the PUT /api/forms/{id}/publish request.
func (s *Server) PublishForm(w http.ResponseWriter, r *http.Request, id string) {
	form, err := s.svc.PublishForm(r.Context(), auth.UserID(r.Context()), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "form published", form)
}

// ShareForm handles the POST /api/forms/{id}/share request.
func (s *Server) ShareForm(w http.ResponseWriter, r *http.Request, id string) {
	var body ShareFormJSONRequestBody
	if err := decode(w, r, &body, false); err != nil {
		s.fail(w, r, err)
		return
	}
	form, err := s.svc.ShareForm(r.Context(), auth.UserID(r.Context()), id, body.Email, domain.AccessLevel(body.AccessLevel))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "form shared", form)
}

// PublicForm handles the GET /api/forms/public/{id} request.
func (s *Server) PublicForm(w http.ResponseWriter, r *http.Request, id string) {
	form, err := s.svc.PublicForm(r.Context(), auth.UserID(r.Context()), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", form)
}

type navigateRequest struct {
	CurrentPageID string         `json:"currentPageId"`
	Answers       domain.Answers `json:"answers"`
	History       []string       `json:"history"`
}

// NextPage handles the POST /api/forms/public/{id}/next request.
func (s *Server) NextPage(w http.ResponseWriter, r *http.Request, id string) {
	var body navigateRequest
	if err := decode(w, r, &body, false); err != nil {
		s.fail(w, r, err)
		return
	}
	if body.CurrentPageID == "" {
		s.fail(w, r, domain.Invalid("currentPageId", "current page is required"))
		return
	}
	pos, err := s.svc.Navigate(r.Context(), auth.UserID(r.Context()), id, body.CurrentPageID, body.Answers, body.History)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", pos)
}

// PreviousPage handles the POST /api/forms/public/{id}/back request.
func (s *Server) PreviousPage(w http.ResponseWriter, r *http.Request, id string) {
	var body navigateRequest
	if err := decode(w, r, &body, true); err != nil {
		s.fail(w, r, err)
		return
	}
	pos, err := s.svc.Back(r.Context(), auth.UserID(r.Context()), id, body.History)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", pos)
}

// BuildFlow handles the POST /api/forms/{id}/flow request.
func (s *Server) BuildFlow(w http.ResponseWriter, r *http.Request, id string) {
	var body struct {
		Pages []domain.Page `json:"pages"`
	}
	if err := decode(w, r, &body, true); err != nil {
		s.fail(w, r, err)
		return
	}
	result, err := s.svc.BuildFlow(r.Context(), auth.UserID(r.Context()), id, body.Pages)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", result)
}

// LintFlow handles the GET /api/forms/{id}/flow/lint request.
func (s *Server) LintFlow(w http.ResponseWriter, r *http.Request, id string) {
	report, err := s.svc.LintForm(r.Context(), auth.UserID(r.Context()), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", report)
}

// Flowchart handles the GET /api/forms/{id}/flowchart request and returns
// the page graph as Mermaid text.
func (s *Server) Flowchart(w http.ResponseWriter, r *http.Request, id string, params FlowchartParams) {
	form, err := s.svc.GetForm(r.Context(), auth.UserID(r.Context()), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	// A plain build: viewing the chart must not count as a flow build.
	result := flow.Build(form.Pages)

	overlay := &graph.GraphOverlay{Orphans: result.Orphans}
	if params.Current != nil {
		overlay.CurrentPage = *params.Current
	}
	if params.Visited != nil {
		overlay.VisitedPages = *params.Visited
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(graph.GenerateMermaid(result.Pages, overlay)))
}

// FormAnalytics handles the GET /api/forms/{id}/analytics request.
func (s *Server) FormAnalytics(w http.ResponseWriter, r *http.Request, id string) {
	summary, err := s.svc.FormAnalytics(r.Context(), auth.UserID(r.Context()), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", summary)
}
