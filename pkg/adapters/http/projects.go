package http

import (
	"net/http"

	"github.com/aretw0/canova/pkg/auth"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/service"
)

// CreateProject handles the POST /api/projects request.
func (s *Server) CreateProject(w http.ResponseWriter, r *http.Request) {
	var body ProjectRequest
	if err := decode(w, r, &body, false); err != nil {
		s.fail(w, r, err)
		return
	}
	project, err := s.svc.CreateProject(r.Context(), auth.UserID(r.Context()), body.Name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusCreated, "project created", project)
}

// RecentWorks handles the GET /api/projects/recent request.
func (s *Server) RecentWorks(w http.ResponseWriter, r *http.Request, params RecentWorksParams) {
	limit := service.DefaultRecentLimit
	if params.Limit != nil {
		limit = *params.Limit
	}
	if limit < 1 || limit > service.MaxRecentLimit {
		s.fail(w, r, domain.Invalid("limit", "must be between 1 and %d", service.MaxRecentLimit))
		return
	}
	works, err := s.svc.RecentWorks(r.Context(), auth.UserID(r.Context()), limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", works)
}

// MyProjects handles the GET /api/projects/myprojects request.
func (s *Server) MyProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.svc.MyProjects(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", projects)
}

// GetProject handles the GET /api/projects/{id} request.
func (s *Server) GetProject(w http.ResponseWriter, r *http.Request, id string) {
	project, err := s.svc.GetProject(r.Context(), auth.UserID(r.Context()), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", project)
}

// RenameProject handles the PUT /api/projects/{id} request.
func (s *Server) RenameProject(w http.ResponseWriter, r *http.Request, id string) {
	var body ProjectRequest
	if err := decode(w, r, &body, false); err != nil {
		s.fail(w, r, err)
		return
	}
	project, err := s.svc.RenameProject(r.Context(), auth.UserID(r.Context()), id, body.Name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "project updated", project)
}

// DeleteProject handles the DELETE /api/projects/{id} request.
func (s *Server) DeleteProject(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.svc.DeleteProject(r.Context(), auth.UserID(r.Context()), id); err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "project deleted", nil)
}

// ProjectAnalytics handles the GET /api/projects/{id}/analytics request.
func (s *Server) ProjectAnalytics(w http.ResponseWriter, r *http.Request, id string) {
	summary, err := s.svc.ProjectAnalytics(r.Context(), auth.UserID(r.Context()), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", summary)
}
