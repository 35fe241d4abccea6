package http

import (
	"net/http"

	"github.com/aretw0/canova/pkg/auth"
	"github.com/aretw0/canova/pkg/service"
)

// Signup handles the POST /api/auth/signup request.
func (s *Server) Signup(w http.ResponseWriter, r *http.Request) {
	var body service.SignupInput
	if err := decode(w, r, &body, false); err != nil {
		s.fail(w, r, err)
		return
	}
	session, err := s.svc.Signup(r.Context(), body)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusCreated, "account created", session)
}

// Signin handles the POST /api/auth/signin request.
func (s *Server) Signin(w http.ResponseWriter, r *http.Request) {
	var body SigninJSONRequestBody
	if err := decode(w, r, &body, false); err != nil {
		s.fail(w, r, err)
		return
	}
	session, err := s.svc.Signin(r.Context(), body.Email, body.Password)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "signed in", session)
}

// Logout handles the POST /api/auth/logout request. Tokens are stateless, the
// client drops its copy.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	ok(w, http.StatusOK, "logged out", nil)
}

// GetProfile handles the GET /api/auth/profile request.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.svc.Profile(r.Context(), auth.UserID(r.Context()))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "", user)
}

// UpdateProfile handles the PUT /api/auth/profile request.
func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var body service.ProfileUpdate
	if err := decode(w, r, &body, false); err != nil {
		s.fail(w, r, err)
		return
	}
	user, err := s.svc.UpdateProfile(r.Context(), auth.UserID(r.Context()), body)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "profile updated", user)
}

// UpdatePreferences handles the PUT /api/auth/preferences request.
func (s *Server) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var body service.PreferencesUpdate
	if err := decode(w, r, &body, false); err != nil {
		s.fail(w, r, err)
		return
	}
	user, err := s.svc.UpdatePreferences(r.Context(), auth.UserID(r.Context()), body)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	ok(w, http.StatusOK, "preferences updated", user)
}

// CheckEmail handles the GET /api/auth/check-email request.
func (s *Server) CheckEmail(w http.ResponseWriter, r *http.Request, params CheckEmailParams) {
	user, found, err := s.svc.CheckEmail(r.Context(), params.Email)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data := map[string]any{"exists": found}
	if found {
		data["user"] = map[string]string{"id": user.ID, "name": user.Name, "email": user.Email}
	}
	ok(w, http.StatusOK, "", data)
}
