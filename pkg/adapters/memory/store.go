package memory

import (
	"context"
	"sync"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/ports"
)

// Store implements ports.Store in memory.
// Safe for concurrent use. Documents are copied on write and on read so callers
// never share state with the store.
type Store struct {
	mu        sync.RWMutex
	users     map[string]*domain.User
	emails    map[string]string // email -> user id
	projects  map[string]*domain.Project
	forms     map[string]*domain.Form
	responses map[string]*domain.Response
}

var _ ports.Store = (*Store)(nil)

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		users:     make(map[string]*domain.User),
		emails:    make(map[string]string),
		projects:  make(map[string]*domain.Project),
		forms:     make(map[string]*domain.Form),
		responses: make(map[string]*domain.Response),
	}
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	c.Projects = append([]string(nil), u.Projects...)
	return &c
}

func copyProject(p *domain.Project) *domain.Project {
	c := *p
	c.Forms = append([]string(nil), p.Forms...)
	return &c
}

func copyResponse(r *domain.Response) *domain.Response {
	c := *r
	c.Answers = make([]domain.Answer, len(r.Answers))
	for i, a := range r.Answers {
		a.FileURLs = append([]string(nil), a.FileURLs...)
		c.Answers[i] = a
	}
	return &c
}

// CreateUser stores a new account.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emails[user.Email]; taken {
		return domain.ErrEmailTaken
	}
	s.users[user.ID] = copyUser(user)
	s.emails[user.Email] = user.ID
	return nil
}

// GetUser retrieves an account by ID.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return copyUser(u), nil
}

// GetUserByEmail retrieves an account by email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return copyUser(s.users[id]), nil
}

// UpdateUser overwrites an existing account.
func (s *Store) UpdateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.users[user.ID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if old.Email != user.Email {
		if owner, taken := s.emails[user.Email]; taken && owner != user.ID {
			return domain.ErrEmailTaken
		}
		delete(s.emails, old.Email)
		s.emails[user.Email] = user.ID
	}
	s.users[user.ID] = copyUser(user)
	return nil
}

// SaveProject inserts or replaces a project.
func (s *Store) SaveProject(ctx context.Context, project *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects[project.ID] = copyProject(project)
	return nil
}

// GetProject retrieves a project by ID.
func (s *Store) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return copyProject(p), nil
}

// DeleteProject removes a project.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.projects, id)
	return nil
}

// ListProjects returns the projects of owner, newest first.
func (s *Store) ListProjects(ctx context.Context, owner string) ([]*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*domain.Project{}
	for _, p := range s.projects {
		if p.Owner == owner {
			out = append(out, copyProject(p))
		}
	}
	ports.SortProjectsNewest(out)
	return out, nil
}

// SaveForm inserts or replaces a form.
func (s *Store) SaveForm(ctx context.Context, form *domain.Form) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms[form.ID] = form.Clone()
	return nil
}

// GetForm retrieves a form by ID.
func (s *Store) GetForm(ctx context.Context, id string) (*domain.Form, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.forms[id]
	if !ok {
		return nil, domain.ErrFormNotFound
	}
	return f.Clone(), nil
}

// DeleteForm removes a form.
func (s *Store) DeleteForm(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.forms, id)
	return nil
}

func (s *Store) filterForms(keep func(*domain.Form) bool) []*domain.Form {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*domain.Form{}
	for _, f := range s.forms {
		if keep(f) {
			out = append(out, f.Clone())
		}
	}
	return out
}

// ListFormsByProject returns the forms of a project in creation order.
func (s *Store) ListFormsByProject(ctx context.Context, projectID string) ([]*domain.Form, error) {
	out := s.filterForms(func(f *domain.Form) bool { return f.ProjectID == projectID })
	ports.SortFormsCreated(out)
	return out, nil
}

// ListFormsByOwner returns the forms of owner, most recently updated first.
func (s *Store) ListFormsByOwner(ctx context.Context, owner string) ([]*domain.Form, error) {
	out := s.filterForms(func(f *domain.Form) bool { return f.Owner == owner })
	ports.SortFormsUpdated(out)
	return out, nil
}

// ListFormsSharedWith returns the forms shared with userID, most recently updated first.
func (s *Store) ListFormsSharedWith(ctx context.Context, userID string) ([]*domain.Form, error) {
	out := s.filterForms(func(f *domain.Form) bool {
		_, ok := f.SharedAccess(userID)
		return ok
	})
	ports.SortFormsUpdated(out)
	return out, nil
}

// SaveResponse inserts or replaces a response.
func (s *Store) SaveResponse(ctx context.Context, response *domain.Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[response.ID] = copyResponse(response)
	return nil
}

// GetResponse retrieves a response by ID.
func (s *Store) GetResponse(ctx context.Context, id string) (*domain.Response, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.responses[id]
	if !ok {
		return nil, domain.ErrResponseNotFound
	}
	return copyResponse(r), nil
}

// ListResponses returns the responses of a form, oldest first.
func (s *Store) ListResponses(ctx context.Context, formID string) ([]*domain.Response, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*domain.Response{}
	for _, r := range s.responses {
		if r.FormID == formID {
			out = append(out, copyResponse(r))
		}
	}
	ports.SortResponsesOldest(out)
	return out, nil
}

// DeleteResponses removes every response of a form.
func (s *Store) DeleteResponses(ctx context.Context, formID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, r := range s.responses {
		if r.FormID == formID {
			delete(s.responses, id)
			n++
		}
	}
	return n, nil
}
