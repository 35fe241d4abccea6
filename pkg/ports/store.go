package ports

import (
	"context"

	"github.com/aretw0/canova/pkg/domain"
)

// UserStore persists user accounts.
type UserStore interface {
	// CreateUser inserts a new account.
	// Returns domain.ErrEmailTaken if another account uses the same email.
	CreateUser(ctx context.Context, user *domain.User) error

	// GetUser returns domain.ErrUserNotFound if the account does not exist.
	GetUser(ctx context.Context, id string) (*domain.User, error)

	// GetUserByEmail looks an account up by its (lowercased) email.
	// Returns domain.ErrUserNotFound if no account matches.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdateUser overwrites an existing account.
	// Returns domain.ErrUserNotFound if the account does not exist.
	UpdateUser(ctx context.Context, user *domain.User) error
}

// ProjectStore persists projects.
type ProjectStore interface {
	// SaveProject inserts or replaces a project.
	SaveProject(ctx context.Context, project *domain.Project) error

	// GetProject returns domain.ErrProjectNotFound if the project does not exist.
	GetProject(ctx context.Context, id string) (*domain.Project, error)

	// DeleteProject removes a project. Deleting a missing project is not an error.
	DeleteProject(ctx context.Context, id string) error

	// ListProjects returns the projects of owner, most recently created first.
	ListProjects(ctx context.Context, owner string) ([]*domain.Project, error)
}

// FormStore persists forms.
type FormStore interface {
	// SaveForm inserts or replaces a form.
	SaveForm(ctx context.Context, form *domain.Form) error

	// GetForm returns domain.ErrFormNotFound if the form does not exist.
	GetForm(ctx context.Context, id string) (*domain.Form, error)

	// DeleteForm removes a form. Deleting a missing form is not an error.
	DeleteForm(ctx context.Context, id string) error

	// ListFormsByProject returns the forms of a project in creation order.
	ListFormsByProject(ctx context.Context, projectID string) ([]*domain.Form, error)

	// ListFormsByOwner returns the forms of owner, most recently updated first.
	ListFormsByOwner(ctx context.Context, owner string) ([]*domain.Form, error)

	// ListFormsSharedWith returns the forms whose share list contains userID,
	// most recently updated first.
	ListFormsSharedWith(ctx context.Context, userID string) ([]*domain.Form, error)
}

// ResponseStore persists submitted responses.
type ResponseStore interface {
	// SaveResponse inserts or replaces a response.
	SaveResponse(ctx context.Context, response *domain.Response) error

	// GetResponse returns domain.ErrResponseNotFound if the response does not exist.
	GetResponse(ctx context.Context, id string) (*domain.Response, error)

	// ListResponses returns the responses of a form, oldest first.
	ListResponses(ctx context.Context, formID string) ([]*domain.Response, error)

	// DeleteResponses removes every response of a form and returns how many were removed.
	DeleteResponses(ctx context.Context, formID string) (int, error)
}

// Store bundles every document store the services need.
// Each adapter package provides a single type implementing it.
type Store interface {
	UserStore
	ProjectStore
	FormStore
	ResponseStore
}
