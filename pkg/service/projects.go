package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/aretw0/canova/pkg/analytics"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/media"
)

// Recent works limits.
const (
	DefaultRecentLimit = 5
	MaxRecentLimit     = 50
)

func validateProjectName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.Invalid("name", "please add a project name")
	}
	if len([]rune(name)) > domain.MaxProjectName {
		return "", domain.Invalid("name", "must be at most %d characters", domain.MaxProjectName)
	}
	return name, nil
}

// CreateProject creates a project owned by userID.
func (s *Service) CreateProject(ctx context.Context, userID, name string) (*domain.Project, error) {
	name, err := validateProjectName(name)
	if err != nil {
		return nil, err
	}

	now := s.now()
	project := &domain.Project{
		ID:        domain.NewID(),
		Name:      name,
		Owner:     userID,
		Forms:     []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.SaveProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	_, err = s.updateUser(ctx, userID, func(u *domain.User) error {
		if !slices.Contains(u.Projects, project.ID) {
			u.Projects = append(u.Projects, project.ID)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to link project to user: %w", err)
	}
	return project, nil
}

// MyProjects lists the projects of userID, newest first.
func (s *Service) MyProjects(ctx context.Context, userID string) ([]*domain.Project, error) {
	return s.store.ListProjects(ctx, userID)
}

// ownedProject loads a project and checks that userID owns it.
func (s *Service) ownedProject(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.Owner != userID {
		return nil, fmt.Errorf("project %s: %w", projectID, domain.ErrForbidden)
	}
	return project, nil
}

// withProject runs a read-modify-write on a project owned by userID.
func (s *Service) withProject(ctx context.Context, userID, projectID string, mutate func(*domain.Project) error) (*domain.Project, error) {
	var project *domain.Project
	err := s.locks.WithLock(ctx, "project:"+projectID, func(ctx context.Context) error {
		var err error
		project, err = s.ownedProject(ctx, userID, projectID)
		if err != nil {
			return err
		}
		if err := mutate(project); err != nil {
			return err
		}
		return s.store.SaveProject(ctx, project)
	})
	if err != nil {
		return nil, err
	}
	return project, nil
}

// GetProject returns a project owned by userID and counts the view.
func (s *Service) GetProject(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	return s.withProject(ctx, userID, projectID, func(p *domain.Project) error {
		p.TotalViews++
		return nil
	})
}

// RenameProject changes the name of a project owned by userID.
func (s *Service) RenameProject(ctx context.Context, userID, projectID, name string) (*domain.Project, error) {
	name, err := validateProjectName(name)
	if err != nil {
		return nil, err
	}
	return s.withProject(ctx, userID, projectID, func(p *domain.Project) error {
		p.Name = name
		p.UpdatedAt = s.now()
		return nil
	})
}

// DeleteProject removes a project owned by userID together with its forms,
// their responses and media.
//
// Each form is purged under its own form lock, never while the project lock
// is held, since DeleteForm takes the two in the opposite order. Forms created
// while the purge runs are swept once the project is gone.
func (s *Service) DeleteProject(ctx context.Context, userID, projectID string) error {
	project, err := s.ownedProject(ctx, userID, projectID)
	if err != nil {
		return err
	}

	purged, err := s.purgeProjectForms(ctx, project.ID)
	if err != nil {
		return err
	}

	err = s.locks.WithLock(ctx, "project:"+project.ID, func(ctx context.Context) error {
		if _, err := s.ownedProject(ctx, userID, project.ID); err != nil {
			return err
		}
		if err := s.store.DeleteProject(ctx, project.ID); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	late, err := s.purgeProjectForms(ctx, project.ID)
	if err != nil {
		return err
	}

	_, err = s.updateUser(ctx, userID, func(u *domain.User) error {
		u.Projects = slices.DeleteFunc(u.Projects, func(id string) bool { return id == project.ID })
		return nil
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("failed to unlink project from user: %w", err)
	}

	s.logger.Info("Project deleted", "project_id", project.ID, "forms", purged+late)
	return nil
}

// purgeProjectForms purges every form currently stored under projectID.
func (s *Service) purgeProjectForms(ctx context.Context, projectID string) (int, error) {
	forms, err := s.store.ListFormsByProject(ctx, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to list project forms: %w", err)
	}
	purged := 0
	for _, f := range forms {
		err := s.locks.WithLock(ctx, "form:"+f.ID, func(ctx context.Context) error {
			// Re-read under the lock so media added by an in-flight update is cleaned too.
			form, err := s.store.GetForm(ctx, f.ID)
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			purged++
			return s.purgeForm(ctx, form)
		})
		if err != nil {
			return purged, err
		}
	}
	return purged, nil
}

// purgeForm deletes a form's media, responses and document.
func (s *Service) purgeForm(ctx context.Context, form *domain.Form) error {
	if s.media != nil {
		if err := media.Cleanup(ctx, s.media, s.logger, form.Pages, nil, s.mediaMarker); err != nil {
			s.logger.Warn("Media cleanup incomplete", "form_id", form.ID, "error", err)
		}
	}
	n, err := s.store.DeleteResponses(ctx, form.ID)
	if err != nil {
		return fmt.Errorf("failed to delete responses of form %s: %w", form.ID, err)
	}
	if err := s.store.DeleteForm(ctx, form.ID); err != nil {
		return fmt.Errorf("failed to delete form %s: %w", form.ID, err)
	}
	s.logger.Info("Form deleted", "form_id", form.ID, "responses", n)
	return nil
}

// WorkType tells projects and forms apart in the recent works list.
type WorkType string

const (
	WorkProject WorkType = "project"
	WorkForm    WorkType = "form"
)

// RecentWork is an entry of the recent works list.
type RecentWork struct {
	Type      WorkType          `json:"type"`
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	ProjectID string            `json:"projectId,omitempty"`
	Status    domain.FormStatus `json:"status,omitempty"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// RecentWorks returns the most recently updated projects and forms of userID combined.
// limit defaults to DefaultRecentLimit and is capped at MaxRecentLimit.
func (s *Service) RecentWorks(ctx context.Context, userID string, limit int) ([]RecentWork, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	limit = min(limit, MaxRecentLimit)

	projects, err := s.store.ListProjects(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	forms, err := s.store.ListFormsByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}

	works := make([]RecentWork, 0, len(projects)+len(forms))
	for _, p := range projects {
		works = append(works, RecentWork{Type: WorkProject, ID: p.ID, Name: p.Name, UpdatedAt: p.UpdatedAt})
	}
	for _, f := range forms {
		works = append(works, RecentWork{
			Type:      WorkForm,
			ID:        f.ID,
			Name:      f.Title,
			ProjectID: f.ProjectID,
			Status:    f.Status,
			UpdatedAt: f.UpdatedAt,
		})
	}

	slices.SortStableFunc(works, func(a, b RecentWork) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	if len(works) > limit {
		works = works[:limit]
	}
	return works, nil
}

// ProjectAnalytics aggregates the forms of a project owned by userID.
func (s *Service) ProjectAnalytics(ctx context.Context, userID, projectID string) (*analytics.ProjectSummary, error) {
	project, err := s.ownedProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	forms, err := s.store.ListFormsByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project forms: %w", err)
	}
	return analytics.SummarizeProject(project, forms), nil
}
