package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/canova/pkg/analytics"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/flow"
	"github.com/aretw0/canova/pkg/media"
)

func validateFormTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", domain.Invalid("title", "please add a form title")
	}
	if len([]rune(title)) > domain.MaxFormTitle {
		return "", domain.Invalid("title", "must be at most %d characters", domain.MaxFormTitle)
	}
	return title, nil
}

// validatePages rejects page lists the builder cannot address.
func validatePages(pages []domain.Page) error {
	if len(pages) == 0 {
		return domain.Invalid("pages", "a form needs at least one page")
	}
	seen := make(map[string]bool, len(pages))
	for i, p := range pages {
		if strings.TrimSpace(p.ID) == "" {
			return domain.Invalid("pages", "page %d has no id", i+1)
		}
		if seen[p.ID] {
			return domain.Invalid("pages", "duplicate page id %q", p.ID)
		}
		seen[p.ID] = true
		for _, q := range p.Questions() {
			if !q.Type.Valid() {
				return domain.Invalid("pages", "question %q has unknown type %q", q.ID, q.Type)
			}
		}
		if p.ConditionalLogic != nil {
			for j, c := range p.ConditionalLogic.Conditions {
				if strings.TrimSpace(c.QuestionID) == "" {
					return domain.Invalid("pages", "condition %d of page %q has no question", j+1, p.ID)
				}
			}
		}
	}
	return nil
}

func requireAccess(form *domain.Form, userID string, level domain.AccessLevel) error {
	if !form.CanAccess(userID, level) {
		return fmt.Errorf("form %s: %w", form.ID, domain.ErrForbidden)
	}
	return nil
}

func requireOwner(form *domain.Form, userID string) error {
	if userID == "" || form.Owner != userID {
		return fmt.Errorf("form %s: %w", form.ID, domain.ErrForbidden)
	}
	return nil
}

// CreateForm adds a draft form with a default first page to a project owned by userID.
func (s *Service) CreateForm(ctx context.Context, userID, projectID, title string) (*domain.Form, error) {
	title, err := validateFormTitle(title)
	if err != nil {
		return nil, err
	}

	var form *domain.Form
	_, err = s.withProject(ctx, userID, projectID, func(p *domain.Project) error {
		form = domain.NewForm(title, userID, p.ID, s.now())
		form.Pages = s.engine.Build(ctx, form.ID, form.Pages).Pages
		if err := s.store.SaveForm(ctx, form); err != nil {
			return fmt.Errorf("failed to save form: %w", err)
		}
		p.AddForm(form.ID)
		p.UpdatedAt = form.CreatedAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Form created", "form_id", form.ID, "project_id", projectID)
	return form, nil
}

// GetForm returns a form userID may view.
func (s *Service) GetForm(ctx context.Context, userID, formID string) (*domain.Form, error) {
	form, err := s.store.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(form, userID, domain.AccessView); err != nil {
		return nil, err
	}
	return form, nil
}

// FormUpdate lists the editable parts of a form. Nil fields are left unchanged.
type FormUpdate struct {
	Title          *string                `json:"title"`
	Pages          []domain.Page          `json:"pages"`
	AccessSettings *domain.AccessSettings `json:"accessSettings"`
	Status         *domain.FormStatus     `json:"status"`
}

// UpdateForm applies in to a form userID may edit.
//
// New pages are normalized and run through the flow builder before they are
// saved. When the content of a published form changes, it returns to draft, its
// response counters are reset and its responses are deleted in the background.
// Media no page references anymore is removed in the background.
func (s *Service) UpdateForm(ctx context.Context, userID, formID string, in FormUpdate) (*domain.Form, error) {
	var title string
	if in.Title != nil {
		var err error
		if title, err = validateFormTitle(*in.Title); err != nil {
			return nil, err
		}
	}
	if in.Pages != nil {
		if err := validatePages(in.Pages); err != nil {
			return nil, err
		}
	}

	var (
		oldPages  []domain.Page
		wiped     bool
		published bool
	)
	form, err := s.withForm(ctx, formID, func(f *domain.Form) (bool, error) {
		if err := requireAccess(f, userID, domain.AccessEdit); err != nil {
			return false, err
		}
		if (in.AccessSettings != nil || in.Status != nil) && f.Owner != userID {
			return false, fmt.Errorf("only the owner may change access or status: %w", domain.ErrForbidden)
		}

		if in.Title != nil {
			f.Title = title
		}
		if in.AccessSettings != nil {
			settings, err := validateAccessSettings(*in.AccessSettings, f.Owner)
			if err != nil {
				return false, err
			}
			f.AccessSettings = settings
		}
		if in.Pages != nil {
			pages := s.engine.Build(ctx, f.ID, flow.Normalize(in.Pages)).Pages
			if f.IsPublished() && domain.ContentChanged(f.Pages, pages) {
				f.ResetAnalytics()
				f.Status = domain.FormStatusDraft
				wiped = true
			}
			oldPages = f.Pages
			f.Pages = pages
		}
		if in.Status != nil {
			switch *in.Status {
			case domain.FormStatusDraft:
				f.Status = domain.FormStatusDraft
			case domain.FormStatusPublished:
				published = !f.IsPublished()
				s.publish(f)
			default:
				return false, domain.Invalid("status", "must be draft or published")
			}
		}

		f.UpdatedAt = s.now()
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	if wiped {
		s.logger.Info("Published form content changed, responses will be removed", "form_id", form.ID)
		s.spawn(ctx, "wipe-responses", func(ctx context.Context) error {
			n, err := s.store.DeleteResponses(ctx, form.ID)
			if err != nil {
				return fmt.Errorf("failed to delete responses of form %s: %w", form.ID, err)
			}
			s.logger.Info("Responses removed", "form_id", form.ID, "count", n)
			return nil
		})
	}
	if oldPages != nil && s.media != nil {
		newPages := domain.ClonePages(form.Pages)
		s.spawn(ctx, "media-cleanup", func(ctx context.Context) error {
			return media.Cleanup(ctx, s.media, s.logger, oldPages, newPages, s.mediaMarker)
		})
	}
	if published {
		s.firePublished(ctx, form)
	}
	return form, nil
}

func validateAccessSettings(in domain.AccessSettings, owner string) (domain.AccessSettings, error) {
	out := domain.AccessSettings{Visibility: in.Visibility, SharedWith: []domain.SharedUser{}}
	if out.Visibility == "" {
		out.Visibility = domain.VisibilityPublic
	}
	if out.Visibility != domain.VisibilityPublic && out.Visibility != domain.VisibilityPrivate {
		return out, domain.Invalid("visibility", "must be public or private")
	}
	seen := make(map[string]bool, len(in.SharedWith))
	for _, su := range in.SharedWith {
		if !su.AccessLevel.Valid() {
			return out, domain.Invalid("accessLevel", "must be view, edit or share")
		}
		if su.UserID == "" || su.UserID == owner || seen[su.UserID] {
			continue
		}
		seen[su.UserID] = true
		out.SharedWith = append(out.SharedWith, su)
	}
	return out, nil
}

// DeleteForm removes a form owned by userID with its responses and media,
// and unlinks it from its project.
func (s *Service) DeleteForm(ctx context.Context, userID, formID string) error {
	return s.locks.WithLock(ctx, "form:"+formID, func(ctx context.Context) error {
		form, err := s.store.GetForm(ctx, formID)
		if err != nil {
			return err
		}
		if err := requireOwner(form, userID); err != nil {
			return err
		}

		_, err = s.withProject(ctx, userID, form.ProjectID, func(p *domain.Project) error {
			p.RemoveForm(form.ID)
			p.UpdatedAt = s.now()
			return nil
		})
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("failed to unlink form from project: %w", err)
		}

		return s.purgeForm(ctx, form)
	})
}

// FormsByProject lists the forms of a project owned by userID in creation order.
func (s *Service) FormsByProject(ctx context.Context, userID, projectID string) ([]*domain.Form, error) {
	if _, err := s.ownedProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	return s.store.ListFormsByProject(ctx, projectID)
}

func (s *Service) publish(f *domain.Form) {
	f.Status = domain.FormStatusPublished
	f.PublishedLink = fmt.Sprintf("%s/forms/public/%s", strings.TrimRight(s.frontendURL, "/"), f.ID)
}

func (s *Service) firePublished(ctx context.Context, form *domain.Form) {
	s.logger.Info("Form published", "form_id", form.ID, "link", form.PublishedLink)
	if s.hooks.OnFormPublished != nil {
		s.hooks.OnFormPublished(ctx, &domain.FormEvent{EventBase: s.event(domain.EventFormPublished, form.ID)})
	}
}

// PublishForm publishes a form owned by userID and sets its public link.
func (s *Service) PublishForm(ctx context.Context, userID, formID string) (*domain.Form, error) {
	form, err := s.withForm(ctx, formID, func(f *domain.Form) (bool, error) {
		if err := requireOwner(f, userID); err != nil {
			return false, err
		}
		s.publish(f)
		f.UpdatedAt = s.now()
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	s.firePublished(ctx, form)
	return form, nil
}

// ShareForm grants level on a form owned by userID to the account registered with email.
// Sharing again with the same account replaces its level.
func (s *Service) ShareForm(ctx context.Context, userID, formID, email string, level domain.AccessLevel) (*domain.Form, error) {
	if !level.Valid() {
		return nil, domain.Invalid("accessLevel", "must be view, edit or share")
	}
	email = NormalizeEmail(email)
	if email == "" {
		return nil, domain.Invalid("email", "email is required")
	}

	target, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if target.ID == userID {
		return nil, domain.Invalid("email", "you cannot share a form with yourself")
	}

	return s.withForm(ctx, formID, func(f *domain.Form) (bool, error) {
		if err := requireOwner(f, userID); err != nil {
			return false, err
		}
		if target.ID == f.Owner {
			return false, domain.Invalid("email", "the form owner already has access")
		}
		for i := range f.AccessSettings.SharedWith {
			if f.AccessSettings.SharedWith[i].UserID == target.ID {
				f.AccessSettings.SharedWith[i].AccessLevel = level
				f.UpdatedAt = s.now()
				return true, nil
			}
		}
		f.AccessSettings.SharedWith = append(f.AccessSettings.SharedWith, domain.SharedUser{
			UserID:      target.ID,
			AccessLevel: level,
		})
		f.UpdatedAt = s.now()
		return true, nil
	})
}

// SharedWithMe lists the forms shared with userID, most recently updated first.
func (s *Service) SharedWithMe(ctx context.Context, userID string) ([]*domain.Form, error) {
	return s.store.ListFormsSharedWith(ctx, userID)
}

// PublicForm returns a published form for filling and counts the view.
// userID may be empty for anonymous fillers.
func (s *Service) PublicForm(ctx context.Context, userID, formID string) (*domain.Form, error) {
	return s.withForm(ctx, formID, func(f *domain.Form) (bool, error) {
		if err := fillable(f, userID); err != nil {
			return false, err
		}
		analytics.RecordView(f, s.now())
		return true, nil
	})
}

// fillable checks that userID may fill form.
func fillable(form *domain.Form, userID string) error {
	if !form.IsPublished() {
		return fmt.Errorf("form %s: %w", form.ID, domain.ErrFormNotPublished)
	}
	return requireAccess(form, userID, domain.AccessView)
}

// BuildFlow previews the navigation graph of pages, or of the stored pages when
// pages is nil, without saving anything.
func (s *Service) BuildFlow(ctx context.Context, userID, formID string, pages []domain.Page) (*flow.BuildResult, error) {
	form, err := s.store.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	if err := requireAccess(form, userID, domain.AccessEdit); err != nil {
		return nil, err
	}
	if pages == nil {
		pages = form.Pages
	} else if err := validatePages(pages); err != nil {
		return nil, err
	}
	return s.engine.Build(ctx, form.ID, flow.Normalize(pages)), nil
}

// LintForm runs the strict flow checks over the stored pages of a form.
func (s *Service) LintForm(ctx context.Context, userID, formID string) (*flow.Report, error) {
	form, err := s.GetForm(ctx, userID, formID)
	if err != nil {
		return nil, err
	}
	return s.engine.Lint(form.Pages), nil
}

// FormAnalytics summarizes a form owned by userID.
func (s *Service) FormAnalytics(ctx context.Context, userID, formID string) (*analytics.FormSummary, error) {
	form, err := s.store.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(form, userID); err != nil {
		return nil, err
	}
	responses, err := s.store.ListResponses(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	return analytics.Summarize(form, responses), nil
}
