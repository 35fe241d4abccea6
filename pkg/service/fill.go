package service

import (
	"context"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/flow"
)

// Position is where a filler stands after a navigation request.
type Position struct {
	PageID  string      `json:"pageId,omitempty"`
	Reason  flow.Reason `json:"reason,omitempty"`
	Submit  bool        `json:"submit"`
	History []string    `json:"history"`
}

func (s *Service) fillForm(ctx context.Context, userID, formID string) (*domain.Form, error) {
	form, err := s.store.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	if err := fillable(form, userID); err != nil {
		return nil, err
	}
	return form, nil
}

// Navigate moves a filler off currentPageID given the answers so far.
// It fails with *domain.MissingAnswersError when a required question of the
// current page is unanswered. A terminal step sets Submit.
func (s *Service) Navigate(ctx context.Context, userID, formID, currentPageID string, answers domain.Answers, history []string) (*Position, error) {
	form, err := s.fillForm(ctx, userID, formID)
	if err != nil {
		return nil, err
	}

	h := flow.History(append([]string{}, history...))
	step, err := s.engine.Next(ctx, form, currentPageID, answers, &h)
	if err != nil {
		return nil, err
	}
	if step.Terminal() {
		return &Position{PageID: currentPageID, Reason: step.Reason, Submit: true, History: h}, nil
	}
	return &Position{PageID: step.PageID, Reason: step.Reason, History: h}, nil
}

// Back returns the page the filler came from. With an empty history it stays on
// the first page.
func (s *Service) Back(ctx context.Context, userID, formID string, history []string) (*Position, error) {
	form, err := s.fillForm(ctx, userID, formID)
	if err != nil {
		return nil, err
	}
	h := flow.History(append([]string{}, history...))
	pageID, _ := s.engine.Back(form, &h)
	return &Position{PageID: pageID, History: h}, nil
}
