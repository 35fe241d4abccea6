package service

import (
	"context"
	"fmt"

	"github.com/aretw0/canova/pkg/analytics"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/schema"
)

// Submission is a completed fill of a form.
type Submission struct {
	Answers          []domain.Answer `json:"answers"`
	TimeTakenSeconds float64         `json:"timeTakenSeconds"`
}

// SubmitResponse stores a response to a published form userID may fill.
// userID may be empty for anonymous fillers.
func (s *Service) SubmitResponse(ctx context.Context, userID, formID string, in Submission) (*domain.Response, error) {
	if len(in.Answers) == 0 {
		return nil, domain.Invalid("answers", "answers are required")
	}
	if in.TimeTakenSeconds < 0 {
		return nil, domain.Invalid("timeTakenSeconds", "must not be negative")
	}

	var response *domain.Response
	_, err := s.withForm(ctx, formID, func(f *domain.Form) (bool, error) {
		if err := fillable(f, userID); err != nil {
			return false, err
		}
		if err := schema.ValidateForm(f, in.Answers); err != nil {
			return false, err
		}

		answers := make([]domain.Answer, len(in.Answers))
		for i, a := range in.Answers {
			if q, ok := f.Question(a.QuestionID); ok {
				a.QuestionType = q.Type
			}
			answers[i] = a
		}

		response = &domain.Response{
			ID:               domain.NewID(),
			FormID:           f.ID,
			ResponderID:      userID,
			Answers:          answers,
			TimeTakenSeconds: in.TimeTakenSeconds,
			CreatedAt:        s.now(),
		}
		if err := s.store.SaveResponse(ctx, response); err != nil {
			return false, fmt.Errorf("failed to save response: %w", err)
		}
		analytics.RecordResponse(f, in.TimeTakenSeconds)
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Response saved", "form_id", formID, "response_id", response.ID)
	if s.hooks.OnResponseSaved != nil {
		s.hooks.OnResponseSaved(ctx, &domain.FormEvent{
			EventBase:  s.event(domain.EventResponseSaved, formID),
			ResponseID: response.ID,
		})
	}
	return response, nil
}

// FormResponses lists the responses of a form owned by userID, oldest first.
func (s *Service) FormResponses(ctx context.Context, userID, formID string) ([]*domain.Response, error) {
	form, err := s.store.GetForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(form, userID); err != nil {
		return nil, err
	}
	return s.store.ListResponses(ctx, formID)
}

// GetResponse returns a response to a form owned by userID.
func (s *Service) GetResponse(ctx context.Context, userID, responseID string) (*domain.Response, error) {
	response, err := s.store.GetResponse(ctx, responseID)
	if err != nil {
		return nil, err
	}
	form, err := s.store.GetForm(ctx, response.FormID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(form, userID); err != nil {
		return nil, err
	}
	return response, nil
}
