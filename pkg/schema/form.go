package schema

import "github.com/aretw0/canova/pkg/domain"

// Answer length limits for free-text questions.
const (
	MaxShortAnswer = 500
	MaxLongAnswer  = 10000
)

// Schema is a map of question IDs to their expected answer types.
type Schema map[string]Type

// ForQuestion returns the answer type of a question.
func ForQuestion(q domain.Question) Type {
	switch q.Type {
	case domain.QuestionShortAnswer, domain.QuestionText:
		return String(MaxShortAnswer)
	case domain.QuestionLongAnswer:
		return String(MaxLongAnswer)
	case domain.QuestionMultipleChoice, domain.QuestionDropdown:
		return Choice(q.Options...)
	case domain.QuestionCheckbox:
		return Slice(Choice(q.Options...), 0)
	case domain.QuestionDate:
		return Date()
	case domain.QuestionRating, domain.QuestionLinearScale:
		lo, hi := q.RatingBounds()
		return IntRange(lo, hi)
	case domain.QuestionFileUpload:
		maxFiles := domain.DefaultMaxFiles
		if q.FileSettings != nil && q.FileSettings.MaxFiles > 0 {
			maxFiles = q.FileSettings.MaxFiles
		}
		return Slice(String(0), maxFiles)
	default:
		// image and video questions only display media
		return Any()
	}
}

// ForForm builds the answer schema of every question of a form.
func ForForm(form *domain.Form) Schema {
	s := make(Schema)
	for _, p := range form.Pages {
		for _, q := range p.Questions() {
			s[q.ID] = ForQuestion(q)
		}
	}
	return s
}
