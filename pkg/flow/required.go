package flow

import "github.com/aretw0/canova/pkg/domain"

// MissingRequired returns the IDs of required questions on page without an answer.
func MissingRequired(page *domain.Page, answers domain.Answers) []string {
	if page == nil {
		return nil
	}
	var missing []string
	for _, q := range page.Questions() {
		if !q.Required {
			continue
		}
		if v, ok := answers[q.ID]; !ok || IsEmptyAnswer(v) {
			missing = append(missing, q.ID)
		}
	}
	return missing
}
