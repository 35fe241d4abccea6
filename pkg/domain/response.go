package domain

import "time"

// Answers maps question IDs to the values given by the filler.
// Values are scalars (string, number, bool) or lists for multi-select questions.
type Answers map[string]any

// Answer is a persisted answer of a submitted response.
type Answer struct {
	QuestionID   string       `json:"questionId"`
	QuestionType QuestionType `json:"questionType"`
	Value        any          `json:"value"`
	FileURLs     []string     `json:"fileUrls,omitempty"`
}

// Response is a submitted form fill.
type Response struct {
	ID               string    `json:"id"`
	FormID           string    `json:"formId"`
	ResponderID      string    `json:"responderId,omitempty"`
	Answers          []Answer  `json:"answers"`
	TimeTakenSeconds float64   `json:"timeTakenSeconds"`
	CreatedAt        time.Time `json:"createdAt"`
}

// AnswerMap converts the persisted answers into the evaluation mapping.
// Later entries win when a question appears twice.
func (r *Response) AnswerMap() Answers {
	out := make(Answers, len(r.Answers))
	for _, a := range r.Answers {
		out[a.QuestionID] = a.Value
	}
	return out
}
