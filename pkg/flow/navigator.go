package flow

import "github.com/aretw0/canova/pkg/domain"

// Reason explains how the next page was chosen.
type Reason string

const (
	ReasonConditional Reason = "conditional"
	ReasonLinear      Reason = "linear"
	ReasonTerminal    Reason = "terminal"
)

// Step is the outcome of leaving a page.
type Step struct {
	PageID string `json:"pageId,omitempty"`
	Reason Reason `json:"reason"`
}

// Terminal reports whether the filler reached the end of the form and should submit.
func (s Step) Terminal() bool { return s.Reason == ReasonTerminal }

// Next decides where the filler goes after currentID.
//
// A conditional target that exists in pages wins. Otherwise the first derived
// next page is used. Otherwise the page is terminal. An unknown currentID is terminal.
func Next(pages []domain.Page, currentID string, answers domain.Answers) Step {
	current := find(pages, currentID)
	if current == nil {
		return Step{Reason: ReasonTerminal}
	}

	if target, ok := Evaluate(current.ConditionalLogic, answers); ok && find(pages, target) != nil {
		return Step{PageID: target, Reason: ReasonConditional}
	}

	if len(current.NextPageID) > 0 && find(pages, current.NextPageID[0]) != nil {
		return Step{PageID: current.NextPageID[0], Reason: ReasonLinear}
	}

	return Step{Reason: ReasonTerminal}
}

func find(pages []domain.Page, id string) *domain.Page {
	if id == "" {
		return nil
	}
	for i := range pages {
		if pages[i].ID == id {
			return &pages[i]
		}
	}
	return nil
}
