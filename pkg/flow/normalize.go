package flow

import (
	"github.com/aretw0/canova/pkg/domain"
)

// Normalize returns a copy of pages ready to be stored. Repeated conditions of a
// rule are collapsed and rules with neither conditions nor targets are removed.
// Neither change alters where Evaluate routes a filler.
func Normalize(pages []domain.Page) []domain.Page {
	out := domain.ClonePages(pages)
	for i := range out {
		logic := out[i].ConditionalLogic
		if logic == nil {
			continue
		}

		seen := make(map[domain.Condition]bool, len(logic.Conditions))
		conditions := make([]domain.Condition, 0, len(logic.Conditions))
		for _, c := range logic.Conditions {
			if seen[c] {
				continue
			}
			seen[c] = true
			conditions = append(conditions, c)
		}
		logic.Conditions = conditions

		if len(logic.Conditions) == 0 && logic.TruePageID == "" && logic.FalsePageID == "" {
			out[i].ConditionalLogic = nil
		}
	}
	return out
}
