package ports

import (
	"cmp"
	"slices"

	"github.com/aretw0/canova/pkg/domain"
)

// The helpers below give in-process adapters the orderings the store
// interfaces promise. Ties are broken by ID, which sorts by creation time.

// SortProjectsNewest orders projects by creation time, newest first.
func SortProjectsNewest(projects []*domain.Project) {
	slices.SortStableFunc(projects, func(a, b *domain.Project) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}

// SortFormsCreated orders forms by creation time, oldest first.
func SortFormsCreated(forms []*domain.Form) {
	slices.SortStableFunc(forms, func(a, b *domain.Form) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// SortFormsUpdated orders forms by last update, most recent first.
func SortFormsUpdated(forms []*domain.Form) {
	slices.SortStableFunc(forms, func(a, b *domain.Form) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}

// SortResponsesOldest orders responses by submission time, oldest first.
func SortResponsesOldest(responses []*domain.Response) {
	slices.SortStableFunc(responses, func(a, b *domain.Response) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}
