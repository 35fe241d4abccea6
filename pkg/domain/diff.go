package domain

import (
	"reflect"
)

// PagesDiff represents the content changes between two versions of a form's pages.
// Derived navigation fields (NextPageID, PrevPageID) are ignored.
type PagesDiff struct {
	Added    []string `json:"added,omitempty"`
	Removed  []string `json:"removed,omitempty"`
	Modified []string `json:"modified,omitempty"`
	// Reordered is set when the surviving pages changed relative order.
	Reordered bool `json:"reordered,omitempty"`
}

// DiffPages calculates the difference between oldPages and newPages.
// It returns nil when the content is identical.
func DiffPages(oldPages, newPages []Page) *PagesDiff {
	diff := &PagesDiff{}

	oldByID := make(map[string]*Page, len(oldPages))
	for i := range oldPages {
		oldByID[oldPages[i].ID] = &oldPages[i]
	}
	newByID := make(map[string]*Page, len(newPages))
	for i := range newPages {
		newByID[newPages[i].ID] = &newPages[i]
	}

	// Added or Modified
	var keptNew []string
	for i := range newPages {
		p := &newPages[i]
		old, exists := oldByID[p.ID]
		if !exists {
			diff.Added = append(diff.Added, p.ID)
			continue
		}
		keptNew = append(keptNew, p.ID)
		if !sameContent(old, p) {
			diff.Modified = append(diff.Modified, p.ID)
		}
	}

	// Removed
	var keptOld []string
	for i := range oldPages {
		id := oldPages[i].ID
		if _, exists := newByID[id]; !exists {
			diff.Removed = append(diff.Removed, id)
			continue
		}
		keptOld = append(keptOld, id)
	}

	diff.Reordered = !reflect.DeepEqual(keptOld, keptNew)

	if diff.IsEmpty() {
		return nil
	}
	return diff
}

func sameContent(a, b *Page) bool {
	x, y := a.Clone(), b.Clone()
	x.NextPageID, x.PrevPageID = nil, nil
	y.NextPageID, y.PrevPageID = nil, nil
	return reflect.DeepEqual(x, y)
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *PagesDiff) IsEmpty() bool {
	return len(d.Added) == 0 &&
		len(d.Removed) == 0 &&
		len(d.Modified) == 0 &&
		!d.Reordered
}

// ContentChanged reports whether a form's pages changed in a way visible to fillers.
func ContentChanged(oldPages, newPages []Page) bool {
	return DiffPages(oldPages, newPages) != nil
}
