package dsl

import (
	"fmt"
	"time"

	"github.com/aretw0/canova/pkg/domain"
)

// Builder manages the form construction.
type Builder struct {
	title string
	order []string
	pages map[string]*PageBuilder
	err   error
}

// New creates a new form builder.
func New(title string) *Builder {
	return &Builder{
		title: title,
		pages: make(map[string]*PageBuilder),
	}
}

// Page appends a page to the form.
// If the page already exists, it returns the existing builder.
func (b *Builder) Page(id string) *PageBuilder {
	if pb, ok := b.pages[id]; ok {
		return pb
	}
	pb := &PageBuilder{
		page: domain.Page{
			ID:              id,
			Name:            id,
			BackgroundColor: domain.DefaultPageBackground,
			NextPageID:      []string{},
			PrevPageID:      []string{},
		},
		builder: b,
	}
	b.pages[id] = pb
	b.order = append(b.order, id)
	return pb
}

// Pages returns the pages in insertion order. Navigation edges are not derived.
func (b *Builder) Pages() []domain.Page {
	out := make([]domain.Page, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.pages[id].page.Clone())
	}
	return out
}

// Build compiles the form. Navigation edges are not derived; run the pages
// through flow.Build (or the service layer) for that.
func (b *Builder) Build() (*domain.Form, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.order) == 0 {
		return nil, fmt.Errorf("form %q has no pages", b.title)
	}

	form := domain.NewForm(b.title, "", "", time.Now().UTC())
	form.Pages = b.Pages()
	return form, nil
}
