package dsl

import (
	"fmt"

	"github.com/aretw0/canova/pkg/domain"
)

// PageBuilder provides a fluent API for configuring a page.
type PageBuilder struct {
	page    domain.Page
	builder *Builder
}

// Name sets the display name of the page.
func (p *PageBuilder) Name(name string) *PageBuilder {
	p.page.Name = name
	return p
}

// Background sets the page background color.
func (p *PageBuilder) Background(color string) *PageBuilder {
	p.page.BackgroundColor = color
	return p
}

// Section starts a new section. Questions added afterwards belong to it.
func (p *PageBuilder) Section(name string) *PageBuilder {
	p.page.Sections = append(p.page.Sections, domain.Section{
		ID:              fmt.Sprintf("%s-sec-%d", p.page.ID, len(p.page.Sections)+1),
		Name:            name,
		BackgroundColor: domain.DefaultSectionBackground,
		Questions:       []domain.Question{},
	})
	return p
}

// Ask adds a question to the current section, opening a default one if needed.
func (p *PageBuilder) Ask(id string, kind domain.QuestionType, text string) *PageBuilder {
	if !kind.Valid() && p.builder.err == nil {
		p.builder.err = fmt.Errorf("question %q: unknown type %q", id, kind)
	}
	if len(p.page.Sections) == 0 {
		p.Section(domain.DefaultFirstSectionName)
	}
	s := &p.page.Sections[len(p.page.Sections)-1]
	s.Questions = append(s.Questions, domain.Question{
		ID:           id,
		QuestionText: text,
		Type:         kind,
	})
	return p
}

// Options sets the choices of the last question.
func (p *PageBuilder) Options(options ...string) *PageBuilder {
	if q := p.last(); q != nil {
		q.Options = options
	}
	return p
}

// Scale sets the bounds of the last rating or linear scale question.
func (p *PageBuilder) Scale(min, max int) *PageBuilder {
	if q := p.last(); q != nil {
		q.MinRating, q.MaxRating = min, max
	}
	return p
}

// Required marks the last question as mandatory.
func (p *PageBuilder) Required() *PageBuilder {
	if q := p.last(); q != nil {
		q.Required = true
	}
	return p
}

// When adds a condition to the page's branching rule.
func (p *PageBuilder) When(questionID, criteria string) *PageBuilder {
	logic := p.logic()
	logic.Conditions = append(logic.Conditions, domain.Condition{
		QuestionID:     questionID,
		AnswerCriteria: criteria,
	})
	return p
}

// Then sets the page shown when every condition holds.
func (p *PageBuilder) Then(pageID string) *PageBuilder {
	p.logic().TruePageID = pageID
	return p
}

// Else sets the page shown when a condition fails.
func (p *PageBuilder) Else(pageID string) *PageBuilder {
	p.logic().FalsePageID = pageID
	return p
}

// Page continues with another page of the same form.
func (p *PageBuilder) Page(id string) *PageBuilder {
	return p.builder.Page(id)
}

func (p *PageBuilder) logic() *domain.ConditionalLogic {
	if p.page.ConditionalLogic == nil {
		p.page.ConditionalLogic = &domain.ConditionalLogic{Conditions: []domain.Condition{}}
	}
	return p.page.ConditionalLogic
}

func (p *PageBuilder) last() *domain.Question {
	if len(p.page.Sections) == 0 {
		return nil
	}
	s := &p.page.Sections[len(p.page.Sections)-1]
	if len(s.Questions) == 0 {
		return nil
	}
	return &s.Questions[len(s.Questions)-1]
}

// Build compiles the form this page belongs to. See Builder.Build.
func (p *PageBuilder) Build() (*domain.Form, error) {
	return p.builder.Build()
}

// Pages returns the pages of the form this page belongs to. See Builder.Pages.
func (p *PageBuilder) Pages() []domain.Page {
	return p.builder.Pages()
}
