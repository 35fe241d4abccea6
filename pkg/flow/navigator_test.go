package flow_test

import (
	"testing"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/flow"
	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	pages := []domain.Page{
		{ID: "A", NextPageID: []string{"B"}, ConditionalLogic: branch("C", "", domain.Condition{QuestionID: "q1", AnswerCriteria: "skip"})},
		{ID: "B", NextPageID: []string{"C"}},
		{ID: "C", ConditionalLogic: branch("gone", "")},
		{ID: "D", NextPageID: []string{"gone"}},
	}

	tests := []struct {
		name    string
		current string
		answers domain.Answers
		want    flow.Step
	}{
		{
			name:    "Conditional Target",
			current: "A",
			answers: domain.Answers{"q1": "skip"},
			want:    flow.Step{PageID: "C", Reason: flow.ReasonConditional},
		},
		{
			name:    "Falls Back To Derived Edge",
			current: "A",
			answers: domain.Answers{"q1": "stay"},
			want:    flow.Step{PageID: "B", Reason: flow.ReasonLinear},
		},
		{
			name:    "Linear Page",
			current: "B",
			want:    flow.Step{PageID: "C", Reason: flow.ReasonLinear},
		},
		{
			name:    "Unknown Conditional Target Is Terminal Without Edges",
			current: "C",
			want:    flow.Step{Reason: flow.ReasonTerminal},
		},
		{
			name:    "Unknown Derived Edge Is Terminal",
			current: "D",
			want:    flow.Step{Reason: flow.ReasonTerminal},
		},
		{
			name:    "Unknown Current Page",
			current: "nope",
			want:    flow.Step{Reason: flow.ReasonTerminal},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flow.Next(pages, tt.current, tt.answers))
		})
	}
}

func TestHistory(t *testing.T) {
	var h flow.History

	_, ok := h.Back()
	assert.False(t, ok)

	h.Push("A")
	h.Push("B")
	assert.Equal(t, 2, h.Len())

	top, ok := h.Peek()
	assert.True(t, ok)
	assert.Equal(t, "B", top)

	prev, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, "B", prev)

	prev, ok = h.Back()
	assert.True(t, ok)
	assert.Equal(t, "A", prev)
	assert.Equal(t, 0, h.Len())
}

func TestMissingRequired(t *testing.T) {
	p := &domain.Page{
		ID: "A",
		Sections: []domain.Section{{
			ID: "s1",
			Questions: []domain.Question{
				{ID: "name", Required: true},
				{ID: "hobbies", Required: true, Type: domain.QuestionCheckbox},
				{ID: "notes"},
			},
		}},
	}

	assert.Equal(t, []string{"name", "hobbies"}, flow.MissingRequired(p, domain.Answers{"hobbies": []any{}}))
	assert.Empty(t, flow.MissingRequired(p, domain.Answers{"name": "Ada", "hobbies": []any{"chess"}}))
	assert.Nil(t, flow.MissingRequired(nil, nil))
}
