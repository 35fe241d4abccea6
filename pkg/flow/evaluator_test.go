package flow_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/flow"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	cond := func(q, criteria string) domain.Condition {
		return domain.Condition{QuestionID: q, AnswerCriteria: criteria}
	}

	tests := []struct {
		name    string
		logic   *domain.ConditionalLogic
		answers domain.Answers
		want    string
		wantOK  bool
	}{
		{
			name:   "No Logic",
			logic:  nil,
			want:   "",
			wantOK: false,
		},
		{
			name:    "All Conditions Met",
			logic:   branch("T", "F", cond("q1", "yes"), cond("q2", "blue")),
			answers: domain.Answers{"q1": "yes", "q2": "blue"},
			want:    "T",
			wantOK:  true,
		},
		{
			name:    "One Condition Fails",
			logic:   branch("T", "F", cond("q1", "yes"), cond("q2", "blue")),
			answers: domain.Answers{"q1": "yes", "q2": "red"},
			want:    "F",
			wantOK:  true,
		},
		{
			name:    "Missing Answer Fails",
			logic:   branch("T", "F", cond("q1", "yes")),
			answers: domain.Answers{},
			want:    "F",
			wantOK:  true,
		},
		{
			name:    "No Conditions Holds",
			logic:   branch("T", "F"),
			answers: domain.Answers{},
			want:    "T",
			wantOK:  true,
		},
		{
			name:    "Chosen Branch Without Target",
			logic:   branch("T", "", cond("q1", "yes")),
			answers: domain.Answers{"q1": "no"},
			want:    "",
			wantOK:  false,
		},
		{
			name:    "Wildcard Matches Any Answer",
			logic:   branch("T", "F", cond("q1", "  ")),
			answers: domain.Answers{"q1": "anything"},
			want:    "T",
			wantOK:  true,
		},
		{
			name:    "Wildcard Rejects Empty String",
			logic:   branch("T", "F", cond("q1", "")),
			answers: domain.Answers{"q1": ""},
			want:    "F",
			wantOK:  true,
		},
		{
			name:    "Wildcard Rejects Empty List",
			logic:   branch("T", "F", cond("q1", "")),
			answers: domain.Answers{"q1": []any{}},
			want:    "F",
			wantOK:  true,
		},
		{
			name:    "Wildcard Rejects Nil",
			logic:   branch("T", "F", cond("q1", "")),
			answers: domain.Answers{"q1": nil},
			want:    "F",
			wantOK:  true,
		},
		{
			name:    "List Contains Criteria",
			logic:   branch("T", "F", cond("q1", "b")),
			answers: domain.Answers{"q1": []any{"a", "b"}},
			want:    "T",
			wantOK:  true,
		},
		{
			name:    "List Lacks Criteria",
			logic:   branch("T", "F", cond("q1", "c")),
			answers: domain.Answers{"q1": []string{"a", "b"}},
			want:    "F",
			wantOK:  true,
		},
		{
			name:    "Number Compared As String",
			logic:   branch("T", "F", cond("rating", "5")),
			answers: domain.Answers{"rating": float64(5)},
			want:    "T",
			wantOK:  true,
		},
		{
			name:    "Criteria Is Case Sensitive",
			logic:   branch("T", "F", cond("q1", "Yes")),
			answers: domain.Answers{"q1": "yes"},
			want:    "F",
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := flow.Evaluate(tt.logic, tt.answers)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "5", flow.Stringify(float64(5)))
	assert.Equal(t, "5.5", flow.Stringify(5.5))
	assert.Equal(t, "7", flow.Stringify(7))
	assert.Equal(t, "true", flow.Stringify(true))
	assert.Equal(t, "12", flow.Stringify(json.Number("12")))
	assert.Equal(t, "", flow.Stringify(nil))
}

func TestIsEmptyAnswer(t *testing.T) {
	assert.True(t, flow.IsEmptyAnswer(nil))
	assert.True(t, flow.IsEmptyAnswer(""))
	assert.True(t, flow.IsEmptyAnswer([]any{}))
	assert.True(t, flow.IsEmptyAnswer([]string{}))
	assert.False(t, flow.IsEmptyAnswer(" "))
	assert.False(t, flow.IsEmptyAnswer(0))
	assert.False(t, flow.IsEmptyAnswer(false))
	assert.False(t, flow.IsEmptyAnswer([]any{"a"}))
}
