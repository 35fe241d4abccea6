package flow_test

import (
	"testing"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/flow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(r *flow.Report) []string {
	var out []string
	for _, i := range r.Issues {
		out = append(out, i.Code)
	}
	return out
}

func withQuestion(p domain.Page, qid string) domain.Page {
	p.Sections = []domain.Section{{ID: "s-" + p.ID, Questions: []domain.Question{{ID: qid}}}}
	return p
}

func TestLint_CleanForm(t *testing.T) {
	pages := []domain.Page{
		withQuestion(page("A", branch("C", "B", domain.Condition{QuestionID: "q1", AnswerCriteria: "x"})), "q1"),
		page("B", nil),
		page("C", nil),
	}

	report := flow.Lint(pages)
	assert.Empty(t, report.Issues)
	assert.False(t, report.HasErrors())
}

func TestLint_Findings(t *testing.T) {
	pages := []domain.Page{
		withQuestion(page("A", branch("B", "ghost", domain.Condition{QuestionID: "q9", AnswerCriteria: "x"})), "q1"),
		page("B", branch("B", "")),
		page("B", nil),
		withQuestion(page("C", branch("A", "A", domain.Condition{QuestionID: "q3", AnswerCriteria: "x"})), "q3"),
		withQuestion(page("D", branch("C", "", domain.Condition{QuestionID: "q5", AnswerCriteria: ""})), "q4"),
		withQuestion(page("E", nil), "q5"),
	}

	report := flow.Lint(pages)
	require.True(t, report.HasErrors())

	got := codes(report)
	assert.Contains(t, got, flow.CodeDanglingTarget)
	assert.Contains(t, got, flow.CodeUnknownQuestion)
	assert.Contains(t, got, flow.CodeSelfTarget)
	assert.Contains(t, got, flow.CodeDuplicatePage)
	assert.Contains(t, got, flow.CodeSameTargets)
	assert.Contains(t, got, flow.CodeForwardQuestion)
	assert.Contains(t, got, flow.CodeClaimConflict)
}

func TestLint_Orphans(t *testing.T) {
	pages := []domain.Page{
		page("A", branch("C", "D")),
		page("B", nil),
		page("C", nil),
		page("D", nil),
	}

	report := flow.Lint(pages)
	assert.False(t, report.HasErrors())
	assert.Equal(t, []string{flow.CodeOrphan}, codes(report))
	assert.Equal(t, "B", report.Issues[0].PageID)
}

func TestNormalize(t *testing.T) {
	pages := []domain.Page{
		page("A", &domain.ConditionalLogic{
			Conditions: []domain.Condition{
				{QuestionID: "q1", AnswerCriteria: "yes"},
				{QuestionID: "q1", AnswerCriteria: "yes"},
				{QuestionID: "q2", AnswerCriteria: ""},
			},
			TruePageID: "B",
		}),
		page("B", &domain.ConditionalLogic{Conditions: []domain.Condition{}}),
	}

	out := flow.Normalize(pages)

	require.NotNil(t, out[0].ConditionalLogic)
	assert.Equal(t, []domain.Condition{
		{QuestionID: "q1", AnswerCriteria: "yes"},
		{QuestionID: "q2", AnswerCriteria: ""},
	}, out[0].ConditionalLogic.Conditions)
	assert.Nil(t, out[1].ConditionalLogic)
	assert.Len(t, pages[0].ConditionalLogic.Conditions, 3, "input must not change")
}

func TestNormalize_KeepsRouting(t *testing.T) {
	pages := []domain.Page{
		page("A", branch("C", "B", domain.Condition{QuestionID: "", AnswerCriteria: "yes"})),
		page("B", branch(" C ", "", domain.Condition{QuestionID: "q1", AnswerCriteria: " yes "})),
		page("C", branch("A", "B",
			domain.Condition{QuestionID: "q2", AnswerCriteria: "x"},
			domain.Condition{QuestionID: "q2", AnswerCriteria: "x"})),
	}
	answerSets := []domain.Answers{
		{},
		{"q1": "yes"},
		{"q1": " yes ", "q2": "x"},
		{"": "yes"},
	}

	normalized := flow.Normalize(pages)
	for _, answers := range answerSets {
		for i := range pages {
			before, beforeOK := flow.Evaluate(pages[i].ConditionalLogic, answers)
			after, afterOK := flow.Evaluate(normalized[i].ConditionalLogic, answers)
			assert.Equal(t, before, after, "page %s with answers %v", pages[i].ID, answers)
			assert.Equal(t, beforeOK, afterOK, "page %s with answers %v", pages[i].ID, answers)
		}
	}

	target, _ := flow.Evaluate(normalized[0].ConditionalLogic, domain.Answers{})
	assert.Equal(t, "B", target, "a condition without a question never holds")
}
