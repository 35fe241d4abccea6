package dsl

import (
	"testing"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/flow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BranchingForm(t *testing.T) {
	b := New("Onboarding")

	b.Page("welcome").
		Name("Welcome").
		Ask("role", domain.QuestionMultipleChoice, "What is your role?").
		Options("developer", "designer").
		Required().
		When("role", "developer").
		Then("stack").
		Else("tools")

	b.Page("tools").
		Ask("tools", domain.QuestionCheckbox, "Which tools do you use?").
		Options("figma", "sketch")

	b.Page("stack").
		Section("Languages").
		Ask("score", domain.QuestionRating, "Rate Go").
		Scale(1, 10)

	form, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "Onboarding", form.Title)
	assert.Equal(t, domain.FormStatusDraft, form.Status)
	require.Len(t, form.Pages, 3)

	welcome := form.Pages[0]
	assert.Equal(t, "Welcome", welcome.Name)
	require.NotNil(t, welcome.ConditionalLogic)
	assert.Equal(t, "stack", welcome.ConditionalLogic.TruePageID)
	assert.Equal(t, "tools", welcome.ConditionalLogic.FalsePageID)

	q, ok := welcome.Question("role")
	require.True(t, ok)
	assert.True(t, q.Required)
	assert.Equal(t, []string{"developer", "designer"}, q.Options)

	score, ok := form.Question("score")
	require.True(t, ok)
	lo, hi := score.RatingBounds()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 10, hi)

	result := flow.Build(form.Pages)
	assert.Equal(t, []string{"stack", "tools"}, result.Pages[0].NextPageID)
	assert.True(t, result.Clean())
}

func TestBuilder_Errors(t *testing.T) {
	_, err := New("empty").Build()
	assert.Error(t, err)

	b := New("bad")
	b.Page("p1").Ask("q1", domain.QuestionType("hologram"), "?")
	_, err = b.Build()
	assert.ErrorContains(t, err, "unknown type")
}

func TestBuilder_PageReuse(t *testing.T) {
	b := New("reuse")
	first := b.Page("p1")
	assert.Same(t, first, b.Page("p1"))
	assert.Len(t, b.Pages(), 1)
}
