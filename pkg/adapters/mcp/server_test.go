package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/canova"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/flow"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const survey = `{
  "title": "Survey",
  "pages": [
    {"id": "A", "sections": [{"id": "s", "name": "s", "questions": [{"id": "q1", "type": "multipleChoice", "options": ["yes", "no"], "isRequired": true}]}],
     "conditionalLogic": {"conditions": [{"questionId": "q1", "answerCriteria": "yes"}], "truePageId": "C", "falsePageId": "B"}},
    {"id": "B"},
    {"id": "C"}
  ]
}`

func newTestServer() *Server {
	return NewServer(canova.New())
}

func TestBuildFlowTool(t *testing.T) {
	s := newTestServer()
	result, err := s.handleBuildFlow(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{"form": survey})
	require.NoError(t, err)

	require.Len(t, result.Pages, 3)
	assert.Equal(t, []string{"C", "B"}, result.Pages[0].NextPageID)
	assert.True(t, result.Clean())

	_, err = s.handleBuildFlow(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{})
	assert.Error(t, err)
}

func TestNextPageTool(t *testing.T) {
	s := newTestServer()
	ctx := context.Background()

	res, err := s.handleNextPage(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"form":    survey,
		"page_id": "A",
		"answers": `{"q1": "no"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, flow.Step{PageID: "B", Reason: flow.ReasonConditional}, res.Step)
	assert.Equal(t, []string{"A"}, res.History)

	res, err = s.handleNextPage(ctx, mcp.CallToolRequest{}, map[string]interface{}{
		"form":    survey,
		"page_id": "C",
		"history": `["A"]`,
	})
	require.NoError(t, err)
	assert.True(t, res.Submit)
	assert.Equal(t, []string{"A"}, res.History)

	_, err = s.handleNextPage(ctx, mcp.CallToolRequest{}, map[string]interface{}{"form": survey, "page_id": "A"})
	var missing *domain.MissingAnswersError
	assert.True(t, errors.As(err, &missing))

	_, err = s.handleNextPage(ctx, mcp.CallToolRequest{}, map[string]interface{}{"form": survey, "page_id": "A", "answers": "[1"})
	assert.ErrorContains(t, err, "answers must be a JSON object")
}

func TestLintFlowTool(t *testing.T) {
	s := newTestServer()
	report, err := s.handleLintFlow(context.Background(), mcp.CallToolRequest{}, map[string]interface{}{
		"form": `[{"id": "A", "conditionalLogic": {"conditions": [], "truePageId": "ghost"}}, {"id": "B"}]`,
	})
	require.NoError(t, err)
	assert.True(t, report.HasErrors())
}
