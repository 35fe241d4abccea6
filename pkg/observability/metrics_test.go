package observability_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aretw0/canova"
	"github.com/aretw0/canova/internal/logging"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/flow"
	"github.com/aretw0/canova/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHooks_RecordEngineEvents(t *testing.T) {
	m := observability.NewMetrics()
	eng := canova.New(canova.WithLifecycleHooks(observability.Hooks(logging.NewNop(), m)))
	ctx := context.Background()

	pages := []domain.Page{
		{ID: "A", ConditionalLogic: &domain.ConditionalLogic{
			Conditions: []domain.Condition{{QuestionID: "q1", AnswerCriteria: "yes"}},
			TruePageID: "C",
		}},
		{ID: "B"},
		{ID: "C", ConditionalLogic: &domain.ConditionalLogic{TruePageID: "ghost"}},
	}
	result := eng.Build(ctx, "form-1", pages)
	require.False(t, result.Clean())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.FlowBuilds.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FlowAnomalies.WithLabelValues("dangling")))

	form := &domain.Form{ID: "form-1", Pages: result.Pages}
	var history flow.History
	_, err := eng.Next(ctx, form, "A", domain.Answers{"q1": "yes"}, &history)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Navigations.WithLabelValues("conditional")))
}

func TestHooks_FormEvents(t *testing.T) {
	m := observability.NewMetrics()
	hooks := observability.Hooks(logging.NewNop(), m)
	ctx := context.Background()

	hooks.OnFormPublished(ctx, &domain.FormEvent{EventBase: domain.EventBase{FormID: "f"}})
	hooks.OnResponseSaved(ctx, &domain.FormEvent{EventBase: domain.EventBase{FormID: "f"}, ResponseID: "r"})
	hooks.OnResponseSaved(ctx, &domain.FormEvent{EventBase: domain.EventBase{FormID: "f"}, ResponseID: "s"})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.FormsPublished))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ResponsesSaved))
}

func TestHooks_NilMetrics(t *testing.T) {
	hooks := observability.Hooks(logging.NewNop(), nil)
	assert.NotPanics(t, func() {
		hooks.OnFlowBuilt(context.Background(), &domain.FlowEvent{Orphans: 1})
		hooks.OnFormPublished(context.Background(), &domain.FormEvent{})
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := observability.NewMetrics()
	m.ObserveRequest("/api/forms/{id}", http.MethodGet, http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest("", http.MethodGet, http.StatusNotFound, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `canova_http_requests_total{method="GET",route="/api/forms/{id}",status="200"} 1`)
	assert.Contains(t, body, `route="unmatched"`)
	assert.Contains(t, body, "go_goroutines")
}
