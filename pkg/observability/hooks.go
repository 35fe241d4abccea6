package observability

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/aretw0/canova/pkg/domain"
)

// Hooks returns lifecycle hooks that log every event and, when m is not nil,
// record it as a metric.
func Hooks(logger *slog.Logger, m *Metrics) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnFlowBuilt: func(ctx context.Context, e *domain.FlowEvent) {
			clean := e.Orphans == 0 && e.Conflicts == 0 && e.Dangling == 0
			logger.Debug("flow_built",
				"form_id", e.FormID,
				"pages", e.Pages,
				"orphans", e.Orphans,
				"conflicts", e.Conflicts,
				"dangling", e.Dangling,
			)
			if m == nil {
				return
			}
			m.FlowBuilds.WithLabelValues(strconv.FormatBool(clean)).Inc()
			m.FlowAnomalies.WithLabelValues("orphan").Add(float64(e.Orphans))
			m.FlowAnomalies.WithLabelValues("conflict").Add(float64(e.Conflicts))
			m.FlowAnomalies.WithLabelValues("dangling").Add(float64(e.Dangling))
		},
		OnNavigate: func(ctx context.Context, e *domain.NavigationEvent) {
			logger.Debug("page_navigated",
				"form_id", e.FormID,
				"from", e.FromPageID,
				"to", e.ToPageID,
				"reason", e.Reason,
			)
			if m != nil {
				m.Navigations.WithLabelValues(e.Reason).Inc()
			}
		},
		OnFormPublished: func(ctx context.Context, e *domain.FormEvent) {
			logger.Info("form_published", "form_id", e.FormID)
			if m != nil {
				m.FormsPublished.Inc()
			}
		},
		OnResponseSaved: func(ctx context.Context, e *domain.FormEvent) {
			logger.Info("response_saved", "form_id", e.FormID, "response_id", e.ResponseID)
			if m != nil {
				m.ResponsesSaved.Inc()
			}
		},
	}
}
