package analytics

import (
	"time"

	"github.com/aretw0/canova/pkg/domain"
)

// FormSummary is the analytics view of one form.
type FormSummary struct {
	FormID              string             `json:"formId"`
	Title               string             `json:"title"`
	Status              domain.FormStatus  `json:"status"`
	TotalViews          int                `json:"totalViews"`
	TotalResponses      int                `json:"totalResponses"`
	AverageResponseTime float64            `json:"averageResponseTime"`
	ConversionRate      float64            `json:"conversionRate"`
	DailyViews          []domain.DailyView `json:"dailyViews"`
	Pages               []PageCharts       `json:"pages"`
}

// Summarize builds the analytics view of form from its responses.
func Summarize(form *domain.Form, responses []*domain.Response) *FormSummary {
	daily := append([]domain.DailyView{}, form.DailyViews...)
	return &FormSummary{
		FormID:              form.ID,
		Title:               form.Title,
		Status:              form.Status,
		TotalViews:          form.TotalViews,
		TotalResponses:      form.TotalResponses,
		AverageResponseTime: form.AverageResponseTime,
		ConversionRate:      percentage(form.TotalResponses, form.TotalViews),
		DailyViews:          daily,
		Pages:               ChartsByPage(form, responses),
	}
}

// ProjectSummary aggregates the forms of a project.
type ProjectSummary struct {
	ProjectID      string  `json:"projectId"`
	Name           string  `json:"name"`
	ProjectViews   int     `json:"projectViews"`
	Forms          int     `json:"forms"`
	PublishedForms int     `json:"publishedForms"`
	FormViews      int     `json:"formViews"`
	TotalResponses int     `json:"totalResponses"`
	AverageViews   float64 `json:"averageViews"`
}

// SummarizeProject aggregates views and responses over the forms of project.
func SummarizeProject(project *domain.Project, forms []*domain.Form) *ProjectSummary {
	s := &ProjectSummary{
		ProjectID:    project.ID,
		Name:         project.Name,
		ProjectViews: project.TotalViews,
		Forms:        len(forms),
	}
	for _, f := range forms {
		if f.IsPublished() {
			s.PublishedForms++
		}
		s.FormViews += f.TotalViews
		s.TotalResponses += f.TotalResponses
	}
	if len(forms) > 0 {
		s.AverageViews = round1(float64(s.FormViews) / float64(len(forms)))
	}
	return s
}

// RecordView counts a public view of form on the UTC day of now.
func RecordView(form *domain.Form, now time.Time) {
	day := now.UTC().Format(time.DateOnly)
	form.TotalViews++
	for i := range form.DailyViews {
		if form.DailyViews[i].Date == day {
			form.DailyViews[i].Count++
			return
		}
	}
	form.DailyViews = append(form.DailyViews, domain.DailyView{Date: day, Count: 1})
}

// RecordResponse counts a submission and folds its duration into the running average.
func RecordResponse(form *domain.Form, timeTakenSeconds float64) {
	n := float64(form.TotalResponses)
	form.AverageResponseTime = (form.AverageResponseTime*n + timeTakenSeconds) / (n + 1)
	form.TotalResponses++
}
