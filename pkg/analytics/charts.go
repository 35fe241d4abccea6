package analytics

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/flow"
)

// ChartType tells the client how to draw a chart.
type ChartType string

const (
	ChartPie   ChartType = "pie"
	ChartBar   ChartType = "bar"
	ChartCount ChartType = "count"
)

// Datum is one slice or bar of a chart.
type Datum struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Rating     int     `json:"rating,omitempty"`
}

// Chart aggregates the answers of one question.
type Chart struct {
	QuestionID     string              `json:"questionId"`
	QuestionNumber int                 `json:"questionNumber"`
	QuestionText   string              `json:"questionText"`
	QuestionType   domain.QuestionType `json:"questionType"`
	ChartType      ChartType           `json:"chartType"`
	TotalResponses int                 `json:"totalResponses"`
	AverageRating  float64             `json:"averageRating,omitempty"`
	Data           []Datum             `json:"data,omitempty"`
}

// PageCharts groups the charts of one page.
type PageCharts struct {
	PageNumber int     `json:"pageNumber"`
	PageID     string  `json:"pageId"`
	PageName   string  `json:"pageName"`
	Charts     []Chart `json:"charts"`
}

// ChartsByPage builds the charts of every answered question, grouped by page.
// Pages without any chart are left out.
func ChartsByPage(form *domain.Form, responses []*domain.Response) []PageCharts {
	out := []PageCharts{}
	if len(responses) == 0 {
		return out
	}

	for pi, page := range form.Pages {
		var charts []Chart
		for _, section := range page.Sections {
			for qi, q := range section.Questions {
				answers := answersTo(q.ID, responses)
				if len(answers) == 0 {
					continue
				}
				chart, ok := chartFor(q, answers)
				if !ok {
					continue
				}
				chart.QuestionNumber = qi + 1
				charts = append(charts, chart)
			}
		}
		if len(charts) > 0 {
			out = append(out, PageCharts{
				PageNumber: pi + 1,
				PageID:     page.ID,
				PageName:   page.Name,
				Charts:     charts,
			})
		}
	}
	return out
}

// answersTo returns the values given to a question, one per response that answered it.
func answersTo(questionID string, responses []*domain.Response) []any {
	var out []any
	for _, r := range responses {
		for _, a := range r.Answers {
			if a.QuestionID == questionID {
				out = append(out, a.Value)
				break
			}
		}
	}
	return out
}

func chartFor(q domain.Question, answers []any) (Chart, bool) {
	chart := Chart{
		QuestionID:     q.ID,
		QuestionText:   q.QuestionText,
		QuestionType:   q.Type,
		TotalResponses: len(answers),
	}

	switch q.Type {
	case domain.QuestionMultipleChoice, domain.QuestionDropdown:
		chart.ChartType = ChartPie
		chart.Data = optionCounts(q.Options, answers, false)
	case domain.QuestionCheckbox:
		chart.ChartType = ChartBar
		chart.Data = optionCounts(q.Options, answers, true)
	case domain.QuestionRating, domain.QuestionLinearScale:
		chart.ChartType = ChartBar
		chart.Data, chart.TotalResponses, chart.AverageRating = ratingCounts(q, answers)
	case domain.QuestionText, domain.QuestionImage, domain.QuestionVideo:
		return Chart{}, false
	default:
		answered := 0
		for _, v := range answers {
			if !flow.IsEmptyAnswer(v) {
				answered++
			}
		}
		chart.ChartType = ChartCount
		chart.TotalResponses = answered
	}
	return chart, true
}

func optionCounts(options []string, answers []any, multi bool) []Datum {
	counts := make(map[string]int, len(options))
	for _, o := range options {
		counts[o] = 0
	}

	for _, v := range answers {
		values := []any{v}
		if multi {
			if items, ok := asList(v); ok {
				values = items
			}
		}
		for _, item := range values {
			s := flow.Stringify(item)
			if _, known := counts[s]; known {
				counts[s]++
			}
		}
	}

	data := make([]Datum, 0, len(options))
	for _, o := range options {
		data = append(data, Datum{
			Name:       o,
			Count:      counts[o],
			Percentage: percentage(counts[o], len(answers)),
		})
	}
	return data
}

func ratingCounts(q domain.Question, answers []any) ([]Datum, int, float64) {
	lo, hi := q.RatingBounds()
	if hi < lo {
		lo, hi = hi, lo
	}

	counts := make(map[int]int, hi-lo+1)
	total, sum := 0, 0
	for _, v := range answers {
		f, err := strconv.ParseFloat(flow.Stringify(v), 64)
		if err != nil {
			continue
		}
		r := int(math.Trunc(f))
		if r < lo || r > hi {
			continue
		}
		counts[r]++
		total++
		sum += r
	}

	data := make([]Datum, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		data = append(data, Datum{
			Name:       ratingLabel(q.Type, r),
			Count:      counts[r],
			Percentage: percentage(counts[r], total),
			Rating:     r,
		})
	}

	avg := 0.0
	if total > 0 {
		avg = round1(float64(sum) / float64(total))
	}
	return data, total, avg
}

func ratingLabel(kind domain.QuestionType, r int) string {
	if kind != domain.QuestionRating {
		return strconv.Itoa(r)
	}
	if r == 1 {
		return "1 Star"
	}
	return fmt.Sprintf("%d Stars", r)
}

func asList(v any) ([]any, bool) {
	switch items := v.(type) {
	case []any:
		return items, true
	case []string:
		out := make([]any, len(items))
		for i, s := range items {
			out[i] = s
		}
		return out, true
	}
	return nil, false
}

func percentage(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return round1(float64(n) / float64(of) * 100)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
