package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aretw0/canova"
	"github.com/aretw0/canova/internal/logging"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/flow"
	"github.com/aretw0/canova/pkg/schema"
)

// Runner walks a filler through a form using an IOHandler.
type Runner struct {
	engine  *canova.Engine
	handler IOHandler
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a Runner. Without options it uses a default engine and a
// TextHandler on stdin and stdout.
func New(opts ...Option) *Runner {
	r := &Runner{now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.NewNop()
	}
	if r.engine == nil {
		r.engine = canova.New(canova.WithLogger(r.logger))
	}
	if r.handler == nil {
		r.handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r
}

// Run fills form from its first page until a terminal page is left and returns
// the collected response. Only answers on the path actually taken are kept.
// The form's navigation edges must already be derived.
func (r *Runner) Run(ctx context.Context, form *domain.Form) (*domain.Response, error) {
	if len(form.Pages) == 0 {
		return nil, domain.Invalid("pages", "form has no pages")
	}

	start := r.now()
	answers := domain.Answers{}
	var history flow.History
	current := form.Pages[0].ID

	for {
		page, ok := form.Page(current)
		if !ok {
			return nil, fmt.Errorf("page %q: %w", current, domain.ErrPageNotFound)
		}
		if err := r.handler.ShowPage(ctx, page); err != nil {
			return nil, fmt.Errorf("output error: %w", err)
		}

		back, err := r.fillPage(ctx, page, answers)
		if err != nil {
			return nil, err
		}
		if back {
			current, _ = r.engine.Back(form, &history)
			continue
		}

		step, err := r.engine.Next(ctx, form, current, answers, &history)
		var missing *domain.MissingAnswersError
		if errors.As(err, &missing) {
			if err := r.handler.Notice(ctx, "required: "+strings.Join(missing.QuestionIDs, ", ")); err != nil {
				return nil, err
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		if step.Terminal() {
			break
		}
		current = step.PageID
	}

	path := append(history[:len(history):len(history)], current)
	response := &domain.Response{
		ID:               domain.NewID(),
		FormID:           form.ID,
		Answers:          collect(form, path, answers),
		TimeTakenSeconds: r.now().Sub(start).Seconds(),
		CreatedAt:        r.now().UTC(),
	}
	if err := schema.ValidateForm(form, response.Answers); err != nil {
		return nil, err
	}

	r.logger.Debug("Form filled", "form_id", form.ID, "pages", len(path), "answers", len(response.Answers))
	return response, nil
}

// fillPage asks every answerable question of page. It reports true when the
// filler asked to go back. An empty line keeps the current answer.
func (r *Runner) fillPage(ctx context.Context, page *domain.Page, answers domain.Answers) (bool, error) {
	for _, q := range page.Questions() {
		if q.Type.IsMedia() {
			continue
		}
		for {
			raw, err := r.handler.Ask(ctx, q, answers[q.ID])
			if err != nil {
				return false, err
			}
			if raw == BackCommand {
				return true, nil
			}
			if strings.TrimSpace(raw) == "" {
				break
			}
			value, err := ParseAnswer(q, raw)
			if err != nil {
				if err := r.handler.Notice(ctx, err.Error()); err != nil {
					return false, err
				}
				continue
			}
			answers[q.ID] = value
			break
		}
	}
	return false, nil
}

// collect turns the answers of the visited pages into persisted answers, in
// page order.
func collect(form *domain.Form, path []string, answers domain.Answers) []domain.Answer {
	visited := make(map[string]bool, len(path))
	for _, id := range path {
		visited[id] = true
	}

	out := []domain.Answer{}
	for _, p := range form.Pages {
		if !visited[p.ID] {
			continue
		}
		for _, q := range p.Questions() {
			value, ok := answers[q.ID]
			if !ok || flow.IsEmptyAnswer(value) {
				continue
			}
			a := domain.Answer{QuestionID: q.ID, QuestionType: q.Type, Value: value}
			if urls, isList := value.([]string); isList && q.Type == domain.QuestionFileUpload {
				a.Value, a.FileURLs = nil, urls
			}
			out = append(out, a)
		}
	}
	return out
}
