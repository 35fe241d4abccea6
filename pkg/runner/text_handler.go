package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/flow"
)

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the Markdown renderer used for page headers.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// initPump starts the goroutine reading lines so that Ask can honor ctx.
func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

func (h *TextHandler) pump() {
	defer close(h.inputChan)
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err != io.EOF {
				h.inputChan <- inputResult{err: err}
			}
			return
		}
	}
}

func (h *TextHandler) ShowPage(ctx context.Context, page *domain.Page) error {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n", page.Name)
	if len(page.Sections) > 1 {
		for _, s := range page.Sections {
			fmt.Fprintf(&b, "- %s (%d)\n", s.Name, len(s.Questions))
		}
	}
	return h.print(b.String())
}

func (h *TextHandler) Ask(ctx context.Context, q domain.Question, current any) (string, error) {
	h.initPump()

	var b strings.Builder
	b.WriteString(q.QuestionText)
	if q.Required {
		b.WriteString(" *")
	}
	if hint := hint(q); hint != "" {
		fmt.Fprintf(&b, " %s", hint)
	}
	if current != nil && !flow.IsEmptyAnswer(current) {
		fmt.Fprintf(&b, " [%s]", flow.Stringify(current))
	}
	fmt.Fprintln(h.Writer, b.String())

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, "> ")
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			clean, err := SanitizeInput(strings.TrimSpace(res.text))
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

func (h *TextHandler) Notice(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "! %s\n", msg)
	return err
}

func (h *TextHandler) print(markdown string) error {
	output := markdown
	if h.Renderer != nil {
		if rendered, err := h.Renderer(markdown); err == nil {
			output = rendered
		}
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimSpace(output))
	return err
}

// hint describes the expected answer format.
func hint(q domain.Question) string {
	switch q.Type {
	case domain.QuestionMultipleChoice, domain.QuestionDropdown:
		return "(" + numbered(q.Options) + ")"
	case domain.QuestionCheckbox:
		return "(comma separated: " + numbered(q.Options) + ")"
	case domain.QuestionRating, domain.QuestionLinearScale:
		lo, hi := q.RatingBounds()
		return fmt.Sprintf("(%d-%d)", lo, hi)
	case domain.QuestionDate:
		return "(YYYY-MM-DD)"
	case domain.QuestionFileUpload:
		return "(comma separated file URLs)"
	}
	return ""
}

func numbered(options []string) string {
	parts := make([]string, len(options))
	for i, o := range options {
		parts[i] = fmt.Sprintf("%d=%s", i+1, o)
	}
	return strings.Join(parts, ", ")
}
