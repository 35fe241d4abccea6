package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/aretw0/canova/pkg/domain"
)

// Event is a line emitted by JSONHandler.
type Event struct {
	Type     string           `json:"type"`
	PageID   string           `json:"pageId,omitempty"`
	PageName string           `json:"pageName,omitempty"`
	Question *domain.Question `json:"question,omitempty"`
	Current  any              `json:"current,omitempty"`
	Message  string           `json:"message,omitempty"`
}

// Event types emitted by JSONHandler.
const (
	EventPage     = "page"
	EventQuestion = "question"
	EventNotice   = "notice"
)

// JSONHandler implements IOHandler over JSON Lines: one Event per output line,
// one answer per input line.
type JSONHandler struct {
	Reader  *bufio.Reader
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) ShowPage(ctx context.Context, page *domain.Page) error {
	return h.Encoder.Encode(Event{Type: EventPage, PageID: page.ID, PageName: page.Name})
}

// Ask reads a line holding either a JSON value or raw text. Lists and numbers
// are flattened to the text form the Runner parses.
func (h *JSONHandler) Ask(ctx context.Context, q domain.Question, current any) (string, error) {
	if err := h.Encoder.Encode(Event{Type: EventQuestion, Question: &q, Current: current}); err != nil {
		return "", err
	}

	text, err := h.Reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}
	text = strings.TrimSpace(text)

	var val any
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		switch v := val.(type) {
		case string:
			text = v
		case []any:
			parts := make([]string, len(v))
			for i, item := range v {
				b, _ := json.Marshal(item)
				parts[i] = strings.Trim(string(b), `"`)
			}
			text = strings.Join(parts, ",")
		}
	}
	return SanitizeInput(text)
}

func (h *JSONHandler) Notice(ctx context.Context, msg string) error {
	return h.Encoder.Encode(Event{Type: EventNotice, Message: msg})
}
