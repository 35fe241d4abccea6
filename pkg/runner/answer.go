package runner

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/schema"
)

// ParseAnswer converts typed text into the answer value of q and validates it.
// Blank text yields a nil value. Choices may be typed by their 1-based number.
func ParseAnswer(q domain.Question, raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var value any
	switch q.Type {
	case domain.QuestionMultipleChoice, domain.QuestionDropdown:
		value = pick(q.Options, raw)
	case domain.QuestionCheckbox:
		items := split(raw)
		for i, item := range items {
			items[i] = pick(q.Options, item)
		}
		value = items
	case domain.QuestionFileUpload:
		value = split(raw)
	case domain.QuestionRating, domain.QuestionLinearScale:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", raw)
		}
		value = n
	default:
		value = raw
	}

	if err := schema.ForQuestion(q).Validate(value); err != nil {
		return nil, err
	}
	return value, nil
}

func pick(options []string, raw string) string {
	if slices.Contains(options, raw) {
		return raw
	}
	if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(options) {
		return options[n-1]
	}
	return raw
}

func split(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
