package middleware

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/ports"
)

// Mask replaces redacted answer values.
const Mask = "***"

type piiMiddleware struct {
	ports.Store
	patterns []*regexp.Regexp
}

// NewPIIMiddleware creates a middleware that masks, before saving, the answers
// of questions whose id matches one of the patterns. Keys of map values are
// matched as well.
func NewPIIMiddleware(patternStrings []string) (Middleware, error) {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid redaction pattern %q: %w", p, err)
		}
		patterns[i] = re
	}
	return func(next ports.Store) ports.Store {
		return &piiMiddleware{Store: next, patterns: patterns}
	}, nil
}

func (m *piiMiddleware) SaveResponse(ctx context.Context, response *domain.Response) error {
	cloned := *response
	cloned.Answers = make([]domain.Answer, len(response.Answers))
	for i, a := range response.Answers {
		if m.matches(a.QuestionID) {
			a.Value = Mask
			a.FileURLs = nil
		} else if sub, ok := a.Value.(map[string]any); ok {
			sub = deepCopyMap(sub)
			maskMap(sub, m.patterns)
			a.Value = sub
		}
		cloned.Answers[i] = a
	}
	return m.Store.SaveResponse(ctx, &cloned)
}

func (m *piiMiddleware) matches(key string) bool {
	for _, p := range m.patterns {
		if p.MatchString(key) {
			return true
		}
	}
	return false
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if subMap, ok := v.(map[string]any); ok {
			out[k] = deepCopyMap(subMap)
		} else {
			out[k] = v
		}
	}
	return out
}

func maskMap(m map[string]any, patterns []*regexp.Regexp) {
	for k, v := range m {
		for _, p := range patterns {
			if p.MatchString(k) {
				m[k] = Mask
				break
			}
		}
		if subMap, ok := v.(map[string]any); ok {
			maskMap(subMap, patterns)
		}
	}
}
