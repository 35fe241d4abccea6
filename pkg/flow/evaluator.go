package flow

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/aretw0/canova/pkg/domain"
)

// Evaluate picks the branch target of a page for the given answers.
//
// It returns TruePageID when every condition holds and FalsePageID otherwise.
// ok is false when logic is nil or the chosen branch has no target.
func Evaluate(logic *domain.ConditionalLogic, answers domain.Answers) (pageID string, ok bool) {
	if logic == nil {
		return "", false
	}
	target := logic.FalsePageID
	if ConditionsMet(logic.Conditions, answers) {
		target = logic.TruePageID
	}
	return target, target != ""
}

// ConditionsMet reports whether every condition holds. An empty list holds.
func ConditionsMet(conditions []domain.Condition, answers domain.Answers) bool {
	for _, c := range conditions {
		if !ConditionMet(c, answers) {
			return false
		}
	}
	return true
}

// ConditionMet evaluates a single condition.
//
// A blank criteria is a wildcard satisfied by any non-empty answer. List answers
// match when one of their elements equals the criteria. Any other answer matches
// when its string form equals the criteria.
func ConditionMet(c domain.Condition, answers domain.Answers) bool {
	value, present := answers[c.QuestionID]

	if strings.TrimSpace(c.AnswerCriteria) == "" {
		return present && !IsEmptyAnswer(value)
	}
	if !present || value == nil {
		return false
	}

	if items, isList := listOf(value); isList {
		for _, item := range items {
			if Stringify(item) == c.AnswerCriteria {
				return true
			}
		}
		return false
	}
	return Stringify(value) == c.AnswerCriteria
}

// IsEmptyAnswer reports whether value counts as unanswered: nil, the empty
// string or an empty list.
func IsEmptyAnswer(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	if items, ok := listOf(value); ok {
		return len(items) == 0
	}
	return false
}

// Stringify renders an answer value the way criteria are written: integral
// numbers without a fractional part, booleans as true/false.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func listOf(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
