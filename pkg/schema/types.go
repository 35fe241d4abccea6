package schema

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Type defines the contract for answer validation.
// Implementations determine how values are validated against a question.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "int(1..5)").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// --- Built-in Type Implementations ---

// StringType validates string values, optionally bounded in length.
type StringType struct {
	maxLen int
}

func (t *StringType) Name() string {
	if t.maxLen > 0 {
		return fmt.Sprintf("string(<=%d)", t.maxLen)
	}
	return "string"
}

func (t *StringType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if t.maxLen > 0 && len([]rune(s)) > t.maxLen {
		return fmt.Errorf("longer than %d characters", t.maxLen)
	}
	return nil
}

// IntRangeType validates whole numbers within [min, max].
// Numeric strings are accepted since some clients send scale values as text.
type IntRangeType struct {
	min, max int
}

func (t *IntRangeType) Name() string { return fmt.Sprintf("int(%d..%d)", t.min, t.max) }

func (t *IntRangeType) Validate(value any) error {
	n, err := toInt(value)
	if err != nil {
		return err
	}
	if n < t.min || n > t.max {
		return fmt.Errorf("expected value between %d and %d, got %d", t.min, t.max, n)
	}
	return nil
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		// Accept floats that are whole numbers (from JSON unmarshaling)
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("expected int, got float (not a whole number)")
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("expected int, got %q", v)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected int, got %T", value)
	}
}

// ChoiceType validates a string picked from a fixed option list.
// An empty option list accepts any string.
type ChoiceType struct {
	options []string
}

func (t *ChoiceType) Name() string { return fmt.Sprintf("choice(%s)", strings.Join(t.options, "|")) }

func (t *ChoiceType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if len(t.options) > 0 && !slices.Contains(t.options, s) {
		return fmt.Errorf("%q is not one of the options", s)
	}
	return nil
}

// SliceType validates slices of a specific element type, optionally bounded in length.
type SliceType struct {
	elemType Type
	maxLen   int
}

func (t *SliceType) Name() string {
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

func (t *SliceType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("expected list, got %T", value)
	}
	if t.maxLen > 0 && rv.Len() > t.maxLen {
		return fmt.Errorf("expected at most %d items, got %d", t.maxLen, rv.Len())
	}

	// Validate each element
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		if err := t.elemType.Validate(elem); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// DateType validates calendar dates written as 2006-01-02 or RFC 3339.
type DateType struct{}

func (t *DateType) Name() string { return "date" }

func (t *DateType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected date string, got %T", value)
	}
	if _, err := time.Parse(time.DateOnly, s); err == nil {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return nil
	}
	return fmt.Errorf("%q is not a date", s)
}

// AnyType accepts every value.
type AnyType struct{}

func (t *AnyType) Name() string { return "any" }

func (t *AnyType) Validate(any) error { return nil }

// CustomType applies a user-defined validation function.
type CustomType struct {
	name     string
	validate func(any) error
}

func (t *CustomType) Name() string { return t.name }

func (t *CustomType) Validate(value any) error {
	return t.validate(value)
}

// --- Factory Functions ---

// String creates a string type validator. maxLen <= 0 means unbounded.
func String(maxLen int) Type { return &StringType{maxLen: maxLen} }

// IntRange creates a bounded integer validator.
func IntRange(min, max int) Type { return &IntRangeType{min: min, max: max} }

// Choice creates a single-choice validator.
func Choice(options ...string) Type { return &ChoiceType{options: options} }

// Slice creates a list validator for elements of the given type.
// maxLen <= 0 means unbounded.
func Slice(elemType Type, maxLen int) Type {
	return &SliceType{elemType: elemType, maxLen: maxLen}
}

// Date creates a date validator.
func Date() Type { return &DateType{} }

// Any creates a validator accepting every value.
func Any() Type { return &AnyType{} }

// Custom creates a custom type validator with a user-defined function.
func Custom(name string, validate func(any) error) Type {
	return &CustomType{name: name, validate: validate}
}
