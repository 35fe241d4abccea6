package schema

import (
	"errors"
	"testing"

	"github.com/aretw0/canova/pkg/domain"
)

func testForm() *domain.Form {
	return &domain.Form{
		ID: "f1",
		Pages: []domain.Page{
			{ID: "p1", Sections: []domain.Section{{Questions: []domain.Question{
				{ID: "color", Type: domain.QuestionDropdown, Options: []string{"red", "blue"}},
				{ID: "score", Type: domain.QuestionRating},
			}}}},
			{ID: "p2", Sections: []domain.Section{{Questions: []domain.Question{
				{ID: "cv", Type: domain.QuestionFileUpload},
			}}}},
		},
	}
}

func TestValidate_Success(t *testing.T) {
	answers := []domain.Answer{
		{QuestionID: "color", Value: "red"},
		{QuestionID: "score", Value: float64(4)},
		{QuestionID: "cv", FileURLs: []string{"https://cdn/cv.pdf"}},
	}

	if err := ValidateForm(testForm(), answers); err != nil {
		t.Errorf("ValidateForm() error = %v, want nil", err)
	}
}

func TestValidate_SkipsUnanswered(t *testing.T) {
	answers := []domain.Answer{
		{QuestionID: "color", Value: ""},
		{QuestionID: "score", Value: nil},
	}

	if err := ValidateForm(testForm(), answers); err != nil {
		t.Errorf("ValidateForm() error = %v, want nil", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	answers := []domain.Answer{
		{QuestionID: "color", Value: "green"},
		{QuestionID: "score", Value: float64(9)},
		{QuestionID: "ghost", Value: "boo"},
		{QuestionID: "color", Value: "red"},
	}

	err := ValidateForm(testForm(), answers)
	if err == nil {
		t.Fatal("ValidateForm() = nil, want error")
	}
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("errors.Is(err, ErrInvalidInput) = false, err = %v", err)
	}

	errs := ValidationErrors(err)
	if len(errs) != 4 {
		t.Fatalf("got %d errors, want 4: %v", len(errs), err)
	}

	var ve *ValidationError
	if !errors.As(errs[2], &ve) || ve.Key != "ghost" {
		t.Errorf("third error = %v, want unknown question ghost", errs[2])
	}
}
