package middleware_test

import (
	"context"
	"testing"

	"github.com/aretw0/canova/pkg/adapters/memory"
	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/persistence/middleware"
)

func TestPIIMiddleware_Masking(t *testing.T) {
	underlyingStore := memory.NewStore()
	mw, err := middleware.NewPIIMiddleware([]string{"password", "^ssn"})
	if err != nil {
		t.Fatal(err)
	}
	secureStore := mw(underlyingStore)

	ctx := context.Background()
	response := &domain.Response{
		ID:     domain.NewID(),
		FormID: "form-1",
		Answers: []domain.Answer{
			{QuestionID: "username", Value: "jdoe"},
			{QuestionID: "user_password", Value: "secret123"},
			{QuestionID: "details", Value: map[string]any{
				"address":    "123 St",
				"ssn_number": "999-99-9999",
			}},
		},
	}

	if err := secureStore.SaveResponse(ctx, response); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if response.Answers[1].Value != "secret123" {
		t.Error("Middleware modified original response in memory!")
	}
	if response.Answers[2].Value.(map[string]any)["ssn_number"] != "999-99-9999" {
		t.Error("Middleware modified a nested answer in memory!")
	}

	stored, err := underlyingStore.GetResponse(ctx, response.ID)
	if err != nil {
		t.Fatalf("Underlying load failed: %v", err)
	}
	answers := stored.AnswerMap()
	if answers["username"] != "jdoe" {
		t.Error("Username shouldn't be masked")
	}
	if answers["user_password"] != middleware.Mask {
		t.Errorf("Password should be masked, got: %v", answers["user_password"])
	}
	details := answers["details"].(map[string]any)
	if details["ssn_number"] != middleware.Mask {
		t.Errorf("Nested SSN should be masked, got: %v", details["ssn_number"])
	}
	if details["address"] != "123 St" {
		t.Errorf("Address shouldn't be masked, got: %v", details["address"])
	}
}

func TestPIIMiddleware_InvalidPattern(t *testing.T) {
	if _, err := middleware.NewPIIMiddleware([]string{"("}); err == nil {
		t.Error("Expected error for invalid pattern")
	}
}

func TestChain(t *testing.T) {
	underlyingStore := memory.NewStore()
	pii, err := middleware.NewPIIMiddleware([]string{"secret"})
	if err != nil {
		t.Fatal(err)
	}
	enc, err := middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: generateKey(t)})
	if err != nil {
		t.Fatal(err)
	}
	store := middleware.Chain(underlyingStore, enc, pii, nil)

	ctx := context.Background()
	response := newResponse("form-1", "kept")
	response.Answers = append(response.Answers, domain.Answer{QuestionID: "secret", Value: "hidden"})
	if err := store.SaveResponse(ctx, response); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.GetResponse(ctx, response.ID)
	if err != nil {
		t.Fatal(err)
	}
	answers := loaded.AnswerMap()
	if answers["email"] != "kept" || answers["secret"] != middleware.Mask {
		t.Errorf("Unexpected answers after chain: %v", answers)
	}
}
