package dsl

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/canova/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Decode parses a form document written in JSON or YAML.
// The document is either a form object with a pages list or a bare list of pages.
// Missing identifiers of the form are filled in; navigation edges are left as written.
func Decode(data []byte) (*domain.Form, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New("empty form document")
	}

	form := &domain.Form{}
	if trimmed[0] == '[' {
		if err := yaml.Unmarshal(trimmed, &form.Pages); err != nil {
			return nil, fmt.Errorf("failed to parse pages: %w", err)
		}
	} else if err := yaml.Unmarshal(trimmed, form); err != nil {
		return nil, fmt.Errorf("failed to parse form: %w", err)
	}

	if len(form.Pages) == 0 {
		return nil, errors.New("form document has no pages")
	}
	for i, p := range form.Pages {
		if p.ID == "" {
			return nil, fmt.Errorf("page %d has no id", i+1)
		}
	}

	if form.ID == "" {
		form.ID = domain.NewID()
	}
	if form.Status == "" {
		form.Status = domain.FormStatusDraft
	}
	if form.AccessSettings.Visibility == "" {
		form.AccessSettings.Visibility = domain.VisibilityPublic
	}
	return form, nil
}

// DecodeFile reads and decodes a form document from disk.
func DecodeFile(path string) (*domain.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form: %w", err)
	}
	form, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return form, nil
}
