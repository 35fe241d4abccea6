package domain

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

// NewID returns a fresh, sortable document identifier.
func NewID() string {
	return ulid.Make().String()
}

// ValidID reports whether id was produced by NewID.
func ValidID(id string) bool {
	_, err := ulid.Parse(id)
	return err == nil
}

// NewElementID returns an identifier for a page, section or question,
// e.g. "page-01hx3k9q2m".
func NewElementID(prefix string) string {
	u := strings.ToLower(ulid.Make().String())
	// last 12 chars fall in the random component of the ULID
	return fmt.Sprintf("%s-%s", prefix, u[len(u)-12:])
}
