// Package idgen generates task IDs.
package idgen

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/runoshun/todo/internal/domain"
)

// Ensure UUIDv7 implements domain.IDGenerator.
var _ domain.IDGenerator = UUIDv7{}

// UUIDv7 generates time-ordered UUIDs: a 48-bit millisecond timestamp
// followed by random bits, so IDs never repeat within a store's lifetime.
type UUIDv7 struct{}

// NewID returns a new UUIDv7 string.
func (UUIDv7) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return id.String(), nil
}

// ShortID returns the last 8 characters of a UUID for compact display.
// The tail of a UUIDv7 is random, unlike its timestamp prefix.
// Other IDs (seeded or sample tasks) are returned unchanged.
func ShortID(id string) string {
	if _, err := uuid.Parse(id); err != nil {
		return id
	}
	return id[len(id)-8:]
}
