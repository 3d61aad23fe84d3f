package session

import (
	"context"
	"time"
)

// Store defines the key-value persistence required for sessions.
// Implementations must expire records after the given TTL and must return
// ErrSessionNotFound for missing or expired identifiers.
type Store interface {
	// Set writes the payload under the identifier with the given TTL,
	// replacing any existing record.
	Set(ctx context.Context, id string, payload Payload, ttl time.Duration) error

	// Get retrieves the payload for an identifier.
	Get(ctx context.Context, id string) (*Payload, error)

	// Delete removes the record. Deleting an unknown identifier is a no-op.
	Delete(ctx context.Context, id string) error
}
