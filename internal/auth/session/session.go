// Package session owns the per-principal refresh session record: which
// refresh-credential hash is currently valid and for how long. Two
// interchangeable backends exist, a Redis store with native key expiry
// and an adapter over the principal's own database row. Callers never
// special-case the backend.
package session

import (
	"context"
	"errors"
)

var (
	// ErrNoSession means the principal has no current session record,
	// because of an explicit logout or a natural TTL expiry. The two
	// are indistinguishable to callers.
	ErrNoSession = errors.New("session: no session")

	// ErrConflict means a Replace lost the race: the stored hash
	// changed between the caller's read and its write.
	ErrConflict = errors.New("session: conflict")

	// ErrUnavailable wraps transport failures of the underlying store.
	// It is the only retryable error class, and retries belong to the
	// store client, never to business logic.
	ErrUnavailable = errors.New("session: store unavailable")
)

// Store maps principal id to the bcrypt hash of the currently valid
// refresh credential. At most one record exists per principal; every
// write replaces. Each operation is a single round trip.
type Store interface {
	// Set creates or unconditionally overwrites the record and
	// (re)starts its TTL.
	Set(ctx context.Context, principalID, refreshHash string, ttlSeconds int64) error

	// Get returns the current hash, or ErrNoSession when absent or
	// expired.
	Get(ctx context.Context, principalID string) (string, error)

	// Delete removes the record. Idempotent, no error if absent.
	Delete(ctx context.Context, principalID string) error

	// Exists probes for a live record without fetching the hash.
	Exists(ctx context.Context, principalID string) (bool, error)

	// Replace atomically swaps the stored hash for newHash, keyed on
	// previousHash: if the record no longer holds previousHash the
	// write is rejected with ErrConflict. This is what makes rotation
	// safe against concurrent duplicate refresh calls.
	Replace(ctx context.Context, principalID, previousHash, newHash string, ttlSeconds int64) error

	// Ping verifies the backing store is reachable.
	Ping(ctx context.Context) error
}
