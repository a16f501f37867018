package store

import (
	"context"
	"errors"

	"github.com/lanternchat/lantern/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrConflict reports a conditional write that matched no row, i.e.
	// the record changed between read and write.
	ErrConflict = errors.New("store: conflict")
)

// Store is the root data access interface backing the user collaborator
// and the entity-field session backend. Every operation is a single
// round trip; multi-step flows coordinate through conditional writes,
// not transactions, to keep the race window as small as the store allows.
type Store interface {
	Users() Users
	Sessions() Sessions

	ApplyMigrations() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByPhoneNumber is the identity lookup used by login and the
	// duplicate check during registration.
	GetUserByPhoneNumber(ctx context.Context, phoneNumber string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the phone number is taken.
	CreateUser(ctx context.Context, u domain.User) error
}

// Sessions persists the refresh-credential hash as nullable columns on
// the principal's own row. The store has no native TTL; expiry
// enforcement happens in the session adapter on every read.
type Sessions interface {
	// UpsertSession sets the session columns, unconditionally replacing
	// any prior value and restarting the TTL.
	UpsertSession(ctx context.Context, rec domain.SessionRecord) error

	// GetSession returns the current record, or ErrNotFound when the
	// principal has no session columns set.
	GetSession(ctx context.Context, principalID string) (domain.SessionRecord, error)

	// SwapSession replaces the session columns only if the stored hash
	// still equals previousHash. Returns ErrConflict when the record
	// changed (or was cleared) between read and write.
	SwapSession(ctx context.Context, previousHash string, rec domain.SessionRecord) error

	// DeleteSession clears the session columns. Idempotent.
	DeleteSession(ctx context.Context, principalID string) error

	// SessionExists probes for a set session column without fetching
	// the hash.
	SessionExists(ctx context.Context, principalID string) (bool, error)
}
