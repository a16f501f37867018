package session

import (
	"context"
	"errors"
	"time"

	"github.com/lanternchat/lantern/internal/auth/domain"
	"github.com/lanternchat/lantern/internal/auth/store"
)

// EntityStore implements Store on the nullable session columns of the
// principal's own database row. The database has no per-row TTL, so
// expiry is re-derived on every read from issuedAt + ttl; an expired
// record behaves exactly like a deleted one, keeping both backends'
// semantics identical.
type EntityStore struct {
	sessions store.Sessions
	pinger   interface {
		Ping(ctx context.Context) error
	}

	// now is swappable for expiry tests.
	now func() time.Time
}

func NewEntityStore(st store.Store) *EntityStore {
	return &EntityStore{
		sessions: st.Sessions(),
		pinger:   st,
		now:      time.Now,
	}
}

func (s *EntityStore) Set(ctx context.Context, principalID, refreshHash string, ttlSeconds int64) error {
	err := s.sessions.UpsertSession(ctx, domain.SessionRecord{
		PrincipalID: principalID,
		RefreshHash: refreshHash,
		IssuedAt:    s.now().UTC(),
		TTLSeconds:  ttlSeconds,
	})
	return mapStoreError(err)
}

func (s *EntityStore) Get(ctx context.Context, principalID string) (string, error) {
	rec, err := s.sessions.GetSession(ctx, principalID)
	if err != nil {
		return "", mapStoreError(err)
	}

	if !s.now().Before(rec.ExpiresAt()) {
		// Stale columns, clear them opportunistically. Failure here is
		// harmless since every later read re-derives expiry anyway.
		_ = s.sessions.DeleteSession(ctx, principalID)
		return "", ErrNoSession
	}

	return rec.RefreshHash, nil
}

func (s *EntityStore) Delete(ctx context.Context, principalID string) error {
	return mapStoreError(s.sessions.DeleteSession(ctx, principalID))
}

func (s *EntityStore) Exists(ctx context.Context, principalID string) (bool, error) {
	// The existence probe alone cannot see expiry, so expired columns
	// must be checked against the full record.
	rec, err := s.sessions.GetSession(ctx, principalID)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, mapStoreError(err)
	}
	return s.now().Before(rec.ExpiresAt()), nil
}

func (s *EntityStore) Replace(ctx context.Context, principalID, previousHash, newHash string, ttlSeconds int64) error {
	err := s.sessions.SwapSession(ctx, previousHash, domain.SessionRecord{
		PrincipalID: principalID,
		RefreshHash: newHash,
		IssuedAt:    s.now().UTC(),
		TTLSeconds:  ttlSeconds,
	})
	return mapStoreError(err)
}

func (s *EntityStore) Ping(ctx context.Context) error {
	if err := s.pinger.Ping(ctx); err != nil {
		return unavailable(err)
	}
	return nil
}

func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrNoSession
	case errors.Is(err, store.ErrConflict):
		return ErrConflict
	default:
		return unavailable(err)
	}
}
