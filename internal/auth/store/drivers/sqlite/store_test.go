package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/lanternchat/lantern/internal/auth/domain"
	"github.com/lanternchat/lantern/internal/auth/store"
	"github.com/lanternchat/lantern/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	st, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedUser(t *testing.T, st *Store, phoneNumber string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Name:         "Alice",
		PhoneNumber:  phoneNumber,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("create and read back", func(t *testing.T) {
		st := newTestStore(t)
		u := seedUser(t, st, "+15550000001")

		byID, err := st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, u.PhoneNumber, byID.PhoneNumber)
		require.False(t, byID.CreatedAt.IsZero())

		byPhone, err := st.Users().GetUserByPhoneNumber(ctx, u.PhoneNumber)
		require.NoError(t, err)
		require.Equal(t, u.ID, byPhone.ID)
	})

	t.Run("missing user is ErrNotFound", func(t *testing.T) {
		st := newTestStore(t)

		_, err := st.Users().GetUserByID(ctx, idx.New().String())
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = st.Users().GetUserByPhoneNumber(ctx, "+15559999999")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate phone number is ErrAlreadyExists", func(t *testing.T) {
		st := newTestStore(t)
		seedUser(t, st, "+15550000001")

		err := st.Users().CreateUser(ctx, domain.User{
			ID:           idx.New().String(),
			Name:         "Mallory",
			PhoneNumber:  "+15550000001",
			PasswordHash: "x",
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestSessionsRepo(t *testing.T) {
	ctx := context.Background()

	record := func(principalID, hash string) domain.SessionRecord {
		return domain.SessionRecord{
			PrincipalID: principalID,
			RefreshHash: hash,
			IssuedAt:    time.Now().UTC().Truncate(time.Second),
			TTLSeconds:  3600,
		}
	}

	t.Run("upsert and get", func(t *testing.T) {
		st := newTestStore(t)
		u := seedUser(t, st, "+15550000001")

		rec := record(u.ID, "hash-1")
		require.NoError(t, st.Sessions().UpsertSession(ctx, rec))

		got, err := st.Sessions().GetSession(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "hash-1", got.RefreshHash)
		require.Equal(t, rec.IssuedAt, got.IssuedAt)
		require.Equal(t, int64(3600), got.TTLSeconds)
	})

	t.Run("upsert for an unknown principal fails", func(t *testing.T) {
		st := newTestStore(t)

		err := st.Sessions().UpsertSession(ctx, record(idx.New().String(), "hash-1"))
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("user without a session reads as not found", func(t *testing.T) {
		st := newTestStore(t)
		u := seedUser(t, st, "+15550000001")

		_, err := st.Sessions().GetSession(ctx, u.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		ok, err := st.Sessions().SessionExists(ctx, u.ID)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("swap is keyed on the previous hash", func(t *testing.T) {
		st := newTestStore(t)
		u := seedUser(t, st, "+15550000001")

		require.NoError(t, st.Sessions().UpsertSession(ctx, record(u.ID, "hash-1")))
		require.NoError(t, st.Sessions().SwapSession(ctx, "hash-1", record(u.ID, "hash-2")))

		err := st.Sessions().SwapSession(ctx, "hash-1", record(u.ID, "hash-3"))
		require.ErrorIs(t, err, store.ErrConflict)

		got, err := st.Sessions().GetSession(ctx, u.ID)
		require.NoError(t, err)
		require.Equal(t, "hash-2", got.RefreshHash)
	})

	t.Run("delete clears the columns and stays idempotent", func(t *testing.T) {
		st := newTestStore(t)
		u := seedUser(t, st, "+15550000001")

		require.NoError(t, st.Sessions().UpsertSession(ctx, record(u.ID, "hash-1")))
		require.NoError(t, st.Sessions().DeleteSession(ctx, u.ID))
		require.NoError(t, st.Sessions().DeleteSession(ctx, u.ID))

		_, err := st.Sessions().GetSession(ctx, u.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		// The user row itself survives the session delete.
		_, err = st.Users().GetUserByID(ctx, u.ID)
		require.NoError(t, err)
	})
}
