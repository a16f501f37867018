package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/lanternchat/lantern/internal/auth/domain"
	"github.com/lanternchat/lantern/internal/auth/store"
)

// sessionsRepo persists the refresh session as nullable columns on the
// user's own row. Each operation is a single statement so the swap in
// SwapSession is atomic at the database level.
type sessionsRepo struct {
	db *sql.DB
}

func (r *sessionsRepo) UpsertSession(ctx context.Context, rec domain.SessionRecord) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET refresh_hash = ?, refresh_issued_at = ?, refresh_ttl_seconds = ?, updated_at = ?
		 WHERE id = ?`,
		rec.RefreshHash, rec.IssuedAt.UTC().Unix(), rec.TTLSeconds,
		time.Now().UTC().Unix(), rec.PrincipalID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *sessionsRepo) GetSession(ctx context.Context, principalID string) (domain.SessionRecord, error) {
	var (
		hash     sql.NullString
		issuedAt sql.NullInt64
		ttl      sql.NullInt64
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT refresh_hash, refresh_issued_at, refresh_ttl_seconds
		 FROM users WHERE id = ?`, principalID).
		Scan(&hash, &issuedAt, &ttl)
	if err != nil {
		return domain.SessionRecord{}, mapNotFound(err)
	}

	if !hash.Valid {
		return domain.SessionRecord{}, store.ErrNotFound
	}

	return domain.SessionRecord{
		PrincipalID: principalID,
		RefreshHash: hash.String,
		IssuedAt:    time.Unix(issuedAt.Int64, 0).UTC(),
		TTLSeconds:  ttl.Int64,
	}, nil
}

func (r *sessionsRepo) SwapSession(ctx context.Context, previousHash string, rec domain.SessionRecord) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET refresh_hash = ?, refresh_issued_at = ?, refresh_ttl_seconds = ?, updated_at = ?
		 WHERE id = ? AND refresh_hash = ?`,
		rec.RefreshHash, rec.IssuedAt.UTC().Unix(), rec.TTLSeconds,
		time.Now().UTC().Unix(), rec.PrincipalID, previousHash)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrConflict
	}
	return nil
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, principalID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET refresh_hash = NULL, refresh_issued_at = NULL, refresh_ttl_seconds = NULL, updated_at = ?
		 WHERE id = ?`,
		time.Now().UTC().Unix(), principalID)
	return err
}

func (r *sessionsRepo) SessionExists(ctx context.Context, principalID string) (bool, error) {
	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = ? AND refresh_hash IS NOT NULL)`,
		principalID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}
