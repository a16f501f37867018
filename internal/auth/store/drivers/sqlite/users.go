package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/lanternchat/lantern/internal/auth/domain"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, name, phone_number, password_hash, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByPhoneNumber(ctx context.Context, phoneNumber string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE phone_number = ?`, phoneNumber)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC().Unix()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, phone_number, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.PhoneNumber, u.PasswordHash, now, now)
	return mapUniqueViolation(err)
}

func scanUser(row *sql.Row) (domain.User, error) {
	var u userRow
	err := row.Scan(&u.ID, &u.Name, &u.PhoneNumber, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(u), nil
}
