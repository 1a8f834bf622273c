// README: Admin store backed by PostgreSQL.
package admin

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jatriwheels/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*Admin, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, email, password_hash, role, last_login, login_attempts, created_at
		FROM admins
		WHERE email = $1`, email)

	var a Admin
	var lastLogin sql.NullTime
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &lastLogin, &a.LoginAttempts, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		a.LastLogin = &lastLogin.Time
	}
	return &a, nil
}

// RecordLogin stamps a successful login and clears the attempt counter.
func (s *Store) RecordLogin(ctx context.Context, id types.ID) error {
	_, err := s.db.Exec(ctx, `
		UPDATE admins SET last_login = NOW(), login_attempts = 0 WHERE id = $1`,
		string(id))
	return err
}

func (s *Store) IncrementLoginAttempts(ctx context.Context, id types.ID) error {
	_, err := s.db.Exec(ctx, `
		UPDATE admins SET login_attempts = login_attempts + 1 WHERE id = $1`,
		string(id))
	return err
}
