// Package postgres implements the account repository on PostgreSQL.
package postgres

import (
	"context"
	"database/sql"

	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/auth"
	"github.com/HyperDarkmoon/notifmanager-sub000/internal/notifd/database"
)

type repository struct {
	db *sql.DB
}

// NewRepository creates a PostgreSQL account repository
func NewRepository(db *sql.DB) auth.Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *auth.User) error {
	const op = "AuthRepository.Create"

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, u.ID, u.Username, u.PasswordHash, u.CreatedAt)
	return database.MapError(err, op)
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	const op = "AuthRepository.GetByUsername"

	var u auth.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return nil, database.MapError(err, op)
	}
	return &u, nil
}
