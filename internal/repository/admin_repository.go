package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avioline/seat-reservation/internal/model"
)

// AdminRepo reads admin credentials from the `admins` table.  The table
// is seed data: rows are provisioned at startup and never written by
// request handlers.
type AdminRepo struct {
	db *sql.DB
}

// NewAdminRepo returns a new AdminRepo bound to the given database.
func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{db: db} }

// GetByUsername returns the admin with the given username, or
// ErrNotFound when no such account exists.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	const q = `SELECT username, password_hash FROM admins WHERE username = ?`
	var a model.Admin
	err := r.db.QueryRowContext(ctx, q, username).Scan(&a.Username, &a.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
