package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/course-booking/internal/model"
)

// ErrAdminNotFound is returned when no admin matches the given email.
var ErrAdminNotFound = errors.New("admin not found")

// AdminRepo provides lookups and seeding for back-office accounts.
type AdminRepo struct {
	db *sql.DB
}

// NewAdminRepo constructs an AdminRepo with the provided DB handle.
func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{db: db} }

// GetByEmail fetches an admin account for login verification.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	const q = `SELECT id, email, password_hash FROM admins WHERE email = ?`
	var a model.Admin
	if err := r.db.QueryRowContext(ctx, q, email).Scan(&a.ID, &a.Email, &a.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Seed inserts the bootstrap admin account if the email is not present.
// Called once at startup with the env-configured credentials.
func (r *AdminRepo) Seed(ctx context.Context, a *model.Admin) error {
	const q = `INSERT IGNORE INTO admins (id, email, password_hash) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, a.ID, a.Email, a.PasswordHash)
	return err
}
