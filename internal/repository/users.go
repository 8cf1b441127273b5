package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

type User struct {
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name"`
	IsAdmin      bool       `json:"is_admin"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

type Users struct {
	db Querier
}

func NewUsers(db Querier) *Users {
	return &Users{db: db}
}

func (r *Users) Create(ctx context.Context, u *User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (email, password_hash, full_name, is_admin, is_active, created_at)
		 VALUES ($1, $2, $3, $4, TRUE, now())`,
		u.Email, u.PasswordHash, u.FullName, u.IsAdmin)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *Users) ByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.QueryRow(ctx,
		`SELECT email, password_hash, full_name, is_admin, is_active, created_at, last_login
		 FROM users WHERE email = $1`,
		email).Scan(&u.Email, &u.PasswordHash, &u.FullName, &u.IsAdmin, &u.IsActive, &u.CreatedAt, &u.LastLogin)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

func (r *Users) TouchLastLogin(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = now() WHERE email = $1`, email)
	if err != nil {
		return fmt.Errorf("update last_login: %w", err)
	}
	return nil
}

// Count returns total and active user counts for the admin dashboard.
func (r *Users) Count(ctx context.Context) (total, active int64, err error) {
	err = r.db.QueryRow(ctx,
		`SELECT count(*), count(*) FILTER (WHERE is_active) FROM users`).Scan(&total, &active)
	if err != nil {
		return 0, 0, fmt.Errorf("count users: %w", err)
	}
	return total, active, nil
}

// ListRecent returns the newest registrations, capped at limit.
func (r *Users) ListRecent(ctx context.Context, limit int) ([]User, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(ctx,
		`SELECT email, full_name, is_admin, is_active, created_at, last_login
		 FROM users ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var out []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.Email, &u.FullName, &u.IsAdmin, &u.IsActive, &u.CreatedAt, &u.LastLogin); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
