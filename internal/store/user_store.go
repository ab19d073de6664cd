package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nhle/project-tracker/internal/model"
)

const userColumns = "id, name, email, password, created_at"

// CreateUser inserts a new user and returns its id. A duplicate email fails
// with model.ErrConstraintViolation and leaves the existing row untouched.
func (s *SQLiteStore) CreateUser(
	ctx context.Context,
	name, email, passwordHash string,
) (int64, error) {
	if strings.TrimSpace(email) == "" {
		return 0, fmt.Errorf("user email must not be empty")
	}

	result, err := s.db.ExecContext(ctx,
		"INSERT INTO users (name, email, password, created_at) VALUES (?, ?, ?, ?)",
		name, email, passwordHash, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("creating user: %w", classifyError(err))
	}
	return result.LastInsertId()
}

// GetUserByEmail retrieves a user by email.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user,
		"SELECT "+userColumns+" FROM users WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by id.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := s.db.GetContext(ctx, &user,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}
	return &user, nil
}
