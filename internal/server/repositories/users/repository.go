// Package users declares the repository contract for account persistence.
package users

import (
	"context"

	"moodblog/internal/server/models"
)

type Repository interface {
	// Create inserts a new user and returns it with the generated id.
	// A duplicate email yields common.ErrDuplicateEmail.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user registered under email, or
	// common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user with the given id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
