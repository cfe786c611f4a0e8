// Package posts declares the repository contract for post persistence.
package posts

import (
	"context"

	"moodblog/internal/server/models"
)

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	Mood     models.Mood
	AuthorID int64
}

type Repository interface {
	// Create inserts a new post and returns it with the generated id,
	// creation timestamp, and denormalized author fields.
	Create(ctx context.Context, post *models.Post) (*models.Post, error)

	// GetByID returns a single post, or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (*models.Post, error)

	// Update persists title, content, and mood of an existing post.
	// Author and creation timestamp are immutable.
	Update(ctx context.Context, post *models.Post) error

	// Delete removes a post by id, or returns common.ErrorNotFound.
	Delete(ctx context.Context, id int64) error

	// List returns posts matching filter, newest first.
	List(ctx context.Context, filter Filter) ([]*models.Post, error)
}
