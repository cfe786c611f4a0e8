package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"moodblog/internal/common"
	"moodblog/internal/dbx"
	"moodblog/internal/server/models"
)

// PostgresRepository implements post storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {

	query :=
		`INSERT INTO posts (title, content, mood, author_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Content, post.Mood, post.AuthorID).Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	query =
		`SELECT email, avatar FROM users
		 WHERE id = $1
		 `

	err = r.db.QueryRowContext(ctx, query, post.AuthorID).Scan(&post.AuthorEmail, &post.AuthorAvatar)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query :=
		`SELECT p.id, p.title, p.content, p.mood, p.author_id, u.email, u.avatar, p.created_at
		 FROM posts p
		 JOIN users u ON u.id = p.author_id
		 WHERE p.id = $1
		 `

	post := &models.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.Mood,
		&post.AuthorID, &post.AuthorEmail, &post.AuthorAvatar, &post.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) Update(ctx context.Context, post *models.Post) error {
	query :=
		`UPDATE posts SET title = $1, content = $2, mood = $3
		 WHERE id = $4
		 `

	res, err := r.db.ExecContext(ctx, query, post.Title, post.Content, post.Mood, post.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM posts
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) List(ctx context.Context, filter Filter) ([]*models.Post, error) {
	query :=
		`SELECT p.id, p.title, p.content, p.mood, p.author_id, u.email, u.avatar, p.created_at
		 FROM posts p
		 JOIN users u ON u.id = p.author_id
		 WHERE ($1 = '' OR p.mood = $1) AND ($2 = 0 OR p.author_id = $2)
		 ORDER BY p.created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, string(filter.Mood), filter.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to select posts: %w", err)
	}
	defer rows.Close()

	var result []*models.Post
	for rows.Next() {
		var item models.Post
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Content, &item.Mood,
			&item.AuthorID, &item.AuthorEmail, &item.AuthorAvatar, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
