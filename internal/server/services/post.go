package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"moodblog/internal/common"
	"moodblog/internal/dbx"
	"moodblog/internal/server/models"
	"moodblog/internal/server/repositories/posts"
	"moodblog/internal/server/repositories/repomanager"
)

// PostCache is the optional read cache in front of the public post listing.
// Implementations must be safe for concurrent use.
type PostCache interface {
	// GetList returns a cached listing for filter, if one is present.
	GetList(ctx context.Context, filter posts.Filter) ([]*models.Post, bool)

	// SetList stores a listing for filter.
	SetList(ctx context.Context, filter posts.Filter, items []*models.Post)

	// Invalidate drops every cached listing after a post mutation.
	Invalidate(ctx context.Context)
}

// PostService owns post CRUD, payload validation, and the ownership check
// restricting mutation to a post's author.
type PostService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cache       PostCache
}

// NewPostService constructs a PostService. cache may be nil, which
// disables listing caching.
func NewPostService(db *sql.DB, m repomanager.RepositoryManager, cache PostCache) *PostService {
	return &PostService{
		db:          db,
		repomanager: m,
		cache:       cache,
	}
}

// CanModify reports whether identity may update or delete post: true iff
// the post's author is the identity. Anonymous callers may modify nothing.
func CanModify(identity *models.User, post *models.Post) bool {
	return identity != nil && post != nil && post.AuthorID == identity.ID
}

// List returns posts matching filter, newest first. Listing is public.
// A mood filter outside the enumeration yields a validation error rather
// than an empty result.
func (s *PostService) List(ctx context.Context, filter posts.Filter) ([]*models.Post, error) {
	if filter.Mood != "" && !filter.Mood.Valid() {
		return nil, common.NewValidationError("mood")
	}

	if s.cache != nil {
		if items, ok := s.cache.GetList(ctx, filter); ok {
			return items, nil
		}
	}

	repo := s.repomanager.Posts(s.db)
	items, err := repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing posts: %v", err)
	}

	if s.cache != nil {
		s.cache.SetList(ctx, filter, items)
	}

	return items, nil
}

// Get returns a single post by id. Reads are public.
func (s *PostService) Get(ctx context.Context, id int64) (*models.Post, error) {
	repo := s.repomanager.Posts(s.db)
	return repo.GetByID(ctx, id)
}

// Create validates in and stores a new post authored by author. Any
// authenticated user may create; mood defaults when omitted.
func (s *PostService) Create(ctx context.Context, author *models.User, in PostInput) (*models.Post, error) {
	if err := in.ValidateCreate(); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:    *in.Title,
		Content:  *in.Content,
		Mood:     in.MoodOrDefault(),
		AuthorID: author.ID,
	}

	repo := s.repomanager.Posts(s.db)
	post, err := repo.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("error creating post: %v", err)
	}

	s.invalidate(ctx)
	return post, nil
}

// Update applies the supplied fields of in to the post with the given id.
// The read-check-apply sequence runs in one transaction so a concurrent
// mutation cannot slip between the ownership check and the write.
func (s *PostService) Update(ctx context.Context, requester *models.User, id int64, in PostInput) (*models.Post, error) {
	var updated *models.Post

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Posts(tx)

		post, err := repoTx.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !CanModify(requester, post) {
			return common.ErrOwnershipDenied
		}
		if err := in.ValidateUpdate(); err != nil {
			return err
		}

		in.Apply(post)
		if err := repoTx.Update(ctx, post); err != nil {
			return err
		}

		updated = post
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

// Delete removes the post with the given id if requester is its author.
func (s *PostService) Delete(ctx context.Context, requester *models.User, id int64) error {
	repo := s.repomanager.Posts(s.db)

	post, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !CanModify(requester, post) {
		return common.ErrOwnershipDenied
	}

	if err := repo.Delete(ctx, id); err != nil {
		// the post may have vanished between the read and the delete
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *PostService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
