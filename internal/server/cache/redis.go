// Package cache implements a redis-backed read cache for the public post
// listing. Entries are keyed by filter and a generation counter; any post
// mutation bumps the generation, orphaning every cached listing at once.
// Redis failures degrade to cache misses, never to request failures.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"moodblog/internal/server/models"
	"moodblog/internal/server/repositories/posts"

	"github.com/go-redis/redis/v8"
)

const (
	generationKey = "posts:generation"
	listTTL       = 30 * time.Second
)

// PostListCache satisfies services.PostCache over a redis client.
type PostListCache struct {
	client *redis.Client
}

// NewPostListCache wraps an existing redis client.
func NewPostListCache(client *redis.Client) *PostListCache {
	return &PostListCache{client: client}
}

// Ping verifies connectivity; called once at startup.
func (c *PostListCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *PostListCache) GetList(ctx context.Context, filter posts.Filter) ([]*models.Post, bool) {
	key, err := c.listKey(ctx, filter)
	if err != nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var items []*models.Post
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *PostListCache) SetList(ctx context.Context, filter posts.Filter, items []*models.Post) {
	key, err := c.listKey(ctx, filter)
	if err != nil {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		return
	}

	c.client.Set(ctx, key, data, listTTL)
}

// Invalidate bumps the generation counter so existing list keys are never
// read again; stale entries expire via TTL.
func (c *PostListCache) Invalidate(ctx context.Context) {
	c.client.Incr(ctx, generationKey)
}

func (c *PostListCache) listKey(ctx context.Context, filter posts.Filter) (string, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return buildListKey(gen, filter), nil
}

func buildListKey(generation int64, filter posts.Filter) string {
	return fmt.Sprintf("posts:list:%d:mood=%s:author=%d", generation, filter.Mood, filter.AuthorID)
}
