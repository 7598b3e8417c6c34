package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devfolio/project-tracker/internal/core/domain"
)

const listTTL = time.Minute

// ProjectCache caches each owner's project list in Redis.
// Key format: projects:<owner_id>. Any write for an owner deletes the
// owner's key, so a cached list is never older than the latest write.
type ProjectCache struct {
	client *redis.Client
}

// NewProjectCache creates a ProjectCache wrapping the given Redis client.
func NewProjectCache(client *redis.Client) *ProjectCache {
	return &ProjectCache{client: client}
}

// GetList returns the cached list and whether the key was present.
func (c *ProjectCache) GetList(ctx context.Context, ownerID string) ([]domain.Project, bool, error) {
	raw, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache get: %w", err)
	}

	var projects []domain.Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		return nil, false, fmt.Errorf("cache decode: %w", err)
	}
	return projects, true, nil
}

// SetList stores the owner's list (expires after listTTL).
func (c *ProjectCache) SetList(ctx context.Context, ownerID string, projects []domain.Project) error {
	raw, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(ownerID), raw, listTTL).Err()
}

// Invalidate drops the owner's cached list.
func (c *ProjectCache) Invalidate(ctx context.Context, ownerID string) error {
	return c.client.Del(ctx, c.key(ownerID)).Err()
}

func (c *ProjectCache) key(ownerID string) string {
	return "projects:" + ownerID
}
