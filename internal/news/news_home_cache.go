package news

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// HomeCache drops the cached home feed. The asset cleanup consumer uses it
// without building the whole service.
type HomeCache struct {
	rdb *redis.Client
}

func NewHomeCache(rdb *redis.Client) *HomeCache {
	return &HomeCache{rdb: rdb}
}

func (c *HomeCache) InvalidateHome(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, HomeCacheKey).Err()
}
