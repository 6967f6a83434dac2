package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/domain"
	"github.com/hopehomes/orphanage-platform/backoffice-service/internal/core/ports"
)

const (
	hobbiesKey          = "catalog:hobbies"
	approvedChildrenKey = "listing:approved-children"

	// hobbies are effectively static reference data
	hobbiesTTL          = time.Hour
	approvedChildrenTTL = 5 * time.Minute
)

// RedisListingCache caches the hobby catalog and the public
// approved-children listing. Every Redis failure degrades to a miss;
// the caller always has the database behind it.
type RedisListingCache struct {
	client *redis.Client
}

var _ ports.ListingCache = (*RedisListingCache)(nil)

func NewRedisListingCache(client *redis.Client) *RedisListingCache {
	return &RedisListingCache{client: client}
}

func (c *RedisListingCache) GetHobbies(ctx context.Context) ([]domain.Hobby, bool) {
	var hobbies []domain.Hobby
	if !c.get(ctx, hobbiesKey, &hobbies) {
		return nil, false
	}
	return hobbies, true
}

func (c *RedisListingCache) SetHobbies(ctx context.Context, hobbies []domain.Hobby) {
	c.set(ctx, hobbiesKey, hobbies, hobbiesTTL)
}

func (c *RedisListingCache) GetApprovedChildren(ctx context.Context) ([]domain.PublicChild, bool) {
	var children []domain.PublicChild
	if !c.get(ctx, approvedChildrenKey, &children) {
		return nil, false
	}
	return children, true
}

func (c *RedisListingCache) SetApprovedChildren(ctx context.Context, children []domain.PublicChild) {
	c.set(ctx, approvedChildrenKey, children, approvedChildrenTTL)
}

func (c *RedisListingCache) InvalidateApprovedChildren(ctx context.Context) {
	if err := c.client.Del(ctx, approvedChildrenKey).Err(); err != nil {
		log.Printf("cache: failed to invalidate %s: %v", approvedChildrenKey, err)
	}
}

func (c *RedisListingCache) get(ctx context.Context, key string, dest any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache: read %s failed: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("cache: corrupt entry at %s: %v", key, err)
		return false
	}
	return true
}

func (c *RedisListingCache) set(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("cache: marshal for %s failed: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		log.Printf("cache: write %s failed: %v", key, err)
	}
}
