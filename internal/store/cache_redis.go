package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/redis/go-redis/v9"
)

const feedGenerationKey = "feed:generation"

// redisClient is the subset of *redis.Client used by the feed cache.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// redisFeedCache stores serialized feed pages under a generation-scoped key.
// Invalidate bumps the generation, so stale pages stop being addressed at
// once and expire on their own after ttl.
type redisFeedCache struct {
	client redisClient
	closer func() error
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisFeedCache connects to cfg.RedisURL. With an empty URL it returns a
// cache that never hits.
func NewRedisFeedCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (FeedCache, func() error, error) {
	if cfg.RedisURL == "" {
		log.Info().Str("func", "NewRedisFeedCache").Msg("feed cache disabled")
		return NewNoopFeedCache(), func() error { return nil }, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisFeedCache").Dur("ttl", cfg.FeedTTL).Msg("connected to redis feed cache")

	return newRedisFeedCache(client, cfg.FeedTTL, log), client.Close, nil
}

func newRedisFeedCache(client redisClient, ttl time.Duration, log *logger.Logger) *redisFeedCache {
	return &redisFeedCache{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

// GetPage returns a cached page, or the key to fill together with
// [ErrCacheMiss].
func (c *redisFeedCache) GetPage(ctx context.Context, page models.Page) (models.BlogPage, FeedKey, error) {
	key, err := c.pageKey(ctx, page)
	if err != nil {
		return models.BlogPage{}, "", err
	}

	data, err := c.client.Get(ctx, string(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.BlogPage{}, key, ErrCacheMiss
	}
	if err != nil {
		return models.BlogPage{}, "", fmt.Errorf("error reading feed page from redis: %w", err)
	}

	var blogPage models.BlogPage
	if err = json.Unmarshal(data, &blogPage); err != nil {
		return models.BlogPage{}, key, fmt.Errorf("error decoding cached feed page: %w", err)
	}

	return blogPage, key, nil
}

// SetPage stores a page under key for the cache ttl. The generation in key
// is the one GetPage saw; after an Invalidate the page is unreachable.
func (c *redisFeedCache) SetPage(ctx context.Context, key FeedKey, blogPage models.BlogPage) error {
	if key == "" {
		return nil
	}

	data, err := json.Marshal(blogPage)
	if err != nil {
		return fmt.Errorf("error encoding feed page: %w", err)
	}

	if err = c.client.Set(ctx, string(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("error writing feed page to redis: %w", err)
	}

	return nil
}

// Invalidate makes every cached page unreachable.
func (c *redisFeedCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, feedGenerationKey).Err(); err != nil {
		return fmt.Errorf("error bumping feed generation: %w", err)
	}

	return nil
}

func (c *redisFeedCache) pageKey(ctx context.Context, page models.Page) (FeedKey, error) {
	generation, err := c.client.Get(ctx, feedGenerationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("error reading feed generation: %w", err)
	}

	return FeedKey(fmt.Sprintf("feed:%d:%d:%d", generation, page.Number, page.Size)), nil
}

type noopFeedCache struct{}

// NewNoopFeedCache returns a [FeedCache] that stores nothing.
func NewNoopFeedCache() FeedCache {
	return noopFeedCache{}
}

func (noopFeedCache) GetPage(context.Context, models.Page) (models.BlogPage, FeedKey, error) {
	return models.BlogPage{}, "", ErrCacheMiss
}

func (noopFeedCache) SetPage(context.Context, FeedKey, models.BlogPage) error {
	return nil
}

func (noopFeedCache) Invalidate(context.Context) error {
	return nil
}
