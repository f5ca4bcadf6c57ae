package store

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis keeps values in memory and records the ttl of every Set.
type fakeRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	}
	f.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	n, _ := strconv.ParseInt(f.values[key], 10, 64)
	n++
	f.values[key] = strconv.FormatInt(n, 10)
	return redis.NewIntResult(n, nil)
}

func testBlogPage() models.BlogPage {
	page := models.Page{Number: 1, Size: 10}
	return models.BlogPage{
		Blogs:      []models.Blog{{ID: 1, Title: "hello", AuthorID: 2}},
		Pagination: models.NewPagination(page, 1),
	}
}

func TestRedisFeedCache_RoundTrip(t *testing.T) {
	client := newFakeRedis()
	cache := newRedisFeedCache(client, 30*time.Second, logger.Nop())
	ctx := context.Background()
	page := models.Page{Number: 1, Size: 10}

	_, key, err := cache.GetPage(ctx, page)
	require.ErrorIs(t, err, ErrCacheMiss)
	assert.Equal(t, FeedKey("feed:0:1:10"), key)

	require.NoError(t, cache.SetPage(ctx, key, testBlogPage()))
	assert.Equal(t, 30*time.Second, client.ttls["feed:0:1:10"])

	got, _, err := cache.GetPage(ctx, page)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Blogs[0].Title)
	assert.Equal(t, int64(1), got.Pagination.TotalPages)
}

func TestRedisFeedCache_InvalidateHidesPages(t *testing.T) {
	client := newFakeRedis()
	cache := newRedisFeedCache(client, time.Minute, logger.Nop())
	ctx := context.Background()
	page := models.Page{Number: 1, Size: 10}

	_, key, err := cache.GetPage(ctx, page)
	require.ErrorIs(t, err, ErrCacheMiss)
	require.NoError(t, cache.SetPage(ctx, key, testBlogPage()))
	require.NoError(t, cache.Invalidate(ctx))

	_, key, err = cache.GetPage(ctx, page)
	assert.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.SetPage(ctx, key, testBlogPage()))
	_, ok := client.values["feed:1:1:10"]
	assert.True(t, ok, "page must be stored under the new generation")
}

func TestRedisFeedCache_PageReadBeforeInvalidateIsNotServed(t *testing.T) {
	client := newFakeRedis()
	cache := newRedisFeedCache(client, time.Minute, logger.Nop())
	ctx := context.Background()
	page := models.Page{Number: 1, Size: 10}

	_, key, err := cache.GetPage(ctx, page)
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, cache.Invalidate(ctx))
	require.NoError(t, cache.SetPage(ctx, key, testBlogPage()))

	_, _, err = cache.GetPage(ctx, page)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisFeedCache_EmptyKeyIsNotStored(t *testing.T) {
	client := newFakeRedis()
	cache := newRedisFeedCache(client, time.Minute, logger.Nop())

	require.NoError(t, cache.SetPage(context.Background(), "", testBlogPage()))
	assert.Empty(t, client.values)
}

func TestRedisFeedCache_GetError(t *testing.T) {
	client := newFakeRedis()
	client.getErr = errors.New("connection refused")
	cache := newRedisFeedCache(client, time.Minute, logger.Nop())

	_, key, err := cache.GetPage(context.Background(), models.Page{Number: 1, Size: 10})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
	assert.Empty(t, key)
}

func TestNewRedisFeedCache_DisabledWithoutURL(t *testing.T) {
	cache, closeFn, err := NewRedisFeedCache(context.Background(), config.Cache{}, logger.Nop())
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	_, key, err := cache.GetPage(context.Background(), models.Page{Number: 1, Size: 10})
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, cache.SetPage(context.Background(), key, testBlogPage()))
	assert.NoError(t, cache.Invalidate(context.Background()))
}

func TestNewRedisFeedCache_BadURL(t *testing.T) {
	_, _, err := NewRedisFeedCache(context.Background(), config.Cache{RedisURL: "://bad"}, logger.Nop())
	assert.Error(t, err)
}
