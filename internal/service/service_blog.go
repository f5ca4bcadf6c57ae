package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// blogService serves blogs from the repository and keeps the feed cache in
// step with every write.
type blogService struct {
	blogRepository store.BlogRepository
	feedCache      store.FeedCache
	logger         *logger.Logger
}

func NewBlogService(blogRepository store.BlogRepository, feedCache store.FeedCache, logger *logger.Logger) BlogService {
	return &blogService{
		blogRepository: blogRepository,
		feedCache:      feedCache,
		logger:         logger,
	}
}

func (s *blogService) Create(ctx context.Context, blog models.Blog) (models.Blog, error) {
	if blog.AuthorID <= 0 || blog.Title == "" || blog.Content == "" {
		return models.Blog{}, ErrInvalidDataProvided
	}

	created, err := s.blogRepository.CreateBlog(ctx, blog)
	if err != nil {
		return models.Blog{}, fmt.Errorf("blog creation failed: %w", err)
	}
	s.invalidateFeed(ctx)

	return created, nil
}

func (s *blogService) Update(ctx context.Context, update models.BlogUpdate) (models.Blog, error) {
	updated, err := s.blogRepository.UpdateBlog(ctx, update)
	if err != nil {
		return models.Blog{}, fmt.Errorf("blog update failed: %w", err)
	}
	s.invalidateFeed(ctx)

	return updated, nil
}

func (s *blogService) Delete(ctx context.Context, blogID int64) error {
	if err := s.blogRepository.DeleteBlog(ctx, blogID); err != nil {
		return fmt.Errorf("blog deletion failed: %w", err)
	}
	s.invalidateFeed(ctx)

	return nil
}

func (s *blogService) Get(ctx context.Context, blogID int64) (models.Blog, error) {
	blog, err := s.blogRepository.GetBlog(ctx, blogID)
	if err != nil {
		return models.Blog{}, fmt.Errorf("blog lookup failed: %w", err)
	}

	return blog, nil
}

// List returns one feed page, from the cache when possible. Cache failures
// are logged and the page is read from the repository.
func (s *blogService) List(ctx context.Context, page models.Page) (models.BlogPage, error) {
	log := logger.FromContext(ctx)

	cached, key, err := s.feedCache.GetPage(ctx, page)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, store.ErrCacheMiss) {
		log.Warn().Err(err).Str("func", "*blogService.List").Msg("feed cache read failed")
	}

	blogs, err := s.blogRepository.ListBlogs(ctx, page)
	if err != nil {
		return models.BlogPage{}, fmt.Errorf("feed listing failed: %w", err)
	}

	total, err := s.blogRepository.CountBlogs(ctx)
	if err != nil {
		return models.BlogPage{}, fmt.Errorf("feed counting failed: %w", err)
	}

	blogPage := models.BlogPage{
		Blogs:      blogs,
		Pagination: models.NewPagination(page, total),
	}

	if err = s.feedCache.SetPage(ctx, key, blogPage); err != nil {
		log.Warn().Err(err).Str("func", "*blogService.List").Msg("feed cache write failed")
	}

	return blogPage, nil
}

func (s *blogService) invalidateFeed(ctx context.Context) {
	if err := s.feedCache.Invalidate(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*blogService.invalidateFeed").Msg("feed cache invalidation failed")
	}
}
