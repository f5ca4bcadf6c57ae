package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
)

// Storages aggregates every persistence component handed to the service
// layer.
type Storages struct {
	UserRepository      UserRepository
	BlogRepository      BlogRepository
	CommentRepository   CommentRepository
	LikeRepository      LikeRepository
	OwnershipRepository OwnershipRepository
	FeedCache           FeedCache
	ObjectStorage       ObjectStorage

	closers []func() error
}

// NewStorages connects PostgreSQL, applies migrations and sets up the
// optional Redis cache and S3 presigner.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	cache, closeCache, err := NewRedisFeedCache(ctx, cfg.Cache, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	objects, err := NewS3ObjectStorage(ctx, cfg.Objects, log)
	if err != nil {
		_ = closeCache()
		_ = db.Close()
		return nil, err
	}

	storages := NewStoragesFromDB(db, log)
	storages.FeedCache = cache
	storages.ObjectStorage = objects
	storages.closers = append(storages.closers, closeCache)

	return storages, nil
}

// NewStoragesFromDB wires the SQL repositories over an existing connection
// with caching and object storage disabled.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		BlogRepository:      NewBlogRepository(db, log),
		CommentRepository:   NewCommentRepository(db, log),
		LikeRepository:      NewLikeRepository(db, log),
		OwnershipRepository: NewOwnershipRepository(db, log),
		FeedCache:           NewNoopFeedCache(),
		ObjectStorage:       disabledObjectStorage{},
		closers:             []func() error{db.Close},
	}
}

// Close releases the cache client and the database pool.
func (s *Storages) Close() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
