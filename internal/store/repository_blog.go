// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// blogRepository is the PostgreSQL-backed implementation of [BlogRepository].
type blogRepository struct {
	*DB
	logger *logger.Logger
}

// NewBlogRepository constructs a [BlogRepository] backed by db.
func NewBlogRepository(db *DB, logger *logger.Logger) BlogRepository {
	logger.Debug().Msg("creating blog repository")
	return &blogRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateBlog inserts a blog authored by blog.AuthorID.
func (r *blogRepository) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	log := logger.FromContext(ctx)

	row := r.QueryRowContext(ctx, createBlog, blog.Title, blog.Content, blog.AuthorID)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*blogRepository.CreateBlog").
			Int64("author_id", blog.AuthorID).
			Str("classification", r.classify(err).String()).
			Msg("error inserting blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	created, err := scanBlog(row)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.CreateBlog").Msg("error scanning blog")
		return models.Blog{}, err
	}

	return created, nil
}

// UpdateBlog replaces title, content and image of a blog. The author is
// never changed.
func (r *blogRepository) UpdateBlog(ctx context.Context, update models.BlogUpdate) (models.Blog, error) {
	log := logger.FromContext(ctx)

	row := r.QueryRowContext(ctx, updateBlog, update.ID, update.Title, update.Content, update.ImageURL)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*blogRepository.UpdateBlog").Int64("blog_id", update.ID).Msg("error updating blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	updated, err := scanBlog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Blog{}, ErrBlogNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.UpdateBlog").Msg("error scanning blog")
		return models.Blog{}, err
	}

	return updated, nil
}

// DeleteBlog removes a blog together with its comments and likes.
func (r *blogRepository) DeleteBlog(ctx context.Context, blogID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, deleteBlog, blogID)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.DeleteBlog").Int64("blog_id", blogID).Msg("error deleting blog")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBlogNotFound
	}

	return nil
}

// GetBlog returns a blog with its author or [ErrBlogNotFound].
func (r *blogRepository) GetBlog(ctx context.Context, blogID int64) (models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetBlogQuery(r.builder, blogID)
	if err != nil {
		return models.Blog{}, err
	}

	row := r.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*blogRepository.GetBlog").Int64("blog_id", blogID).Msg("error selecting blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	blog, err := scanBlogWithAuthor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Blog{}, ErrBlogNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.GetBlog").Msg("error scanning blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blog, nil
}

// ListBlogs returns one page of the feed, newest first.
func (r *blogRepository) ListBlogs(ctx context.Context, page models.Page) ([]models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBlogsQuery(r.builder, page)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*blogRepository.ListBlogs").
			Int("page", page.Number).
			Int("page_size", page.Size).
			Msg("error selecting blogs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	blogs := make([]models.Blog, 0, page.Size)
	for rows.Next() {
		blog, scanErr := scanBlogWithAuthor(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*blogRepository.ListBlogs").Msg("failed to scan blog row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		blogs = append(blogs, blog)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*blogRepository.ListBlogs").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return blogs, nil
}

// CountBlogs returns the total number of blogs.
func (r *blogRepository) CountBlogs(ctx context.Context) (int64, error) {
	var total int64
	if err := r.QueryRowContext(ctx, countBlogs).Scan(&total); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blogRepository.CountBlogs").Msg("error counting blogs")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

func scanBlog(row *sql.Row) (models.Blog, error) {
	var blog models.Blog
	err := row.Scan(&blog.ID, &blog.Title, &blog.Content, &blog.ImageURL, &blog.AuthorID, &blog.CreatedAt, &blog.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Blog{}, err
	}
	if err != nil {
		return models.Blog{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blog, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBlogWithAuthor(s scanner) (models.Blog, error) {
	var blog models.Blog
	author := new(models.Author)

	err := s.Scan(
		&blog.ID,
		&blog.Title,
		&blog.Content,
		&blog.ImageURL,
		&blog.AuthorID,
		&blog.CreatedAt,
		&blog.UpdatedAt,
		&author.Username,
		&author.Name,
		&author.Avatar,
	)
	if err != nil {
		return models.Blog{}, err
	}

	author.ID = blog.AuthorID
	blog.Author = author

	return blog, nil
}
