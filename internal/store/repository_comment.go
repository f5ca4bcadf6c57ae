package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

type commentRepository struct {
	*DB
	logger *logger.Logger
}

// NewCommentRepository constructs a [CommentRepository] backed by db.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateComment inserts a comment and returns it with its author's name and
// avatar. A missing blog (foreign_key_violation) yields [ErrBlogNotFound].
func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	row := r.QueryRowContext(ctx, createComment, comment.Content, comment.BlogID, comment.UserID)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*commentRepository.CreateComment").
			Int64("blog_id", comment.BlogID).
			Int64("user_id", comment.UserID).
			Msg("error inserting comment")

		if r.classify(err) == ForeignKeyViolation {
			return models.Comment{}, ErrBlogNotFound
		}
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	created, err := scanComment(row)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Msg("error scanning comment")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// ListComments returns the comments of a blog, newest first. A blog without
// comments (or a missing blog) yields an empty slice.
func (r *commentRepository) ListComments(ctx context.Context, blogID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCommentsQuery(r.builder, blogID)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListComments").Int64("blog_id", blogID).Msg("error selecting comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		comment, scanErr := scanComment(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*commentRepository.ListComments").Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		comments = append(comments, comment)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return comments, nil
}

// DeleteComment removes a comment of blogID. A comment that does not exist
// or belongs to another blog yields [ErrCommentNotFound].
func (r *commentRepository) DeleteComment(ctx context.Context, blogID, commentID int64) error {
	result, err := r.ExecContext(ctx, deleteComment, commentID, blogID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*commentRepository.DeleteComment").
			Int64("blog_id", blogID).
			Int64("comment_id", commentID).
			Msg("error deleting comment")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCommentNotFound
	}

	return nil
}

func scanComment(s scanner) (models.Comment, error) {
	var comment models.Comment
	author := new(models.Author)

	if err := s.Scan(
		&comment.ID,
		&comment.Content,
		&comment.BlogID,
		&comment.UserID,
		&comment.CreatedAt,
		&author.Name,
		&author.Avatar,
	); err != nil {
		return models.Comment{}, err
	}

	comment.User = author
	return comment, nil
}
