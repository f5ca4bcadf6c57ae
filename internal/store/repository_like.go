package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

type likeRepository struct {
	*DB
	logger *logger.Logger
}

// NewLikeRepository constructs a [LikeRepository] backed by db.
func NewLikeRepository(db *DB, logger *logger.Logger) LikeRepository {
	logger.Debug().Msg("creating like repository")
	return &likeRepository{
		DB:     db,
		logger: logger,
	}
}

// UpsertLike records the reaction of like.UserID on like.BlogID with a single
// INSERT ... ON CONFLICT statement, overwriting any previous reaction type.
// A missing blog (foreign_key_violation) yields [ErrBlogNotFound].
func (r *likeRepository) UpsertLike(ctx context.Context, like models.Like) (models.Like, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertLikeQuery(r.builder, like)
	if err != nil {
		return models.Like{}, err
	}

	row := r.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).
			Str("func", "*likeRepository.UpsertLike").
			Int64("blog_id", like.BlogID).
			Int64("user_id", like.UserID).
			Msg("error upserting like")

		if r.classify(err) == ForeignKeyViolation {
			return models.Like{}, ErrBlogNotFound
		}
		return models.Like{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var stored models.Like
	if err = row.Scan(&stored.ID, &stored.BlogID, &stored.UserID, &stored.Type, &stored.CreatedAt, &stored.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*likeRepository.UpsertLike").Msg("error scanning like")
		return models.Like{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stored, nil
}

// CountReactions returns the LIKE and DISLIKE totals of a blog.
func (r *likeRepository) CountReactions(ctx context.Context, blogID int64) (models.ReactionCounts, error) {
	var counts models.ReactionCounts
	if err := r.QueryRowContext(ctx, countReactions, blogID).Scan(&counts.LikesCount, &counts.DislikesCount); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*likeRepository.CountReactions").
			Int64("blog_id", blogID).
			Msg("error counting reactions")
		return models.ReactionCounts{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return counts, nil
}

// FindUserReaction returns the reaction of userID on blogID, or nil when the
// user has not reacted.
func (r *likeRepository) FindUserReaction(ctx context.Context, blogID, userID int64) (*models.ReactionType, error) {
	var reaction models.ReactionType
	err := r.QueryRowContext(ctx, findUserReaction, blogID, userID).Scan(&reaction)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*likeRepository.FindUserReaction").
			Int64("blog_id", blogID).
			Int64("user_id", userID).
			Msg("error selecting user reaction")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return &reaction, nil
}
