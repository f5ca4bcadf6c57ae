package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

type reactionService struct {
	likeRepository store.LikeRepository
	logger         *logger.Logger
}

func NewReactionService(likeRepository store.LikeRepository, logger *logger.Logger) ReactionService {
	return &reactionService{
		likeRepository: likeRepository,
		logger:         logger,
	}
}

// React stores the reaction (replacing a previous one of the same user) and
// returns it with the updated counts.
func (s *reactionService) React(ctx context.Context, like models.Like) (models.ReactionResult, error) {
	if like.UserID <= 0 || like.BlogID <= 0 || !like.Type.Valid() {
		return models.ReactionResult{}, ErrInvalidDataProvided
	}

	stored, err := s.likeRepository.UpsertLike(ctx, like)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*reactionService.React").
			Int64("blog_id", like.BlogID).
			Int64("user_id", like.UserID).
			Msg("reaction upsert failed")
		return models.ReactionResult{}, fmt.Errorf("reaction upsert failed: %w", err)
	}

	counts, err := s.likeRepository.CountReactions(ctx, like.BlogID)
	if err != nil {
		return models.ReactionResult{}, fmt.Errorf("reaction counting failed: %w", err)
	}

	return models.ReactionResult{Like: stored, ReactionCounts: counts}, nil
}

func (s *reactionService) Summary(ctx context.Context, blogID, subjectID int64) (models.ReactionSummary, error) {
	counts, err := s.likeRepository.CountReactions(ctx, blogID)
	if err != nil {
		return models.ReactionSummary{}, fmt.Errorf("reaction counting failed: %w", err)
	}

	summary := models.ReactionSummary{ReactionCounts: counts}
	if subjectID == 0 {
		return summary, nil
	}

	summary.UserLike, err = s.likeRepository.FindUserReaction(ctx, blogID, subjectID)
	if err != nil {
		return models.ReactionSummary{}, fmt.Errorf("user reaction lookup failed: %w", err)
	}

	return summary, nil
}
