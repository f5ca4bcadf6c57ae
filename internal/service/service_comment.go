package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

type commentService struct {
	commentRepository store.CommentRepository
	logger            *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		logger:            logger,
	}
}

// Create adds a comment. Any authenticated subject may comment on any blog.
func (s *commentService) Create(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if comment.UserID <= 0 || comment.BlogID <= 0 || comment.Content == "" {
		return models.Comment{}, ErrInvalidDataProvided
	}

	created, err := s.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*commentService.Create").
			Int64("blog_id", comment.BlogID).
			Msg("comment creation failed")
		return models.Comment{}, fmt.Errorf("comment creation failed: %w", err)
	}

	return created, nil
}

func (s *commentService) List(ctx context.Context, blogID int64) ([]models.Comment, error) {
	comments, err := s.commentRepository.ListComments(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("comment listing failed: %w", err)
	}

	return comments, nil
}

// Delete removes a comment only when it belongs to blogID.
func (s *commentService) Delete(ctx context.Context, blogID, commentID int64) error {
	if err := s.commentRepository.DeleteComment(ctx, blogID, commentID); err != nil {
		return fmt.Errorf("comment deletion failed: %w", err)
	}

	return nil
}
