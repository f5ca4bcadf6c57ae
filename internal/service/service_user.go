package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// userService owns profiles. Feed pages embed the author's name and avatar,
// so a profile change invalidates the feed cache.
type userService struct {
	userRepository store.UserRepository
	feedCache      store.FeedCache
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, feedCache store.FeedCache, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		feedCache:      feedCache,
		logger:         logger,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

// UpdateProfile replaces name, bio and avatar of update.UserID.
func (s *userService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	if update.UserID <= 0 {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.userRepository.UpdateProfile(ctx, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.UpdateProfile").Int64("id", update.UserID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	if err = s.feedCache.Invalidate(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*userService.UpdateProfile").Msg("feed cache invalidation failed")
	}

	return user, nil
}
