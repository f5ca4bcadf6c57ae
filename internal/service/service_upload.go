package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

// keyGenerator produces the unique last segment of an object key.
type keyGenerator interface {
	Generate() string
}

type uploadService struct {
	objectStorage store.ObjectStorage
	keys          keyGenerator
	logger        *logger.Logger
}

func NewUploadService(objectStorage store.ObjectStorage, keys keyGenerator, logger *logger.Logger) UploadService {
	return &uploadService{
		objectStorage: objectStorage,
		keys:          keys,
		logger:        logger,
	}
}

// AvatarUploadURL presigns avatars/{userID}/{uuid}.
func (s *uploadService) AvatarUploadURL(ctx context.Context, userID int64, contentType string) (models.UploadURL, error) {
	return s.presign(ctx, models.UploadAvatar, userID, contentType)
}

// BlogImageUploadURL presigns blogs/{blogID}/{uuid}.
func (s *uploadService) BlogImageUploadURL(ctx context.Context, blogID int64, contentType string) (models.UploadURL, error) {
	return s.presign(ctx, models.UploadBlogImage, blogID, contentType)
}

func (s *uploadService) presign(ctx context.Context, target models.UploadTarget, ownerID int64, contentType string) (models.UploadURL, error) {
	if ownerID <= 0 || contentType == "" {
		return models.UploadURL{}, ErrInvalidDataProvided
	}

	key := fmt.Sprintf("%s/%d/%s", target, ownerID, s.keys.Generate())

	upload, err := s.objectStorage.PresignPut(ctx, key, contentType)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*uploadService.presign").Str("key", key).Msg("presigning failed")
		return models.UploadURL{}, fmt.Errorf("presigning failed: %w", err)
	}

	return upload, nil
}
