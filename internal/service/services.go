package service

import (
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/crypto"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
)

type Services struct {
	AuthService     AuthService
	OwnershipGuard  OwnershipGuard
	UserService     UserService
	BlogService     BlogService
	CommentService  CommentService
	ReactionService ReactionService
	UploadService   UploadService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, hasher, cfg.App, logger),
		OwnershipGuard:  NewOwnershipGuard(storages.OwnershipRepository, logger),
		UserService:     NewUserService(storages.UserRepository, storages.FeedCache, logger),
		BlogService:     NewBlogService(storages.BlogRepository, storages.FeedCache, logger),
		CommentService:  NewCommentService(storages.CommentRepository, logger),
		ReactionService: NewReactionService(storages.LikeRepository, logger),
		UploadService:   NewUploadService(storages.ObjectStorage, utils.NewUUIDGenerator(), logger),
		AppInfoService:  appInfoService,
	}, nil
}
