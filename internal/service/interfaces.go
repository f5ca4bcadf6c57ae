package service

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// AuthService registers subjects, checks their credentials and issues and
// verifies access tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.SignUpRequest) (models.User, error)
	Login(ctx context.Context, req models.SignInRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// OwnershipGuard decides whether a subject may modify a resource.
type OwnershipGuard interface {
	// Authorize returns [ErrResourceNotFound] when the resource does not
	// exist and [ErrForbidden] when it is owned by someone else. Existence
	// is always checked first.
	Authorize(ctx context.Context, kind models.ResourceKind, resourceID, subjectID int64) error
}

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)
}

type BlogService interface {
	Create(ctx context.Context, blog models.Blog) (models.Blog, error)
	Update(ctx context.Context, update models.BlogUpdate) (models.Blog, error)
	Delete(ctx context.Context, blogID int64) error
	Get(ctx context.Context, blogID int64) (models.Blog, error)
	List(ctx context.Context, page models.Page) (models.BlogPage, error)
}

type CommentService interface {
	Create(ctx context.Context, comment models.Comment) (models.Comment, error)
	List(ctx context.Context, blogID int64) ([]models.Comment, error)
	Delete(ctx context.Context, blogID, commentID int64) error
}

// ReactionService records LIKE / DISLIKE reactions and summarises them.
type ReactionService interface {
	React(ctx context.Context, like models.Like) (models.ReactionResult, error)
	// Summary returns the counts of a blog. subjectID 0 means an anonymous
	// caller, for whom UserLike stays nil.
	Summary(ctx context.Context, blogID, subjectID int64) (models.ReactionSummary, error)
}

// UploadService hands out presigned URLs for direct image uploads.
type UploadService interface {
	AvatarUploadURL(ctx context.Context, userID int64, contentType string) (models.UploadURL, error)
	BlogImageUploadURL(ctx context.Context, blogID int64, contentType string) (models.UploadURL, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
