package store

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and profiles.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error)
}

// BlogRepository persists blogs and serves the feed.
type BlogRepository interface {
	CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error)
	UpdateBlog(ctx context.Context, update models.BlogUpdate) (models.Blog, error)
	DeleteBlog(ctx context.Context, blogID int64) error
	GetBlog(ctx context.Context, blogID int64) (models.Blog, error)
	ListBlogs(ctx context.Context, page models.Page) ([]models.Blog, error)
	CountBlogs(ctx context.Context) (int64, error)
}

// CommentRepository persists comments of blogs.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	ListComments(ctx context.Context, blogID int64) ([]models.Comment, error)
	DeleteComment(ctx context.Context, blogID, commentID int64) error
}

// LikeRepository persists reactions. UpsertLike must be a single atomic
// statement so concurrent reactions of one user never produce two rows.
type LikeRepository interface {
	UpsertLike(ctx context.Context, like models.Like) (models.Like, error)
	CountReactions(ctx context.Context, blogID int64) (models.ReactionCounts, error)
	FindUserReaction(ctx context.Context, blogID, userID int64) (*models.ReactionType, error)
}

// OwnershipRepository resolves the owner of a resource in one round trip.
type OwnershipRepository interface {
	ResourceOwner(ctx context.Context, kind models.ResourceKind, resourceID int64) (int64, error)
}

// FeedKey addresses one feed page within the cache generation that was
// current when the page was looked up. An empty key addresses nothing.
type FeedKey string

// FeedCache keeps rendered feed pages for a bounded time. Any write to blogs
// or to an author's profile calls Invalidate so that no page outlives a
// change.
//
// GetPage returns the key of the page together with [ErrCacheMiss]; the
// page read from the database is stored with SetPage under that key, so a
// page read before an Invalidate is never filed under the newer generation.
type FeedCache interface {
	GetPage(ctx context.Context, page models.Page) (models.BlogPage, FeedKey, error)
	SetPage(ctx context.Context, key FeedKey, blogPage models.BlogPage) error
	Invalidate(ctx context.Context) error
}

// ObjectStorage issues presigned upload URLs for user images.
type ObjectStorage interface {
	PresignPut(ctx context.Context, key, contentType string) (models.UploadURL, error)
}
