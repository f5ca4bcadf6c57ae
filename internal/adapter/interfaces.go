// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the Go client of the go-blog REST API.
//
// [BlogAPI] mirrors the server routes one method per route. The bearer token
// received from SignUp or SignIn is kept by the client and attached to every
// later request. Non-2xx responses are mapped by mapHTTPError to the sentinel
// errors of errors.go, so callers can use [errors.Is] (e.g. [ErrForbidden]
// for 403, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// BlogAPI is a typed client of the blogging API.
type BlogAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before sign-in.
	Token() string

	// SignUp registers a user and stores the returned token.
	SignUp(ctx context.Context, req models.SignUpRequest) (string, error)

	// SignIn exchanges credentials for a token and stores it.
	SignIn(ctx context.Context, req models.SignInRequest) (string, error)

	Profile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.User, error)
	AvatarUploadURL(ctx context.Context, contentType string) (models.UploadURL, error)

	ListBlogs(ctx context.Context, page, pageSize int) (models.BlogPage, error)
	GetBlog(ctx context.Context, blogID int64) (models.Blog, error)
	CreateBlog(ctx context.Context, req models.BlogCreateRequest) (int64, error)
	UpdateBlog(ctx context.Context, blogID int64, req models.BlogUpdateRequest) (int64, error)
	DeleteBlog(ctx context.Context, blogID int64) error
	BlogImageUploadURL(ctx context.Context, blogID int64, contentType string) (models.UploadURL, error)

	ListComments(ctx context.Context, blogID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, blogID int64, content string) (models.Comment, error)
	DeleteComment(ctx context.Context, blogID, commentID int64) error

	// React sets the caller's LIKE or DISLIKE on a blog.
	React(ctx context.Context, blogID int64, reaction models.ReactionType) (models.ReactionResult, error)

	// ReactionSummary returns the counts of a blog and, when a token is
	// stored, the caller's own reaction.
	ReactionSummary(ctx context.Context, blogID int64) (models.ReactionSummary, error)

	ServerVersion(ctx context.Context) (string, error)
}
