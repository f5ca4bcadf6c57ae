package models

// Request bodies. The validate tags are evaluated by
// github.com/go-playground/validator/v10 before a handler runs.

// SignUpRequest registers a new user.
type SignUpRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Name     string `json:"name" validate:"max=100"`
}

// SignInRequest exchanges credentials for a token.
type SignInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// ProfileUpdateRequest replaces the mutable profile fields.
type ProfileUpdateRequest struct {
	Name   string `json:"name" validate:"max=100"`
	Bio    string `json:"bio" validate:"max=500"`
	Avatar string `json:"avatar" validate:"omitempty,url"`
}

// BlogCreateRequest creates a blog authored by the caller.
type BlogCreateRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// BlogUpdateRequest replaces the content of an owned blog.
type BlogUpdateRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Content  string `json:"content" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

// CommentCreateRequest adds a comment to a blog.
type CommentCreateRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

// ReactionRequest sets the caller's reaction on a blog.
type ReactionRequest struct {
	Type ReactionType `json:"type" validate:"required,oneof=LIKE DISLIKE"`
}

// UploadURLRequest asks for a presigned upload URL.
type UploadURLRequest struct {
	ContentType string `json:"contentType" validate:"required,oneof=image/png image/jpeg image/gif image/webp"`
}

// PageRequest holds the feed pagination query parameters.
type PageRequest struct {
	Page     int `json:"page" validate:"min=1,max=100000"`
	PageSize int `json:"pageSize" validate:"min=1,max=50"`
}
