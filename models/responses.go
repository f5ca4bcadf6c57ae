package models

// TokenResponse carries an issued access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// IDResponse carries the id of a created or updated resource.
type IDResponse struct {
	ID int64 `json:"id"`
}

// BlogResponse wraps a single blog.
type BlogResponse struct {
	Blog Blog `json:"blog"`
}

// CommentResponse wraps a single comment.
type CommentResponse struct {
	Comment Comment `json:"comment"`
}

// CommentsResponse wraps the comments of a blog, newest first.
type CommentsResponse struct {
	Comments []Comment `json:"comments"`
}

// ErrorResponse is the body of every error response. Errors is set only
// for validation failures and maps a field name to the failed rule.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
