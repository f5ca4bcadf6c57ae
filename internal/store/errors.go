package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when registering a username that is
	// already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBlogNotFound is returned when a blog id matches no row, including
	// inserts that reference a missing blog.
	ErrBlogNotFound = errors.New("blog was not found")

	// ErrCommentNotFound is returned when a comment id matches no row.
	ErrCommentNotFound = errors.New("comment was not found")

	// ErrResourceNotFound is returned by the ownership lookup when the
	// resource does not exist.
	ErrResourceNotFound = errors.New("resource was not found")

	// ErrUnknownResourceKind is returned by the ownership lookup for a kind it
	// has no table for.
	ErrUnknownResourceKind = errors.New("unknown resource kind")
)

// Low-level database operation errors, wrapped around the driver error.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// Cache and object storage errors.
var (
	// ErrCacheMiss is returned by a FeedCache when a page is not cached.
	ErrCacheMiss = errors.New("feed page is not cached")

	// ErrObjectStorageDisabled is returned when presigning is requested but
	// no bucket was configured.
	ErrObjectStorageDisabled = errors.New("object storage is not configured")

	// ErrPresigningURL is returned when the S3 client fails to sign a URL.
	ErrPresigningURL = errors.New("error presigning object url")
)
