// Package utils provides helpers shared across the server: typed context
// keys, JSON response writing, the resty HTTP client wrapper, JWT
// generation and validation, and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// SubjectIDCtxKey is the key under which the authenticated subject id is
// stored in a request context.
var SubjectIDCtxKey = contextKey("subjectID")

// WithSubjectID returns a copy of ctx carrying subjectID.
func WithSubjectID(ctx context.Context, subjectID int64) context.Context {
	return context.WithValue(ctx, SubjectIDCtxKey, subjectID)
}

// GetSubjectIDFromContext retrieves the authenticated subject id.
//
// ok is false when the request is anonymous or the stored value has an
// unexpected type.
func GetSubjectIDFromContext(ctx context.Context) (int64, bool) {
	subjectID, ok := ctx.Value(SubjectIDCtxKey).(int64)
	return subjectID, ok
}
