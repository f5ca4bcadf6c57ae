package models

import "time"

// ReactionType is the kind of reaction a user leaves on a blog.
type ReactionType string

const (
	ReactionLike    ReactionType = "LIKE"
	ReactionDislike ReactionType = "DISLIKE"
)

// Valid reports whether t is one of the known reaction types.
func (t ReactionType) Valid() bool {
	return t == ReactionLike || t == ReactionDislike
}

// Like is the single reaction of a user on a blog. A user has at most one
// reaction per blog; reacting again overwrites Type.
type Like struct {
	ID        int64        `json:"id"`
	BlogID    int64        `json:"blogId"`
	UserID    int64        `json:"userId"`
	Type      ReactionType `json:"type"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Like model.
func (l Like) TableName() string {
	return "likes"
}

// ReactionCounts holds the aggregate reaction numbers of one blog.
type ReactionCounts struct {
	LikesCount    int64 `json:"likesCount"`
	DislikesCount int64 `json:"dislikesCount"`
}

// ReactionResult is returned after a user reacts to a blog.
type ReactionResult struct {
	Like Like `json:"like"`
	ReactionCounts
}

// ReactionSummary is the public reaction view of a blog. UserLike is nil for
// anonymous callers and for users who have not reacted.
type ReactionSummary struct {
	ReactionCounts
	UserLike *ReactionType `json:"userLike"`
}
