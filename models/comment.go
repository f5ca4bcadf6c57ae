package models

import "time"

// Comment is a reply to a blog. Any authenticated user may add one; only its
// author may delete it.
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	BlogID    int64     `json:"blogId"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	User      *Author   `json:"user,omitempty"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}
