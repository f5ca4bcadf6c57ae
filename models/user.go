package models

import "time"

// User is a registered subject. The password hash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Bio          string    `json:"bio"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ProfileUpdate carries the mutable profile fields of a user.
type ProfileUpdate struct {
	UserID int64
	Name   string
	Bio    string
	Avatar string
}

// Author is the public projection of a user embedded into blogs and comments.
type Author struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
}
