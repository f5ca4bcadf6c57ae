// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// Blog is a post authored by a single user. AuthorID never changes after
// creation.
type Blog struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	AuthorID  int64     `json:"authorId"`
	Author    *Author   `json:"author,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Blog model.
func (b Blog) TableName() string {
	return "blogs"
}

// BlogUpdate carries the replaceable content of an existing blog.
type BlogUpdate struct {
	ID       int64
	Title    string
	Content  string
	ImageURL string
}

// Page selects one window of the feed. Page numbering starts at 1.
type Page struct {
	Number int
	Size   int
}

// Offset returns the number of rows preceding the page. It never goes
// negative: pages below 1 start at 0 and an overflowing product saturates.
func (p Page) Offset() int {
	if p.Number <= 1 || p.Size <= 0 {
		return 0
	}
	if p.Number-1 > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return (p.Number - 1) * p.Size
}

// Pagination describes the position of a page within the whole feed.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalBlogs  int64 `json:"totalBlogs"`
	TotalPages  int64 `json:"totalPages"`
}

// NewPagination computes the total number of pages for total rows.
func NewPagination(page Page, total int64) Pagination {
	pages := int64(0)
	if page.Size > 0 {
		pages = (total + int64(page.Size) - 1) / int64(page.Size)
	}

	return Pagination{
		CurrentPage: page.Number,
		PageSize:    page.Size,
		TotalBlogs:  total,
		TotalPages:  pages,
	}
}

// BlogPage is one page of the feed, newest first.
type BlogPage struct {
	Blogs      []Blog     `json:"blogs"`
	Pagination Pagination `json:"pagination"`
}
