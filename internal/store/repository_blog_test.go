package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

var (
	blogRowColumns       = []string{"id", "title", "content", "image_url", "author_id", "created_at", "updated_at"}
	blogAuthorRowColumns = append(append([]string{}, blogRowColumns...), "username", "name", "avatar")
)

func newTestBlogRepo(t *testing.T) (BlogRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewBlogRepository(db, logger.Nop()), mock
}

func TestCreateBlog_Success(t *testing.T) {
	repo, mock := newTestBlogRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO blogs").
		WithArgs("Title", "Body", int64(5)).
		WillReturnRows(sqlmock.NewRows(blogRowColumns).AddRow(10, "Title", "Body", "", 5, now, now))

	blog, err := repo.CreateBlog(context.Background(), models.Blog{Title: "Title", Content: "Body", AuthorID: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blog.ID != 10 || blog.AuthorID != 5 {
		t.Errorf("unexpected blog: %+v", blog)
	}
}

func TestCreateBlog_DBError(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectQuery("INSERT INTO blogs").
		WillReturnError(errors.New("boom"))

	_, err := repo.CreateBlog(context.Background(), models.Blog{Title: "t", Content: "c", AuthorID: 1})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestUpdateBlog_NotFound(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectQuery("UPDATE blogs").
		WithArgs(int64(9), "t", "c", "").
		WillReturnRows(sqlmock.NewRows(blogRowColumns))

	_, err := repo.UpdateBlog(context.Background(), models.BlogUpdate{ID: 9, Title: "t", Content: "c"})
	if !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected ErrBlogNotFound, got %v", err)
	}
}

func TestUpdateBlog_KeepsAuthor(t *testing.T) {
	repo, mock := newTestBlogRepo(t)
	now := time.Now()

	mock.ExpectQuery("UPDATE blogs").
		WithArgs(int64(9), "new", "body", "https://cdn/x.png").
		WillReturnRows(sqlmock.NewRows(blogRowColumns).AddRow(9, "new", "body", "https://cdn/x.png", 3, now, now))

	blog, err := repo.UpdateBlog(context.Background(), models.BlogUpdate{ID: 9, Title: "new", Content: "body", ImageURL: "https://cdn/x.png"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blog.AuthorID != 3 {
		t.Errorf("expected author 3, got %d", blog.AuthorID)
	}
}

func TestDeleteBlog(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: ErrBlogNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestBlogRepo(t)

			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM blogs WHERE id = $1")).
				WithArgs(int64(4)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.DeleteBlog(context.Background(), 4)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGetBlog_WithAuthor(t *testing.T) {
	repo, mock := newTestBlogRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM blogs b JOIN users u ON u.id = b.author_id WHERE b.id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(blogAuthorRowColumns).
			AddRow(1, "t", "c", "", 2, now, now, "jane", "Jane", "a.png"))

	blog, err := repo.GetBlog(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blog.Author == nil || blog.Author.ID != 2 || blog.Author.Username != "jane" {
		t.Errorf("unexpected author: %+v", blog.Author)
	}
}

func TestGetBlog_NotFound(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectQuery("FROM blogs b").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(blogAuthorRowColumns))

	_, err := repo.GetBlog(context.Background(), 1)
	if !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected ErrBlogNotFound, got %v", err)
	}
}

func TestListBlogs_Page(t *testing.T) {
	repo, mock := newTestBlogRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY b.created_at DESC, b.id DESC LIMIT 10 OFFSET 10")).
		WillReturnRows(sqlmock.NewRows(blogAuthorRowColumns).
			AddRow(12, "b", "c", "", 1, now, now, "john", "John", "").
			AddRow(11, "a", "c", "", 2, now.Add(-time.Minute), now, "jane", "Jane", ""))

	blogs, err := repo.ListBlogs(context.Background(), models.Page{Number: 2, Size: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(blogs) != 2 || blogs[0].ID != 12 {
		t.Errorf("unexpected blogs: %+v", blogs)
	}
}

func TestListBlogs_RowError(t *testing.T) {
	repo, mock := newTestBlogRepo(t)
	now := time.Now()

	mock.ExpectQuery("FROM blogs b").
		WillReturnRows(sqlmock.NewRows(blogAuthorRowColumns).
			AddRow(1, "t", "c", "", 1, now, now, "john", "John", "").
			RowError(0, errors.New("row broke")))

	_, err := repo.ListBlogs(context.Background(), models.Page{Number: 1, Size: 10})
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}

func TestCountBlogs(t *testing.T) {
	repo, mock := newTestBlogRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM blogs")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	total, err := repo.CountBlogs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 42 {
		t.Errorf("expected 42, got %d", total)
	}
}
