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
	"github.com/jackc/pgerrcode"
)

var likeRowColumns = []string{"id", "blog_id", "user_id", "type", "created_at", "updated_at"}

func newTestLikeRepo(t *testing.T) (LikeRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewLikeRepository(db, logger.Nop()), mock
}

// ─────────────────────────────────────────────────────────────
// UpsertLike
// ─────────────────────────────────────────────────────────────

func TestUpsertLike_SingleStatement(t *testing.T) {
	repo, mock := newTestLikeRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO likes (blog_id,user_id,type) VALUES ($1,$2,$3) ON CONFLICT (blog_id, user_id) DO UPDATE SET type = EXCLUDED.type")).
		WithArgs(int64(1), int64(2), "DISLIKE").
		WillReturnRows(sqlmock.NewRows(likeRowColumns).AddRow(9, 1, 2, "DISLIKE", now, now))

	like, err := repo.UpsertLike(context.Background(), models.Like{BlogID: 1, UserID: 2, Type: models.ReactionDislike})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if like.Type != models.ReactionDislike || like.ID != 9 {
		t.Errorf("unexpected like: %+v", like)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected exactly one statement: %v", err)
	}
}

func TestUpsertLike_MissingBlog(t *testing.T) {
	repo, mock := newTestLikeRepo(t)

	mock.ExpectQuery("INSERT INTO likes").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.UpsertLike(context.Background(), models.Like{BlogID: 404, UserID: 2, Type: models.ReactionLike})
	if !errors.Is(err, ErrBlogNotFound) {
		t.Fatalf("expected ErrBlogNotFound, got %v", err)
	}
}

// ─────────────────────────────────────────────────────────────
// CountReactions / FindUserReaction
// ─────────────────────────────────────────────────────────────

func TestCountReactions(t *testing.T) {
	repo, mock := newTestLikeRepo(t)

	mock.ExpectQuery("FROM likes").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"likes", "dislikes"}).AddRow(3, 1))

	counts, err := repo.CountReactions(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts.LikesCount != 3 || counts.DislikesCount != 1 {
		t.Errorf("unexpected counts: %+v", counts)
	}
}

func TestFindUserReaction(t *testing.T) {
	t.Run("reacted", func(t *testing.T) {
		repo, mock := newTestLikeRepo(t)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT type FROM likes WHERE blog_id = $1 AND user_id = $2")).
			WithArgs(int64(1), int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"type"}).AddRow("LIKE"))

		reaction, err := repo.FindUserReaction(context.Background(), 1, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reaction == nil || *reaction != models.ReactionLike {
			t.Errorf("expected LIKE, got %v", reaction)
		}
	})

	t.Run("not reacted", func(t *testing.T) {
		repo, mock := newTestLikeRepo(t)

		mock.ExpectQuery("SELECT type FROM likes").
			WithArgs(int64(1), int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"type"}))

		reaction, err := repo.FindUserReaction(context.Background(), 1, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reaction != nil {
			t.Errorf("expected nil reaction, got %v", *reaction)
		}
	})
}

// ─────────────────────────────────────────────────────────────
// ResourceOwner
// ─────────────────────────────────────────────────────────────

func TestResourceOwner(t *testing.T) {
	tests := []struct {
		name      string
		kind      models.ResourceKind
		wantQuery string
	}{
		{name: "blog", kind: models.ResourceBlog, wantQuery: "SELECT author_id FROM blogs WHERE id = $1"},
		{name: "comment", kind: models.ResourceComment, wantQuery: "SELECT user_id FROM comments WHERE id = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewOwnershipRepository(db, logger.Nop())

			mock.ExpectQuery(regexp.QuoteMeta(tt.wantQuery)).
				WithArgs(int64(11)).
				WillReturnRows(sqlmock.NewRows([]string{"owner"}).AddRow(5))

			owner, err := repo.ResourceOwner(context.Background(), tt.kind, 11)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if owner != 5 {
				t.Errorf("expected owner 5, got %d", owner)
			}
		})
	}
}

func TestResourceOwner_NotFound(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOwnershipRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT author_id FROM blogs").
		WillReturnRows(sqlmock.NewRows([]string{"author_id"}))

	_, err := repo.ResourceOwner(context.Background(), models.ResourceBlog, 99)
	if !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestResourceOwner_UnknownKind(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOwnershipRepository(db, logger.Nop())

	_, err := repo.ResourceOwner(context.Background(), models.ResourceKind("tag"), 1)
	if !errors.Is(err, ErrUnknownResourceKind) {
		t.Fatalf("expected ErrUnknownResourceKind, got %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no query expected: %v", err)
	}
}
