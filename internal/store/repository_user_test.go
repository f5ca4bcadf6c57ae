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
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return newDB(conn, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewUserRepository(db, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"id", "username", "password_hash", "name", "bio", "avatar", "created_at"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	user := models.User{Username: "john", PasswordHash: "hash", Name: "John"}
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.PasswordHash, user.Name).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(1, "john", "hash", "John", "", "", now))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	// wrong shape: one column instead of seven
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "john"})
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE username = $1")).
		WithArgs("john").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(7, "john", "hash", "John", "bio", "a.png", time.Now()))

	found, err := repo.FindUserByUsername(context.Background(), "john")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 7 || found.PasswordHash != "hash" || found.Avatar != "a.png" {
		t.Errorf("unexpected user: %+v", found)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE username = $1")).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.FindUserByUsername(context.Background(), "ghost")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByID(context.Background(), 3)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	update := models.ProfileUpdate{UserID: 2, Name: "Jane", Bio: "writer", Avatar: "https://cdn/a.png"}

	mock.ExpectQuery("UPDATE users").
		WithArgs(update.UserID, update.Name, update.Bio, update.Avatar).
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(2, "jane", "hash", "Jane", "writer", "https://cdn/a.png", time.Now()))

	updated, err := repo.UpdateProfile(context.Background(), update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Bio != "writer" {
		t.Errorf("expected bio writer, got %s", updated.Bio)
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("UPDATE users").
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	_, err := repo.UpdateProfile(context.Background(), models.ProfileUpdate{UserID: 404})
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}
