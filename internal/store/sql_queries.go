package store

import (
	"fmt"

	"github.com/MKhiriev/go-blog/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	userColumns = `id, username, password_hash, name, bio, avatar, created_at`

	createUser = `INSERT INTO users (username, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	updateProfile = `UPDATE users
    SET name = $2, bio = $3, avatar = $4
    WHERE id = $1
    RETURNING ` + userColumns + `;`

	blogColumns = `id, title, content, image_url, author_id, created_at, updated_at`

	createBlog = `INSERT INTO blogs (title, content, author_id)
    VALUES ($1, $2, $3)
    RETURNING ` + blogColumns + `;`

	updateBlog = `UPDATE blogs
    SET title = $2, content = $3, image_url = $4, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + blogColumns + `;`

	deleteBlog = `DELETE FROM blogs WHERE id = $1;`

	countBlogs = `SELECT COUNT(*) FROM blogs;`

	createComment = `WITH inserted AS (
        INSERT INTO comments (content, blog_id, user_id)
        VALUES ($1, $2, $3)
        RETURNING id, content, blog_id, user_id, created_at
    )
    SELECT i.id, i.content, i.blog_id, i.user_id, i.created_at, u.name, u.avatar
    FROM inserted i
    JOIN users u ON u.id = i.user_id;`

	deleteComment = `DELETE FROM comments WHERE id = $1 AND blog_id = $2;`

	countReactions = `SELECT
        COUNT(*) FILTER (WHERE type = 'LIKE'),
        COUNT(*) FILTER (WHERE type = 'DISLIKE')
    FROM likes
    WHERE blog_id = $1;`

	findUserReaction = `SELECT type FROM likes WHERE blog_id = $1 AND user_id = $2;`

	upsertLikeSuffix = `ON CONFLICT (blog_id, user_id)
    DO UPDATE SET type = EXCLUDED.type, updated_at = NOW()
    RETURNING id, blog_id, user_id, type, created_at, updated_at`
)

// ownerColumns maps a resource kind to the table and column holding its owner.
var ownerColumns = map[models.ResourceKind]struct {
	table  string
	column string
}{
	models.ResourceBlog:    {table: "blogs", column: "author_id"},
	models.ResourceComment: {table: "comments", column: "user_id"},
}

func blogWithAuthorSelect(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(
		"b.id", "b.title", "b.content", "b.image_url", "b.author_id", "b.created_at", "b.updated_at",
		"u.username", "u.name", "u.avatar",
	).
		From("blogs b").
		Join("users u ON u.id = b.author_id")
}

func buildGetBlogQuery(b sq.StatementBuilderType, blogID int64) (string, []any, error) {
	query, args, err := blogWithAuthorSelect(b).
		Where(sq.Eq{"b.id": blogID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListBlogsQuery(b sq.StatementBuilderType, page models.Page) (string, []any, error) {
	query, args, err := blogWithAuthorSelect(b).
		OrderBy("b.created_at DESC", "b.id DESC").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildListCommentsQuery(b sq.StatementBuilderType, blogID int64) (string, []any, error) {
	query, args, err := b.Select(
		"c.id", "c.content", "c.blog_id", "c.user_id", "c.created_at", "u.name", "u.avatar",
	).
		From("comments c").
		Join("users u ON u.id = c.user_id").
		Where(sq.Eq{"c.blog_id": blogID}).
		OrderBy("c.created_at DESC", "c.id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpsertLikeQuery(b sq.StatementBuilderType, like models.Like) (string, []any, error) {
	query, args, err := b.Insert("likes").
		Columns("blog_id", "user_id", "type").
		Values(like.BlogID, like.UserID, string(like.Type)).
		Suffix(upsertLikeSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildResourceOwnerQuery(b sq.StatementBuilderType, kind models.ResourceKind, resourceID int64) (string, []any, error) {
	source, ok := ownerColumns[kind]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownResourceKind, kind)
	}

	query, args, err := b.Select(source.column).
		From(source.table).
		Where(sq.Eq{"id": resourceID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
