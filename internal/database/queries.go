package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// DBTX is satisfied by *sql.DB, *sql.Tx and *sql.Conn
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// Queries holds the SQL for the posts table
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Post is one row of the posts table
type Post struct {
	ID        int64
	Title     string
	Content   string
	Summary   sql.NullString
	Slug      string
	Published bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

const postColumns = `id, title, content, summary, slug, published, created_at, updated_at`

func scanPost(row interface{ Scan(...interface{}) error }) (*Post, error) {
	var p Post
	err := row.Scan(&p.ID, &p.Title, &p.Content, &p.Summary, &p.Slug, &p.Published, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const createPost = `INSERT INTO posts (title, content, summary, slug, published)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + postColumns

type CreatePostParams struct {
	Title     string
	Content   string
	Summary   sql.NullString
	Slug      string
	Published bool
}

func (q *Queries) CreatePost(ctx context.Context, arg *CreatePostParams) (*Post, error) {
	row := q.db.QueryRowContext(ctx, createPost, arg.Title, arg.Content, arg.Summary, arg.Slug, arg.Published)
	return scanPost(row)
}

const getPostByID = `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

func (q *Queries) GetPostByID(ctx context.Context, id int64) (*Post, error) {
	return scanPost(q.db.QueryRowContext(ctx, getPostByID, id))
}

const getPostBySlug = `SELECT ` + postColumns + ` FROM posts WHERE slug = $1`

func (q *Queries) GetPostBySlug(ctx context.Context, slug string) (*Post, error) {
	return scanPost(q.db.QueryRowContext(ctx, getPostBySlug, slug))
}

// PostFilter is shared by ListPosts and CountPosts so a page and its total
// always cover the same rows.
type PostFilter struct {
	// Search is a raw user term; LIKE wildcards in it are escaped
	Search    string
	Published sql.NullBool
}

const postFilterWhere = `WHERE ($1 = '' OR title ILIKE '%' || $1 || '%' OR content ILIKE '%' || $1 || '%' OR summary ILIKE '%' || $1 || '%')
  AND ($2::boolean IS NULL OR published = $2)`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (f PostFilter) args() []interface{} {
	return []interface{}{likeEscaper.Replace(f.Search), f.Published}
}

// Sortable columns, keyed by their API name
var postSortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"title":     "title",
}

type ListPostsParams struct {
	PostFilter
	SortBy   string
	SortDesc bool
	Limit    int
	Offset   int
}

func (q *Queries) ListPosts(ctx context.Context, arg *ListPostsParams) ([]*Post, error) {
	column, ok := postSortColumns[arg.SortBy]
	if !ok {
		return nil, fmt.Errorf("unsupported sort column %q", arg.SortBy)
	}
	direction := "ASC"
	if arg.SortDesc {
		direction = "DESC"
	}

	query := fmt.Sprintf(`SELECT %s FROM posts %s ORDER BY %s %s, id %s LIMIT $3 OFFSET $4`,
		postColumns, postFilterWhere, column, direction, direction)

	args := append(arg.PostFilter.args(), arg.Limit, arg.Offset)
	return q.queryPosts(ctx, query, args...)
}

const countPosts = `SELECT COUNT(*) FROM posts ` + postFilterWhere

func (q *Queries) CountPosts(ctx context.Context, arg PostFilter) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countPosts, arg.args()...).Scan(&count)
	return count, err
}

const countPostsByPublished = `SELECT COUNT(*) FROM posts WHERE published = $1`

func (q *Queries) CountPostsByPublished(ctx context.Context, published bool) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countPostsByPublished, published).Scan(&count)
	return count, err
}

const listRecentPosts = `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC, id DESC LIMIT $1`

func (q *Queries) ListRecentPosts(ctx context.Context, limit int) ([]*Post, error) {
	return q.queryPosts(ctx, listRecentPosts, limit)
}

const updatePost = `UPDATE posts SET
    title = COALESCE($2, title),
    content = COALESCE($3, content),
    summary = COALESCE($4, summary),
    slug = COALESCE($5, slug),
    published = COALESCE($6, published),
    updated_at = NOW()
WHERE id = $1
RETURNING ` + postColumns

// UpdatePostParams leaves every invalid (NULL) field unchanged
type UpdatePostParams struct {
	ID        int64
	Title     sql.NullString
	Content   sql.NullString
	Summary   sql.NullString
	Slug      sql.NullString
	Published sql.NullBool
}

func (q *Queries) UpdatePost(ctx context.Context, arg *UpdatePostParams) (*Post, error) {
	row := q.db.QueryRowContext(ctx, updatePost, arg.ID, arg.Title, arg.Content, arg.Summary, arg.Slug, arg.Published)
	return scanPost(row)
}

const deletePost = `DELETE FROM posts WHERE id = $1`

// DeletePost returns the number of rows removed
func (q *Queries) DeletePost(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deletePost, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (q *Queries) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*Post, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
