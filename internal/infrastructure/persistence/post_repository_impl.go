package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"chalee-api/internal/database"
	"chalee-api/internal/domain/post"

	"github.com/lib/pq"
)

// uniqueViolation is the postgres SQLSTATE for a unique index conflict
const uniqueViolation = "23505"

// PostRepositoryImpl implements the domain post.Repository interface
type PostRepositoryImpl struct {
	queries *database.Queries
}

// NewPostRepository creates a new post repository implementation
func NewPostRepository(db *database.DB) post.Repository {
	return &PostRepositoryImpl{
		queries: database.New(db.GetConnection()),
	}
}

// Create inserts a post and returns the stored row
func (r *PostRepositoryImpl) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	row, err := r.queries.CreatePost(ctx, &database.CreatePostParams{
		Title:     p.Title().String(),
		Content:   p.Content(),
		Summary:   toNullString(p.Summary()),
		Slug:      p.Slug().String(),
		Published: p.IsPublished(),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, post.ErrSlugConflict(p.Slug().String(), err)
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return r.toDomain(row)
}

// FindByID retrieves a post by its ID
func (r *PostRepositoryImpl) FindByID(ctx context.Context, id int64) (*post.Post, error) {
	row, err := r.queries.GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, post.ErrPostNotFound(id)
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return r.toDomain(row)
}

// FindBySlug retrieves a post by its slug
func (r *PostRepositoryImpl) FindBySlug(ctx context.Context, slug post.Slug) (*post.Post, error) {
	row, err := r.queries.GetPostBySlug(ctx, slug.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, post.ErrPostSlugNotFound(slug.String())
		}
		return nil, fmt.Errorf("failed to get post by slug: %w", err)
	}
	return r.toDomain(row)
}

// FindMany returns one filtered, sorted page of posts
func (r *PostRepositoryImpl) FindMany(ctx context.Context, q post.ListQuery) ([]*post.Post, error) {
	rows, err := r.queries.ListPosts(ctx, &database.ListPostsParams{
		PostFilter: toPostFilter(q.Filter),
		SortBy:     string(q.SortBy),
		SortDesc:   q.SortOrder == post.SortDesc,
		Limit:      q.Limit,
		Offset:     q.Offset(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return r.toDomainList(rows)
}

// Count returns the number of posts matching the filter
func (r *PostRepositoryImpl) Count(ctx context.Context, f post.Filter) (int64, error) {
	count, err := r.queries.CountPosts(ctx, toPostFilter(f))
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// Update applies a partial update and returns the stored row
func (r *PostRepositoryImpl) Update(ctx context.Context, id int64, f post.UpdateFields) (*post.Post, error) {
	params := &database.UpdatePostParams{
		ID:        id,
		Content:   toNullString(f.Content),
		Summary:   toNullString(f.Summary),
		Published: toNullBool(f.Published),
	}
	if f.Title != nil {
		params.Title = sql.NullString{String: f.Title.String(), Valid: true}
	}
	if f.Slug != nil {
		params.Slug = sql.NullString{String: f.Slug.String(), Valid: true}
	}

	row, err := r.queries.UpdatePost(ctx, params)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, post.ErrPostNotFound(id)
		}
		if isUniqueViolation(err) {
			return nil, post.ErrSlugConflict(params.Slug.String, err)
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return r.toDomain(row)
}

// Delete removes a post
func (r *PostRepositoryImpl) Delete(ctx context.Context, id int64) error {
	affected, err := r.queries.DeletePost(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if affected == 0 {
		return post.ErrPostNotFound(id)
	}
	return nil
}

// CountByPublished counts posts by publication state
func (r *PostRepositoryImpl) CountByPublished(ctx context.Context, published bool) (int64, error) {
	count, err := r.queries.CountPostsByPublished(ctx, published)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// FindRecent returns the newest posts by creation time
func (r *PostRepositoryImpl) FindRecent(ctx context.Context, limit int) ([]*post.Post, error) {
	rows, err := r.queries.ListRecentPosts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent posts: %w", err)
	}
	return r.toDomainList(rows)
}

// toDomain converts database model to domain entity
func (r *PostRepositoryImpl) toDomain(row *database.Post) (*post.Post, error) {
	var summary *string
	if row.Summary.Valid {
		summary = &row.Summary.String
	}
	return post.Reconstitute(row.ID, row.Title, row.Content, summary, row.Slug, row.Published, row.CreatedAt, row.UpdatedAt)
}

func (r *PostRepositoryImpl) toDomainList(rows []*database.Post) ([]*post.Post, error) {
	posts := make([]*post.Post, 0, len(rows))
	for _, row := range rows {
		p, err := r.toDomain(row)
		if err != nil {
			return nil, fmt.Errorf("failed to convert post %d: %w", row.ID, err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func toPostFilter(f post.Filter) database.PostFilter {
	return database.PostFilter{
		Search:    f.Search,
		Published: toNullBool(f.Published),
	}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func toNullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}
