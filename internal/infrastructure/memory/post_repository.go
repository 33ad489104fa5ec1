// Package memory holds process-local implementations of the domain
// repositories, used when no database is configured.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"chalee-api/internal/domain/post"
)

// PostRepository is an in-memory post.Repository. Slug uniqueness is enforced
// the same way the unique index does it in postgres.
type PostRepository struct {
	mu     sync.RWMutex
	posts  map[int64]*post.Post
	nextID int64
	now    func() time.Time
}

// NewPostRepository creates an empty store
func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[int64]*post.Post),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *PostRepository) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.slugTaken(p.Slug(), 0) {
		return nil, post.ErrSlugConflict(p.Slug().String(), nil)
	}

	r.nextID++
	now := r.now()
	stored, err := post.Reconstitute(r.nextID, p.Title().String(), p.Content(), p.Summary(),
		p.Slug().String(), p.IsPublished(), now, now)
	if err != nil {
		return nil, err
	}
	r.posts[stored.ID()] = stored
	return clone(stored), nil
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound(id)
	}
	return clone(p), nil
}

func (r *PostRepository) FindBySlug(ctx context.Context, slug post.Slug) (*post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.Slug().Equals(slug) {
			return clone(p), nil
		}
	}
	return nil, post.ErrPostSlugNotFound(slug.String())
}

func (r *PostRepository) FindMany(ctx context.Context, q post.ListQuery) ([]*post.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.matching(q.Filter)
	sortPosts(matched, q.SortBy, q.SortOrder)

	start := q.Offset()
	if start < 0 || start >= len(matched) {
		return []*post.Post{}, nil
	}
	end := len(matched)
	if q.Limit < end-start {
		end = start + q.Limit
	}
	return cloneAll(matched[start:end]), nil
}

func (r *PostRepository) Count(ctx context.Context, f post.Filter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.matching(f))), nil
}

func (r *PostRepository) Update(ctx context.Context, id int64, f post.UpdateFields) (*post.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound(id)
	}
	if f.Slug != nil && r.slugTaken(*f.Slug, id) {
		return nil, post.ErrSlugConflict(f.Slug.String(), nil)
	}
	p.ApplyUpdate(f)
	return clone(p), nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return post.ErrPostNotFound(id)
	}
	delete(r.posts, id)
	return nil
}

func (r *PostRepository) CountByPublished(ctx context.Context, published bool) (int64, error) {
	return r.Count(ctx, post.Filter{Published: &published})
}

func (r *PostRepository) FindRecent(ctx context.Context, limit int) ([]*post.Post, error) {
	return r.FindMany(ctx, post.ListQuery{Page: 1, Limit: limit, SortBy: post.SortByCreatedAt, SortOrder: post.SortDesc})
}

// slugTaken reports whether another post than except already uses slug
func (r *PostRepository) slugTaken(slug post.Slug, except int64) bool {
	for id, p := range r.posts {
		if id != except && p.Slug().Equals(slug) {
			return true
		}
	}
	return false
}

func (r *PostRepository) matching(f post.Filter) []*post.Post {
	term := strings.ToLower(f.Search)
	out := make([]*post.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if f.Published != nil && p.IsPublished() != *f.Published {
			continue
		}
		if term != "" && !containsFold(p, term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func containsFold(p *post.Post, term string) bool {
	if strings.Contains(strings.ToLower(p.Title().String()), term) ||
		strings.Contains(strings.ToLower(p.Content()), term) {
		return true
	}
	return p.Summary() != nil && strings.Contains(strings.ToLower(*p.Summary()), term)
}

// sortPosts orders by the requested field, breaking ties by id in the same direction
func sortPosts(posts []*post.Post, by post.SortField, order post.SortOrder) {
	less := func(a, b *post.Post) int {
		switch by {
		case post.SortByTitle:
			if c := strings.Compare(a.Title().String(), b.Title().String()); c != 0 {
				return c
			}
		case post.SortByUpdatedAt:
			if c := a.UpdatedAt().Compare(b.UpdatedAt()); c != 0 {
				return c
			}
		default:
			if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
				return c
			}
		}
		switch {
		case a.ID() < b.ID():
			return -1
		case a.ID() > b.ID():
			return 1
		}
		return 0
	}

	sort.SliceStable(posts, func(i, j int) bool {
		c := less(posts[i], posts[j])
		if order == post.SortDesc {
			return c > 0
		}
		return c < 0
	})
}

func clone(p *post.Post) *post.Post {
	c := *p
	return &c
}

func cloneAll(posts []*post.Post) []*post.Post {
	out := make([]*post.Post, len(posts))
	for i, p := range posts {
		out[i] = clone(p)
	}
	return out
}
