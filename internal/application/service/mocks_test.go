package service_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"chalee-api/internal/domain/post"
	"chalee-api/internal/domain/repo"

	"github.com/stretchr/testify/mock"
)

// mockPostRepo is an in-memory post.Repository
type mockPostRepo struct {
	mu          sync.Mutex
	posts       map[int64]*post.Post
	nextID      int64
	shouldError bool
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[int64]*post.Post)}
}

var errStore = errors.New("connection reset by peer")

func (m *mockPostRepo) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldError {
		return nil, errStore
	}
	for _, existing := range m.posts {
		if existing.Slug().Equals(p.Slug()) {
			return nil, post.ErrSlugConflict(p.Slug().String(), nil)
		}
	}
	m.nextID++
	// Spread creation times so ordering by createdAt is deterministic
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(m.nextID) * time.Minute)
	stored, err := post.Reconstitute(m.nextID, p.Title().String(), p.Content(), p.Summary(), p.Slug().String(), p.IsPublished(), created, created)
	if err != nil {
		return nil, err
	}
	m.posts[stored.ID()] = stored
	return stored, nil
}

func (m *mockPostRepo) FindByID(ctx context.Context, id int64) (*post.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldError {
		return nil, errStore
	}
	p, ok := m.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound(id)
	}
	return p, nil
}

func (m *mockPostRepo) FindBySlug(ctx context.Context, slug post.Slug) (*post.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldError {
		return nil, errStore
	}
	for _, p := range m.posts {
		if p.Slug().Equals(slug) {
			return p, nil
		}
	}
	return nil, post.ErrPostSlugNotFound(slug.String())
}

func (m *mockPostRepo) matching(f post.Filter) []*post.Post {
	var out []*post.Post
	term := strings.ToLower(f.Search)
	for _, p := range m.posts {
		if f.Published != nil && p.IsPublished() != *f.Published {
			continue
		}
		if term != "" {
			summary := ""
			if p.Summary() != nil {
				summary = *p.Summary()
			}
			hay := strings.ToLower(p.Title().String() + "\n" + p.Content() + "\n" + summary)
			if !strings.Contains(hay, term) {
				continue
			}
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

func (m *mockPostRepo) FindMany(ctx context.Context, q post.ListQuery) ([]*post.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldError {
		return nil, errStore
	}
	all := m.matching(q.Filter)
	if q.SortOrder == post.SortDesc {
		sort.Slice(all, func(i, j int) bool { return all[i].ID() > all[j].ID() })
	}
	start := q.Offset()
	if start >= len(all) {
		return []*post.Post{}, nil
	}
	end := start + q.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (m *mockPostRepo) Count(ctx context.Context, f post.Filter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldError {
		return 0, errStore
	}
	return int64(len(m.matching(f))), nil
}

func (m *mockPostRepo) Update(ctx context.Context, id int64, f post.UpdateFields) (*post.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldError {
		return nil, errStore
	}
	p, ok := m.posts[id]
	if !ok {
		return nil, post.ErrPostNotFound(id)
	}
	if f.Slug != nil {
		for otherID, other := range m.posts {
			if otherID != id && other.Slug().Equals(*f.Slug) {
				return nil, post.ErrSlugConflict(f.Slug.String(), nil)
			}
		}
	}
	p.ApplyUpdate(f)
	return p, nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.shouldError {
		return errStore
	}
	if _, ok := m.posts[id]; !ok {
		return post.ErrPostNotFound(id)
	}
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) CountByPublished(ctx context.Context, published bool) (int64, error) {
	return m.Count(ctx, post.Filter{Published: &published})
}

func (m *mockPostRepo) FindRecent(ctx context.Context, limit int) ([]*post.Post, error) {
	q := post.ListQuery{Page: 1, Limit: limit, SortOrder: post.SortDesc}
	return m.FindMany(ctx, q)
}

// mockGitHubService is a testify mock of repo.GitHubService
type mockGitHubService struct {
	mock.Mock
}

func (m *mockGitHubService) ListUserRepositories(ctx context.Context, opts repo.ListOptions) (*repo.Page, error) {
	args := m.Called(ctx, opts)
	page, _ := args.Get(0).(*repo.Page)
	return page, args.Error(1)
}

func (m *mockGitHubService) GetRepository(ctx context.Context, username, repoName string) (*repo.Summary, error) {
	args := m.Called(ctx, username, repoName)
	summary, _ := args.Get(0).(*repo.Summary)
	return summary, args.Error(1)
}
