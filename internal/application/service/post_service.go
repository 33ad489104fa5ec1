package service

import (
	"context"
	"errors"
	"time"

	"chalee-api/internal/application/dto"
	"chalee-api/internal/domain/errs"
	"chalee-api/internal/domain/events"
	"chalee-api/internal/domain/post"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PostService handles post-related use cases
type PostService struct {
	posts      post.Repository
	dispatcher *events.Dispatcher
	logger     *zap.Logger
}

// NewPostService creates a new post service
func NewPostService(posts post.Repository, dispatcher *events.Dispatcher, logger *zap.Logger) *PostService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if dispatcher == nil {
		dispatcher = events.NewDispatcher(logger)
	}
	return &PostService{
		posts:      posts,
		dispatcher: dispatcher,
		logger:     logger.With(zap.String("component", "post_service")),
	}
}

// Create creates a new post
func (s *PostService) Create(ctx context.Context, req *dto.CreatePostRequest) (*dto.PostResponse, error) {
	published := req.Published != nil && *req.Published

	p, err := post.NewPost(req.Title, req.Content, req.Summary, req.Slug, published)
	if err != nil {
		return nil, err
	}

	s.logger.Info("creating post", zap.String("slug", p.Slug().String()))

	created, err := s.posts.Create(ctx, p)
	if err != nil {
		s.logFailure("create post", err, zap.String("slug", p.Slug().String()))
		return nil, err
	}

	s.dispatch(ctx, post.NewPostCreatedEvent(created))
	return toPostDTO(created), nil
}

// List returns one filtered page of posts with pagination metadata
func (s *PostService) List(ctx context.Context, req *dto.ListPostsQuery) (*dto.PostListResponse, error) {
	q, err := post.NewListQuery(derefInt(req.Page), derefInt(req.Limit), req.Search, req.Published, req.SortBy, req.SortOrder)
	if err != nil {
		return nil, err
	}

	var (
		posts []*post.Post
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.posts.FindMany(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.posts.Count(gctx, q.Filter)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logFailure("list posts", err,
			zap.Int("page", q.Page),
			zap.Int("limit", q.Limit),
			zap.String("search", q.Search))
		return nil, err
	}

	pagination := post.NewPagination(q.Page, q.Limit, total)
	return &dto.PostListResponse{
		Posts: toPostDTOs(posts),
		Pagination: dto.PaginationResponse{
			Page:       pagination.Page,
			Limit:      pagination.Limit,
			Total:      pagination.Total,
			TotalPages: pagination.TotalPages,
			HasNext:    pagination.HasNext,
			HasPrev:    pagination.HasPrev,
		},
	}, nil
}

// GetByID retrieves a post by its ID
func (s *PostService) GetByID(ctx context.Context, id int64) (*dto.PostResponse, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		s.logFailure("get post", err, zap.Int64("post_id", id))
		return nil, err
	}
	return toPostDTO(p), nil
}

// GetBySlug retrieves a post by its slug. The lookup key is normalized like a
// stored slug, so "Hello World" finds "hello-world".
func (s *PostService) GetBySlug(ctx context.Context, slug string) (*dto.PostResponse, error) {
	key, err := post.NewSlug(slug)
	if err != nil {
		return nil, post.ErrPostSlugNotFound(slug)
	}

	p, err := s.posts.FindBySlug(ctx, key)
	if err != nil {
		s.logFailure("get post by slug", err, zap.String("slug", key.String()))
		return nil, err
	}
	return toPostDTO(p), nil
}

// Update applies a partial update to a post
func (s *PostService) Update(ctx context.Context, id int64, req *dto.UpdatePostRequest) (*dto.PostResponse, error) {
	fields, err := post.NewUpdateFields(req.Title, req.Content, req.Summary, req.Slug, req.Published)
	if err != nil {
		return nil, err
	}

	s.logger.Info("updating post", zap.Int64("post_id", id))

	updated, err := s.posts.Update(ctx, id, fields)
	if err != nil {
		s.logFailure("update post", err, zap.Int64("post_id", id))
		return nil, err
	}

	s.dispatch(ctx, post.NewPostUpdatedEvent(updated))
	if fields.Published != nil {
		s.dispatch(ctx, post.NewPublicationEvent(updated))
	}
	return toPostDTO(updated), nil
}

// Publish marks a post as published
func (s *PostService) Publish(ctx context.Context, id int64) (*dto.PostResponse, error) {
	return s.setPublished(ctx, id, true)
}

// Unpublish returns a post to draft
func (s *PostService) Unpublish(ctx context.Context, id int64) (*dto.PostResponse, error) {
	return s.setPublished(ctx, id, false)
}

func (s *PostService) setPublished(ctx context.Context, id int64, published bool) (*dto.PostResponse, error) {
	updated, err := s.posts.Update(ctx, id, post.PublishFields(published))
	if err != nil {
		s.logFailure("set post publication", err, zap.Int64("post_id", id), zap.Bool("published", published))
		return nil, err
	}

	s.dispatch(ctx, post.NewPublicationEvent(updated))
	return toPostDTO(updated), nil
}

// Delete removes a post
func (s *PostService) Delete(ctx context.Context, id int64) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		s.logFailure("delete post", err, zap.Int64("post_id", id))
		return err
	}

	s.logger.Info("post deleted", zap.Int64("post_id", id))
	s.dispatch(ctx, post.NewPostDeletedEvent(id))
	return nil
}

// Stats returns collection counters and the newest posts
func (s *PostService) Stats(ctx context.Context) (*dto.PostStatsResponse, error) {
	var (
		total, published, unpublished int64
		recent                        []*post.Post
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.posts.Count(gctx, post.Filter{})
		return err
	})
	g.Go(func() error {
		var err error
		published, err = s.posts.CountByPublished(gctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		unpublished, err = s.posts.CountByPublished(gctx, false)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.posts.FindRecent(gctx, post.RecentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logFailure("get post stats", err)
		return nil, err
	}

	recentDTOs := make([]*dto.RecentPostResponse, len(recent))
	for i, p := range recent {
		recentDTOs[i] = &dto.RecentPostResponse{
			ID:        p.ID(),
			Title:     p.Title().String(),
			Slug:      p.Slug().String(),
			Published: p.IsPublished(),
			CreatedAt: formatTime(p.CreatedAt()),
		}
	}

	return &dto.PostStatsResponse{
		Stats: dto.PostCountsResponse{
			Total:       total,
			Published:   published,
			Unpublished: unpublished,
		},
		RecentPosts: recentDTOs,
	}, nil
}

// dispatch publishes a lifecycle event; handler failures never fail the request
func (s *PostService) dispatch(ctx context.Context, event events.DomainEvent) {
	if err := s.dispatcher.Dispatch(ctx, event); err != nil {
		s.logger.Warn("post event dispatch failed",
			zap.String("event_type", event.EventType()),
			zap.Error(err))
	}
}

// logFailure records errors that are not an expected domain outcome
func (s *PostService) logFailure(operation string, err error, fields ...zap.Field) {
	if isExpected(err) {
		return
	}
	s.logger.Error("failed to "+operation, append(fields, zap.Error(err))...)
}

func isExpected(err error) bool {
	return errors.Is(err, errs.ErrNotFound) ||
		errors.Is(err, errs.ErrConflict) ||
		errors.Is(err, errs.ErrValidation)
}

func toPostDTO(p *post.Post) *dto.PostResponse {
	return &dto.PostResponse{
		ID:        p.ID(),
		Title:     p.Title().String(),
		Content:   p.Content(),
		Summary:   p.Summary(),
		Slug:      p.Slug().String(),
		Published: p.IsPublished(),
		CreatedAt: formatTime(p.CreatedAt()),
		UpdatedAt: formatTime(p.UpdatedAt()),
	}
}

func toPostDTOs(posts []*post.Post) []*dto.PostResponse {
	out := make([]*dto.PostResponse, len(posts))
	for i, p := range posts {
		out[i] = toPostDTO(p)
	}
	return out
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
