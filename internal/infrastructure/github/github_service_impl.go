package github

import (
	"context"
	"net/http"

	"chalee-api/internal/domain/repo"
	"chalee-api/internal/github"

	gh "github.com/google/go-github/v62/github"
	"go.uber.org/zap"
)

// GitHubServiceImpl implements the domain repo.GitHubService interface
type GitHubServiceImpl struct {
	client *github.Client
	logger *zap.Logger
}

// NewGitHubService creates a new GitHub service implementation
func NewGitHubService(client *github.Client, logger *zap.Logger) repo.GitHubService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GitHubServiceImpl{client: client, logger: logger.With(zap.String("component", "github_service"))}
}

// ListUserRepositories fetches one page of a user's repositories from GitHub
func (g *GitHubServiceImpl) ListUserRepositories(ctx context.Context, opts repo.ListOptions) (*repo.Page, error) {
	page, err := g.client.ListUserRepositories(ctx, opts.Username, github.ListParams{
		PerPage:   opts.PerPage,
		Page:      opts.Page,
		Sort:      string(opts.Sort),
		Direction: string(opts.Direction),
	})
	if err != nil {
		g.logger.Error("failed to list user repositories",
			zap.String("username", opts.Username),
			zap.Int("page", opts.Page),
			zap.Error(err))
		return nil, translateError(err, repo.ErrUserNotFound(opts.Username), "list repositories")
	}

	repos := make([]*repo.Summary, len(page.Repos))
	for i, r := range page.Repos {
		repos[i] = toSummary(r)
	}

	return &repo.Page{
		Repos:   repos,
		Page:    opts.Page,
		PerPage: opts.PerPage,
		HasNext: page.NextPage != 0,
		HasPrev: page.PrevPage != 0,
	}, nil
}

// GetRepository fetches a single repository from GitHub
func (g *GitHubServiceImpl) GetRepository(ctx context.Context, username, repoName string) (*repo.Summary, error) {
	r, err := g.client.GetRepository(ctx, username, repoName)
	if err != nil {
		g.logger.Error("failed to get repository",
			zap.String("username", username),
			zap.String("repo", repoName),
			zap.Error(err))
		return nil, translateError(err, repo.ErrRepositoryNotFound(username, repoName), "fetch repository details")
	}
	return toSummary(r), nil
}

// translateError maps upstream failures onto domain errors: 404 becomes
// notFound, 403 and rate limit responses become RateLimited, anything else
// (network errors included) becomes an upstream failure.
func translateError(err error, notFound error, operation string) error {
	switch status := github.StatusCode(err); {
	case status == http.StatusNotFound:
		return notFound
	case status == http.StatusForbidden, status == http.StatusTooManyRequests, github.IsRateLimit(err):
		return repo.ErrRateLimited(err)
	default:
		return repo.ErrUpstream(operation, err)
	}
}

func toSummary(r *gh.Repository) *repo.Summary {
	return &repo.Summary{
		ID:              r.GetID(),
		Name:            r.GetName(),
		FullName:        r.GetFullName(),
		Description:     r.Description,
		HTMLURL:         r.GetHTMLURL(),
		CloneURL:        r.GetCloneURL(),
		SSHURL:          r.GetSSHURL(),
		Language:        r.Language,
		StargazersCount: r.GetStargazersCount(),
		ForksCount:      r.GetForksCount(),
		OpenIssuesCount: r.GetOpenIssuesCount(),
		CreatedAt:       r.GetCreatedAt().Time,
		UpdatedAt:       r.GetUpdatedAt().Time,
		PushedAt:        r.GetPushedAt().Time,
		Private:         r.GetPrivate(),
		Fork:            r.GetFork(),
	}
}
