package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// UserAgent is sent with every upstream request
const UserAgent = "chalee-api-github-client"

// MaxRedirects bounds how many redirects one upstream call follows
const MaxRedirects = 5

// Options configures a Client
type Options struct {
	// Token is optional; without it requests are anonymous and get the lower rate limit
	Token   string
	BaseURL string
	Timeout time.Duration
}

// Client handles GitHub API interactions
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	logger     *zap.Logger
}

// NewClient creates a new GitHub API client
func NewClient(opts Options, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var transport http.RoundTripper = http.DefaultTransport
	if opts.Token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token}),
			Base:   transport,
		}
	}

	httpClient := &http.Client{
		Timeout:       opts.Timeout,
		Transport:     transport,
		CheckRedirect: limitRedirects,
	}

	c := &Client{httpClient: httpClient, logger: logger.With(zap.String("component", "github_client"))}
	if opts.BaseURL != "" {
		base := opts.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub base URL %q: %w", opts.BaseURL, err)
		}
		c.baseURL = u
	}
	return c, nil
}

func limitRedirects(req *http.Request, via []*http.Request) error {
	if len(via) >= MaxRedirects {
		return fmt.Errorf("stopped after %d redirects", MaxRedirects)
	}
	return nil
}

// api returns a go-github client with no remembered rate limit state, so a
// call after an exhausted response still reaches GitHub.
func (c *Client) api() *github.Client {
	gh := github.NewClient(c.httpClient)
	gh.UserAgent = UserAgent
	if c.baseURL != nil {
		gh.BaseURL = c.baseURL
	}
	return gh
}

// ListParams are the query parameters forwarded to the listing endpoint
type ListParams struct {
	PerPage   int
	Page      int
	Sort      string
	Direction string
}

// RepositoryPage is one page of upstream repositories plus the Link header hints
type RepositoryPage struct {
	Repos    []*github.Repository
	NextPage int
	PrevPage int
}

// ListUserRepositories fetches one page of GET /users/{username}/repos
func (c *Client) ListUserRepositories(ctx context.Context, username string, params ListParams) (*RepositoryPage, error) {
	opts := &github.RepositoryListByUserOptions{
		Sort:      params.Sort,
		Direction: params.Direction,
		ListOptions: github.ListOptions{
			Page:    params.Page,
			PerPage: params.PerPage,
		},
	}

	c.logger.Debug("listing user repositories",
		zap.String("username", username),
		zap.Int("page", params.Page),
		zap.Int("per_page", params.PerPage))

	repos, resp, err := c.api().Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, err
	}

	return &RepositoryPage{
		Repos:    repos,
		NextPage: resp.NextPage,
		PrevPage: resp.PrevPage,
	}, nil
}

// GetRepository fetches GET /repos/{owner}/{repo}
func (c *Client) GetRepository(ctx context.Context, owner, name string) (*github.Repository, error) {
	c.logger.Debug("fetching repository", zap.String("owner", owner), zap.String("repo", name))

	repo, _, err := c.api().Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// StatusCode extracts the upstream HTTP status from an error returned by the
// client, or 0 when the request never produced a response.
func StatusCode(err error) int {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return rateErr.Response.StatusCode
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return abuseErr.Response.StatusCode
	}
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return respErr.Response.StatusCode
	}
	return 0
}

// IsRateLimit reports whether err is one of go-github's rate limit errors
func IsRateLimit(err error) bool {
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	return errors.As(err, &rateErr) || errors.As(err, &abuseErr)
}
