package repo

import (
	"context"
)

// GitHubService is a domain service interface for reading repositories from GitHub
// Implementation is in the infrastructure layer
type GitHubService interface {
	// ListUserRepositories fetches one page of a user's public repositories
	ListUserRepositories(ctx context.Context, opts ListOptions) (*Page, error)

	// GetRepository fetches a single repository
	GetRepository(ctx context.Context, username, repoName string) (*Summary, error)
}
