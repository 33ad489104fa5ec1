package service

import (
	"context"

	"chalee-api/internal/application/dto"
	"chalee-api/internal/domain/repo"
)

// RepositoryService proxies GitHub repository reads
type RepositoryService struct {
	githubService repo.GitHubService
}

// NewRepositoryService creates a new repository service
func NewRepositoryService(githubService repo.GitHubService) *RepositoryService {
	return &RepositoryService{githubService: githubService}
}

// ListUserRepositories returns one page of a user's repositories
func (s *RepositoryService) ListUserRepositories(ctx context.Context, username string, req *dto.ListRepositoriesQuery) (*dto.RepositoryListResponse, error) {
	opts, err := repo.NewListOptions(username, derefInt(req.PerPage), derefInt(req.Page), req.Sort, req.Direction)
	if err != nil {
		return nil, err
	}

	page, err := s.githubService.ListUserRepositories(ctx, opts)
	if err != nil {
		return nil, err
	}

	repos := make([]*dto.RepositoryResponse, len(page.Repos))
	for i, r := range page.Repos {
		repos[i] = toRepositoryDTO(r)
	}

	return &dto.RepositoryListResponse{
		Repos:      repos,
		TotalCount: page.TotalCount(),
		Page:       page.Page,
		PerPage:    page.PerPage,
		HasNext:    page.HasNext,
		HasPrev:    page.HasPrev,
	}, nil
}

// GetRepository returns a single repository
func (s *RepositoryService) GetRepository(ctx context.Context, username, repoName string) (*dto.RepositoryResponse, error) {
	r, err := s.githubService.GetRepository(ctx, username, repoName)
	if err != nil {
		return nil, err
	}
	return toRepositoryDTO(r), nil
}

func toRepositoryDTO(r *repo.Summary) *dto.RepositoryResponse {
	var pushedAt *string
	if !r.PushedAt.IsZero() {
		s := formatTime(r.PushedAt)
		pushedAt = &s
	}
	return &dto.RepositoryResponse{
		ID:              r.ID,
		Name:            r.Name,
		FullName:        r.FullName,
		Description:     r.Description,
		HTMLURL:         r.HTMLURL,
		CloneURL:        r.CloneURL,
		SSHURL:          r.SSHURL,
		Language:        r.Language,
		StargazersCount: r.StargazersCount,
		ForksCount:      r.ForksCount,
		OpenIssuesCount: r.OpenIssuesCount,
		CreatedAt:       formatTime(r.CreatedAt),
		UpdatedAt:       formatTime(r.UpdatedAt),
		PushedAt:        pushedAt,
		Private:         r.Private,
		Fork:            r.Fork,
	}
}
