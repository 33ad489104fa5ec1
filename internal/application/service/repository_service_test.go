package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"chalee-api/internal/application/dto"
	"chalee-api/internal/application/service"
	"chalee-api/internal/domain/errs"
	"chalee-api/internal/domain/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRepositoryService_ListUserRepositories(t *testing.T) {
	gh := new(mockGitHubService)
	svc := service.NewRepositoryService(gh)
	ctx := context.Background()

	created := time.Date(2020, 5, 1, 12, 0, 0, 0, time.UTC)
	expectedOpts := repo.ListOptions{
		Username:  "octocat",
		PerPage:   2,
		Page:      1,
		Sort:      repo.SortUpdated,
		Direction: repo.DirectionDesc,
	}
	gh.On("ListUserRepositories", ctx, expectedOpts).Return(&repo.Page{
		Repos: []*repo.Summary{
			{ID: 1, Name: "a", FullName: "octocat/a", CreatedAt: created, UpdatedAt: created, PushedAt: created},
			{ID: 2, Name: "b", FullName: "octocat/b", CreatedAt: created, UpdatedAt: created},
		},
		Page:    1,
		PerPage: 2,
		HasNext: true,
	}, nil).Once()

	resp, err := svc.ListUserRepositories(ctx, "octocat", &dto.ListRepositoriesQuery{PerPage: intPtr(2)})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 2, resp.PerPage)
	assert.True(t, resp.HasNext)
	assert.False(t, resp.HasPrev)
	require.Len(t, resp.Repos, 2)
	assert.Equal(t, "2020-05-01T12:00:00Z", resp.Repos[0].CreatedAt)
	require.NotNil(t, resp.Repos[0].PushedAt)
	assert.Nil(t, resp.Repos[1].PushedAt)
	gh.AssertExpectations(t)
}

func TestRepositoryService_ListUserRepositories_InvalidPerPage(t *testing.T) {
	gh := new(mockGitHubService)
	svc := service.NewRepositoryService(gh)

	_, err := svc.ListUserRepositories(context.Background(), "octocat", &dto.ListRepositoriesQuery{PerPage: intPtr(150)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrValidation))
	gh.AssertNotCalled(t, "ListUserRepositories", mock.Anything, mock.Anything)
}

func TestRepositoryService_PropagatesDomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind error
	}{
		{"not found", repo.ErrUserNotFound("ghost"), errs.ErrNotFound},
		{"rate limited", repo.ErrRateLimited(nil), errs.ErrRateLimited},
		{"upstream", repo.ErrUpstream("list repositories", errors.New("timeout")), errs.ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gh := new(mockGitHubService)
			svc := service.NewRepositoryService(gh)
			gh.On("ListUserRepositories", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			_, err := svc.ListUserRepositories(context.Background(), "ghost", &dto.ListRepositoriesQuery{})
			assert.True(t, errors.Is(err, tt.wantKind))
		})
	}
}

func TestRepositoryService_GetRepository(t *testing.T) {
	gh := new(mockGitHubService)
	svc := service.NewRepositoryService(gh)
	ctx := context.Background()

	lang := "Go"
	gh.On("GetRepository", ctx, "octocat", "hello").Return(&repo.Summary{
		ID: 7, Name: "hello", FullName: "octocat/hello", Language: &lang, StargazersCount: 3,
	}, nil).Once()
	gh.On("GetRepository", ctx, "octocat", "missing").Return(nil, repo.ErrRepositoryNotFound("octocat", "missing")).Once()

	resp, err := svc.GetRepository(ctx, "octocat", "hello")
	require.NoError(t, err)
	assert.Equal(t, "octocat/hello", resp.FullName)
	assert.Equal(t, "Go", *resp.Language)
	assert.Equal(t, 3, resp.StargazersCount)

	_, err = svc.GetRepository(ctx, "octocat", "missing")
	assert.True(t, errors.Is(err, errs.ErrNotFound))
	gh.AssertExpectations(t)
}
