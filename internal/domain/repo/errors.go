package repo

import (
	"fmt"

	"chalee-api/internal/domain/errs"
)

func ErrUserNotFound(username string) error {
	return errs.New(errs.ErrNotFound, "GITHUB_USER_NOT_FOUND",
		fmt.Sprintf("GitHub user %s not found", username), nil)
}

func ErrRepositoryNotFound(username, repoName string) error {
	return errs.New(errs.ErrNotFound, "GITHUB_REPOSITORY_NOT_FOUND",
		fmt.Sprintf("repository %s/%s not found", username, repoName), nil)
}

func ErrRateLimited(err error) error {
	return errs.New(errs.ErrRateLimited, "GITHUB_RATE_LIMITED",
		"GitHub API rate limit exceeded", err)
}

func ErrUpstream(operation string, err error) error {
	return errs.New(errs.ErrUpstream, "GITHUB_UPSTREAM_FAILURE",
		fmt.Sprintf("failed to %s from GitHub", operation), err)
}

func ErrInvalidListOptions(message string) error {
	return errs.New(errs.ErrValidation, "INVALID_LIST_OPTIONS", message, nil)
}
