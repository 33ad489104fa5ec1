package post

import (
	"fmt"

	"chalee-api/internal/domain/errs"
)

func ErrPostNotFound(id int64) error {
	return errs.New(errs.ErrNotFound, "POST_NOT_FOUND",
		fmt.Sprintf("post with ID %d not found", id), nil)
}

func ErrPostSlugNotFound(slug string) error {
	return errs.New(errs.ErrNotFound, "POST_NOT_FOUND",
		fmt.Sprintf("post with slug %s not found", slug), nil)
}

func ErrSlugConflict(slug string, err error) error {
	return errs.New(errs.ErrConflict, "POST_SLUG_CONFLICT",
		fmt.Sprintf("slug %s already exists, please choose another slug", slug), err)
}

func ErrInvalidPost(message string) error {
	return errs.New(errs.ErrValidation, "INVALID_POST", message, nil)
}

func ErrInvalidListQuery(message string) error {
	return errs.New(errs.ErrValidation, "INVALID_LIST_QUERY", message, nil)
}
