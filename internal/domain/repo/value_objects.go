package repo

import (
	"fmt"
	"strings"
)

// Listing defaults and bounds
const (
	DefaultPerPage = 30
	MaxPerPage     = 100
	DefaultPage    = 1
)

// Sort is the upstream sort key for a repository listing
type Sort string

const (
	SortCreated  Sort = "created"
	SortUpdated  Sort = "updated"
	SortPushed   Sort = "pushed"
	SortFullName Sort = "full_name"
)

// ParseSort validates a sort key, defaulting to updated when empty
func ParseSort(s string) (Sort, error) {
	switch Sort(s) {
	case "":
		return SortUpdated, nil
	case SortCreated, SortUpdated, SortPushed, SortFullName:
		return Sort(s), nil
	}
	return "", fmt.Errorf("sort must be one of created, updated, pushed, full_name")
}

// Direction is the upstream sort direction
type Direction string

const (
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// ParseDirection validates a direction, defaulting to desc when empty
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case "":
		return DirectionDesc, nil
	case DirectionAsc, DirectionDesc:
		return Direction(s), nil
	}
	return "", fmt.Errorf("direction must be asc or desc")
}

// ListOptions carries the validated parameters of a listing request
type ListOptions struct {
	Username  string
	PerPage   int
	Page      int
	Sort      Sort
	Direction Direction
}

// NewListOptions applies defaults and validates bounds. Zero perPage or page
// means "not supplied".
func NewListOptions(username string, perPage, page int, sort, direction string) (ListOptions, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return ListOptions{}, ErrInvalidListOptions("username is required")
	}

	if perPage == 0 {
		perPage = DefaultPerPage
	}
	if perPage < 1 || perPage > MaxPerPage {
		return ListOptions{}, ErrInvalidListOptions(fmt.Sprintf("per_page must be between 1 and %d", MaxPerPage))
	}

	if page == 0 {
		page = DefaultPage
	}
	if page < 1 {
		return ListOptions{}, ErrInvalidListOptions("page must be at least 1")
	}

	s, err := ParseSort(sort)
	if err != nil {
		return ListOptions{}, ErrInvalidListOptions(err.Error())
	}
	d, err := ParseDirection(direction)
	if err != nil {
		return ListOptions{}, ErrInvalidListOptions(err.Error())
	}

	return ListOptions{
		Username:  username,
		PerPage:   perPage,
		Page:      page,
		Sort:      s,
		Direction: d,
	}, nil
}
