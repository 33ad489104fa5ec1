package post

import (
	"context"
	"fmt"
	"math"
	"strings"
)

// List defaults and bounds
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
	RecentLimit  = 5
)

// SortField is a sortable post column
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
	SortByTitle     SortField = "title"
)

// SortOrder is the sort direction
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Filter restricts which posts a listing or count covers
type Filter struct {
	// Search is matched case-insensitively against title, content and summary
	Search    string
	Published *bool
}

// ListQuery is a validated page request over posts
type ListQuery struct {
	Filter
	Page      int
	Limit     int
	SortBy    SortField
	SortOrder SortOrder
}

// NewListQuery applies defaults and validates bounds. Zero page or limit
// means "not supplied".
func NewListQuery(page, limit int, search string, published *bool, sortBy, sortOrder string) (ListQuery, error) {
	if page == 0 {
		page = DefaultPage
	}
	if page < 1 {
		return ListQuery{}, ErrInvalidListQuery("page must be at least 1")
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 || limit > MaxLimit {
		return ListQuery{}, ErrInvalidListQuery(fmt.Sprintf("limit must be between 1 and %d", MaxLimit))
	}

	field := SortField(sortBy)
	switch field {
	case "":
		field = SortByCreatedAt
	case SortByCreatedAt, SortByUpdatedAt, SortByTitle:
	default:
		return ListQuery{}, ErrInvalidListQuery("sortBy must be one of createdAt, updatedAt, title")
	}

	order := SortOrder(strings.ToLower(sortOrder))
	switch order {
	case "":
		order = SortDesc
	case SortAsc, SortDesc:
	default:
		return ListQuery{}, ErrInvalidListQuery("sortOrder must be asc or desc")
	}

	return ListQuery{
		Filter:    Filter{Search: strings.TrimSpace(search), Published: published},
		Page:      page,
		Limit:     limit,
		SortBy:    field,
		SortOrder: order,
	}, nil
}

// Offset returns the number of rows skipped before this page. It saturates at
// math.MaxInt for pages too far out to address, which read as empty.
func (q ListQuery) Offset() int {
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}

// UpdateFields is a partial update; nil fields are left unchanged
type UpdateFields struct {
	Title     *Title
	Content   *string
	Summary   *string
	Slug      *Slug
	Published *bool
}

// NewUpdateFields validates the supplied fields. The slug is normalized the
// same way as on create.
func NewUpdateFields(title, content, summary, slug *string, published *bool) (UpdateFields, error) {
	var f UpdateFields
	if title != nil {
		t, err := NewTitle(*title)
		if err != nil {
			return UpdateFields{}, err
		}
		f.Title = &t
	}
	if content != nil {
		if err := ValidateContent(*content); err != nil {
			return UpdateFields{}, err
		}
		f.Content = content
	}
	if err := ValidateSummary(summary); err != nil {
		return UpdateFields{}, err
	}
	f.Summary = summary
	if slug != nil {
		s, err := NewSlug(*slug)
		if err != nil {
			return UpdateFields{}, err
		}
		f.Slug = &s
	}
	f.Published = published
	return f, nil
}

// PublishFields is the update restricted to the published flag
func PublishFields(published bool) UpdateFields {
	return UpdateFields{Published: &published}
}

// Repository defines the interface for post persistence
// This is defined in the domain layer, but implemented in infrastructure
type Repository interface {
	// Create inserts p and returns the stored row; a duplicate slug yields a conflict error
	Create(ctx context.Context, p *Post) (*Post, error)

	FindByID(ctx context.Context, id int64) (*Post, error)

	FindBySlug(ctx context.Context, slug Slug) (*Post, error)

	// FindMany returns one filtered, sorted page
	FindMany(ctx context.Context, q ListQuery) ([]*Post, error)

	// Count returns the number of posts matching f
	Count(ctx context.Context, f Filter) (int64, error)

	// Update applies a partial update and returns the stored row
	Update(ctx context.Context, id int64, f UpdateFields) (*Post, error)

	Delete(ctx context.Context, id int64) error

	CountByPublished(ctx context.Context, published bool) (int64, error)

	// FindRecent returns the newest posts by creation time
	FindRecent(ctx context.Context, limit int) ([]*Post, error)
}
