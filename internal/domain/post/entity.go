package post

import (
	"fmt"
	"time"
)

// Post is a blog article. The id is assigned by the store; a Post built with
// NewPost has id 0 until it is persisted.
type Post struct {
	id        int64
	title     Title
	content   string
	summary   *string
	slug      Slug
	published bool
	createdAt time.Time
	updatedAt time.Time
}

// NewPost creates a new, not yet persisted Post
func NewPost(title, content string, summary *string, slug string, published bool) (*Post, error) {
	t, err := NewTitle(title)
	if err != nil {
		return nil, err
	}
	if err := ValidateContent(content); err != nil {
		return nil, err
	}
	if err := ValidateSummary(summary); err != nil {
		return nil, err
	}
	s, err := NewSlug(slug)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Post{
		title:     t,
		content:   content,
		summary:   summary,
		slug:      s,
		published: published,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstitute recreates a Post entity from persistence
func Reconstitute(
	id int64,
	title, content string,
	summary *string,
	slug string,
	published bool,
	createdAt, updatedAt time.Time,
) (*Post, error) {
	t, err := NewTitle(title)
	if err != nil {
		return nil, fmt.Errorf("invalid title: %w", err)
	}
	s, err := NewSlug(slug)
	if err != nil {
		return nil, fmt.Errorf("invalid slug: %w", err)
	}

	return &Post{
		id:        id,
		title:     t,
		content:   content,
		summary:   summary,
		slug:      s,
		published: published,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ApplyUpdate overwrites every field set in f
func (p *Post) ApplyUpdate(f UpdateFields) {
	if f.Title != nil {
		p.title = *f.Title
	}
	if f.Content != nil {
		p.content = *f.Content
	}
	if f.Summary != nil {
		s := *f.Summary
		p.summary = &s
	}
	if f.Slug != nil {
		p.slug = *f.Slug
	}
	if f.Published != nil {
		p.published = *f.Published
	}
	p.updatedAt = time.Now().UTC()
}

// Getters

func (p *Post) ID() int64 {
	return p.id
}

func (p *Post) Title() Title {
	return p.title
}

func (p *Post) Content() string {
	return p.content
}

func (p *Post) Summary() *string {
	return p.summary
}

func (p *Post) Slug() Slug {
	return p.slug
}

func (p *Post) IsPublished() bool {
	return p.published
}

func (p *Post) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Post) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Post) String() string {
	return fmt.Sprintf("Post{id: %d, slug: %s, published: %t}", p.id, p.slug, p.published)
}
