package post

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field limits
const (
	MaxTitleLength   = 255
	MaxSlugLength    = 255
	MaxSummaryLength = 500
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Title is a value object representing a post title
type Title struct {
	value string
}

// NewTitle creates a new Title with validation
func NewTitle(title string) (Title, error) {
	n := utf8.RuneCountInString(title)
	if n == 0 {
		return Title{}, ErrInvalidPost("title cannot be empty")
	}
	if n > MaxTitleLength {
		return Title{}, ErrInvalidPost(fmt.Sprintf("title cannot exceed %d characters", MaxTitleLength))
	}
	return Title{value: title}, nil
}

func (t Title) String() string {
	return t.value
}

// Slug is a value object representing the unique URL key of a post
type Slug struct {
	value string
}

// NormalizeSlug lower-cases s and replaces every whitespace run with a single dash
func NormalizeSlug(s string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(s), "-")
}

// NewSlug normalizes and validates a slug
func NewSlug(slug string) (Slug, error) {
	slug = NormalizeSlug(slug)
	n := utf8.RuneCountInString(slug)
	if n == 0 {
		return Slug{}, ErrInvalidPost("slug cannot be empty")
	}
	if n > MaxSlugLength {
		return Slug{}, ErrInvalidPost(fmt.Sprintf("slug cannot exceed %d characters", MaxSlugLength))
	}
	return Slug{value: slug}, nil
}

func (s Slug) String() string {
	return s.value
}

func (s Slug) Equals(other Slug) bool {
	return s.value == other.value
}

// ValidateContent checks that content is present
func ValidateContent(content string) error {
	if content == "" {
		return ErrInvalidPost("content cannot be empty")
	}
	return nil
}

// ValidateSummary checks the optional summary length
func ValidateSummary(summary *string) error {
	if summary != nil && utf8.RuneCountInString(*summary) > MaxSummaryLength {
		return ErrInvalidPost(fmt.Sprintf("summary cannot exceed %d characters", MaxSummaryLength))
	}
	return nil
}
