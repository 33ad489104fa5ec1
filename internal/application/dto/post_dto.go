package dto

// CreatePostRequest represents the request to create a post
type CreatePostRequest struct {
	Title   string  `json:"title" binding:"required,min=1,max=255" example:"Getting Started with Go"`
	Content string  `json:"content" binding:"required,min=1" example:"This is a comprehensive guide about Go..."`
	Summary *string `json:"summary" binding:"omitempty,max=500" example:"A guide for beginners"`
	// Slug is lower-cased and whitespace runs become "-" before it is stored
	Slug      string `json:"slug" binding:"required,min=1,max=255" example:"getting-started-with-go"`
	Published *bool  `json:"published" example:"false"`
}

// UpdatePostRequest represents a partial update; omitted fields are left unchanged
type UpdatePostRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1,max=255"`
	Content   *string `json:"content" binding:"omitempty,min=1"`
	Summary   *string `json:"summary" binding:"omitempty,max=500"`
	Slug      *string `json:"slug" binding:"omitempty,min=1,max=255"`
	Published *bool   `json:"published"`
}

// ListPostsQuery represents the query parameters of the post listing
type ListPostsQuery struct {
	Page      *int   `form:"page" binding:"omitempty,min=1"`
	Limit     *int   `form:"limit" binding:"omitempty,min=1,max=100"`
	Search    string `form:"search"`
	Published *bool  `form:"published"`
	SortBy    string `form:"sortBy" binding:"omitempty,oneof=createdAt updatedAt title"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// PostResponse represents a post in API responses
type PostResponse struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Summary   *string `json:"summary"`
	Slug      string  `json:"slug"`
	Published bool    `json:"published"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// PostListResponse represents a paginated list of posts
type PostListResponse struct {
	Posts      []*PostResponse    `json:"posts"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// PostCountsResponse holds the collection counters
type PostCountsResponse struct {
	Total       int64 `json:"total"`
	Published   int64 `json:"published"`
	Unpublished int64 `json:"unpublished"`
}

// RecentPostResponse is the short form of a post used in stats
type RecentPostResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Published bool   `json:"published"`
	CreatedAt string `json:"createdAt"`
}

// PostStatsResponse represents the post statistics
type PostStatsResponse struct {
	Stats       PostCountsResponse    `json:"stats"`
	RecentPosts []*RecentPostResponse `json:"recentPosts"`
}
