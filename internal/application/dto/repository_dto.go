package dto

// ListRepositoriesQuery represents the query parameters of a user repository listing
type ListRepositoriesQuery struct {
	PerPage   *int   `form:"per_page" binding:"omitempty,min=1,max=100"`
	Page      *int   `form:"page" binding:"omitempty,min=1"`
	Sort      string `form:"sort" binding:"omitempty,oneof=created updated pushed full_name"`
	Direction string `form:"direction" binding:"omitempty,oneof=asc desc"`
}

// RepositoryResponse represents repository data in API responses
type RepositoryResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	FullName        string  `json:"full_name"`
	Description     *string `json:"description"`
	HTMLURL         string  `json:"html_url"`
	CloneURL        string  `json:"clone_url"`
	SSHURL          string  `json:"ssh_url"`
	Language        *string `json:"language"`
	StargazersCount int     `json:"stargazers_count"`
	ForksCount      int     `json:"forks_count"`
	OpenIssuesCount int     `json:"open_issues_count"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
	PushedAt        *string `json:"pushed_at"`
	Private         bool    `json:"private"`
	Fork            bool    `json:"fork"`
}

// RepositoryListResponse represents one page of a user's repositories.
// TotalCount is the number of repositories on this page.
type RepositoryListResponse struct {
	Repos      []*RepositoryResponse `json:"repos"`
	TotalCount int                   `json:"total_count"`
	Page       int                   `json:"page"`
	PerPage    int                   `json:"per_page"`
	HasNext    bool                  `json:"has_next"`
	HasPrev    bool                  `json:"has_prev"`
}
