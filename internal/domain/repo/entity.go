package repo

import "time"

// Summary is the read-only view of a GitHub repository returned to clients.
// It mirrors the upstream payload and is never persisted.
type Summary struct {
	ID              int64
	Name            string
	FullName        string
	Description     *string
	HTMLURL         string
	CloneURL        string
	SSHURL          string
	Language        *string
	StargazersCount int
	ForksCount      int
	OpenIssuesCount int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	PushedAt        time.Time
	Private         bool
	Fork            bool
}

// Page is one page of a user's repository listing.
type Page struct {
	Repos   []*Summary
	Page    int
	PerPage int
	HasNext bool
	HasPrev bool
}

// TotalCount is the number of repositories on this page. The upstream listing
// endpoint does not report a grand total.
func (p *Page) TotalCount() int {
	return len(p.Repos)
}
