package github

import (
	"time"

	"github.com/KOFI-GYIMAH/contribution-tracker/internal/models"
)

const (
	GoodFirstIssueLabel = "good first issue"

	defaultPerPage = 30
	maxPerPage     = 100
)

type RepoSearchOptions struct {
	Query   string
	Sort    string
	Order   string
	Page    int
	PerPage int
}

type IssueListOptions struct {
	State     string
	Labels    []string
	Sort      string
	Direction string
	Page      int
	PerPage   int
}

type PullRequestListOptions struct {
	State     string
	Sort      string
	Direction string
	Page      int
	PerPage   int
}

type CommitListOptions struct {
	Since   time.Time
	Until   time.Time
	Page    int
	PerPage int
}

type SearchOptions struct {
	Sort    string
	Order   string
	Page    int
	PerPage int
}

type IssueSearchResult struct {
	TotalCount int            `json:"total_count"`
	Items      []models.Issue `json:"items"`
}

// CommitSearchResult carries the matched commits plus the distinct
// repositories they belong to, in first-seen order.
type CommitSearchResult struct {
	TotalCount   int                 `json:"total_count"`
	Items        []models.Commit     `json:"items"`
	Repositories []models.Repository `json:"repositories"`
}

func perPage(n int) int {
	if n <= 0 {
		return defaultPerPage
	}
	return min(n, maxPerPage)
}

func page(n int) int {
	return max(n, 1)
}
