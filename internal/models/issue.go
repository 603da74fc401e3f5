package models

import "time"

type Label struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
}

type Issue struct {
	ID            int64      `json:"id"`
	Number        int        `json:"number"`
	Title         string     `json:"title"`
	Body          string     `json:"body,omitempty"`
	State         string     `json:"state"`
	User          User       `json:"user"`
	Labels        []Label    `json:"labels"`
	Assignees     []User     `json:"assignees"`
	Comments      int        `json:"comments"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
	HTMLURL       string     `json:"html_url"`
	RepositoryURL string     `json:"repository_url,omitempty"`
}

type PullRequest struct {
	Issue
	Merged       bool       `json:"merged"`
	MergedAt     *time.Time `json:"merged_at,omitempty"`
	Draft        bool       `json:"draft"`
	Additions    int        `json:"additions"`
	Deletions    int        `json:"deletions"`
	ChangedFiles int        `json:"changed_files"`
}

// * IssueExploration is the org-wide starting point for new contributors
type IssueExploration struct {
	Issues        []Issue      `json:"issues"`
	FeaturedRepos []Repository `json:"featured_repos"`
}
