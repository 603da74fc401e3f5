package models

import "time"

// * Commit is a GitHub commit. Author is nil when the commit is not linked to
// * a GitHub account.
type Commit struct {
	SHA        string    `json:"sha"`
	Message    string    `json:"message"`
	Author     *User     `json:"author"`
	AuthorName string    `json:"author_name"`
	AuthoredAt time.Time `json:"authored_at"`
	HTMLURL    string    `json:"html_url"`
	Repository string    `json:"repository,omitempty"`
}
