package models

import "time"

type User struct {
	Login     string `json:"login"`
	ID        int64  `json:"id"`
	AvatarURL string `json:"avatar_url,omitempty"`
	HTMLURL   string `json:"html_url,omitempty"`
}

type UserProfile struct {
	User
	Name        string    `json:"name,omitempty"`
	Bio         *string   `json:"bio"`
	Blog        *string   `json:"blog"`
	Company     *string   `json:"company"`
	Location    *string   `json:"location"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

// * UserContributions aggregates what a user authored inside the org
type UserContributions struct {
	TotalCommits       int          `json:"total_commits"`
	TotalPRs           int          `json:"total_prs"`
	TotalIssues        int          `json:"total_issues"`
	ReposContributedTo []Repository `json:"repos_contributed_to"`
	RecentActivity     []Commit     `json:"recent_activity"`
}

type UserRecommendations struct {
	TopLanguages            []string     `json:"top_languages"`
	LanguageBasedIssues     []Issue      `json:"language_based_issues"`
	StarredRepoIssues       []Issue      `json:"starred_repo_issues"`
	SimilarContributorRepos []Repository `json:"similar_contributor_repos"`
}
