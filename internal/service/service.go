package service

import (
	"context"
	"time"

	"github.com/KOFI-GYIMAH/contribution-tracker/internal/github"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/models"
)

// GitHubClient is the slice of the API access layer the services depend on.
// *github.Client implements it.
type GitHubClient interface {
	CanMakeRequest() bool
	HasToken() bool

	SearchRepositories(ctx context.Context, opts github.RepoSearchOptions) (*models.SearchResult, error)
	GetRepository(ctx context.Context, owner, name string) (*models.Repository, error)
	GetRateLimit(ctx context.Context) (*models.RateLimits, error)
	ValidateToken(ctx context.Context) (*models.TokenStatus, error)

	ListIssues(ctx context.Context, owner, repo string, opts github.IssueListOptions) ([]models.Issue, error)
	ListGoodFirstIssues(ctx context.Context, owner, repo string, limit int) ([]models.Issue, error)
	ListPullRequests(ctx context.Context, owner, repo string, opts github.PullRequestListOptions) ([]models.PullRequest, error)
	ListCommits(ctx context.Context, owner, repo string, opts github.CommitListOptions) ([]models.Commit, error)
	ListContributors(ctx context.Context, owner, repo string, page, perPage int) ([]models.Contributor, error)

	GetUserProfile(ctx context.Context, username string) (*models.UserProfile, error)
	SearchCommits(ctx context.Context, query string, opts github.SearchOptions) (*github.CommitSearchResult, error)
	SearchIssues(ctx context.Context, query string, opts github.SearchOptions) (*github.IssueSearchResult, error)
	ListStarred(ctx context.Context, username string, page, perPage int) ([]models.Repository, error)
}

type Option func(*options)

type options struct {
	now          func() time.Time
	popularRepos []string
}

// DefaultPopularRepos seeds the issue explorer when no list is configured.
var DefaultPopularRepos = []string{
	"snapcraft", "ubuntu-image", "multipass", "juju", "lxd",
	"snapd", "ubuntu-core-desktop", "microk8s", "charmed-kubernetes",
}

// WithClock overrides the time source used for date qualifiers and
// predicate windows.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithPopularRepos sets the org repositories the issue explorer draws from.
func WithPopularRepos(names ...string) Option {
	return func(o *options) {
		if len(names) > 0 {
			o.popularRepos = names
		}
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now, popularRepos: DefaultPopularRepos}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

var _ GitHubClient = (*github.Client)(nil)
