package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/KOFI-GYIMAH/contribution-tracker/internal/cache"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/filter"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/github"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/models"
	"github.com/KOFI-GYIMAH/contribution-tracker/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const (
	highlyActiveWindow     = 7 * 24 * time.Hour
	highlyActiveMinCommits = 3
	highlyActiveCommitCap  = 10

	maintainedWindow    = 30 * 24 * time.Hour
	maintainedMinStars  = 10
	maintainedMinForks  = 2
	repositoryDetailTTL = cache.DefaultTTL

	exploreIssuesPerRepo = 5
	featuredRepoCount    = 12
)

type RepositoryService struct {
	githubClient GitHubClient
	cache        *cache.Cache
	org          string
	now          func() time.Time
	popularRepos []string
}

func NewRepositoryService(githubClient GitHubClient, c *cache.Cache, org string, opts ...Option) *RepositoryService {
	o := newOptions(opts)
	return &RepositoryService{
		githubClient: githubClient,
		cache:        c,
		org:          org,
		now:          o.now,
		popularRepos: o.popularRepos,
	}
}

// FetchCanonicalRepos runs the simple search path: org scope, optional term
// and language, provider-native sort. A name sort is applied to the fetched
// page afterwards.
func (s *RepositoryService) FetchCanonicalRepos(ctx context.Context, page, perPage int, opts filter.Options) (*models.SearchResult, error) {
	simple := filter.Options{
		Search:    opts.Search,
		Language:  opts.Language,
		SortBy:    opts.SortBy,
		SortOrder: opts.SortOrder,
	}
	return s.search(ctx, page, perPage, simple)
}

// FetchCanonicalReposAdvanced compiles every criterion of opts into the
// search query and, when a contributor-friendly bucket is selected, tests
// each returned repository against it. The total of an enriched result is
// the number of repositories that passed, not the provider's total.
func (s *RepositoryService) FetchCanonicalReposAdvanced(ctx context.Context, page, perPage int, opts filter.Options) (*models.SearchResult, error) {
	result, err := s.search(ctx, page, perPage, opts)
	if err != nil {
		return nil, err
	}

	if opts.ContributorFriendly == filter.FriendlyAny {
		return result, nil
	}
	if !s.githubClient.CanMakeRequest() {
		logger.Warn("Rate limit low, skipping %s enrichment for %d repositories", opts.ContributorFriendly, len(result.Items))
		return result, nil
	}

	filtered := make([]models.Repository, 0, len(result.Items))
	for _, repo := range result.Items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ok, err := s.isContributorFriendly(ctx, repo, opts.ContributorFriendly)
		if err != nil {
			logger.Warn("Failed to check %s for %s: %v", opts.ContributorFriendly, repo.FullName, err)
			continue
		}
		if ok {
			filtered = append(filtered, repo)
		}
	}

	return &models.SearchResult{
		TotalCount: len(filtered),
		Items:      filtered,
	}, nil
}

func (s *RepositoryService) search(ctx context.Context, page, perPage int, opts filter.Options) (*models.SearchResult, error) {
	q := filter.Compile(s.org, opts, s.now())
	logger.Debug("Searching repositories: %s", q.Q)

	result, err := s.githubClient.SearchRepositories(ctx, github.RepoSearchOptions{
		Query:   q.Q,
		Sort:    q.Sort,
		Order:   q.Order,
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return nil, err
	}

	if opts.SortBy == filter.SortName {
		filter.SortByName(result.Items, opts.SortOrder)
	}
	return result, nil
}

// isContributorFriendly evaluates the predicate for bucket, consulting and
// filling the predicate cache. A cache miss while quota is low excludes the
// repository without making a call.
func (s *RepositoryService) isContributorFriendly(ctx context.Context, repo models.Repository, bucket filter.Friendliness) (bool, error) {
	key := fmt.Sprintf("contributor:%s:%s", bucket, repo.FullName)
	if ok, hit := cache.Lookup[bool](s.cache, key); hit {
		return ok, nil
	}

	if !s.githubClient.CanMakeRequest() {
		logger.Debug("Rate limit low, excluding %s without checking", repo.FullName)
		return false, nil
	}

	var (
		ok  bool
		err error
	)
	switch bucket {
	case filter.FriendlyGoodFirstIssues:
		ok, err = s.hasGoodFirstIssues(ctx, repo)
	case filter.FriendlyHighlyActive:
		ok, err = s.isHighlyActive(ctx, repo)
	case filter.FriendlyWellMaintained:
		ok = s.isWellMaintained(repo)
	default:
		return true, nil
	}
	if err != nil {
		return false, err
	}

	s.cache.Set(key, ok, cache.PredicateTTL)
	return ok, nil
}

func (s *RepositoryService) hasGoodFirstIssues(ctx context.Context, repo models.Repository) (bool, error) {
	issues, err := s.githubClient.ListGoodFirstIssues(ctx, repo.Owner, repo.Name, 1)
	if err != nil {
		return false, err
	}
	return len(issues) > 0, nil
}

func (s *RepositoryService) isHighlyActive(ctx context.Context, repo models.Repository) (bool, error) {
	since := s.now().Add(-highlyActiveWindow)
	key := fmt.Sprintf("commits:%s:%s", repo.FullName, since.UTC().Format("2006-01-02"))

	// * the load is shared with concurrent callers, so one caller leaving must not cancel it
	shared := context.WithoutCancel(ctx)
	v, err := s.cache.Remember(key, cache.PredicateTTL, func() (any, error) {
		return s.githubClient.ListCommits(shared, repo.Owner, repo.Name, github.CommitListOptions{
			Since:   since,
			PerPage: highlyActiveCommitCap,
		})
	})
	if err != nil {
		return false, err
	}

	commits, _ := v.([]models.Commit)
	return len(commits) >= highlyActiveMinCommits, nil
}

func (s *RepositoryService) isWellMaintained(repo models.Repository) bool {
	recent := s.now().Sub(repo.UpdatedAt) <= maintainedWindow
	return recent && repo.Stars >= maintainedMinStars && repo.Forks >= maintainedMinForks
}

// GetRepository returns repository details, served from cache for five minutes.
func (s *RepositoryService) GetRepository(ctx context.Context, owner, name string) (*models.Repository, error) {
	shared := context.WithoutCancel(ctx)
	v, err := s.cache.Remember("repo:"+owner+"/"+name, repositoryDetailTTL, func() (any, error) {
		return s.githubClient.GetRepository(shared, owner, name)
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Repository), nil
}

// ExploreIssues gathers good first issues from the popular org repositories,
// newest first, along with the most starred org repositories. A repository
// whose issues cannot be listed is skipped.
func (s *RepositoryService) ExploreIssues(ctx context.Context) (*models.IssueExploration, error) {
	perRepo := make([][]models.Issue, len(s.popularRepos))

	var g errgroup.Group
	for i, name := range s.popularRepos {
		g.Go(func() error {
			issues, err := s.githubClient.ListGoodFirstIssues(ctx, s.org, name, exploreIssuesPerRepo)
			if err != nil {
				logger.Warn("Failed to list good first issues for %s/%s: %v", s.org, name, err)
				return nil
			}
			perRepo[i] = issues
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	issues := []models.Issue{}
	for _, batch := range perRepo {
		issues = append(issues, batch...)
	}
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].CreatedAt.After(issues[j].CreatedAt)
	})

	featured, err := s.FetchCanonicalRepos(ctx, 1, featuredRepoCount, filter.Options{SortBy: filter.SortStars, SortOrder: filter.Desc})
	if err != nil {
		return nil, err
	}

	return &models.IssueExploration{Issues: issues, FeaturedRepos: featured.Items}, nil
}

func (s *RepositoryService) ListIssues(ctx context.Context, owner, name string, opts github.IssueListOptions) ([]models.Issue, error) {
	return s.githubClient.ListIssues(ctx, owner, name, opts)
}

func (s *RepositoryService) ListGoodFirstIssues(ctx context.Context, owner, name string, limit int) ([]models.Issue, error) {
	return s.githubClient.ListGoodFirstIssues(ctx, owner, name, limit)
}

func (s *RepositoryService) ListPullRequests(ctx context.Context, owner, name string, opts github.PullRequestListOptions) ([]models.PullRequest, error) {
	return s.githubClient.ListPullRequests(ctx, owner, name, opts)
}

func (s *RepositoryService) ListCommits(ctx context.Context, owner, name string, opts github.CommitListOptions) ([]models.Commit, error) {
	return s.githubClient.ListCommits(ctx, owner, name, opts)
}

func (s *RepositoryService) ListContributors(ctx context.Context, owner, name string, page, perPage int) ([]models.Contributor, error) {
	return s.githubClient.ListContributors(ctx, owner, name, page, perPage)
}

func (s *RepositoryService) GetRateLimit(ctx context.Context) (*models.RateLimits, error) {
	return s.githubClient.GetRateLimit(ctx)
}

func (s *RepositoryService) ValidateToken(ctx context.Context) (*models.TokenStatus, error) {
	return s.githubClient.ValidateToken(ctx)
}

func (s *RepositoryService) CacheStats() cache.Stats {
	return s.cache.Stats()
}
