package service

import (
	"context"

	"github.com/KOFI-GYIMAH/contribution-tracker/internal/github"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockGitHubClient struct {
	mock.Mock
}

func (m *MockGitHubClient) CanMakeRequest() bool {
	return m.Called().Bool(0)
}

func (m *MockGitHubClient) HasToken() bool {
	return m.Called().Bool(0)
}

func (m *MockGitHubClient) SearchRepositories(ctx context.Context, opts github.RepoSearchOptions) (*models.SearchResult, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SearchResult), args.Error(1)
}

func (m *MockGitHubClient) GetRepository(ctx context.Context, owner, name string) (*models.Repository, error) {
	args := m.Called(ctx, owner, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Repository), args.Error(1)
}

func (m *MockGitHubClient) GetRateLimit(ctx context.Context) (*models.RateLimits, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RateLimits), args.Error(1)
}

func (m *MockGitHubClient) ValidateToken(ctx context.Context) (*models.TokenStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenStatus), args.Error(1)
}

func (m *MockGitHubClient) ListIssues(ctx context.Context, owner, repo string, opts github.IssueListOptions) ([]models.Issue, error) {
	args := m.Called(ctx, owner, repo, opts)
	return args.Get(0).([]models.Issue), args.Error(1)
}

func (m *MockGitHubClient) ListGoodFirstIssues(ctx context.Context, owner, repo string, limit int) ([]models.Issue, error) {
	args := m.Called(ctx, owner, repo, limit)
	return args.Get(0).([]models.Issue), args.Error(1)
}

func (m *MockGitHubClient) ListPullRequests(ctx context.Context, owner, repo string, opts github.PullRequestListOptions) ([]models.PullRequest, error) {
	args := m.Called(ctx, owner, repo, opts)
	return args.Get(0).([]models.PullRequest), args.Error(1)
}

func (m *MockGitHubClient) ListCommits(ctx context.Context, owner, repo string, opts github.CommitListOptions) ([]models.Commit, error) {
	args := m.Called(ctx, owner, repo, opts)
	return args.Get(0).([]models.Commit), args.Error(1)
}

func (m *MockGitHubClient) ListContributors(ctx context.Context, owner, repo string, page, perPage int) ([]models.Contributor, error) {
	args := m.Called(ctx, owner, repo, page, perPage)
	return args.Get(0).([]models.Contributor), args.Error(1)
}

func (m *MockGitHubClient) GetUserProfile(ctx context.Context, username string) (*models.UserProfile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockGitHubClient) SearchCommits(ctx context.Context, query string, opts github.SearchOptions) (*github.CommitSearchResult, error) {
	args := m.Called(ctx, query, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.CommitSearchResult), args.Error(1)
}

func (m *MockGitHubClient) SearchIssues(ctx context.Context, query string, opts github.SearchOptions) (*github.IssueSearchResult, error) {
	args := m.Called(ctx, query, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*github.IssueSearchResult), args.Error(1)
}

func (m *MockGitHubClient) ListStarred(ctx context.Context, username string, page, perPage int) ([]models.Repository, error) {
	args := m.Called(ctx, username, page, perPage)
	return args.Get(0).([]models.Repository), args.Error(1)
}
