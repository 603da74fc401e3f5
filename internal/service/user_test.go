package service

import (
	"context"
	"errors"
	"testing"

	"github.com/KOFI-GYIMAH/contribution-tracker/internal/github"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var commitSearch = github.SearchOptions{Sort: "author-date", Order: "desc", PerPage: 100}

func langRepo(name, language string, stars int) models.Repository {
	r := repo(name)
	r.Language = &language
	r.Stars = stars
	return r
}

func TestFetchUserContributions(t *testing.T) {
	m := new(MockGitHubClient)
	service := NewUserService(m, "canonical")

	commits := make([]models.Commit, 12)
	for i := range commits {
		commits[i] = models.Commit{SHA: string(rune('a' + i))}
	}

	m.On("SearchCommits", mock.Anything, "author:alice org:canonical", commitSearch).Return(&github.CommitSearchResult{
		TotalCount:   42,
		Items:        commits,
		Repositories: []models.Repository{repo("lxd"), repo("juju")},
	}, nil)
	m.On("SearchIssues", mock.Anything, "author:alice org:canonical type:pr", github.SearchOptions{PerPage: 1}).
		Return(&github.IssueSearchResult{TotalCount: 7}, nil)
	m.On("SearchIssues", mock.Anything, "author:alice org:canonical type:issue", github.SearchOptions{PerPage: 1}).
		Return(&github.IssueSearchResult{TotalCount: 3}, nil)

	got, err := service.FetchUserContributions(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, 42, got.TotalCommits)
	assert.Equal(t, 7, got.TotalPRs)
	assert.Equal(t, 3, got.TotalIssues)
	assert.Equal(t, []string{"lxd", "juju"}, names(got.ReposContributedTo))
	assert.Len(t, got.RecentActivity, 10)
	assert.Equal(t, "a", got.RecentActivity[0].SHA)
	m.AssertExpectations(t)
}

func TestFetchUserContributions_Error(t *testing.T) {
	m := new(MockGitHubClient)
	service := NewUserService(m, "canonical")
	boom := errors.New("Validation Failed")

	m.On("SearchCommits", mock.Anything, mock.Anything, mock.Anything).Return(&github.CommitSearchResult{}, nil)
	m.On("SearchIssues", mock.Anything, "author:alice org:canonical type:pr", mock.Anything).Return(nil, boom)
	m.On("SearchIssues", mock.Anything, "author:alice org:canonical type:issue", mock.Anything).
		Return(&github.IssueSearchResult{}, nil).Maybe()

	got, err := service.FetchUserContributions(context.Background(), "alice")

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, got)
}

func TestFetchUserRecommendations(t *testing.T) {
	m := new(MockGitHubClient)
	service := NewUserService(m, "canonical")

	m.On("SearchCommits", mock.Anything, "author:alice org:canonical", commitSearch).Return(&github.CommitSearchResult{
		Repositories: []models.Repository{
			langRepo("juju", "Go", 2000),
			langRepo("lxd", "Go", 4000),
			langRepo("charmcraft", "Python", 100),
		},
	}, nil)

	m.On("SearchIssues", mock.Anything, `org:canonical is:issue is:open label:"good first issue" language:Go`, mock.Anything).
		Return(&github.IssueSearchResult{TotalCount: 1, Items: []models.Issue{{Number: 1}}}, nil)
	m.On("SearchIssues", mock.Anything, `org:canonical is:issue is:open label:"good first issue" language:Python`, mock.Anything).
		Return(nil, errors.New("Failed to fetch issues"))

	other := repo("dotfiles")
	other.Owner, other.FullName = "someone", "someone/dotfiles"
	m.On("ListStarred", mock.Anything, "alice", 1, 100).Return([]models.Repository{repo("snapd"), other, repo("pebble")}, nil)
	m.On("ListGoodFirstIssues", mock.Anything, "canonical", "snapd", 3).Return([]models.Issue{{Number: 2}}, nil)
	m.On("ListGoodFirstIssues", mock.Anything, "canonical", "pebble", 3).Return([]models.Issue{{Number: 3}}, nil)

	m.On("SearchRepositories", mock.Anything, github.RepoSearchOptions{
		Query: "org:canonical language:Go", Sort: "stars", Order: "desc", PerPage: 10,
	}).Return(&models.SearchResult{Items: []models.Repository{
		langRepo("lxd", "Go", 4000),
		langRepo("pebble", "Go", 150),
	}}, nil)
	m.On("SearchRepositories", mock.Anything, github.RepoSearchOptions{
		Query: "org:canonical language:Python", Sort: "stars", Order: "desc", PerPage: 10,
	}).Return(&models.SearchResult{Items: []models.Repository{
		langRepo("cloud-init", "Python", 3000),
	}}, nil)

	got, err := service.FetchUserRecommendations(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Python"}, got.TopLanguages)
	require.Len(t, got.LanguageBasedIssues, 1, "a failed language search leaves the rest intact")
	assert.Equal(t, 1, got.LanguageBasedIssues[0].Number)
	require.Len(t, got.StarredRepoIssues, 2)
	assert.Equal(t, 2, got.StarredRepoIssues[0].Number)
	assert.Equal(t, 3, got.StarredRepoIssues[1].Number)
	assert.Equal(t, []string{"cloud-init", "pebble"}, names(got.SimilarContributorRepos))
	m.AssertNotCalled(t, "ListGoodFirstIssues", mock.Anything, "someone", "dotfiles", 3)
}

func TestFetchUserRecommendations_NoContributions(t *testing.T) {
	m := new(MockGitHubClient)
	service := NewUserService(m, "canonical")

	m.On("SearchCommits", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("Validation Failed"))
	m.On("ListStarred", mock.Anything, "ghost", 1, 100).Return([]models.Repository{}, nil)

	got, err := service.FetchUserRecommendations(context.Background(), "ghost")

	require.NoError(t, err)
	assert.Empty(t, got.TopLanguages)
	assert.Empty(t, got.LanguageBasedIssues)
	assert.Empty(t, got.StarredRepoIssues)
	assert.Empty(t, got.SimilarContributorRepos)
	m.AssertNotCalled(t, "SearchIssues", mock.Anything, mock.Anything, mock.Anything)
	m.AssertNotCalled(t, "SearchRepositories", mock.Anything, mock.Anything)
}

func TestTopLanguages(t *testing.T) {
	repos := []models.Repository{
		langRepo("a", "Rust", 0),
		langRepo("b", "Go", 0),
		langRepo("c", "Go", 0),
		langRepo("d", "C", 0),
		langRepo("e", "Python", 0),
		repo("no-language"),
	}

	assert.Equal(t, []string{"Go", "C", "Python"}, topLanguages(repos, 3))
	assert.Empty(t, topLanguages(nil, 3))
}
