package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/KOFI-GYIMAH/contribution-tracker/internal/github"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/models"
	"github.com/KOFI-GYIMAH/contribution-tracker/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const (
	recentActivityLimit  = 10
	commitSearchPageSize = 100
	topLanguageCount     = 3

	issuesPerLanguage     = 5
	starredRepoLimit      = 5
	issuesPerStarredRepo  = 3
	explorationCandidates = 10
)

type UserService struct {
	githubClient GitHubClient
	org          string
}

func NewUserService(githubClient GitHubClient, org string) *UserService {
	return &UserService{
		githubClient: githubClient,
		org:          org,
	}
}

func (s *UserService) GetUserProfile(ctx context.Context, username string) (*models.UserProfile, error) {
	return s.githubClient.GetUserProfile(ctx, username)
}

// FetchUserContributions aggregates the commits, pull requests and issues
// username authored inside the org using the cross-repository search API.
func (s *UserService) FetchUserContributions(ctx context.Context, username string) (*models.UserContributions, error) {
	scope := fmt.Sprintf("author:%s org:%s", username, s.org)

	var (
		commits     *github.CommitSearchResult
		prs, issues *github.IssueSearchResult
	)

	g, groupCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		commits, err = s.githubClient.SearchCommits(groupCtx, scope, github.SearchOptions{
			Sort:    "author-date",
			Order:   "desc",
			PerPage: commitSearchPageSize,
		})
		return err
	})
	g.Go(func() error {
		var err error
		prs, err = s.githubClient.SearchIssues(groupCtx, scope+" type:pr", github.SearchOptions{PerPage: 1})
		return err
	})
	g.Go(func() error {
		var err error
		issues, err = s.githubClient.SearchIssues(groupCtx, scope+" type:issue", github.SearchOptions{PerPage: 1})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	recent := commits.Items
	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}

	logger.Debug("%s: %d commits, %d PRs, %d issues in %s", username, commits.TotalCount, prs.TotalCount, issues.TotalCount, s.org)
	return &models.UserContributions{
		TotalCommits:       commits.TotalCount,
		TotalPRs:           prs.TotalCount,
		TotalIssues:        issues.TotalCount,
		ReposContributedTo: commits.Repositories,
		RecentActivity:     recent,
	}, nil
}

// FetchUserRecommendations suggests issues and repositories for username.
// Each section is best effort: a failed lookup is logged and leaves its
// section empty.
func (s *UserService) FetchUserRecommendations(ctx context.Context, username string) (*models.UserRecommendations, error) {
	recs := &models.UserRecommendations{
		TopLanguages:            []string{},
		LanguageBasedIssues:     []models.Issue{},
		StarredRepoIssues:       []models.Issue{},
		SimilarContributorRepos: []models.Repository{},
	}

	contributed, err := s.githubClient.SearchCommits(ctx, fmt.Sprintf("author:%s org:%s", username, s.org), github.SearchOptions{
		Sort:    "author-date",
		Order:   "desc",
		PerPage: commitSearchPageSize,
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Warn("Failed to load contributed repositories for %s: %v", username, err)
		contributed = &github.CommitSearchResult{}
	}
	recs.TopLanguages = topLanguages(contributed.Repositories, topLanguageCount)

	visited := make(map[string]bool, len(contributed.Repositories))
	for _, r := range contributed.Repositories {
		visited[r.FullName] = true
	}

	var g errgroup.Group
	g.Go(func() error {
		recs.LanguageBasedIssues = s.languageIssues(ctx, recs.TopLanguages)
		return nil
	})
	g.Go(func() error {
		recs.StarredRepoIssues = s.starredRepoIssues(ctx, username)
		return nil
	})
	g.Go(func() error {
		recs.SimilarContributorRepos = s.explorationRepos(ctx, recs.TopLanguages, visited)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// topLanguages ranks languages by how many repos use them, ties broken by name.
func topLanguages(repos []models.Repository, n int) []string {
	counts := make(map[string]int)
	for _, r := range repos {
		if r.Language != nil && *r.Language != "" {
			counts[*r.Language]++
		}
	}

	langs := make([]string, 0, len(counts))
	for l := range counts {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool {
		if counts[langs[i]] != counts[langs[j]] {
			return counts[langs[i]] > counts[langs[j]]
		}
		return langs[i] < langs[j]
	})

	if len(langs) > n {
		langs = langs[:n]
	}
	return langs
}

func (s *UserService) languageIssues(ctx context.Context, languages []string) []models.Issue {
	perLang := make([][]models.Issue, len(languages))

	var g errgroup.Group
	for i, lang := range languages {
		g.Go(func() error {
			q := fmt.Sprintf(`org:%s is:issue is:open label:"%s" language:%s`, s.org, github.GoodFirstIssueLabel, lang)
			result, err := s.githubClient.SearchIssues(ctx, q, github.SearchOptions{
				Sort:    "created",
				Order:   "desc",
				PerPage: issuesPerLanguage,
			})
			if err != nil {
				logger.Warn("Failed to search %s issues: %v", lang, err)
				return nil
			}
			perLang[i] = result.Items
			return nil
		})
	}
	_ = g.Wait()

	out := []models.Issue{}
	for _, issues := range perLang {
		out = append(out, issues...)
	}
	return out
}

func (s *UserService) starredRepoIssues(ctx context.Context, username string) []models.Issue {
	starred, err := s.githubClient.ListStarred(ctx, username, 1, 100)
	if err != nil {
		logger.Warn("Failed to list starred repositories for %s: %v", username, err)
		return []models.Issue{}
	}

	var orgRepos []models.Repository
	for _, r := range starred {
		if strings.EqualFold(r.Owner, s.org) {
			orgRepos = append(orgRepos, r)
		}
		if len(orgRepos) == starredRepoLimit {
			break
		}
	}

	perRepo := make([][]models.Issue, len(orgRepos))

	var g errgroup.Group
	for i, r := range orgRepos {
		g.Go(func() error {
			issues, err := s.githubClient.ListGoodFirstIssues(ctx, r.Owner, r.Name, issuesPerStarredRepo)
			if err != nil {
				logger.Warn("Failed to list good first issues for %s: %v", r.FullName, err)
				return nil
			}
			perRepo[i] = issues
			return nil
		})
	}
	_ = g.Wait()

	out := []models.Issue{}
	for _, issues := range perRepo {
		out = append(out, issues...)
	}
	return out
}

// explorationRepos picks the most starred org repositories in the user's
// languages that they have not contributed to yet.
func (s *UserService) explorationRepos(ctx context.Context, languages []string, visited map[string]bool) []models.Repository {
	perLang := make([][]models.Repository, len(languages))

	var g errgroup.Group
	for i, lang := range languages {
		g.Go(func() error {
			result, err := s.githubClient.SearchRepositories(ctx, github.RepoSearchOptions{
				Query:   fmt.Sprintf("org:%s language:%s", s.org, lang),
				Sort:    "stars",
				Order:   "desc",
				PerPage: explorationCandidates,
			})
			if err != nil {
				logger.Warn("Failed to search %s repositories: %v", lang, err)
				return nil
			}
			perLang[i] = result.Items
			return nil
		})
	}
	_ = g.Wait()

	out := []models.Repository{}
	seen := make(map[string]bool)
	for _, repos := range perLang {
		for _, r := range repos {
			if visited[r.FullName] || seen[r.FullName] {
				continue
			}
			seen[r.FullName] = true
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Stars > out[j].Stars })
	if len(out) > explorationCandidates {
		out = out[:explorationCandidates]
	}
	return out
}
