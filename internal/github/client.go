package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KOFI-GYIMAH/contribution-tracker/internal/config"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/models"
	apperrors "github.com/KOFI-GYIMAH/contribution-tracker/pkg/errors"
	"github.com/KOFI-GYIMAH/contribution-tracker/pkg/logger"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

var (
	baseURL = "https://api.github.com/"
)

const (
	userAgent = "Canonical-Contribution-Tracker"

	mediaTypeV3 = "application/vnd.github.v3+json"
)

// Client is the typed access layer over the GitHub REST and search APIs.
// Every network call goes through the shared RateLimiter.
type Client struct {
	gh         *github.Client
	httpClient *http.Client
	limiter    *RateLimiter
	hasToken   bool
}

func NewClient(token string, limiter *RateLimiter) *Client {
	token = config.NormalizeToken(token)

	var transport http.RoundTripper = acceptV3(limiter.Middleware(http.DefaultTransport))
	if token != "" {
		transport = &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
			Base:   transport,
		}
	} else {
		logger.Warn("⚠️ No GitHub token configured. API requests will be rate limited.")
	}

	httpClient := &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}

	gh := github.NewClient(httpClient)
	gh.UserAgent = userAgent
	if u, err := url.Parse(baseURL); err == nil {
		gh.BaseURL = u
	}

	return &Client{
		gh:         gh,
		httpClient: httpClient,
		limiter:    limiter,
		hasToken:   token != "",
	}
}

// acceptV3 pins every request to the v3 media type. Starred listings keep the
// star media type, their payload wraps each repository with starred_at.
func acceptV3(next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if strings.Contains(req.Header.Get("Accept"), "star+json") {
			return next.RoundTrip(req)
		}
		req = req.Clone(req.Context())
		req.Header.Set("Accept", mediaTypeV3)
		return next.RoundTrip(req)
	})
}

func (c *Client) HasToken() bool {
	return c.hasToken
}

// CanMakeRequest reports whether the known quota still allows optional calls.
func (c *Client) CanMakeRequest() bool {
	return c.limiter.CanMakeRequest()
}

type reply[T any] struct {
	value T
	resp  *github.Response
}

// do runs fn on the rate limiter's queue and normalizes its error.
func do[T any](ctx context.Context, c *Client, noun string, fn func(ctx context.Context) (T, *github.Response, error)) (T, *github.Response, error) {
	r, err := Enqueue(ctx, c.limiter, func(ctx context.Context) (reply[T], error) {
		v, resp, err := fn(ctx)
		return reply[T]{value: v, resp: resp}, mapError(noun, resp, err)
	})
	return r.value, r.resp, err
}

// mapError turns a go-github error into an *errors.APIError. Context errors
// pass through untouched.
func mapError(noun string, resp *github.Response, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return apperrors.New(rateErr.Message, statusOf(rateErr.Response, http.StatusForbidden), err)
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return apperrors.New(abuseErr.Message, statusOf(abuseErr.Response, http.StatusForbidden), err)
	}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) {
		return apperrors.New(errResp.Message, statusOf(errResp.Response, 0), err)
	}

	if resp != nil && resp.Response != nil && resp.StatusCode >= http.StatusMultipleChoices {
		return apperrors.New("", resp.StatusCode, err)
	}

	return apperrors.Network(noun, err)
}

func statusOf(resp *http.Response, fallback int) int {
	if resp == nil {
		return fallback
	}
	return resp.StatusCode
}

// SearchRepositories runs a repository search with an already compiled query.
func (c *Client) SearchRepositories(ctx context.Context, opts RepoSearchOptions) (*models.SearchResult, error) {
	searchOpts := &github.SearchOptions{
		Sort:  opts.Sort,
		Order: opts.Order,
		ListOptions: github.ListOptions{
			Page:    page(opts.Page),
			PerPage: perPage(opts.PerPage),
		},
	}

	result, _, err := do(ctx, c, "repositories", func(ctx context.Context) (*github.RepositoriesSearchResult, *github.Response, error) {
		return c.gh.Search.Repositories(ctx, opts.Query, searchOpts)
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("search %q matched %d repositories", opts.Query, result.GetTotal())
	return &models.SearchResult{
		TotalCount: result.GetTotal(),
		Items:      toRepositories(result.Repositories),
	}, nil
}

func (c *Client) GetRepository(ctx context.Context, owner, name string) (*models.Repository, error) {
	repo, _, err := do(ctx, c, "repository details", func(ctx context.Context) (*github.Repository, *github.Response, error) {
		return c.gh.Repositories.Get(ctx, owner, name)
	})
	if err != nil {
		return nil, err
	}

	r := toRepository(repo)
	return &r, nil
}

// GetRateLimit fetches the quota of every resource category and records the
// core quota in the rate limiter.
func (c *Client) GetRateLimit(ctx context.Context) (*models.RateLimits, error) {
	limits, _, err := do(ctx, c, "rate limit information", func(ctx context.Context) (*github.RateLimits, *github.Response, error) {
		return c.gh.RateLimit.Get(ctx)
	})
	if err != nil {
		return nil, err
	}

	out := &models.RateLimits{
		Core:                toRateSnapshot(limits.GetCore()),
		Search:              toRateSnapshot(limits.GetSearch()),
		GraphQL:             toOptionalRateSnapshot(limits.GetGraphQL()),
		IntegrationManifest: toOptionalRateSnapshot(limits.GetIntegrationManifest()),
	}
	if limits.GetCore() != nil {
		c.limiter.UpdateRateLimit(out.Core.Remaining, out.Core.Reset, out.Core.Limit)
	}
	return out, nil
}

// ListIssues lists issues of a repository. Pull requests returned by the
// endpoint are dropped.
func (c *Client) ListIssues(ctx context.Context, owner, repo string, opts IssueListOptions) ([]models.Issue, error) {
	listOpts := &github.IssueListByRepoOptions{
		State:     opts.State,
		Labels:    opts.Labels,
		Sort:      opts.Sort,
		Direction: opts.Direction,
		ListOptions: github.ListOptions{
			Page:    page(opts.Page),
			PerPage: perPage(opts.PerPage),
		},
	}

	issues, _, err := do(ctx, c, "issues", func(ctx context.Context) ([]*github.Issue, *github.Response, error) {
		return c.gh.Issues.ListByRepo(ctx, owner, repo, listOpts)
	})
	if err != nil {
		return nil, err
	}

	return toIssues(issues), nil
}

// ListGoodFirstIssues returns the newest open issues labelled "good first issue".
func (c *Client) ListGoodFirstIssues(ctx context.Context, owner, repo string, limit int) ([]models.Issue, error) {
	return c.ListIssues(ctx, owner, repo, IssueListOptions{
		State:     "open",
		Labels:    []string{GoodFirstIssueLabel},
		Sort:      "created",
		Direction: "desc",
		PerPage:   limit,
	})
}

func (c *Client) ListPullRequests(ctx context.Context, owner, repo string, opts PullRequestListOptions) ([]models.PullRequest, error) {
	listOpts := &github.PullRequestListOptions{
		State:     opts.State,
		Sort:      opts.Sort,
		Direction: opts.Direction,
		ListOptions: github.ListOptions{
			Page:    page(opts.Page),
			PerPage: perPage(opts.PerPage),
		},
	}

	prs, _, err := do(ctx, c, "pull requests", func(ctx context.Context) ([]*github.PullRequest, *github.Response, error) {
		return c.gh.PullRequests.List(ctx, owner, repo, listOpts)
	})
	if err != nil {
		return nil, err
	}

	out := make([]models.PullRequest, 0, len(prs))
	for _, pr := range prs {
		out = append(out, toPullRequest(pr))
	}
	return out, nil
}

func (c *Client) ListCommits(ctx context.Context, owner, repo string, opts CommitListOptions) ([]models.Commit, error) {
	listOpts := &github.CommitsListOptions{
		ListOptions: github.ListOptions{
			Page:    page(opts.Page),
			PerPage: perPage(opts.PerPage),
		},
	}
	if !opts.Since.IsZero() {
		listOpts.Since = opts.Since.UTC()
	}
	if !opts.Until.IsZero() {
		listOpts.Until = opts.Until.UTC()
	}

	commits, _, err := do(ctx, c, "commits", func(ctx context.Context) ([]*github.RepositoryCommit, *github.Response, error) {
		return c.gh.Repositories.ListCommits(ctx, owner, repo, listOpts)
	})
	if err != nil {
		return nil, err
	}

	out := make([]models.Commit, 0, len(commits))
	for _, commit := range commits {
		out = append(out, toCommit(commit))
	}
	return out, nil
}

// ListContributors returns contributors ordered by contribution count.
func (c *Client) ListContributors(ctx context.Context, owner, repo string, pageNum, size int) ([]models.Contributor, error) {
	listOpts := &github.ListContributorsOptions{
		ListOptions: github.ListOptions{
			Page:    page(pageNum),
			PerPage: perPage(size),
		},
	}

	contributors, _, err := do(ctx, c, "contributors", func(ctx context.Context) ([]*github.Contributor, *github.Response, error) {
		return c.gh.Repositories.ListContributors(ctx, owner, repo, listOpts)
	})
	if err != nil {
		return nil, err
	}

	out := make([]models.Contributor, 0, len(contributors))
	for _, contributor := range contributors {
		out = append(out, toContributor(contributor))
	}
	return out, nil
}

func (c *Client) GetUserProfile(ctx context.Context, username string) (*models.UserProfile, error) {
	user, _, err := do(ctx, c, "user profile", func(ctx context.Context) (*github.User, *github.Response, error) {
		return c.gh.Users.Get(ctx, username)
	})
	if err != nil {
		return nil, err
	}

	profile := toUserProfile(user)
	return &profile, nil
}

// SearchCommits runs a cross-repository commit search.
func (c *Client) SearchCommits(ctx context.Context, query string, opts SearchOptions) (*CommitSearchResult, error) {
	searchOpts := &github.SearchOptions{
		Sort:  opts.Sort,
		Order: opts.Order,
		ListOptions: github.ListOptions{
			Page:    page(opts.Page),
			PerPage: perPage(opts.PerPage),
		},
	}

	result, _, err := do(ctx, c, "commits", func(ctx context.Context) (*github.CommitsSearchResult, *github.Response, error) {
		return c.gh.Search.Commits(ctx, query, searchOpts)
	})
	if err != nil {
		return nil, err
	}

	out := &CommitSearchResult{
		TotalCount:   result.GetTotal(),
		Items:        make([]models.Commit, 0, len(result.Commits)),
		Repositories: []models.Repository{},
	}
	seen := make(map[string]bool)
	for _, commit := range result.Commits {
		out.Items = append(out.Items, toSearchedCommit(commit))

		repo := commit.GetRepository()
		if repo == nil || seen[repo.GetFullName()] {
			continue
		}
		seen[repo.GetFullName()] = true
		out.Repositories = append(out.Repositories, toRepository(repo))
	}
	return out, nil
}

// SearchIssues runs an issue/pull request search. Unlike ListIssues it keeps
// pull requests, since queries select them explicitly with type:pr.
func (c *Client) SearchIssues(ctx context.Context, query string, opts SearchOptions) (*IssueSearchResult, error) {
	searchOpts := &github.SearchOptions{
		Sort:  opts.Sort,
		Order: opts.Order,
		ListOptions: github.ListOptions{
			Page:    page(opts.Page),
			PerPage: perPage(opts.PerPage),
		},
	}

	result, _, err := do(ctx, c, "issues", func(ctx context.Context) (*github.IssuesSearchResult, *github.Response, error) {
		return c.gh.Search.Issues(ctx, query, searchOpts)
	})
	if err != nil {
		return nil, err
	}

	out := &IssueSearchResult{
		TotalCount: result.GetTotal(),
		Items:      make([]models.Issue, 0, len(result.Issues)),
	}
	for _, issue := range result.Issues {
		out.Items = append(out.Items, toIssue(issue))
	}
	return out, nil
}

func (c *Client) ListStarred(ctx context.Context, username string, pageNum, size int) ([]models.Repository, error) {
	listOpts := &github.ActivityListStarredOptions{
		ListOptions: github.ListOptions{
			Page:    page(pageNum),
			PerPage: perPage(size),
		},
	}

	starred, _, err := do(ctx, c, "starred repositories", func(ctx context.Context) ([]*github.StarredRepository, *github.Response, error) {
		return c.gh.Activity.ListStarred(ctx, username, listOpts)
	})
	if err != nil {
		return nil, err
	}

	out := make([]models.Repository, 0, len(starred))
	for _, s := range starred {
		if s.Repository != nil {
			out = append(out, toRepository(s.Repository))
		}
	}
	return out, nil
}

// ValidateToken checks the configured token against the rate limit and
// authenticated user endpoints. An invalid token is reported in the status,
// not as an error; only transport failures return an error.
func (c *Client) ValidateToken(ctx context.Context) (*models.TokenStatus, error) {
	status := &models.TokenStatus{HasToken: c.hasToken, Scopes: []string{}}
	if !c.hasToken {
		status.Error = "No GitHub token configured"
		return status, nil
	}

	limits, err := c.GetRateLimit(ctx)
	if err != nil {
		if apperrors.StatusOf(err) == 0 {
			return nil, err
		}
		status.Error = "Token validation failed: " + err.Error()
		return status, nil
	}
	core := limits.Core
	status.Rate = &core

	user, resp, err := do(ctx, c, "authenticated user", func(ctx context.Context) (*github.User, *github.Response, error) {
		return c.gh.Users.Get(ctx, "")
	})
	if err != nil {
		if apperrors.StatusOf(err) == 0 {
			return nil, err
		}
		status.Error = "User info fetch failed: " + err.Error()
		return status, nil
	}

	status.Valid = true
	status.Login = user.GetLogin()
	if resp != nil {
		status.Scopes = parseScopes(resp.Header.Get("X-OAuth-Scopes"))
	}
	return status, nil
}

func parseScopes(header string) []string {
	scopes := []string{}
	for _, s := range strings.Split(header, ",") {
		if s = strings.TrimSpace(s); s != "" {
			scopes = append(scopes, s)
		}
	}
	return scopes
}
