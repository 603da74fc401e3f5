package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/KOFI-GYIMAH/contribution-tracker/internal/cache"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/filter"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/github"
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/models"
	"github.com/KOFI-GYIMAH/contribution-tracker/pkg/errors"
	"github.com/KOFI-GYIMAH/contribution-tracker/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type RepositoryService interface {
	FetchCanonicalRepos(ctx context.Context, page, perPage int, opts filter.Options) (*models.SearchResult, error)
	FetchCanonicalReposAdvanced(ctx context.Context, page, perPage int, opts filter.Options) (*models.SearchResult, error)
	GetRepository(ctx context.Context, owner, name string) (*models.Repository, error)
	ListIssues(ctx context.Context, owner, name string, opts github.IssueListOptions) ([]models.Issue, error)
	ListGoodFirstIssues(ctx context.Context, owner, name string, limit int) ([]models.Issue, error)
	ListPullRequests(ctx context.Context, owner, name string, opts github.PullRequestListOptions) ([]models.PullRequest, error)
	ListCommits(ctx context.Context, owner, name string, opts github.CommitListOptions) ([]models.Commit, error)
	ListContributors(ctx context.Context, owner, name string, page, perPage int) ([]models.Contributor, error)
	GetRateLimit(ctx context.Context) (*models.RateLimits, error)
	ValidateToken(ctx context.Context) (*models.TokenStatus, error)
	ExploreIssues(ctx context.Context) (*models.IssueExploration, error)
	CacheStats() cache.Stats
}

type RepositoryHandler struct {
	service   RepositoryService
	validator *validator.Validate
}

func NewRepositoryHandler(service RepositoryService) *RepositoryHandler {
	return &RepositoryHandler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *RepositoryHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/repositories", h.listRepositories).Methods("GET")
	r.HandleFunc("/repositories/advanced", h.listRepositoriesAdvanced).Methods("GET")
	r.HandleFunc("/repositories/{owner}/{repo}", h.getRepository).Methods("GET")
	r.HandleFunc("/repositories/{owner}/{repo}/issues", h.listIssues).Methods("GET")
	r.HandleFunc("/repositories/{owner}/{repo}/good-first-issues", h.listGoodFirstIssues).Methods("GET")
	r.HandleFunc("/repositories/{owner}/{repo}/pulls", h.listPullRequests).Methods("GET")
	r.HandleFunc("/repositories/{owner}/{repo}/commits", h.listCommits).Methods("GET")
	r.HandleFunc("/repositories/{owner}/{repo}/contributors", h.listContributors).Methods("GET")
	r.HandleFunc("/issues/explore", h.exploreIssues).Methods("GET")
	r.HandleFunc("/rate-limit", h.getRateLimit).Methods("GET")
	r.HandleFunc("/token", h.validateToken).Methods("GET")
	r.HandleFunc("/cache/stats", h.getCacheStats).Methods("GET")
}

func writeSuccess(w http.ResponseWriter, data interface{}, message ...string) {
	resp := APIResponse{
		Status: "success",
		Data:   data,
	}
	if len(message) > 0 {
		resp.Message = message[0]
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func repoVars(r *http.Request) (string, string) {
	vars := mux.Vars(r)
	return vars["owner"], vars["repo"]
}

// listRepositories godoc
// @Summary List Repositories
// @Description Search the organization's repositories by text and language
// @Tags Repository
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(30)
// @Param search query string false "Free text search"
// @Param language query string false "Primary language"
// @Param sort query string false "Sort key" Enums(updated, stars, name)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} models.SearchResult
// @Failure 400 {object} errors.HTTPErrorResponse
// @Failure 502 {object} errors.HTTPErrorResponse
// @Router /repositories [get]
func (h *RepositoryHandler) listRepositories(w http.ResponseWriter, r *http.Request) {
	p := newQueryParser(r.URL.Query())
	req := p.repository()
	if p.err != nil {
		errors.WriteHTTPError(w, p.err)
		return
	}
	if err := validate(h.validator, req); err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	opts, err := req.options()
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	result, err := h.service.FetchCanonicalRepos(r.Context(), req.Page, req.PerPage, opts)
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	logger.Info("Fetched %d of %d repositories", len(result.Items), result.TotalCount)
	writeSuccess(w, result, "Successfully fetched repositories")
}

// listRepositoriesAdvanced godoc
// @Summary List Repositories With Advanced Filters
// @Description Search the organization's repositories with activity, size, star and contributor friendliness filters
// @Tags Repository
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(30)
// @Param search query string false "Free text search"
// @Param language query string false "Primary language"
// @Param sort query string false "Sort key" Enums(updated, stars, name)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Param activity query string false "Activity bucket" Enums(all, recent, active, stale)
// @Param friendly query string false "Contributor friendliness" Enums(all, good-first-issues, highly-active, well-maintained)
// @Param size query string false "Repository size" Enums(all, small, medium, large)
// @Param min_stars query int false "Minimum stars"
// @Param recent query bool false "Pushed within the last 7 days"
// @Success 200 {object} models.SearchResult
// @Failure 400 {object} errors.HTTPErrorResponse
// @Failure 502 {object} errors.HTTPErrorResponse
// @Router /repositories/advanced [get]
func (h *RepositoryHandler) listRepositoriesAdvanced(w http.ResponseWriter, r *http.Request) {
	p := newQueryParser(r.URL.Query())
	req := p.advancedRepository()
	if p.err != nil {
		errors.WriteHTTPError(w, p.err)
		return
	}
	if err := validate(h.validator, req); err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	opts, err := req.options()
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	result, err := h.service.FetchCanonicalReposAdvanced(r.Context(), req.Page, req.PerPage, opts)
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	logger.Info("Fetched %d repositories with advanced filters", result.TotalCount)
	writeSuccess(w, result, "Successfully fetched repositories")
}

// getRepository godoc
// @Summary Get Repository
// @Description Fetch repository metadata from GitHub
// @Tags Repository
// @Produce json
// @Param owner path string true "Repository Owner"
// @Param repo path string true "Repository Name"
// @Success 200 {object} models.Repository
// @Failure 404 {object} errors.HTTPErrorResponse
// @Router /repositories/{owner}/{repo} [get]
func (h *RepositoryHandler) getRepository(w http.ResponseWriter, r *http.Request) {
	owner, name := repoVars(r)

	repository, err := h.service.GetRepository(r.Context(), owner, name)
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	logger.Info("Fetched repository %s", repository.FullName)
	writeSuccess(w, repository, "Successfully fetched repository")
}

// listIssues godoc
// @Summary List Issues
// @Description List issues of a repository, pull requests excluded
// @Tags Issues
// @Produce json
// @Param owner path string true "Repository Owner"
// @Param repo path string true "Repository Name"
// @Param state query string false "Issue state" Enums(open, closed, all)
// @Param labels query string false "Comma separated labels, all must match"
// @Param sort query string false "Sort key" Enums(created, updated, comments)
// @Param direction query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(30)
// @Success 200 {array} models.Issue
// @Failure 400 {object} errors.HTTPErrorResponse
// @Router /repositories/{owner}/{repo}/issues [get]
func (h *RepositoryHandler) listIssues(w http.ResponseWriter, r *http.Request) {
	owner, name := repoVars(r)

	p := newQueryParser(r.URL.Query())
	req := IssueQuery{
		PageQuery: p.page(),
		State:     p.str("state"),
		Labels:    p.list("labels"),
		Sort:      p.str("sort"),
		Direction: p.str("direction"),
	}
	if p.err != nil {
		errors.WriteHTTPError(w, p.err)
		return
	}
	if err := validate(h.validator, req); err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	issues, err := h.service.ListIssues(r.Context(), owner, name, github.IssueListOptions{
		State:     req.State,
		Labels:    req.Labels,
		Sort:      req.Sort,
		Direction: req.Direction,
		Page:      req.Page,
		PerPage:   req.PerPage,
	})
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	logger.Info("Fetched %d issues for %s/%s", len(issues), owner, name)
	writeSuccess(w, issues, "Successfully fetched issues")
}

// listGoodFirstIssues godoc
// @Summary List Good First Issues
// @Description Newest open issues labelled "good first issue"
// @Tags Issues
// @Produce json
// @Param owner path string true "Repository Owner"
// @Param repo path string true "Repository Name"
// @Param limit query int false "Max issues to return" default(10)
// @Success 200 {array} models.Issue
// @Failure 400 {object} errors.HTTPErrorResponse
// @Router /repositories/{owner}/{repo}/good-first-issues [get]
func (h *RepositoryHandler) listGoodFirstIssues(w http.ResponseWriter, r *http.Request) {
	owner, name := repoVars(r)

	p := newQueryParser(r.URL.Query())
	req := GoodFirstIssueQuery{Limit: p.integer("limit", 10)}
	if p.err != nil {
		errors.WriteHTTPError(w, p.err)
		return
	}
	if err := validate(h.validator, req); err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	issues, err := h.service.ListGoodFirstIssues(r.Context(), owner, name, req.Limit)
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	writeSuccess(w, issues, "Successfully fetched good first issues")
}

// listPullRequests godoc
// @Summary List Pull Requests
// @Tags Pull Requests
// @Produce json
// @Param owner path string true "Repository Owner"
// @Param repo path string true "Repository Name"
// @Param state query string false "Pull request state" Enums(open, closed, all)
// @Param sort query string false "Sort key" Enums(created, updated, popularity, long-running)
// @Param direction query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(30)
// @Success 200 {array} models.PullRequest
// @Failure 400 {object} errors.HTTPErrorResponse
// @Router /repositories/{owner}/{repo}/pulls [get]
func (h *RepositoryHandler) listPullRequests(w http.ResponseWriter, r *http.Request) {
	owner, name := repoVars(r)

	p := newQueryParser(r.URL.Query())
	req := PullRequestQuery{
		PageQuery: p.page(),
		State:     p.str("state"),
		Sort:      p.str("sort"),
		Direction: p.str("direction"),
	}
	if p.err != nil {
		errors.WriteHTTPError(w, p.err)
		return
	}
	if err := validate(h.validator, req); err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	prs, err := h.service.ListPullRequests(r.Context(), owner, name, github.PullRequestListOptions{
		State:     req.State,
		Sort:      req.Sort,
		Direction: req.Direction,
		Page:      req.Page,
		PerPage:   req.PerPage,
	})
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	logger.Info("Fetched %d pull requests for %s/%s", len(prs), owner, name)
	writeSuccess(w, prs, "Successfully fetched pull requests")
}

// listCommits godoc
// @Summary List Commits
// @Description List commits for a repository (supports filtering & pagination)
// @Tags Commits
// @Produce json
// @Param owner path string true "Repository Owner"
// @Param repo path string true "Repository Name"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(30)
// @Param since query string false "Start date (RFC3339)"
// @Param until query string false "End date (RFC3339)"
// @Success 200 {array} models.Commit
// @Failure 400 {object} errors.HTTPErrorResponse
// @Router /repositories/{owner}/{repo}/commits [get]
func (h *RepositoryHandler) listCommits(w http.ResponseWriter, r *http.Request) {
	owner, name := repoVars(r)

	p := newQueryParser(r.URL.Query())
	req := CommitQuery{
		PageQuery: p.page(),
		Since:     p.timestamp("since"),
		Until:     p.timestamp("until"),
	}
	if p.err != nil {
		errors.WriteHTTPError(w, p.err)
		return
	}
	if err := validate(h.validator, req); err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	commits, err := h.service.ListCommits(r.Context(), owner, name, github.CommitListOptions{
		Since:   req.Since,
		Until:   req.Until,
		Page:    req.Page,
		PerPage: req.PerPage,
	})
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	logger.Info("Fetched %d commits for %s/%s", len(commits), owner, name)
	writeSuccess(w, commits, "Successfully fetched commits")
}

// listContributors godoc
// @Summary List Contributors
// @Description Contributors ordered by contribution count
// @Tags Analytics
// @Produce json
// @Param owner path string true "Repository Owner"
// @Param repo path string true "Repository Name"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(30)
// @Success 200 {array} models.Contributor
// @Failure 400 {object} errors.HTTPErrorResponse
// @Router /repositories/{owner}/{repo}/contributors [get]
func (h *RepositoryHandler) listContributors(w http.ResponseWriter, r *http.Request) {
	owner, name := repoVars(r)

	p := newQueryParser(r.URL.Query())
	req := p.page()
	if p.err != nil {
		errors.WriteHTTPError(w, p.err)
		return
	}
	if err := validate(h.validator, req); err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	contributors, err := h.service.ListContributors(r.Context(), owner, name, req.Page, req.PerPage)
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	writeSuccess(w, contributors, "Successfully fetched contributors")
}

// getRateLimit godoc
// @Summary Get Rate Limit
// @Description Current GitHub quota per resource category
// @Tags Status
// @Produce json
// @Success 200 {object} models.RateLimits
// @Failure 502 {object} errors.HTTPErrorResponse
// @Router /rate-limit [get]
func (h *RepositoryHandler) getRateLimit(w http.ResponseWriter, r *http.Request) {
	limits, err := h.service.GetRateLimit(r.Context())
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	logger.Debug("Core quota %d/%d", limits.Core.Remaining, limits.Core.Limit)
	writeSuccess(w, limits, "Successfully fetched rate limit")
}

// validateToken godoc
// @Summary Validate Token
// @Description Check the configured GitHub token and report its scopes
// @Tags Status
// @Produce json
// @Success 200 {object} models.TokenStatus
// @Failure 502 {object} errors.HTTPErrorResponse
// @Router /token [get]
func (h *RepositoryHandler) validateToken(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.ValidateToken(r.Context())
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	writeSuccess(w, status)
}

// exploreIssues godoc
// @Summary Explore Good First Issues
// @Description Good first issues across the organization's popular repositories, newest first, plus the most starred repositories
// @Tags Issues
// @Produce json
// @Success 200 {object} models.IssueExploration
// @Failure 502 {object} errors.HTTPErrorResponse
// @Router /issues/explore [get]
func (h *RepositoryHandler) exploreIssues(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ExploreIssues(r.Context())
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	logger.Info("Explored %d good first issues", len(result.Issues))
	writeSuccess(w, result, "Successfully fetched good first issues")
}

// getCacheStats godoc
// @Summary Cache Statistics
// @Tags Status
// @Produce json
// @Success 200 {object} cache.Stats
// @Router /cache/stats [get]
func (h *RepositoryHandler) getCacheStats(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.service.CacheStats())
}
