package handler

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/KOFI-GYIMAH/contribution-tracker/internal/filter"
	"github.com/KOFI-GYIMAH/contribution-tracker/pkg/errors"
	"github.com/go-playground/validator/v10"
)

type APIResponse struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PageQuery holds the pagination parameters shared by list endpoints.
type PageQuery struct {
	Page    int `validate:"min=1"`
	PerPage int `validate:"min=1,max=100"`
}

type RepositoryQuery struct {
	PageQuery
	Search   string
	Language string
	Sort     string `validate:"omitempty,oneof=updated stars name"`
	Order    string `validate:"omitempty,oneof=asc desc"`
}

type AdvancedRepositoryQuery struct {
	RepositoryQuery
	Activity string `validate:"omitempty,oneof=all recent active stale"`
	Friendly string `validate:"omitempty,oneof=all good-first-issues highly-active well-maintained"`
	Size     string `validate:"omitempty,oneof=all small medium large"`
	MinStars int    `validate:"min=0"`
	Recent   bool
}

type IssueQuery struct {
	PageQuery
	State     string `validate:"omitempty,oneof=open closed all"`
	Labels    []string
	Sort      string `validate:"omitempty,oneof=created updated comments"`
	Direction string `validate:"omitempty,oneof=asc desc"`
}

type PullRequestQuery struct {
	PageQuery
	State     string `validate:"omitempty,oneof=open closed all"`
	Sort      string `validate:"omitempty,oneof=created updated popularity long-running"`
	Direction string `validate:"omitempty,oneof=asc desc"`
}

type CommitQuery struct {
	PageQuery
	Since time.Time
	Until time.Time `validate:"omitempty,gtefield=Since"`
}

type GoodFirstIssueQuery struct {
	Limit int `validate:"min=1,max=100"`
}

// queryParser reads typed values out of a query string, keeping the first
// conversion error.
type queryParser struct {
	values url.Values
	err    error
}

func newQueryParser(values url.Values) *queryParser {
	return &queryParser{values: values}
}

func (p *queryParser) str(key string) string {
	return strings.TrimSpace(p.values.Get(key))
}

func (p *queryParser) integer(key string, def int) int {
	raw := p.str(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, err)
		return def
	}
	return n
}

func (p *queryParser) boolean(key string) bool {
	raw := p.str(key)
	if raw == "" {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, err)
	}
	return b
}

func (p *queryParser) timestamp(key string) time.Time {
	raw := p.str(key)
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		p.fail(key, err)
	}
	return t
}

func (p *queryParser) list(key string) []string {
	var out []string
	for _, raw := range p.values[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func (p *queryParser) page() PageQuery {
	return PageQuery{
		Page:    p.integer("page", 1),
		PerPage: p.integer("per_page", 30),
	}
}

func (p *queryParser) fail(key string, err error) {
	if p.err == nil {
		p.err = errors.BadRequest(fmt.Sprintf("Invalid value for %q", key), err)
	}
}

func (p *queryParser) repository() RepositoryQuery {
	return RepositoryQuery{
		PageQuery: p.page(),
		Search:    p.str("search"),
		Language:  p.str("language"),
		Sort:      strings.ToLower(p.str("sort")),
		Order:     strings.ToLower(p.str("order")),
	}
}

func (p *queryParser) advancedRepository() AdvancedRepositoryQuery {
	return AdvancedRepositoryQuery{
		RepositoryQuery: p.repository(),
		Activity:        strings.ToLower(p.str("activity")),
		Friendly:        strings.ToLower(p.str("friendly")),
		Size:            strings.ToLower(p.str("size")),
		MinStars:        p.integer("min_stars", 0),
		Recent:          p.boolean("recent"),
	}
}

// validate runs the struct validator and wraps failures as a 400.
func validate(v *validator.Validate, req any) error {
	if err := v.Struct(req); err != nil {
		return errors.BadRequest(err.Error(), err)
	}
	return nil
}

func (q RepositoryQuery) options() (filter.Options, error) {
	sortBy, err := filter.ParseSortKey(q.Sort)
	if err != nil {
		return filter.Options{}, errors.BadRequest(err.Error(), err)
	}
	order, err := filter.ParseSortOrder(q.Order)
	if err != nil {
		return filter.Options{}, errors.BadRequest(err.Error(), err)
	}
	return filter.Options{
		Search:    q.Search,
		Language:  q.Language,
		SortBy:    sortBy,
		SortOrder: order,
	}, nil
}

func (q AdvancedRepositoryQuery) options() (filter.Options, error) {
	opts, err := q.RepositoryQuery.options()
	if err != nil {
		return opts, err
	}

	if opts.Activity, err = filter.ParseActivity(q.Activity); err != nil {
		return opts, errors.BadRequest(err.Error(), err)
	}
	if opts.ContributorFriendly, err = filter.ParseFriendliness(q.Friendly); err != nil {
		return opts, errors.BadRequest(err.Error(), err)
	}
	if opts.Size, err = filter.ParseSize(q.Size); err != nil {
		return opts, errors.BadRequest(err.Error(), err)
	}
	opts.MinStars = q.MinStars
	opts.HasRecentActivity = q.Recent
	return opts, nil
}
