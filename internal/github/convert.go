package github

import (
	"github.com/KOFI-GYIMAH/contribution-tracker/internal/models"
	"github.com/google/go-github/v62/github"
)

func toRepository(r *github.Repository) models.Repository {
	return models.Repository{
		ID:          r.GetID(),
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		Owner:       r.GetOwner().GetLogin(),
		Description: r.Description,
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		OpenIssues:  r.GetOpenIssuesCount(),
		Language:    r.Language,
		UpdatedAt:   r.GetUpdatedAt().Time,
		PushedAt:    r.GetPushedAt().Time,
		HTMLURL:     r.GetHTMLURL(),
	}
}

func toRepositories(in []*github.Repository) []models.Repository {
	out := make([]models.Repository, 0, len(in))
	for _, r := range in {
		out = append(out, toRepository(r))
	}
	return out
}

func toUser(u *github.User) models.User {
	return models.User{
		Login:     u.GetLogin(),
		ID:        u.GetID(),
		AvatarURL: u.GetAvatarURL(),
		HTMLURL:   u.GetHTMLURL(),
	}
}

func toUsers(in []*github.User) []models.User {
	out := make([]models.User, 0, len(in))
	for _, u := range in {
		out = append(out, toUser(u))
	}
	return out
}

func toLabels(in []*github.Label) []models.Label {
	out := make([]models.Label, 0, len(in))
	for _, l := range in {
		out = append(out, models.Label{
			Name:        l.GetName(),
			Color:       l.GetColor(),
			Description: l.GetDescription(),
		})
	}
	return out
}

func toIssue(i *github.Issue) models.Issue {
	issue := models.Issue{
		ID:            i.GetID(),
		Number:        i.GetNumber(),
		Title:         i.GetTitle(),
		Body:          i.GetBody(),
		State:         i.GetState(),
		User:          toUser(i.GetUser()),
		Labels:        toLabels(i.Labels),
		Assignees:     toUsers(i.Assignees),
		Comments:      i.GetComments(),
		CreatedAt:     i.GetCreatedAt().Time,
		UpdatedAt:     i.GetUpdatedAt().Time,
		HTMLURL:       i.GetHTMLURL(),
		RepositoryURL: i.GetRepositoryURL(),
	}
	if i.ClosedAt != nil {
		closed := i.ClosedAt.Time
		issue.ClosedAt = &closed
	}
	return issue
}

// toIssues drops pull requests, which the issues endpoints return alongside
// real issues.
func toIssues(in []*github.Issue) []models.Issue {
	out := make([]models.Issue, 0, len(in))
	for _, i := range in {
		if i.IsPullRequest() {
			continue
		}
		out = append(out, toIssue(i))
	}
	return out
}

func toPullRequest(p *github.PullRequest) models.PullRequest {
	pr := models.PullRequest{
		Issue: models.Issue{
			ID:        p.GetID(),
			Number:    p.GetNumber(),
			Title:     p.GetTitle(),
			Body:      p.GetBody(),
			State:     p.GetState(),
			User:      toUser(p.GetUser()),
			Labels:    toLabels(p.Labels),
			Assignees: toUsers(p.Assignees),
			Comments:  p.GetComments(),
			CreatedAt: p.GetCreatedAt().Time,
			UpdatedAt: p.GetUpdatedAt().Time,
			HTMLURL:   p.GetHTMLURL(),
		},
		Merged:       p.GetMerged() || p.MergedAt != nil,
		Draft:        p.GetDraft(),
		Additions:    p.GetAdditions(),
		Deletions:    p.GetDeletions(),
		ChangedFiles: p.GetChangedFiles(),
	}
	if p.ClosedAt != nil {
		closed := p.ClosedAt.Time
		pr.ClosedAt = &closed
	}
	if p.MergedAt != nil {
		merged := p.MergedAt.Time
		pr.MergedAt = &merged
	}
	return pr
}

func toCommit(c *github.RepositoryCommit) models.Commit {
	commit := models.Commit{
		SHA:        c.GetSHA(),
		Message:    c.GetCommit().GetMessage(),
		AuthorName: c.GetCommit().GetAuthor().GetName(),
		AuthoredAt: c.GetCommit().GetAuthor().GetDate().Time,
		HTMLURL:    c.GetHTMLURL(),
	}
	if c.Author != nil {
		author := toUser(c.Author)
		commit.Author = &author
	}
	return commit
}

func toSearchedCommit(c *github.CommitResult) models.Commit {
	commit := models.Commit{
		SHA:        c.GetSHA(),
		Message:    c.GetCommit().GetMessage(),
		AuthorName: c.GetCommit().GetAuthor().GetName(),
		AuthoredAt: c.GetCommit().GetAuthor().GetDate().Time,
		HTMLURL:    c.GetHTMLURL(),
		Repository: c.GetRepository().GetFullName(),
	}
	if c.Author != nil {
		author := toUser(c.Author)
		commit.Author = &author
	}
	return commit
}

func toContributor(c *github.Contributor) models.Contributor {
	return models.Contributor{
		User: models.User{
			Login:     c.GetLogin(),
			ID:        c.GetID(),
			AvatarURL: c.GetAvatarURL(),
			HTMLURL:   c.GetHTMLURL(),
		},
		Contributions: c.GetContributions(),
	}
}

func toUserProfile(u *github.User) models.UserProfile {
	return models.UserProfile{
		User:        toUser(u),
		Name:        u.GetName(),
		Bio:         u.Bio,
		Blog:        u.Blog,
		Company:     u.Company,
		Location:    u.Location,
		PublicRepos: u.GetPublicRepos(),
		Followers:   u.GetFollowers(),
		Following:   u.GetFollowing(),
		CreatedAt:   u.GetCreatedAt().Time,
	}
}

func toRateSnapshot(r *github.Rate) models.RateLimitSnapshot {
	if r == nil {
		return models.RateLimitSnapshot{}
	}
	return models.RateLimitSnapshot{
		Limit:     r.Limit,
		Remaining: r.Remaining,
		Used:      max(0, r.Limit-r.Remaining),
		Reset:     r.Reset.Unix(),
	}
}

func toOptionalRateSnapshot(r *github.Rate) *models.RateLimitSnapshot {
	if r == nil {
		return nil
	}
	s := toRateSnapshot(r)
	return &s
}
