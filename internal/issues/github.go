// internal/issues/github.go
package issues

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"
)

// GitHub implements Store against the GitHub issues API.
type GitHub struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGitHub builds a token-authenticated client for a repository given as
// "owner/repo".
func NewGitHub(ctx context.Context, token, repository string) (*GitHub, error) {
	owner, repo, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || repo == "" {
		return nil, fmt.Errorf("invalid repository %q, want owner/repo", repository)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &GitHub{
		client: github.NewClient(oauth2.NewClient(ctx, ts)),
		owner:  owner,
		repo:   repo,
	}, nil
}

func (g *GitHub) CreateIssue(ctx context.Context, title, body string, labels []string) (*Issue, error) {
	issue, _, err := g.client.Issues.Create(ctx, g.owner, g.repo, &github.IssueRequest{
		Title:  &title,
		Body:   &body,
		Labels: &labels,
	})
	if err != nil {
		return nil, fmt.Errorf("create issue: %w", err)
	}
	return convertIssue(issue), nil
}

func (g *GitHub) UpdateIssue(ctx context.Context, number int, update IssueUpdate) (*Issue, error) {
	req := &github.IssueRequest{
		Title: update.Title,
		Body:  update.Body,
	}
	if update.State != nil {
		req.State = github.String(string(*update.State))
	}
	issue, _, err := g.client.Issues.Edit(ctx, g.owner, g.repo, number, req)
	if err != nil {
		return nil, fmt.Errorf("update issue #%d: %w", number, err)
	}
	return convertIssue(issue), nil
}

func (g *GitHub) CreateComment(ctx context.Context, number int, body string) (*Comment, error) {
	comment, _, err := g.client.Issues.CreateComment(ctx, g.owner, g.repo, number, &github.IssueComment{
		Body: &body,
	})
	if err != nil {
		return nil, fmt.Errorf("comment on issue #%d: %w", number, err)
	}
	return &Comment{
		ID:  comment.GetID(),
		URL: comment.GetHTMLURL(),
	}, nil
}

// EnsureLabel creates the room label when it does not exist yet. An existing
// label is left untouched.
func (g *GitHub) EnsureLabel(ctx context.Context, label Label) error {
	_, resp, err := g.client.Issues.GetLabel(ctx, g.owner, g.repo, label.Name)
	if err == nil {
		return nil
	}
	if resp == nil || resp.StatusCode != 404 {
		return fmt.Errorf("get label %q: %w", label.Name, err)
	}

	_, _, err = g.client.Issues.CreateLabel(ctx, g.owner, g.repo, &github.Label{
		Name:        &label.Name,
		Color:       &label.Color,
		Description: &label.Description,
	})
	if err != nil {
		return fmt.Errorf("create label %q: %w", label.Name, err)
	}
	return nil
}

func convertIssue(issue *github.Issue) *Issue {
	return &Issue{
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
		Body:   issue.GetBody(),
		URL:    issue.GetHTMLURL(),
	}
}
