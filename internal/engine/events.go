// internal/engine/events.go
package engine

import (
	"encoding/json"
	"fmt"
)

// Identity is the user identity a payload attributes an event to. Trusted
// as supplied by the platform.
type Identity struct {
	Login string
	URL   string
}

// IssueOpenedEvent is a new document whose title may open a room.
type IssueOpenedEvent struct {
	Number  int
	Title   string
	Body    string
	Creator Identity
}

// CommentCreatedEvent is a new comment on a (possibly) labelled room issue.
type CommentCreatedEvent struct {
	IssueNumber int
	IssueBody   string
	IssueLabels []string
	CommentID   int64
	CommentURL  string
	CommentBody string
	Commenter   Identity
}

// webhookPayload is the subset of the GitHub webhook JSON the engine reads.
type webhookPayload struct {
	Action string `json:"action"`
	Issue  *struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
		Body   string `json:"body"`
		User   *struct {
			Login   string `json:"login"`
			HTMLURL string `json:"html_url"`
		} `json:"user"`
		Labels []struct {
			Name string `json:"name"`
		} `json:"labels"`
		PullRequest *struct{} `json:"pull_request"`
	} `json:"issue"`
	Comment *struct {
		ID      int64  `json:"id"`
		HTMLURL string `json:"html_url"`
		Body    string `json:"body"`
		User    *struct {
			Login   string `json:"login"`
			HTMLURL string `json:"html_url"`
		} `json:"user"`
	} `json:"comment"`
}

// ParseIssueOpened decodes an "issues" event payload. ok is false when the
// payload is not an opened issue.
func ParseIssueOpened(data []byte) (*IssueOpenedEvent, bool, error) {
	var p webhookPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false, fmt.Errorf("decode issues payload: %w", err)
	}
	if p.Action != "opened" || p.Issue == nil || p.Issue.User == nil {
		return nil, false, nil
	}
	return &IssueOpenedEvent{
		Number: p.Issue.Number,
		Title:  p.Issue.Title,
		Body:   p.Issue.Body,
		Creator: Identity{
			Login: p.Issue.User.Login,
			URL:   p.Issue.User.HTMLURL,
		},
	}, true, nil
}

// ParseCommentCreated decodes an "issue_comment" event payload. ok is false
// for deleted/edited comments and for comments on pull requests.
func ParseCommentCreated(data []byte) (*CommentCreatedEvent, bool, error) {
	var p webhookPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false, fmt.Errorf("decode issue_comment payload: %w", err)
	}
	if p.Action != "created" || p.Issue == nil || p.Comment == nil || p.Comment.User == nil {
		return nil, false, nil
	}
	if p.Issue.PullRequest != nil {
		return nil, false, nil
	}

	labels := make([]string, len(p.Issue.Labels))
	for i, l := range p.Issue.Labels {
		labels[i] = l.Name
	}
	return &CommentCreatedEvent{
		IssueNumber: p.Issue.Number,
		IssueBody:   p.Issue.Body,
		IssueLabels: labels,
		CommentID:   p.Comment.ID,
		CommentURL:  p.Comment.HTMLURL,
		CommentBody: p.Comment.Body,
		Commenter: Identity{
			Login: p.Comment.User.Login,
			URL:   p.Comment.User.HTMLURL,
		},
	}, true, nil
}
