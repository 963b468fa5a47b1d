// internal/engine/events_test.go
package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const issuesPayload = `{
  "action": "opened",
  "issue": {
    "number": 5,
    "title": "tic-tac-toe: new game",
    "body": "robot:add",
    "user": {"login": "alice", "html_url": "https://github.com/alice"},
    "labels": []
  }
}`

const commentPayload = `{
  "action": "created",
  "issue": {
    "number": 101,
    "body": "<!-- {} -->",
    "user": {"login": "alice", "html_url": "https://github.com/alice"},
    "labels": [{"name": "tic-tac-toe"}, {"name": "fun"}]
  },
  "comment": {
    "id": 77,
    "html_url": "https://example.com/c/77",
    "body": "chess:1:a",
    "user": {"login": "bob", "html_url": "https://github.com/bob"}
  }
}`

func TestParseIssueOpened(t *testing.T) {
	ev, ok, err := ParseIssueOpened([]byte(issuesPayload))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5, ev.Number)
	assert.Equal(t, "tic-tac-toe: new game", ev.Title)
	assert.Equal(t, "robot:add", ev.Body)
	assert.Equal(t, "alice", ev.Creator.Login)
}

func TestParseIssueOpenedSkipsOtherActions(t *testing.T) {
	_, ok, err := ParseIssueOpened([]byte(`{"action":"closed","issue":{"number":5,"user":{"login":"a"}}}`))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseCommentCreated(t *testing.T) {
	ev, ok, err := ParseCommentCreated([]byte(commentPayload))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 101, ev.IssueNumber)
	assert.Equal(t, []string{"tic-tac-toe", "fun"}, ev.IssueLabels)
	assert.Equal(t, int64(77), ev.CommentID)
	assert.Equal(t, "chess:1:a", ev.CommentBody)
	assert.Equal(t, "bob", ev.Commenter.Login)
}

func TestParseCommentCreatedSkipsPullRequests(t *testing.T) {
	payload := `{
	  "action": "created",
	  "issue": {"number": 8, "pull_request": {}, "user": {"login": "a"}},
	  "comment": {"id": 1, "body": "chess:1:a", "user": {"login": "b"}}
	}`
	_, ok, err := ParseCommentCreated([]byte(payload))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseRejectsMalformedPayload(t *testing.T) {
	_, _, err := ParseIssueOpened([]byte("{"))
	assert.Error(t, err)
	_, _, err = ParseCommentCreated([]byte("not json"))
	assert.Error(t, err)
}
