// internal/issues/issues.go

// Package issues is the document-store collaborator: the narrow interface
// the engine persists rooms through, plus its GitHub implementation. The
// core assumes each call is atomic; retry policy belongs to the caller's
// platform, not here.
package issues

import "context"

// Issue is the subset of a document the engine cares about.
type Issue struct {
	Number int
	Title  string
	Body   string
	URL    string
}

// Comment is a posted reply.
type Comment struct {
	ID  int64
	URL string
}

// State is the open/closed document state.
type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
)

// IssueUpdate carries the fields of an update; nil fields are left as-is.
type IssueUpdate struct {
	Title *string
	Body  *string
	State *State
}

// Label describes the room label ensured on startup.
type Label struct {
	Name        string
	Color       string
	Description string
}

// Store is the document-store collaborator interface.
type Store interface {
	CreateIssue(ctx context.Context, title, body string, labels []string) (*Issue, error)
	UpdateIssue(ctx context.Context, number int, update IssueUpdate) (*Issue, error)
	CreateComment(ctx context.Context, number int, body string) (*Comment, error)
	EnsureLabel(ctx context.Context, label Label) error
}

// String returns a pointer to s, for IssueUpdate fields.
func String(s string) *string {
	return &s
}

// StatePtr returns a pointer to st, for IssueUpdate fields.
func StatePtr(st State) *State {
	return &st
}
