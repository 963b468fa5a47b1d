// internal/engine/reply.go
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/issuearcade/tictactoe/internal/command"
	"github.com/issuearcade/tictactoe/internal/game"
	"github.com/issuearcade/tictactoe/internal/i18n"
)

// reply posts one rule violation as a comment, quoting the offending
// message when a target is attached.
func (e *Engine) reply(ctx context.Context, loc *i18n.Printer, number int, violation *game.RuleError) error {
	body := string(violation.Severity) + ": " + violation.Message
	if t := violation.Target; t != nil {
		body = loc.T("reply.body", map[string]interface{}{
			"Mention": "@" + t.Login,
			"Name":    t.Name,
			"URL":     t.URL,
			"Quote":   quote(t.Body),
			"Message": body,
		})
	}
	if _, err := e.store.CreateComment(ctx, number, body); err != nil {
		return fmt.Errorf("reply on issue #%d: %w", number, err)
	}
	return nil
}

// replyParseErrors posts a single warning comment enumerating every parse
// problem in the batch.
func (e *Engine) replyParseErrors(ctx context.Context, loc *i18n.Printer, number int, errs []command.ParseError, target *game.ReplyTarget) error {
	lines := []string{loc.T("reply.parse_heading", nil)}
	for _, perr := range errs {
		lines = append(lines, fmt.Sprintf("- `%s:%s` %s", perr.Key, perr.Value, perr.Message))
	}
	return e.reply(ctx, loc, number, &game.RuleError{
		Severity: game.SeverityWarning,
		Message:  strings.Join(lines, "\n"),
		Target:   target,
	})
}

// quote prefixes every line of body with "> " for a markdown blockquote.
func quote(body string) string {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}
