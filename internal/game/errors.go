// internal/game/errors.go
package game

// Severity classifies a rule violation for the reply comment prefix.
type Severity string

const (
	SeverityError   Severity = "Error"
	SeverityWarning Severity = "Warning"
	SeverityInfo    Severity = "Info"
)

// ReplyTarget identifies the message a rule violation should be quoted
// against: the author to mention, a display name for the link, the comment
// url, and the original body.
type ReplyTarget struct {
	Login string
	Name  string
	URL   string
	Body  string
}

// RuleError is a game rule violation. Raising one aborts only the command
// being applied; the engine catches it at the top level and turns it into a
// reply comment instead of a process failure.
type RuleError struct {
	Severity Severity
	Message  string
	Target   *ReplyTarget
}

func (e *RuleError) Error() string {
	return e.Message
}

func (r *Room) ruleError(severity Severity, message string) *RuleError {
	return &RuleError{
		Severity: severity,
		Message:  message,
		Target:   r.target,
	}
}
