// internal/command/command.go

// Package command implements the line-oriented key:value grammar players use
// in issue comments. Unknown keys are ignored for forward compatibility;
// recognized keys with invalid values produce collected parse errors so every
// problem in a message can be reported in a single reply.
package command

import (
	"strings"

	"github.com/issuearcade/tictactoe/internal/i18n"
	"github.com/issuearcade/tictactoe/internal/models"
)

// RobotDirective is the argument of a robot: command.
type RobotDirective string

const (
	RobotAdd    RobotDirective = "add"
	RobotRemove RobotDirective = "remove"
)

// Set is the sparse batch of commands recognized in one message. Each field
// is nil when the message carried no such command. The first occurrence of a
// kind wins; later duplicates in the same message are ignored.
type Set struct {
	Place    *models.OriginCoordinate
	Color    *models.Color
	Language *string
	Robot    *RobotDirective
}

// Empty reports whether no command was recognized.
func (s *Set) Empty() bool {
	return s.Place == nil && s.Color == nil && s.Language == nil && s.Robot == nil
}

// ParseError describes one recognized-but-invalid command value. Message is
// localized for the room the batch was parsed against.
type ParseError struct {
	Key     string
	Value   string
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// parsers maps each command key to its validating constructor. Keys outside
// this table are not commands and are skipped without error.
var parsers = map[string]func(value string, set *Set, loc *i18n.Printer) *ParseError{
	"chess":    parseChess,
	"color":    parseColor,
	"language": parseLanguage,
	"robot":    parseRobot,
}

// Parse scans a message body line by line and returns the recognized command
// set together with every parse error encountered, localized through loc.
// Errors never abort the scan: a bad color does not invalidate a good
// placement on the next line.
func Parse(body string, loc *i18n.Printer) (Set, []ParseError) {
	var set Set
	var errs []ParseError
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		parse, known := parsers[strings.ToLower(strings.TrimSpace(key))]
		if !known {
			continue
		}
		if perr := parse(strings.TrimSpace(value), &set, loc); perr != nil {
			errs = append(errs, *perr)
		}
	}
	return set, errs
}

var columnLetters = []string{"a", "b", "c"}

func columnIndex(token string) int {
	for i, l := range columnLetters {
		if token == l {
			return i
		}
	}
	return -1
}

func rowIndex(token string) int {
	if len(token) == 1 && token[0] >= '1' && token[0] <= '3' {
		return int(token[0] - '1')
	}
	return -1
}

// parseChess accepts "1:a" or "a:1" style coordinates, either order,
// case-insensitive, and normalizes to a zero-based (x, y) pair with the row
// token first in the origin.
func parseChess(value string, set *Set, loc *i18n.Printer) *ParseError {
	fail := func() *ParseError {
		return &ParseError{
			Key:     "chess",
			Value:   value,
			Message: loc.T("err.parse_coordinate", nil),
		}
	}

	first, second, ok := strings.Cut(strings.ToLower(value), ":")
	if !ok {
		return fail()
	}
	first, second = strings.TrimSpace(first), strings.TrimSpace(second)

	row, col := first, second
	if rowIndex(row) == -1 {
		row, col = col, row
	}
	x, y := rowIndex(row), columnIndex(col)
	if x == -1 || y == -1 {
		return fail()
	}

	if set.Place == nil {
		set.Place = &models.OriginCoordinate{
			Coordinate: models.Coordinate{X: x, Y: y},
			OX:         row,
			OY:         col,
		}
	}
	return nil
}

func parseColor(value string, set *Set, loc *i18n.Printer) *ParseError {
	color := models.Color(strings.ToLower(value))
	if !color.Valid() {
		return &ParseError{
			Key:   "color",
			Value: value,
			Message: loc.T("err.parse_color", map[string]interface{}{
				"Value":  value,
				"Colors": colorList(),
			}),
		}
	}
	if set.Color == nil {
		set.Color = &color
	}
	return nil
}

func parseLanguage(value string, set *Set, loc *i18n.Printer) *ParseError {
	tag := strings.ToLower(value)
	if !i18n.Supported(tag) {
		return &ParseError{
			Key:   "language",
			Value: value,
			Message: loc.T("err.parse_language", map[string]interface{}{
				"Value":     value,
				"Languages": strings.Join(i18n.Languages, ", "),
			}),
		}
	}
	if set.Language == nil {
		set.Language = &tag
	}
	return nil
}

func parseRobot(value string, set *Set, loc *i18n.Printer) *ParseError {
	directive := RobotDirective(strings.ToLower(value))
	if directive != RobotAdd && directive != RobotRemove {
		return &ParseError{
			Key:     "robot",
			Value:   value,
			Message: loc.T("err.parse_robot", nil),
		}
	}
	if set.Robot == nil {
		set.Robot = &directive
	}
	return nil
}

func colorList() string {
	names := make([]string, len(models.Colors))
	for i, c := range models.Colors {
		names[i] = "`" + string(c) + "`"
	}
	return strings.Join(names, ", ")
}
