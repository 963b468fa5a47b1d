// internal/game/render.go
package game

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/issuearcade/tictactoe/internal/i18n"
	"github.com/issuearcade/tictactoe/internal/models"
)

// metaPattern locates the machine-readable state embedded in a rendered
// body. The comment is invisible in the rendered markdown.
var metaPattern = regexp.MustCompile(`<!--\s*(\{.*\})\s*-->`)

// ErrMetaNotFound is returned when a body carries no parseable embedded
// state. Unrecoverable for the invocation.
var ErrMetaNotFound = fmt.Errorf("game meta data not found")

// LoadRoom reconstructs a room from a previously rendered issue body.
func LoadRoom(body string, opts Options) (*Room, error) {
	match := metaPattern.FindStringSubmatch(body)
	if match == nil {
		return nil, ErrMetaNotFound
	}
	var meta models.Meta
	if err := json.Unmarshal([]byte(match[1]), &meta); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetaNotFound, err)
	}
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetaNotFound, err)
	}
	return NewRoom(&meta, opts), nil
}

// Title renders the issue title: room name, status, the matchup once both
// seats are filled, and the result once decided.
func (r *Room) Title() string {
	m := r.Meta

	blocks := []string{r.opts.Name, string(m.Status)}
	if len(m.Players) == 2 {
		blocks = append(blocks, m.Players[0].Login+" vs "+m.Players[1].Login)
		if m.Winner.Decided() {
			blocks = append(blocks, r.ResultLine())
		}
	}
	for i, b := range blocks {
		blocks[i] = "`" + b + "`"
	}
	return ":chess_pawn: " + strings.Join(blocks, " ")
}

// Body renders the full issue body: the embedded meta comment first, then
// the human-readable sections. Parse(Body()) round-trips the meta.
func (r *Room) Body() (string, error) {
	m := r.Meta

	encoded, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal meta: %w", err)
	}

	lines := []string{
		"<!-- " + string(encoded) + " -->",
		r.loc.T("welcome.title", map[string]interface{}{"Name": r.opts.Name}),
		r.loc.T("welcome.commands", nil),
		r.loc.T("help.chess", nil),
		r.loc.T("help.color", map[string]interface{}{"Colors": colorNames()}),
		r.loc.T("help.robot", nil),
		r.loc.T("help.language", map[string]interface{}{"Languages": strings.Join(i18n.Languages, ", ")}),
		"",
		"`Status`: " + string(m.Status),
		"`Creator`: " + playerLink(m.Creator.Login, m.Creator.URL),
		"`Player`: " + r.playerLine(),
	}

	if next := m.NextPlayer(); next != nil {
		lines = append(lines, "`Next`: "+playerLink(next.Login, next.URL)+" "+next.Color.Emoji())
	}

	lines = append(lines,
		"",
		"|+|a|b|c|",
		"|:--:|:--:|:--:|:--:|",
	)
	for x := 0; x < 3; x++ {
		row := fmt.Sprintf("|%d|%s|%s|%s|",
			x+1, m.Data[x][0].Emoji(), m.Data[x][1].Emoji(), m.Data[x][2].Emoji())
		lines = append(lines, row)
	}

	if len(m.Steps) > 0 {
		lines = append(lines, "", "`Steps`:")
		for _, step := range m.Steps {
			login := string(step.Color)
			if p := m.PlayerByColor(step.Color); p != nil {
				login = p.Login
			}
			entry := fmt.Sprintf("%s:%s %s", step.Coordinates.OX, step.Coordinates.OY, login)
			if step.Comment != nil {
				entry = fmt.Sprintf("[%s](%s)", entry, step.Comment.URL)
			}
			lines = append(lines, "+ "+step.Color.Emoji()+" "+entry)
		}
	}

	if result := r.ResultLine(); result != "" {
		lines = append(lines, "", "`Result`: "+result)
	}

	return strings.Join(lines, "\n"), nil
}

func (r *Room) playerLine() string {
	parts := make([]string, len(r.Meta.Players))
	for i, p := range r.Meta.Players {
		parts[i] = playerLink(p.Login, p.URL) + " " + p.Color.Emoji()
	}
	return strings.Join(parts, " vs ")
}

func playerLink(login, url string) string {
	if url == "" {
		return login
	}
	return "[" + login + "](" + url + ")"
}
