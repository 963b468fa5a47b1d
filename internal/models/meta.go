// internal/models/meta.go
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the derived room lifecycle state. It is recomputed from the
// player count and winner after every command batch, never set directly.
type Status string

const (
	StatusInit    Status = "init"
	StatusWaiting Status = "waiting"
	StatusPlaying Status = "playing"
	StatusEnd     Status = "end"
)

// RobotLogin is the reserved login the robot player is seated under.
const RobotLogin = "robot"

// Player is one seat in the room. A robot seat has Robot set and no URL.
type Player struct {
	Login string `json:"login"`
	URL   string `json:"url,omitempty"`
	Color Color  `json:"color"`
	Robot bool   `json:"robot,omitempty"`
}

// Mention returns the @-mention for a human player, or "" for the robot.
func (p *Player) Mention() string {
	if p.Robot {
		return ""
	}
	return "@" + p.Login
}

// CommentRef points a step back at the comment that produced it. Robot moves
// have no originating comment and carry no ref.
type CommentRef struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}

// Step is one accepted placement, in chronological order.
type Step struct {
	Color       Color            `json:"color"`
	Coordinates OriginCoordinate `json:"coordinates"`
	Comment     *CommentRef      `json:"comment,omitempty"`
}

// Creator records who opened the room and from which issue. Immutable.
type Creator struct {
	Login string `json:"login"`
	URL   string `json:"url,omitempty"`
	Issue int    `json:"issue"`
}

// Winner is the three-valued game outcome: undecided, a specific player,
// or a tie. On the wire it is null, a player object, or the string "tie",
// matching the embedded meta format.
type Winner struct {
	Tie    bool
	Player *Player
}

// Decided reports whether the game has a result.
func (w Winner) Decided() bool {
	return w.Tie || w.Player != nil
}

func (w Winner) MarshalJSON() ([]byte, error) {
	switch {
	case w.Tie:
		return json.Marshal("tie")
	case w.Player != nil:
		return json.Marshal(w.Player)
	default:
		return []byte("null"), nil
	}
}

func (w *Winner) UnmarshalJSON(data []byte) error {
	*w = Winner{}
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "tie" {
			return fmt.Errorf("unknown winner sentinel %q", s)
		}
		w.Tie = true
		return nil
	}
	var p Player
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decode winner: %w", err)
	}
	w.Player = &p
	return nil
}

// Meta is the full persisted state of one room. It lives embedded in the
// rendered issue body and is reconstructed from it on every invocation.
type Meta struct {
	ID         uuid.UUID `json:"id"`
	Language   string    `json:"language,omitempty"`
	Status     Status    `json:"status"`
	Players    []Player  `json:"players"`
	Data       Grid      `json:"data"`
	Steps      []Step    `json:"steps"`
	Creator    Creator   `json:"creator"`
	Winner     Winner    `json:"winner"`
	CreateTime time.Time `json:"create_time"`
	UpdateTime time.Time `json:"update_time"`
}

// NewMeta builds an empty room owned by the given creator.
func NewMeta(creator Creator, now time.Time) *Meta {
	return &Meta{
		ID:         uuid.New(),
		Status:     StatusInit,
		Players:    []Player{},
		Steps:      []Step{},
		Creator:    creator,
		CreateTime: now,
		UpdateTime: now,
	}
}

// Validate checks the invariants a well-formed Meta upholds. A decoded body
// that is valid JSON can still be inconsistent when someone rewrites the
// embedded marker by hand; callers treat a failure here as corrupted state.
func (m *Meta) Validate() error {
	if len(m.Players) > 2 {
		return fmt.Errorf("%d players seated, at most 2 allowed", len(m.Players))
	}
	robots := 0
	for i, p := range m.Players {
		if !p.Color.Valid() {
			return fmt.Errorf("player %q holds unknown color %q", p.Login, p.Color)
		}
		if p.Robot {
			robots++
		}
		for _, q := range m.Players[:i] {
			if q.Color == p.Color {
				return fmt.Errorf("color %q held by both %q and %q", p.Color, q.Login, p.Login)
			}
		}
	}
	if robots > 1 {
		return fmt.Errorf("%d robot players seated, at most 1 allowed", robots)
	}

	filled := 0
	for x := range m.Data {
		for y := range m.Data[x] {
			c := m.Data[x][y]
			if c == "" {
				continue
			}
			filled++
			if m.PlayerByColor(c) == nil {
				return fmt.Errorf("cell %d,%d holds color %q of no seated player", x, y, c)
			}
		}
	}
	if len(m.Steps) > filled {
		return fmt.Errorf("%d steps recorded for %d filled cells", len(m.Steps), filled)
	}
	for i, s := range m.Steps {
		if m.PlayerByColor(s.Color) == nil {
			return fmt.Errorf("step %d holds color %q of no seated player", i, s.Color)
		}
	}
	if w := m.Winner.Player; w != nil && m.PlayerByLogin(w.Login) == nil {
		return fmt.Errorf("winner %q is not seated", w.Login)
	}
	return nil
}

// PlayerByLogin returns the seat for a login, or nil.
func (m *Meta) PlayerByLogin(login string) *Player {
	for i := range m.Players {
		if m.Players[i].Login == login {
			return &m.Players[i]
		}
	}
	return nil
}

// PlayerByColor returns the seat holding a color, or nil.
func (m *Meta) PlayerByColor(color Color) *Player {
	for i := range m.Players {
		if m.Players[i].Color == color {
			return &m.Players[i]
		}
	}
	return nil
}

// RobotPlayer returns the robot seat, or nil.
func (m *Meta) RobotPlayer() *Player {
	for i := range m.Players {
		if m.Players[i].Robot {
			return &m.Players[i]
		}
	}
	return nil
}

// UsedColors lists the colors currently held by seated players.
func (m *Meta) UsedColors() []Color {
	colors := make([]Color, 0, len(m.Players))
	for _, p := range m.Players {
		colors = append(colors, p.Color)
	}
	return colors
}

// LastStep returns the most recent placement, or nil before the first move.
func (m *Meta) LastStep() *Step {
	if len(m.Steps) == 0 {
		return nil
	}
	return &m.Steps[len(m.Steps)-1]
}

// NextPlayer returns the seat whose turn it is, or nil when the room is not
// full or no move has been made yet (either seat may open).
func (m *Meta) NextPlayer() *Player {
	if len(m.Players) < 2 {
		return nil
	}
	last := m.LastStep()
	if last == nil {
		return nil
	}
	for i := range m.Players {
		if m.Players[i].Color == last.Color {
			return &m.Players[(i+1)%len(m.Players)]
		}
	}
	return nil
}
