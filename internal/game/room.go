// internal/game/room.go

// Package game implements the tic-tac-toe room: the state machine over the
// persisted Meta, the win evaluator, and the minimax search driving the
// optional robot opponent. A Room lives for exactly one invocation; the
// rendered issue body is the only durable store.
package game

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/issuearcade/tictactoe/internal/i18n"
	"github.com/issuearcade/tictactoe/internal/models"
)

// Options configures a room independently of its persisted state.
type Options struct {
	// Name is the display name of the game, used in the title and welcome
	// heading.
	Name string
}

// Requester is the identity applying a command, as supplied by the
// collaborator. It is trusted as-is.
type Requester struct {
	Login string
	URL   string
}

// Room wraps a Meta with the operations of the state machine. Mutations go
// through the Apply* methods so the invariants (turn alternation, color
// uniqueness, seat limit) are enforced before the grid changes.
type Room struct {
	Meta *models.Meta

	opts   Options
	loc    *i18n.Printer
	rng    *rand.Rand
	target *ReplyTarget
}

// NewRoom wraps an already-parsed Meta.
func NewRoom(meta *models.Meta, opts Options) *Room {
	return &Room{
		Meta: meta,
		opts: opts,
		loc:  i18n.NewPrinter(meta.Language),
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateRoom builds a fresh room owned by creator, seating them as the first
// player with a random color.
func CreateRoom(opts Options, creator models.Creator, now time.Time) *Room {
	r := NewRoom(models.NewMeta(creator, now), opts)
	r.Meta.Players = append(r.Meta.Players, models.Player{
		Login: creator.Login,
		URL:   creator.URL,
		Color: r.randomColor(),
	})
	r.Recompute()
	return r
}

// SetRand replaces the random source used for color assignment and robot
// move tie-breaking. Tests use it to pin choices.
func (r *Room) SetRand(rng *rand.Rand) {
	r.rng = rng
}

// SetReplyTarget sets the message rule errors raised by subsequent commands
// will be quoted against.
func (r *Room) SetReplyTarget(target *ReplyTarget) {
	r.target = target
}

// Printer returns the localizer for the room's language.
func (r *Room) Printer() *i18n.Printer {
	return r.loc
}

// Ended reports whether the room is terminal.
func (r *Room) Ended() bool {
	return r.Meta.Status == models.StatusEnd
}

// Touch refreshes the update timestamp. Called once per persisted mutation.
func (r *Room) Touch(now time.Time) {
	r.Meta.UpdateTime = now
}

func (r *Room) randomColor() models.Color {
	unused := models.UnusedColors(r.Meta.UsedColors())
	return unused[r.rng.Intn(len(unused))]
}

// Place applies a placement command for req at coord. An unseated requester
// is auto-seated when a seat is free. After an accepted human move, a seated
// robot whose turn has come replies immediately.
func (r *Room) Place(req Requester, coord models.OriginCoordinate, ref *models.CommentRef) error {
	m := r.Meta

	player := m.PlayerByLogin(req.Login)
	if player == nil {
		if len(m.Players) >= 2 {
			return r.ruleError(SeverityError, r.loc.T("err.room_full", nil))
		}
		m.Players = append(m.Players, models.Player{
			Login: req.Login,
			URL:   req.URL,
			Color: r.randomColor(),
		})
		player = &m.Players[len(m.Players)-1]
	}

	if last := m.LastStep(); last != nil && last.Color == player.Color {
		return r.ruleError(SeverityError, r.loc.T("err.wait_turn", map[string]interface{}{
			"OX": last.Coordinates.OX,
			"OY": last.Coordinates.OY,
		}))
	}

	if occupant := m.Data.At(coord.Coordinate); occupant != "" {
		login := string(occupant)
		if p := m.PlayerByColor(occupant); p != nil {
			login = p.Login
		}
		return r.ruleError(SeverityError, r.loc.T("err.occupied", map[string]interface{}{
			"OX":    coord.OX,
			"OY":    coord.OY,
			"Login": login,
		}))
	}

	m.Data.Set(coord.Coordinate, player.Color)
	m.Steps = append(m.Steps, models.Step{
		Color:       player.Color,
		Coordinates: coord,
		Comment:     ref,
	})

	r.Recompute()
	r.maybeRobotMove()
	return nil
}

// ChangeColor repaints a seated player's pieces. Every grid cell and step
// carrying the old color is relabeled, so move history and turn order follow
// the player through the change.
func (r *Room) ChangeColor(login string, color models.Color) error {
	m := r.Meta

	player := m.PlayerByLogin(login)
	if player == nil {
		return r.ruleError(SeverityError, r.loc.T("err.not_seated", nil))
	}
	if other := m.PlayerByColor(color); other != nil && other.Login != login {
		return r.ruleError(SeverityError, r.loc.T("err.color_used", map[string]interface{}{
			"Color":  string(color),
			"Colors": colorNames(),
		}))
	}
	if player.Color == color {
		return nil
	}

	old := player.Color
	for x := range m.Data {
		for y := range m.Data[x] {
			if m.Data[x][y] == old {
				m.Data[x][y] = color
			}
		}
	}
	for i := range m.Steps {
		if m.Steps[i].Color == old {
			m.Steps[i].Color = color
		}
	}
	player.Color = color
	r.Recompute()
	return nil
}

// AddRobot seats the computer opponent. When placements already exist and
// the robot is next to move, it moves immediately.
func (r *Room) AddRobot() error {
	m := r.Meta

	if m.RobotPlayer() != nil {
		return r.ruleError(SeverityWarning, r.loc.T("err.robot_exists", nil))
	}
	if len(m.Players) >= 2 {
		return r.ruleError(SeverityError, r.loc.T("err.robot_full", nil))
	}

	m.Players = append(m.Players, models.Player{
		Login: models.RobotLogin,
		Color: r.randomColor(),
		Robot: true,
	})
	r.Recompute()
	r.maybeRobotMove()
	return nil
}

// RemoveRobot unseats the robot. Disallowed once any placement was made,
// since that would invalidate the step history.
func (r *Room) RemoveRobot() error {
	m := r.Meta

	robot := m.RobotPlayer()
	if robot == nil {
		return r.ruleError(SeverityWarning, r.loc.T("err.robot_none", nil))
	}
	if len(m.Steps) > 0 {
		return r.ruleError(SeverityError, r.loc.T("err.robot_started", nil))
	}

	players := m.Players[:0]
	for _, p := range m.Players {
		if !p.Robot {
			players = append(players, p)
		}
	}
	m.Players = players
	r.Recompute()
	return nil
}

// SetLanguage switches the room locale. Creator only.
func (r *Room) SetLanguage(login, tag string) error {
	if login != r.Meta.Creator.Login {
		return r.ruleError(SeverityError, r.loc.T("err.language_creator", nil))
	}
	r.Meta.Language = tag
	r.loc = i18n.NewPrinter(tag)
	return nil
}

// Recompute derives winner and status from the grid and player count. It is
// idempotent and re-run after every command batch.
func (r *Room) Recompute() {
	m := r.Meta

	winner, tie := Evaluate(&m.Data)
	switch {
	// A winning color held by no seated player means the grid and the
	// seats disagree; leave the winner undecided rather than invent one.
	case winner != "" && m.PlayerByColor(winner) != nil:
		p := *m.PlayerByColor(winner)
		m.Winner = models.Winner{Player: &p}
	case tie:
		m.Winner = models.Winner{Tie: true}
	default:
		m.Winner = models.Winner{}
	}

	switch {
	case m.Winner.Decided():
		m.Status = models.StatusEnd
	case len(m.Players) == 0:
		m.Status = models.StatusInit
	case len(m.Players) == 1:
		m.Status = models.StatusWaiting
	default:
		m.Status = models.StatusPlaying
	}
}

// maybeRobotMove plays one robot move when the room is full, the game is
// open, and the robot is the side to move.
func (r *Room) maybeRobotMove() {
	m := r.Meta

	if m.Winner.Decided() || len(m.Players) < 2 {
		return
	}
	next := m.NextPlayer()
	if next == nil || !next.Robot {
		return
	}

	robot := m.RobotPlayer()
	var human models.Color
	for _, p := range m.Players {
		if !p.Robot {
			human = p.Color
		}
	}

	moves := BestMoves(m.Data, robot.Color, human)
	if len(moves) == 0 {
		return
	}
	cell := moves[r.rng.Intn(len(moves))]

	m.Data.Set(cell, robot.Color)
	m.Steps = append(m.Steps, models.Step{
		Color: robot.Color,
		Coordinates: models.OriginCoordinate{
			Coordinate: cell,
			OX:         strconv.Itoa(cell.X + 1),
			OY:         string(rune('a' + cell.Y)),
		},
	})
	r.Recompute()
}

// ResultLine renders the localized outcome, or "" while undecided.
func (r *Room) ResultLine() string {
	switch {
	case r.Meta.Winner.Tie:
		return r.loc.T("result.tie", nil)
	case r.Meta.Winner.Player != nil:
		return r.loc.T("result.win", map[string]interface{}{
			"Login": r.Meta.Winner.Player.Login,
		})
	default:
		return ""
	}
}

func colorNames() string {
	names := make([]string, len(models.Colors))
	for i, c := range models.Colors {
		names[i] = "`" + string(c) + "`"
	}
	return strings.Join(names, ", ")
}
