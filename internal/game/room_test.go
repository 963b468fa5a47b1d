// internal/game/room_test.go
package game

import (
	"encoding/json"
	"errors"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/issuearcade/tictactoe/internal/models"
)

var testOpts = Options{Name: "TicTacToe"}

func newTestRoom(t *testing.T) *Room {
	t.Helper()
	room := CreateRoom(testOpts, models.Creator{
		Login: "alice",
		URL:   "https://github.com/alice",
		Issue: 1,
	}, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	room.SetRand(rand.New(rand.NewSource(1)))
	return room
}

func coord(x, y int) models.OriginCoordinate {
	return models.OriginCoordinate{
		Coordinate: models.Coordinate{X: x, Y: y},
		OX:         strconv.Itoa(x + 1),
		OY:         string(rune('a' + y)),
	}
}

func requireRuleError(t *testing.T, err error) *RuleError {
	t.Helper()
	var re *RuleError
	require.ErrorAs(t, err, &re)
	return re
}

var (
	alice = Requester{Login: "alice", URL: "https://github.com/alice"}
	bob   = Requester{Login: "bob", URL: "https://github.com/bob"}
	carol = Requester{Login: "carol"}
)

func TestCreateRoomSeatsCreator(t *testing.T) {
	room := newTestRoom(t)
	require.Len(t, room.Meta.Players, 1)
	assert.Equal(t, "alice", room.Meta.Players[0].Login)
	assert.True(t, room.Meta.Players[0].Color.Valid())
	assert.Equal(t, models.StatusWaiting, room.Meta.Status)
}

func TestPlaceSeatsSecondPlayerWithDistinctColor(t *testing.T) {
	room := newTestRoom(t)
	require.NoError(t, room.Place(alice, coord(0, 0), nil))
	require.NoError(t, room.Place(bob, coord(1, 1), nil))

	require.Len(t, room.Meta.Players, 2)
	assert.NotEqual(t, room.Meta.Players[0].Color, room.Meta.Players[1].Color)
	assert.Equal(t, models.StatusPlaying, room.Meta.Status)
	assert.Len(t, room.Meta.Steps, 2)
}

func TestPlaceRejectsThirdPlayer(t *testing.T) {
	room := newTestRoom(t)
	require.NoError(t, room.Place(alice, coord(0, 0), nil))
	require.NoError(t, room.Place(bob, coord(1, 1), nil))

	re := requireRuleError(t, room.Place(carol, coord(2, 2), nil))
	assert.Equal(t, SeverityError, re.Severity)
	assert.Len(t, room.Meta.Players, 2)
	assert.Len(t, room.Meta.Steps, 2)
}

func TestPlaceEnforcesTurnAlternation(t *testing.T) {
	room := newTestRoom(t)
	require.NoError(t, room.Place(alice, coord(0, 0), nil))

	before := room.Meta.Data
	re := requireRuleError(t, room.Place(alice, coord(1, 1), nil))
	assert.Contains(t, re.Message, "1,a", "prior coordinate echoed for the reply")
	assert.Equal(t, before, room.Meta.Data, "board unchanged after rejection")
	assert.Len(t, room.Meta.Steps, 1)
}

func TestPlaceRejectsOccupiedCellNamingOccupant(t *testing.T) {
	room := newTestRoom(t)
	require.NoError(t, room.Place(alice, coord(0, 0), nil))

	re := requireRuleError(t, room.Place(bob, coord(0, 0), nil))
	assert.Contains(t, re.Message, "alice")
	assert.Len(t, room.Meta.Steps, 1)
}

func TestPlaceRecordsCommentRef(t *testing.T) {
	room := newTestRoom(t)
	ref := &models.CommentRef{ID: 99, URL: "https://example.com/c/99"}
	require.NoError(t, room.Place(alice, coord(0, 0), ref))
	require.NotNil(t, room.Meta.Steps[0].Comment)
	assert.Equal(t, int64(99), room.Meta.Steps[0].Comment.ID)
}

func TestChangeColorRelabelsHistory(t *testing.T) {
	room := newTestRoom(t)
	require.NoError(t, room.Place(alice, coord(0, 0), nil))
	require.NoError(t, room.Place(bob, coord(1, 1), nil))

	old := room.Meta.PlayerByLogin("alice").Color
	var target models.Color
	for _, c := range models.UnusedColors(room.Meta.UsedColors()) {
		target = c
		break
	}
	require.NoError(t, room.ChangeColor("alice", target))

	assert.Equal(t, target, room.Meta.PlayerByLogin("alice").Color)
	assert.Equal(t, target, room.Meta.Data.At(models.Coordinate{X: 0, Y: 0}))
	assert.Equal(t, target, room.Meta.Steps[0].Color)
	assert.NotEqual(t, old, room.Meta.Steps[0].Color)
}

// Changing color must not grant an extra move: the last mover is tracked by
// color, and the relabel carries the turn marker along.
func TestChangeColorKeepsTurnOrder(t *testing.T) {
	room := newTestRoom(t)
	require.NoError(t, room.Place(alice, coord(0, 0), nil))
	require.NoError(t, room.Place(bob, coord(1, 1), nil))

	var target models.Color
	for _, c := range models.UnusedColors(room.Meta.UsedColors()) {
		target = c
		break
	}
	require.NoError(t, room.ChangeColor("bob", target))
	requireRuleError(t, room.Place(bob, coord(2, 2), nil))
}

func TestChangeColorRejectsUnseatedAndTakenColors(t *testing.T) {
	room := newTestRoom(t)
	require.NoError(t, room.Place(alice, coord(0, 0), nil))
	require.NoError(t, room.Place(bob, coord(1, 1), nil))

	requireRuleError(t, room.ChangeColor("carol", models.ColorRed))

	bobColor := room.Meta.PlayerByLogin("bob").Color
	re := requireRuleError(t, room.ChangeColor("alice", bobColor))
	assert.Contains(t, re.Message, string(bobColor))

	// Re-requesting your own color is a no-op, not a violation.
	aliceColor := room.Meta.PlayerByLogin("alice").Color
	assert.NoError(t, room.ChangeColor("alice", aliceColor))
}

func TestAddRobotRules(t *testing.T) {
	room := newTestRoom(t)
	require.NoError(t, room.AddRobot())
	require.NotNil(t, room.Meta.RobotPlayer())
	assert.Equal(t, models.StatusPlaying, room.Meta.Status)

	re := requireRuleError(t, room.AddRobot())
	assert.Equal(t, SeverityWarning, re.Severity)

	full := newTestRoom(t)
	require.NoError(t, full.Place(alice, coord(0, 0), nil))
	require.NoError(t, full.Place(bob, coord(1, 1), nil))
	requireRuleError(t, full.AddRobot())
}

func TestRemoveRobotRules(t *testing.T) {
	room := newTestRoom(t)
	requireRuleError(t, room.RemoveRobot())

	require.NoError(t, room.AddRobot())
	require.NoError(t, room.RemoveRobot())
	assert.Nil(t, room.Meta.RobotPlayer())
	assert.Equal(t, models.StatusWaiting, room.Meta.Status)

	require.NoError(t, room.AddRobot())
	require.NoError(t, room.Place(alice, coord(0, 0), nil))
	// Removal after the first placement would invalidate history.
	requireRuleError(t, room.RemoveRobot())
}

func TestRobotRepliesToHumanMove(t *testing.T) {
	room := newTestRoom(t)
	require.NoError(t, room.AddRobot())
	require.NoError(t, room.Place(alice, coord(0, 0), nil))

	require.Len(t, room.Meta.Steps, 2, "robot moved in the same invocation")
	robot := room.Meta.RobotPlayer()
	assert.Equal(t, robot.Color, room.Meta.Steps[1].Color)
	assert.Nil(t, room.Meta.Steps[1].Comment)
}

// Adding a robot when a placement already exists triggers one robot move.
func TestAddRobotAfterPlacementMoves(t *testing.T) {
	room := newTestRoom(t)
	require.NoError(t, room.Place(alice, coord(1, 1), nil))
	require.NoError(t, room.AddRobot())

	require.Len(t, room.Meta.Steps, 2)
	assert.Equal(t, room.Meta.RobotPlayer().Color, room.Meta.Steps[1].Color)
}

func TestRobotNeverLosesAFullGame(t *testing.T) {
	room := newTestRoom(t)
	require.NoError(t, room.AddRobot())

	// A greedy human: first empty cell every turn.
	for !room.Ended() {
		cell := room.Meta.Data.EmptyCells()[0]
		err := room.Place(alice, coord(cell.X, cell.Y), nil)
		if err != nil {
			// Cell grabbed by the robot between reads cannot happen since we
			// re-read after its reply; any rule error is a real failure.
			t.Fatalf("place: %v", err)
		}
	}
	if room.Meta.Winner.Player != nil {
		assert.True(t, room.Meta.Winner.Player.Robot, "robot must not lose")
	}
}

func TestLanguageCreatorOnly(t *testing.T) {
	room := newTestRoom(t)
	requireRuleError(t, room.SetLanguage("bob", "zh"))

	require.NoError(t, room.SetLanguage("alice", "zh"))
	assert.Equal(t, "zh", room.Meta.Language)
	assert.Equal(t, "平局", room.Printer().T("result.tie", nil))
}

// Full scenario: alice and bob alternate until alice completes the main
// diagonal. Status walks waiting -> playing -> end and the winner matches
// the diagonal's owner.
func TestDiagonalWinEndToEnd(t *testing.T) {
	room := newTestRoom(t)
	assert.Equal(t, models.StatusWaiting, room.Meta.Status)

	require.NoError(t, room.Place(alice, coord(0, 0), nil))
	require.NoError(t, room.Place(bob, coord(0, 1), nil))
	assert.Equal(t, models.StatusPlaying, room.Meta.Status)

	require.NoError(t, room.Place(alice, coord(1, 1), nil))
	require.NoError(t, room.Place(bob, coord(0, 2), nil))
	require.NoError(t, room.Place(alice, coord(2, 2), nil))

	assert.Equal(t, models.StatusEnd, room.Meta.Status)
	require.NotNil(t, room.Meta.Winner.Player)
	assert.Equal(t, "alice", room.Meta.Winner.Player.Login)
	assert.True(t, room.Ended())
	assert.Equal(t, "alice wins", room.ResultLine())
}

func TestRenderParseRoundTrip(t *testing.T) {
	room := newTestRoom(t)
	require.NoError(t, room.Place(alice, coord(0, 0), &models.CommentRef{ID: 7, URL: "https://example.com/c/7"}))
	require.NoError(t, room.Place(bob, coord(1, 1), nil))

	body, err := room.Body()
	require.NoError(t, err)

	back, err := LoadRoom(body, testOpts)
	require.NoError(t, err)
	assert.Equal(t, *room.Meta, *back.Meta)
}

func TestLoadRoomWithoutMeta(t *testing.T) {
	_, err := LoadRoom("just some text", testOpts)
	assert.ErrorIs(t, err, ErrMetaNotFound)

	_, err = LoadRoom("<!-- {broken -->", testOpts)
	assert.Error(t, err)
}

// A hand-edited marker can be valid JSON yet inconsistent, e.g. a grid line
// filled with a color no seated player holds. Such bodies are corrupted state
// and must fail the load, not flow into the rule handlers.
func TestLoadRoomRejectsTamperedMeta(t *testing.T) {
	room := newTestRoom(t)
	require.NoError(t, room.Place(alice, coord(0, 0), nil))
	require.NoError(t, room.Place(bob, coord(1, 1), nil))

	free := models.UnusedColors(room.Meta.UsedColors())[0]
	for y := 0; y < 3; y++ {
		room.Meta.Data.Set(models.Coordinate{X: 2, Y: y}, free)
	}

	encoded, err := json.Marshal(room.Meta)
	require.NoError(t, err)

	_, err = LoadRoom("<!-- "+string(encoded)+" -->", testOpts)
	assert.ErrorIs(t, err, ErrMetaNotFound)
	assert.Contains(t, err.Error(), string(free))
}

// Recompute must stay panic-free even against an inconsistent grid: a winning
// line in an unheld color leaves the winner undecided instead of crowning a
// seat that does not exist.
func TestRecomputeIgnoresWinningLineOfUnseatedColor(t *testing.T) {
	room := newTestRoom(t)
	require.NoError(t, room.Place(alice, coord(0, 0), nil))
	require.NoError(t, room.Place(bob, coord(1, 1), nil))

	free := models.UnusedColors(room.Meta.UsedColors())[0]
	for y := 0; y < 3; y++ {
		room.Meta.Data.Set(models.Coordinate{X: 2, Y: y}, free)
	}

	room.Recompute()
	assert.False(t, room.Meta.Winner.Decided())
	assert.NotEqual(t, models.StatusEnd, room.Meta.Status)
}

func TestTitleRendering(t *testing.T) {
	room := newTestRoom(t)
	assert.Contains(t, room.Title(), ":chess_pawn:")
	assert.Contains(t, room.Title(), "`TicTacToe`")
	assert.Contains(t, room.Title(), "`waiting`")

	require.NoError(t, room.Place(alice, coord(0, 0), nil))
	require.NoError(t, room.Place(bob, coord(0, 1), nil))
	require.NoError(t, room.Place(alice, coord(1, 1), nil))
	require.NoError(t, room.Place(bob, coord(0, 2), nil))
	require.NoError(t, room.Place(alice, coord(2, 2), nil))

	title := room.Title()
	assert.Contains(t, title, "alice vs bob")
	assert.Contains(t, title, "alice wins")
}

func TestRuleErrorUnwrapsAsError(t *testing.T) {
	room := newTestRoom(t)
	room.SetReplyTarget(&ReplyTarget{Login: "alice", Body: "chess:1:a"})
	require.NoError(t, room.Place(alice, coord(0, 0), nil))

	err := room.Place(alice, coord(1, 1), nil)
	var re *RuleError
	require.True(t, errors.As(err, &re))
	require.NotNil(t, re.Target)
	assert.Equal(t, "alice", re.Target.Login)
}
