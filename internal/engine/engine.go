// internal/engine/engine.go

// Package engine reacts to the two inbound events - a new issue whose title
// opens a room, and a new comment on a labelled room issue - and drives the
// room state machine, persisting results through the document store. One
// event in, zero or more store calls out; no state survives an invocation.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/issuearcade/tictactoe/internal/command"
	"github.com/issuearcade/tictactoe/internal/config"
	"github.com/issuearcade/tictactoe/internal/game"
	"github.com/issuearcade/tictactoe/internal/i18n"
	"github.com/issuearcade/tictactoe/internal/issues"
	"github.com/issuearcade/tictactoe/internal/models"
)

// Engine orchestrates one invocation.
type Engine struct {
	store issues.Store
	cfg   *config.Config
	log   *logrus.Logger

	// Now is the clock used for meta timestamps. Tests override it.
	Now func() time.Time
}

// New wires an engine against a store.
func New(store issues.Store, cfg *config.Config, log *logrus.Logger) *Engine {
	return &Engine{
		store: store,
		cfg:   cfg,
		log:   log,
		Now:   time.Now,
	}
}

func (e *Engine) roomOptions() game.Options {
	return game.Options{Name: e.cfg.RoomName}
}

// HandleIssueOpened opens a room when the issue title matches the configured
// pattern: the creator is seated, the labelled room issue is created, a link
// comment is posted on the originating issue, and that issue is closed.
func (e *Engine) HandleIssueOpened(ctx context.Context, ev *IssueOpenedEvent) error {
	if !e.cfg.TitlePattern.MatchString(ev.Title) {
		e.log.WithField("issue", ev.Number).Debug("title does not open a room")
		return nil
	}

	creator := models.Creator{
		Login: ev.Creator.Login,
		URL:   ev.Creator.URL,
		Issue: ev.Number,
	}
	room := game.CreateRoom(e.roomOptions(), creator, e.Now())
	if i18n.Supported(e.cfg.Language) {
		if err := room.SetLanguage(creator.Login, e.cfg.Language); err != nil {
			return err
		}
	}

	// The opening body may pre-configure the room (language:zh, robot:add).
	set, _ := command.Parse(ev.Body, room.Printer())
	if set.Language != nil {
		if err := room.SetLanguage(creator.Login, *set.Language); err != nil {
			return err
		}
	}
	if set.Robot != nil && *set.Robot == command.RobotAdd {
		if err := room.AddRobot(); err != nil {
			return err
		}
	}
	room.Recompute()

	if err := e.store.EnsureLabel(ctx, issues.Label{
		Name:        e.cfg.Label,
		Color:       e.cfg.LabelColor,
		Description: e.cfg.LabelDescription,
	}); err != nil {
		return err
	}

	body, err := room.Body()
	if err != nil {
		return err
	}
	gameIssue, err := e.store.CreateIssue(ctx, room.Title(), body, []string{e.cfg.Label})
	if err != nil {
		return err
	}
	e.log.WithFields(logrus.Fields{
		"room":  room.Meta.ID,
		"issue": gameIssue.Number,
	}).Info("room created")

	link := room.Printer().T("room.created", map[string]interface{}{
		"Title": gameIssue.Title,
		"URL":   gameIssue.URL,
	})
	if _, err := e.store.CreateComment(ctx, ev.Number, link); err != nil {
		return err
	}

	_, err = e.store.UpdateIssue(ctx, ev.Number, issues.IssueUpdate{
		State: issues.StatePtr(issues.StateClosed),
	})
	return err
}

// HandleCommentCreated applies one command batch to the room encoded in the
// issue body. Rule violations abort only their own command and become reply
// comments; a missing meta marker is a top-level failure.
func (e *Engine) HandleCommentCreated(ctx context.Context, ev *CommentCreatedEvent) error {
	if !hasLabel(ev.IssueLabels, e.cfg.Label) {
		return nil
	}

	room, err := game.LoadRoom(ev.IssueBody, e.roomOptions())
	if err != nil {
		return fmt.Errorf("issue #%d: %w", ev.IssueNumber, err)
	}

	target := &game.ReplyTarget{
		Login: ev.Commenter.Login,
		Name:  fmt.Sprintf("issue-comment: %d", ev.CommentID),
		URL:   ev.CommentURL,
		Body:  ev.CommentBody,
	}
	room.SetReplyTarget(target)

	if room.Ended() {
		return e.reply(ctx, room.Printer(), ev.IssueNumber, &game.RuleError{
			Severity: game.SeverityWarning,
			Message:  room.Printer().T("err.ended", nil),
			Target:   target,
		})
	}

	set, parseErrs := command.Parse(ev.CommentBody, room.Printer())
	if set.Empty() && len(parseErrs) == 0 {
		// Ordinary discussion on the room issue, nothing to do.
		return nil
	}

	var violations []*game.RuleError
	mutated := false
	apply := func(err error) error {
		var re *game.RuleError
		if errors.As(err, &re) {
			violations = append(violations, re)
			return nil
		}
		if err == nil {
			mutated = true
		}
		return err
	}

	if set.Language != nil {
		if err := apply(room.SetLanguage(ev.Commenter.Login, *set.Language)); err != nil {
			return err
		}
	}
	if set.Color != nil {
		if err := apply(room.ChangeColor(ev.Commenter.Login, *set.Color)); err != nil {
			return err
		}
	}
	if set.Robot != nil {
		switch *set.Robot {
		case command.RobotAdd:
			if err := apply(room.AddRobot()); err != nil {
				return err
			}
		case command.RobotRemove:
			if err := apply(room.RemoveRobot()); err != nil {
				return err
			}
		}
	}
	if set.Place != nil {
		ref := &models.CommentRef{ID: ev.CommentID, URL: ev.CommentURL}
		if err := apply(room.Place(game.Requester(ev.Commenter), *set.Place, ref)); err != nil {
			return err
		}
	}

	room.Recompute()

	if len(parseErrs) > 0 {
		if err := e.replyParseErrors(ctx, room.Printer(), ev.IssueNumber, parseErrs, target); err != nil {
			return err
		}
	}
	for _, v := range violations {
		if err := e.reply(ctx, room.Printer(), ev.IssueNumber, v); err != nil {
			return err
		}
	}

	if !mutated {
		return nil
	}

	if room.Ended() {
		if err := e.announceEnd(ctx, room, ev.IssueNumber); err != nil {
			return err
		}
	}

	room.Touch(e.Now())
	body, err := room.Body()
	if err != nil {
		return err
	}
	state := issues.StateOpen
	if room.Ended() {
		state = issues.StateClosed
	}
	_, err = e.store.UpdateIssue(ctx, ev.IssueNumber, issues.IssueUpdate{
		Title: issues.String(room.Title()),
		Body:  issues.String(body),
		State: issues.StatePtr(state),
	})
	if err != nil {
		return err
	}

	e.log.WithFields(logrus.Fields{
		"room":   room.Meta.ID,
		"issue":  ev.IssueNumber,
		"status": room.Meta.Status,
		"steps":  len(room.Meta.Steps),
	}).Info("room updated")
	return nil
}

// announceEnd posts the end-of-game comment mentioning the human players.
func (e *Engine) announceEnd(ctx context.Context, room *game.Room, number int) error {
	mentions := ""
	for _, p := range room.Meta.Players {
		if m := p.Mention(); m != "" {
			if mentions != "" {
				mentions += " "
			}
			mentions += m
		}
	}
	body := room.Printer().T("game.ended", map[string]interface{}{
		"Mentions": mentions,
		"Result":   room.ResultLine(),
	})
	_, err := e.store.CreateComment(ctx, number, body)
	return err
}

func hasLabel(labels []string, name string) bool {
	for _, l := range labels {
		if l == name {
			return true
		}
	}
	return false
}
