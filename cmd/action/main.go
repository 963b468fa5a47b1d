// cmd/action/main.go
package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/issuearcade/tictactoe/internal/config"
	"github.com/issuearcade/tictactoe/internal/engine"
	"github.com/issuearcade/tictactoe/internal/issues"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	eventName := os.Getenv("GITHUB_EVENT_NAME")
	eventPath := os.Getenv("GITHUB_EVENT_PATH")
	payload, err := os.ReadFile(eventPath)
	if err != nil {
		logger.Fatalf("read event payload %q: %v", eventPath, err)
	}

	ctx := context.Background()
	store, err := issues.NewGitHub(ctx, cfg.Token, cfg.Repository)
	if err != nil {
		logger.Fatalf("github client: %v", err)
	}

	e := engine.New(store, cfg, logger)

	switch eventName {
	case "issues":
		ev, ok, err := engine.ParseIssueOpened(payload)
		if err != nil {
			logger.Fatalf("parse event: %v", err)
		}
		if !ok {
			logger.Debug("not an opened issue, nothing to do")
			return
		}
		if err := e.HandleIssueOpened(ctx, ev); err != nil {
			logger.Fatalf("handle issue opened: %v", err)
		}
	case "issue_comment":
		ev, ok, err := engine.ParseCommentCreated(payload)
		if err != nil {
			logger.Fatalf("parse event: %v", err)
		}
		if !ok {
			logger.Debug("not a new issue comment, nothing to do")
			return
		}
		if err := e.HandleCommentCreated(ctx, ev); err != nil {
			logger.Fatalf("handle comment: %v", err)
		}
	default:
		logger.Warnf("unsupported event %q", eventName)
	}
}
