// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"regexp"
)

// Config holds everything read from the environment. cmd/action loads a
// .env file first via godotenv autoload, so local runs work the same way as
// the hosted action.
type Config struct {
	Token      string // GITHUB_TOKEN
	Repository string // GITHUB_REPOSITORY, "owner/repo"

	// Room identification
	Label            string // issues carrying this label are game rooms
	LabelColor       string
	LabelDescription string
	TitlePattern     *regexp.Regexp // opening titles matching this start a room
	RoomName         string

	// Language is the default locale for new rooms.
	Language string
}

// Load reads the configuration, applying defaults for everything except the
// token and repository.
func Load() (*Config, error) {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN is required")
	}
	repository := os.Getenv("GITHUB_REPOSITORY")
	if repository == "" {
		return nil, fmt.Errorf("GITHUB_REPOSITORY is required")
	}

	pattern := getEnv("TTT_TITLE_PATTERN", `^tic[- ]?tac[- ]?toe`)
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid TTT_TITLE_PATTERN %q: %w", pattern, err)
	}

	return &Config{
		Token:            token,
		Repository:       repository,
		Label:            getEnv("TTT_LABEL", "tic-tac-toe"),
		LabelColor:       getEnv("TTT_LABEL_COLOR", "0e8a16"),
		LabelDescription: getEnv("TTT_LABEL_DESCRIPTION", "Tic-tac-toe game room"),
		TitlePattern:     re,
		RoomName:         getEnv("TTT_ROOM_NAME", "TicTacToe"),
		Language:         getEnv("TTT_LANGUAGE", "en"),
	}, nil
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
