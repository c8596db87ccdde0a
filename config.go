package main

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultEndpoint     = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	defaultPollInterval = 600 * time.Second
)

// Config holds everything the bot needs to run. The three tokens are
// required; Endpoint and PollInterval have fixed defaults and exist as
// fields so tests can point the client at a local server.
type Config struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID string
	Endpoint       string
	PollInterval   time.Duration
}

// loadConfig reads the required secrets from the environment. Empty values
// count as missing. The returned error names every missing variable so the
// caller can report them all in a single log line.
func loadConfig() (Config, error) {
	config := Config{
		PracticumToken: os.Getenv("PRACTICUM_TOKEN"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID: os.Getenv("TELEGRAM_CHAT_ID"),
		Endpoint:       defaultEndpoint,
		PollInterval:   defaultPollInterval,
	}

	var missing []string
	if config.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if config.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if config.TelegramChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return config, nil
}
