package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/go-telegram/bot"
	"github.com/joho/godotenv"
)

func main() {
	// Secrets may come from a local .env file; its absence is fine.
	_ = godotenv.Load()

	// Initialize custom loggers
	initLoggers()

	// Load configuration; refuse to start without the required secrets.
	config, err := loadConfig()
	if err != nil {
		CriticalLogger.Fatalf("Error loading configuration: %v", err)
	}

	InfoLogger.Println("Starting Homework Status Bot")

	tgBot, err := bot.New(config.TelegramToken)
	if err != nil {
		CriticalLogger.Fatalf("Error initializing Telegram client: %v", err)
	}

	// Set up context with cancellation
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client := NewPracticumClient(config.Endpoint, config.PracticumToken)
	notifier := NewNotifier(tgBot, config.TelegramChatID)
	poller := NewPoller(client, notifier, RealClock{}, config.PollInterval)

	poller.Run(ctx)

	InfoLogger.Println("Poller stopped. Exiting application.")
}
