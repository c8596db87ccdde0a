package main

import (
	"context"
	"errors"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
)

func TestNotifier_Notify(t *testing.T) {
	var got *bot.SendMessageParams
	client := &MockTelegramClient{
		SendMessageFunc: func(_ context.Context, params *bot.SendMessageParams) (*models.Message, error) {
			got = params
			return &models.Message{}, nil
		},
	}

	notifier := NewNotifier(client, "42")
	notifier.Notify(context.Background(), "hello")

	assert.Equal(t, "42", got.ChatID)
	assert.Equal(t, "hello", got.Text)
}

func TestNotifier_SwallowsSendFailure(t *testing.T) {
	calls := 0
	client := &MockTelegramClient{
		SendMessageFunc: func(_ context.Context, _ *bot.SendMessageParams) (*models.Message, error) {
			calls++
			return nil, errors.New("chat not found")
		},
	}

	notifier := NewNotifier(client, "42")

	// Must not panic and has no error to return; the failure is only logged.
	notifier.Notify(context.Background(), "hello")
	assert.Equal(t, 1, calls)
}
