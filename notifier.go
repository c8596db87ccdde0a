package main

import (
	"context"

	"github.com/go-telegram/bot"
)

// Notifier delivers plaintext messages to the configured chat. Delivery is
// best-effort: a failed send is logged and swallowed, never propagated. The
// poller reports its own cycle failures through the same notifier, so an
// error escaping from here would turn a broken notification channel into a
// crash loop.
type Notifier struct {
	tgBot  TelegramClient
	chatID string
}

func NewNotifier(tgBot TelegramClient, chatID string) *Notifier {
	return &Notifier{tgBot: tgBot, chatID: chatID}
}

// Notify sends the text to the chat. It never returns an error.
func (n *Notifier) Notify(ctx context.Context, text string) {
	_, err := n.tgBot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	})
	if err != nil {
		ErrorLogger.Printf("Error sending message to chat %s: %v", n.chatID, err)
		return
	}
	DebugLogger.Printf("Bot sent message: %s", text)
}
