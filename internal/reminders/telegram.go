package reminders

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tele "gopkg.in/telebot.v3"
)

type TelegramSender struct {
	bot  *tele.Bot
	chat *tele.Chat
}

func NewTelegramSender(token string, chatID int64) (*TelegramSender, error) {
	if token == "" || chatID == 0 {
		return nil, errors.New("telegram token and chat id are required")
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:   token,
		Offline: true,
		Client:  &http.Client{Timeout: 8 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return &TelegramSender{bot: bot, chat: &tele.Chat{ID: chatID}}, nil
}

func (sender *TelegramSender) Send(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := sender.bot.Send(sender.chat, message); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
