// Package bot is the Telegram transport: it resolves incoming commands and
// button presses into catalog/order operations and renders the results back
// as messages and inline keyboards.
package bot

import (
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/go-redis/v9"

	"github.com/archignome/tgboy/internal/catalog"
	"github.com/archignome/tgboy/internal/events"
	"github.com/archignome/tgboy/internal/logging"
	"github.com/archignome/tgboy/internal/orders"
)

type Bot struct {
	API             *tgbotapi.BotAPI
	Catalog         *catalog.Service
	Orders          *orders.Service
	ProducerCreated *events.Producer // order.created
	ProducerStatus  *events.Producer // order.status.changed
	Redis           *redis.Client
	OperatorChatID  int64
	ServiceName     string

	log *slog.Logger
}

func New(token string) (*tgbotapi.BotAPI, error) {
	return tgbotapi.NewBotAPI(token)
}

// Run consumes the long-poll update stream until ctx is canceled. Updates
// are handled one at a time, each to completion; a failing update never
// takes the process down.
func (b *Bot) Run(ctx context.Context) {
	b.log = logging.New("bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.API.GetUpdatesChan(u)

	b.log.Info("telegram bot started", "username", b.API.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.API.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("panic while handling update", "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// Send satisfies notifier.Sender and is the operator-notification capability
// this transport exposes.
func (b *Bot) Send(chatID int64, text string) error {
	_, err := b.API.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (b *Bot) reply(chatID int64, text string) {
	if err := b.Send(chatID, text); err != nil {
		b.log.Error("send failed", "chat", chatID, "err", err)
	}
}

func (b *Bot) replyWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := b.API.Send(msg); err != nil {
		b.log.Error("send failed", "chat", chatID, "err", err)
	}
}

func (b *Bot) editWithKeyboard(chatID int64, messageID int, text string, kb tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, kb)
	if _, err := b.API.Send(edit); err != nil {
		b.log.Error("edit failed", "chat", chatID, "err", err)
	}
}

func (b *Bot) ackCallback(id string) {
	if _, err := b.API.Request(tgbotapi.CallbackConfig{CallbackQueryID: id}); err != nil {
		b.log.Error("callback ack failed", "err", err)
	}
}
