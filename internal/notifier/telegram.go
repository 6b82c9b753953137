package notifier

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender delivers notifications through the bot account.
type TelegramSender struct {
	API *tgbotapi.BotAPI
}

func (s *TelegramSender) Send(chatID int64, text string) error {
	_, err := s.API.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
