package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/archignome/tgboy/internal/bot"
	"github.com/archignome/tgboy/internal/config"
	"github.com/archignome/tgboy/internal/events"
	"github.com/archignome/tgboy/internal/logging"
	"github.com/archignome/tgboy/internal/notifier"
	"github.com/archignome/tgboy/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.Init(cfg.ServiceName+"-notifier", cfg.LogPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis (event dedup)
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Telegram client for operator delivery
	api, err := bot.New(cfg.BotToken)
	if err != nil {
		log.Error("telegram connect", "err", err)
		os.Exit(1)
	}

	svc := &notifier.Service{
		Redis:          rdb,
		Sender:         &notifier.TelegramSender{API: api},
		OperatorChatID: cfg.OperatorChatID,
		ServiceName:    cfg.ServiceName + "-notifier",
	}

	for _, topic := range []string{events.TopicOrderCreated, events.TopicOrderStatusChanged} {
		cons := events.NewConsumer(cfg.KafkaBrokers, cfg.NotifierGroup, topic, cfg.NotifierWorkers)
		go func(topic string) {
			log.Info("notifier consumer started", "group", cfg.NotifierGroup, "topic", topic, "workers", cfg.NotifierWorkers)
			if err := cons.Start(ctx, svc.HandleOrderEvent); err != nil {
				log.Error("consumer exit", "topic", topic, "err", err)
				cancel()
			}
		}(topic)
	}

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Info("shutting down notifier...")
	cancel()
	time.Sleep(500 * time.Millisecond)
}
