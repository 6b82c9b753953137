package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/archignome/tgboy/internal/bot"
	"github.com/archignome/tgboy/internal/catalog"
	"github.com/archignome/tgboy/internal/config"
	"github.com/archignome/tgboy/internal/events"
	"github.com/archignome/tgboy/internal/httpx"
	"github.com/archignome/tgboy/internal/logging"
	"github.com/archignome/tgboy/internal/orders"
	"github.com/archignome/tgboy/internal/postgres"
	"github.com/archignome/tgboy/internal/redisx"
	"github.com/archignome/tgboy/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.Init(cfg.ServiceName, cfg.LogPath)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	pool, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()
	gw := storage.NewPG(pool)

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Order event producers
	pCreated := events.NewProducer(cfg.KafkaBrokers, events.TopicOrderCreated, 1024)
	pCreated.Start(ctx)
	pStatus := events.NewProducer(cfg.KafkaBrokers, events.TopicOrderStatusChanged, 1024)
	pStatus.Start(ctx)

	// Services
	catalogSvc := &catalog.Service{GW: gw}
	orderSvc := &orders.Service{GW: gw}

	// Telegram bot
	api, err := bot.New(cfg.BotToken)
	if err != nil {
		log.Error("telegram connect", "err", err)
		os.Exit(1)
	}
	b := &bot.Bot{
		API:             api,
		Catalog:         catalogSvc,
		Orders:          orderSvc,
		ProducerCreated: pCreated,
		ProducerStatus:  pStatus,
		Redis:           rdb,
		OperatorChatID:  cfg.OperatorChatID,
		ServiceName:     cfg.ServiceName,
	}
	go b.Run(ctx)

	// HTTP surface: health check + admin API
	router := httpx.NewRouter()
	httpx.RegisterHealth(router, gw)
	ah := &httpx.AdminHandler{Orders: orderSvc, Catalog: catalogSvc}
	ah.Register(router)
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Info("HTTP listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen", "err", err)
			cancel()
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	pCreated.Close() // flush queued events, then stop the writer
	pStatus.Close()
	cancel()
	pCreated.WaitClosed()
	pStatus.WaitClosed()
}
